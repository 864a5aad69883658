// Package splice replaces marker-delimited regions inside larger documents.
package splice

import (
	"fmt"
	"strings"
)

// MarkerNotFoundError indicates a begin or end marker was absent from the
// target text.
type MarkerNotFoundError struct {
	Marker string
}

func (e *MarkerNotFoundError) Error() string {
	return fmt.Sprintf("marker %q not found", e.Marker)
}

// Replace substitutes the text strictly between the first occurrence of
// begin and the following occurrence of end with content. Everything
// outside that span, the markers included, is preserved exactly.
//
// The result is:
//
//	text[:i+len(begin)] + "\n" + content + "\n" + text[j:]
//
// where i is the index of begin and j the index of end located searching
// forward from the end of the begin occurrence. A missing marker returns
// a *MarkerNotFoundError naming it; text is never partially modified.
func Replace(text, begin, end, content string) (string, error) {
	i := strings.Index(text, begin)
	if i < 0 {
		return "", &MarkerNotFoundError{Marker: begin}
	}

	after := i + len(begin)
	j := strings.Index(text[after:], end)
	if j < 0 {
		return "", &MarkerNotFoundError{Marker: end}
	}
	j += after

	var b strings.Builder
	b.Grow(after + len(content) + len(text) - j + 2)
	b.WriteString(text[:after])
	b.WriteByte('\n')
	b.WriteString(content)
	b.WriteByte('\n')
	b.WriteString(text[j:])
	return b.String(), nil
}
