package bibtex

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads BibTeX entries from r.
// Field values may span multiple lines and contain nested braces.
// @comment, @preamble, and @string blocks are skipped, as is any text
// between entries.
func Parse(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bibliography: %w", err)
	}

	s := string(data)
	var entries []Entry

	i := 0
	for i < len(s) {
		at := strings.IndexByte(s[i:], '@')
		if at < 0 {
			break
		}
		i += at + 1

		// Entry type name
		j := i
		for j < len(s) && isTypeChar(s[j]) {
			j++
		}
		entryType := strings.ToLower(s[i:j])
		i = skipSpace(s, j)

		if entryType == "" || i >= len(s) || s[i] != '{' {
			continue // stray @, keep scanning
		}

		end, ok := matchBrace(s, i)
		if !ok {
			return nil, fmt.Errorf("unterminated @%s entry", entryType)
		}
		body := s[i+1 : end]
		i = end + 1

		switch entryType {
		case "comment", "preamble", "string":
			continue
		}

		entry, err := parseBody(entryType, body)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ParseFile parses the BibTeX file at path.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return entries, nil
}

// parseBody parses the inside of an entry's braces: "key, field = value, ...".
func parseBody(entryType, body string) (Entry, error) {
	entry := Entry{
		Type:   entryType,
		Fields: make(map[string]string),
	}

	comma := strings.IndexByte(body, ',')
	if comma < 0 {
		// Entry with a key and no fields
		entry.Key = strings.TrimSpace(body)
		return entry, nil
	}
	entry.Key = strings.TrimSpace(body[:comma])

	i := comma + 1
	for i < len(body) {
		i = skipSpace(body, i)
		if i >= len(body) || body[i] == ',' {
			i++
			continue
		}

		// Field name up to '='
		eq := strings.IndexByte(body[i:], '=')
		if eq < 0 {
			break // trailing junk after the last field
		}
		name := strings.ToLower(strings.TrimSpace(body[i : i+eq]))
		i = skipSpace(body, i+eq+1)
		if i >= len(body) {
			break
		}

		value, next, err := parseValue(body, i)
		if err != nil {
			return Entry{}, fmt.Errorf("entry %s, field %s: %w", entry.Key, name, err)
		}
		if name != "" {
			entry.Fields[name] = strings.TrimSpace(value)
		}
		i = next
	}

	return entry, nil
}

// parseValue parses one field value starting at i: a {braced} group,
// a "quoted" string, or a bare token running to the next comma.
// Returns the value with its delimiters removed and the index just past it.
func parseValue(s string, i int) (string, int, error) {
	switch s[i] {
	case '{':
		end, ok := matchBrace(s, i)
		if !ok {
			return "", 0, fmt.Errorf("unbalanced braces in value")
		}
		return s[i+1 : end], end + 1, nil
	case '"':
		end := strings.IndexByte(s[i+1:], '"')
		if end < 0 {
			return "", 0, fmt.Errorf("unterminated quoted value")
		}
		return s[i+1 : i+1+end], i + end + 2, nil
	default:
		end := strings.IndexByte(s[i:], ',')
		if end < 0 {
			return s[i:], len(s), nil
		}
		return s[i : i+end], i + end, nil
	}
}

// matchBrace returns the index of the brace closing the one at i.
func matchBrace(s string, i int) (int, bool) {
	depth := 0
	for ; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

func isTypeChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
