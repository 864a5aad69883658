package render

import "github.com/benali/cvgen/internal/bibtex"

// Buckets maps a category name to its formatted fragments.
// Fragment order within a bucket is the order entries were visited.
type Buckets map[string][]string

// Count returns the total number of fragments across all buckets.
func (b Buckets) Count() int {
	n := 0
	for _, fragments := range b {
		n += len(fragments)
	}
	return n
}

// CollectPublications formats each publication entry in order and groups
// the fragments by category. Unrecognized entry types are dropped.
func CollectPublications(entries []bibtex.Entry, d Dialect, highlight string) Buckets {
	buckets := make(Buckets)
	for _, e := range entries {
		cat, line := FormatPublication(e, d, highlight)
		if cat == "" {
			continue
		}
		buckets[cat] = append(buckets[cat], line)
	}
	return buckets
}

// CollectTalks formats each talk entry in order, keeping conference talks
// in their own bucket and folding every other declared type into "other".
func CollectTalks(entries []bibtex.Entry, d Dialect) Buckets {
	buckets := make(Buckets)
	for _, e := range entries {
		cat, line := FormatTalk(e, d)
		if cat != CategoryConference {
			cat = CategoryOther
		}
		buckets[cat] = append(buckets[cat], line)
	}
	return buckets
}
