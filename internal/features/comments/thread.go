package comments

import (
	"sort"
)

// BuildThread orders comments for display: roots oldest first, each followed
// depth-first by its replies, also oldest first. Replies whose parent is
// missing are left out together with their own replies.
func BuildThread(items []Comment, viewerID string, isAdmin bool) []Entry {
	sorted := make([]Comment, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	children := make(map[string][]int)
	var roots []int
	for i := range sorted {
		if sorted[i].IsRoot() {
			roots = append(roots, i)
			continue
		}
		parent := *sorted[i].ParentID
		children[parent] = append(children[parent], i)
	}

	out := make([]Entry, 0, len(sorted))
	seen := make(map[string]bool, len(sorted))

	var walk func(i, depth int)
	walk = func(i, depth int) {
		c := sorted[i]
		if seen[c.ID] {
			return
		}
		seen[c.ID] = true

		indent := depth
		if indent > MaxIndent {
			indent = MaxIndent
		}
		out = append(out, Entry{
			Comment:   c,
			Depth:     depth,
			Indent:    indent,
			CanModify: viewerID != "" && (isAdmin || c.IsAuthoredBy(viewerID)),
		})
		for _, child := range children[c.ID] {
			walk(child, depth+1)
		}
	}

	for _, i := range roots {
		walk(i, 0)
	}
	return out
}

// CountVisible counts, per report, the comments BuildThread would render
func CountVisible(items []Comment) map[string]int64 {
	byReport := make(map[string][]Comment)
	for _, c := range items {
		byReport[c.ReportID] = append(byReport[c.ReportID], c)
	}
	counts := make(map[string]int64, len(byReport))
	for id, group := range byReport {
		counts[id] = int64(len(BuildThread(group, "", false)))
	}
	return counts
}
