package appstate

import "strings"

// Filter returns the subsequence of jobs matching both criteria, preserving
// catalog order. It is a pure function: same inputs, same result.
//
// searchText matches case-insensitively as a substring of the title OR the
// company; category matches case-insensitively as a substring of the
// category. A blank criterion matches everything.
func Filter(jobs []JobRecord, searchText, category string) []JobRecord {
	search := strings.ToLower(strings.TrimSpace(searchText))
	cat := strings.ToLower(strings.TrimSpace(category))

	filtered := make([]JobRecord, 0, len(jobs))
	for _, j := range jobs {
		if search != "" &&
			!strings.Contains(strings.ToLower(j.Title), search) &&
			!strings.Contains(strings.ToLower(j.Company), search) {
			continue
		}
		if cat != "" && !strings.Contains(strings.ToLower(j.Category), cat) {
			continue
		}
		filtered = append(filtered, j)
	}
	return filtered
}
