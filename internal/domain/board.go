package domain

import "sort"

const (
	ContentTypeIssue       = "Issue"
	FieldValueSingleSelect = "ProjectV2ItemFieldSingleSelectValue"
)

// Issue is the subset of an issue shown in listings.
type Issue struct {
	Number     int    `json:"number"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Repository string `json:"repository,omitempty"`
}

// FieldValue is one field value attached to a project item.
type FieldValue struct {
	TypeName string
	FieldID  string
	OptionID string
	Name     string
}

// BoardItem is a project board entry. ContentType is the GraphQL __typename of
// its content ("Issue", "PullRequest", "DraftIssue"); Issue is only meaningful
// when ContentType is "Issue".
type BoardItem struct {
	ID          string
	ContentType string
	Issue       Issue
	FieldValues []FieldValue
}

// BoardPage is one page of project items plus its pagination cursor.
type BoardPage struct {
	Items       []BoardItem
	EndCursor   string
	HasNextPage bool
}

// StatusFilter selects items whose single-select field FieldID holds OptionID.
type StatusFilter struct {
	FieldID  string
	OptionID string
}

// Matches reports whether the item is an issue with the selected status.
func (f StatusFilter) Matches(item BoardItem) bool {
	if item.ContentType != ContentTypeIssue {
		return false
	}
	for _, fv := range item.FieldValues {
		if fv.TypeName == FieldValueSingleSelect && fv.FieldID == f.FieldID && fv.OptionID == f.OptionID {
			return true
		}
	}
	return false
}

// FilterIssues keeps the issues of items matching f, in input order.
func FilterIssues(items []BoardItem, f StatusFilter) []Issue {
	out := []Issue{}
	for _, it := range items {
		if f.Matches(it) {
			out = append(out, it.Issue)
		}
	}
	return out
}

// SortIssues orders issues by number, ascending.
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Number < issues[j].Number
	})
}
