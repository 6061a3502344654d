package githubgql

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PaesslerAG/jsonpath"

	"github.com/intrale/brandkit/internal/domain"
)

// decodePage turns a GraphQL response body into a BoardPage.
//
// A non-empty "errors" array fails the whole page. A null project node means the
// id does not resolve to a ProjectV2 visible to the token.
func decodePage(body []byte) (domain.BoardPage, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return domain.BoardPage{}, fmt.Errorf("response body is not valid JSON: %w", err)
	}

	if gqlErrs, err := jsonpath.Get("$.errors", doc); err == nil {
		if list, ok := gqlErrs.([]any); ok && len(list) > 0 {
			b, _ := json.MarshalIndent(list, "", "  ")
			return domain.BoardPage{}, &domain.OpError{
				Op:   "githubgql.response",
				Kind: domain.KindExecution,
				Err:  fmt.Errorf("graphql errors: %s", b),
			}
		}
	}

	node, err := jsonpath.Get("$.data.node", doc)
	if err != nil || node == nil {
		return domain.BoardPage{}, &domain.OpError{
			Op:   "githubgql.response",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("project not found: %w", domain.ErrNotFound),
		}
	}

	items, err := jsonpath.Get("$.items", node)
	if err != nil {
		return domain.BoardPage{}, errors.New("node is not a ProjectV2 (no items)")
	}

	page := domain.BoardPage{
		EndCursor:   stringAt(items, "$.pageInfo.endCursor"),
		HasNextPage: boolAt(items, "$.pageInfo.hasNextPage"),
	}

	nodes, _ := jsonpath.Get("$.nodes", items)
	list, _ := nodes.([]any)
	page.Items = make([]domain.BoardItem, 0, len(list))
	for _, n := range list {
		page.Items = append(page.Items, decodeItem(n))
	}

	return page, nil
}

func decodeItem(n any) domain.BoardItem {
	item := domain.BoardItem{
		ID:          stringAt(n, "$.id"),
		ContentType: stringAt(n, "$.content.__typename"),
	}
	if item.ContentType == domain.ContentTypeIssue {
		item.Issue = domain.Issue{
			Number:     intAt(n, "$.content.number"),
			Title:      stringAt(n, "$.content.title"),
			URL:        stringAt(n, "$.content.url"),
			Repository: stringAt(n, "$.content.repository.name"),
		}
	}

	values, _ := jsonpath.Get("$.fieldValues.nodes", n)
	list, _ := values.([]any)
	for _, v := range list {
		item.FieldValues = append(item.FieldValues, domain.FieldValue{
			TypeName: stringAt(v, "$.__typename"),
			FieldID:  stringAt(v, "$.field.id"),
			OptionID: stringAt(v, "$.optionId"),
			Name:     stringAt(v, "$.name"),
		})
	}
	return item
}

// Missing keys and nulls read as zero values; GraphQL omits fields of
// non-matching fragments.

func stringAt(doc any, expr string) string {
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func intAt(doc any, expr string) int {
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return 0
	}
	f, _ := v.(float64)
	return int(f)
}

func boolAt(doc any, expr string) bool {
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return false
	}
	b, _ := v.(bool)
	return b
}
