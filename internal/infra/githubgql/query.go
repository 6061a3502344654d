package githubgql

// itemsQuery lists project items with their issue content and single-select
// field values, one page at a time.
const itemsQuery = `query($project: ID!, $cursor: String, $first: Int!) {
  node(id: $project) {
    ... on ProjectV2 {
      items(first: $first, after: $cursor) {
        nodes {
          id
          content {
            __typename
            ... on Issue {
              number
              title
              url
              repository { name }
            }
          }
          fieldValues(first: 20) {
            nodes {
              __typename
              ... on ProjectV2ItemFieldSingleSelectValue {
                optionId
                name
                field { ... on ProjectV2FieldCommon { id } }
              }
            }
          }
        }
        pageInfo {
          endCursor
          hasNextPage
        }
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}
