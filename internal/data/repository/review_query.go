package repository

import (
	"fmt"
	"strings"
)

const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
)

// reviewSortColumns maps every accepted sort_by value to a column reference.
// Column names cannot be bound as parameters, so anything outside this table
// never reaches the query text.
var reviewSortColumns = map[string]string{
	"owner":          "r.owner",
	"title":          "r.title",
	"review_id":      "r.review_id",
	"category":       "r.category",
	"review_img_url": "r.review_img_url",
	"created_at":     "r.created_at",
	"votes":          "r.votes",
	"designer":       "r.designer",
	"comment_count":  "comment_count",
	"review_body":    "r.review_body",
}

// ReviewFilter holds the raw listing options as they came from the request.
type ReviewFilter struct {
	Category string
	SortBy   string
	Order    string
}

// resolveSort returns the column and direction to order by. An unknown
// sort_by resets both to created_at desc; any order other than "asc" is desc.
func resolveSort(sortBy, order string) (column, direction string) {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}

	column, ok := reviewSortColumns[sortBy]
	if !ok {
		return reviewSortColumns[DefaultSortBy], "DESC"
	}

	if order == "asc" {
		return column, "ASC"
	}
	return column, "DESC"
}

func buildListReviewsQuery(filter ReviewFilter) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)

	sb.WriteString(`
		SELECT r.review_id, r.title, r.designer, r.owner, r.review_img_url,
			r.review_body, r.category, r.votes, r.created_at,
			COUNT(c.comment_id)::INT AS comment_count
		FROM reviews r
		LEFT JOIN comments c ON c.review_id = r.review_id`)

	if filter.Category != "" {
		args = append(args, filter.Category)
		fmt.Fprintf(&sb, "\n\t\tWHERE r.category = $%d", len(args))
	}

	sb.WriteString("\n\t\tGROUP BY r.review_id")

	column, direction := resolveSort(filter.SortBy, filter.Order)
	fmt.Fprintf(&sb, "\n\t\tORDER BY %s %s", column, direction)
	if column != reviewSortColumns["review_id"] {
		fmt.Fprintf(&sb, ", r.review_id %s", direction)
	}

	return sb.String(), args
}
