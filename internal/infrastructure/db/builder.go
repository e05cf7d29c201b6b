package db

import (
	sq "github.com/Masterminds/squirrel"

	"clinic-registry/pkg/types"
)

// Psql is the shared statement builder with $N placeholders.
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ApplySearch adds a name-substring condition when the filter carries one.
func ApplySearch(builder sq.SelectBuilder, filter types.Filter, searchColumn string) sq.SelectBuilder {
	if filter.Search != "" {
		builder = builder.Where(sq.ILike{searchColumn: "%" + filter.Search + "%"})
	}
	return builder
}

// ApplyListParams adds search, stable ordering and pagination to a list query.
func ApplyListParams(builder sq.SelectBuilder, filter types.Filter, searchColumn string) sq.SelectBuilder {
	builder = ApplySearch(builder, filter, searchColumn)
	builder = builder.OrderBy("id")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}
	return builder
}
