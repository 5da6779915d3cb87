// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"fmt"
	"strings"

	"github.com/taibuivan/catalog/internal/platform/database/schema"
	"github.com/taibuivan/catalog/pkg/slice"
)

// Table aliases used by the listing query.
const (
	aliasProduct  = "p"
	aliasCountry  = "co"
	aliasCategory = "ca"
)

// likeEscaper neutralizes LIKE wildcards in user input.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func col(alias, name string) string {
	return alias + "." + name
}

/*
listQuery is the SQL for one listing request.

Where and Args are shared by the page and count statements; Page appends
ORDER BY and the LIMIT/OFFSET placeholders.
*/
type listQuery struct {
	From    string
	Where   string
	OrderBy string
	Args    []any
}

// Page returns the windowed SELECT statement and its arguments.
func (q listQuery) Page(selectList string, take, skip int) (string, []any) {
	args := append(append([]any{}, q.Args...), take, skip)
	sql := fmt.Sprintf("SELECT %s %s %s ORDER BY %s LIMIT $%d OFFSET $%d",
		selectList, q.From, q.Where, q.OrderBy, len(q.Args)+1, len(q.Args)+2,
	)
	return sql, args
}

// Count returns the unpaged COUNT statement and its arguments.
func (q listQuery) Count() (string, []any) {
	return fmt.Sprintf("SELECT count(*) %s %s", q.From, q.Where), q.Args
}

/*
buildListQuery translates a resolved [Filter] into SQL.

Description: filter.CategoryIDs must already be the final set of category
ids; no tree expansion happens here. Every criterion becomes one AND-ed
predicate with a positional argument.

Parameters:
  - filter: Filter

Returns:
  - listQuery: FROM/WHERE/ORDER BY fragments and bound arguments
*/
func buildListQuery(filter Filter) listQuery {
	p := schema.CoreProduct

	from := fmt.Sprintf("FROM %s %s LEFT JOIN %s %s ON %s = %s LEFT JOIN %s %s ON %s = %s",
		p.Table, aliasProduct,
		schema.CoreCountry.Table, aliasCountry, col(aliasCountry, schema.CoreCountry.ID), col(aliasProduct, p.CountryID),
		schema.CoreCategory.Table, aliasCategory, col(aliasCategory, schema.CoreCategory.ID), col(aliasProduct, p.CategoryID),
	)

	var where strings.Builder
	var args []any
	fmt.Fprintf(&where, "WHERE %s = TRUE", col(aliasProduct, p.IsActive))

	add := func(format string, value any) {
		args = append(args, value)
		fmt.Fprintf(&where, " AND "+format, len(args))
	}

	if len(filter.IDs) > 0 {
		add(col(aliasProduct, p.ID)+" = ANY($%d)", filter.IDs)
	}
	if len(filter.CategoryIDs) > 0 {
		add(col(aliasProduct, p.CategoryID)+" = ANY($%d)", filter.CategoryIDs)
	}
	if filter.Code != "" {
		add(col(aliasProduct, p.Code)+" ILIKE $%d", "%"+likeEscaper.Replace(filter.Code)+"%")
	}
	if filter.Name != "" {
		add(col(aliasProduct, p.Name)+" ILIKE $%d", "%"+likeEscaper.Replace(filter.Name)+"%")
	}
	if filter.PriceStart != nil {
		add(col(aliasProduct, p.Price)+" >= $%d", *filter.PriceStart)
	}
	if filter.PriceEnd != nil {
		add(col(aliasProduct, p.Price)+" <= $%d", *filter.PriceEnd)
	}
	if len(filter.CountryIDs) > 0 {
		// A NULL country never matches ANY, so products without one drop out.
		add(col(aliasProduct, p.CountryID)+" = ANY($%d)", filter.CountryIDs)
	}
	if filter.DateStart != nil {
		add(col(aliasProduct, p.StartDate)+" >= $%d", *filter.DateStart)
	}
	if filter.DateEnd != nil {
		add(col(aliasProduct, p.EndDate)+" <= $%d", *filter.DateEnd)
	}

	return listQuery{
		From:    from,
		Where:   where.String(),
		OrderBy: orderBy(filter.SortBy, filter.Descending),
		Args:    args,
	}
}

/*
orderBy renders the ORDER BY list for key.

The primary column follows the requested direction; tie-breakers are always
ascending, with the product id last so that windows are stable.
*/
func orderBy(key SortKey, descending bool) string {
	p := schema.CoreProduct
	name := col(aliasProduct, p.Name)

	var primary string
	var secondary []string
	switch key {
	case SortByCode:
		primary, secondary = col(aliasProduct, p.Code), []string{name}
	case SortByName:
		primary = name
	case SortByPrice:
		primary, secondary = col(aliasProduct, p.Price), []string{name}
	case SortByCountry:
		primary, secondary = col(aliasCountry, schema.CoreCountry.Name), []string{name}
	case SortByDate:
		primary, secondary = col(aliasProduct, p.StartDate), []string{col(aliasProduct, p.EndDate), name}
	default:
		primary = col(aliasProduct, p.ID)
	}

	direction := "ASC"
	if descending {
		direction = "DESC"
	}

	terms := []string{primary + " " + direction}
	for _, column := range secondary {
		terms = append(terms, column+" ASC")
	}
	if primary != col(aliasProduct, p.ID) {
		terms = append(terms, col(aliasProduct, p.ID)+" ASC")
	}

	return strings.Join(terms, ", ")
}

// selectColumns is the projection scanned by [scanView].
func selectColumns() string {
	columns := slice.Map(schema.CoreProduct.Columns(), func(column string) string {
		return col(aliasProduct, column)
	})
	columns = append(columns,
		col(aliasCountry, schema.CoreCountry.Name),
		col(aliasCategory, schema.CoreCategory.Name),
	)
	return strings.Join(columns, ", ")
}
