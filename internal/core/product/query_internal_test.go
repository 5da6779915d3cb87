// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/catalog/pkg/pagination"
	"github.com/taibuivan/catalog/pkg/pointer"
)

/*
TestBuildListQuery_ActiveOnly always restricts to active products.
*/
func TestBuildListQuery_ActiveOnly(t *testing.T) {
	built := buildListQuery(Filter{})

	assert.Equal(t, "WHERE p.isactive = TRUE", built.Where)
	assert.Empty(t, built.Args)
	assert.Contains(t, built.From, "FROM core.product p")
	assert.Contains(t, built.From, "LEFT JOIN core.country co ON co.id = p.countryid")
	assert.Contains(t, built.From, "LEFT JOIN core.category ca ON ca.id = p.categoryid")
}

/*
TestBuildListQuery_Predicates checks each criterion and its bound argument.
*/
func TestBuildListQuery_Predicates(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    Filter
		predicate string
		arg       any
	}{
		{"ids", Filter{IDs: []int{4, 5}}, "p.id = ANY($1)", []int{4, 5}},
		{"categories", Filter{CategoryIDs: []int{1, 2, 3}}, "p.categoryid = ANY($1)", []int{1, 2, 3}},
		{"code", Filter{Code: "AB"}, "p.code ILIKE $1", "%AB%"},
		{"name", Filter{Name: "lap"}, "p.name ILIKE $1", "%lap%"},
		{"name wildcards escaped", Filter{Name: "50%_off"}, "p.name ILIKE $1", `%50\%\_off%`},
		{"price start", Filter{PriceStart: pointer.To(10.5)}, "p.price >= $1", 10.5},
		{"price end", Filter{PriceEnd: pointer.To(99.0)}, "p.price <= $1", 99.0},
		{"countries", Filter{CountryIDs: []int{7}}, "p.countryid = ANY($1)", []int{7}},
		{"date start", Filter{DateStart: &start}, "p.startdate >= $1", start},
		{"date end", Filter{DateEnd: &end}, "p.enddate <= $1", end},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			built := buildListQuery(tt.filter)

			assert.Equal(t, "WHERE p.isactive = TRUE AND "+tt.predicate, built.Where)
			assert.Equal(t, []any{tt.arg}, built.Args)
		})
	}
}

/*
TestBuildListQuery_Placeholders numbers combined criteria in order.
*/
func TestBuildListQuery_Placeholders(t *testing.T) {
	built := buildListQuery(Filter{
		CategoryIDs: []int{3},
		Code:        "X",
		PriceEnd:    pointer.To(5.0),
		Window:      pagination.Window{Skip: 60, Take: 30},
	})

	assert.Equal(t,
		"WHERE p.isactive = TRUE AND p.categoryid = ANY($1) AND p.code ILIKE $2 AND p.price <= $3",
		built.Where,
	)

	page, args := built.Page("p.id", 30, 60)
	assert.Contains(t, page, "LIMIT $4 OFFSET $5")
	assert.Equal(t, []any{[]int{3}, "%X%", 5.0, 30, 60}, args)
	assert.Len(t, built.Args, 3)

	count, countArgs := built.Count()
	assert.Contains(t, count, "SELECT count(*) FROM core.product p")
	assert.NotContains(t, count, "LIMIT")
	assert.Equal(t, built.Args, countArgs)
}

/*
TestOrderBy covers every sort key in both directions.
*/
func TestOrderBy(t *testing.T) {
	tests := []struct {
		key        SortKey
		descending bool
		want       string
	}{
		{SortByID, true, "p.id DESC"},
		{"", false, "p.id ASC"},
		{"unknown", true, "p.id DESC"},
		{SortByCode, true, "p.code DESC, p.name ASC, p.id ASC"},
		{SortByName, false, "p.name ASC, p.id ASC"},
		{SortByPrice, true, "p.price DESC, p.name ASC, p.id ASC"},
		{SortByCountry, false, "co.name ASC, p.name ASC, p.id ASC"},
		{SortByDate, true, "p.startdate DESC, p.enddate ASC, p.name ASC, p.id ASC"},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, orderBy(tt.key, tt.descending))
		})
	}
}

/*
TestSelectColumns lists product columns followed by the joined names.
*/
func TestSelectColumns(t *testing.T) {
	assert.Equal(t,
		"p.id, p.categoryid, p.code, p.name, p.price, p.countryid, p.startdate, p.enddate, p.isactive, co.name, ca.name",
		selectColumns(),
	)
}
