// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package product manages the sellable items of the catalog.

Each product belongs to exactly one category and optionally to a country of
origin. The listing endpoint supports a rich filter whose category criterion
is resolved against the live category tree.

Core Responsibility:

  - Listing: Filter, sort and window active products (see query.go).
  - Maintenance: Add-or-update and soft delete.
*/
package product

import (
	"time"

	"github.com/taibuivan/catalog/pkg/pagination"
)

// # Field Identifiers

const (
	FieldID         = "id"
	FieldCategoryID = "categoryId"
	FieldCode       = "code"
	FieldName       = "name"
	FieldPrice      = "price"
	FieldEndDate    = "endDate"
)

const (
	codeMaxLen = 100
	nameMaxLen = 255
)

// # Domain Entities

// Product is a catalog item as stored.
type Product struct {
	ID         int        `json:"id"`
	CategoryID int        `json:"categoryId"`
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	CountryID  *int       `json:"countryId"`
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	IsActive   bool       `json:"isActive"`
}

// View is a listing row: the product plus the display names of its relations.
type View struct {
	Product
	CountryName  *string `json:"countryName"`
	CategoryName *string `json:"categoryName"`
}

// Result is one page of products together with the unpaged match count.
type Result struct {
	Products []*View `json:"products"`
	Count    int     `json:"count"`
}

// # Sorting

// SortKey names a listing order accepted by the filter.
type SortKey string

const (
	SortByID      SortKey = "id"
	SortByCode    SortKey = "code"
	SortByName    SortKey = "name"
	SortByPrice   SortKey = "price"
	SortByCountry SortKey = "country"
	SortByDate    SortKey = "date"
)

// # Filtering

/*
Filter holds the listing criteria. Zero values disable a criterion.

CategoryIDs is interpreted by the service: a single id is replaced by that
category and all of its active descendants, while two or more ids are used
as given.
*/
type Filter struct {
	IDs         []int
	CategoryIDs []int
	Code        string
	Name        string
	PriceStart  *float64
	PriceEnd    *float64
	CountryIDs  []int
	DateStart   *time.Time
	DateEnd     *time.Time

	SortBy     SortKey
	Descending bool
	Window     pagination.Window
}
