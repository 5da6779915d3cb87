package schema

// CoreProductTable represents the 'core.product' table
type CoreProductTable struct {
	Table      string
	ID         string
	CategoryID string
	Code       string
	Name       string
	Price      string
	CountryID  string
	StartDate  string
	EndDate    string
	IsActive   string
}

// CoreProduct is the schema definition for core.product
var CoreProduct = CoreProductTable{
	Table:      "core.product",
	ID:         "id",
	CategoryID: "categoryid",
	Code:       "code",
	Name:       "name",
	Price:      "price",
	CountryID:  "countryid",
	StartDate:  "startdate",
	EndDate:    "enddate",
	IsActive:   "isactive",
}

func (t CoreProductTable) Columns() []string {
	return []string{t.ID, t.CategoryID, t.Code, t.Name, t.Price, t.CountryID, t.StartDate, t.EndDate, t.IsActive}
}
