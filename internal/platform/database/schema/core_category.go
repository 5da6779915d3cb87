package schema

// CoreCategoryTable represents the 'core.category' table
type CoreCategoryTable struct {
	Table    string
	ID       string
	ParentID string
	Name     string
	IsActive string
}

// CoreCategory is the schema definition for core.category
var CoreCategory = CoreCategoryTable{
	Table:    "core.category",
	ID:       "id",
	ParentID: "parentid",
	Name:     "name",
	IsActive: "isactive",
}

func (t CoreCategoryTable) Columns() []string {
	return []string{t.ID, t.ParentID, t.Name, t.IsActive}
}
