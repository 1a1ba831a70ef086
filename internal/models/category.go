package models

import "strings"

// Fixed category ids. Downstream consumers depend on these exact values.
const (
	CategoryIDTransit       = 1
	CategoryIDDining        = 2
	CategoryIDGroceries     = 3
	CategoryIDOther         = 4
	CategoryIDShopping      = 5
	CategoryIDSubscriptions = 6
	CategoryIDHome          = 7
)

// UncategorizedName labels spending whose category is unset or unknown.
const UncategorizedName = "Uncategorized"

// Category is a row of the category registry.
type Category struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

var staticCategoryIDs = map[string]int{
	"transit":       CategoryIDTransit,
	"dining":        CategoryIDDining,
	"food":          CategoryIDDining,
	"groceries":     CategoryIDGroceries,
	"grocery":       CategoryIDGroceries,
	"other":         CategoryIDOther,
	"shopping":      CategoryIDShopping,
	"subscription":  CategoryIDSubscriptions,
	"subscriptions": CategoryIDSubscriptions,
	"home":          CategoryIDHome,
	"rent":          CategoryIDHome,
}

// StaticCategoryID resolves a label against the fixed name table. Keys are
// matched after trimming and lowercasing.
func StaticCategoryID(label string) (int, bool) {
	id, ok := staticCategoryIDs[strings.ToLower(strings.TrimSpace(label))]
	return id, ok
}

// DefaultCategories returns the registry rows backing the fixed table.
func DefaultCategories() []Category {
	return []Category{
		{ID: CategoryIDTransit, Name: "Transit"},
		{ID: CategoryIDDining, Name: "Dining"},
		{ID: CategoryIDGroceries, Name: "Groceries"},
		{ID: CategoryIDOther, Name: "Other"},
		{ID: CategoryIDShopping, Name: "Shopping"},
		{ID: CategoryIDSubscriptions, Name: "Subscriptions"},
		{ID: CategoryIDHome, Name: "Home"},
	}
}
