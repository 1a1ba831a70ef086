package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticCategoryID(t *testing.T) {
	tests := []struct {
		label  string
		wantID int
		wantOK bool
	}{
		{"Transit", CategoryIDTransit, true},
		{"  DINING ", CategoryIDDining, true},
		{"food", CategoryIDDining, true},
		{"Groceries", CategoryIDGroceries, true},
		{"grocery", CategoryIDGroceries, true},
		{"Other", CategoryIDOther, true},
		{"shopping", CategoryIDShopping, true},
		{"Subscription", CategoryIDSubscriptions, true},
		{"subscriptions", CategoryIDSubscriptions, true},
		{"Home", CategoryIDHome, true},
		{"RENT", CategoryIDHome, true},
		{"Travel", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			id, ok := StaticCategoryID(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestDefaultCategories_CoverStaticTable(t *testing.T) {
	defaults := DefaultCategories()
	assert.Len(t, defaults, 7)

	for _, category := range defaults {
		id, ok := StaticCategoryID(category.Name)
		assert.True(t, ok, "default %q should resolve through the static table", category.Name)
		assert.Equal(t, category.ID, id)
	}
}
