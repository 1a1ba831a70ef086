package models

// TransactionFilters narrows a transaction listing. Dates are inclusive
// YYYY-MM-DD bounds; empty fields do not filter.
type TransactionFilters struct {
	StartDate         string
	EndDate           string
	Type              string
	CategoryID        *int
	UncategorizedOnly bool
	Offset            int
	Limit             int
}
