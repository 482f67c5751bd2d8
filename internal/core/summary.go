package core

// ProductAmount represents sales aggregated under one product name.
type ProductAmount struct {
	Name   string
	Amount Money
}

// MonthOverview is a compact summary for one dataset month.
type MonthOverview struct {
	Month     string // MM/DD/YYYY first-of-month label
	Total     Money
	ByProduct []ProductAmount
}
