package pagination

import "math"

// CalculateOffset calculates the number of records to skip for a page.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * limit
//
// Examples:
//   - Page 1, Limit 10 -> Offset 0
//   - Page 2, Limit 10 -> Offset 10
//   - Page 3, Limit 25 -> Offset 50
//
// The result saturates at math.MaxInt instead of overflowing, so a huge page
// number addresses an empty page rather than a negative offset.
func CalculateOffset(page, limit int) int {
	if page <= 1 || limit < 1 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages using integer
// ceiling division: (total + limit - 1) / limit.
//
// An empty collection has zero pages.
//
// Examples:
//   - Total 0, Limit 10 -> 0 pages
//   - Total 10, Limit 10 -> 1 page
//   - Total 45, Limit 10 -> 5 pages
func CalculateTotalPages(total uint64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int((total + uint64(limit) - 1) / uint64(limit))
}
