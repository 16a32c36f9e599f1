package view

import "github.com/kmutua/billdesk/internal/domain/enum"

// StockBadge returns the badge label for a stock quantity and whether a
// badge should be shown at all. Exactly one badge applies: an out-of-stock
// product is never additionally flagged as low stock, and quantities above
// the low-stock threshold show no badge.
func StockBadge(stockQuantity int) (label string, show bool) {
	switch enum.StockLevelFor(stockQuantity) {
	case enum.StockLevelOut:
		return "OUT OF STOCK", true
	case enum.StockLevelLow:
		return "LOW STOCK", true
	default:
		return "", false
	}
}
