package enum

// StockLevel classifies a product's stock quantity for badge display.
type StockLevel int

const (
	StockLevelInStock StockLevel = iota
	StockLevelLow
	StockLevelOut
)

// LowStockThreshold is the largest quantity still flagged as low stock.
// It is a fixed product decision, not configurable.
const LowStockThreshold = 10

// StockLevelFor classifies a stock quantity. Exactly one level applies:
// zero is out of stock, never additionally low.
func StockLevelFor(quantity int) StockLevel {
	switch {
	case quantity <= 0:
		return StockLevelOut
	case quantity <= LowStockThreshold:
		return StockLevelLow
	default:
		return StockLevelInStock
	}
}

func (l StockLevel) String() string {
	switch l {
	case StockLevelOut:
		return "OUT OF STOCK"
	case StockLevelLow:
		return "LOW STOCK"
	default:
		return "IN STOCK"
	}
}
