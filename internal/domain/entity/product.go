package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmutua/billdesk/internal/domain/enum"
)

// Product represents a sellable product as owned by the remote service.
// The client only ever holds a transient, re-fetchable copy.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	StockQuantity int             `json:"stockQuantity"`
	TaxPercent    decimal.Decimal `json:"taxPercent"`
	HSNCode       string          `json:"hsnCode"`
	ExpiryDate    *time.Time      `json:"expiryDate,omitempty"`
	Disabled      bool            `json:"disabled"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// StockLevel classifies the product's current stock for badge display.
func (p *Product) StockLevel() enum.StockLevel {
	return enum.StockLevelFor(p.StockQuantity)
}

// Normalize applies boundary defaults to a decoded product. The remote API
// omits optional fields; defaulting happens here once, not at render sites.
func (p *Product) Normalize() {
	if p.StockQuantity < 0 {
		p.StockQuantity = 0
	}
	// decimal zero values already decode as 0 when fields are absent
}
