package entity

import "github.com/shopspring/decimal"

// SalesSummary is the aggregate payload behind the sales dashboard:
// headline KPIs, a seven-day revenue series, and the most recent bills.
type SalesSummary struct {
	TodayRevenue         decimal.Decimal `json:"todayRevenue"`
	MonthlyRevenue       decimal.Decimal `json:"monthlyRevenue"`
	PreviousMonthRevenue decimal.Decimal `json:"previousMonthRevenue"`
	PaidAmount           decimal.Decimal `json:"paidAmount"`
	PendingAmount        decimal.Decimal `json:"pendingAmount"`
	TotalBills           int64           `json:"totalBills"`
	Last7Days            []DailySales    `json:"last7Days"`
	RecentBills          []RecentBill    `json:"recentBills"`
}

// DailySales is one point of the seven-day revenue series.
type DailySales struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// RecentBill is the trimmed bill row shown on the dashboard.
type RecentBill struct {
	ID           int64           `json:"id"`
	BillNumber   string          `json:"billNumber"`
	CustomerName string          `json:"customerName"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
}

// RevenueGrowthPercent returns month-over-month revenue growth as a
// percentage, rounded to one decimal place. Zero when there is no previous
// month to compare against.
func (s *SalesSummary) RevenueGrowthPercent() decimal.Decimal {
	if !s.PreviousMonthRevenue.IsPositive() {
		return decimal.Zero
	}
	return s.MonthlyRevenue.Sub(s.PreviousMonthRevenue).
		Div(s.PreviousMonthRevenue).
		Mul(hundred).
		Round(1)
}

// Normalize applies boundary defaults to a decoded summary.
func (s *SalesSummary) Normalize() {
	if s.Last7Days == nil {
		s.Last7Days = []DailySales{}
	}
	if s.RecentBills == nil {
		s.RecentBills = []RecentBill{}
	}
}
