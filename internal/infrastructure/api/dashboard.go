package api

import (
	"context"

	"github.com/kmutua/billdesk/internal/domain/entity"
)

// DashboardAPI implements repository.DashboardRepository against the remote
// service.
type DashboardAPI struct {
	client *Client
}

// NewDashboardAPI creates a dashboard API backed by the given client.
func NewDashboardAPI(client *Client) *DashboardAPI {
	return &DashboardAPI{client: client}
}

// GetSalesSummary returns the aggregate KPIs, seven-day series, and recent
// bills behind the sales dashboard.
func (a *DashboardAPI) GetSalesSummary(ctx context.Context) (*entity.SalesSummary, error) {
	var summary entity.SalesSummary
	if err := a.client.get(ctx, "/dashboard/sales", nil, &summary); err != nil {
		return nil, err
	}
	summary.Normalize()
	return &summary, nil
}
