package repository

import (
	"context"

	"github.com/kmutua/billdesk/internal/domain/entity"
)

// DashboardRepository defines the remote contract for the sales dashboard.
type DashboardRepository interface {
	GetSalesSummary(ctx context.Context) (*entity.SalesSummary, error)
}
