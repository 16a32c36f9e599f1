package service

import (
	"context"

	"github.com/kmutua/billdesk/internal/domain/entity"
	"github.com/kmutua/billdesk/internal/domain/repository"
)

// DashboardService provides the sales dashboard summary.
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// GetSummary returns the aggregate KPIs, the last-7-days revenue series,
// and the recent bills list.
func (s *DashboardService) GetSummary(ctx context.Context) (*entity.SalesSummary, error) {
	return s.dashboardRepo.GetSalesSummary(ctx)
}
