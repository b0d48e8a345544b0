package domain

import "encoding/json"

// DashboardOverview holds the headline counters.
type DashboardOverview struct {
	TotalUsers         int64       `json:"totalUsers,omitempty"`
	TotalCars          int64       `json:"totalCars,omitempty"`
	AvailableCars      int64       `json:"availableCars,omitempty"`
	PendingCarAudits   int64       `json:"pendingCarAudits,omitempty"`
	TotalOrders        int64       `json:"totalOrders,omitempty"`
	PendingOrderAudits int64       `json:"pendingOrderAudits,omitempty"`
	TotalPaidAmount    json.Number `json:"totalPaidAmount,omitempty"`
}

// DashboardMetric is a named count/amount pair.
type DashboardMetric struct {
	Name   string      `json:"name,omitempty"`
	Count  int64       `json:"count,omitempty"`
	Amount json.Number `json:"amount,omitempty"`
}

// DashboardTrendPoint is one bucket of an order trend.
type DashboardTrendPoint struct {
	Period     string      `json:"period,omitempty"`
	OrderCount int64       `json:"orderCount,omitempty"`
	PaidAmount json.Number `json:"paidAmount,omitempty"`
}

// DashboardStats is the admin home page payload.
type DashboardStats struct {
	Overview                *DashboardOverview    `json:"overview,omitempty"`
	OrderStatusDistribution []DashboardMetric     `json:"orderStatusDistribution,omitempty"`
	MonthlyOrderTrend       []DashboardTrendPoint `json:"monthlyOrderTrend,omitempty"`
	RecentOrderTrend        []DashboardTrendPoint `json:"recentOrderTrend,omitempty"`
	TopPickupCities         []DashboardMetric     `json:"topPickupCities,omitempty"`
}
