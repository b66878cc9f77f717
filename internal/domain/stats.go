package domain

// MonthlyRevenue is one month of captured payment volume.
type MonthlyRevenue struct {
	Month        string `json:"month"` // YYYY-MM
	RevenueCents int64  `json:"revenue_cents"`
	Payments     int64  `json:"payments"`
}

// DashboardStats aggregates the admin overview numbers.
type DashboardStats struct {
	TotalUsers         int64                     `json:"total_users"`
	WarehousesByStatus map[WarehouseStatus]int64 `json:"warehouses_by_status"`
	TotalBookings      int64                     `json:"total_bookings"`
	TotalRevenueCents  int64                     `json:"total_revenue_cents"`
	InquiriesByStatus  map[InquiryStatus]int64   `json:"inquiries_by_status"`
	MonthlyRevenue     []MonthlyRevenue          `json:"monthly_revenue"`
	RecentBookings     []ConfirmedBooking        `json:"recent_bookings"`
}
