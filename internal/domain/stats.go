package domain

import "github.com/shopspring/decimal"

// BookingStats backs the staff dashboard. Revenue figures are stripped
// before handing the struct to non-admin roles.
type BookingStats struct {
	TotalBookings  int             `json:"total_bookings"`
	PendingCount   int             `json:"pending_count"`
	TodayCheckIns  int             `json:"today_check_ins"`
	TodayCheckOuts int             `json:"today_check_outs"`
	ActiveStays    int             `json:"active_stays"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	AmountUnpaid   decimal.Decimal `json:"amount_unpaid"`
}
