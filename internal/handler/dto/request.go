package dto

// ReservationRequest mirrors the reservation form: everything arrives as
// strings and the service owns validation, so field-specific messages come
// from one place.
type ReservationRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	CheckinDate     string `json:"checkin_date"`
	CheckoutDate    string `json:"checkout_date"`
	Adults          string `json:"adults"`
	Children        string `json:"children"`
	RoomType        string `json:"room_type"`
	SpecialRequests string `json:"special_requests"`
	Notes           string `json:"notes"`
}

type EditReservationRequest struct {
	ReservationRequest
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	AmountPaid    string `json:"amount_paid"`
}

type PaymentRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UpsertRateRequest struct {
	RoomType      string `json:"room_type" binding:"required"`
	PricePerNight string `json:"price_per_night" binding:"required"`
	Description   string `json:"description"`
}
