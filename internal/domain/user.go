package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

var Roles = []Role{RoleAdmin, RoleStaff, RoleCustomer}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role carries staff privileges (admin included).
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Staff manage bookings; customers go through staff.
func (r Role) CanEditBooking() bool   { return r.IsStaff() }
func (r Role) CanDeleteBooking() bool { return r.IsStaff() }
func (r Role) CanCreateBooking() bool { return r.IsStaff() }

// CanViewBooking allows staff to see anything and customers to see only
// bookings made with their own email address.
func (r Role) CanViewBooking(userEmail string, b *Booking) bool {
	if r.IsStaff() {
		return true
	}
	if r == RoleCustomer && b.Email != "" {
		return strings.EqualFold(b.Email, userEmail)
	}
	return false
}

func (r Role) CanViewStatistics() bool    { return r.IsStaff() }
func (r Role) CanManageUsers() bool       { return r.IsStaff() }
func (r Role) CanChangeRole() bool        { return r == RoleAdmin }
func (r Role) CanManageRates() bool       { return r == RoleAdmin }
func (r Role) CanExportData() bool        { return r == RoleAdmin }
func (r Role) CanViewFinancialData() bool { return r == RoleAdmin }

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Email    string
	FullName string
	Password string
	Role     Role
}
