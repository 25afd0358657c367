package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.Valid())
	}
	assert.False(t, Role("manager").Valid())
	assert.False(t, Role("").Valid())
}

func TestRole_StaffPermissions(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleStaff} {
		assert.True(t, r.IsStaff())
		assert.True(t, r.CanCreateBooking())
		assert.True(t, r.CanEditBooking())
		assert.True(t, r.CanDeleteBooking())
		assert.True(t, r.CanViewStatistics())
		assert.True(t, r.CanManageUsers())
	}

	customer := RoleCustomer
	assert.False(t, customer.IsStaff())
	assert.False(t, customer.CanEditBooking())
	assert.False(t, customer.CanDeleteBooking())
	assert.False(t, customer.CanViewStatistics())
}

func TestRole_AdminOnly(t *testing.T) {
	assert.True(t, RoleAdmin.CanChangeRole())
	assert.True(t, RoleAdmin.CanManageRates())
	assert.True(t, RoleAdmin.CanExportData())
	assert.True(t, RoleAdmin.CanViewFinancialData())

	for _, r := range []Role{RoleStaff, RoleCustomer} {
		assert.False(t, r.CanChangeRole(), "role %s", r)
		assert.False(t, r.CanManageRates(), "role %s", r)
		assert.False(t, r.CanExportData(), "role %s", r)
		assert.False(t, r.CanViewFinancialData(), "role %s", r)
	}
}

func TestRole_CanViewBooking(t *testing.T) {
	booking := &Booking{Email: "guest@example.com"}

	assert.True(t, RoleAdmin.CanViewBooking("anyone@example.com", booking))
	assert.True(t, RoleStaff.CanViewBooking("anyone@example.com", booking))

	assert.True(t, RoleCustomer.CanViewBooking("guest@example.com", booking))
	assert.True(t, RoleCustomer.CanViewBooking("Guest@Example.COM", booking))
	assert.False(t, RoleCustomer.CanViewBooking("other@example.com", booking))

	// Bookings taken over the phone have no email to match against.
	assert.False(t, RoleCustomer.CanViewBooking("guest@example.com", &Booking{}))
}

func TestBookingStatus_Valid(t *testing.T) {
	for _, s := range BookingStatuses {
		assert.True(t, s.Valid())
	}
	assert.False(t, BookingStatus("archived").Valid())

	for _, s := range PaymentStatuses {
		assert.True(t, s.Valid())
	}
	assert.False(t, PaymentStatus("refunded").Valid())
}
