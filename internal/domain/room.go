package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoomType is the canonical identifier used for pricing and storage.
// Display strings and historical aliases all resolve onto one of these.
type RoomType string

const (
	RoomOneBedBalcony      RoomType = "one_bed_balcony_room"
	RoomOneBedWindow       RoomType = "one_bed_window_room"
	RoomOneBedNoWindow     RoomType = "one_bed_no_window_room"
	RoomTwoBedNoWindow     RoomType = "two_bed_no_window_room"
	RoomTwoBedCondotel     RoomType = "two_bed_condotel_balcony"
)

var RoomTypes = []RoomType{
	RoomOneBedBalcony,
	RoomOneBedWindow,
	RoomOneBedNoWindow,
	RoomTwoBedNoWindow,
	RoomTwoBedCondotel,
}

// RoomRate is one row of the rate table.
type RoomRate struct {
	ID            int64           `json:"id"`
	HotelID       int64           `json:"hotel_id"`
	RoomType      RoomType        `json:"room_type"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Description   string          `json:"description"`
}

type roomAliasEntry struct {
	Type    RoomType
	Aliases []string
}

// roomTypeAliases maps every phrase the site has historically used for a
// room type onto its canonical identifier. Sets are disjoint; lookup scans
// entries in order and the first match wins.
var roomTypeAliases = []roomAliasEntry{
	{RoomOneBedBalcony, []string{
		"1 bed balcony room",
		"one bed balcony room",
		"1 bed with balcony",
		"1-bed balcony room",
		"balcony room",
	}},
	{RoomOneBedWindow, []string{
		"1 bed window room",
		"one bed window room",
		"1 bed with window",
		"1-bed window room",
		"window room",
	}},
	{RoomOneBedNoWindow, []string{
		"1 bed no window room",
		"one bed no window room",
		"1 bed no window",
		"1-bed no window room",
		"single no window",
	}},
	{RoomTwoBedNoWindow, []string{
		"2 bed no window room",
		"two bed no window room",
		"2 bed no window",
		"two bed no window",
		"2-bed no window room",
		"double no window",
	}},
	{RoomTwoBedCondotel, []string{
		"2 bed condotel balcony",
		"two bed condotel balcony",
		"2 bed & balcony condotel",
		"2 bed and balcony condotel",
		"condotel",
	}},
}

// NormalizeRoomType trims, lowercases and collapses inner whitespace.
func NormalizeRoomType(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// ParseRoomType resolves a free-form room-type string to its canonical
// identifier. Already-canonical values pass through directly; everything
// else goes through the alias table.
func ParseRoomType(raw string) (RoomType, bool) {
	norm := NormalizeRoomType(raw)
	if norm == "" {
		return "", false
	}

	for _, t := range RoomTypes {
		if norm == string(t) {
			return t, true
		}
	}

	for _, entry := range roomTypeAliases {
		for _, alias := range entry.Aliases {
			if norm == alias {
				return entry.Type, true
			}
		}
	}

	return "", false
}
