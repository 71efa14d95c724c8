package models

import "time"

// PackStatus is the single current state of a tracked package.
type PackStatus string

const (
	StatusPending    PackStatus = "pending"
	StatusCheckedOut PackStatus = "checked_out"
	StatusInTransit  PackStatus = "in_transit"
	StatusCancelled  PackStatus = "cancelled"
	StatusArrived    PackStatus = "arrived"
	StatusShipped    PackStatus = "shipped"
)

// Valid reports whether s is one of the known status values.
func (s PackStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCheckedOut, StatusInTransit, StatusCancelled, StatusArrived, StatusShipped:
		return true
	}
	return false
}

// Pack is a tracked parcel record. Pickup fields are set for packages that
// arrive at the station, shipping fields for outbound mail packs.
// "reciving_address" is the server's spelling.
type Pack struct {
	PackID          int64      `json:"pack_id"`
	UserID          int64      `json:"user_id"`
	Status          PackStatus `json:"pack_status"`
	PickupCode      string     `json:"pickup_code,omitempty"`
	ShelfCode       int64      `json:"shelf_code,omitempty"`
	CheckInTime     time.Time  `json:"check_in_time,omitzero"`
	CheckOutTime    time.Time  `json:"check_out_time,omitzero"`
	ShippingAddress string     `json:"shipping_address,omitempty"`
	Recipient       string     `json:"recipient,omitempty"`
	ReceivingAddr   string     `json:"reciving_address,omitempty"`
	ShipperPhone    string     `json:"shipper_phone,omitempty"`
	RecipientPhone  string     `json:"recipient_phone,omitempty"`
	CreatedAt       time.Time  `json:"created_at,omitzero"`
	UpdatedAt       time.Time  `json:"updated_at,omitzero"`
}
