package models

import "time"

// LoginRequest carries the /login credentials.
type LoginRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// RegisterRequest carries the /register payload. Role defaults to "user"
// server-side when empty.
type RegisterRequest struct {
	UserName  string `json:"user_name" validate:"required"`
	Password  string `json:"password" validate:"required"`
	StudentID string `json:"student_id" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address"`
	Role      Role   `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

// CheckInRequest puts an arrived package on a shelf (operator action).
type CheckInRequest struct {
	PackID    int64 `json:"pack_id" validate:"required"`
	UserID    int64 `json:"user_id" validate:"required"`
	ShelfCode int64 `json:"shelf_code" validate:"required"`
}

// CheckOutRequest releases a pending package to its owner. The same shape is
// used by /cancelMail.
type CheckOutRequest struct {
	PackID int64 `json:"pack_id" validate:"required"`
	UserID int64 `json:"user_id" validate:"required"`
}

// MailPackRequest creates an outbound mail pack. The server resolves the
// owner through the recipient phone; no ids are sent.
type MailPackRequest struct {
	ShippingAddress string `json:"shipping_address" validate:"required"`
	Recipient       string `json:"recipient" validate:"required"`
	ReceivingAddr   string `json:"reciving_address" validate:"required"`
	ShipperPhone    string `json:"shipper_phone" validate:"required"`
	RecipientPhone  string `json:"recipient_phone" validate:"required"`
}

// UpdatePackStatusRequest moves a package to an explicit status.
type UpdatePackStatusRequest struct {
	PackID int64      `json:"pack_id" validate:"required"`
	Status PackStatus `json:"pack_status" validate:"required"`
}

// UpdateUserRequest updates profile fields. Zero-valued fields are left
// untouched by the server.
type UpdateUserRequest struct {
	UserID   int64  `json:"user_id" validate:"required"`
	UserName string `json:"user_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// AdminUpdatePackRequest is the admin partial-update payload for PUT /admin/pack.
type AdminUpdatePackRequest struct {
	PackID       int64       `json:"pack_id" validate:"required"`
	UserID       *int64      `json:"user_id,omitempty"`
	Status       *PackStatus `json:"pack_status,omitempty"`
	PickupCode   *string     `json:"pickup_code,omitempty"`
	CheckInTime  *time.Time  `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time  `json:"check_out_time,omitempty"`
}
