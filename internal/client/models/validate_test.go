package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_LoginRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr bool
	}{
		{name: "complete", req: LoginRequest{StudentID: "S1", Password: "p"}},
		{name: "missing password", req: LoginRequest{StudentID: "S1"}, wantErr: true},
		{name: "missing student id", req: LoginRequest{Password: "p"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_RegisterRequestRole(t *testing.T) {
	base := RegisterRequest{UserName: "n", Password: "p", StudentID: "S1", Phone: "123"}

	ok := base
	ok.Role = RoleAdmin
	assert.NoError(t, Validate(ok))

	empty := base
	assert.NoError(t, Validate(empty))

	bad := base
	bad.Role = Role("superuser")
	assert.Error(t, Validate(bad))
}

func TestValidate_MailPackRequest(t *testing.T) {
	req := MailPackRequest{
		ShippingAddress: "Dorm 1",
		Recipient:       "Bob",
		ReceivingAddr:   "Dorm 9",
		ShipperPhone:    "111",
		RecipientPhone:  "222",
	}
	assert.NoError(t, Validate(req))

	req.RecipientPhone = ""
	assert.Error(t, Validate(req))
}

func TestPackStatus_Valid(t *testing.T) {
	for _, s := range []PackStatus{StatusPending, StatusCheckedOut, StatusInTransit, StatusCancelled, StatusArrived, StatusShipped} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, PackStatus("lost").Valid())
}
