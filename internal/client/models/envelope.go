package models

// Envelope is the generic response body used by every PackChann endpoint.
// Which fields are populated depends on the operation; a few endpoints reply
// under their own keys (update_user, cancelled_mail_pack, updatePackStatus)
// instead of the common ones.
type Envelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`

	User  *User  `json:"user,omitempty"`
	Pack  *Pack  `json:"pack,omitempty"`
	Packs []Pack `json:"packs,omitempty"`
	Users []User `json:"users,omitempty"`

	UpdatedUser       *User `json:"update_user,omitempty"`
	CancelledMailPack *Pack `json:"cancelled_mail_pack,omitempty"`
	UpdatedPack       *Pack `json:"updatePackStatus,omitempty"`

	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// ErrorMessage returns the server-supplied failure text, preferring the
// message field over the error field. Empty when the body carried neither.
func (e *Envelope) ErrorMessage() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
