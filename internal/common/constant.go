package common

// Keys under which the session snapshot is persisted in the local store.
// The three entries are written together and removed together, but the
// store itself gives no atomicity guarantee across them.
const (
	StorageKeyUser         = "user"
	StorageKeyAccessToken  = "access_token"
	StorageKeyRefreshToken = "refresh_token"
)

// RequestIDHeaderName is attached to every outbound request for log correlation.
const RequestIDHeaderName = "X-Request-Id"
