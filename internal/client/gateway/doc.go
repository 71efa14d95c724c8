// Package gateway implements the remote HTTP gateway of the PackChann
// client. It owns the transport concerns: base URL, the shared request
// timeout, bearer credential attachment, request-id tagging, and the global
// 401 invalidation hook. All endpoints exchange JSON bodies wrapped in the
// server's generic response envelope.
//
// The Gateway interface is what the services consume; tests substitute a
// fake. HTTPClient is the real implementation.
package gateway
