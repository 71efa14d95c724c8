// Package session owns the authenticated identity of the running client:
// the current user, the access/refresh credentials, and the loading/error
// flags the presentation layer renders. The session is a single service
// instance constructed once and passed to consumers; state is exposed
// through explicit getters and an immutable Snapshot, with an observer list
// notified after every change.
//
// The session and its persisted snapshot are kept consistent after every
// state-changing operation. Concurrent use is not serialized; callers that
// overlap operations get last-write-wins semantics.
package session
