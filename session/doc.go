// Package session persists question/answer history per conversation in
// SQLite. It is host-application plumbing around the core pipeline: the
// index itself is never persisted here, only the exchanges and which
// chunks grounded them.
package session
