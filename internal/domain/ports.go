package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrRemoteUnavailable = errors.New("remote responder unavailable")
)

// Responder is the remote generative reply capability. One call per utterance;
// failures wrap ErrRemoteUnavailable.
type Responder interface {
	FetchReply(ctx context.Context, utterance, language string) (string, error)
}

// RequestLedger is the append-only store of submitted service requests.
type RequestLedger interface {
	Submit(kind RequestKind, description string, priority Priority) ServiceRequest
	All() []ServiceRequest
	Summary() RequestSummary
}

// SessionStore keeps the current answer language per conversation.
type SessionStore interface {
	// Language returns ErrNotFound when the session has no language yet.
	Language(ctx context.Context, session string) (string, error)
	SetLanguage(ctx context.Context, session, lang string) error
	// Forget drops the session; forgetting an unknown session is not an error.
	Forget(ctx context.Context, session string) error
}
