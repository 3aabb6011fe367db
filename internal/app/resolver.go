// Package app holds the concierge core: intent routing, reply resolution
// with remote and offline fallbacks, and the phone call turn-taking flow.
package app

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"aadhira_hotel/internal/adapters/observability"
	"aadhira_hotel/internal/domain"
	"aadhira_hotel/internal/language"
)

// FaultReply is spoken when composing a reply fails unexpectedly.
const FaultReply = "I apologize, but I'm having trouble processing your request right now. Please try again in a moment."

var errEmptyRemoteReply = errors.New("remote responder returned an empty reply")

// Resolver turns one utterance into exactly one reply: hotel intents first,
// then the remote responder, then the offline table.
type Resolver struct {
	router    *Router
	languages *language.Resolver
	remote    domain.Responder
	offline   *OfflineTable
	sessions  domain.SessionStore
	log       zerolog.Logger
}

// NewResolver wires the stages. remote may be nil, in which case every
// unmatched utterance is answered from the offline table.
func NewResolver(router *Router, langs *language.Resolver, remote domain.Responder,
	offline *OfflineTable, sessions domain.SessionStore, log zerolog.Logger) *Resolver {
	return &Resolver{
		router:    router,
		languages: langs,
		remote:    remote,
		offline:   offline,
		sessions:  sessions,
		log:       log,
	}
}

// Resolve never returns an empty reply and never panics.
func (r *Resolver) Resolve(ctx context.Context, session, utterance string) (reply domain.Reply) {
	reply = domain.Reply{Intent: domain.IntentNone, Language: domain.LangEnglish}
	defer func() {
		if p := recover(); p != nil {
			r.log.Error().
				Str("session", session).
				Interface("panic", p).
				Msg("reply composition failed")
			reply.Text, reply.Source, reply.Intent = FaultReply, domain.SourceFault, domain.IntentNone
		}
		observability.ObserveResolution(string(reply.Source))
	}()

	reply.Language = r.currentLanguage(ctx, session, utterance)

	if out, ok := r.router.Route(utterance); ok {
		reply.Text, reply.Source, reply.Intent = out.Reply, domain.SourceIntent, out.Intent
		return r.ensureText(reply)
	}

	text, err := r.fetchRemote(ctx, utterance, reply.Language)
	if err == nil {
		reply.Text, reply.Source = text, domain.SourceRemote
		return reply
	}
	r.log.Warn().Err(err).Str("session", session).Msg("remote reply failed, using offline table")

	text, matched := r.offline.Lookup(utterance)
	if !matched {
		r.log.Debug().Str("session", session).Msg("no offline keyword matched, using default")
	}
	reply.Text, reply.Source = text, domain.SourceOffline
	return r.ensureText(reply)
}

// Greet opens a conversation and answers in the greeting's language.
func (r *Resolver) Greet(ctx context.Context, session, utterance string) domain.Reply {
	lang := r.currentLanguage(ctx, session, utterance)
	return domain.Reply{
		Text:     r.languages.Profile(lang).Greeting,
		Source:   domain.SourceIntent,
		Intent:   domain.IntentNone,
		Language: lang,
	}
}

// EndSession forgets the session's language.
func (r *Resolver) EndSession(ctx context.Context, session string) error {
	if err := r.sessions.Forget(ctx, session); err != nil {
		r.log.Warn().Err(err).Str("session", session).Msg("forget session failed")
		return err
	}
	return nil
}

func (r *Resolver) Router() *Router { return r.router }

func (r *Resolver) fetchRemote(ctx context.Context, utterance, lang string) (string, error) {
	if r.remote == nil {
		return "", domain.ErrRemoteUnavailable
	}
	text, err := r.remote.FetchReply(ctx, utterance, lang)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errEmptyRemoteReply
	}
	return text, nil
}

// currentLanguage switches the session language when the utterance carries a
// greeting marker, otherwise keeps whatever the session last used.
func (r *Resolver) currentLanguage(ctx context.Context, session, utterance string) string {
	if code, ok := r.languages.Marker(utterance); ok {
		if err := r.sessions.SetLanguage(ctx, session, code); err != nil {
			r.log.Warn().Err(err).Str("session", session).Msg("store session language failed")
		}
		return code
	}
	lang, err := r.sessions.Language(ctx, session)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			r.log.Warn().Err(err).Str("session", session).Msg("load session language failed")
		}
		return domain.LangEnglish
	}
	return lang
}

func (r *Resolver) ensureText(reply domain.Reply) domain.Reply {
	if strings.TrimSpace(reply.Text) == "" {
		reply.Text, reply.Source = FaultReply, domain.SourceFault
	}
	return reply
}
