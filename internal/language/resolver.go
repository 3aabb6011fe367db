// Package language detects the guest's language from greeting markers and
// serves per-language canned replies.
package language

import (
	"strings"

	"aadhira_hotel/internal/domain"
)

type Resolver struct{}

func New() *Resolver { return &Resolver{} }

// Marker returns the language of the first greeting marker found in the
// utterance, and false when it carries none.
func (r *Resolver) Marker(utterance string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(utterance))
	for _, m := range markers {
		for _, w := range m.words {
			if strings.Contains(lower, w) {
				return m.code, true
			}
		}
	}
	return "", false
}

// Detect is Marker with english as the default.
func (r *Resolver) Detect(utterance string) string {
	if code, ok := r.Marker(utterance); ok {
		return code
	}
	return domain.LangEnglish
}

// Profile returns the profile for code, falling back to english.
func (r *Resolver) Profile(code string) domain.LanguageProfile {
	if p, ok := profiles[code]; ok {
		return p
	}
	return profiles[domain.LangEnglish]
}

// Template answers in the utterance's language with the first topic it mentions.
func (r *Resolver) Template(utterance string) string {
	return r.TemplateIn(r.Detect(utterance), utterance)
}

// TemplateIn is Template with the language already decided.
func (r *Resolver) TemplateIn(code, utterance string) string {
	t := r.Profile(code).Templates
	lower := strings.ToLower(utterance)
	for _, tp := range topics {
		for _, w := range tp.words {
			if !strings.Contains(lower, w) {
				continue
			}
			switch tp.topic {
			case topicHelp:
				return t.Help
			case topicReservation:
				return t.Reservation
			case topicRoom:
				return t.Room
			case topicServices:
				return t.Services
			case topicGoodbye:
				return t.Goodbye
			}
		}
	}
	return t.Welcome
}
