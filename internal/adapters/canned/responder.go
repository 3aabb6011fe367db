// Package canned is the offline-friendly stand-in for the remote responder:
// topic keyword lists with a few phrasings each, one picked at random.
package canned

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"aadhira_hotel/internal/domain"
	"aadhira_hotel/internal/language"
)

type topic struct {
	keywords []string
	replies  []string
}

var topics = []topic{
	{[]string{"reservation", "booking", "book"}, []string{
		"I'd love to help you book a room! What dates are you thinking of staying with us? I can check availability and find you the perfect room!",
		"Booking a room is super easy! When are you planning to visit? I'll make sure you get the best room available!",
		"Let's get you all set up with a reservation! Could you tell me your check-in and check-out dates? I'll find something perfect for you!",
	}},
	{[]string{"room", "accommodation"}, []string{
		"We've got some really cool rooms here! We have Standard, Deluxe, and Suite options. What kind of vibe are you looking for?",
		"Our rooms are pretty awesome! Each type has its own perks. Would you like me to tell you about the different categories?",
		"I can totally help you pick the perfect room! We've got options for every budget and style. What sounds good to you?",
	}},
	{[]string{"service", "amenities"}, []string{
		"We've got tons of cool stuff here! 24/7 room service, concierge help, spa services, and a great fitness center. What interests you most?",
		"Our services are pretty amazing! We do laundry, have a great restaurant, and can arrange tours. What can I help you with?",
		"We've got everything you need! Swimming pool, business center, free WiFi - the works! What would you like to know more about?",
	}},
	{[]string{"check-in", "check-out"}, []string{
		"Check-in is at 3:00 PM and check-out is at 11:00 AM. If you need early check-in or late check-out, just ask and we'll see what we can do!",
		"Standard check-in is 3 PM and check-out is 11 AM, but we can work with you if needed.",
	}},
	{[]string{"price", "cost", "rate"}, []string{
		"Our rates change with the season, but I can check current pricing for your dates. When are you thinking of coming?",
		"Prices depend on when you want to stay and what room you like. Want me to check availability and rates for you?",
	}},
	{[]string{"location", "address", "directions"}, []string{
		"We're in the perfect spot downtown! Super easy to get to all the cool attractions and transportation.",
		"We're right near great restaurants, shopping, and entertainment. How are you planning to get here?",
	}},
	{[]string{"food", "restaurant", "dining"}, []string{
		"Our restaurant serves amazing international cuisine, and room service is available 24/7. You won't go hungry here!",
		"We've got fine dining, a casual cafe, and in-room dining. What kind of meal are you in the mood for?",
	}},
	{[]string{"wifi", "internet"}, []string{
		"We've got super fast WiFi everywhere! All guest rooms and public areas have complimentary high-speed internet.",
		"Free wireless internet is available throughout the whole hotel. Stay connected!",
	}},
	{[]string{"pet", "dog", "cat"}, []string{
		"We love pets here! We're pet-friendly and welcome well-behaved furry friends. Just let us know when you book!",
		"Yes, we're pet-friendly! We have designated pet rooms and great walking areas nearby.",
	}},
	{[]string{"cancel", "modify"}, []string{
		"No worries about changes! Our cancellation policy is pretty flexible. What would you like to modify?",
		"I can help with changes to your reservation. Do you have your confirmation number handy?",
	}},
}

var fallback = []string{
	"Hey there! I'm here to help with anything hotel-related. What can I assist you with today?",
	"Thanks for chatting with me! I'm here to make sure you have an amazing experience. What do you need help with?",
	"I'd love to help you out! What hotel stuff can I help you with today?",
	"Welcome! I'm here to make sure you have the best stay possible. How can I help you today?",
}

// Responder implements domain.Responder without any network access.
type Responder struct {
	langs *language.Resolver

	mu  sync.Mutex
	rnd *rand.Rand
}

func New(langs *language.Resolver) *Responder {
	return NewWithSeed(langs, time.Now().UnixNano())
}

func NewWithSeed(langs *language.Resolver, seed int64) *Responder {
	return &Responder{langs: langs, rnd: rand.New(rand.NewSource(seed))}
}

// FetchReply answers non-English sessions from the language templates and
// English ones from the topic lists.
func (r *Responder) FetchReply(ctx context.Context, utterance, lang string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrRemoteUnavailable, err)
	}
	if lang != "" && lang != domain.LangEnglish {
		return r.langs.TemplateIn(lang, utterance), nil
	}
	return r.pick(Replies(utterance)), nil
}

// Replies returns the candidate phrasings for utterance.
func Replies(utterance string) []string {
	lower := strings.ToLower(utterance)
	for _, t := range topics {
		for _, k := range t.keywords {
			if strings.Contains(lower, k) {
				return t.replies
			}
		}
	}
	return fallback
}

func (r *Responder) pick(options []string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return options[r.rnd.Intn(len(options))]
}
