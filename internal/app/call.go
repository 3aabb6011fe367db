package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"aadhira_hotel/internal/domain"
)

const DefaultCallNumber = "101"

var ErrNotConnected = errors.New("call: not connected")

const (
	callGreeting    = "Hey! This is Aadhira at the hotel. How can I help you today? I'm here for room service, housekeeping, maintenance - whatever you need!"
	callWrongNumber = "Oops! That's not the right number. Just dial %s to reach me!"
	callFarewell    = "Thanks for calling! Have a great stay with us. Call back anytime if you need anything else!"
)

// Call is one phone conversation. Turn-taking is explicit: Say produces a
// reply, and once the caller has played it back ReplyDelivered tells them
// whether to listen again.
type Call struct {
	ID       string
	number   string
	resolver *Resolver

	mu        sync.Mutex
	connected bool
}

func NewCall(id string, r *Resolver, number string) *Call {
	if number == "" {
		number = DefaultCallNumber
	}
	return &Call{ID: id, number: number, resolver: r}
}

// Dial connects when number is the concierge line and returns what to speak.
func (c *Call) Dial(number string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.connected {
		return callGreeting, true
	}
	if number != c.number {
		return fmt.Sprintf(callWrongNumber, c.number), false
	}
	c.connected = true
	return callGreeting, true
}

func (c *Call) Say(ctx context.Context, utterance string) (domain.Reply, error) {
	if !c.Connected() {
		return domain.Reply{}, ErrNotConnected
	}
	return c.resolver.Resolve(ctx, c.ID, utterance), nil
}

// ReplyDelivered reports whether the input channel should be re-opened.
func (c *Call) ReplyDelivered() bool { return c.Connected() }

// HangUp disconnects and forgets the call's language.
func (c *Call) HangUp(ctx context.Context) string {
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()
	_ = c.resolver.EndSession(ctx, c.ID)
	return callFarewell
}

func (c *Call) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}
