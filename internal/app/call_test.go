package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"aadhira_hotel/internal/app"
	"aadhira_hotel/internal/domain"
)

func TestCall_DialWrongNumberStaysDisconnected(t *testing.T) {
	r, _ := newResolver(nil)
	c := app.NewCall("c1", r, "")

	msg, ok := c.Dial("911")
	if ok || !strings.Contains(msg, app.DefaultCallNumber) {
		t.Fatalf("unexpected %q ok=%v", msg, ok)
	}
	if c.Connected() {
		t.Fatal("wrong number must not connect")
	}
	if _, err := c.Say(context.Background(), "hello"); !errors.Is(err, app.ErrNotConnected) {
		t.Fatalf("want ErrNotConnected, got %v", err)
	}
}

func TestCall_TurnTaking(t *testing.T) {
	r, l := newResolver(&fakeResponder{err: domain.ErrRemoteUnavailable})
	c := app.NewCall("c1", r, "")
	ctx := context.Background()

	greet, ok := c.Dial("101")
	if !ok || greet == "" || !c.Connected() {
		t.Fatalf("dial failed: %q", greet)
	}

	reply, err := c.Say(ctx, "the wifi is not working")
	if err != nil {
		t.Fatal(err)
	}
	if reply.Intent != domain.IntentMaintenance || l.Len() != 1 {
		t.Fatalf("unexpected reply %+v", reply)
	}
	if !c.ReplyDelivered() {
		t.Fatal("connected call should listen again after the reply")
	}

	bye := c.HangUp(ctx)
	if bye == "" || c.Connected() {
		t.Fatal("hang up should disconnect with a farewell")
	}
	if c.ReplyDelivered() {
		t.Fatal("disconnected call must not re-open the input")
	}
}

func TestCall_CustomNumber(t *testing.T) {
	r, _ := newResolver(nil)
	c := app.NewCall("c1", r, "0")
	if _, ok := c.Dial("101"); ok {
		t.Fatal("101 should not reach a line configured as 0")
	}
	if _, ok := c.Dial("0"); !ok {
		t.Fatal("expected connection")
	}
}

func TestCall_HangUpForgetsLanguage(t *testing.T) {
	r, _ := newResolver(&fakeResponder{reply: "ok"})
	c := app.NewCall("c1", r, "")
	ctx := context.Background()

	c.Dial("101")
	if reply, _ := c.Say(ctx, "Vanakkam"); reply.Language != domain.LangTamil {
		t.Fatalf("unexpected language %s", reply.Language)
	}
	c.HangUp(ctx)

	c.Dial("101")
	if reply, _ := c.Say(ctx, "what time is it"); reply.Language != domain.LangEnglish {
		t.Fatalf("redialled call should start in english, got %s", reply.Language)
	}
}
