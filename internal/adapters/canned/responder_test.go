package canned_test

import (
	"context"
	"errors"
	"testing"

	"aadhira_hotel/internal/adapters/canned"
	"aadhira_hotel/internal/domain"
	"aadhira_hotel/internal/language"
)

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestFetchReply_PicksFromTopic(t *testing.T) {
	r := canned.NewWithSeed(language.New(), 1)
	ctx := context.Background()

	cases := []string{"I'd like to make a booking", "do you allow dogs?", "is the internet fast", "what's up"}
	for _, in := range cases {
		want := canned.Replies(in)
		for i := 0; i < 10; i++ {
			got, err := r.FetchReply(ctx, in, domain.LangEnglish)
			if err != nil {
				t.Fatal(err)
			}
			if !contains(want, got) {
				t.Fatalf("%q: reply %q not in topic list", in, got)
			}
		}
	}
}

func TestReplies_TopicOrder(t *testing.T) {
	// booking is checked before room
	if got, want := canned.Replies("book a room"), canned.Replies("reservation"); got[0] != want[0] {
		t.Fatalf("booking topic should win")
	}
	if got, want := canned.Replies("xyz"), canned.Replies(""); got[0] != want[0] {
		t.Fatalf("unknown input should use fallback")
	}
}

func TestFetchReply_NonEnglishUsesTemplates(t *testing.T) {
	langs := language.New()
	r := canned.NewWithSeed(langs, 1)

	got, err := r.FetchReply(context.Background(), "help", domain.LangHindi)
	if err != nil {
		t.Fatal(err)
	}
	if want := langs.TemplateIn(domain.LangHindi, "help"); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFetchReply_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := canned.New(language.New()).FetchReply(ctx, "hi", domain.LangEnglish); !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatalf("want ErrRemoteUnavailable, got %v", err)
	}
}
