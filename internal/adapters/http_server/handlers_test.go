package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	httpserver "aadhira_hotel/internal/adapters/http_server"
	"aadhira_hotel/internal/adapters/observability"
	"aadhira_hotel/internal/app"
	"aadhira_hotel/internal/catalog"
	"aadhira_hotel/internal/domain"
	"aadhira_hotel/internal/language"
	"aadhira_hotel/internal/storage/memory"
)

type downResponder struct{}

func (downResponder) FetchReply(context.Context, string, string) (string, error) {
	return "", domain.ErrRemoteUnavailable
}

func newTestServer(t *testing.T) (*httptest.Server, *memory.Ledger) {
	t.Helper()
	return newTestServerWith(t, catalog.Default())
}

func newTestServerWith(t *testing.T, c *catalog.Catalog) (*httptest.Server, *memory.Ledger) {
	t.Helper()
	l := memory.NewLedger()
	res := app.NewResolver(app.NewRouter(c, l), language.New(), downResponder{},
		app.DefaultOfflineTable(), memory.NewSessions(), zerolog.Nop())

	s := httpserver.New()
	s.MountHandlers(&httpserver.Handlers{Resolver: res, Ledger: l, Catalog: c, Timeout: 5 * time.Second})
	ts := httptest.NewServer(s.Mux())
	t.Cleanup(ts.Close)
	return ts, l
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	res, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

func decodeBody(t *testing.T, res *http.Response, dst any) {
	t.Helper()
	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestHealthz(t *testing.T) {
	ts, _ := newTestServer(t)
	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
}

func TestSessionAndChat(t *testing.T) {
	ts, l := newTestServer(t)

	res := postJSON(t, ts.URL+"/v1/sessions", map[string]string{"utterance": "Namaste"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status %d", res.StatusCode)
	}
	var sess struct {
		SessionID string       `json:"session_id"`
		Greeting  domain.Reply `json:"greeting"`
	}
	decodeBody(t, res, &sess)
	if sess.SessionID == "" || sess.Greeting.Language != domain.LangHindi || sess.Greeting.Text == "" {
		t.Fatalf("unexpected session %+v", sess)
	}

	res = postJSON(t, ts.URL+"/v1/chat", map[string]string{"session_id": sess.SessionID, "text": "I want the Continental Breakfast"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var reply domain.Reply
	decodeBody(t, res, &reply)
	if reply.Source != domain.SourceIntent || !strings.Contains(reply.Text, "$18") {
		t.Fatalf("unexpected reply %+v", reply)
	}
	if reply.Language != domain.LangHindi {
		t.Fatalf("session language should persist, got %s", reply.Language)
	}
	if l.Len() != 1 {
		t.Fatalf("expected 1 request, got %d", l.Len())
	}

	res = postJSON(t, ts.URL+"/v1/chat", map[string]string{"session_id": sess.SessionID, "text": "what about parking?"})
	decodeBody(t, res, &reply)
	if reply.Source != domain.SourceOffline || reply.Text == "" {
		t.Fatalf("expected offline reply, got %+v", reply)
	}
}

func TestSession_EmptyBody(t *testing.T) {
	ts, _ := newTestServer(t)
	res, err := http.Post(ts.URL+"/v1/sessions", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status %d", res.StatusCode)
	}
}

func TestChat_Problems(t *testing.T) {
	ts, _ := newTestServer(t)

	res := postJSON(t, ts.URL+"/v1/chat", map[string]string{"text": "hi"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type %q", ct)
	}

	r, err := http.Post(ts.URL+"/v1/chat", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Body.Close()
	if r.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d", r.StatusCode)
	}

	res = postJSON(t, ts.URL+"/v1/chat", map[string]string{"session_id": "s", "text": strings.Repeat("a", 3000)})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d", res.StatusCode)
	}
}

func TestRequests_SubmitAndList(t *testing.T) {
	ts, _ := newTestServer(t)

	res := postJSON(t, ts.URL+"/v1/requests", map[string]string{"kind": "maintenance", "description": "Door lock jammed"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status %d", res.StatusCode)
	}
	var created struct {
		Request domain.ServiceRequest `json:"request"`
		Message string                `json:"message"`
	}
	decodeBody(t, res, &created)
	if created.Request.Priority != domain.PriorityHigh || created.Request.Status != domain.StatusPending {
		t.Fatalf("unexpected request %+v", created.Request)
	}

	for _, bad := range []map[string]string{
		{"kind": "spa", "description": "massage"},
		{"kind": "housekeeping", "description": "  "},
	} {
		if res := postJSON(t, ts.URL+"/v1/requests", bad); res.StatusCode != http.StatusBadRequest {
			t.Fatalf("%v: status %d", bad, res.StatusCode)
		}
	}

	res, err := http.Get(ts.URL + "/v1/requests")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	var list struct {
		Requests []domain.ServiceRequest `json:"requests"`
		Counts   struct {
			Pending int `json:"pending"`
			Total   int `json:"total"`
		} `json:"counts"`
	}
	decodeBody(t, res, &list)
	if len(list.Requests) != 1 || list.Counts.Pending != 1 || list.Counts.Total != 1 {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestMenu_ETag(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Get(ts.URL + "/v1/menu")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	etag := res.Header.Get("ETag")
	if res.StatusCode != http.StatusOK || etag == "" {
		t.Fatalf("status %d etag %q", res.StatusCode, etag)
	}
	var sections []struct {
		Category domain.Category      `json:"category"`
		Items    []domain.ServiceItem `json:"items"`
	}
	decodeBody(t, res, &sections)
	if len(sections) != len(domain.Categories) || sections[0].Category != domain.CategoryBreakfast {
		t.Fatalf("unexpected menu %+v", sections)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/menu", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("want 304, got %d", res2.StatusCode)
	}
}

type event struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Listen bool   `json:"listen"`
	Intent string `json:"intent"`
}

func TestCall_WebSocketTurnTaking(t *testing.T) {
	ts, l := newTestServer(t)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/call"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial ws: %v", err)
	}
	defer conn.Close()

	send := func(frame map[string]string) event {
		t.Helper()
		if err := conn.WriteJSON(frame); err != nil {
			t.Fatalf("write: %v", err)
		}
		var ev event
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("read: %v", err)
		}
		return ev
	}

	if ev := send(map[string]string{"type": "say", "text": "hello"}); ev.Type != "error" {
		t.Fatalf("say before dial should fail, got %+v", ev)
	}
	if ev := send(map[string]string{"type": "dial", "number": "999"}); ev.Listen || !strings.Contains(ev.Text, "101") {
		t.Fatalf("wrong number: %+v", ev)
	}
	if ev := send(map[string]string{"type": "dial", "number": "101"}); !ev.Listen || ev.Text == "" {
		t.Fatalf("dial: %+v", ev)
	}
	ev := send(map[string]string{"type": "say", "text": "the wifi is not working"})
	if ev.Type != "reply" || ev.Listen || ev.Intent != string(domain.IntentMaintenance) {
		t.Fatalf("say: %+v", ev)
	}
	if ev := send(map[string]string{"type": "delivered"}); !ev.Listen {
		t.Fatalf("delivered should re-open listening: %+v", ev)
	}
	if ev := send(map[string]string{"type": "hangup"}); ev.Listen || ev.Text == "" {
		t.Fatalf("hangup: %+v", ev)
	}
	if l.Len() != 1 {
		t.Fatalf("expected 1 request, got %d", l.Len())
	}
}

func TestMenu_AllIncludesUnavailable(t *testing.T) {
	c, err := catalog.New([]domain.ServiceItem{
		{ID: "sn1", Name: "French Fries", Price: 8, Category: domain.CategorySnacks, Available: true},
		{ID: "sn3", Name: "Nachos", Price: 12, Category: domain.CategorySnacks, Available: false},
		{ID: "dn2", Name: "Beef Tenderloin", Price: 38, Category: domain.CategoryDinner, Available: false},
	}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	ts, _ := newTestServerWith(t, c)

	type section struct {
		Category domain.Category      `json:"category"`
		Items    []domain.ServiceItem `json:"items"`
	}
	get := func(path string) []section {
		t.Helper()
		res, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		defer res.Body.Close()
		var out []section
		decodeBody(t, res, &out)
		return out
	}

	orderable := get("/v1/menu")
	if len(orderable) != 1 || len(orderable[0].Items) != 1 || orderable[0].Items[0].Name != "French Fries" {
		t.Fatalf("unexpected orderable menu %+v", orderable)
	}
	full := get("/v1/menu?all=true")
	if len(full) != 2 || full[0].Category != domain.CategoryDinner || len(full[1].Items) != 2 {
		t.Fatalf("unexpected full menu %+v", full)
	}
	if full[0].Items[0].Available {
		t.Fatalf("unavailable flag lost: %+v", full[0].Items[0])
	}
}

func TestSession_Delete(t *testing.T) {
	ts, _ := newTestServer(t)

	res := postJSON(t, ts.URL+"/v1/chat", map[string]string{"session_id": "guest-1", "text": "namaste"})
	var reply domain.Reply
	decodeBody(t, res, &reply)
	if reply.Language != domain.LangHindi {
		t.Fatalf("unexpected language %s", reply.Language)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/v1/sessions/guest-1", nil)
	del, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	del.Body.Close()
	if del.StatusCode != http.StatusNoContent {
		t.Fatalf("status %d", del.StatusCode)
	}

	res = postJSON(t, ts.URL+"/v1/chat", map[string]string{"session_id": "guest-1", "text": "anything else?"})
	decodeBody(t, res, &reply)
	if reply.Language != domain.LangEnglish {
		t.Fatalf("deleted session should be english, got %s", reply.Language)
	}
}

func TestObserve_LabelsChatTurnsBySource(t *testing.T) {
	ts, _ := newTestServer(t)
	offline := observability.HTTPRequests.WithLabelValues("/v1/chat", "POST", "200", "offline")
	intent := observability.HTTPRequests.WithLabelValues("/v1/chat", "POST", "200", "intent")
	menu := observability.HTTPRequests.WithLabelValues("/v1/menu", "GET", "200", "none")
	beforeOffline, beforeIntent, beforeMenu := testutil.ToFloat64(offline), testutil.ToFloat64(intent), testutil.ToFloat64(menu)

	postJSON(t, ts.URL+"/v1/chat", map[string]string{"session_id": "s", "text": "is there a gym?"})
	postJSON(t, ts.URL+"/v1/chat", map[string]string{"session_id": "s", "text": "fresh towels please"})
	res, err := http.Get(ts.URL + "/v1/menu")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()

	if d := testutil.ToFloat64(offline) - beforeOffline; d != 1 {
		t.Fatalf("offline chat turns: %v", d)
	}
	if d := testutil.ToFloat64(intent) - beforeIntent; d != 1 {
		t.Fatalf("intent chat turns: %v", d)
	}
	if d := testutil.ToFloat64(menu) - beforeMenu; d != 1 {
		t.Fatalf("menu requests: %v", d)
	}
}
