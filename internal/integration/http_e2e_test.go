//go:build integration || !unit

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/rs/zerolog"

	httpserver "aadhira_hotel/internal/adapters/http_server"
	redisad "aadhira_hotel/internal/adapters/redis"
	"aadhira_hotel/internal/app"
	"aadhira_hotel/internal/catalog"
	"aadhira_hotel/internal/domain"
	"aadhira_hotel/internal/language"
	"aadhira_hotel/internal/storage/memory"
)

type offlineOnly struct{}

func (offlineOnly) FetchReply(context.Context, string, string) (string, error) {
	return "", domain.ErrRemoteUnavailable
}

func chat(t *testing.T, base, session, text string) domain.Reply {
	t.Helper()
	b, _ := json.Marshal(map[string]string{"session_id": session, "text": text})
	res, err := http.Post(base+"/v1/chat", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST chat: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var out domain.Reply
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

// Two API instances share one Redis; the session language set through one
// is honoured by the other.
func TestHTTP_EndToEnd_SharedSessions(t *testing.T) {
	if os.Getenv("SKIP_DOCKER") != "" {
		t.Skip("SKIP_DOCKER set")
	}
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("dockertest: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{Repository: "redis", Tag: "7.2-alpine"},
		func(hc *docker.HostConfig) {
			hc.AutoRemove = true
			hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
		})
	if err != nil {
		t.Fatalf("run redis: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })
	addr := fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp"))

	newAPI := func() *httptest.Server {
		store := redisad.New(addr, "", 0, time.Minute)
		t.Cleanup(func() { _ = store.Close() })
		if err := pool.Retry(func() error { return store.Ping(context.Background()) }); err != nil {
			t.Fatalf("connect redis: %v", err)
		}
		l := memory.NewLedger()
		c := catalog.Default()
		res := app.NewResolver(app.NewRouter(c, l), language.New(), offlineOnly{},
			app.DefaultOfflineTable(), store, zerolog.Nop())
		s := httpserver.New()
		s.MountHandlers(&httpserver.Handlers{Resolver: res, Ledger: l, Catalog: c})
		ts := httptest.NewServer(s.Mux())
		t.Cleanup(ts.Close)
		return ts
	}
	a, b := newAPI(), newAPI()

	if got := chat(t, a.URL, "guest-7", "Vanakkam"); got.Language != domain.LangTamil {
		t.Fatalf("instance a: language %s", got.Language)
	}
	got := chat(t, b.URL, "guest-7", "is there a gym?")
	if got.Language != domain.LangTamil {
		t.Fatalf("instance b should see tamil, got %s", got.Language)
	}
	if got.Source != domain.SourceOffline || got.Text == "" {
		t.Fatalf("unexpected reply %+v", got)
	}
}
