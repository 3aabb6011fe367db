// Package bootstrap assembles the concierge core from configuration.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"aadhira_hotel/internal/adapters/canned"
	"aadhira_hotel/internal/adapters/openrouter"
	redisad "aadhira_hotel/internal/adapters/redis"
	"aadhira_hotel/internal/app"
	"aadhira_hotel/internal/catalog"
	"aadhira_hotel/internal/domain"
	"aadhira_hotel/internal/language"
	"aadhira_hotel/internal/shared"
	"aadhira_hotel/internal/storage/memory"
)

type Core struct {
	Catalog  *catalog.Catalog
	Ledger   *memory.Ledger
	Resolver *app.Resolver

	closers []func() error
}

// Close releases external connections.
func (c *Core) Close() error {
	var first error
	for _, fn := range c.closers {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Build wires catalog, ledger, session store, remote responder and offline
// table. A Redis that does not answer within five seconds is an error.
func Build(ctx context.Context, cfg shared.Config, log zerolog.Logger) (*Core, error) {
	offline, err := app.LoadOfflineTable(cfg.OfflineTablePath)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", cfg.OfflineTablePath).Int("entries", len(offline.Entries())).Msg("offline table loaded")
	core := &Core{
		Catalog: catalog.Default(),
		Ledger:  memory.NewLedger(),
	}
	langs := language.New()

	var sessions domain.SessionStore = memory.NewSessions()
	if cfg.RedisAddr != "" {
		store := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.SessionTTL)
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := store.Ping(pctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		core.closers = append(core.closers, store.Close)
		sessions = store
		log.Info().Str("addr", cfg.RedisAddr).Msg("redis session store ok")
	}

	var remote domain.Responder
	if cfg.OpenRouterKey != "" {
		remote, err = openrouter.New(openrouter.Config{
			APIKey:          cfg.OpenRouterKey,
			BaseURL:         cfg.OpenRouterBase,
			Model:           cfg.OpenRouterModel,
			Timeout:         cfg.RemoteTimeout,
			RPS:             cfg.RemoteRPS,
			BreakerFailures: uint32(cfg.BreakerFailures),
			BreakerCooldown: cfg.BreakerCooldown,
		}, langs, log)
		if err != nil {
			return nil, err
		}
		log.Info().Str("model", cfg.OpenRouterModel).Msg("remote responder: openrouter")
	} else {
		remote = canned.New(langs)
		log.Info().Msg("remote responder: canned")
	}

	router := app.NewRouter(core.Catalog, core.Ledger)
	core.Resolver = app.NewResolver(router, langs, remote, offline, sessions, log)
	return core, nil
}
