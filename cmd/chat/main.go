// Command chat is a terminal front end: one line in, one reply out.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"aadhira_hotel/internal/adapters/observability"
	"aadhira_hotel/internal/bootstrap"
	"aadhira_hotel/internal/shared"
)

func main() {
	cfg := shared.Load()
	// keep the conversation readable; logs go to stderr at warn and above
	log.Logger = observability.NewLogger(os.Stderr, "dev", "warn")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	core, err := bootstrap.Build(ctx, cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap failed")
	}
	defer core.Close()

	session := uuid.NewString()
	fmt.Println(core.Resolver.Greet(ctx, session, "").Text)

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return
		}
		fmt.Println(core.Resolver.Resolve(ctx, session, line).Text)
		if ctx.Err() != nil {
			return
		}
	}
	if err := in.Err(); err != nil {
		log.Error().Err(err).Msg("read stdin failed")
	}
}
