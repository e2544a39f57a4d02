package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"shiftbot/internal/adapters/telegram"
	"shiftbot/internal/logging"
)

// ServeCmd runs the Telegram webhook server
type ServeCmd struct {
	Listen string `help:"Address to listen on" default:":8080"`
}

// Run starts the webhook HTTP server and blocks until interrupted
func (s *ServeCmd) Run(cli *CLI) error {
	settings := cli.Container.Settings

	token := settings.BotToken
	if token == "" {
		return fmt.Errorf("bot token not configured (set bot_token in settings.json or the SHIFTBOT_TOKEN environment variable)")
	}

	listen := s.Listen
	if listen == ":8080" && settings.Listen != "" {
		listen = settings.Listen
	}

	client := telegram.NewClient(token)
	handler := telegram.NewHandler(
		cli.Container.Machine,
		client,
		cli.Container.Exporter,
		settings.BroadcastChat,
		token,
	)

	server := &http.Server{
		Addr:              listen,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Logger.Info("Starting webhook server", "listen", listen)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logging.Logger.Info("Shutting down webhook server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
