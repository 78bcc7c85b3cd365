package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/diegoclair/shift-roster/internal/events"
	"github.com/diegoclair/shift-roster/internal/handlers"
)

const shutdownTimeout = 10 * time.Second

// ServeCmd runs the HTTP API, the Slack command endpoint and the digest.
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Start the REST API under /api/v1, the Slack slash command endpoint at
/slack/commands and Prometheus metrics at /metrics.

The seed file (--seed or SEED_FILE) is applied before the server accepts
requests. State lives in memory and is lost on exit.`,
		RunE: runServe,
	}

	cmd.Flags().String("seed", "", "Seed file to apply at startup (overrides SEED_FILE)")
	cmd.Flags().String("port", "", "Port to listen on (overrides PORT)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}
	seedFile := cfg.SeedFile
	if path, _ := cmd.Flags().GetString("seed"); path != "" {
		seedFile = path
	}

	logger := commandLogger(cfg, cmd.ErrOrStderr())

	rt, err := newRuntime(cfg, logger, runtimeOptions{openDB: true, slack: true})
	if err != nil {
		return err
	}
	defer rt.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := rt.loadSeed(ctx, seedFile); err != nil {
		return err
	}

	if cfg.MQTTBroker != "" {
		publisher, err := events.Connect(events.Config{
			Broker:   cfg.MQTTBroker,
			ClientID: cfg.MQTTClientID,
			Prefix:   cfg.MQTTTopicPrefix,
		}, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to MQTT broker: %w", err)
		}
		unsubscribe := rt.store.Subscribe(publisher.Handle)
		rt.addCloser(func() {
			unsubscribe()
			publisher.Close()
		})
		logger.Info("publishing store events", "broker", cfg.MQTTBroker, "prefix", cfg.MQTTTopicPrefix)
	}

	rt.services.Digest.Start()
	defer rt.services.Digest.Stop()

	var slackHandler *handlers.SlackHandler
	if cfg.SlackSigningSecret != "" {
		slackHandler = handlers.NewSlackHandler(rt.services.Roster, cfg.SlackSigningSecret, cfg.Timezone, logger)
	} else {
		logger.Warn("SLACK_SIGNING_SECRET not set, /slack/commands disabled")
	}

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: handlers.NewServer(handlers.Options{
			RosterService: rt.services.Roster,
			Slack:         slackHandler,
			Metrics:       rt.metrics.Handler(),
			Logger:        logger,
		}).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
