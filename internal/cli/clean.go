package cli

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/scribe/internal/config"
	"github.com/MikeSquared-Agency/scribe/internal/events"
	"github.com/MikeSquared-Agency/scribe/internal/runner"
	"github.com/MikeSquared-Agency/scribe/internal/store"
)

var (
	cleanIn          string
	cleanOut         string
	cleanDatabaseURL string
	cleanPublish     bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a ChatGPT export into markdown, JSON, and JSONL artifacts",
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().StringVar(&cleanIn, "in", "", "path to the conversations.json export file")
	cleanCmd.Flags().StringVar(&cleanOut, "out", "", "output folder for cleaned artifacts")
	cleanCmd.Flags().StringVar(&cleanDatabaseURL, "database-url", "", "optional Postgres URL to persist conversations (defaults to DATABASE_URL)")
	cleanCmd.Flags().BoolVar(&cleanPublish, "publish", false, "publish cleaning events to NATS")
	cleanCmd.MarkFlagRequired("in")
	cleanCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var st *store.Store
	dbURL := cleanDatabaseURL
	if dbURL == "" {
		dbURL = cfg.DatabaseURL
	}
	if dbURL != "" {
		var err error
		st, err = store.New(ctx, dbURL)
		if err != nil {
			return err
		}
		defer st.Close()
		slog.Info("database connected")
	}

	var pub *events.Publisher
	if cleanPublish {
		var err error
		pub, err = events.NewPublisher(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			return err
		}
		defer pub.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)
	}

	r := runner.New(runner.Config{InputPath: cleanIn, OutDir: cleanOut}, st, pub, slog.Default())
	_, err := r.Run(ctx)
	return err
}
