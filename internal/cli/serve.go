package cli

import (
	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/scribe/internal/api"
	"github.com/MikeSquared-Agency/scribe/internal/config"
)

var (
	servePort int
	serveOut  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve cleaned artifacts over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP port (defaults to SCRIBE_PORT)")
	serveCmd.Flags().StringVar(&serveOut, "out", "", "folder holding cleaned artifacts (defaults to SCRIBE_OUT_DIR)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	port := servePort
	if port == 0 {
		port = cfg.Port
	}
	outDir := serveOut
	if outDir == "" {
		outDir = cfg.OutDir
	}

	srv := api.NewServer(port, outDir)
	return srv.Start()
}
