package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/instructvault/ivault-playground/internal/api"
)

const checkTimeout = 5 * time.Second

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe the playground server's /health endpoint",
	Long: `Check sends GET /health to the configured server and exits non-zero
unless it answers {"status": "ok"}.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
		defer cancel()
		return probe(ctx, cfg.Server.URL, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// probe checks the server at baseURL and reports the outcome to out.
func probe(ctx context.Context, baseURL string, out io.Writer) error {
	client, err := api.NewClient(baseURL, api.Options{})
	if err != nil {
		return err
	}
	h, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("%s unreachable: %w", client.BaseURL(), err)
	}
	if !h.OK() {
		return fmt.Errorf("%s unhealthy: status %q", client.BaseURL(), h.Status)
	}
	_, _ = fmt.Fprintf(out, "%s ok\n", client.BaseURL())
	return nil
}
