package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/instructvault/ivault-playground/internal/api"
	"github.com/instructvault/ivault-playground/internal/playground"
	"github.com/instructvault/ivault-playground/internal/ui/diffview"
	"github.com/instructvault/ivault-playground/internal/ui/lists"
)

var diffCmd = &cobra.Command{
	Use:   "diff <prompt>",
	Short: "Show how a prompt's spec differs between two references",
	Long: `Diff fetches the spec of a prompt under two references and prints a
unified line diff. An empty reference is the working tree.

Example:
  ivault-playground diff greet.prompt.yml --from prompts/v1.0.0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		client, err := api.NewClient(cfg.Server.URL, api.Options{Timeout: cfg.Server.Timeout})
		if err != nil {
			return err
		}
		return diffSpecs(cmd.Context(), client, cmd.OutOrStdout(), args[0], from, to)
	},
}

func init() {
	diffCmd.Flags().String("from", "", "reference of the old side (default: working tree)")
	diffCmd.Flags().String("to", "", "reference of the new side (default: working tree)")
	rootCmd.AddCommand(diffCmd)
}

type specSource interface {
	Prompt(ctx context.Context, path, ref string) (json.RawMessage, error)
}

func diffSpecs(ctx context.Context, src specSource, out io.Writer, prompt, from, to string) error {
	before, err := src.Prompt(ctx, prompt, from)
	if err != nil {
		return fmt.Errorf("fetching %s@%s: %w", prompt, lists.Label(from), err)
	}
	after, err := src.Prompt(ctx, prompt, to)
	if err != nil {
		return fmt.Errorf("fetching %s@%s: %w", prompt, lists.Label(to), err)
	}

	lines := diffview.Lines(playground.PrettyJSON(before), playground.PrettyJSON(after))
	if !diffview.Changed(lines) {
		_, _ = fmt.Fprintln(out, "No differences.")
		return nil
	}
	_, err = io.WriteString(out, diffview.Unified(prompt+"@"+lists.Label(from), prompt+"@"+lists.Label(to), lines))
	return err
}
