package cli

import (
	"fmt"
	"os"

	"github.com/packmeta-labs/packmeta/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint <manifest.json>",
	Short: "Validate a manifest against the document schema",
	Long: `Check a manifest.json against the embedded JSON Schema and report every
shape problem found. Lint is stricter than inspect: it flags issues the
normalizer tolerates, such as unknown module types.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := manifest.ValidateFile(args[0])
		if err != nil {
			return err
		}

		if result.Valid {
			fmt.Printf("%s: OK\n", args[0])
			return nil
		}

		for _, issue := range result.Issues {
			fmt.Fprintf(os.Stderr, "%s: %s\n", issue.Path, issue.Message)
		}
		return fmt.Errorf("%s: %d schema issue(s)", args[0], len(result.Issues))
	},
}
