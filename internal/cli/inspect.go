package cli

import (
	"encoding/json"
	"fmt"

	"github.com/packmeta-labs/packmeta/internal/config"
	"github.com/packmeta-labs/packmeta/internal/manifest"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var inspectFormat string

func init() {
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "", "Output format: json or yaml (default from config)")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <manifest.json>",
	Short: "Normalize a manifest and print the result",
	Long: `Parse a Bedrock addon manifest.json, normalize its versions, modules,
dependencies, and capabilities, and print the normalized model.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	m, err := manifest.ParseFile(args[0])
	if err != nil {
		return err
	}

	format := inspectFormat
	if format == "" {
		config.Load()
		format = config.OutputFormat()
	}

	view := newManifestView(m)
	switch format {
	case "json":
		out, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling manifest: %w", err)
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(view)
		if err != nil {
			return fmt.Errorf("marshaling manifest: %w", err)
		}
		fmt.Print(string(out))
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
	return nil
}
