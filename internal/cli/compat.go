package cli

import (
	"fmt"

	"github.com/packmeta-labs/packmeta/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(compatCmd)
}

var compatCmd = &cobra.Command{
	Use:   "compat <manifest.json> <engine-version>",
	Short: "Check a manifest against an engine release",
	Long:  `Check whether the given engine release meets the manifest's min_engine_version.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.ParseFile(args[0])
		if err != nil {
			return err
		}

		ok, err := manifest.MinEngineSatisfied(m, args[1])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("engine %s is older than required min_engine_version %s", args[1], m.Header.MinEngineVersion)
		}

		fmt.Printf("engine %s satisfies min_engine_version %s\n", args[1], m.Header.MinEngineVersion)
		return nil
	},
}
