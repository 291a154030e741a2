package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "harness.dev/pkg/harness/internal/model"
)

const forceFlagName = "force"

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write harness.yaml with the current run settings",
		Long: `Write harness.yaml to the working directory with every run setting (tool paths,
timeouts, crash polling, transport, log rotation) at its current value, so a CI job can
pin them in one place. Values already set through flags or HARNESS_* variables are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			write := viper.SafeWriteConfigAs
			if force {
				write = viper.WriteConfigAs
			}

			if err := write(targetPath); err != nil {
				return exitWith(m.ExitGeneralFailure, fmt.Errorf("failed to write %s: %w", targetPath, err))
			}

			cmd.Println("Wrote", targetPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, forceFlagName, false, "overwrite an existing configuration file")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
