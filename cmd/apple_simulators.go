package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"harness.dev/pkg/harness/internal/domain"
	m "harness.dev/pkg/harness/internal/model"
)

func newSimulatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulators",
		Short: "List, find and install simulators",
		RunE:  showHelp,
	}

	cmd.AddCommand(newSimulatorsListCmd(), newSimulatorsFindCmd(), newSimulatorsInstallCmd())

	return cmd
}

func newSimulatorsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available simulators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return exitWith(currentWorkflow().SimulatorsList(cmd.Context(), runArgs()))
		},
	}
}

func newSimulatorsFindCmd() *cobra.Command {
	var create, boot bool

	cmd := &cobra.Command{
		Use:   "find TARGET",
		Short: "Print the UDIDs of the simulators for a target",
		Long:  "Print the UDIDs of the simulators for a target. A watch target prints the watch and its companion phone.\n\n" + appleTargetHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := m.ParseTarget(args[0])
			if err != nil {
				return &exitError{code: m.ExitInvalidArguments, err: err}
			}

			return exitWith(currentWorkflow().SimulatorsFind(cmd.Context(), domain.SimulatorsFindArgs{
				RunArgs: runArgs(),
				Target:  target,
				Find: domain.FindOptions{
					RetryCount:      viper.GetInt(appleRetryCountKey),
					CreateIfMissing: create,
					WaitForBoot:     boot,
				},
			}))
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, "create a simulator when none matches")
	cmd.Flags().BoolVar(&boot, "boot", false, "boot the simulators before printing them")

	return cmd
}

func newSimulatorsInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install IMAGE",
		Short: "Install a simulator runtime from a disk image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitWith(currentWorkflow().SimulatorsInstall(cmd.Context(), domain.SimulatorsInstallArgs{ImagePath: args[0]}))
		},
	}
}
