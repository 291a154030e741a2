package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"harness.dev/pkg/harness/internal/domain"
	m "harness.dev/pkg/harness/internal/model"
)

const appleTargetHelp = `Targets are <platform>[_<version>], e.g. ios-simulator-64, ios-simulator-64_17.2,
tvos-simulator, watchos-simulator, xros-simulator, ios-device, tvos-device, watchos-device.`

// appleCmd groups the Apple simulator and device commands.
var appleCmd = newAppleCmd()

func newAppleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apple",
		Short: "Run apps on Apple simulators and devices",
		RunE:  showHelp,
	}

	cmd.PersistentFlags().String(xcodeFlagName, "", "path of the Xcode installation to use")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(xcodeFlagName), appleXcodeKey)

	cmd.PersistentFlags().String(mlaunchFlagName, "mlaunch", "path of the launch helper")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(mlaunchFlagName), appleMlaunchKey)

	cmd.PersistentFlags().Bool(resetSimulatorFlagName, false, "erase and reboot the simulators after the run")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(resetSimulatorFlagName), appleResetSimulatorKey)

	cmd.PersistentFlags().Bool(killAllFlagName, false, "stop every simulator process after the run")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(killAllFlagName), appleKillAllKey)

	cmd.AddCommand(
		newAppleRunCmd("test", "Run a test app and report its test results",
			func(ctx context.Context, w domain.Workflow, args domain.AppleArgs) (m.ExitCode, error) {
				return w.AppleTest(ctx, args)
			}),
		newAppleRunCmd("run", "Run an app and report its exit code and crashes",
			func(ctx context.Context, w domain.Workflow, args domain.AppleArgs) (m.ExitCode, error) {
				return w.AppleRun(ctx, args)
			}),
		newSimulatorsCmd(),
	)

	return cmd
}

func init() {
	rootCmd.AddCommand(appleCmd)
}

type appleRunFlags struct {
	app        string
	target     string
	deviceName string
	tunnel     bool
	env        map[string]string
	args       []string
	create     bool
}

type appleRunFunc func(ctx context.Context, w domain.Workflow, args domain.AppleArgs) (m.ExitCode, error)

func newAppleRunCmd(use, short string, run appleRunFunc) *cobra.Command {
	flags := &appleRunFlags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short + ".\n\n" + appleTargetHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := flags.appleArgs()
			if err != nil {
				return err
			}

			return exitWith(run(cmd.Context(), currentWorkflow(), args))
		},
	}

	cmd.Flags().StringVarP(&flags.app, "app", "a", "", "path of the .app bundle")
	cmd.Flags().StringVarP(&flags.target, "target", "t", "", "target to run on")
	cmd.Flags().StringVar(&flags.deviceName, "device-name", "", "name or UDID of the device or simulator to use")
	cmd.Flags().BoolVar(&flags.tunnel, "tunnel", false, "route device results through a TCP tunnel")
	cmd.Flags().StringToStringVar(&flags.env, "set-env", nil, "environment variable for the app (KEY=VALUE, repeatable)")
	cmd.Flags().StringArrayVar(&flags.args, "arg", nil, "argument passed to the app (repeatable)")
	cmd.Flags().BoolVar(&flags.create, "create-simulator", false, "create a simulator when none matches the target")

	cobra.CheckErr(cmd.MarkFlagRequired("app"))
	cobra.CheckErr(cmd.MarkFlagRequired("target"))

	return cmd
}

func (f *appleRunFlags) appleArgs() (domain.AppleArgs, error) {
	target, err := m.ParseTarget(f.target)
	if err != nil {
		return domain.AppleArgs{}, &exitError{code: m.ExitInvalidArguments, err: err}
	}

	if f.tunnel && target.Platform.IsSimulator() {
		return domain.AppleArgs{}, &exitError{code: m.ExitInvalidArguments, err: fmt.Errorf("--tunnel only applies to device targets")}
	}

	return domain.AppleArgs{
		RunArgs:    runArgs(),
		AppPath:    f.app,
		Target:     target,
		DeviceName: f.deviceName,
		Find: domain.FindOptions{
			RetryCount:      viper.GetInt(appleRetryCountKey),
			CreateIfMissing: f.create,
			WaitForBoot:     true,
		},
		Tunnel: f.tunnel,
		Env:    f.env,
		Args:   f.args,
	}, nil
}
