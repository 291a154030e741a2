// Package cmd provides the root command and CLI setup for harness.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"harness.dev/pkg/harness/internal/adapter"
	"harness.dev/pkg/harness/internal/controller"
	"harness.dev/pkg/harness/internal/domain"
	m "harness.dev/pkg/harness/internal/model"
)

var processes adapter.ProcessManager
var workflow domain.Workflow
var ui controller.UI

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies. The workflow is built once flags are parsed because the
	// tool paths come from configuration.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	processes = adapter.NewLocalProcessManager()
}

const rootLongDescription = `Harness runs test applications on Android devices and emulators, Apple
simulators and devices, and in headless browsers for WASM, then turns launch
results, crash reports and streamed test results into one verdict and exit code.

Every run writes its artifacts (tool output, test logs, crash reports) into the
output directory together with a logs.yaml manifest.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "harness",
		Short:         "Device, simulator and browser test runner",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: showHelp,
	}
}

// showHelp prints the usage of a command group invoked without a subcommand.
func showHelp(cmd *cobra.Command, _ []string) error {
	if err := cmd.Help(); err != nil {
		return err
	}

	return &exitError{code: m.ExitHelpShown}
}

func configureRootFlags(cmd *cobra.Command) {
	defaults := domain.DefaultRunConfig()

	cmd.PersistentFlags().StringP(outputFlagName, "o", viper.GetString(outputFlagName), "output directory for run artifacts")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().Duration(timeoutFlagName, defaults.Timeout, "timeout for the whole test execution")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(timeoutFlagName), timeoutFlagName)

	cmd.PersistentFlags().Duration(launchTimeoutFlagName, defaults.LaunchTimeout, "how long the app may take to launch and connect")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(launchTimeoutFlagName), launchTimeoutKey)

	cmd.PersistentFlags().String(transportFlagName, string(defaults.Transport), "result transport: auto, tcp or file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(transportFlagName), transportFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file (default from log.filename)")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// currentWorkflow returns the workflow, building it from configuration on first use.
func currentWorkflow() domain.Workflow {
	if workflow == nil {
		workflow = newWorkflow()
	}

	return workflow
}

func newWorkflow() domain.Workflow {
	xcode := viper.GetString(appleXcodeKey)
	mlaunch := adapter.NewMlaunch(viper.GetString(appleMlaunchKey), xcode, processes)

	return domain.NewWorkflow(domain.WorkflowDeps{
		Adb:          adapter.NewLocalAdbClient(viper.GetString(androidAdbKey), processes),
		Mlaunch:      mlaunch,
		Control:      adapter.NewSimctl(processes),
		Symbolicator: &adapter.XcodeSymbolicator{XcodeRoot: xcode, Processes: processes, Timeout: time.Minute},
		UI:           ui,
		NewBrowser: func(log io.Writer) adapter.Browser {
			return adapter.NewChromeBrowser(viper.GetString(wasmBrowserKey), processes, log)
		},
	})
}

// exitError carries the process exit code of a finished command.
type exitError struct {
	code m.ExitCode
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return e.code.String()
	}

	return fmt.Sprintf("%s: %v", e.code, e.err)
}

func (e *exitError) Unwrap() error {
	return e.err
}

// exitWith turns a workflow result into the command's error.
func exitWith(code m.ExitCode, err error) error {
	if code == m.ExitSuccess {
		if err != nil {
			return &exitError{code: m.ExitGeneralFailure, err: err}
		}

		return nil
	}

	return &exitError{code: code, err: err}
}

// exitCode maps a command error to the process exit code. Errors that did not come from a
// workflow are argument or flag errors.
func exitCode(err error) m.ExitCode {
	if err == nil {
		return m.ExitSuccess
	}

	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}

	return m.ExitInvalidArguments
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err == nil {
		return
	}

	var exit *exitError
	if !errors.As(err, &exit) || exit.err != nil {
		rootCmd.PrintErrln("Error:", err)
	}

	os.Exit(int(exitCode(err)))
}
