package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"harness.dev/pkg/harness/internal/domain"
)

// wasmCmd groups the WASM commands.
var wasmCmd = newWasmCmd()

func newWasmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wasm",
		Short: "Run WASM apps",
		RunE:  showHelp,
	}

	cmd.AddCommand(newWasmTestBrowserCmd())

	return cmd
}

func init() {
	rootCmd.AddCommand(wasmCmd)
}

func newWasmTestBrowserCmd() *cobra.Command {
	var (
		app      string
		page     string
		appArgs  []string
		expected int
	)

	cmd := &cobra.Command{
		Use:   "test-browser",
		Short: "Serve a WASM app, run it in a headless browser and collect its results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return exitWith(currentWorkflow().WasmTestBrowser(cmd.Context(), domain.WasmArgs{
				RunArgs: runArgs(),
				Wasm: domain.WasmRunArgs{
					AppDir:           app,
					Page:             page,
					Args:             appArgs,
					ErrorPatterns:    viper.GetStringSlice(wasmErrorPatternsKey),
					ExpectedExitCode: expected,
				},
			}))
		},
	}

	cmd.Flags().StringVarP(&app, "app", "a", "", "directory with the app to serve")
	cmd.Flags().StringVar(&page, "page", "index.html", "page that starts the app")
	cmd.Flags().StringArrayVar(&appArgs, "arg", nil, "argument passed to the app (repeatable)")
	cmd.Flags().IntVar(&expected, "expected-exit-code", 0, "exit code that counts as success")
	cobra.CheckErr(cmd.MarkFlagRequired("app"))

	cmd.Flags().String(browserFlagName, "google-chrome", "browser executable")
	bindFlagToConfig(cmd.Flags().Lookup(browserFlagName), wasmBrowserKey)

	cmd.Flags().StringArray(errorPatternFlagName, nil, "regular expression that marks a console line as a failure (repeatable)")
	bindFlagToConfig(cmd.Flags().Lookup(errorPatternFlagName), wasmErrorPatternsKey)

	return cmd
}
