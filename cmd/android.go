package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"harness.dev/pkg/harness/internal/adapter"
	"harness.dev/pkg/harness/internal/domain"
)

// androidCmd groups the Android device and emulator commands.
var androidCmd = newAndroidCmd()

func newAndroidCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "android",
		Short: "Install and run instrumentations on Android devices and emulators",
		RunE:  showHelp,
	}

	cmd.PersistentFlags().String(adbFlagName, "adb", "path of the adb executable")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(adbFlagName), androidAdbKey)

	cmd.PersistentFlags().String(deviceArchFlagName, "", "only use a device with this ABI, e.g. arm64-v8a")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(deviceArchFlagName), androidArchKey)

	cmd.PersistentFlags().Int(apiVersionFlagName, 0, "only use a device with this API level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(apiVersionFlagName), androidAPIVersionKey)

	cmd.PersistentFlags().String(deviceIDFlagName, "", "serial of the device to use")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(deviceIDFlagName), androidDeviceIDKey)

	cmd.AddCommand(
		newAndroidDeviceCmd(),
		newAndroidInstallCmd(),
		newAndroidUninstallCmd(),
		newAndroidRunCmd(),
		newAndroidTestCmd(),
	)

	return cmd
}

func init() {
	rootCmd.AddCommand(androidCmd)
}

func androidQuery() domain.AndroidDeviceQuery {
	return domain.AndroidDeviceQuery{
		Serial:       viper.GetString(androidDeviceIDKey),
		Architecture: viper.GetString(androidArchKey),
		APILevel:     viper.GetInt(androidAPIVersionKey),
	}
}

// instrumentationFlags are shared by run and test.
type instrumentationFlags struct {
	packageName     string
	instrumentation string
	extras          map[string]string
	expected        int
}

func (f *instrumentationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.packageName, "package-name", "p", "", "package of the test app")
	cmd.Flags().StringVarP(&f.instrumentation, "instrumentation", "i", "", "instrumentation class (default: the package's)")
	cmd.Flags().StringToStringVar(&f.extras, "arg", nil, "instrumentation argument (KEY=VALUE, repeatable)")
	cmd.Flags().IntVar(&f.expected, "expected-exit-code", 0, "return code that counts as success")

	cobra.CheckErr(cmd.MarkFlagRequired("package-name"))
}

func (f *instrumentationFlags) args() domain.InstrumentationArgs {
	return domain.InstrumentationArgs{
		InstrumentArgs: adapter.InstrumentArgs{
			PackageName:     f.packageName,
			Instrumentation: f.instrumentation,
			Extras:          f.extras,
			Timeout:         viper.GetDuration(timeoutFlagName),
		},
		ExpectedExitCode: f.expected,
	}
}

func newAndroidDeviceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "device",
		Short: "Print the device that matches the selection flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return exitWith(currentWorkflow().AndroidDevice(cmd.Context(), domain.AndroidDeviceArgs{Query: androidQuery()}))
		},
	}
}

func newAndroidInstallCmd() *cobra.Command {
	var apk string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install an apk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return exitWith(currentWorkflow().AndroidInstall(cmd.Context(), domain.AndroidInstallArgs{
				RunArgs: runArgs(),
				Query:   androidQuery(),
				APK:     apk,
			}))
		},
	}

	cmd.Flags().StringVar(&apk, "apk", "", "path of the apk to install")
	cobra.CheckErr(cmd.MarkFlagRequired("apk"))

	return cmd
}

func newAndroidUninstallCmd() *cobra.Command {
	var packageName string

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Uninstall a package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return exitWith(currentWorkflow().AndroidUninstall(cmd.Context(), domain.AndroidUninstallArgs{
				RunArgs:     runArgs(),
				Query:       androidQuery(),
				PackageName: packageName,
			}))
		},
	}

	cmd.Flags().StringVarP(&packageName, "package-name", "p", "", "package to remove")
	cobra.CheckErr(cmd.MarkFlagRequired("package-name"))

	return cmd
}

func newAndroidRunCmd() *cobra.Command {
	flags := &instrumentationFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the instrumentation of an installed package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return exitWith(currentWorkflow().AndroidRun(cmd.Context(), domain.AndroidRunArgs{
				RunArgs:         runArgs(),
				Query:           androidQuery(),
				Instrumentation: flags.args(),
			}))
		},
	}

	flags.register(cmd)

	return cmd
}

func newAndroidTestCmd() *cobra.Command {
	flags := &instrumentationFlags{}

	var apk string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Install an apk, run its instrumentation and uninstall it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return exitWith(currentWorkflow().AndroidTest(cmd.Context(), domain.AndroidTestArgs{
				RunArgs:         runArgs(),
				Query:           androidQuery(),
				APK:             apk,
				Instrumentation: flags.args(),
			}))
		},
	}

	cmd.Flags().StringVar(&apk, "apk", "", "path of the apk to install")
	cobra.CheckErr(cmd.MarkFlagRequired("apk"))
	flags.register(cmd)

	return cmd
}
