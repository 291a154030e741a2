package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	m "harness.dev/pkg/harness/internal/model"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the harness version and supported targets",
		Long:  "Print the build version, source revision and Go version, followed by the target platforms accepted by --target.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, revision, goVersion := "unknown", "", ""

			if info, ok := debug.ReadBuildInfo(); ok {
				goVersion = info.GoVersion

				if info.Main.Version != "" {
					version = info.Main.Version
				}

				for _, s := range info.Settings {
					if s.Key == "vcs.revision" {
						revision = s.Value
					}
				}
			}

			cmd.Println("harness\t", version)

			if revision != "" {
				cmd.Println("revision\t", revision)
			}

			if goVersion != "" {
				cmd.Println("go\t", goVersion)
			}

			targets := make([]string, 0, len(m.Platforms()))
			for _, p := range m.Platforms() {
				targets = append(targets, string(p))
			}

			cmd.Println("targets\t", strings.Join(targets, ", "))
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
