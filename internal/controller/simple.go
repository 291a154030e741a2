package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "harness.dev/pkg/harness/internal/model"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// DisplaySimulators prints one row per simulator, grouped by category. The category is
// only named on the first row of its group.
func (s *SimpleUI) DisplaySimulators(ctx context.Context, groups []DeviceGroup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		rows  [][]string
		total int
	)

	for _, group := range groups {
		for i, sim := range group.Devices {
			title := ""
			if i == 0 {
				title = group.Title
			}

			rows = append(rows, []string{title, sim.Name, sim.UDID, sim.OSVersion, string(sim.State), sim.CompanionUDID})
		}

		total += len(group.Devices)
	}

	s.printf("%s", renderTable(
		[]string{"Category", "Name", "UDID", "OS", "State", "Companion"},
		rows,
		fmt.Sprintf("Total %d", total),
	))

	return nil
}

// DisplayDevices prints one row per hardware or Android device.
func (s *SimpleUI) DisplayDevices(ctx context.Context, devices []m.Device) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(devices))
	for _, d := range devices {
		api := ""
		if d.APILevel > 0 {
			api = strconv.Itoa(d.APILevel)
		}

		rows = append(rows, []string{d.Name, d.UDID, d.DeviceType, d.OSVersion, d.Architecture, api})
	}

	s.printf("%s", renderTable(
		[]string{"Name", "ID", "Type", "OS", "Arch", "API"},
		rows,
		fmt.Sprintf("Total %d", len(devices)),
	))

	return nil
}

// DisplayUDIDs prints the UDID of every device, one per line.
func (s *SimpleUI) DisplayUDIDs(ctx context.Context, devices []m.Device) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, d := range devices {
		s.printf("%s\n", d.UDID)
	}

	return nil
}

// DisplayOutcome prints the verdict and exit code of a command.
func (s *SimpleUI) DisplayOutcome(ctx context.Context, outcome Outcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if outcome.Result != nil {
		s.printf("%s\n", s.style(outcome.Code, outcome.Result.String()))
	}

	s.printf("%s: %s\n", outcome.Command, s.style(outcome.Code, fmt.Sprintf("%s (%d)", outcome.Code, int(outcome.Code))))

	if outcome.Manifest != "" {
		line := "Artifacts: " + outcome.Manifest
		if s.styled {
			line = faintStyle.Render(line)
		}

		s.printf("%s\n", line)
	}

	return nil
}

func (s *SimpleUI) style(code m.ExitCode, text string) string {
	if !s.styled {
		return text
	}

	if code == m.ExitSuccess {
		return successStyle.Render(text)
	}

	return failureStyle.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderTable(header []string, rows [][]string, footer string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)

	footerRow := make([]string, len(header))
	footerRow[0] = footer
	table.SetFooter(footerRow)

	table.Render()

	return tableBuffer.String()
}
