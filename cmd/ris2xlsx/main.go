package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var rootCmd = &cobra.Command{
	Use:   "ris2xlsx",
	Short: "Convert RIS exports into grouped Excel reports",
	Long: `ris2xlsx converts RIS files exported from academic databases into
grouped Excel workbooks, one per source folder.

Files named like "1.(MTHFR and HPV)_0-100.ris" are grouped by their search
query; any other file forms its own group. Each workbook has a grouped view
and a flat raw view.

Commands:
  ris2xlsx run      - Process RIS folders (interactive unless flags given)
  ris2xlsx config   - Manage saved wizard defaults`,
	SilenceUsage: true,
}

func warnf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("⚠ "+format, args...)))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
