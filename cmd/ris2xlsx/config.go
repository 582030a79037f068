package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"ris2xlsx/internal/config"
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage saved wizard defaults",
	Long: `View and modify the defaults the run wizard starts from.

Commands:
  ris2xlsx config show    - Show current configuration
  ris2xlsx config set     - Interactive configuration editor
  ris2xlsx config reset   - Reset to defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2)

		content := fmt.Sprintf(`📁 Config file: %s

🔎 Filters:
   Year range:  %s
   Keywords:    %s
   Dedupe:      %v

📄 Sources:
   Folders:        %s
   Output folder:  %s`,
			path,
			valueOrDefault(cfg.Years, "(none)"),
			valueOrDefault(cfg.Keywords, "(none)"),
			cfg.Dedupe,
			cfg.Folders,
			cfg.OutputDir)

		fmt.Println(style.Render(content))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Interactive configuration editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Default year filter").
					Description("Inclusive range like 2007-2017; empty for none").
					Value(&cfg.Years).
					Validate(validateYearRange),
				huh.NewInput().
					Title("Default required keywords").
					Description("Comma-separated; empty for none").
					Value(&cfg.Keywords),
				huh.NewConfirm().
					Title("Deduplicate by default?").
					Value(&cfg.Dedupe),
			).Title("Filter Defaults"),

			huh.NewGroup(
				huh.NewInput().
					Title("Default source folders").
					Description("'all' or comma-separated folder names").
					Value(&cfg.Folders).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("type 'all' or at least one folder name")
						}
						return nil
					}),
				huh.NewInput().
					Title("Output folder").
					Value(&cfg.OutputDir).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("output folder is required")
						}
						return nil
					}),
			).Title("Source Settings"),
		).WithTheme(huh.ThemeCatppuccin())

		if err := form.Run(); err != nil {
			return err
		}

		cfg.Years = strings.TrimSpace(cfg.Years)
		cfg.Keywords = strings.TrimSpace(cfg.Keywords)
		cfg.Folders = strings.TrimSpace(cfg.Folders)
		cfg.OutputDir = strings.TrimSpace(cfg.OutputDir)

		if err := config.Save(path, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		fmt.Println()
		fmt.Println(successStyle.Render("✓ Configuration saved!"))
		fmt.Println(dimStyle.Render(fmt.Sprintf("  %s", path)))
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset configuration to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		if err := config.Save(path, config.Default()); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("✓ Configuration reset to defaults"))
		return nil
	},
}

func valueOrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
