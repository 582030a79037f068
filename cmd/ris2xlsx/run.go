package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"ris2xlsx/internal/config"
	"ris2xlsx/internal/output"
	"ris2xlsx/internal/report"
	"ris2xlsx/internal/scan"
)

var (
	runFlagRoot    string
	runFlagOut     string
	runFlagYears   string
	runFlagOnly    string
	runFlagDedupe  bool
	runFlagFolders string
	runFlagNoInput bool
)

func init() {
	runCmd.Flags().StringVar(&runFlagRoot, "root", ".", "Directory containing the RIS source folders")
	runCmd.Flags().StringVar(&runFlagOut, "out", "", "Output directory for workbooks (default from config)")
	runCmd.Flags().StringVar(&runFlagYears, "years", "", "Inclusive year filter, e.g. 2007-2017")
	runCmd.Flags().StringVar(&runFlagOnly, "only", "", "Comma-separated keywords that must all appear in the title")
	runCmd.Flags().BoolVar(&runFlagDedupe, "dedupe", false, "Keep only one record per duplicate")
	runCmd.Flags().StringVar(&runFlagFolders, "folders", "", "Source folders: 'all' or comma-separated names")
	runCmd.Flags().BoolVar(&runFlagNoInput, "no-input", false, "Never prompt; use flags and saved defaults only")

	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process RIS folders into grouped Excel workbooks",
	Long: `Process every selected folder of RIS files into one Excel workbook,
results_<folder>_grouped.xlsx, with a grouped_results and a raw_results sheet.

Without --no-input, a short wizard asks for the filters, prefilled from the
saved defaults (see "ris2xlsx config").

Examples:
  # Interactive run over the current directory
  ris2xlsx run

  # Scripted run: 2007-2017, both keywords required, duplicates removed
  ris2xlsx run --no-input --years 2007-2017 --only MTHFR,HPV --dedupe --folders all`,
	RunE: runRun,
}

// runAnswers is the validated configuration one run executes with.
type runAnswers struct {
	years    string
	keywords string
	dedupe   bool
	folders  string
	outDir   string
}

func runRun(cmd *cobra.Command, args []string) error {
	saved := loadConfigOrDefault()

	ans := runAnswers{
		years:    saved.Years,
		keywords: saved.Keywords,
		dedupe:   saved.Dedupe,
		folders:  saved.Folders,
		outDir:   saved.OutputDir,
	}
	if cmd.Flags().Changed("years") {
		ans.years = runFlagYears
	}
	if cmd.Flags().Changed("only") {
		ans.keywords = runFlagOnly
	}
	if cmd.Flags().Changed("dedupe") {
		ans.dedupe = runFlagDedupe
	}
	if cmd.Flags().Changed("folders") {
		ans.folders = runFlagFolders
	}
	if cmd.Flags().Changed("out") {
		ans.outDir = runFlagOut
	}

	if !runFlagNoInput {
		if err := askRunAnswers(&ans); err != nil {
			return err
		}
	}

	filters := report.Filters{Keywords: report.ParseKeywords(ans.keywords)}
	if strings.TrimSpace(ans.years) != "" {
		lo, hi, err := report.ParseYearRange(ans.years)
		if err != nil {
			// A bad saved/flag value must not abort a no-input run; the
			// wizard path validates before we get here.
			warnf("%v; year filter disabled", err)
		} else {
			filters.YearSet, filters.MinYear, filters.MaxYear = true, lo, hi
		}
	}

	dirs, missing, err := scan.SelectFolders(runFlagRoot, ans.folders)
	if err != nil {
		return err
	}
	for _, name := range missing {
		warnf("folder %q not found under %s, skipping", name, runFlagRoot)
	}
	if len(dirs) == 0 {
		fmt.Println(dimStyle.Render("No RIS folders to process."))
		return nil
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("Processing %d folder(s)", len(dirs))))

	if err := os.MkdirAll(ans.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	engine := report.Engine{Filters: filters, Dedupe: ans.dedupe}

	var created []string
	for _, dir := range dirs {
		files, err := scan.ListFiles(dir)
		if err != nil {
			warnf("skipping folder %s: %v", dir, err)
			continue
		}
		if len(files) == 0 {
			fmt.Println(dimStyle.Render(fmt.Sprintf("[%s] no RIS files, skipped", filepath.Base(dir))))
			continue
		}

		res := engine.ProcessFolder(dir, files)
		for _, w := range res.Warnings {
			warnf("[%s] %s", res.Folder, w)
		}

		outPath := filepath.Join(ans.outDir, output.WorkbookName(res.Folder))
		if err := output.WriteWorkbook(outPath, res); err != nil {
			// Losing the output directory is the one fatal condition.
			return err
		}
		created = append(created, outPath)

		fmt.Printf("[%s] files=%d parsed=%d kept=%d dedup_removed=%d output=%s\n",
			res.Folder, res.Stats.Files, res.Stats.Parsed, res.Stats.Kept,
			res.Stats.DupesRemoved, outPath)
	}

	fmt.Println()
	if len(created) == 0 {
		fmt.Println(dimStyle.Render("No workbooks created (no RIS files found in the selected folders)."))
		return nil
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("✓ Created %d workbook(s):", len(created))))
	for _, p := range created {
		fmt.Println(dimStyle.Render("  - " + p))
	}
	return nil
}

// askRunAnswers runs the interactive wizard, prefilled with the current
// answers.
func askRunAnswers(ans *runAnswers) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Year filter").
				Description("Inclusive range like 2007-2017; empty for no filter").
				Value(&ans.years).
				Validate(validateYearRange),
			huh.NewInput().
				Title("Required keywords").
				Description("Comma-separated; every keyword must appear in the title; empty for no filter").
				Value(&ans.keywords),
			huh.NewConfirm().
				Title("Write only one from duplicate articles?").
				Value(&ans.dedupe),
		).Title("Filters"),

		huh.NewGroup(
			huh.NewInput().
				Title("Source folders").
				Description("'all' to auto-detect, or comma-separated folder names").
				Value(&ans.folders).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("type 'all' or at least one folder name")
					}
					return nil
				}),
			huh.NewInput().
				Title("Output folder").
				Value(&ans.outDir).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("output folder is required")
					}
					return nil
				}),
		).Title("Sources"),
	).WithTheme(huh.ThemeCatppuccin())

	return form.Run()
}

func validateYearRange(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, _, err := report.ParseYearRange(s)
	return err
}

func loadConfigOrDefault() config.Config {
	path, err := config.Path()
	if err != nil {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		warnf("ignoring config: %v", err)
		return config.Default()
	}
	return cfg
}
