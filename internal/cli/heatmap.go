package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/hydrate/internal/domain"
	"github.com/emiliopalmerini/hydrate/internal/heatmap"
	"github.com/emiliopalmerini/hydrate/internal/pkg/tui/components"
	tuitheme "github.com/emiliopalmerini/hydrate/internal/pkg/tui/theme"
	"github.com/emiliopalmerini/hydrate/internal/theme"
	"github.com/emiliopalmerini/hydrate/internal/util"
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Render the intake heatmap in the terminal",
	Long: `Render a year of intake as a calendar heatmap.

Data comes either from a file mapping dates to liters (JSON, or YAML when the
file ends in .yaml or .yml) or from the backend API.

Examples:
  hydrate heatmap --file intake.json             # Current year from a file
  hydrate heatmap --file intake.yaml --year 2023 # A past year
  hydrate heatmap --api --theme dark             # From the backend, dark colors
  hydrate heatmap --api --json                   # Dump the calendar as JSON`,
	RunE: runHeatmap,
}

// Flags
var (
	heatmapYear  int
	heatmapFile  string
	heatmapAPI   bool
	heatmapTheme string
	heatmapJSON  bool
)

func init() {
	rootCmd.AddCommand(heatmapCmd)

	heatmapCmd.Flags().IntVarP(&heatmapYear, "year", "y", 0, "Calendar year (default: current year)")
	heatmapCmd.Flags().StringVarP(&heatmapFile, "file", "f", "", "JSON or YAML file of date to liters")
	heatmapCmd.Flags().BoolVar(&heatmapAPI, "api", false, "Load intake from the backend API")
	heatmapCmd.Flags().StringVarP(&heatmapTheme, "theme", "t", "light", "Color theme: light or dark")
	heatmapCmd.Flags().BoolVar(&heatmapJSON, "json", false, "Print the calendar as JSON")

	heatmapCmd.MarkFlagsMutuallyExclusive("file", "api")
	heatmapCmd.MarkFlagsOneRequired("file", "api")
}

// heatmapData is what a heatmap is drawn from.
type heatmapData struct {
	Values     heatmap.DailyValues
	GoalLiters float64
	Today      string
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	mode, ok := theme.Parse(heatmapTheme)
	if !ok {
		return fmt.Errorf("invalid theme %q: use light or dark", heatmapTheme)
	}

	year := heatmapYear
	if year == 0 {
		year = time.Now().Year()
	}
	if year < 1 || year > 9999 {
		return fmt.Errorf("invalid year %d", year)
	}

	var data heatmapData
	if heatmapFile != "" {
		values, err := loadValuesFile(heatmapFile)
		if err != nil {
			return err
		}
		data.Values = values
	} else {
		var err error
		data, err = fetchHeatmapData(cmd.Context(), year)
		if err != nil {
			return err
		}
	}

	cal := heatmap.Build(data.Values, year)
	scale := heatmap.DefaultColorScale()
	out := cmd.OutOrStdout()

	if heatmapJSON {
		return writeHeatmapJSON(out, heatmap.NewDocument(cal, scale))
	}
	renderHeatmap(out, cal, scale, mode, data)
	return nil
}

func fetchHeatmapData(ctx context.Context, year int) (heatmapData, error) {
	app, err := NewAppContext(ctx)
	if err != nil {
		return heatmapData{}, err
	}
	defer app.Close(ctx)

	api, err := app.API()
	if err != nil {
		return heatmapData{}, err
	}
	loc, err := app.Config.Location()
	if err != nil {
		return heatmapData{}, err
	}
	today := time.Now().In(loc)

	intake, err := api.GetLiquidIntake(ctx, domain.IntakeRequestForYear(year, today))
	if err != nil {
		return heatmapData{}, fmt.Errorf("failed to load intake: %w", err)
	}
	goals, err := api.GetHydrationGoal(ctx, domain.LatestGoalRequest())
	if err != nil {
		return heatmapData{}, fmt.Errorf("failed to load hydration goal: %w", err)
	}

	data := heatmapData{
		Values: domain.DailyTotals(intake.Entries, loc),
		Today:  today.Format("2006-01-02"),
	}
	if goal, ok := domain.CurrentGoal(*goals); ok {
		data.GoalLiters = goal.VolumeInLiter
	}
	return data, nil
}

// loadValuesFile reads a date to liters mapping from path.
func loadValuesFile(path string) (heatmap.DailyValues, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	values, err := parseValues(raw, ext == ".yaml" || ext == ".yml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return values, nil
}

func parseValues(raw []byte, isYAML bool) (heatmap.DailyValues, error) {
	var doc map[string]any
	if isYAML {
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	} else {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	}

	values := make(heatmap.DailyValues, len(doc))
	for date, v := range doc {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, fmt.Errorf("invalid date %q", date)
		}
		f, ok := util.ToFloat64(v)
		if !ok {
			return nil, fmt.Errorf("invalid value for %s: %v", date, v)
		}
		if f < 0 {
			return nil, fmt.Errorf("negative value for %s: %v", date, f)
		}
		values[date] = f
	}
	return values, nil
}

func writeHeatmapJSON(w io.Writer, doc heatmap.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func renderHeatmap(w io.Writer, cal heatmap.Calendar, scale heatmap.ColorScale, mode theme.Mode, data heatmapData) {
	styles := tuitheme.Default()
	summary := domain.Summarize(data.Values, cal.Year, data.GoalLiters)

	fmt.Fprintln(w, styles.Title.Render(fmt.Sprintf("Hydration %d", cal.Year)))
	fmt.Fprintln(w, components.NewHeatmap(cal, scale, mode).View())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %s\n", styles.Label.Render("Total:      "), util.FormatLiters(summary.TotalLiters))
	fmt.Fprintf(w, "%s %d\n", styles.Label.Render("Active days:"), summary.ActiveDays)
	if summary.ActiveDays > 0 {
		fmt.Fprintf(w, "%s %s\n", styles.Label.Render("Daily avg:  "), util.FormatLiters(summary.AverageLiters()))
		fmt.Fprintf(w, "%s %s (%s)\n", styles.Label.Render("Best day:   "),
			util.FormatDateHuman(summary.BestDay), util.FormatLiters(summary.BestLiters))
	}
	if data.GoalLiters > 0 {
		fmt.Fprintf(w, "%s %d of %d days at %s\n", styles.Label.Render("Goal met:   "),
			summary.GoalDays, summary.ActiveDays, util.FormatLiters(data.GoalLiters))
	}
	fmt.Fprintf(w, "%s %s\n", styles.Label.Render("By month:   "), components.Sparkline(monthlyTotals(data.Values, cal.Year)))

	if data.GoalLiters > 0 && data.Today != "" && strings.HasPrefix(data.Today, fmt.Sprintf("%04d-", cal.Year)) {
		today := data.Values[data.Today]
		bar := components.NewProgress(20, today, data.GoalLiters)
		fmt.Fprintf(w, "%s %s %s\n", styles.Label.Render("Today:      "), bar.View(),
			util.FormatPercent(today/data.GoalLiters))
	}
}

// monthlyTotals sums values per month of year.
func monthlyTotals(values heatmap.DailyValues, year int) []float64 {
	totals := make([]float64, 12)
	prefix := fmt.Sprintf("%04d-", year)
	for date, v := range values {
		if !strings.HasPrefix(date, prefix) || v <= 0 {
			continue
		}
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			continue
		}
		totals[day.Month()-1] += v
	}
	return totals
}
