package templates

// Page carries per-request layout settings.
type Page struct {
	Title     string
	DarkMode  bool
	RequestID string
}

type DashboardView struct {
	Year     int
	PrevYear int
	NextYear int
	HasNext  bool
	Greeting string
	Goal     string // formatted current daily goal, empty when none is set
	Summary  SummaryView
	Heatmap  HeatmapView
	Device   *DeviceView
}

type SummaryView struct {
	Total      string
	Average    string
	Best       string
	BestDay    string
	ActiveDays int
	GoalDays   int
	GoalRate   string
}

type HeatmapView struct {
	Months  []MonthCell
	Rows    []HeatmapRow
	Legend  []LegendStop
	MaxText string
}

type MonthCell struct {
	Name string
	Span int
}

type HeatmapRow struct {
	Label string
	Cells []HeatmapCell
}

// HeatmapCell is one day of the grid. Empty cells lie outside the year.
type HeatmapCell struct {
	Empty      bool
	Date       string
	Title      string
	Color      string
	LightColor string
	DarkColor  string
	Level      int
}

type LegendStop struct {
	Color      string
	LightColor string
	DarkColor  string
}

type DeviceView struct {
	Name           string
	Size           string
	Color          string
	FilterTracking bool
}

type ErrorView struct {
	Status    int
	Title     string
	Message   string
	RequestID string
}
