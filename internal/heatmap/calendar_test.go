package heatmap

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestAnchor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-01", "2024-01-01"}, // Monday
		{"2023-01-01", "2022-12-26"}, // Sunday
		{"2025-01-01", "2024-12-30"}, // Wednesday
		{"2022-01-01", "2021-12-27"}, // Saturday
		{"2024-03-15", "2024-03-11"},
	}

	for _, tt := range tests {
		day, _ := time.Parse(dateLayout, tt.in)
		got := Anchor(day).Format(dateLayout)
		if got != tt.want {
			t.Errorf("Anchor(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestAnchor_DropsTimeOfDay(t *testing.T) {
	in := time.Date(2024, time.June, 16, 23, 59, 0, 0, time.UTC) // Sunday
	got := Anchor(in)
	want := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Anchor() = %v, want %v", got, want)
	}
}

func TestAnchor_AlwaysMondayForJanFirst(t *testing.T) {
	for year := 1990; year <= 2060; year++ {
		a := Anchor(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
		if a.Weekday() != time.Monday {
			t.Errorf("year %d: anchor %s is %s", year, a.Format(dateLayout), a.Weekday())
		}
		if diff := (int(a.Weekday()) + 6) % 7; diff != 0 {
			t.Errorf("year %d: Monday-first index = %d, want 0", year, diff)
		}
	}
}

func TestBuild_EmptyData(t *testing.T) {
	for year := 2000; year <= 2040; year++ {
		cal := Build(DailyValues{}, year)
		if cal.Max != 0 {
			t.Errorf("year %d: max = %v, want 0", year, cal.Max)
		}
		for r := 0; r < Rows; r++ {
			for w := 0; w < Weeks; w++ {
				if c := cal.Grid[r][w]; c != nil && c.Value != 0 {
					t.Errorf("year %d: cell %s has value %v", year, c.Date, c.Value)
				}
			}
		}
	}
}

func TestBuild_CellsBelongToYear(t *testing.T) {
	for _, year := range []int{2012, 2020, 2021, 2023, 2024, 2025} {
		cal := Build(nil, year)
		for r := 0; r < Rows; r++ {
			for w := 0; w < Weeks; w++ {
				c := cal.Grid[r][w]
				if c == nil {
					continue
				}
				day, err := time.Parse(dateLayout, c.Date)
				if err != nil {
					t.Fatalf("bad cell date %q: %v", c.Date, err)
				}
				if day.Year() != year {
					t.Errorf("year %d: cell %s outside year", year, c.Date)
				}
				if got := (int(day.Weekday()) + 6) % 7; got != r {
					t.Errorf("year %d: cell %s in row %d, weekday index %d", year, c.Date, r, got)
				}
			}
		}
	}
}

func TestBuild_ColumnsAdvanceOneWeek(t *testing.T) {
	cal := Build(nil, 2023)
	for r := 0; r < Rows; r++ {
		for w := 0; w+1 < Weeks; w++ {
			a, b := cal.Grid[r][w], cal.Grid[r][w+1]
			if a == nil || b == nil {
				continue
			}
			da, _ := time.Parse(dateLayout, a.Date)
			db, _ := time.Parse(dateLayout, b.Date)
			if got := db.Sub(da); got != 7*24*time.Hour {
				t.Errorf("row %d, week %d: %s -> %s differs by %v", r, w, a.Date, b.Date, got)
			}
		}
	}
}

func TestBuild_LeadingAndTrailingCells(t *testing.T) {
	// 2023 starts on a Sunday: only the last row of the first column is set.
	cal := Build(nil, 2023)
	for r := 0; r < Rows-1; r++ {
		if cal.Grid[r][0] != nil {
			t.Errorf("row %d of first week should be absent, got %s", r, cal.Grid[r][0].Date)
		}
	}
	if c := cal.Grid[6][0]; c == nil || c.Date != "2023-01-01" {
		t.Errorf("expected 2023-01-01 at row 6, week 0, got %+v", c)
	}
	if c := cal.Grid[6][52]; c == nil || c.Date != "2023-12-31" {
		t.Errorf("expected 2023-12-31 at row 6, week 52, got %+v", c)
	}

	// 2024 starts on a Monday and ends on a Tuesday.
	cal = Build(nil, 2024)
	if c := cal.Grid[1][52]; c == nil || c.Date != "2024-12-31" {
		t.Errorf("expected 2024-12-31 at row 1, week 52, got %+v", c)
	}
	for r := 2; r < Rows; r++ {
		if cal.Grid[r][52] != nil {
			t.Errorf("row %d of last week should be absent, got %s", r, cal.Grid[r][52].Date)
		}
	}
}

func TestBuild_LeapYearStartingSundayDropsLastDay(t *testing.T) {
	// 2012 is a leap year starting on a Sunday and would need a 54th column.
	cal := Build(nil, 2012)

	if _, _, _, ok := cal.Lookup("2012-12-30"); !ok {
		t.Error("2012-12-30 should be on the grid")
	}
	if _, _, _, ok := cal.Lookup("2012-12-31"); ok {
		t.Error("2012-12-31 should fall beyond the 53rd column")
	}
	if _, _, _, ok := cal.Lookup("2012-02-29"); !ok {
		t.Error("2012-02-29 should be on the grid")
	}
}

func TestBuild_PlacesValue(t *testing.T) {
	cal := Build(DailyValues{"2024-03-15": 2}, 2024)

	if cal.Max != 2 {
		t.Errorf("max = %v, want 2", cal.Max)
	}

	cell, row, week, ok := cal.Lookup("2024-03-15")
	if !ok {
		t.Fatal("2024-03-15 not found")
	}
	if cell.Value != 2 {
		t.Errorf("value = %v, want 2", cell.Value)
	}
	if row != 4 || week != 10 {
		t.Errorf("position = (%d, %d), want (4, 10)", row, week)
	}

	// March 1st is a Friday in week 8; the first column whose top cell is
	// in March is week 9.
	if cal.MonthLabels[9] != "Mar" {
		t.Errorf("label at week 9 = %q, want Mar", cal.MonthLabels[9])
	}
	if cal.MonthLabels[8] != "" {
		t.Errorf("label at week 8 = %q, want empty", cal.MonthLabels[8])
	}
}

func TestBuild_IgnoresOtherYears(t *testing.T) {
	cal := Build(DailyValues{"2023-12-31": 9, "2024-01-02": 1.5}, 2024)
	if cal.Max != 1.5 {
		t.Errorf("max = %v, want 1.5", cal.Max)
	}
}

func TestBuild_MonthLabelsInOrder(t *testing.T) {
	want := MonthNames()
	for year := 2000; year <= 2040; year++ {
		cal := Build(nil, year)

		var got []string
		for _, label := range cal.MonthLabels {
			if label != "" {
				got = append(got, label)
			}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("year %d month labels mismatch (-want +got):\n%s", year, diff)
		}
		if cal.MonthLabels[0] != "Jan" {
			t.Errorf("year %d: first label = %q, want Jan", year, cal.MonthLabels[0])
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	data := DailyValues{"2024-01-05": 1.2, "2024-07-04": 3.1, "2024-12-31": 0.4}

	first := Build(data, 2024)
	second := Build(data, 2024)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Build() not idempotent (-first +second):\n%s", diff)
	}
	if len(data) != 3 {
		t.Errorf("Build() mutated its input: %v", data)
	}
}

func TestCalendar_CellOutOfRange(t *testing.T) {
	cal := Build(nil, 2024)
	if cal.Cell(-1, 0) != nil || cal.Cell(0, Weeks) != nil || cal.Cell(Rows, 0) != nil {
		t.Error("Cell() out of range should be nil")
	}
	if c := cal.Cell(0, 0); c == nil || c.Date != "2024-01-01" {
		t.Errorf("Cell(0, 0) = %+v, want 2024-01-01", c)
	}
}
