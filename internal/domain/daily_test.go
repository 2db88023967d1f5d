package domain

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/emiliopalmerini/hydrate/internal/heatmap"
)

func TestEntryDate(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	tests := []struct {
		name   string
		entry  LiquidIntakeEntry
		loc    *time.Location
		want   string
		wantOK bool
	}{
		{"rfc3339 time", LiquidIntakeEntry{Time: "2024-03-15T10:00:00Z"}, time.UTC, "2024-03-15", true},
		{"converted to location", LiquidIntakeEntry{Time: "2024-03-15T23:30:00Z"}, rome, "2024-03-16", true},
		{"date only", LiquidIntakeEntry{Time: "2024-03-15"}, time.UTC, "2024-03-15", true},
		{"date prefix", LiquidIntakeEntry{Time: "2024-03-15 08:00"}, time.UTC, "2024-03-15", true},
		{"fallback to dateCreated", LiquidIntakeEntry{Time: "n/a", DateCreated: "2024-01-02T00:00:00Z"}, time.UTC, "2024-01-02", true},
		{"nil location is UTC", LiquidIntakeEntry{Time: "2024-03-15T10:00:00Z"}, nil, "2024-03-15", true},
		{"unparseable", LiquidIntakeEntry{Time: "yesterday"}, time.UTC, "", false},
		{"empty", LiquidIntakeEntry{}, time.UTC, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EntryDate(tt.entry, tt.loc)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("EntryDate() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDailyTotals(t *testing.T) {
	entries := []LiquidIntakeEntry{
		{Time: "2024-03-15T08:00:00Z", VolumeInLiter: 0.5},
		{Time: "2024-03-15T12:00:00Z", VolumeInLiter: 0.25},
		{Time: "2024-03-16T09:00:00Z", VolumeInLiter: 1},
		{Time: "2024-03-16T10:00:00Z", VolumeInLiter: -1},
		{Time: "2024-03-17T10:00:00Z", VolumeInLiter: math.NaN()},
		{Time: "garbage", VolumeInLiter: 3},
	}

	got := DailyTotals(entries, time.UTC)
	want := heatmap.DailyValues{"2024-03-15": 0.75, "2024-03-16": 1}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DailyTotals() mismatch (-want +got):\n%s", diff)
	}
}

func TestDailyTotals_Empty(t *testing.T) {
	got := DailyTotals(nil, time.UTC)
	if got == nil || len(got) != 0 {
		t.Errorf("DailyTotals(nil) = %v, want empty map", got)
	}
}

func TestCurrentGoal(t *testing.T) {
	if _, ok := CurrentGoal(HydrationGoals{}); ok {
		t.Error("CurrentGoal() of no entries should report false")
	}

	goals := HydrationGoals{Entries: []HydrationGoalEntry{
		{Time: "2023-01-01T00:00:00Z", VolumeInLiter: 2},
		{Time: "2024-01-01T00:00:00Z", VolumeInLiter: 2.5},
	}}
	g, ok := CurrentGoal(goals)
	if !ok || g.VolumeInLiter != 2.5 {
		t.Errorf("CurrentGoal() = %+v, %v; want 2.5", g, ok)
	}
}
