package domain

// LiquidIntakeEntry is a single drink recorded by the backend.
type LiquidIntakeEntry struct {
	DateCreated   string  `json:"dateCreated"`
	Source        string  `json:"source"`
	Time          string  `json:"time"`
	Type          string  `json:"type"`
	VolumeInLiter float64 `json:"volumeInLiter"`
}

type LiquidIntake struct {
	Entries []LiquidIntakeEntry `json:"entries"`
}

// HydrationGoalEntry is a daily goal that applies from Time onwards.
type HydrationGoalEntry struct {
	Time          string  `json:"time"`
	Type          string  `json:"type"`
	VolumeInLiter float64 `json:"volumeInLiter"`
}

type HydrationGoals struct {
	Entries []HydrationGoalEntry `json:"entries"`
}

type UserInfo struct {
	DisplayName string `json:"displayName"`
}

// DeviceInfo describes a connected bottle.
type DeviceInfo struct {
	Name                    string  `json:"name"`
	Color                   string  `json:"color"`
	SizeInMilliliter        float64 `json:"sizeInMilliliter"`
	PureVisPowerMode        string  `json:"pureVisPowerMode"`
	IsFilterTrackingEnabled bool    `json:"isFilterTrackingEnabled"`
}

// CurrentGoal returns the most recent goal. Goals are requested with
// viewFrom=right, so the newest entry is last.
func CurrentGoal(goals HydrationGoals) (HydrationGoalEntry, bool) {
	if len(goals.Entries) == 0 {
		return HydrationGoalEntry{}, false
	}
	return goals.Entries[len(goals.Entries)-1], true
}
