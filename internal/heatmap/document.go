package heatmap

// Document is the JSON form of a calendar, served by the dashboard API and
// printed by the CLI.
type Document struct {
	Calendar
	MonthHeaders []MonthHeader `json:"monthHeaders"`
	Scale        ColorScale    `json:"scale"`
}

func NewDocument(cal Calendar, scale ColorScale) Document {
	return Document{
		Calendar:     cal,
		MonthHeaders: MonthHeaders(cal),
		Scale:        scale,
	}
}
