package domain

import "time"

// ExportRow is a single row in a user's ride export: one row per active
// ride, with weather flattened into optional columns.
type ExportRow struct {
	RideID        string
	Date          string // "2006-01-02"
	Hour          int
	Distance      string
	DistanceUnit  string
	RideName      string
	StartLocation string
	EndLocation   string
	Notes         string
	CreatedAt     time.Time

	// Weather columns are empty when the ride has no weather or the reading
	// is absent.
	Temperature   string
	Conditions    string
	WindSpeed     string
	WindDirection string
	Humidity      string
	Pressure      string
}

// NewExportRow flattens p into an ExportRow.
func NewExportRow(p RideProjection) ExportRow {
	row := ExportRow{
		RideID:        p.ID.String(),
		Date:          p.Date.String(),
		Hour:          p.Hour,
		Distance:      p.Distance.String(),
		DistanceUnit:  string(p.DistanceUnit),
		RideName:      p.RideName,
		StartLocation: p.StartLocation,
		EndLocation:   p.EndLocation,
		CreatedAt:     p.CreatedAt,
	}
	if p.Notes != nil {
		row.Notes = *p.Notes
	}
	if w := p.Weather; w != nil {
		if v, ok := w.Temperature(); ok {
			row.Temperature = v.String()
		}
		row.Conditions, _ = w.Conditions()
		if v, ok := w.WindSpeed(); ok {
			row.WindSpeed = v.String()
		}
		row.WindDirection, _ = w.WindDirection()
		if v, ok := w.Humidity(); ok {
			row.Humidity = v.String()
		}
		if v, ok := w.Pressure(); ok {
			row.Pressure = v.String()
		}
	}
	return row
}
