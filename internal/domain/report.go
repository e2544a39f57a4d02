package domain

import "time"

// ShiftLabel identifies the shift an operation belongs to
type ShiftLabel string

const (
	ShiftDay   ShiftLabel = "day"
	ShiftNight ShiftLabel = "night"
)

// Day shift boundaries, inclusive start / exclusive end
const (
	dayShiftStart = "08:00"
	dayShiftEnd   = "20:00"
)

// ShiftLabelFor derives the shift label from an operation's start time.
// Operations starting between 08:00 (inclusive) and 20:00 (exclusive)
// belong to the day shift, everything else to the night shift. The label
// is always derived, never taken from user input.
func ShiftLabelFor(startTime string) ShiftLabel {
	if startTime >= dayShiftStart && startTime < dayShiftEnd {
		return ShiftDay
	}
	return ShiftNight
}

// Operation is one row of a shift report. StartTime and EndTime are
// zero-padded HH:MM strings; everything else is free text. Immutable
// once committed to a session.
type Operation struct {
	Equipment      string
	EndTime        string
	Materials      string
	Name           string
	Representative string
	Shift          ShiftLabel
	StartTime      string
}

// Header holds the report-level fields collected before the operation loop
type Header struct {
	Crew  string
	Field string
	Well  string
}

// Report is the finalized, immutable shift report. Number is unique per
// crew and assigned once at creation.
type Report struct {
	ID         string
	Number     int
	Crew       string
	Well       string
	Field      string
	Operations []Operation
	CreatedBy  string
	CreatedAt  time.Time
}

// ChangeLogEntry records who did what to which report. Append-only.
type ChangeLogEntry struct {
	ReportID  string
	Actor     string
	Action    string
	Timestamp time.Time
}
