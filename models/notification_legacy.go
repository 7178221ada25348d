package models

import (
	"strings"
	"time"
)

// SchemaVersion identifies the layout of a stored notification record.
type SchemaVersion int

const (
	// SchemaV1 is the first generation layout: keywords, level,
	// employmentType, includeWeekends.
	SchemaV1 SchemaVersion = 1
	// SchemaV2 is the current layout, see [Notification].
	SchemaV2 SchemaVersion = 2
)

// LegacyNotification is a SchemaV1 record.
// It is only read for migration, never written.
type LegacyNotification struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Keywords        string    `json:"keywords"`
	Level           string    `json:"level"`
	Location        string    `json:"location"`
	EmploymentType  string    `json:"employmentType"`
	Frequency       string    `json:"frequency"`
	IncludeWeekends bool      `json:"includeWeekends"`
	EmailEnabled    bool      `json:"emailEnabled"`
	CreatedAt       time.Time `json:"createdAt"`
}

// LegacyTitle returns the title of a v1 record: the explicit title, or the
// trimmed text before the first comma of the keywords.
func LegacyTitle(title, keywords string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	first, _, _ := strings.Cut(keywords, ",")
	return strings.TrimSpace(first)
}

// legacyFrequencies maps v1 cadences onto the nearest current one.
var legacyFrequencies = map[string]Frequency{
	"twice_day":      FrequencyDaily,
	"once_day":       FrequencyDaily,
	"every_two_days": FrequencyTwiceWeek,
	"once_week":      FrequencyWeekly,
}

// MigrateLegacyNotification converts a SchemaV1 record to the current layout.
//
// Country and Dist did not exist in v1 and are left empty. IncludeWeekends
// has no counterpart and is dropped.
func MigrateLegacyNotification(l LegacyNotification) Notification {
	n := DefaultNotification()

	n.ID = l.ID
	n.Title = LegacyTitle(l.Title, l.Keywords)
	n.Location = strings.TrimSpace(l.Location)
	n.EmailEnabled = l.EmailEnabled
	n.CreatedAt = l.CreatedAt
	n.UpdatedAt = l.CreatedAt

	if s := Seniority(strings.ToLower(l.Level)); s.IsValid() {
		n.Seniority = s
	}
	if j := JobScope(l.EmploymentType).Normalize(); j.IsValid() {
		n.JobScope = j
	}
	if f, ok := legacyFrequencies[l.Frequency]; ok {
		n.Frequency = f
	} else if f := Frequency(l.Frequency); f.IsValid() {
		n.Frequency = f
	}

	return n
}
