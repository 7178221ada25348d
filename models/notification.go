// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"
)

// Seniority is the experience level a job alert searches for.
type Seniority string

const (
	SeniorityIntern Seniority = "intern"
	SeniorityJunior Seniority = "junior"
	SeniorityMid    Seniority = "mid"
	SenioritySenior Seniority = "senior"
	SeniorityChief  Seniority = "chief"
)

// Seniorities lists every supported seniority in display order.
var Seniorities = []Seniority{SeniorityIntern, SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityChief}

// IsValid reports whether s is one of the supported seniorities.
func (s Seniority) IsValid() bool {
	for _, v := range Seniorities {
		if s == v {
			return true
		}
	}
	return false
}

// JobScope is the employment type of a job alert.
type JobScope string

const (
	JobScopeFullTime   JobScope = "full time"
	JobScopePartTime   JobScope = "part time"
	JobScopeTemporary  JobScope = "temporary"
	JobScopeInternship JobScope = "internship"
)

// JobScopes lists every canonical job scope in display order.
var JobScopes = []JobScope{JobScopeFullTime, JobScopePartTime, JobScopeTemporary, JobScopeInternship}

// Normalize maps the historical spellings ("fulltime", "full_time", ...)
// to the canonical value. Unknown values are returned trimmed and lowercased.
func (j JobScope) Normalize() JobScope {
	v := strings.ToLower(strings.TrimSpace(string(j)))
	switch v {
	case "fulltime", "full_time", "full-time":
		return JobScopeFullTime
	case "parttime", "part_time", "part-time":
		return JobScopePartTime
	}
	return JobScope(v)
}

// IsValid reports whether the normalized scope is supported.
func (j JobScope) IsValid() bool {
	n := j.Normalize()
	for _, v := range JobScopes {
		if n == v {
			return true
		}
	}
	return false
}

// Frequency is the delivery cadence of a job alert.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyTwiceWeek Frequency = "twice_week"
	FrequencyWeekly    Frequency = "weekly"
)

// Frequencies lists every supported cadence in display order.
var Frequencies = []Frequency{FrequencyDaily, FrequencyTwiceWeek, FrequencyWeekly}

// IsValid reports whether f is one of the supported cadences.
func (f Frequency) IsValid() bool {
	for _, v := range Frequencies {
		if f == v {
			return true
		}
	}
	return false
}

// Notification is a job-alert subscription: the search criteria a user wants
// to be alerted about and how often.
//
// Ownership is implicit on the wire: the server derives the owner from the
// bearer token. UserID is filled only at the persistence layer.
type Notification struct {
	// ID is assigned once (by the client or the server) and never changes.
	ID string `json:"id"`

	// UserID is the owner. It is never serialized.
	UserID int64 `json:"-"`

	Title     string    `json:"title"`
	Seniority Seniority `json:"seniority"`
	Country   string    `json:"country"`
	Location  string    `json:"location"`

	// Dist is the search radius around Location, in kilometers.
	Dist int `json:"dist"`

	JobScope     JobScope  `json:"job_scope"`
	Frequency    Frequency `json:"frequency"`
	EmailEnabled bool      `json:"email_enabled"`

	LastSentAt *time.Time `json:"last_sent_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at,omitzero"`
	UpdatedAt  time.Time  `json:"updated_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the Notification model.
func (n Notification) TableName() string {
	return "notifications"
}

// DefaultNotification returns the values a new alert starts with.
func DefaultNotification() Notification {
	return Notification{
		Seniority:    SeniorityJunior,
		JobScope:     JobScopeFullTime,
		Frequency:    FrequencyDaily,
		EmailEnabled: true,
	}
}

// Summary renders a single line describing the alert, e.g.
// "Backend Engineer · junior · Tel Aviv, IL (+10 km) · full time · daily".
func (n Notification) Summary() string {
	where := strings.Trim(strings.Join([]string{n.Location, n.Country}, ", "), ", ")
	if n.Dist > 0 {
		where = fmt.Sprintf("%s (+%d km)", where, n.Dist)
	}

	parts := make([]string, 0, 5)
	for _, p := range []string{n.Title, string(n.Seniority), where, string(n.JobScope), string(n.Frequency)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " · ")
}
