package model

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryConference Category = "Conference"
	CategoryWorkshop   Category = "Workshop"
	CategoryMeetup     Category = "Meetup"
	CategoryOther      Category = "Other"
)

// Categories lists every allowed category, in the order used for error
// messages.
var Categories = []Category{
	CategoryConference,
	CategoryWorkshop,
	CategoryMeetup,
	CategoryOther,
}

// IsValid reports whether c is one of the four allowed categories. The match
// is exact; stored events never carry any other value.
func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// CategoryNames returns the allowed categories joined for error messages.
func CategoryNames() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// Event is the sole entity of the service. Date stays a string so the
// persisted form round-trips exactly what the caller submitted; it is parsed
// for validation and sorting only.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Location    string    `json:"location"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	RSVPCount   int       `json:"rsvpCount"`
	IsUserEvent bool      `json:"isUserEvent"`
}

// dateLayouts are the accepted forms for Event.Date, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an event date string into an instant.
func ParseDate(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// CreateEventInput carries the caller-settable fields for creation. Everything
// else (id, timestamps, rsvpCount, isUserEvent) is assigned by the service.
type CreateEventInput struct {
	Title       string
	Description string
	Date        string
	Location    string
	Category    string
}

// UpdateEventParams holds a partial update; nil means "keep the prior value".
type UpdateEventParams struct {
	Title       *string
	Description *string
	Date        *string
	Location    *string
	Category    *string
}

// EventFilter narrows List results. Zero values disable each criterion.
type EventFilter struct {
	Category string
	Search   string
}
