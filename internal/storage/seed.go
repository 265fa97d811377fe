package storage

import (
	"time"

	"eventboard/internal/model"
)

// SeedEvents returns the five demo events the service starts with when the
// configured storage is empty and seeding is enabled. None of them are user
// events.
func SeedEvents() []model.Event {
	return []model.Event{
		{
			ID:          "1",
			Title:       "React Conference 2024",
			Description: "A comprehensive conference covering the latest in React development, including hooks, concurrent features, and performance optimization.",
			Date:        "2024-03-15T10:00:00Z",
			Location:    "San Francisco, CA",
			Category:    model.CategoryConference,
			CreatedAt:   time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
			RSVPCount:   150,
		},
		{
			ID:          "2",
			Title:       "TypeScript Workshop",
			Description: "Learn TypeScript from basics to advanced concepts. Hands-on coding sessions and real-world examples.",
			Date:        "2024-03-20T14:00:00Z",
			Location:    "New York, NY",
			Category:    model.CategoryWorkshop,
			CreatedAt:   time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC),
			RSVPCount:   25,
		},
		{
			ID:          "3",
			Title:       "Tech Meetup",
			Description: "Monthly tech meetup for developers to network and share knowledge. This month's topic: AI in Web Development.",
			Date:        "2024-03-25T18:00:00Z",
			Location:    "Austin, TX",
			Category:    model.CategoryMeetup,
			CreatedAt:   time.Date(2024, 1, 25, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 25, 10, 0, 0, 0, time.UTC),
			RSVPCount:   45,
		},
		{
			ID:          "4",
			Title:       "Design System Workshop",
			Description: "Building scalable design systems with Figma and React. Learn best practices for component libraries.",
			Date:        "2024-04-01T09:00:00Z",
			Location:    "Seattle, WA",
			Category:    model.CategoryWorkshop,
			CreatedAt:   time.Date(2024, 2, 1, 11, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 2, 1, 11, 0, 0, 0, time.UTC),
			RSVPCount:   30,
		},
		{
			ID:          "5",
			Title:       "Startup Pitch Night",
			Description: "Watch innovative startups pitch their ideas to investors. Networking event for entrepreneurs and investors.",
			Date:        "2024-04-05T19:00:00Z",
			Location:    "Boston, MA",
			Category:    model.CategoryOther,
			CreatedAt:   time.Date(2024, 2, 5, 12, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 2, 5, 12, 0, 0, 0, time.UTC),
			RSVPCount:   80,
		},
	}
}
