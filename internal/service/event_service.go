package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"eventboard/internal/model"
	"eventboard/internal/storage"
	apperrors "eventboard/pkg/app_errors"
)

type EventService interface {
	List(ctx context.Context, filter model.EventFilter) ([]model.Event, error)
	GetByID(ctx context.Context, id string) (*model.Event, error)
	Create(ctx context.Context, input model.CreateEventInput) (*model.Event, error)
	Update(ctx context.Context, id string, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, id string) error
	// AddRSVP increments the aggregate attendance counter; there is no
	// per-user record and no upper bound.
	AddRSVP(ctx context.Context, id string) (*model.Event, error)
	// CancelRSVP decrements the counter, flooring at zero.
	CancelRSVP(ctx context.Context, id string) (*model.Event, error)
}

type EventServiceImpl struct {
	store storage.EventStorage
}

func NewEventService(store storage.EventStorage) EventService {
	return &EventServiceImpl{store: store}
}

func (s *EventServiceImpl) List(ctx context.Context, filter model.EventFilter) ([]model.Event, error) {
	events, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Event, 0, len(events))
	search := strings.ToLower(filter.Search)
	for _, e := range events {
		if filter.Category != "" && !strings.EqualFold(filter.Category, "All") {
			if !strings.EqualFold(string(e.Category), filter.Category) {
				continue
			}
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		filtered = append(filtered, e)
	}

	// Soonest first; parse failures sort ahead of valid dates but are only
	// possible in hand-edited files since create/update validate the date.
	sort.SliceStable(filtered, func(i, j int) bool {
		ti, _ := model.ParseDate(filtered[i].Date)
		tj, _ := model.ParseDate(filtered[j].Date)
		return ti.Before(tj)
	})
	return filtered, nil
}

func matchesSearch(e model.Event, search string) bool {
	return strings.Contains(strings.ToLower(e.Title), search) ||
		strings.Contains(strings.ToLower(e.Description), search) ||
		strings.Contains(strings.ToLower(e.Location), search)
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id string) (*model.Event, error) {
	events, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

func (s *EventServiceImpl) Create(ctx context.Context, input model.CreateEventInput) (*model.Event, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Location = strings.TrimSpace(input.Location)

	if err := validateCreate(input); err != nil {
		return nil, err
	}

	events, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := model.Event{
		ID:          nextID(events),
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		Category:    model.Category(input.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
		RSVPCount:   0,
		IsUserEvent: true,
	}

	events = append(events, event)
	if err := s.store.Save(ctx, events); err != nil {
		return nil, err
	}
	return &event, nil
}

func validateCreate(input model.CreateEventInput) error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"title", input.Title},
		{"description", input.Description},
		{"date", input.Date},
		{"location", input.Location},
		{"category", input.Category},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("Missing required fields: %s", strings.Join(missing, ", "))
	}
	if !model.Category(input.Category).IsValid() {
		return apperrors.NewValidationError("Invalid category. Must be one of: %s", model.CategoryNames())
	}
	if _, err := model.ParseDate(input.Date); err != nil {
		return apperrors.NewValidationError("Invalid date format")
	}
	return nil
}

// nextID assigns one past the highest numeric id in the collection, so a
// create after a delete can never collide with a surviving id.
func nextID(events []model.Event) string {
	max := 0
	for _, e := range events {
		if n, err := strconv.Atoi(e.ID); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

func (s *EventServiceImpl) Update(ctx context.Context, id string, params model.UpdateEventParams) (*model.Event, error) {
	if err := validateUpdate(params); err != nil {
		return nil, err
	}

	events, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(events, id)
	if idx < 0 {
		return nil, apperrors.ErrEventNotFound
	}

	// id, createdAt, rsvpCount and isUserEvent are never settable here.
	event := &events[idx]
	if params.Title != nil {
		event.Title = strings.TrimSpace(*params.Title)
	}
	if params.Description != nil {
		event.Description = strings.TrimSpace(*params.Description)
	}
	if params.Date != nil {
		event.Date = *params.Date
	}
	if params.Location != nil {
		event.Location = strings.TrimSpace(*params.Location)
	}
	if params.Category != nil {
		event.Category = model.Category(*params.Category)
	}
	event.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, events); err != nil {
		return nil, err
	}
	updated := *event
	return &updated, nil
}

func validateUpdate(params model.UpdateEventParams) error {
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"title", params.Title},
		{"description", params.Description},
		{"location", params.Location},
	} {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			return apperrors.NewValidationError("Field %s cannot be empty", f.name)
		}
	}
	if params.Category != nil && !model.Category(*params.Category).IsValid() {
		return apperrors.NewValidationError("Invalid category. Must be one of: %s", model.CategoryNames())
	}
	if params.Date != nil {
		if _, err := model.ParseDate(*params.Date); err != nil {
			return apperrors.NewValidationError("Invalid date format")
		}
	}
	return nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, id string) error {
	events, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(events, id)
	if idx < 0 {
		return apperrors.ErrEventNotFound
	}

	events = append(events[:idx], events[idx+1:]...)
	return s.store.Save(ctx, events)
}

func (s *EventServiceImpl) AddRSVP(ctx context.Context, id string) (*model.Event, error) {
	return s.adjustRSVP(ctx, id, 1)
}

func (s *EventServiceImpl) CancelRSVP(ctx context.Context, id string) (*model.Event, error) {
	return s.adjustRSVP(ctx, id, -1)
}

func (s *EventServiceImpl) adjustRSVP(ctx context.Context, id string, delta int) (*model.Event, error) {
	events, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(events, id)
	if idx < 0 {
		return nil, apperrors.ErrEventNotFound
	}

	event := &events[idx]
	event.RSVPCount += delta
	if event.RSVPCount < 0 {
		event.RSVPCount = 0
	}
	event.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, events); err != nil {
		return nil, err
	}
	updated := *event
	return &updated, nil
}

func indexOf(events []model.Event, id string) int {
	for i := range events {
		if events[i].ID == id {
			return i
		}
	}
	return -1
}
