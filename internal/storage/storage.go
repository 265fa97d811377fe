package storage

import (
	"context"

	"eventboard/internal/model"
)

// EventStorage materializes the event collection from and to a backing
// medium. Load never fails the caller: an absent or unreadable medium
// degrades to an empty collection. Save replaces the prior content wholesale
// and surfaces apperrors.ErrStorageWrite when the write cannot complete.
type EventStorage interface {
	Load(ctx context.Context) ([]model.Event, error)
	Save(ctx context.Context, events []model.Event) error
}
