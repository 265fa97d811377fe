package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"eventboard/internal/model"
	apperrors "eventboard/pkg/app_errors"
	"eventboard/pkg/logger"

	"go.uber.org/zap"
)

// FileStorage persists the collection as a single indented JSON array,
// rewritten wholesale on every Save. There is no locking across processes:
// concurrent Load-mutate-Save cycles are last-write-wins.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load(ctx context.Context) ([]model.Event, error) {
	log := logger.WithComponent("storage")

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("Failed to read events file, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return []model.Event{}, nil
	}

	var events []model.Event
	if err := json.Unmarshal(data, &events); err != nil {
		log.Warn("Failed to parse events file, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return []model.Event{}, nil
	}
	if events == nil {
		events = []model.Event{}
	}
	return events, nil
}

func (s *FileStorage) Save(ctx context.Context, events []model.Event) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorageWrite, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorageWrite, err)
	}
	return nil
}
