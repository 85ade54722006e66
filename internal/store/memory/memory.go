package memory

import (
	"sync"

	"go.uber.org/zap"
	"feedback_dashboard/internal/model"
)

// Store is an append-only arena. A record's id is its arena index plus one,
// so ids are always 1..len(records) with no gaps.
type Store struct {
	mu      sync.Mutex
	records []model.Feedback
	log     *zap.Logger
}

func New(logger *zap.Logger) *Store {
	return &Store{log: logger}
}
