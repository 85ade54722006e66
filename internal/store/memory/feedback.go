package memory

import (
	"context"

	"go.uber.org/zap"
	"feedback_dashboard/internal/model"
)

func (s *Store) Submit(_ context.Context, email, message string) (model.Feedback, error) {
	s.mu.Lock()
	record := model.Feedback{
		ID:      int64(len(s.records)) + 1,
		Email:   email,
		Message: message,
	}
	s.records = append(s.records, record)
	s.mu.Unlock()

	s.log.Debug("feedback stored", zap.Int64("id", record.ID))
	return record, nil
}

// Snapshot returns a view capped at the current length. Records below that
// length are never rewritten and the capacity cap keeps a caller's append
// from reaching into the arena, so the view can be read without the lock.
func (s *Store) Snapshot(_ context.Context) ([]model.Feedback, error) {
	s.mu.Lock()
	n := len(s.records)
	view := s.records[:n:n]
	s.mu.Unlock()
	return view, nil
}
