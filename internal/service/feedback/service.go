package feedback

import (
	"context"
	"crypto/subtle"

	"go.uber.org/zap"
	"feedback_dashboard/internal/config"
	"feedback_dashboard/internal/domain"
	"feedback_dashboard/internal/metrics"
	"feedback_dashboard/internal/model"
	"feedback_dashboard/internal/query"
	"feedback_dashboard/internal/repository"
)

// Notifier takes a confirmation off the request path. It must not block.
type Notifier interface {
	Dispatch(ctx context.Context, confirmation model.Confirmation) bool
}

type Service struct {
	store      repository.FeedbackRepository
	notifier   Notifier
	adminToken string
	log        *zap.Logger
	metrics    *metrics.Metrics
}

func NewService(cfg *config.Config, store repository.FeedbackRepository, notifier Notifier, logger *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:      store,
		notifier:   notifier,
		adminToken: cfg.AdminToken,
		log:        logger,
		metrics:    m,
	}
}

func (s *Service) Submit(ctx context.Context, email, message string) (model.Feedback, error) {
	if err := domain.ValidateSubmission(email, message); err != nil {
		return model.Feedback{}, err
	}
	created, err := s.store.Submit(ctx, email, message)
	if err != nil {
		s.log.Error("store submit feedback failed", zap.String("email", email), zap.Error(err))
		return model.Feedback{}, err
	}
	s.metrics.FeedbackSubmitted.Inc()
	s.notifier.Dispatch(ctx, model.Confirmation{Email: created.Email, Message: created.Message})
	return created, nil
}

// List checks the admin token before looking at any other parameter.
func (s *Service) List(ctx context.Context, token string, params query.Params) (model.Page, error) {
	if err := s.Authorize(token); err != nil {
		return model.Page{}, err
	}
	if err := domain.ValidatePage(params.Page, params.PageSize); err != nil {
		return model.Page{}, err
	}
	if params.Email != "" {
		if err := domain.ValidateEmail(params.Email); err != nil {
			return model.Page{}, err
		}
	}
	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		s.log.Error("store snapshot failed", zap.Error(err))
		return model.Page{}, err
	}
	return query.List(snapshot, params), nil
}

func (s *Service) Authorize(token string) error {
	if token == "" || s.adminToken == "" {
		return domain.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
		return domain.ErrUnauthorized
	}
	return nil
}
