package store

import (
	"go.uber.org/zap"
	"feedback_dashboard/internal/config"
	"feedback_dashboard/internal/db"
	"feedback_dashboard/internal/repository"
	"feedback_dashboard/internal/store/memory"
	"feedback_dashboard/internal/store/mysql"
)

// NewStore is created once at startup and shared by every request. Without a
// DSN feedback lives in process memory and is lost on restart.
func NewStore(cfg *config.Config, logger *zap.Logger) (repository.FeedbackRepository, error) {
	if cfg.MySQLDSN == "" {
		logger.Info("using in-memory feedback store")
		return memory.New(logger), nil
	}
	sqlDB, err := mysql.Open(cfg.MySQLDSN)
	if err != nil {
		logger.Error("mysql store unavailable", zap.Error(err))
		return nil, err
	}
	logger.Info("using mysql feedback store")
	return mysql.New(db.New(sqlDB), logger), nil
}
