//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"feedback_dashboard/internal/app"
	"feedback_dashboard/internal/config"
	"feedback_dashboard/internal/http"
	"feedback_dashboard/internal/http/controller"
	"feedback_dashboard/internal/logging"
	"feedback_dashboard/internal/metrics"
	"feedback_dashboard/internal/notify"
	"feedback_dashboard/internal/queue/rabbitmq"
	"feedback_dashboard/internal/ratelimit"
	"feedback_dashboard/internal/service/feedback"
	"feedback_dashboard/internal/store"
)

func InitializeApp() (*app.App, error) {
	wire.Build(
		config.New,
		logging.New,
		metrics.New,
		store.NewStore,
		notify.NewMailer,
		rabbitmq.NewPublisher,
		notify.NewSender,
		notify.NewDispatcher,
		wire.Bind(new(feedback.Notifier), new(*notify.Dispatcher)),
		feedback.NewService,
		controller.NewHandler,
		ratelimit.New,
		http.NewRouter,
		rabbitmq.NewConsumer,
		app.NewApp,
	)
	return &app.App{}, nil
}
