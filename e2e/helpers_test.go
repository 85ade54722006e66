package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"feedback_dashboard/internal/config"
	httpserver "feedback_dashboard/internal/http"
	"feedback_dashboard/internal/http/controller"
	"feedback_dashboard/internal/metrics"
	"feedback_dashboard/internal/model"
	"feedback_dashboard/internal/notify"
	"feedback_dashboard/internal/ratelimit"
	"feedback_dashboard/internal/service/feedback"
	"feedback_dashboard/internal/store/memory"
)

const adminToken = "secret-admin-token"

type recordingSender struct {
	mu   sync.Mutex
	got  []model.Confirmation
	sent chan struct{}
}

func newRecordingSender() *recordingSender {
	return &recordingSender{sent: make(chan struct{}, 128)}
}

func (r *recordingSender) Send(_ context.Context, c model.Confirmation) error {
	r.mu.Lock()
	r.got = append(r.got, c)
	r.mu.Unlock()
	r.sent <- struct{}{}
	return nil
}

func (r *recordingSender) confirmations() []model.Confirmation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Confirmation(nil), r.got...)
}

type testServer struct {
	*httptest.Server
	sender  *recordingSender
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if cfg.AdminToken == "" {
		cfg.AdminToken = adminToken
	}
	if cfg.NotifyWorkers == 0 {
		cfg.NotifyWorkers = 2
	}
	if cfg.NotifyQueueSize == 0 {
		cfg.NotifyQueueSize = 128
	}

	logger := zap.NewNop()
	m := metrics.New()
	sender := newRecordingSender()
	dispatcher := notify.NewDispatcher(cfg, sender, logger, m)
	svc := feedback.NewService(cfg, memory.New(logger), dispatcher, logger, m)
	handler := controller.NewHandler(svc, logger)
	router := httpserver.NewRouter(cfg, handler, ratelimit.New(cfg), m, logger)

	ctx, cancel := context.WithCancel(context.Background())
	go dispatcher.Run(ctx)

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		cancel()
	})
	return &testServer{Server: server, sender: sender, metrics: m}
}

func (s *testServer) submit(t *testing.T, email, message string) *http.Response {
	t.Helper()
	body, err := json.Marshal(map[string]string{"email": email, "message": message})
	require.NoError(t, err)
	resp, err := http.Post(s.URL+"/feedback/submit", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (s *testServer) list(t *testing.T, rawQuery string) *http.Response {
	t.Helper()
	resp, err := http.Get(s.URL + "/admin/feedbacks?" + rawQuery)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}
