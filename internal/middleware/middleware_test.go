package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/aidledger/internal/auth"
	"github.com/mmynk/aidledger/internal/models"
)

const (
	pingProcedure   = "/aidledger.test.v1.TestService/Ping"
	publicProcedure = "/aidledger.test.v1.TestService/Public"
	failProcedure   = "/aidledger.test.v1.TestService/Fail"
)

// setupServer mounts three empty procedures behind the given interceptors.
// Ping records the caller's user ID and role.
func setupServer(t *testing.T, interceptors ...connect.Interceptor) (*httptest.Server, *string, *models.Role) {
	t.Helper()
	var userID string
	var role models.Role

	opts := connect.WithInterceptors(interceptors...)
	mux := http.NewServeMux()
	mux.Handle(pingProcedure, connect.NewUnaryHandler(pingProcedure,
		func(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
			userID = GetUserID(ctx)
			role = GetRole(ctx)
			return connect.NewResponse(&emptypb.Empty{}), nil
		}, opts))
	mux.Handle(publicProcedure, connect.NewUnaryHandler(publicProcedure,
		func(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
			return connect.NewResponse(&emptypb.Empty{}), nil
		}, opts))
	mux.Handle(failProcedure, connect.NewUnaryHandler(failProcedure,
		func(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("missing"))
		}, opts))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &userID, &role
}

func call(t *testing.T, server *httptest.Server, procedure, token string) error {
	t.Helper()
	client := connect.NewClient[emptypb.Empty, emptypb.Empty](server.Client(), server.URL+procedure)
	req := connect.NewRequest(&emptypb.Empty{})
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	_, err := client.CallUnary(context.Background(), req)
	return err
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret-0123456789", time.Hour)
	server, userID, role := setupServer(t, RequireAuth(jwtManager, publicProcedure))

	user := models.NewUser("admin@example.org", "Admin", "hash", models.RoleAdmin)
	token, err := jwtManager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if err := call(t, server, pingProcedure, token); err != nil {
		t.Fatalf("Ping with token failed: %v", err)
	}
	if *userID != user.ID || *role != models.RoleAdmin {
		t.Errorf("Expected identity %s/admin, got %s/%s", user.ID, *userID, *role)
	}

	if err := call(t, server, pingProcedure, ""); connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("Expected Unauthenticated without token, got %v", err)
	}
	if err := call(t, server, pingProcedure, "garbage"); connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("Expected Unauthenticated with bad token, got %v", err)
	}
	if err := call(t, server, publicProcedure, ""); err != nil {
		t.Errorf("Public procedure should not need a token: %v", err)
	}
}

func TestRequireAuthHTTP(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret-0123456789", time.Hour)
	handler := RequireAuthHTTP(jwtManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, GetUserID(r.Context()))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", rec.Code)
	}

	user := models.NewUser("u@example.org", "U", "hash", models.RoleUser)
	token, _ := jwtManager.Generate(user)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != user.ID {
		t.Errorf("Expected 200 with user ID, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	server, _, _ := setupServer(t, metrics.Interceptor())

	for i := 0; i < 2; i++ {
		if err := call(t, server, pingProcedure, ""); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	}
	_ = call(t, server, failProcedure, "")

	if got := testutil.ToFloat64(metrics.requests.WithLabelValues(pingProcedure, "ok")); got != 2 {
		t.Errorf("Expected 2 ok pings, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.requests.WithLabelValues(failProcedure, "not_found")); got != 1 {
		t.Errorf("Expected 1 not_found, got %v", got)
	}
	if got := testutil.CollectAndCount(metrics.duration); got != 2 {
		t.Errorf("Expected 2 duration series, got %d", got)
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2, publicProcedure)
	server, _, _ := setupServer(t, limiter.Interceptor())

	for i := 0; i < 2; i++ {
		if err := call(t, server, publicProcedure, ""); err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
	}
	if err := call(t, server, publicProcedure, ""); connect.CodeOf(err) != connect.CodeResourceExhausted {
		t.Errorf("Expected ResourceExhausted, got %v", err)
	}
	// Procedures outside the list are never throttled.
	for i := 0; i < 5; i++ {
		if err := call(t, server, pingProcedure, ""); err != nil {
			t.Fatalf("ping %d failed: %v", i, err)
		}
	}
}

func TestRateLimiterForgetsIdleClients(t *testing.T) {
	now := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(0.001, 1, publicProcedure)
	limiter.now = func() time.Time { return now }

	if !limiter.Allow("10.0.0.1") {
		t.Fatal("first call from 10.0.0.1 was throttled")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("second call from 10.0.0.1 was allowed")
	}

	now = now.Add(idleAfter / 2)
	limiter.Allow("10.0.0.2")
	if got := len(limiter.clients); got != 2 {
		t.Fatalf("Expected 2 tracked clients, got %d", got)
	}

	// 10.0.0.1 has been silent for a full idle period, 10.0.0.2 for half.
	now = now.Add(idleAfter / 2)
	if !limiter.Allow("10.0.0.3") {
		t.Fatal("first call from 10.0.0.3 was throttled")
	}
	if _, ok := limiter.clients["10.0.0.1"]; ok {
		t.Error("Expected idle client 10.0.0.1 to be evicted")
	}
	if got := len(limiter.clients); got != 2 {
		t.Errorf("Expected 2 tracked clients after sweep, got %d", got)
	}

	// An evicted client comes back with a fresh burst.
	if !limiter.Allow("10.0.0.1") {
		t.Error("returning client 10.0.0.1 was throttled")
	}
}

func TestLoggingInterceptorPassesThrough(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server, _, _ := setupServer(t, LoggingInterceptor(logger))

	if err := call(t, server, pingProcedure, ""); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
	if err := call(t, server, failProcedure, ""); connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("Expected NotFound, got %v", err)
	}
}
