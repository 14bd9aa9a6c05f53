package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/aidledger/internal/config"
	pb "github.com/mmynk/aidledger/pkg/proto"
	"github.com/mmynk/aidledger/pkg/proto/protoconnect"
)

func newTestApp(t *testing.T, mutate func(*config.Config)) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "aidledger.db")
	cfg.Auth.JWTSecret = "app-test-secret-0123456789"
	cfg.Server.StaticPath = ""
	if mutate != nil {
		mutate(cfg)
	}

	store, err := OpenStore(context.Background(), cfg.Database)
	require.NoError(t, err)

	a := New(cfg, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	server := httptest.NewServer(a.Handler())
	t.Cleanup(func() {
		server.Close()
		a.Close()
		store.Close()
	})
	return server
}

func bearer[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func TestServerRequiresAuth(t *testing.T) {
	server := newTestApp(t, nil)
	ctx := context.Background()

	authClient := protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL)
	registry := protoconnect.NewRegistryServiceClient(http.DefaultClient, server.URL)

	_, err := registry.ListIndividuals(ctx, connect.NewRequest(&pb.ListIndividualsRequest{}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	session, err := authClient.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Email:       "worker@example.org",
		DisplayName: "Worker",
		Password:    "correct-horse",
	}))
	require.NoError(t, err)

	created, err := registry.CreateIndividual(ctx, bearer(session.Msg.Token, &pb.CreateIndividualRequest{
		FirstName: "Rana",
		LastName:  "Khoury",
		IdNumber:  "123",
		District:  "North",
	}))
	require.NoError(t, err)
	assert.Equal(t, session.Msg.User.Id, created.Msg.CreatedBy)

	resp, err := http.Get(server.URL + "/individuals/export.csv")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/individuals/export.csv", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+session.Msg.Token)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"Rana","Khoury","123"`)
}

func TestHealthAndMetrics(t *testing.T) {
	server := newTestApp(t, nil)

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	authClient := protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL)
	_, err = authClient.Login(context.Background(), connect.NewRequest(&pb.LoginRequest{Email: "nobody@example.org", Password: "whatever1"}))
	require.Error(t, err)

	resp, err = http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), `aidledger_rpc_requests_total{code="unauthenticated",procedure="/aidledger.v1.AuthService/Login"} 1`)
}

func TestLoginIsRateLimited(t *testing.T) {
	server := newTestApp(t, func(cfg *config.Config) {
		cfg.Auth.LoginRate = 0.001
		cfg.Auth.LoginBurst = 2
	})
	authClient := protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL)

	var codes []connect.Code
	for range 3 {
		_, err := authClient.Login(context.Background(), connect.NewRequest(&pb.LoginRequest{Email: "a@example.org", Password: "whatever1"}))
		codes = append(codes, connect.CodeOf(err))
	}
	assert.Equal(t, []connect.Code{connect.CodeUnauthenticated, connect.CodeUnauthenticated, connect.CodeResourceExhausted}, codes)
}

func TestCORS(t *testing.T) {
	server := newTestApp(t, func(cfg *config.Config) {
		cfg.Server.AllowedOrigins = []string{"https://aid.example.org"}
	})

	req, err := http.NewRequest(http.MethodOptions, server.URL+protoconnect.AuthServiceLoginProcedure, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://aid.example.org")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://aid.example.org", resp.Header.Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example.com")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestStaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	server := newTestApp(t, func(cfg *config.Config) { cfg.Server.StaticPath = dir })

	get := func(path string) (int, string) {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	_, body := get("/app.js")
	assert.Equal(t, "console.log(1)", body)

	_, body = get("/distributions/new")
	assert.True(t, strings.Contains(body, "app"), "SPA routes fall back to index.html")

	status, _ := get("/aidledger.v1.Unknown/Method")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestOpenStoreUnknownDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), config.DatabaseConfig{Driver: "mysql"})
	assert.ErrorContains(t, err, "unknown database driver")
}
