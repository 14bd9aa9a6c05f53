package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/aidledger/internal/auth"
	"github.com/mmynk/aidledger/internal/middleware"
	"github.com/mmynk/aidledger/internal/storage/sqlite"
	pb "github.com/mmynk/aidledger/pkg/proto"
	"github.com/mmynk/aidledger/pkg/proto/protoconnect"
)

func setupAuthTestServer(t *testing.T) protoconnect.AuthServiceClient {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	jwtManager := auth.NewJWTManager("test-secret-at-least-16", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	svc := NewAuthService(authenticator, jwtManager, store, discardLogger())

	path, handler := protoconnect.NewAuthServiceHandler(svc, connect.WithInterceptors(
		middleware.RequireAuth(jwtManager,
			protoconnect.AuthServiceRegisterProcedure,
			protoconnect.AuthServiceLoginProcedure,
		),
	))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	})
	return protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL)
}

func withToken[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func TestRegisterAndLogin(t *testing.T) {
	client := setupAuthTestServer(t)
	ctx := context.Background()

	reg, err := client.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Email:       "Case.Worker@Example.org",
		DisplayName: "Case Worker",
		Password:    "correct-horse",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if reg.Msg.Token == "" {
		t.Fatal("expected token")
	}
	if reg.Msg.User.Role != "user" {
		t.Errorf("expected role user, got %q", reg.Msg.User.Role)
	}
	if reg.Msg.User.Email != "case.worker@example.org" {
		t.Errorf("expected normalized email, got %q", reg.Msg.User.Email)
	}

	login, err := client.Login(ctx, connect.NewRequest(&pb.LoginRequest{
		Email:    "case.worker@example.org",
		Password: "correct-horse",
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	me, err := client.GetCurrentUser(ctx, withToken(login.Msg.Token, &emptypb.Empty{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if me.Msg.Id != reg.Msg.User.Id {
		t.Errorf("expected user %s, got %s", reg.Msg.User.Id, me.Msg.Id)
	}

	if _, err := client.Logout(ctx, withToken(login.Msg.Token, &emptypb.Empty{})); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
}

func TestAuthErrors(t *testing.T) {
	client := setupAuthTestServer(t)
	ctx := context.Background()

	if _, err := client.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Email: "a@example.org", DisplayName: "A", Password: "long-enough",
	})); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name string
		call func() error
		want connect.Code
	}{
		{"duplicate email", func() error {
			_, err := client.Register(ctx, connect.NewRequest(&pb.RegisterRequest{Email: "A@example.org", DisplayName: "A", Password: "long-enough"}))
			return err
		}, connect.CodeAlreadyExists},
		{"weak password", func() error {
			_, err := client.Register(ctx, connect.NewRequest(&pb.RegisterRequest{Email: "b@example.org", DisplayName: "B", Password: "short"}))
			return err
		}, connect.CodeInvalidArgument},
		{"wrong password", func() error {
			_, err := client.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "a@example.org", Password: "not-the-one"}))
			return err
		}, connect.CodeUnauthenticated},
		{"unknown email", func() error {
			_, err := client.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "x@example.org", Password: "long-enough"}))
			return err
		}, connect.CodeUnauthenticated},
		{"missing token", func() error {
			_, err := client.GetCurrentUser(ctx, connect.NewRequest(&emptypb.Empty{}))
			return err
		}, connect.CodeUnauthenticated},
		{"garbage token", func() error {
			_, err := client.GetCurrentUser(ctx, withToken("garbage", &emptypb.Empty{}))
			return err
		}, connect.CodeUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCode(t, tt.call(), tt.want)
		})
	}
}
