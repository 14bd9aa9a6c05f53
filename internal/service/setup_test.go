package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"

	"github.com/mmynk/aidledger/internal/approval"
	"github.com/mmynk/aidledger/internal/auth"
	"github.com/mmynk/aidledger/internal/distribution"
	"github.com/mmynk/aidledger/internal/draft"
	"github.com/mmynk/aidledger/internal/middleware"
	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
	"github.com/mmynk/aidledger/internal/storage/sqlite"
	pb "github.com/mmynk/aidledger/pkg/proto"
	"github.com/mmynk/aidledger/pkg/proto/protoconnect"
)

const (
	testUserHeader = "X-Test-User"
	testRoleHeader = "X-Test-Role"

	staffID = "staff-1"
	adminID = "admin-1"
)

type testServer struct {
	URL           string
	Store         *sqlite.SQLiteStore
	Registry      protoconnect.RegistryServiceClient
	Distributions protoconnect.DistributionServiceClient
	Drafts        protoconnect.DraftServiceClient
	Reports       protoconnect.ReportServiceClient
	Needs         protoconnect.NeedServiceClient
	Approvals     protoconnect.ApprovalServiceClient
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testAuth trusts the test identity headers in place of a JWT.
func testAuth() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if id := req.Header().Get(testUserHeader); id != "" {
				ctx = middleware.WithClaims(ctx, &auth.Claims{
					UserID: id,
					Role:   models.Role(req.Header().Get(testRoleHeader)),
				})
			}
			return next(ctx, req)
		}
	}
}

// as wraps msg in a request made by userID with role.
func as[T any](userID string, role models.Role, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set(testUserHeader, userID)
	req.Header().Set(testRoleHeader, string(role))
	return req
}

func staff[T any](msg *T) *connect.Request[T] { return as(staffID, models.RoleUser, msg) }

func admin[T any](msg *T) *connect.Request[T] { return as(adminID, models.RoleAdmin, msg) }

// setupTestServer serves every domain service over a temp SQLite database.
func setupTestServer(t *testing.T) *testServer {
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

	logger := discardLogger()
	resolver := recipient.NewResolver(store, recipient.WithLogger(logger))
	builder := distribution.NewBuilder(resolver, distribution.WithLogger(logger))
	drafts := draft.NewRegistry(time.Hour, 0)

	distSvc := NewDistributionService(store, builder, resolver, logger)
	opts := connect.WithInterceptors(testAuth())

	mux := chi.NewRouter()
	path, handler := protoconnect.NewRegistryServiceHandler(NewRegistryService(store, resolver, logger), opts)
	mux.Handle(path+"*", handler)
	path, handler = protoconnect.NewDistributionServiceHandler(distSvc, opts)
	mux.Handle(path+"*", handler)
	path, handler = protoconnect.NewDraftServiceHandler(NewDraftService(drafts, store, resolver, distSvc, logger), opts)
	mux.Handle(path+"*", handler)
	path, handler = protoconnect.NewReportServiceHandler(NewReportService(store, store, resolver, logger), opts)
	mux.Handle(path+"*", handler)
	path, handler = protoconnect.NewNeedServiceHandler(NewNeedService(store, logger), opts)
	mux.Handle(path+"*", handler)
	approvals := approval.NewService(store, approval.WithLogger(logger))
	path, handler = protoconnect.NewApprovalServiceHandler(NewApprovalService(approvals, logger), opts)
	mux.Handle(path+"*", handler)
	NewExportHandler(store, store, resolver, logger).Routes(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		drafts.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	})

	return &testServer{
		URL:           server.URL,
		Store:         store,
		Registry:      protoconnect.NewRegistryServiceClient(http.DefaultClient, server.URL),
		Distributions: protoconnect.NewDistributionServiceClient(http.DefaultClient, server.URL),
		Drafts:        protoconnect.NewDraftServiceClient(http.DefaultClient, server.URL),
		Reports:       protoconnect.NewReportServiceClient(http.DefaultClient, server.URL),
		Needs:         protoconnect.NewNeedServiceClient(http.DefaultClient, server.URL),
		Approvals:     protoconnect.NewApprovalServiceClient(http.DefaultClient, server.URL),
	}
}

var idSeq int

// createIndividual registers an individual through the API.
func (s *testServer) createIndividual(t *testing.T, first, last, district string, types ...string) *pb.Individual {
	t.Helper()
	idSeq++
	resp, err := s.Registry.CreateIndividual(context.Background(), staff(&pb.CreateIndividualRequest{
		FirstName:       first,
		LastName:        last,
		IdNumber:        fmt.Sprintf("ID-%06d", idSeq),
		DateOfBirth:     "1985-03-04",
		District:        district,
		AssistanceTypes: types,
	}))
	if err != nil {
		t.Fatalf("CreateIndividual failed: %v", err)
	}
	return resp.Msg
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}
