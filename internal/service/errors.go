package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/aidledger/internal/aggregator"
	"github.com/mmynk/aidledger/internal/approval"
	"github.com/mmynk/aidledger/internal/calculator"
	"github.com/mmynk/aidledger/internal/distribution"
	"github.com/mmynk/aidledger/internal/draft"
	"github.com/mmynk/aidledger/internal/recipient"
	"github.com/mmynk/aidledger/internal/storage"
)

// errPermissionDenied is returned for admin-only operations.
var errPermissionDenied = errors.New("admin role required")

// toConnectError maps domain errors to Connect codes. Unexpected errors are
// logged here, once, and surfaced as Internal.
func toConnectError(logger *slog.Logger, op string, err error) error {
	var verr *distribution.ValidationError
	var cerr *connect.Error
	switch {
	case errors.As(err, &cerr):
		return cerr
	case errors.As(err, &verr),
		errors.Is(err, recipient.ErrInvalidRef),
		errors.Is(err, aggregator.ErrInvalidQuantity),
		errors.Is(err, aggregator.ErrInvalidMode),
		errors.Is(err, calculator.ErrValueMode),
		errors.Is(err, calculator.ErrNegativeValue),
		errors.Is(err, approval.ErrInvalid),
		errors.Is(err, approval.ErrCommentRequired):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, approval.ErrForbidden):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, draft.ErrNotFound),
		errors.Is(err, aggregator.ErrUnknownEntry):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrConflict),
		errors.Is(err, aggregator.ErrDuplicate):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, storage.ErrNoFamily),
		errors.Is(err, draft.ErrSubmitInProgress),
		errors.Is(err, aggregator.ErrBulkSelectionTooSmall),
		errors.Is(err, approval.ErrNotPending),
		errors.Is(err, approval.ErrApproved):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	logger.Error(op+" failed", "error", err)
	return connect.NewError(connect.CodeInternal, fmt.Errorf("%s failed", op))
}

func invalidArgument(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}
