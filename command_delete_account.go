package devconnect

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// DeleteAccountMessage removes a user together with their profile and
// every post they authored, in a single transaction.
type DeleteAccountMessage struct {
	UserID uuid.UUID `json:"user_id"`
}

func (e DeleteAccountMessage) Type() string { return "user.delete_account" }

type DeleteAccountHandler struct {
	repo RepositoryManager
}

func NewDeleteAccountHandler(repo RepositoryManager) *DeleteAccountHandler {
	return &DeleteAccountHandler{repo: repo}
}

func (h *DeleteAccountHandler) Execute(ctx context.Context, event DeleteAccountMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during account deletion",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *DeleteAccountHandler) execute(ctx context.Context, event DeleteAccountMessage) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err := h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := h.repo.Posts().DeleteByUserIDTx(ctx, tx, event.UserID); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete posts")
		}

		if err := h.repo.Profiles().DeleteByUserIDTx(ctx, tx, event.UserID); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete profile")
		}

		if err := h.repo.Users().DeleteByIDTx(ctx, tx, event.UserID); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete user")
		}

		return nil
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return richErr
		}

		return goerrors.Wrap(err, goerrors.CategoryInternal, "account deletion transaction failed")
	}

	return nil
}
