package devconnect

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Posts interface {
	repository.Repository[*Post]

	Publish(ctx context.Context, post *Post) (*Post, error)
	ListNewestFirst(ctx context.Context) ([]*Post, error)
	GetPost(ctx context.Context, id string) (*Post, error)
	Remove(ctx context.Context, post *Post) error
	DeleteByUserIDTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error
}

type posts struct {
	repository.Repository[*Post]
	db *bun.DB
}

var (
	_ Posts                        = (*posts)(nil)
	_ repository.Repository[*Post] = (*posts)(nil)
)

func NewPostsRepository(db *bun.DB) Posts {
	repo := repository.NewRepository[*Post](db, repository.ModelHandlers[*Post]{
		NewRecord: func() *Post { return &Post{} },
		GetID: func(p *Post) uuid.UUID {
			if p == nil {
				return uuid.Nil
			}
			return p.ID
		},
		SetID: func(p *Post, id uuid.UUID) {
			if p != nil {
				p.ID = id
			}
		},
	})

	return &posts{
		Repository: repo,
		db:         db,
	}
}

func (a *posts) Publish(ctx context.Context, post *Post) (*Post, error) {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	return a.Repository.Create(ctx, post)
}

// ListNewestFirst returns the full feed ordered by creation time descending.
func (a *posts) ListNewestFirst(ctx context.Context) ([]*Post, error) {
	var records []*Post
	err := a.db.NewSelect().
		Model(&records).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list posts")
	}

	return records, nil
}

// GetPost resolves a post by id. Malformed ids read the same as unknown
// ones: not found, never an internal error.
func (a *posts) GetPost(ctx context.Context, id string) (*Post, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrPostNotFound
	}

	record := &Post{}
	err = a.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", pid).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to load post")
	}

	return record, nil
}

func (a *posts) Remove(ctx context.Context, post *Post) error {
	_, err := a.db.NewDelete().
		Model((*Post)(nil)).
		Where("?TableAlias.id = ?", post.ID).
		Exec(ctx)

	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to delete post")
	}
	return nil
}

func (a *posts) DeleteByUserIDTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error {
	_, err := tx.NewDelete().
		Model((*Post)(nil)).
		Where("?TableAlias.user_id = ?", userID).
		Exec(ctx)
	return err
}
