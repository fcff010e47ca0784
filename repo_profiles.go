package devconnect

import (
	"context"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Profiles is the document-style store for developer profiles. Every write
// replaces the stored profile wholesale; concurrent saves are last write
// wins.
type Profiles interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
	Upsert(ctx context.Context, incoming *Profile) (*Profile, error)
	AddExperience(ctx context.Context, userID uuid.UUID, exp Experience) (*Profile, error)
	RemoveExperience(ctx context.Context, userID uuid.UUID, expID string) (*Profile, error)
	AddEducation(ctx context.Context, userID uuid.UUID, edu Education) (*Profile, error)
	RemoveEducation(ctx context.Context, userID uuid.UUID, eduID string) (*Profile, error)
	DeleteByUserIDTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error
}

type profiles struct {
	db *bun.DB
}

var _ Profiles = (*profiles)(nil)

// NewProfilesRepository creates a new repository.
func NewProfilesRepository(db *bun.DB) Profiles {
	return &profiles{db: db}
}

// GetByUserID loads a profile by its owner, with the owner's name and
// avatar populated. A malformed owner id reads the same as a missing
// profile.
func (r *profiles) GetByUserID(ctx context.Context, userID string) (*Profile, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	record := &Profile{}
	err = r.db.NewSelect().
		Model(record).
		Relation("Owner", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Column("id", "name", "avatar")
		}).
		Where("?TableAlias.user_id = ?", uid).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to load profile")
	}

	return record, nil
}

// List returns every profile with owners populated.
func (r *profiles) List(ctx context.Context) ([]*Profile, error) {
	var records []*Profile
	err := r.db.NewSelect().
		Model(&records).
		Relation("Owner", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Column("id", "name", "avatar")
		}).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list profiles")
	}

	return records, nil
}

// Upsert creates the profile on first save and merges supplied fields into
// the stored document on subsequent saves. The owner identity is keyed on
// and never overwritten.
func (r *profiles) Upsert(ctx context.Context, incoming *Profile) (*Profile, error) {
	existing, err := r.getByOwner(ctx, incoming.UserID)
	if err != nil && !repository.IsRecordNotFound(err) {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to load profile for upsert")
	}

	if existing == nil {
		incoming.ID = uuid.New()
		if incoming.Experience == nil {
			incoming.Experience = []Experience{}
		}
		if incoming.Education == nil {
			incoming.Education = []Education{}
		}

		if _, err := r.db.NewInsert().Model(incoming).Exec(ctx); err != nil {
			return nil, errors.Wrap(err, errors.CategoryInternal, "failed to create profile")
		}
		return incoming, nil
	}

	mergeProfileFields(existing, incoming)

	if err := r.save(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// AddExperience prepends the record so the newest entry is first.
func (r *profiles) AddExperience(ctx context.Context, userID uuid.UUID, exp Experience) (*Profile, error) {
	profile, err := r.requireByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	if exp.ID == uuid.Nil {
		exp.ID = uuid.New()
	}

	profile.Experience = append([]Experience{exp}, profile.Experience...)

	if err := r.save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// RemoveExperience removes the record with the given embedded id. An
// unknown id is an error; it never falls back to removing another entry.
func (r *profiles) RemoveExperience(ctx context.Context, userID uuid.UUID, expID string) (*Profile, error) {
	profile, err := r.requireByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, exp := range profile.Experience {
		if exp.ID.String() == expID {
			idx = i
			break
		}
	}

	if idx < 0 {
		return nil, ErrExperienceNotFound
	}

	profile.Experience = append(profile.Experience[:idx], profile.Experience[idx+1:]...)

	if err := r.save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// AddEducation prepends the record so the newest entry is first.
func (r *profiles) AddEducation(ctx context.Context, userID uuid.UUID, edu Education) (*Profile, error) {
	profile, err := r.requireByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	if edu.ID == uuid.Nil {
		edu.ID = uuid.New()
	}

	profile.Education = append([]Education{edu}, profile.Education...)

	if err := r.save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// RemoveEducation removes the record with the given embedded id.
func (r *profiles) RemoveEducation(ctx context.Context, userID uuid.UUID, eduID string) (*Profile, error) {
	profile, err := r.requireByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, edu := range profile.Education {
		if edu.ID.String() == eduID {
			idx = i
			break
		}
	}

	if idx < 0 {
		return nil, ErrEducationNotFound
	}

	profile.Education = append(profile.Education[:idx], profile.Education[idx+1:]...)

	if err := r.save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// DeleteByUserIDTx removes the profile owned by the given user.
func (r *profiles) DeleteByUserIDTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error {
	_, err := tx.NewDelete().
		Model((*Profile)(nil)).
		Where("?TableAlias.user_id = ?", userID).
		Exec(ctx)
	return err
}

func (r *profiles) getByOwner(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	record := &Profile{}
	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.user_id = ?", userID).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"user_id": userID.String(),
				})
		}
		return nil, err
	}

	return record, nil
}

func (r *profiles) requireByOwner(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	profile, err := r.getByOwner(ctx, userID)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrNoProfileForUser
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to load profile")
	}
	return profile, nil
}

func (r *profiles) save(ctx context.Context, profile *Profile) error {
	now := time.Now()
	profile.UpdatedAt = &now

	_, err := r.db.NewUpdate().
		Model(profile).
		WherePK().
		Exec(ctx)

	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to save profile")
	}
	return nil
}

// mergeProfileFields overlays the supplied fields onto the stored document.
// Unmentioned fields keep their previous values; the owner id is untouched.
func mergeProfileFields(existing, incoming *Profile) {
	existing.Status = incoming.Status
	existing.Skills = incoming.Skills

	if incoming.Company != "" {
		existing.Company = incoming.Company
	}
	if incoming.Website != "" {
		existing.Website = incoming.Website
	}
	if incoming.Location != "" {
		existing.Location = incoming.Location
	}
	if incoming.Bio != "" {
		existing.Bio = incoming.Bio
	}
	if incoming.GithubUsername != "" {
		existing.GithubUsername = incoming.GithubUsername
	}

	if incoming.Social.Youtube != "" {
		existing.Social.Youtube = incoming.Social.Youtube
	}
	if incoming.Social.Twitter != "" {
		existing.Social.Twitter = incoming.Social.Twitter
	}
	if incoming.Social.Facebook != "" {
		existing.Social.Facebook = incoming.Social.Facebook
	}
	if incoming.Social.Linkedin != "" {
		existing.Social.Linkedin = incoming.Social.Linkedin
	}
	if incoming.Social.Instagram != "" {
		existing.Social.Instagram = incoming.Social.Instagram
	}
}
