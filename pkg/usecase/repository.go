package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/cirelay/cirelay/pkg/repository"
	"github.com/cirelay/cirelay/pkg/utils/logging"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// newSlug generates an unguessable repository slug. UUIDv4 gives 122 bits of
// randomness, enough that the slug works as a bearer capability.
func newSlug() types.RepoSlug {
	return types.RepoSlug(uuid.NewString())
}

// ListRepositories returns the caller's registered repositories, newest
// first.
func (x *UseCase) ListRepositories(ctx context.Context, sess *model.Session) ([]*model.RepositoryView, error) {
	if sess == nil {
		return nil, goerr.Wrap(types.ErrAuthRequired, "sign-in required")
	}

	repos, err := x.clients.RepoRegistry().ListByOwner(ctx, sess.UserID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories")
	}

	views := make([]*model.RepositoryView, len(repos))
	for i, repo := range repos {
		views[i] = repo.View(sess.UserID)
	}

	return views, nil
}

// RegisterRepository registers a GitHub repository and mints its first slug.
// Registering the same GitHub repository twice is rejected.
func (x *UseCase) RegisterRepository(ctx context.Context, sess *model.Session, input *model.RegisterRepositoryInput) (*model.RepositoryView, error) {
	if sess == nil {
		return nil, goerr.Wrap(types.ErrAuthRequired, "sign-in required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := logging.CtxTime(ctx)
	repo := &model.Repository{
		Slug:      newSlug(),
		OwnerID:   sess.UserID,
		Name:      input.Name,
		FullName:  input.FullName,
		GitHubID:  input.GitHubID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := x.clients.RepoRegistry().Create(ctx, repo); err != nil {
		return nil, goerr.Wrap(err, "failed to register repository",
			goerr.V("fullName", input.FullName),
		)
	}

	logging.From(ctx).Info("registered repository",
		slog.Any("slug", repo.Slug),
		slog.String("fullName", repo.FullName),
	)

	return repo.View(sess.UserID), nil
}

// GetRepository resolves a slug for any signed-in caller who presents it.
// The slug selects the repository, but a session is still required before
// anything about the record is revealed.
func (x *UseCase) GetRepository(ctx context.Context, sess *model.Session, slug types.RepoSlug) (*model.RepositoryView, error) {
	if sess == nil {
		return nil, goerr.Wrap(types.ErrAuthRequired, "sign-in required")
	}

	repo, err := x.resolveSlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return repo.View(sess.UserID), nil
}

// UpdateRepository stores a new access token and/or rotates the slug. Only
// the owner may mutate the record. A rotated slug invalidates the old link
// immediately; the caller must redistribute the new one.
func (x *UseCase) UpdateRepository(ctx context.Context, sess *model.Session, slug types.RepoSlug, input *model.UpdateRepositoryInput) (*model.RepositoryView, error) {
	if sess == nil {
		return nil, goerr.Wrap(types.ErrAuthRequired, "sign-in required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	repo, err := x.resolveSlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if repo.OwnerID != sess.UserID {
		return nil, goerr.Wrap(types.ErrForbidden, "only the owner can update the repository",
			goerr.V("slug", slug),
		)
	}

	update := &model.RepositoryUpdate{}
	if input.RegenerateSlug {
		rotated := newSlug()
		update.NewSlug = &rotated
	}
	if input.Token != "" {
		encrypted, err := x.clients.Vault().Encrypt(input.Token)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to encrypt access token")
		}
		update.NewEncryptedToken = &encrypted
	}

	updated, err := x.clients.RepoRegistry().Update(ctx, slug, update)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update repository",
			goerr.V("slug", slug),
		)
	}

	logging.From(ctx).Info("updated repository",
		slog.Any("slug", updated.Slug),
		slog.Bool("rotated", input.RegenerateSlug),
		slog.Bool("tokenStored", input.Token != ""),
	)

	return updated.View(sess.UserID), nil
}

// DeleteRepository removes the record. Owner only.
func (x *UseCase) DeleteRepository(ctx context.Context, sess *model.Session, slug types.RepoSlug) error {
	if sess == nil {
		return goerr.Wrap(types.ErrAuthRequired, "sign-in required")
	}

	repo, err := x.resolveSlug(ctx, slug)
	if err != nil {
		return err
	}
	if repo.OwnerID != sess.UserID {
		return goerr.Wrap(types.ErrForbidden, "only the owner can delete the repository",
			goerr.V("slug", slug),
		)
	}

	if err := x.clients.RepoRegistry().Delete(ctx, slug); err != nil {
		return goerr.Wrap(err, "failed to delete repository",
			goerr.V("slug", slug),
		)
	}

	logging.From(ctx).Info("deleted repository", slog.Any("slug", slug))

	return nil
}

// resolveSlug maps registry misses to types.ErrNotFound so the HTTP layer
// renders an indistinguishable 404 for unknown and rotated slugs alike.
func (x *UseCase) resolveSlug(ctx context.Context, slug types.RepoSlug) (*model.Repository, error) {
	if slug == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "slug is empty")
	}

	repo, err := x.clients.RepoRegistry().GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrNotFound, "repository not found",
				goerr.V("slug", slug),
			)
		}
		return nil, goerr.Wrap(err, "failed to resolve slug",
			goerr.V("slug", slug),
		)
	}

	return repo, nil
}
