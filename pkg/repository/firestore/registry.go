package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/cirelay/cirelay/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionRepositories = "repositories"

// Documents are keyed by slug, so slug lookup is a direct Get. A slug
// rotation must therefore move the document; Update runs it in a transaction
// so only one rotation can proceed per repository at a time.
type repoRegistry struct {
	client *firestore.Client
}

func (r *repoRegistry) GetBySlug(ctx context.Context, slug types.RepoSlug) (*model.Repository, error) {
	snap, err := r.client.Collection(collectionRepositories).Doc(string(slug)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
				goerr.V("slug", slug),
			)
		}
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("slug", slug),
		)
	}

	var repo model.Repository
	if err := snap.DataTo(&repo); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository",
			goerr.V("slug", slug),
		)
	}

	return &repo, nil
}

func (r *repoRegistry) GetByOwnerAndGitHubID(ctx context.Context, ownerID types.UserID, githubID types.GitHubRepoID) (*model.Repository, error) {
	query := r.client.Collection(collectionRepositories).
		Where("OwnerID", "==", string(ownerID)).
		Where("GitHubID", "==", int64(githubID)).
		Limit(1)

	iter := query.Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("ownerID", ownerID),
			goerr.V("githubID", githubID),
		)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query repository",
			goerr.V("ownerID", ownerID),
		)
	}

	var repo model.Repository
	if err := snap.DataTo(&repo); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository")
	}

	return &repo, nil
}

func (r *repoRegistry) ListByOwner(ctx context.Context, ownerID types.UserID) ([]*model.Repository, error) {
	query := r.client.Collection(collectionRepositories).
		Where("OwnerID", "==", string(ownerID)).
		OrderBy("CreatedAt", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var repos []*model.Repository
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate repositories",
				goerr.V("ownerID", ownerID),
			)
		}

		var repo model.Repository
		if err := snap.DataTo(&repo); err != nil {
			return nil, goerr.Wrap(err, "failed to decode repository")
		}

		repos = append(repos, &repo)
	}

	return repos, nil
}

func (r *repoRegistry) Create(ctx context.Context, repo *model.Repository) error {
	if err := repo.Validate(); err != nil {
		return err
	}

	if _, err := r.GetByOwnerAndGitHubID(ctx, repo.OwnerID, repo.GitHubID); err == nil {
		return goerr.Wrap(repository.ErrAlreadyExists, "repository is already registered",
			goerr.V("ownerID", repo.OwnerID),
			goerr.V("githubID", repo.GitHubID),
		)
	}

	docRef := r.client.Collection(collectionRepositories).Doc(string(repo.Slug))
	if _, err := docRef.Create(ctx, repo); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "slug is already in use",
				goerr.V("slug", repo.Slug),
			)
		}
		return goerr.Wrap(err, "failed to create repository",
			goerr.V("slug", repo.Slug),
		)
	}

	return nil
}

func (r *repoRegistry) Update(ctx context.Context, slug types.RepoSlug, update *model.RepositoryUpdate) (*model.Repository, error) {
	var updated model.Repository

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		oldRef := r.client.Collection(collectionRepositories).Doc(string(slug))
		snap, err := tx.Get(oldRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(repository.ErrNotFound, "repository not found",
					goerr.V("slug", slug),
				)
			}
			return goerr.Wrap(err, "failed to get repository", goerr.V("slug", slug))
		}

		if err := snap.DataTo(&updated); err != nil {
			return goerr.Wrap(err, "failed to decode repository", goerr.V("slug", slug))
		}

		updated.UpdatedAt = time.Now()
		if update.NewEncryptedToken != nil {
			updated.EncryptedToken = *update.NewEncryptedToken
		}

		if update.NewSlug == nil {
			return tx.Set(oldRef, &updated)
		}

		// Slug rotation moves the document so the old link 404s immediately.
		updated.Slug = *update.NewSlug
		newRef := r.client.Collection(collectionRepositories).Doc(string(updated.Slug))
		if err := tx.Create(newRef, &updated); err != nil {
			return goerr.Wrap(err, "failed to create rotated repository",
				goerr.V("slug", updated.Slug),
			)
		}
		return tx.Delete(oldRef)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repoRegistry) Delete(ctx context.Context, slug types.RepoSlug) error {
	docRef := r.client.Collection(collectionRepositories).Doc(string(slug))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "repository not found",
				goerr.V("slug", slug),
			)
		}
		return goerr.Wrap(err, "failed to get repository", goerr.V("slug", slug))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete repository",
			goerr.V("slug", slug),
		)
	}

	return nil
}
