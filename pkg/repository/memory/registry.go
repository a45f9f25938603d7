package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/cirelay/cirelay/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

type repoRegistry struct {
	mu    sync.RWMutex
	repos map[types.RepoSlug]*model.Repository
}

func copyRepository(repo *model.Repository) *model.Repository {
	copied := *repo
	return &copied
}

func (r *repoRegistry) GetBySlug(ctx context.Context, slug types.RepoSlug) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repo, exists := r.repos[slug]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("slug", slug),
		)
	}

	return copyRepository(repo), nil
}

func (r *repoRegistry) GetByOwnerAndGitHubID(ctx context.Context, ownerID types.UserID, githubID types.GitHubRepoID) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, repo := range r.repos {
		if repo.OwnerID == ownerID && repo.GitHubID == githubID {
			return copyRepository(repo), nil
		}
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
		goerr.V("ownerID", ownerID),
		goerr.V("githubID", githubID),
	)
}

func (r *repoRegistry) ListByOwner(ctx context.Context, ownerID types.UserID) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var repos []*model.Repository
	for _, repo := range r.repos {
		if repo.OwnerID == ownerID {
			repos = append(repos, copyRepository(repo))
		}
	}

	sort.Slice(repos, func(i, j int) bool {
		return repos[i].CreatedAt.After(repos[j].CreatedAt)
	})

	return repos, nil
}

func (r *repoRegistry) Create(ctx context.Context, repo *model.Repository) error {
	if err := repo.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.repos[repo.Slug]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "slug is already in use",
			goerr.V("slug", repo.Slug),
		)
	}
	for _, existing := range r.repos {
		if existing.OwnerID == repo.OwnerID && existing.GitHubID == repo.GitHubID {
			return goerr.Wrap(repository.ErrAlreadyExists, "repository is already registered",
				goerr.V("ownerID", repo.OwnerID),
				goerr.V("githubID", repo.GitHubID),
			)
		}
	}

	r.repos[repo.Slug] = copyRepository(repo)

	return nil
}

func (r *repoRegistry) Update(ctx context.Context, slug types.RepoSlug, update *model.RepositoryUpdate) (*model.Repository, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	repo, exists := r.repos[slug]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("slug", slug),
		)
	}

	updated := copyRepository(repo)
	updated.UpdatedAt = time.Now()
	if update.NewEncryptedToken != nil {
		updated.EncryptedToken = *update.NewEncryptedToken
	}
	if update.NewSlug != nil {
		// Rotation: the old slug must stop resolving immediately.
		delete(r.repos, slug)
		updated.Slug = *update.NewSlug
	}

	r.repos[updated.Slug] = updated

	return copyRepository(updated), nil
}

func (r *repoRegistry) Delete(ctx context.Context, slug types.RepoSlug) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.repos[slug]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("slug", slug),
		)
	}

	delete(r.repos, slug)

	return nil
}
