package interfaces

import (
	"context"

	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
)

//go:generate moq -out ../mock/repo_registry_mock.go -pkg mock . RepoRegistry

// RepoRegistry owns registered repository records. Implementations must keep
// slugs globally unique and must serialize slug rotations per repository:
// a rotation reads its own write, so at most one may proceed at a time.
type RepoRegistry interface {
	// GetBySlug returns repository.ErrNotFound for unknown slugs, including
	// slugs invalidated by rotation.
	GetBySlug(ctx context.Context, slug types.RepoSlug) (*model.Repository, error)

	// GetByOwnerAndGitHubID is the duplicate-registration lookup.
	GetByOwnerAndGitHubID(ctx context.Context, ownerID types.UserID, githubID types.GitHubRepoID) (*model.Repository, error)

	// ListByOwner returns the owner's registered repositories, newest first.
	ListByOwner(ctx context.Context, ownerID types.UserID) ([]*model.Repository, error)

	// Create fails with repository.ErrAlreadyExists if the owner has already
	// registered the same GitHub repository.
	Create(ctx context.Context, repo *model.Repository) error

	// Update applies a slug rotation and/or token write atomically and
	// returns the updated record.
	Update(ctx context.Context, slug types.RepoSlug, update *model.RepositoryUpdate) (*model.Repository, error)

	Delete(ctx context.Context, slug types.RepoSlug) error
}
