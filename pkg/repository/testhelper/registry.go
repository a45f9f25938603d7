package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cirelay/cirelay/pkg/domain/interfaces"
	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/cirelay/cirelay/pkg/repository"
	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for RepoRegistry.
// This is the main entry point for testing any RepoRegistry implementation.
func TestAll(t *testing.T, registry interfaces.RepoRegistry) {
	t.Run("RepositoryCRUD", func(t *testing.T) {
		TestRepositoryCRUD(t, registry)
	})
	t.Run("DuplicateRegistration", func(t *testing.T) {
		TestDuplicateRegistration(t, registry)
	})
	t.Run("ListByOwner", func(t *testing.T) {
		TestListByOwner(t, registry)
	})
	t.Run("SlugRotation", func(t *testing.T) {
		TestSlugRotation(t, registry)
	})
	t.Run("TokenUpdate", func(t *testing.T) {
		TestTokenUpdate(t, registry)
	})
}

func newTestRepository(ownerID types.UserID) *model.Repository {
	name := fmt.Sprintf("repo-%s", uuid.New().String()[:8])
	now := time.Now()
	return &model.Repository{
		Slug:      types.RepoSlug(uuid.New().String()),
		OwnerID:   ownerID,
		Name:      name,
		FullName:  fmt.Sprintf("owner-%s/%s", uuid.New().String()[:8], name),
		GitHubID:  types.GitHubRepoID(time.Now().UnixNano()),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TestRepositoryCRUD tests basic CRUD operations for Repository
func TestRepositoryCRUD(t *testing.T, registry interfaces.RepoRegistry) {
	ctx := context.Background()

	ownerID := types.UserID(fmt.Sprintf("user-%s", uuid.New().String()[:8]))
	testRepo := newTestRepository(ownerID)

	gt.NoError(t, registry.Create(ctx, testRepo))

	// Get by slug
	retrieved, err := registry.GetBySlug(ctx, testRepo.Slug)
	gt.NoError(t, err)
	gt.V(t, retrieved.Slug).Equal(testRepo.Slug)
	gt.V(t, retrieved.OwnerID).Equal(testRepo.OwnerID)
	gt.V(t, retrieved.Name).Equal(testRepo.Name)
	gt.V(t, retrieved.FullName).Equal(testRepo.FullName)
	gt.V(t, retrieved.GitHubID).Equal(testRepo.GitHubID)

	// Get by owner and GitHub ID
	retrieved, err = registry.GetByOwnerAndGitHubID(ctx, ownerID, testRepo.GitHubID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Slug).Equal(testRepo.Slug)

	// Delete
	gt.NoError(t, registry.Delete(ctx, testRepo.Slug))

	_, err = registry.GetBySlug(ctx, testRepo.Slug)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	// Not found cases
	_, err = registry.GetBySlug(ctx, types.RepoSlug(uuid.New().String()))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = registry.Delete(ctx, types.RepoSlug(uuid.New().String()))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestDuplicateRegistration verifies that the same GitHub repository cannot
// be registered twice by the same owner.
func TestDuplicateRegistration(t *testing.T, registry interfaces.RepoRegistry) {
	ctx := context.Background()

	ownerID := types.UserID(fmt.Sprintf("user-%s", uuid.New().String()[:8]))
	testRepo := newTestRepository(ownerID)

	gt.NoError(t, registry.Create(ctx, testRepo))

	dup := *testRepo
	dup.Slug = types.RepoSlug(uuid.New().String())
	err := registry.Create(ctx, &dup)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	// A different owner can register the same GitHub repository
	other := *testRepo
	other.Slug = types.RepoSlug(uuid.New().String())
	other.OwnerID = types.UserID(fmt.Sprintf("user-%s", uuid.New().String()[:8]))
	gt.NoError(t, registry.Create(ctx, &other))

	gt.NoError(t, registry.Delete(ctx, testRepo.Slug))
	gt.NoError(t, registry.Delete(ctx, other.Slug))
}

// TestListByOwner verifies owner scoping and recency ordering.
func TestListByOwner(t *testing.T, registry interfaces.RepoRegistry) {
	ctx := context.Background()

	ownerID := types.UserID(fmt.Sprintf("user-%s", uuid.New().String()[:8]))

	older := newTestRepository(ownerID)
	older.CreatedAt = time.Now().Add(-time.Hour)
	older.UpdatedAt = older.CreatedAt
	gt.NoError(t, registry.Create(ctx, older))

	newer := newTestRepository(ownerID)
	gt.NoError(t, registry.Create(ctx, newer))

	// Another owner's repository must not appear
	foreign := newTestRepository(types.UserID(fmt.Sprintf("user-%s", uuid.New().String()[:8])))
	gt.NoError(t, registry.Create(ctx, foreign))

	repos, err := registry.ListByOwner(ctx, ownerID)
	gt.NoError(t, err)
	gt.V(t, len(repos)).Equal(2)
	gt.V(t, repos[0].Slug).Equal(newer.Slug)
	gt.V(t, repos[1].Slug).Equal(older.Slug)

	gt.NoError(t, registry.Delete(ctx, older.Slug))
	gt.NoError(t, registry.Delete(ctx, newer.Slug))
	gt.NoError(t, registry.Delete(ctx, foreign.Slug))
}

// TestSlugRotation verifies that rotating a slug invalidates the old one
// immediately and keeps everything else intact.
func TestSlugRotation(t *testing.T, registry interfaces.RepoRegistry) {
	ctx := context.Background()

	ownerID := types.UserID(fmt.Sprintf("user-%s", uuid.New().String()[:8]))
	testRepo := newTestRepository(ownerID)
	gt.NoError(t, registry.Create(ctx, testRepo))

	oldSlug := testRepo.Slug
	newSlug := types.RepoSlug(uuid.New().String())

	updated, err := registry.Update(ctx, oldSlug, &model.RepositoryUpdate{
		NewSlug: &newSlug,
	})
	gt.NoError(t, err)
	gt.V(t, updated.Slug).Equal(newSlug)
	gt.V(t, updated.FullName).Equal(testRepo.FullName)

	// Old slug is gone
	_, err = registry.GetBySlug(ctx, oldSlug)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	// New slug resolves
	retrieved, err := registry.GetBySlug(ctx, newSlug)
	gt.NoError(t, err)
	gt.V(t, retrieved.GitHubID).Equal(testRepo.GitHubID)

	gt.NoError(t, registry.Delete(ctx, newSlug))
}

// TestTokenUpdate verifies that the encrypted token can be set and cleared
// without touching the slug.
func TestTokenUpdate(t *testing.T, registry interfaces.RepoRegistry) {
	ctx := context.Background()

	ownerID := types.UserID(fmt.Sprintf("user-%s", uuid.New().String()[:8]))
	testRepo := newTestRepository(ownerID)
	gt.NoError(t, registry.Create(ctx, testRepo))

	token := types.EncryptedToken("0011:2233:445566")
	updated, err := registry.Update(ctx, testRepo.Slug, &model.RepositoryUpdate{
		NewEncryptedToken: &token,
	})
	gt.NoError(t, err)
	gt.V(t, updated.Slug).Equal(testRepo.Slug)
	gt.V(t, updated.EncryptedToken).Equal(token)
	gt.True(t, updated.HasToken())

	retrieved, err := registry.GetBySlug(ctx, testRepo.Slug)
	gt.NoError(t, err)
	gt.V(t, retrieved.EncryptedToken).Equal(token)

	// Clearing the token
	empty := types.EncryptedToken("")
	updated, err = registry.Update(ctx, testRepo.Slug, &model.RepositoryUpdate{
		NewEncryptedToken: &empty,
	})
	gt.NoError(t, err)
	gt.False(t, updated.HasToken())

	gt.NoError(t, registry.Delete(ctx, testRepo.Slug))
}
