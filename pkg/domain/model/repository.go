package model

import (
	"strings"
	"time"

	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Repository is a registered GitHub repository. The slug is the public,
// unguessable identifier distributed to assignees; rotating it invalidates
// every previously shared link. EncryptedToken is empty until the owner
// stores a personal access token.
type Repository struct {
	Slug           types.RepoSlug
	OwnerID        types.UserID
	Name           string
	FullName       string
	GitHubID       types.GitHubRepoID
	EncryptedToken types.EncryptedToken
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (x *Repository) Validate() error {
	if x.Slug == "" {
		return goerr.Wrap(types.ErrValidationFailed, "slug is empty")
	}
	if x.OwnerID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner ID is empty")
	}
	if x.GitHubID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "GitHub repository ID is empty")
	}
	if _, _, err := x.OwnerRepo(); err != nil {
		return err
	}
	return nil
}

func (x *Repository) HasToken() bool {
	return x.EncryptedToken != ""
}

// OwnerRepo splits FullName into the owner and repo segments used by the
// GitHub API.
func (x *Repository) OwnerRepo() (string, string, error) {
	parts := strings.Split(x.FullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", goerr.Wrap(types.ErrValidationFailed, "full name must be owner/repo",
			goerr.V("fullName", x.FullName),
		)
	}
	return parts[0], parts[1], nil
}

// RepositoryUpdate carries the mutable fields of a repository record. Nil
// means "leave unchanged".
type RepositoryUpdate struct {
	NewSlug           *types.RepoSlug
	NewEncryptedToken *types.EncryptedToken
}

// RepositoryView is the API-facing projection of a repository. The encrypted
// token value is never included, only its presence.
type RepositoryView struct {
	Slug      types.RepoSlug     `json:"slug"`
	Name      string             `json:"name"`
	FullName  string             `json:"fullName"`
	GitHubID  types.GitHubRepoID `json:"githubId"`
	HasToken  bool               `json:"hasToken"`
	IsOwner   bool               `json:"isOwner"`
	CreatedAt time.Time          `json:"createdAt"`
}

func (x *Repository) View(viewer types.UserID) *RepositoryView {
	return &RepositoryView{
		Slug:      x.Slug,
		Name:      x.Name,
		FullName:  x.FullName,
		GitHubID:  x.GitHubID,
		HasToken:  x.HasToken(),
		IsOwner:   x.OwnerID == viewer,
		CreatedAt: x.CreatedAt,
	}
}
