package model

import (
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Session is the verified caller identity attached to a request. The GitHub
// OAuth token is carried only in vault-encrypted form; it is decrypted
// on demand for owner flows that talk to the GitHub API as the caller.
type Session struct {
	UserID               types.UserID
	Login                types.GitHubLogin
	EncryptedGitHubToken types.EncryptedToken
}

func (x *Session) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if x.Login == "" {
		return goerr.Wrap(types.ErrValidationFailed, "login is empty")
	}
	return nil
}
