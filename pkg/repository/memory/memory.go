package memory

import (
	"github.com/cirelay/cirelay/pkg/domain/interfaces"
	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
)

// New creates a new in-memory repository registry
func New() interfaces.RepoRegistry {
	return &repoRegistry{
		repos: make(map[types.RepoSlug]*model.Repository),
	}
}
