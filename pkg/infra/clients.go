package infra

import (
	"github.com/cirelay/cirelay/pkg/domain/interfaces"
	"github.com/cirelay/cirelay/pkg/infra/githubapi"
	"github.com/cirelay/cirelay/pkg/infra/vault"
)

type Clients struct {
	githubClient interfaces.GitHubClient
	tokenVault   *vault.Vault
	repoRegistry interfaces.RepoRegistry
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		githubClient: githubapi.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.githubClient
}
func (x *Clients) Vault() *vault.Vault {
	return x.tokenVault
}
func (x *Clients) RepoRegistry() interfaces.RepoRegistry {
	return x.repoRegistry
}

func WithGitHub(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.githubClient = client
	}
}

func WithVault(v *vault.Vault) Option {
	return func(x *Clients) {
		x.tokenVault = v
	}
}

func WithRepoRegistry(registry interfaces.RepoRegistry) Option {
	return func(x *Clients) {
		x.repoRegistry = registry
	}
}
