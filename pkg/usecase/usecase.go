package usecase

import (
	"github.com/cirelay/cirelay/pkg/infra"
)

const defaultConcurrency = 8

type UseCase struct {
	clients *infra.Clients

	// concurrency bounds the number of parallel workflow-run fetches
	// during pull request aggregation.
	concurrency int
}

type Option func(*UseCase)

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:     clients,
		concurrency: defaultConcurrency,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

func WithConcurrency(n int) Option {
	return func(x *UseCase) {
		if n > 0 {
			x.concurrency = n
		}
	}
}
