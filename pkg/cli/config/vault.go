package config

import (
	"log/slog"

	"github.com/cirelay/cirelay/pkg/infra/vault"
	"github.com/urfave/cli/v3"
)

// Vault carries the token encryption key. The key is resolved once at
// startup; a malformed key fails the process before it serves any request.
type Vault struct {
	key string `masq:"secret"`
}

func (x *Vault) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "vault-key",
			Usage:       "32-byte key for token encryption at rest",
			Category:    "Vault",
			Sources:     cli.EnvVars("CIRELAY_VAULT_KEY"),
			Destination: &x.key,
			Required:    true,
		},
	}
}

func (x *Vault) New() (*vault.Vault, error) {
	return vault.New(x.key)
}

func (x Vault) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("key", "***********"),
	)
}
