package cli

import (
	"context"
	"fmt"

	"github.com/cirelay/cirelay/pkg/cli/config"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// vaultCommand offers offline helpers for the token vault, mainly to verify
// a key or migrate ciphertexts without running the server.
func vaultCommand() *cli.Command {
	var vaultCfg config.Vault

	return &cli.Command{
		Name:  "vault",
		Usage: "Token vault helpers",
		Commands: []*cli.Command{
			{
				Name:      "encrypt",
				Usage:     "Encrypt a plaintext with the configured key",
				ArgsUsage: "<plaintext>",
				Flags:     vaultCfg.Flags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return goerr.New("exactly one plaintext argument is required")
					}

					v, err := vaultCfg.New()
					if err != nil {
						return err
					}

					encrypted, err := v.Encrypt(c.Args().First())
					if err != nil {
						return err
					}

					fmt.Println(string(encrypted))
					return nil
				},
			},
			{
				Name:      "decrypt",
				Usage:     "Decrypt a stored ciphertext with the configured key",
				ArgsUsage: "<ciphertext>",
				Flags:     vaultCfg.Flags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return goerr.New("exactly one ciphertext argument is required")
					}

					v, err := vaultCfg.New()
					if err != nil {
						return err
					}

					plaintext, err := v.Decrypt(types.EncryptedToken(c.Args().First()))
					if err != nil {
						return err
					}

					fmt.Println(plaintext)
					return nil
				},
			},
		},
	}
}
