package config

import (
	"log/slog"

	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type Session struct {
	secret     types.SessionSecret `masq:"secret"`
	ttlSeconds int64
}

func (x *Session) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "session-secret",
			Usage:       "HMAC secret for session cookie signing",
			Category:    "Session",
			Sources:     cli.EnvVars("CIRELAY_SESSION_SECRET"),
			Destination: (*string)(&x.secret),
			Required:    true,
		},
		&cli.Int64Flag{
			Name:        "session-ttl",
			Usage:       "Session lifetime in seconds",
			Category:    "Session",
			Sources:     cli.EnvVars("CIRELAY_SESSION_TTL"),
			Value:       7 * 24 * 60 * 60,
			Destination: &x.ttlSeconds,
		},
	}
}

func (x *Session) Secret() types.SessionSecret { return x.secret }
func (x *Session) TTLSeconds() int             { return int(x.ttlSeconds) }

func (x Session) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("secret", x.secret),
		slog.Int64("ttlSeconds", x.ttlSeconds),
	)
}
