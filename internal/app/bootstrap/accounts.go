package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	authsvc "marketchat/internal/app/services/auth"
	domainauth "marketchat/internal/domain/auth"
	domainuser "marketchat/internal/domain/user"
	"marketchat/internal/infra/cache/redis"
	"marketchat/internal/infra/config"
	"marketchat/internal/infra/security"
	"marketchat/internal/infra/storage/memory"
)

// Accounts is the identity side of a process: the verifier every transport checks bearer
// tokens with, and the session service when AUTH_PROVIDER=session.
type Accounts struct {
	Verifier domainauth.Verifier
	Sessions *authsvc.Service

	close func() error
}

// OpenAccounts builds the verifier named by AUTH_PROVIDER. Sessions are kept in Redis when
// REDIS_ADDR is set, which is what lets a gateway and a separate chat core accept the same
// session tokens.
func OpenAccounts(ctx context.Context, cfg config.Config, users domainuser.Repository, logger *slog.Logger) (*Accounts, error) {
	a := &Accounts{close: func() error { return nil }}
	switch cfg.Auth.Provider {
	case config.AuthJWT:
		a.Verifier = security.JWTVerifier{Secret: []byte(cfg.Auth.JWTSecret), Issuer: cfg.Auth.JWTIssuer}
	case config.AuthFirebase:
		v, err := security.NewFirebaseVerifier(ctx, cfg.Auth.FirebaseProjectID)
		if err != nil {
			return nil, err
		}
		a.Verifier = v
	default:
		var sessions domainauth.SessionStore = memory.NewSessionStore()
		if cfg.Redis.Addr != "" {
			rdb, err := redis.NewClient(ctx, redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
			if err != nil {
				return nil, fmt.Errorf("session store: %w", err)
			}
			a.close = rdb.Close
			sessions = redis.NewSessionStore(rdb)
		} else {
			logger.Warn("sessions kept in memory; tokens are lost on restart")
		}
		if users == nil {
			users = memory.NewUserRepository()
		}
		a.Sessions = &authsvc.Service{
			Users:      users,
			Sessions:   sessions,
			Passwords:  security.BcryptHasher{},
			Tokens:     security.RandomTokenGenerator{Prefix: "mc_"},
			SessionTTL: cfg.Auth.SessionTTL,
			Logger:     logger,
		}
		a.Verifier = a.Sessions
	}
	logger.Info("auth provider ready", "provider", cfg.Auth.Provider)
	return a, nil
}

func (a *Accounts) Close() error {
	return a.close()
}
