package scylla

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/gocql/gocql"

	"marketchat/internal/infra/config"
)

var keyspacePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// NewSession ensures the keyspace and tables exist and returns a session bound to the keyspace.
func NewSession(ctx context.Context, cfg config.Scylla, logger *slog.Logger) (*gocql.Session, error) {
	if !keyspacePattern.MatchString(cfg.Keyspace) {
		return nil, fmt.Errorf("invalid keyspace name: %s", cfg.Keyspace)
	}

	baseCluster := newCluster(cfg)
	baseSession, err := baseCluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("connect to scylla: %w", err)
	}
	defer baseSession.Close()

	if err := ensureKeyspace(ctx, baseSession, cfg); err != nil {
		return nil, err
	}

	cluster := newCluster(cfg)
	cluster.Keyspace = cfg.Keyspace
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("connect to keyspace %s: %w", cfg.Keyspace, err)
	}
	if err := ensureTables(ctx, session, cfg.Keyspace); err != nil {
		session.Close()
		return nil, err
	}
	if logger != nil {
		logger.Info("scylla connected", "hosts", cfg.Hosts, "keyspace", cfg.Keyspace)
	}
	return session, nil
}

func newCluster(cfg config.Scylla) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Timeout = cfg.Timeout
	cluster.ConnectTimeout = cfg.Timeout
	cluster.Consistency = cfg.Consistency
	cluster.SerialConsistency = gocql.Serial
	if cfg.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}
	return cluster
}

func ensureKeyspace(ctx context.Context, session *gocql.Session, cfg config.Scylla) error {
	cql := fmt.Sprintf(
		"CREATE KEYSPACE IF NOT EXISTS %s WITH replication = {'class': 'SimpleStrategy', 'replication_factor': %d}",
		cfg.Keyspace, cfg.ReplicationFactor,
	)
	if err := session.Query(cql).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("create keyspace: %w", err)
	}
	return nil
}

var tables = []struct {
	name string
	cql  string
}{
	{"rooms", `
CREATE TABLE IF NOT EXISTS %s.rooms (
	id text PRIMARY KEY,
	participants list<text>,
	context_key text,
	context_label text,
	created_at timestamp,
	updated_at timestamp,
	last_message_at timestamp,
	last_message_text text,
	last_message_sender text,
	unread map<text, bigint>
);`},
	{"room_members", `
CREATE TABLE IF NOT EXISTS %s.room_members (
	participant text,
	room_id text,
	PRIMARY KEY (participant, room_id)
);`},
	{"messages", `
CREATE TABLE IF NOT EXISTS %s.messages (
	room_id text,
	created_at timestamp,
	id text,
	sender_id text,
	text text,
	PRIMARY KEY (room_id, created_at, id)
) WITH CLUSTERING ORDER BY (created_at DESC, id DESC);`},
}

func ensureTables(ctx context.Context, session *gocql.Session, keyspace string) error {
	for _, t := range tables {
		if err := session.Query(fmt.Sprintf(t.cql, keyspace)).WithContext(ctx).Exec(); err != nil {
			return fmt.Errorf("create %s table: %w", t.name, err)
		}
	}
	return nil
}
