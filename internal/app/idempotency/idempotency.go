package idempotency

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

type Record struct {
	Key        string
	Payload    []byte
	Error      string
	OccurredAt time.Time
}

type Store interface {
	Get(ctx context.Context, key string) (Record, bool, error)
	Save(ctx context.Context, rec Record) error
}

type ResultCodec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, out any) error
}

type JSONResultCodec struct{}

func (JSONResultCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONResultCodec) Decode(data []byte, out any) error {
	return json.Unmarshal(data, out)
}

// ScopedKey namespaces a client supplied key so two callers can never collide.
func ScopedKey(scope ...string) string {
	return strings.Join(scope, "\x1f")
}
