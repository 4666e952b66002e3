package memory

import (
	"context"
	"sync"
	"time"

	appoutbox "marketchat/internal/app/outbox"
)

type outboxState int

const (
	outboxPending outboxState = iota
	outboxClaimed
	outboxSent
)

type outboxEntry struct {
	record   appoutbox.EventRecord
	state    outboxState
	attempts int
	next     time.Time
	lastErr  string
}

// Outbox keeps records in insertion order and serves them to the relay worker.
type Outbox struct {
	mu      sync.Mutex
	entries []*outboxEntry
	byID    map[string]*outboxEntry

	Now func() time.Time
}

func NewOutbox() *Outbox {
	return &Outbox{byID: make(map[string]*outboxEntry)}
}

func (o *Outbox) Add(ctx context.Context, record appoutbox.EventRecord) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.byID[record.ID]; ok {
		return nil
	}
	entry := &outboxEntry{record: record, next: o.now()}
	o.entries = append(o.entries, entry)
	o.byID[record.ID] = entry
	return nil
}

func (o *Outbox) Claim(ctx context.Context, workerID string) (*appoutbox.Pending, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	now := o.now()
	for _, entry := range o.entries {
		if entry.state != outboxPending || entry.next.After(now) {
			continue
		}
		entry.state = outboxClaimed
		return &appoutbox.Pending{EventRecord: entry.record, Attempts: entry.attempts}, nil
	}
	return nil, nil
}

func (o *Outbox) MarkSent(ctx context.Context, id string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if entry, ok := o.byID[id]; ok {
		entry.state = outboxSent
	}
	return nil
}

func (o *Outbox) MarkFailed(ctx context.Context, id string, next time.Time, errMsg string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if entry, ok := o.byID[id]; ok {
		entry.state = outboxPending
		entry.attempts++
		entry.next = next
		entry.lastErr = errMsg
	}
	return nil
}

// Records returns a copy of everything added so far, in order.
func (o *Outbox) Records() []appoutbox.EventRecord {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]appoutbox.EventRecord, 0, len(o.entries))
	for _, entry := range o.entries {
		out = append(out, entry.record)
	}
	return out
}

// Sent reports whether the record was published.
func (o *Outbox) Sent(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	entry, ok := o.byID[id]
	return ok && entry.state == outboxSent
}

func (o *Outbox) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

var (
	_ appoutbox.Outbox = (*Outbox)(nil)
	_ appoutbox.Queue  = (*Outbox)(nil)
)
