package events

import "time"

// DomainEvent is a fact recorded by the domain and published through the outbox.
type DomainEvent interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// Batch accumulates events produced by one operation.
type Batch struct {
	pending []DomainEvent
}

func (b *Batch) Record(event DomainEvent) {
	if event == nil {
		return
	}
	b.pending = append(b.pending, event)
}

func (b *Batch) Events() []DomainEvent {
	out := make([]DomainEvent, len(b.pending))
	copy(out, b.pending)
	return out
}

func (b *Batch) Len() int {
	return len(b.pending)
}
