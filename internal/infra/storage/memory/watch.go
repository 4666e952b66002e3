package memory

import (
	"context"
	"sync"
)

// broadcaster fans coalesced change signals out to watchers keyed by topic.
type broadcaster struct {
	mu       sync.Mutex
	watchers map[string]map[*stream]struct{}
}

func newBroadcaster() *broadcaster {
	return &broadcaster{watchers: make(map[string]map[*stream]struct{})}
}

func (b *broadcaster) watch(ctx context.Context, topic string) *stream {
	s := &stream{
		ch:    make(chan struct{}, 1),
		done:  make(chan struct{}),
		topic: topic,
		owner: b,
	}
	b.mu.Lock()
	if _, ok := b.watchers[topic]; !ok {
		b.watchers[topic] = make(map[*stream]struct{})
	}
	b.watchers[topic][s] = struct{}{}
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			s.stop(ctx.Err())
		case <-s.done:
		}
	}()
	return s
}

func (b *broadcaster) notify(topics ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, topic := range topics {
		for s := range b.watchers[topic] {
			select {
			case s.ch <- struct{}{}:
			default:
			}
		}
	}
}

func (b *broadcaster) remove(s *stream) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if set, ok := b.watchers[s.topic]; ok {
		delete(set, s)
		if len(set) == 0 {
			delete(b.watchers, s.topic)
		}
	}
}

type stream struct {
	ch    chan struct{}
	done  chan struct{}
	topic string
	owner *broadcaster

	once sync.Once
	mu   sync.Mutex
	err  error
}

func (s *stream) Changes() <-chan struct{} { return s.ch }

func (s *stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *stream) Close() error {
	s.stop(nil)
	return nil
}

func (s *stream) stop(err error) {
	s.once.Do(func() {
		s.owner.remove(s)
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		// notify holds the owner lock while sending, so after remove no sender remains.
		close(s.ch)
		close(s.done)
	})
}
