package scylla

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"marketchat/internal/domain/chat"
)

const (
	defaultPollInterval = time.Second
	// maxSampleFailures ends a watch after this many consecutive failed samples.
	maxSampleFailures = 3
)

type sampleFunc func(ctx context.Context) (string, error)

// pollStream emits a signal whenever the sampled state changes. Scylla has no change feed
// the driver can follow, so watches poll.
type pollStream struct {
	ch     chan struct{}
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	err error
}

func poll(ctx context.Context, interval time.Duration, sample sampleFunc, logger *slog.Logger) (*pollStream, error) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	last, err := sample(ctx)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	s := &pollStream{
		ch:     make(chan struct{}, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.run(ctx, interval, last, sample, logger)
	return s, nil
}

func (s *pollStream) run(ctx context.Context, interval time.Duration, last string, sample sampleFunc, logger *slog.Logger) {
	defer close(s.done)
	defer close(s.ch)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	failures := 0
	for {
		select {
		case <-ctx.Done():
			s.fail(ctx.Err())
			return
		case <-ticker.C:
		}
		state, err := sample(ctx)
		if err != nil {
			if ctx.Err() != nil {
				s.fail(ctx.Err())
				return
			}
			failures++
			logger.Warn("scylla watch sample failed", "failures", failures, "error", err)
			if failures >= maxSampleFailures {
				s.fail(fmt.Errorf("%w: %w", chat.ErrTransient, err))
				return
			}
			continue
		}
		failures = 0
		if state == last {
			continue
		}
		last = state
		select {
		case s.ch <- struct{}{}:
		default:
		}
	}
}

func (s *pollStream) fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *pollStream) Changes() <-chan struct{} { return s.ch }

func (s *pollStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *pollStream) Close() error {
	s.cancel()
	<-s.done
	return nil
}

// fingerprint summarizes everything a room list subscriber renders.
func fingerprint(rooms []chat.Room) string {
	h := fnv.New64a()
	for _, r := range rooms {
		h.Write([]byte(r.ID))
		h.Write([]byte(strconv.FormatInt(r.UpdatedAt.UnixNano(), 10)))
		h.Write([]byte(r.LastMessageText))
		h.Write([]byte(r.ContextLabel))
		for _, p := range r.Participants {
			h.Write([]byte(p))
			h.Write([]byte(strconv.FormatInt(r.UnreadFor(p), 10)))
		}
		h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
