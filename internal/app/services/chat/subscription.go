package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	domainchat "marketchat/internal/domain/chat"
)

// Subscription delivers full snapshots until it fails or is cancelled. Snapshots are
// coalesced: a slow reader only ever sees the latest one. Events is closed when the
// subscription ends; Err then reports the terminal error, nil after Unsubscribe.
type Subscription[T any] struct {
	events    chan T
	cancel    context.CancelFunc
	done      chan struct{}
	cancelled atomic.Bool

	mu  sync.Mutex
	err error
}

// Pump produces snapshots through emit until it returns. emit reports false once the
// subscription is cancelled.
type Pump[T any] func(ctx context.Context, emit func(T) bool) error

// NewSubscription starts pump on its own goroutine.
func NewSubscription[T any](ctx context.Context, pump Pump[T]) *Subscription[T] {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription[T]{
		events: make(chan T, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(sub.done)
		defer close(sub.events)
		err := pump(ctx, func(v T) bool { return sub.emit(ctx, v) })
		if sub.cancelled.Load() {
			err = nil
		}
		sub.mu.Lock()
		sub.err = err
		sub.mu.Unlock()
	}()
	return sub
}

func (s *Subscription[T]) emit(ctx context.Context, v T) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case s.events <- v:
			return true
		default:
		}
		select {
		case <-s.events:
		default:
		}
	}
}

func (s *Subscription[T]) Events() <-chan T { return s.events }

func (s *Subscription[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Done is closed once the pump has stopped.
func (s *Subscription[T]) Done() <-chan struct{} { return s.done }

// Unsubscribe cancels the subscription and waits for the pump to stop. Safe to call twice.
func (s *Subscription[T]) Unsubscribe() {
	s.cancelled.Store(true)
	s.cancel()
	<-s.done
}

// SubscribeMessages streams the latest window of the room's log, re-delivered whole on
// every change.
func (s *Service) SubscribeMessages(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID) (*Subscription[[]domainchat.Message], error) {
	if err := s.ensureDependencies(); err != nil {
		return nil, err
	}
	if !caller.Authenticated() {
		return nil, domainchat.ErrUnauthenticated
	}
	if _, err := s.memberRoom(ctx, caller, id); err != nil {
		return nil, err
	}
	return NewSubscription(ctx, func(ctx context.Context, emit func([]domainchat.Message) bool) error {
		stream, err := s.Store.WatchRoom(ctx, id)
		if err != nil {
			return fmt.Errorf("watch room %s: %w", id, err)
		}
		return s.follow(ctx, stream, func(ctx context.Context) (bool, error) {
			window, err := s.window(ctx, id)
			if err != nil {
				return false, err
			}
			return emit(window), nil
		})
	}), nil
}

// SubscribeMyRooms streams the caller's room list with the caller's unread counts.
func (s *Service) SubscribeMyRooms(ctx context.Context, caller domainchat.Caller) (*Subscription[[]domainchat.RoomSummary], error) {
	if err := s.ensureDependencies(); err != nil {
		return nil, err
	}
	if !caller.Authenticated() {
		return nil, domainchat.ErrUnauthenticated
	}
	return NewSubscription(ctx, func(ctx context.Context, emit func([]domainchat.RoomSummary) bool) error {
		stream, err := s.Store.WatchParticipant(ctx, caller.UserID)
		if err != nil {
			return fmt.Errorf("watch rooms of %s: %w", caller.UserID, err)
		}
		return s.follow(ctx, stream, func(ctx context.Context) (bool, error) {
			rooms, err := s.roomSummaries(ctx, caller.UserID)
			if err != nil {
				return false, err
			}
			return emit(rooms), nil
		})
	}), nil
}

// follow re-reads state once up front and again on every change signal.
func (s *Service) follow(ctx context.Context, stream domainchat.ChangeStream, snapshot func(context.Context) (bool, error)) error {
	defer stream.Close()
	for {
		more, err := snapshot(ctx)
		if err != nil || !more {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-stream.Changes():
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				err := stream.Err()
				if err == nil || errors.Is(err, context.Canceled) {
					err = domainchat.ErrTransient
				}
				return fmt.Errorf("change stream: %w", err)
			}
		}
	}
}
