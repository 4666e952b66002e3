package mongo

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// changeStream turns a Mongo change stream into coalesced change signals.
type changeStream struct {
	ch     chan struct{}
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	err error
}

func watch(ctx context.Context, col *mongo.Collection, pipeline mongo.Pipeline, opts *options.ChangeStreamOptions) (*changeStream, error) {
	cs, err := col.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, transient(err)
	}
	ctx, cancel := context.WithCancel(ctx)
	s := &changeStream{
		ch:     make(chan struct{}, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.run(ctx, cs)
	return s, nil
}

func (s *changeStream) run(ctx context.Context, cs *mongo.ChangeStream) {
	defer close(s.done)
	defer close(s.ch)
	defer cs.Close(context.Background())
	for cs.Next(ctx) {
		select {
		case s.ch <- struct{}{}:
		default:
		}
	}
	err := cs.Err()
	if err == nil {
		err = ctx.Err()
	}
	s.mu.Lock()
	s.err = transient(err)
	s.mu.Unlock()
}

func (s *changeStream) Changes() <-chan struct{} { return s.ch }

func (s *changeStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *changeStream) Close() error {
	s.cancel()
	<-s.done
	return nil
}
