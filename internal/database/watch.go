package database

import (
	"context"
	"fmt"

	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

// ChangeStreams turns MongoDB change streams into change notifications.
// A notification carries no payload; subscribers re-run their query.
type ChangeStreams struct {
	db *mongo.Database
}

func NewChangeStreams(db *mongo.Database) *ChangeStreams {
	return &ChangeStreams{db: db}
}

// Watch opens one change stream per collection and merges them into a single
// channel. Notifications are coalesced: if the subscriber has not drained the
// previous one, the new one is dropped. The channel is closed when ctx ends or
// every stream has failed.
func (w *ChangeStreams) Watch(ctx context.Context, collections ...string) (<-chan struct{}, error) {
	streams := make([]*mongo.ChangeStream, 0, len(collections))
	for _, name := range collections {
		cs, err := w.db.Collection(name).Watch(ctx, mongo.Pipeline{})
		if err != nil {
			for _, s := range streams {
				_ = s.Close(context.Background())
			}
			return nil, fmt.Errorf("failed to watch %s: %w", name, err)
		}
		streams = append(streams, cs)
	}

	out := make(chan struct{}, 1)
	done := make(chan struct{}, len(streams))

	for i, cs := range streams {
		go func(name string, cs *mongo.ChangeStream) {
			defer func() { done <- struct{}{} }()
			defer cs.Close(context.Background())

			for cs.Next(ctx) {
				select {
				case out <- struct{}{}:
				default:
				}
			}
			if err := cs.Err(); err != nil && ctx.Err() == nil {
				logger.Warn("change stream on %s stopped: %v", name, err)
			}
		}(collections[i], cs)
	}

	go func() {
		for range streams {
			<-done
		}
		close(out)
	}()

	return out, nil
}
