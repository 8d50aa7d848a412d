package client

import (
	"context"

	"github.com/dtroode/gophfeed/internal/logger"
	"github.com/dtroode/gophfeed/internal/model"
	"github.com/dtroode/gophfeed/internal/notify"
)

// Snapshot is the feed as fetched after a change.
type Snapshot struct {
	Posts []model.Post
	Err   error
}

// Timeline refetches the feed every time the Feed announces a change.
type Timeline struct {
	feed      *Feed
	changes   <-chan FeedChanged
	cancel    func()
	snapshots *notify.Broadcaster[Snapshot]
	logger    *logger.Logger
}

// NewTimeline subscribes to feed right away so changes made before Run
// starts are not missed.
func NewTimeline(feed *Feed, logger *logger.Logger) *Timeline {
	changes, cancel := feed.Subscribe()
	return &Timeline{
		feed:      feed,
		changes:   changes,
		cancel:    cancel,
		snapshots: notify.NewBroadcaster[Snapshot](1),
		logger:    logger,
	}
}

// Subscribe returns a channel of refetched snapshots and its cancel func.
func (t *Timeline) Subscribe() (<-chan Snapshot, func()) {
	return t.snapshots.Subscribe()
}

// Run refetches the feed after every change until ctx is done.
func (t *Timeline) Run(ctx context.Context) error {
	defer t.cancel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case change, ok := <-t.changes:
			if !ok {
				return nil
			}
			posts, err := t.feed.ListPosts(ctx)
			if err != nil {
				t.logger.Warn("Timeline: refetch failed", "post_id", change.PostID, "error", err)
			}
			t.snapshots.Publish(Snapshot{Posts: posts, Err: err})
		}
	}
}
