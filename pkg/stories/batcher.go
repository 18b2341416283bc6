package stories

import (
	"context"
	"time"
)

// readViewBatchDelay is how long the batcher waits to collect further
// read/view marks for the same owner before flushing (spec.md §4.6).
const readViewBatchDelay = 500 * time.Millisecond

// ownedPollPeriod is how often an open owned story's views are refreshed
// from the server while it stays open (spec.md §4.6).
const ownedPollPeriod = 10 * time.Second

// readViewBatcher is the Read & View Batcher (C6). It coalesces
// stories.readStories and stories.incrementStoryViews calls per owner so
// that rapidly viewing several stories from the same chat does not issue
// one RPC per story, and enforces at most one in-flight request per owner
// per RPC kind at a time.
type readViewBatcher struct {
	e *Engine

	pendingRead  map[OwnerID]StoryID
	readTimer    map[OwnerID]*time.Timer
	readInFlight map[OwnerID]bool

	pendingViews  map[OwnerID]map[StoryID]struct{}
	viewsTimer    map[OwnerID]*time.Timer
	viewsInFlight map[OwnerID]bool

	openOwned map[StoryFullID]*time.Timer

	readLogID map[OwnerID]int64
}

func newReadViewBatcher(e *Engine) *readViewBatcher {
	return &readViewBatcher{
		e:             e,
		pendingRead:   make(map[OwnerID]StoryID),
		readTimer:     make(map[OwnerID]*time.Timer),
		readInFlight:  make(map[OwnerID]bool),
		pendingViews:  make(map[OwnerID]map[StoryID]struct{}),
		viewsTimer:    make(map[OwnerID]*time.Timer),
		viewsInFlight: make(map[OwnerID]bool),
		openOwned:     make(map[StoryFullID]*time.Timer),
		readLogID:     make(map[OwnerID]int64),
	}
}

// MarkRead schedules stories.readStories(owner, max_id=id) for batching. If
// a mark is already pending for a lower id, id supersedes it, since
// read-state only ever advances (spec.md §4.6, "reads are monotonic per
// owner").
func (b *readViewBatcher) MarkRead(owner OwnerID, id StoryID) {
	if cur, ok := b.pendingRead[owner]; ok && cur >= id {
		return
	}
	b.pendingRead[owner] = id
	if _, scheduled := b.readTimer[owner]; scheduled {
		return
	}
	b.readTimer[owner] = time.AfterFunc(readViewBatchDelay, func() {
		b.e.Post(func() { b.flushRead(owner) })
	})
}

func (b *readViewBatcher) flushRead(owner OwnerID) {
	delete(b.readTimer, owner)
	if b.readInFlight[owner] {
		// A flush is already in flight; the next one will pick up whatever
		// accumulated meanwhile once it completes.
		return
	}
	maxID, ok := b.pendingRead[owner]
	if !ok {
		return
	}
	delete(b.pendingRead, owner)
	if b.e.deps.RPC == nil {
		return
	}
	logID := b.recordReadIntent(context.Background(), owner, maxID)
	b.readInFlight[owner] = true
	ctx := context.Background()
	guardVoid(b.e, ctx, func(ctx context.Context) error {
		return b.e.deps.RPC.ReadStories(ctx, owner, maxID)
	}, func(err error) {
		b.readInFlight[owner] = false
		if err != nil {
			b.e.log.Err(err).Int64("owner", int64(owner)).Msg("failed to mark stories read")
			// Re-queue so the next natural read event retries the mark.
			b.MarkRead(owner, maxID)
			return
		}
		b.eraseReadIntent(context.Background(), owner, logID)
		if a, ok := b.e.activeStoriesFor(owner); ok {
			b.e.mu.Lock()
			if maxID > a.MaxReadStoryID {
				a.MaxReadStoryID = maxID
			}
			b.e.mu.Unlock()
			b.e.pub.publishActiveStories(owner, a)
		}
		if _, more := b.pendingRead[owner]; more {
			b.flushRead(owner)
		}
	})
}

// recordReadIntent durably records a BinlogReadStoriesOnServer intent for
// owner before the RPC call goes out (Append the first time a batch starts,
// Rewrite if a retry raised maxID while an intent was still outstanding),
// so a crash is recovered by Engine.Replay (spec.md §4.7 "Restart replay").
func (b *readViewBatcher) recordReadIntent(ctx context.Context, owner OwnerID, maxID StoryID) int64 {
	if b.e.deps.Binlog == nil {
		return 0
	}
	ev := &BinlogEvent{Kind: BinlogReadStoriesOnServer, Owner: owner, MaxID: maxID}
	if existing, ok := b.readLogID[owner]; ok {
		if err := b.e.deps.Binlog.Rewrite(ctx, existing, ev); err != nil {
			b.e.log.Err(err).Msg("failed to update read-stories binlog intent")
		}
		return existing
	}
	id, err := b.e.deps.Binlog.Append(ctx, ev)
	if err != nil {
		b.e.log.Err(err).Msg("failed to record read-stories binlog intent")
		return 0
	}
	b.readLogID[owner] = id
	return id
}

func (b *readViewBatcher) eraseReadIntent(ctx context.Context, owner OwnerID, logID int64) {
	if logID == 0 || b.e.deps.Binlog == nil {
		return
	}
	delete(b.readLogID, owner)
	if err := b.e.deps.Binlog.Erase(ctx, logID); err != nil {
		b.e.log.Err(err).Msg("failed to erase completed read-stories binlog event")
	}
}

// IncrementViews schedules stories.incrementStoryViews(owner, [id, ...])
// for batching (spec.md §4.6).
func (b *readViewBatcher) IncrementViews(id StoryFullID) {
	set, ok := b.pendingViews[id.OwnerID]
	if !ok {
		set = make(map[StoryID]struct{})
		b.pendingViews[id.OwnerID] = set
	}
	set[id.StoryID] = struct{}{}
	if _, scheduled := b.viewsTimer[id.OwnerID]; scheduled {
		return
	}
	owner := id.OwnerID
	b.viewsTimer[owner] = time.AfterFunc(readViewBatchDelay, func() {
		b.e.Post(func() { b.flushViews(owner) })
	})
}

func (b *readViewBatcher) flushViews(owner OwnerID) {
	delete(b.viewsTimer, owner)
	if b.viewsInFlight[owner] {
		return
	}
	set, ok := b.pendingViews[owner]
	if !ok || len(set) == 0 {
		return
	}
	delete(b.pendingViews, owner)
	if b.e.deps.RPC == nil {
		return
	}
	ids := make([]StoryID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	b.viewsInFlight[owner] = true
	ctx := context.Background()
	guardVoid(b.e, ctx, func(ctx context.Context) error {
		return b.e.deps.RPC.IncrementStoryViews(ctx, owner, ids)
	}, func(err error) {
		b.viewsInFlight[owner] = false
		if err != nil {
			b.e.log.Err(err).Int64("owner", int64(owner)).Msg("failed to increment story views")
		}
		if more, ok := b.pendingViews[owner]; ok && len(more) > 0 {
			b.flushViews(owner)
		}
	})
}

// OpenOwnedStory starts the 10s poll while the caller has an owned story
// open, refreshing its view count/list (spec.md §4.6, "owned-story poll").
func (b *readViewBatcher) OpenOwnedStory(id StoryFullID) {
	if _, already := b.openOwned[id]; already {
		return
	}
	b.armOwnedPoll(id)
}

func (b *readViewBatcher) armOwnedPoll(id StoryFullID) {
	b.openOwned[id] = time.AfterFunc(ownedPollPeriod, func() {
		b.e.Post(func() {
			if _, stillOpen := b.openOwned[id]; !stillOpen {
				return
			}
			b.e.reloadStory(id)
			b.armOwnedPoll(id)
		})
	})
}

// CloseOwnedStory stops the poll timer for id.
func (b *readViewBatcher) CloseOwnedStory(id StoryFullID) {
	if t, ok := b.openOwned[id]; ok {
		t.Stop()
		delete(b.openOwned, id)
	}
}
