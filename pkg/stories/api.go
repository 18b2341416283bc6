package stories

import (
	"context"

	"github.com/gotd/td/tg"
)

// OpenStory marks id as currently open by the local UI: it arms the reload
// poll timer (owned and non-owned alike use the same open-story machinery,
// spec.md §4.4/§4.6) and, for an owned story, starts the 10s view-count
// poll.
func (e *Engine) OpenStory(id StoryFullID) error {
	var result error
	e.Do(func() {
		s, ok := e.storyByID[id]
		if !ok {
			result = ErrStoryNotFound
			return
		}
		e.mu.Lock()
		if e.openStories == nil {
			e.openStories = make(map[StoryFullID]struct{})
		}
		e.openStories[id] = struct{}{}
		e.mu.Unlock()
		e.armReloadTimer(s)
		if s.IsOwned(e.self) {
			e.batch.OpenOwnedStory(id)
		}
	})
	return result
}

// CloseStory reverses OpenStory (spec.md §4.4/§4.6, "while story is open").
func (e *Engine) CloseStory(id StoryFullID) error {
	var result error
	e.Do(func() {
		s, ok := e.storyByID[id]
		e.mu.Lock()
		_, wasOpen := e.openStories[id]
		delete(e.openStories, id)
		e.mu.Unlock()
		if !ok || !wasOpen {
			result = ErrStoryNotOpened
			return
		}
		e.cancelReloadTimer(s)
		e.batch.CloseOwnedStory(id)
	})
	return result
}

func (e *Engine) isOpen(id StoryFullID) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.openStories[id]
	return ok
}

// GetStoriesByID resolves a list of story ids for one owner, preferring the
// in-memory/DB cache and falling through to the server for anything missing
// (spec.md §6, stories.getStoriesByID).
func (e *Engine) GetStoriesByID(ctx context.Context, owner OwnerID, ids []StoryID) ([]*Story, error) {
	if len(ids) == 0 {
		return nil, ErrInvalidStoryID
	}
	if e.deps.Dialogs != nil {
		exists, err := e.deps.Dialogs.Exists(ctx, owner)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrStorySenderNotFound
		}
	}
	var out []*Story
	var missing []StoryID
	for _, id := range ids {
		full := StoryFullID{OwnerID: owner, StoryID: id}
		s, err := e.GetStoryForce(ctx, full)
		if err != nil {
			continue
		}
		if s != nil {
			out = append(out, s)
		} else {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 || e.deps.RPC == nil {
		return out, nil
	}
	fetched, err := e.deps.RPC.GetStoriesByID(ctx, owner, missing)
	if err != nil {
		return out, err
	}
	var ingestErr error
	e.Do(func() {
		for _, rec := range fetched {
			if err := e.IngestServerStory(ctx, rec); err != nil {
				ingestErr = err
				continue
			}
			if s, ok := e.storyByID[StoryFullID{OwnerID: rec.OwnerID, StoryID: rec.StoryID}]; ok {
				out = append(out, s)
			}
		}
	})
	if ingestErr != nil {
		return out, ingestErr
	}
	return out, nil
}

// ReadStories implements the client-facing read-marking entry point
// (spec.md §6, stories.readStories): validation, then handing off to the
// batcher (C6).
func (e *Engine) ReadStories(owner OwnerID, maxID StoryID) error {
	if maxID <= 0 {
		return ErrInvalidStoryID
	}
	e.Do(func() { e.batch.MarkRead(owner, maxID) })
	return nil
}

// ViewStory implements the client-facing "I looked at this story" entry
// point (spec.md §6, incrementStoryViews), deferring to the batcher.
func (e *Engine) ViewStory(id StoryFullID) error {
	if e.reg.IsDeleted(id) {
		return ErrStoryNotFound
	}
	e.Do(func() { e.batch.IncrementViews(id) })
	return nil
}

// SendStory validates and enqueues a new outgoing story, blocking the
// caller until the server has accepted (or rejected) it (spec.md §6,
// stories.sendStory; §4.7 "Send").
func (e *Engine) SendStory(ctx context.Context, req SendStoryRequest) (*Story, error) {
	if req.Content == nil {
		return nil, ErrInvalidStoryID
	}
	opts := e.options(ctx)
	free, ok := validActivePeriod(req.ActivePeriod, e.testMode)
	if !ok {
		return nil, ErrInvalidActivePeriod
	}
	if !free && !opts.IsPremium {
		return nil, ErrActivePeriodNeedsPremium
	}

	var pending *PendingStory
	var resultCh <-chan sendResult
	e.Do(func() {
		pending, resultCh = e.send.Enqueue(ctx, req)
	})

	res := <-resultCh
	if res.err != nil {
		return nil, res.err
	}
	_ = pending
	return res.story, nil
}

// EditStory validates and issues an edit for an existing, already-sent
// story (spec.md §6, stories.editStory).
func (e *Engine) EditStory(ctx context.Context, id StoryFullID, randomID int64, req EditStoryRequest) (*Story, error) {
	e.mu.RLock()
	s, ok := e.storyByID[id]
	e.mu.RUnlock()
	if !ok {
		return nil, ErrStoryNotFound
	}
	if !s.IsOwned(e.self) {
		return nil, ErrCantAccessStorySender
	}

	var resultCh <-chan sendResult
	e.Do(func() {
		resultCh = e.send.EditStory(ctx, id, randomID, req)
	})
	res := <-resultCh
	if res.err != nil {
		return nil, res.err
	}
	return res.story, nil
}

// DeleteStories validates and issues stories.deleteStories for the caller's
// own stories (spec.md §6). Each id gets its own BinlogDeleteStoryOnServer
// intent so a crash between the RPC call and its local bookkeeping is
// recovered by Engine.Replay (spec.md §4.7 "Restart replay").
func (e *Engine) DeleteStories(ctx context.Context, ids []StoryID) error {
	if len(ids) == 0 {
		return ErrInvalidStoryID
	}
	if e.deps.RPC == nil {
		return ErrShuttingDown
	}
	logIDs := e.recordDeleteIntents(ctx, ids)
	deleted, err := e.deps.RPC.DeleteStories(ctx, ids)
	if err != nil {
		return err
	}
	e.Do(func() {
		for _, id := range deleted {
			e.deleteStory(StoryFullID{OwnerID: e.self, StoryID: id})
		}
	})
	e.eraseDeleteIntents(ctx, logIDs)
	return nil
}

func (e *Engine) recordDeleteIntents(ctx context.Context, ids []StoryID) map[StoryID]int64 {
	if e.deps.Binlog == nil {
		return nil
	}
	logIDs := make(map[StoryID]int64, len(ids))
	for _, id := range ids {
		full := StoryFullID{OwnerID: e.self, StoryID: id}
		logID, err := e.deps.Binlog.Append(ctx, &BinlogEvent{Kind: BinlogDeleteStoryOnServer, Owner: e.self, StoryFullID: full})
		if err != nil {
			e.log.Err(err).Str("story", full.String()).Msg("failed to record delete-story binlog intent")
			continue
		}
		logIDs[id] = logID
	}
	return logIDs
}

func (e *Engine) eraseDeleteIntents(ctx context.Context, logIDs map[StoryID]int64) {
	if e.deps.Binlog == nil {
		return
	}
	for _, logID := range logIDs {
		if err := e.deps.Binlog.Erase(ctx, logID); err != nil {
			e.log.Err(err).Msg("failed to erase completed delete-story binlog event")
		}
	}
}

// TogglePinned validates and issues stories.togglePinned (spec.md §6).
func (e *Engine) TogglePinned(ctx context.Context, ids []StoryID, pinned bool) ([]StoryID, error) {
	if len(ids) == 0 {
		return nil, ErrInvalidStoryID
	}
	if e.deps.RPC == nil {
		return nil, ErrShuttingDown
	}
	changed, err := e.deps.RPC.TogglePinned(ctx, ids, pinned)
	if err != nil {
		return nil, err
	}
	e.Do(func() {
		for _, id := range changed {
			full := StoryFullID{OwnerID: e.self, StoryID: id}
			if s, ok := e.storyByID[full]; ok {
				s.Pinned = pinned
				if s.UpdateSent {
					e.pub.publishStory(s)
				}
			}
		}
	})
	return changed, nil
}

// ToggleStoriesHidden validates and issues stories.toggleStoriesHidden
// (spec.md §6), recomputing the active-story list membership for owner.
func (e *Engine) ToggleStoriesHidden(ctx context.Context, owner OwnerID, hidden bool) error {
	if e.deps.RPC == nil {
		return ErrShuttingDown
	}
	if err := e.deps.RPC.ToggleStoriesHidden(ctx, owner, hidden); err != nil {
		return err
	}
	e.Do(func() {
		if a, ok := e.activeStoriesFor(owner); ok {
			e.recomputeActiveList(a)
		}
	})
	return nil
}

// GetStoryViewsList validates and serves a paged viewer list for one owned
// story, consulting the Viewer Cache (C5) before falling through to the
// server (spec.md §6, §4.5).
func (e *Engine) GetStoryViewsList(ctx context.Context, id StoryFullID, offset, limit int) ([]Viewer, int, error) {
	if limit <= 0 {
		return nil, 0, ErrLimitMustBePositive
	}
	e.mu.RLock()
	s, ok := e.storyByID[id]
	e.mu.RUnlock()
	if !ok {
		return nil, 0, ErrStoryNotFound
	}
	if !s.IsOwned(e.self) || !s.CanGetViewers {
		return nil, 0, ErrCantAccessStorySender
	}

	if viewers, total, hit := e.viewers.Lookup(id, offset, limit); hit {
		return viewers, total, nil
	}
	if e.deps.RPC == nil {
		return nil, 0, nil
	}
	viewers, total, err := e.deps.RPC.GetStoryViewsList(ctx, id, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	e.Do(func() {
		e.viewers.Merge(id, offset, viewers, total, func(old, new int) {
			e.log.Warn().Str("story", id.String()).Int("cached_total", old).Int("server_total", new).
				Msg("server reported a lower viewer total than cached; keeping cached value")
		})
	})
	return viewers, total, nil
}

// CanSendStory reports whether the caller's account is currently permitted
// to send a story (SPEC_FULL.md [SUPPLEMENT], stories.canSendStory).
func (e *Engine) CanSendStory(ctx context.Context, owner OwnerID) (bool, error) {
	if e.deps.RPC == nil {
		return false, ErrShuttingDown
	}
	return e.deps.RPC.CanSendStory(ctx, owner)
}

// ExportStoryLink returns a shareable t.me link for a story (SPEC_FULL.md
// [SUPPLEMENT], stories.exportStoryLink).
func (e *Engine) ExportStoryLink(ctx context.Context, id StoryFullID) (string, error) {
	if e.deps.RPC == nil {
		return "", ErrShuttingDown
	}
	if e.reg.IsDeleted(id) {
		return "", ErrStoryNotFound
	}
	return e.deps.RPC.ExportStoryLink(ctx, id)
}

// Report validates and issues stories.report (spec.md §6).
func (e *Engine) Report(ctx context.Context, owner OwnerID, ids []StoryID, reason tg.ReportReasonClass, message string) error {
	if len(ids) == 0 {
		return ErrInvalidStoryID
	}
	if e.deps.RPC == nil {
		return ErrShuttingDown
	}
	return e.deps.RPC.Report(ctx, owner, ids, reason, message)
}

// Subscribe registers a subscriber for published updates (C9).
func (e *Engine) Subscribe(s Subscriber) {
	e.Do(func() { e.pub.Subscribe(s) })
}
