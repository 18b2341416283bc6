package stories

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"
)

// ServerStoryKind is the tag of the server's story item variant (spec.md
// §4.2 step 1, §9 "Dispatch over RPC variants").
type ServerStoryKind int

const (
	ServerStoryDeleted ServerStoryKind = iota
	ServerStorySkipped
	ServerStoryFull
)

// ServerStory is the server-side story item, already dispatched to one of
// the three kinds by the RPC adapter (pkg/storiesrpc). Skipped records only
// carry the id/date/expire_date/close_friends fields; Full records carry
// everything.
type ServerStory struct {
	Kind    ServerStoryKind
	OwnerID OwnerID
	StoryID StoryID

	Date       int64
	ExpireDate int64

	ForCloseFriends bool // meaningful for Skipped and Full

	// Full-only fields.
	Edited              bool
	Pinned              bool
	Public              bool
	ForContacts         bool
	ForSelectedContacts bool
	NoForwards          bool
	Content             StoryContent
	Caption             FormattedText
	PrivacyRules        []tg.PrivacyRuleClass
	Interaction         InteractionInfo
}

// IngestServerStory applies one server-observed story record, following
// spec.md §4.2 steps 1-9.
func (e *Engine) IngestServerStory(ctx context.Context, rec *ServerStory) error {
	if rec.StoryID <= 0 {
		return fmt.Errorf("refusing to ingest story with non-positive story_id %d", rec.StoryID)
	}
	id := StoryFullID{OwnerID: rec.OwnerID, StoryID: rec.StoryID}

	if rec.Kind == ServerStoryDeleted {
		e.deleteStory(id)
		return nil
	}

	date := rec.Date
	if date <= 0 {
		e.log.Warn().Str("story", id.String()).Msg("server gave non-positive date, coercing to 1")
		date = 1
	}
	expireDate := rec.ExpireDate
	if expireDate <= date {
		expireDate = date + 1
	}

	e.mu.Lock()
	existing, hadExisting := e.storyByID[id]
	var s *Story
	var fileIDsBefore []FileID
	if hadExisting {
		s = existing
		if s.Content != nil {
			fileIDsBefore = s.Content.FileIDs()
		}
	} else {
		s = &Story{OwnerID: rec.OwnerID, StoryID: rec.StoryID}
		e.storyByID[id] = s
	}
	s.Date = date
	s.ExpireDate = expireDate
	s.ForCloseFriends = rec.ForCloseFriends

	changed := !hadExisting
	needSave := false
	if rec.Kind == ServerStoryFull {
		if s.Edited != rec.Edited || s.Pinned != rec.Pinned || s.Public != rec.Public ||
			s.ForContacts != rec.ForContacts || s.ForSelectedContacts != rec.ForSelectedContacts ||
			s.NoForwards != rec.NoForwards {
			changed = true
		}
		s.Edited, s.Pinned, s.Public = rec.Edited, rec.Pinned, rec.Public
		s.ForContacts, s.ForSelectedContacts, s.NoForwards = rec.ForContacts, rec.ForSelectedContacts, rec.NoForwards

		var contentChanged, contentNeedSave bool
		s.Content, contentChanged, contentNeedSave = mergeContent(s.Content, rec.Content)
		changed = changed || contentChanged
		needSave = needSave || contentNeedSave

		if rec.Caption.Text != s.Caption.Text {
			changed = true
		}
		s.Caption = rec.Caption
		s.PrivacyRules = rec.PrivacyRules
		s.Interaction = rec.Interaction
	}
	s.ReceiveDate = e.now().Unix()
	if s.GlobalID == 0 {
		s.GlobalID = e.reg.GlobalIDFor(id)
	}
	var fileIDsAfter []FileID
	if s.Content != nil {
		fileIDsAfter = s.Content.FileIDs()
	}
	wasSent := s.UpdateSent
	e.mu.Unlock()

	if fileIDsChanged(fileIDsBefore, fileIDsAfter) && e.deps.FileRefs != nil {
		e.deps.FileRefs.OnFileIDsChanged(ctx, id, fileIDsBefore, fileIDsAfter)
	}

	opts := e.options(ctx)
	e.scheduleExpireTimers(s, opts.StoryViewersExpirationDelay)

	if changed || needSave {
		if e.deps.DB != nil {
			if err := e.deps.DB.AddStory(ctx, s); err != nil {
				e.log.Err(err).Msg("failed to persist ingested story")
			}
		}
	}
	if changed && wasSent {
		e.pub.publishStory(s)
	}
	if e.deps.Messages != nil {
		e.deps.Messages.OnStoryChanged(ctx, id)
	}
	return nil
}

func fileIDsChanged(a, b []FileID) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}

// deleteStory implements spec.md §4.2 "Deletion".
func (e *Engine) deleteStory(id StoryFullID) {
	e.mu.Lock()
	s, ok := e.storyByID[id]
	var wasSent bool
	if ok {
		wasSent = s.UpdateSent
		e.timers.cancel(timerExpire, s.GlobalID)
		e.timers.cancel(timerViewersExpire, s.GlobalID)
		e.timers.cancel(timerReload, s.GlobalID)
	}
	delete(e.storyByID, id)
	delete(e.fileSource, id)
	delete(e.messageRefs, id)
	e.reg.MarkDeleted(id)
	e.mu.Unlock()

	e.send.discardPendingEdit(id)
	e.viewers.Invalidate(id)
	e.pub.publishStoryDeleted(wasSent, id.OwnerID, id.StoryID)

	if a, found := e.activeStoriesFor(id.OwnerID); found {
		e.recomputeActiveListAfterRemoval(a, id.StoryID)
	}

	if e.deps.DB != nil {
		ctx := context.Background()
		if err := e.deps.DB.DeleteStory(ctx, id); err != nil {
			e.log.Err(err).Msg("failed to delete story from database")
		}
	}
}

// GetStory returns the in-memory record, or nil if absent (spec.md §4.2
// "Reads").
func (e *Engine) GetStory(id StoryFullID) (*Story, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s, ok := e.storyByID[id]
	return s, ok
}

func (e *Engine) getStoryLocked(id StoryFullID) (*Story, bool) {
	return e.GetStory(id)
}

// GetStoryForce additionally loads from the DB (synchronous read path from
// the engine's perspective — the DB call itself is a suspension point
// handled by the caller through guard) and resolves dependencies, marking
// the story failed on unrecoverable parse errors (spec.md §4.2 "Reads",
// "Parse-from-DB policy").
func (e *Engine) GetStoryForce(ctx context.Context, id StoryFullID) (*Story, error) {
	if s, ok := e.GetStory(id); ok {
		return s, nil
	}
	if e.reg.IsDeleted(id) || e.reg.IsFailed(id) {
		return nil, nil
	}
	if e.deps.DB == nil {
		return nil, nil
	}
	s, err := e.deps.DB.GetStory(ctx, id)
	if err != nil {
		e.log.Err(err).Str("story", id.String()).Msg("failed to parse story from database; deleting row and scheduling reload")
		e.reg.MarkFailed(id)
		if delErr := e.deps.DB.DeleteStory(ctx, id); delErr != nil {
			e.log.Err(delErr).Msg("failed to delete corrupt story row")
		}
		e.Post(func() { e.reloadStory(id) })
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if e.now().Unix() >= s.ExpireDate && !s.Pinned && !s.IsOwned(e.self) {
		// Open Question #1: preserve the sweep, log only.
		e.log.Warn().Str("story", id.String()).Int64("expire_date", s.ExpireDate).
			Msg("loaded non-expired-looking story from DB that is actually expired; discarding")
		if delErr := e.deps.DB.DeleteStory(ctx, id); delErr != nil {
			e.log.Err(delErr).Msg("failed to delete expired story row")
		}
		return nil, nil
	}
	e.mu.Lock()
	if s.GlobalID == 0 {
		s.GlobalID = e.reg.GlobalIDFor(id)
	}
	e.storyByID[id] = s
	e.mu.Unlock()
	e.reg.ClearFailed(id)
	return s, nil
}

// reloadStory issues a fresh stories.getStoriesByID call for one story
// (used by the reload timer and by corruption recovery).
func (e *Engine) reloadStory(id StoryFullID) {
	if e.deps.RPC == nil {
		return
	}
	if e.reg.ShouldThrottleReload(id, e.now(), minInaccessibleReloadInterval) {
		return
	}
	ctx := context.Background()
	guard(e, ctx, func(ctx context.Context) ([]*ServerStory, error) {
		return e.deps.RPC.GetStoriesByID(ctx, id.OwnerID, []StoryID{id.StoryID})
	}, func(recs []*ServerStory, err error) {
		if err != nil {
			e.log.Err(err).Str("story", id.String()).Msg("failed to reload story")
			e.reg.MarkInaccessible(id, e.now())
			return
		}
		e.reg.ClearInaccessible(id)
		for _, rec := range recs {
			if ingestErr := e.IngestServerStory(ctx, rec); ingestErr != nil {
				e.log.Err(ingestErr).Str("story", id.String()).Msg("failed to ingest reloaded story")
			}
		}
	})
}
