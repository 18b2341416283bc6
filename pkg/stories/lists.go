package stories

import (
	"context"
	"sort"
)

// StoryListMain and StoryListArchive are the two lists exposed by the
// engine; see StoryListID in types.go.

// activeOrderBits packs private_order per spec.md §4.3, in ascending
// priority: bit 36 owner is self, bit 35 owner has an unread story, bit 34
// owner is the changelog sender, bit 33 owner is premium, bits 0-31 the date
// of the last story in ids.
func activeOrderBits(date int64, self, unread, changelog, premium bool) uint64 {
	order := uint64(uint32(date))
	if premium {
		order |= 1 << 33
	}
	if changelog {
		order |= 1 << 34
	}
	if unread {
		order |= 1 << 35
	}
	if self {
		order |= 1 << 36
	}
	return order
}

// privateOrderBits resolves the four priority bits for an owner's currently
// active story set (spec.md §4.3 "Ordering").
func (e *Engine) privateOrderBits(ctx context.Context, a *ActiveStories, lastStory *Story) uint64 {
	if lastStory == nil {
		return 0
	}
	self := a.OwnerID == e.self
	unread := a.MaxReadStoryID < a.LastStoryID()
	changelog := a.OwnerID != 0 && a.OwnerID == e.options(ctx).StoriesChangelogUserID
	premium := false
	if e.deps.Users != nil {
		if p, err := e.deps.Users.IsPremium(ctx, a.OwnerID); err == nil {
			premium = p
		} else {
			e.log.Err(err).Int64("owner", int64(a.OwnerID)).Msg("failed to check premium state")
		}
	}
	return activeOrderBits(lastStory.Date, self, unread, changelog, premium)
}

// activeStoriesFor returns the cached ActiveStories record for an owner.
func (e *Engine) activeStoriesFor(owner OwnerID) (*ActiveStories, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	a, ok := e.activeByOwner[owner]
	return a, ok
}

// OnUpdateActive applies a server updateUserStoriesMax / peerStories push:
// the authoritative story-id set for one owner (spec.md §4.3, "on_update
// _active"). fromDB reports whether storyIDs/maxReadStoryID were read back
// from the local database rather than pushed fresh by the server; the
// returned bool reports whether that snapshot can still be trusted — it is
// downgraded to false the moment step 1 drops a non-server, expired, or
// locally-unknown id, per spec.md §4.3 step 1.
func (e *Engine) OnUpdateActive(ctx context.Context, owner OwnerID, storyIDs []StoryID, maxReadStoryID StoryID, fromDB bool) bool {
	e.mu.Lock()
	now := e.now().Unix()
	dbSnapshotValid := fromDB
	kept := make([]StoryID, 0, len(storyIDs))
	for _, id := range storyIDs {
		if id <= 0 {
			dbSnapshotValid = false
			continue
		}
		s, ok := e.storyByID[StoryFullID{OwnerID: owner, StoryID: id}]
		if !ok || now >= s.ExpireDate {
			dbSnapshotValid = false
			continue
		}
		kept = append(kept, id)
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i] < kept[j] })

	a, existed := e.activeByOwner[owner]
	if !existed {
		a = &ActiveStories{OwnerID: owner}
		e.activeByOwner[owner] = a
	}
	a.StoryIDs = kept

	// Step 2: max_read is a pure function of *this* update, not a monotonic
	// max against whatever was previously stored — otherwise a stale high
	// watermark can outlive the id range it was read against (invariant #2).
	newMaxRead := maxReadStoryID
	if len(kept) > 0 && newMaxRead < kept[0] {
		newMaxRead = 0
	}
	a.MaxReadStoryID = newMaxRead
	e.mu.Unlock()

	e.recomputeActiveList(a)
	return dbSnapshotValid
}

// recomputeActiveList recomputes an owner's order key from the current
// in-memory story set and publishes updateChatActiveStories plus the list
// membership move, per spec.md §4.3.
func (e *Engine) recomputeActiveList(a *ActiveStories) {
	ctx := context.Background()
	e.mu.Lock()
	last := a.LastStoryID()
	var lastStory *Story
	if last != 0 {
		lastStory = e.storyByID[StoryFullID{OwnerID: a.OwnerID, StoryID: last}]
	}
	empty := lastStory == nil && len(a.StoryIDs) == 0

	order := e.privateOrderBits(ctx, a, lastStory)

	oldList := a.ListID
	newList := e.classifyList(ctx, a, lastStory)
	a.ListID = newList
	if lastStory != nil && lastStory.Public {
		a.PublicOrder = order
	}
	a.PrivateOrder = order
	e.mu.Unlock()

	if empty {
		e.mu.Lock()
		delete(e.activeByOwner, a.OwnerID)
		e.mu.Unlock()
		e.pub.publishActiveStories(a.OwnerID, nil)
		return
	}

	e.pub.publishActiveStories(a.OwnerID, a)

	if oldList != newList {
		e.recomputeListCount(oldList)
		e.recomputeListCount(newList)
	}

	if e.deps.DB != nil {
		if err := e.deps.DB.AddActiveStories(ctx, a); err != nil {
			e.log.Err(err).Msg("failed to persist active stories record")
		}
	}
}

// recomputeActiveListAfterRemoval drops id from the owner's active id list
// (e.g. after deletion or expiry) and recomputes.
func (e *Engine) recomputeActiveListAfterRemoval(a *ActiveStories, id StoryID) {
	e.mu.Lock()
	out := a.StoryIDs[:0:0]
	for _, sid := range a.StoryIDs {
		if sid != id {
			out = append(out, sid)
		}
	}
	a.StoryIDs = out
	e.mu.Unlock()
	e.recomputeActiveList(a)
}

// classifyList decides StoryListMain vs StoryListArchive vs StoryListNone
// for an owner's currently-active story (spec.md §4.3: "only owners the
// client follows (self, contacts, plus the configurable changelog sender)
// get a list at all"; among those, Archive if the owner is marked hidden,
// Main otherwise).
func (e *Engine) classifyList(ctx context.Context, a *ActiveStories, lastStory *Story) StoryListID {
	if !e.follows(ctx, a.OwnerID) {
		return StoryListNone
	}
	if e.deps.Dialogs == nil {
		return StoryListMain
	}
	hidden, err := e.deps.Dialogs.IsHidden(ctx, a.OwnerID)
	if err != nil {
		e.log.Err(err).Int64("owner", int64(a.OwnerID)).Msg("failed to check hidden-stories state")
		return StoryListMain
	}
	if hidden {
		return StoryListArchive
	}
	return StoryListMain
}

// follows reports whether owner is one the client "follows" for list
// membership purposes: self, a contact, or the configurable changelog
// sender (spec.md §4.3).
func (e *Engine) follows(ctx context.Context, owner OwnerID) bool {
	if owner == e.self {
		return true
	}
	if owner != 0 && owner == e.options(ctx).StoriesChangelogUserID {
		return true
	}
	if e.deps.Dialogs == nil {
		return true
	}
	isContact, err := e.deps.Dialogs.IsContact(ctx, owner)
	if err != nil {
		e.log.Err(err).Int64("owner", int64(owner)).Msg("failed to check contact state")
		return true
	}
	return isContact
}

// recomputeListCount updates and publishes a StoryList's sent_total_count
// (spec.md §4.3, "sent_total_count publication").
func (e *Engine) recomputeListCount(id StoryListID) {
	e.mu.Lock()
	count := 0
	for _, a := range e.activeByOwner {
		if a.ListID == id {
			count++
		}
	}
	list, ok := e.lists[id]
	if !ok {
		e.mu.Unlock()
		return
	}
	changed := list.SentTotalCount != count
	// Never let the locally-derived count regress below what the server
	// last told us if we haven't finished materialising the list yet.
	if !list.IsFullyMaterialised() && count < list.ServerTotalCount {
		count = list.ServerTotalCount
	}
	list.SentTotalCount = count
	e.mu.Unlock()

	if changed {
		e.pub.publishListCount(id, count)
	}
}

// LoadActiveStoryList services a paged client read of a story list,
// preferring the local database and falling through to the server when the
// database run is exhausted but the server may still have more (spec.md
// §4.3, "load_active_stories").
func (e *Engine) LoadActiveStoryList(ctx context.Context, list StoryListID, cursor OrderKey, limit int) ([]*ActiveStories, bool, error) {
	if limit <= 0 {
		return nil, false, ErrLimitMustBePositive
	}
	if e.deps.DB == nil {
		return nil, false, nil
	}
	page, dbHasMore, err := e.deps.DB.GetActiveStoryList(ctx, list, cursor, limit)
	if err != nil {
		return nil, false, err
	}
	e.mu.Lock()
	if l, ok := e.lists[list]; ok {
		l.DatabaseHasMore = dbHasMore
	}
	hasMore := dbHasMore
	if !dbHasMore {
		if l, ok := e.lists[list]; ok {
			hasMore = l.ServerHasMore
		}
	}
	e.mu.Unlock()
	return page, hasMore, nil
}

// RefreshListFromServer pages stories.getAllStories for one list, ingesting
// every bundled story and active-story marker and recording the new sync
// state, per spec.md §4.3/§4.8 ("server pages are merged into the database
// and the in-memory index exactly like any other ingested story").
func (e *Engine) RefreshListFromServer(ctx context.Context, list StoryListID) error {
	if e.deps.RPC == nil {
		return ErrShuttingDown
	}
	e.mu.RLock()
	l, ok := e.lists[list]
	state := ""
	if ok {
		state = l.ServerState
	}
	e.mu.RUnlock()

	page, notModified, err := e.deps.RPC.GetAllStories(ctx, list, state != "", state)
	if err != nil {
		return err
	}
	if notModified {
		return nil
	}

	var ingestErr error
	e.Do(func() {
		for _, rec := range page.Stories {
			if err := e.IngestServerStory(ctx, rec); err != nil {
				ingestErr = err
			}
		}
		for _, active := range page.Active {
			cur, existed := e.activeByOwner[active.OwnerID]
			if !existed {
				cur = &ActiveStories{OwnerID: active.OwnerID}
				e.activeByOwner[active.OwnerID] = cur
			}
			cur.StoryIDs = active.StoryIDs
			if active.MaxReadStoryID > cur.MaxReadStoryID {
				cur.MaxReadStoryID = active.MaxReadStoryID
			}
		}
		if l, ok := e.lists[list]; ok {
			l.ServerState = page.NextState
			l.ServerHasMore = page.HasMore
		}
	})
	if ingestErr != nil {
		return ingestErr
	}

	for _, active := range page.Active {
		if a, ok := e.activeStoriesFor(active.OwnerID); ok {
			e.recomputeActiveList(a)
		}
	}
	e.Do(func() { e.recomputeListCount(list) })
	return nil
}
