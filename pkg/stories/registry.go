package stories

import (
	"sync"
	"time"
)

// registry is the Identifier & Registry component (C1). It allocates
// GlobalIDs and is authoritative for the three disjoint classifications of
// a StoryFullID described in spec.md §4.1: inaccessible, deleted, failed.
// ("live" is simply "present in the store", which the registry does not
// track directly — the store is authoritative for that.)
type registry struct {
	mu sync.Mutex

	maxGlobalID GlobalID
	toGlobal    map[StoryFullID]GlobalID
	fromGlobal  map[GlobalID]StoryFullID

	// inaccessible maps a story we were told we can't see to the last time
	// we reloaded it, for rate-limiting reload_story.
	inaccessible map[StoryFullID]time.Time
	deleted      map[StoryFullID]struct{}
	failed       map[StoryFullID]struct{}
}

func newRegistry() *registry {
	return &registry{
		toGlobal:     make(map[StoryFullID]GlobalID),
		fromGlobal:   make(map[GlobalID]StoryFullID),
		inaccessible: make(map[StoryFullID]time.Time),
		deleted:      make(map[StoryFullID]struct{}),
		failed:       make(map[StoryFullID]struct{}),
	}
}

// GlobalIDFor returns the GlobalID for id, allocating a new one via
// ++max_global_id on first registration (spec.md §4.1).
func (r *registry) GlobalIDFor(id StoryFullID) GlobalID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gid, ok := r.toGlobal[id]; ok {
		return gid
	}
	r.maxGlobalID++
	gid := r.maxGlobalID
	r.toGlobal[id] = gid
	r.fromGlobal[gid] = id
	return gid
}

// Resolve maps a GlobalID back to a StoryFullID, for timer callbacks.
func (r *registry) Resolve(gid GlobalID) (StoryFullID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.fromGlobal[gid]
	return id, ok
}

// MarkDeleted adds a permanent tombstone for id (live -> deleted).
func (r *registry) MarkDeleted(id StoryFullID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted[id] = struct{}{}
	delete(r.inaccessible, id)
	delete(r.failed, id)
}

// IsDeleted reports whether id has a permanent tombstone for this session.
func (r *registry) IsDeleted(id StoryFullID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.deleted[id]
	return ok
}

// MarkInaccessible records that the server told us we can't see id
// (live <-> inaccessible).
func (r *registry) MarkInaccessible(id StoryFullID, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inaccessible[id] = now
}

// ClearInaccessible moves id back from inaccessible to live.
func (r *registry) ClearInaccessible(id StoryFullID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inaccessible, id)
}

// ShouldThrottleReload reports whether a reload_story call for id should be
// rate-limited because it was recently marked inaccessible.
func (r *registry) ShouldThrottleReload(id StoryFullID, now time.Time, minInterval time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	last, ok := r.inaccessible[id]
	if !ok {
		return false
	}
	return now.Sub(last) < minInterval
}

// MarkFailed records that id could not be loaded from the DB or had
// unresolvable dependencies (failed classification).
func (r *registry) MarkFailed(id StoryFullID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed[id] = struct{}{}
}

// ClearFailed moves id from failed back to live on a successful reload.
func (r *registry) ClearFailed(id StoryFullID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.failed, id)
}

// IsFailed reports whether id is currently in the negative cache.
func (r *registry) IsFailed(id StoryFullID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.failed[id]
	return ok
}
