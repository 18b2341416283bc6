package stories

import (
	"time"
)

// timerKind names one of the three independent timer sets keyed by
// GlobalID (spec.md §4.4).
type timerKind int

const (
	timerReload timerKind = iota
	timerExpire
	timerViewersExpire
)

type timerEntry struct {
	deadline time.Time
	timer    *time.Timer
}

// timerWheel is the Timer Wheel (C4). Because the underlying time.Timer
// fires on a monotonic clock while deadlines are wall-clock, every callback
// re-checks now() against the stored deadline and no-ops if it hasn't
// actually elapsed (spec.md §4.4).
type timerWheel struct {
	e *Engine

	reload        map[GlobalID]*timerEntry
	expire        map[GlobalID]*timerEntry
	viewersExpire map[GlobalID]*timerEntry
}

func newTimerWheel(e *Engine) *timerWheel {
	return &timerWheel{
		e:             e,
		reload:        make(map[GlobalID]*timerEntry),
		expire:        make(map[GlobalID]*timerEntry),
		viewersExpire: make(map[GlobalID]*timerEntry),
	}
}

func (w *timerWheel) setOf(kind timerKind) map[GlobalID]*timerEntry {
	switch kind {
	case timerReload:
		return w.reload
	case timerExpire:
		return w.expire
	case timerViewersExpire:
		return w.viewersExpire
	default:
		panic("unknown timer kind")
	}
}

// arm (re-)schedules the given timer kind for gid to fire at deadline,
// cancelling any previous timer of that kind for the same gid.
func (w *timerWheel) arm(kind timerKind, gid GlobalID, deadline time.Time, fire func()) {
	set := w.setOf(kind)
	if existing, ok := set[gid]; ok {
		existing.timer.Stop()
	}
	delay := deadline.Sub(w.e.now())
	if delay < 0 {
		delay = 0
	}
	entry := &timerEntry{deadline: deadline}
	entry.timer = time.AfterFunc(delay, func() {
		w.e.Post(func() {
			if w.e.closed.IsSet() {
				return
			}
			cur, ok := set[gid]
			if !ok || !cur.deadline.Equal(deadline) {
				// Superseded by a re-arm; this firing is stale.
				return
			}
			if w.e.now().Before(deadline) {
				// Monotonic/wall-clock skew: deadline hasn't really
				// elapsed yet. Re-arm for the remainder.
				w.arm(kind, gid, deadline, fire)
				return
			}
			delete(set, gid)
			fire()
		})
	})
	set[gid] = entry
}

// cancel stops and forgets the given timer kind for gid, if any.
func (w *timerWheel) cancel(kind timerKind, gid GlobalID) {
	set := w.setOf(kind)
	if existing, ok := set[gid]; ok {
		existing.timer.Stop()
		delete(set, gid)
	}
}

func (w *timerWheel) stopAll() {
	for _, set := range []map[GlobalID]*timerEntry{w.reload, w.expire, w.viewersExpire} {
		for gid, e := range set {
			e.timer.Stop()
			delete(set, gid)
		}
	}
}

// scheduleExpireTimers arms/re-arms the expire and viewers_expire timers for
// a story per spec.md §4.2 step 9 / §4.4.
func (e *Engine) scheduleExpireTimers(s *Story, viewersExpirationDelay time.Duration) {
	gid := s.GlobalID
	expireAt := time.Unix(s.ExpireDate, 0)
	e.timers.arm(timerExpire, gid, expireAt, func() { e.onExpireTimer(s.FullID()) })

	viewersExpireAt := expireAt.Add(viewersExpirationDelay)
	e.timers.arm(timerViewersExpire, gid, viewersExpireAt, func() { e.onViewersExpireTimer(s.FullID()) })
}

// onExpireTimer implements the expire action from spec.md §4.4.
func (e *Engine) onExpireTimer(id StoryFullID) {
	e.mu.Lock()
	s, ok := e.storyByID[id]
	e.mu.Unlock()
	if !ok {
		return
	}
	if !s.IsOwned(e.self) && !s.IsStub() && !s.Pinned {
		e.deleteStory(id)
		return
	}
	// Owned (or pinned, or stub) stories are retained; the owner's active
	// list drops the id via the normal active-list recompute path, and the
	// story itself gains can_get_viewers=true until the viewer window
	// closes.
	e.mu.Lock()
	s.CanGetViewers = true
	wasSent := s.UpdateSent
	e.mu.Unlock()
	if wasSent {
		e.pub.publishStory(s)
	}
	if a, ok := e.activeStoriesFor(s.OwnerID); ok {
		e.recomputeActiveListAfterRemoval(a, id.StoryID)
	}
}

// onViewersExpireTimer implements the viewers_expire action from spec.md
// §4.4.
func (e *Engine) onViewersExpireTimer(id StoryFullID) {
	e.mu.Lock()
	s, ok := e.storyByID[id]
	e.mu.Unlock()
	if !ok {
		return
	}
	e.viewers.Invalidate(id)
	e.mu.Lock()
	s.CanGetViewers = false
	wasSent := s.UpdateSent
	e.mu.Unlock()
	if wasSent {
		e.pub.publishStory(s)
	}
}

// armReloadTimer schedules the OPEN_POLL reload timer for an opened story
// (spec.md §4.4, §4.6).
func (e *Engine) armReloadTimer(s *Story) {
	gid := s.GlobalID
	deadline := time.Unix(s.ReceiveDate, 0).Add(OpenedStoryPollPeriod)
	e.timers.arm(timerReload, gid, deadline, func() {
		e.reloadStory(s.FullID())
		if cur, ok := e.getStoryLocked(s.FullID()); ok && e.isOpen(s.FullID()) {
			e.armReloadTimer(cur)
		}
	})
}

func (e *Engine) cancelReloadTimer(s *Story) {
	e.timers.cancel(timerReload, s.GlobalID)
}
