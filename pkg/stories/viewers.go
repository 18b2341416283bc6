package stories

import "sort"

// Viewer is one recorded (view_date, user_id) pair (spec.md GLOSSARY).
type Viewer struct {
	ViewDate int64
	UserID   OwnerID
}

// viewerSubRange is a contiguous slice of the viewer sequence for one
// story, starting at Offset (its position within the full ordered
// sequence).
type viewerSubRange struct {
	Offset  int
	Viewers []Viewer
}

func (r viewerSubRange) end() int { return r.Offset + len(r.Viewers) }

// viewerCacheEntry is the per-story cache entry (spec.md §4.5).
type viewerCacheEntry struct {
	TotalCount int
	Ranges     []viewerSubRange // sorted, non-adjacent, non-overlapping
}

// viewerCache is the Viewer Cache (C5): a paged, offset-keyed cache of
// viewer lists for owned stories with sub-range merging.
type viewerCache struct {
	entries map[StoryFullID]*viewerCacheEntry
}

func newViewerCache() *viewerCache {
	return &viewerCache{entries: make(map[StoryFullID]*viewerCacheEntry)}
}

// Lookup returns the longest prefix of [offset, offset+limit) that is fully
// covered by cached sub-ranges, or ok=false if nothing at offset is cached
// (a cache miss, which must fall through to the server).
func (c *viewerCache) Lookup(id StoryFullID, offset, limit int) (viewers []Viewer, totalCount int, ok bool) {
	e, found := c.entries[id]
	if !found {
		return nil, 0, false
	}
	for _, r := range e.Ranges {
		if r.Offset <= offset && offset < r.end() {
			start := offset - r.Offset
			end := start + limit
			if end > len(r.Viewers) {
				end = len(r.Viewers)
			}
			return append([]Viewer(nil), r.Viewers[start:end]...), e.TotalCount, true
		}
	}
	return nil, e.TotalCount, false
}

// Merge folds a freshly-fetched slice [offset, offset+len(viewers)) into
// the cache, merging with adjacent/overlapping sub-ranges, and updates
// TotalCount — never allowing it to decrease (spec.md §4.5: "log and keep
// old if server lies").
func (c *viewerCache) Merge(id StoryFullID, offset int, viewers []Viewer, serverTotalCount int, onStaleTotal func(old, new int)) {
	e, ok := c.entries[id]
	if !ok {
		e = &viewerCacheEntry{}
		c.entries[id] = e
	}
	if serverTotalCount < e.TotalCount {
		if onStaleTotal != nil {
			onStaleTotal(e.TotalCount, serverTotalCount)
		}
	} else {
		e.TotalCount = serverTotalCount
	}

	newRange := viewerSubRange{Offset: offset, Viewers: append([]Viewer(nil), viewers...)}
	merged := append(append([]viewerSubRange(nil), e.Ranges...), newRange)
	sort.Slice(merged, func(i, j int) bool { return merged[i].Offset < merged[j].Offset })

	out := merged[:0:0]
	for _, r := range merged {
		if len(out) > 0 && r.Offset <= out[len(out)-1].end() {
			last := &out[len(out)-1]
			if r.end() > last.end() {
				// Extend with the non-overlapping tail of r.
				overlap := last.end() - r.Offset
				if overlap < 0 {
					overlap = 0
				}
				if overlap < len(r.Viewers) {
					last.Viewers = append(last.Viewers, r.Viewers[overlap:]...)
				}
			}
			continue
		}
		out = append(out, r)
	}
	e.Ranges = out
}

// Invalidate drops the cache entry for one story (spec.md §4.5, "on story
// delete").
func (c *viewerCache) Invalidate(id StoryFullID) {
	delete(c.entries, id)
}

// Clear drops the entire cache (spec.md §4.5, "wholly on viewers-window
// expiry" is per-story in practice, but a full reset is exposed for
// session teardown).
func (c *viewerCache) Clear() {
	c.entries = make(map[StoryFullID]*viewerCacheEntry)
}
