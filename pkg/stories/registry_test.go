package stories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryGlobalIDForAllocatesOnce(t *testing.T) {
	r := newRegistry()
	id := StoryFullID{OwnerID: 1, StoryID: 2}

	gid1 := r.GlobalIDFor(id)
	gid2 := r.GlobalIDFor(id)
	assert.Equal(t, gid1, gid2)

	other := StoryFullID{OwnerID: 1, StoryID: 3}
	gid3 := r.GlobalIDFor(other)
	assert.NotEqual(t, gid1, gid3)
}

func TestRegistryResolve(t *testing.T) {
	r := newRegistry()
	id := StoryFullID{OwnerID: 1, StoryID: 2}
	gid := r.GlobalIDFor(id)

	resolved, ok := r.Resolve(gid)
	require.True(t, ok)
	assert.Equal(t, id, resolved)

	_, ok = r.Resolve(gid + 1000)
	assert.False(t, ok)
}

func TestRegistryDeletedTombstone(t *testing.T) {
	r := newRegistry()
	id := StoryFullID{OwnerID: 1, StoryID: 2}
	assert.False(t, r.IsDeleted(id))

	r.MarkInaccessible(id, time.Now())
	r.MarkFailed(id)
	r.MarkDeleted(id)

	assert.True(t, r.IsDeleted(id))
	assert.False(t, r.IsFailed(id), "MarkDeleted must clear the failed classification")
	assert.False(t, r.ShouldThrottleReload(id, time.Now(), time.Hour), "MarkDeleted must clear inaccessible")
}

func TestRegistryInaccessibleThrottle(t *testing.T) {
	r := newRegistry()
	id := StoryFullID{OwnerID: 1, StoryID: 2}
	now := time.Now()

	assert.False(t, r.ShouldThrottleReload(id, now, time.Minute))

	r.MarkInaccessible(id, now)
	assert.True(t, r.ShouldThrottleReload(id, now.Add(30*time.Second), time.Minute))
	assert.False(t, r.ShouldThrottleReload(id, now.Add(2*time.Minute), time.Minute))

	r.ClearInaccessible(id)
	assert.False(t, r.ShouldThrottleReload(id, now.Add(30*time.Second), time.Minute))
}

func TestRegistryFailedNegativeCache(t *testing.T) {
	r := newRegistry()
	id := StoryFullID{OwnerID: 1, StoryID: 2}
	assert.False(t, r.IsFailed(id))

	r.MarkFailed(id)
	assert.True(t, r.IsFailed(id))

	r.ClearFailed(id)
	assert.False(t, r.IsFailed(id))
}
