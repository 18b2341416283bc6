package stories

import (
	"context"
	"testing"
	"time"

	"github.com/gotd/td/tg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestServerStoryRejectsNonPositiveID(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	err := e.IngestServerStory(context.Background(), &ServerStory{Kind: ServerStoryFull, OwnerID: 5, StoryID: 0})
	assert.Error(t, err)
}

func TestIngestServerStoryFullStoresContent(t *testing.T) {
	e, db, _ := newTestEngine(1)
	defer e.Close()

	rec := &ServerStory{
		Kind:       ServerStoryFull,
		OwnerID:    5,
		StoryID:    10,
		Date:       1000,
		ExpireDate: 2000,
		Content:    &PhotoContent{Photo: &tg.Photo{ID: 1}},
		Caption:    FormattedText{Text: "hello"},
	}
	require.NoError(t, e.IngestServerStory(context.Background(), rec))

	s, ok := e.GetStory(StoryFullID{OwnerID: 5, StoryID: 10})
	require.True(t, ok)
	assert.Equal(t, int64(1000), s.Date)
	assert.Equal(t, int64(2000), s.ExpireDate)
	assert.Equal(t, "hello", s.Caption.Text)
	assert.NotZero(t, s.GlobalID)

	// The ingested story must also have been persisted.
	persisted, err := db.GetStory(context.Background(), StoryFullID{OwnerID: 5, StoryID: 10})
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "hello", persisted.Caption.Text)
}

func TestIngestServerStoryCoercesNonPositiveDate(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	rec := &ServerStory{Kind: ServerStoryFull, OwnerID: 5, StoryID: 11, Date: 0, ExpireDate: 0}
	require.NoError(t, e.IngestServerStory(context.Background(), rec))

	s, ok := e.GetStory(StoryFullID{OwnerID: 5, StoryID: 11})
	require.True(t, ok)
	assert.Equal(t, int64(1), s.Date)
	assert.Greater(t, s.ExpireDate, s.Date)
}

func TestIngestServerStoryDeletedTombstones(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	full := &ServerStory{Kind: ServerStoryFull, OwnerID: 5, StoryID: 12, Date: 1, ExpireDate: 2}
	require.NoError(t, e.IngestServerStory(context.Background(), full))
	_, ok := e.GetStory(StoryFullID{OwnerID: 5, StoryID: 12})
	require.True(t, ok)

	deleted := &ServerStory{Kind: ServerStoryDeleted, OwnerID: 5, StoryID: 12}
	require.NoError(t, e.IngestServerStory(context.Background(), deleted))

	_, ok = e.GetStory(StoryFullID{OwnerID: 5, StoryID: 12})
	assert.False(t, ok)
	assert.True(t, e.reg.IsDeleted(StoryFullID{OwnerID: 5, StoryID: 12}))
}

func TestGetStoryForceReturnsDeletedAsNil(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	id := StoryFullID{OwnerID: 5, StoryID: 13}
	e.reg.MarkDeleted(id)

	s, err := e.GetStoryForce(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestGetStoryForceLoadsFromDB(t *testing.T) {
	e, db, _ := newTestEngine(1)
	defer e.Close()

	id := StoryFullID{OwnerID: 5, StoryID: 14}
	require.NoError(t, db.AddStory(context.Background(), &Story{OwnerID: 5, StoryID: 14, Date: 1, ExpireDate: 999999999999}))

	s, err := e.GetStoryForce(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, id, s.FullID())
	assert.NotZero(t, s.GlobalID)

	// A second call must hit the now-cached in-memory copy, not the DB again.
	s2, err := e.GetStoryForce(context.Background(), id)
	require.NoError(t, err)
	assert.Same(t, s, s2)
}

func TestGetStoryForceDiscardsExpiredForeignStory(t *testing.T) {
	e, db, _ := newTestEngine(1)
	defer e.Close()

	id := StoryFullID{OwnerID: 5, StoryID: 15}
	require.NoError(t, db.AddStory(context.Background(), &Story{OwnerID: 5, StoryID: 15, Date: 1, ExpireDate: 2}))

	s, err := e.GetStoryForce(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, s, "an expired, unpinned, foreign story loaded from the DB must be discarded (Open Question #1)")

	persisted, err := db.GetStory(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestReloadStoryIngestsFreshRecord(t *testing.T) {
	e, _, rpc := newTestEngine(1)
	defer e.Close()

	id := StoryFullID{OwnerID: 5, StoryID: 16}
	rpc.getByIDFunc = func(ctx context.Context, owner OwnerID, ids []StoryID) ([]*ServerStory, error) {
		return []*ServerStory{{Kind: ServerStoryFull, OwnerID: owner, StoryID: ids[0], Date: 1, ExpireDate: 999999999999}}, nil
	}

	e.Do(func() { e.reloadStory(id) })

	require.Eventually(t, func() bool {
		_, ok := e.GetStory(id)
		return ok
	}, time.Second, 10*time.Millisecond)
}

func TestReloadStoryMarksInaccessibleOnError(t *testing.T) {
	e, _, rpc := newTestEngine(1)
	defer e.Close()

	id := StoryFullID{OwnerID: 5, StoryID: 17}
	rpc.getByIDFunc = func(ctx context.Context, owner OwnerID, ids []StoryID) ([]*ServerStory, error) {
		return nil, assert.AnError
	}

	e.Do(func() { e.reloadStory(id) })

	require.Eventually(t, func() bool {
		return e.reg.ShouldThrottleReload(id, e.now(), time.Hour)
	}, time.Second, 10*time.Millisecond)
}
