package stories

import (
	"context"
	"testing"

	"github.com/gotd/td/tg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCloseStoryLifecycle(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	id := StoryFullID{OwnerID: 1, StoryID: 1}
	err := e.OpenStory(id)
	assert.ErrorIs(t, err, ErrStoryNotFound)

	require.NoError(t, e.IngestServerStory(context.Background(), &ServerStory{
		Kind: ServerStoryFull, OwnerID: 1, StoryID: 1, Date: 1, ExpireDate: 999999999999,
	}))

	require.NoError(t, e.OpenStory(id))
	assert.True(t, e.isOpen(id))

	require.NoError(t, e.CloseStory(id))
	assert.False(t, e.isOpen(id))

	assert.ErrorIs(t, e.CloseStory(id), ErrStoryNotOpened)
}

func TestGetStoriesByIDRejectsEmpty(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	_, err := e.GetStoriesByID(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrInvalidStoryID)
}

func TestGetStoriesByIDUnknownSender(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	_, err := e.GetStoriesByID(context.Background(), 999, []StoryID{1})
	assert.ErrorIs(t, err, ErrStorySenderNotFound)
}

func TestReadStoriesRejectsNonPositive(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()
	assert.ErrorIs(t, e.ReadStories(1, 0), ErrInvalidStoryID)
}

func TestSendStoryRejectsNilContent(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	_, err := e.SendStory(context.Background(), SendStoryRequest{ActivePeriod: activePeriod1d})
	assert.ErrorIs(t, err, ErrInvalidStoryID)
}

func TestSendStoryRejectsInvalidActivePeriod(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	_, err := e.SendStory(context.Background(), SendStoryRequest{
		Content:      &PhotoContent{Photo: &tg.Photo{ID: 1}},
		ActivePeriod: 999,
	})
	assert.ErrorIs(t, err, ErrInvalidActivePeriod)
}

func TestSendStoryRejectsPremiumOnlyPeriodWithoutPremium(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	_, err := e.SendStory(context.Background(), SendStoryRequest{
		Content:      &PhotoContent{Photo: &tg.Photo{ID: 1}},
		ActivePeriod: activePeriod7d,
	})
	assert.ErrorIs(t, err, ErrActivePeriodNeedsPremium)
}

func TestSendStorySucceeds(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	s, err := e.SendStory(context.Background(), SendStoryRequest{
		Content:      &PhotoContent{Photo: &tg.Photo{ID: 1}},
		ActivePeriod: activePeriod1d,
	})
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestEditStoryRequiresOwnership(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	require.NoError(t, e.IngestServerStory(context.Background(), &ServerStory{
		Kind: ServerStoryFull, OwnerID: 2, StoryID: 5, Date: 1, ExpireDate: 999999999999,
	}))

	_, err := e.EditStory(context.Background(), StoryFullID{OwnerID: 2, StoryID: 5}, 1, EditStoryRequest{})
	assert.ErrorIs(t, err, ErrCantAccessStorySender)
}

func TestDeleteStoriesRejectsEmpty(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()
	assert.ErrorIs(t, e.DeleteStories(context.Background(), nil), ErrInvalidStoryID)
}

func TestTogglePinnedRejectsEmpty(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()
	_, err := e.TogglePinned(context.Background(), nil, true)
	assert.ErrorIs(t, err, ErrInvalidStoryID)
}

func TestGetStoryViewsListRejectsNonPositiveLimit(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()
	_, _, err := e.GetStoryViewsList(context.Background(), StoryFullID{OwnerID: 1, StoryID: 1}, 0, 0)
	assert.ErrorIs(t, err, ErrLimitMustBePositive)
}

func TestExportStoryLinkRejectsDeleted(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()
	id := StoryFullID{OwnerID: 1, StoryID: 1}
	e.reg.MarkDeleted(id)
	_, err := e.ExportStoryLink(context.Background(), id)
	assert.ErrorIs(t, err, ErrStoryNotFound)
}

func TestExportStoryLinkSucceeds(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()
	link, err := e.ExportStoryLink(context.Background(), StoryFullID{OwnerID: 1, StoryID: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, link)
}

func TestGetStoriesByIDFallsThroughToRPCForMissingStories(t *testing.T) {
	e, _, rpc := newTestEngine(1)
	defer e.Close()

	fd := e.deps.Dialogs.(*fakeDialogs)
	fd.exists[5] = true

	var sawIDs []StoryID
	rpc.getByIDFunc = func(ctx context.Context, owner OwnerID, ids []StoryID) ([]*ServerStory, error) {
		sawIDs = append(sawIDs, ids...)
		return []*ServerStory{{Kind: ServerStoryFull, OwnerID: owner, StoryID: ids[0], Date: 1, ExpireDate: 999999999999}}, nil
	}

	out, err := e.GetStoriesByID(context.Background(), 5, []StoryID{7})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, StoryID(7), out[0].StoryID)
	assert.Equal(t, []StoryID{7}, sawIDs)
}

func TestGetStoriesByIDPrefersCacheOverRPC(t *testing.T) {
	e, _, rpc := newTestEngine(1)
	defer e.Close()

	fd := e.deps.Dialogs.(*fakeDialogs)
	fd.exists[5] = true

	require.NoError(t, e.IngestServerStory(context.Background(), &ServerStory{
		Kind: ServerStoryFull, OwnerID: 5, StoryID: 1, Date: 1, ExpireDate: 999999999999,
	}))

	var rpcCalled bool
	rpc.getByIDFunc = func(ctx context.Context, owner OwnerID, ids []StoryID) ([]*ServerStory, error) {
		rpcCalled = true
		return nil, nil
	}

	out, err := e.GetStoriesByID(context.Background(), 5, []StoryID{1})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.False(t, rpcCalled, "a cached story must not trigger an RPC round-trip")
}

func TestDeleteStoriesRemovesFromStore(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	require.NoError(t, e.IngestServerStory(context.Background(), &ServerStory{
		Kind: ServerStoryFull, OwnerID: 1, StoryID: 3, Date: 1, ExpireDate: 999999999999,
	}))
	require.NoError(t, e.DeleteStories(context.Background(), []StoryID{3}))

	_, ok := e.GetStory(StoryFullID{OwnerID: 1, StoryID: 3})
	assert.False(t, ok)
}

func TestTogglePinnedUpdatesStoryState(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	require.NoError(t, e.IngestServerStory(context.Background(), &ServerStory{
		Kind: ServerStoryFull, OwnerID: 1, StoryID: 4, Date: 1, ExpireDate: 999999999999,
	}))
	changed, err := e.TogglePinned(context.Background(), []StoryID{4}, true)
	require.NoError(t, err)
	assert.Equal(t, []StoryID{4}, changed)

	s, ok := e.GetStory(StoryFullID{OwnerID: 1, StoryID: 4})
	require.True(t, ok)
	assert.True(t, s.Pinned)
}

func TestCanSendStoryDelegatesToRPC(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()
	ok, err := e.CanSendStory(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReportRejectsEmptyIDs(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()
	err := e.Report(context.Background(), 1, nil, nil, "spam")
	assert.ErrorIs(t, err, ErrInvalidStoryID)
}

func TestGetStoryViewsListHitsCacheBeforeRPC(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	id := StoryFullID{OwnerID: 1, StoryID: 6}
	require.NoError(t, e.IngestServerStory(context.Background(), &ServerStory{
		Kind: ServerStoryFull, OwnerID: 1, StoryID: 6, Date: 1, ExpireDate: 999999999999,
	}))
	e.Do(func() {
		s, _ := e.GetStory(id)
		s.CanGetViewers = true
	})
	e.viewers.Merge(id, 0, []Viewer{{UserID: 9}}, 1, nil)

	viewers, total, err := e.GetStoryViewsList(context.Background(), id, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, viewers, 1)
	assert.Equal(t, OwnerID(9), viewers[0].UserID)
}

func TestGetStoryViewsListRejectsNonOwnedStory(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	require.NoError(t, e.IngestServerStory(context.Background(), &ServerStory{
		Kind: ServerStoryFull, OwnerID: 2, StoryID: 1, Date: 1, ExpireDate: 999999999999,
	}))
	_, _, err := e.GetStoryViewsList(context.Background(), StoryFullID{OwnerID: 2, StoryID: 1}, 0, 1)
	assert.ErrorIs(t, err, ErrCantAccessStorySender)
}
