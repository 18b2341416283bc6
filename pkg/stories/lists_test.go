package stories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveOrderBitsOrdersSelfUnreadChangelogPremiumThenDate(t *testing.T) {
	// S1: self outranks premium+unread outranks a plain owner, regardless of
	// date (spec.md §4.3 private_order bit layout).
	self := activeOrderBits(1, true, false, false, false)
	unreadPremium := activeOrderBits(100, false, true, false, true)
	plain := activeOrderBits(200, false, false, false, false)
	assert.Greater(t, self, unreadPremium)
	assert.Greater(t, unreadPremium, plain)
}

func TestActiveOrderBitsUnreadBitClearsOnRead(t *testing.T) {
	// S2: the unread bit (35) is the only thing that must change between an
	// unread and a read state for an otherwise-identical owner.
	unread := activeOrderBits(50, false, true, false, false)
	read := activeOrderBits(50, false, false, false, false)
	assert.Equal(t, unread, read|(1<<35))
	assert.NotEqual(t, unread, read)
}

func TestPrivateOrderBitsReflectsSelfUnreadChangelogPremium(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()
	opts := DefaultTunableOptions()
	opts.StoriesChangelogUserID = 42
	e.deps.Options = StaticOptionSource{Options: opts}
	fu := e.deps.Users.(*fakeUsers)
	fu.premium[7] = true

	selfActive := &ActiveStories{OwnerID: 1, StoryIDs: []StoryID{1}, MaxReadStoryID: 1}
	selfStory := &Story{OwnerID: 1, StoryID: 1, Date: 10}
	assert.NotZero(t, e.privateOrderBits(context.Background(), selfActive, selfStory)&(1<<36))

	premiumUnread := &ActiveStories{OwnerID: 7, StoryIDs: []StoryID{5}, MaxReadStoryID: 0}
	premiumStory := &Story{OwnerID: 7, StoryID: 5, Date: 10}
	order := e.privateOrderBits(context.Background(), premiumUnread, premiumStory)
	assert.NotZero(t, order&(1<<33), "premium bit")
	assert.NotZero(t, order&(1<<35), "unread bit")

	changelog := &ActiveStories{OwnerID: 42, StoryIDs: []StoryID{9}, MaxReadStoryID: 9}
	changelogStory := &Story{OwnerID: 42, StoryID: 9, Date: 10}
	assert.NotZero(t, e.privateOrderBits(context.Background(), changelog, changelogStory)&(1<<34))
}

func TestOnUpdateActiveSortsAndPublishes(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	for _, id := range []StoryID{1, 2, 3} {
		require.NoError(t, e.IngestServerStory(context.Background(), &ServerStory{
			Kind: ServerStoryFull, OwnerID: 5, StoryID: id, Date: 10, ExpireDate: 999999999999,
		}))
	}

	e.OnUpdateActive(context.Background(), 5, []StoryID{3, 1, 2}, 1, false)

	a, ok := e.activeStoriesFor(5)
	require.True(t, ok)
	assert.Equal(t, []StoryID{1, 2, 3}, a.StoryIDs)
	assert.Equal(t, StoryID(1), a.MaxReadStoryID)
}

func TestOnUpdateActiveDropsExpiredAndUnknownIDs(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	require.NoError(t, e.IngestServerStory(context.Background(), &ServerStory{
		Kind: ServerStoryFull, OwnerID: 5, StoryID: 1, Date: 10, ExpireDate: 999999999999,
	}))

	valid := e.OnUpdateActive(context.Background(), 5, []StoryID{1, 2, 99}, 1, true)

	a, ok := e.activeStoriesFor(5)
	require.True(t, ok)
	assert.Equal(t, []StoryID{1}, a.StoryIDs, "id 2 has no locally known story, id 99 was never sent")
	assert.False(t, valid, "dropping ids must invalidate the caller's DB snapshot")
}

func TestOnUpdateActiveMaxReadClampsToZeroWhenBelowFirstID(t *testing.T) {
	// Owner read up to 7, then 5/6/7 all expired and a fresh story 10 became
	// the sole active id: max_read must reset to 0, not stay stuck at 7
	// (invariant #2: max_read = 0 or max_read >= story_ids[0]).
	e, _, _ := newTestEngine(1)
	defer e.Close()

	require.NoError(t, e.IngestServerStory(context.Background(), &ServerStory{
		Kind: ServerStoryFull, OwnerID: 5, StoryID: 7, Date: 10, ExpireDate: 999999999999,
	}))
	e.OnUpdateActive(context.Background(), 5, []StoryID{7}, 7, false)

	require.NoError(t, e.IngestServerStory(context.Background(), &ServerStory{
		Kind: ServerStoryFull, OwnerID: 5, StoryID: 10, Date: 20, ExpireDate: 999999999999,
	}))
	e.OnUpdateActive(context.Background(), 5, []StoryID{10}, 7, false)

	a, ok := e.activeStoriesFor(5)
	require.True(t, ok)
	assert.Equal(t, StoryID(0), a.MaxReadStoryID)
}

func TestClassifyListDefaultsToMainWithoutDialogs(t *testing.T) {
	e, _, _ := newTestEngine(1)
	e.deps.Dialogs = nil
	defer e.Close()

	list := e.classifyList(context.Background(), &ActiveStories{OwnerID: 1}, nil)
	assert.Equal(t, StoryListMain, list)
}

func TestClassifyListArchiveWhenHidden(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	fd := e.deps.Dialogs.(*fakeDialogs)
	fd.contacts[5] = true
	fd.hidden[5] = true

	list := e.classifyList(context.Background(), &ActiveStories{OwnerID: 5}, nil)
	assert.Equal(t, StoryListArchive, list)
}

func TestClassifyListNoneForOwnerNotFollowed(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	list := e.classifyList(context.Background(), &ActiveStories{OwnerID: 5}, nil)
	assert.Equal(t, StoryListNone, list)
}

func TestClassifyListMainForChangelogSender(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()
	opts := DefaultTunableOptions()
	opts.StoriesChangelogUserID = 99
	e.deps.Options = StaticOptionSource{Options: opts}

	list := e.classifyList(context.Background(), &ActiveStories{OwnerID: 99}, nil)
	assert.Equal(t, StoryListMain, list)
}

func TestRecomputeActiveListRemovesEmptyOwner(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	a := &ActiveStories{OwnerID: 7}
	e.mu.Lock()
	e.activeByOwner[7] = a
	e.mu.Unlock()

	e.recomputeActiveList(a)

	_, ok := e.activeStoriesFor(7)
	assert.False(t, ok)
}

func TestLoadActiveStoryListRejectsNonPositiveLimit(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	_, _, err := e.LoadActiveStoryList(context.Background(), StoryListMain, OrderKey{}, 0)
	assert.ErrorIs(t, err, ErrLimitMustBePositive)
}

func TestRefreshListFromServerIngestsAndTracksState(t *testing.T) {
	e, _, rpc := newTestEngine(1)
	defer e.Close()

	rpc.getAllFunc = func(ctx context.Context, list StoryListID, isNext bool, state string) (AllStoriesPage, bool, error) {
		return AllStoriesPage{
			Stories: []*ServerStory{
				{Kind: ServerStoryFull, OwnerID: 9, StoryID: 1, Date: 1, ExpireDate: 999999999999},
			},
			Active:    []*ActiveStories{{OwnerID: 9, StoryIDs: []StoryID{1}}},
			NextState: "next",
			HasMore:   true,
		}, false, nil
	}

	require.NoError(t, e.RefreshListFromServer(context.Background(), StoryListMain))

	_, ok := e.GetStory(StoryFullID{OwnerID: 9, StoryID: 1})
	assert.True(t, ok)

	e.mu.RLock()
	l := e.lists[StoryListMain]
	e.mu.RUnlock()
	assert.Equal(t, "next", l.ServerState)
	assert.True(t, l.ServerHasMore)
}
