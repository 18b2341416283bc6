package stories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherPublishStoryMarksSentAndEmits(t *testing.T) {
	p := newPublisher()
	var got []Update
	p.Subscribe(func(u Update) { got = append(got, u) })

	s := &Story{OwnerID: 1, StoryID: 1}
	require.False(t, s.UpdateSent)
	p.publishStory(s)

	assert.True(t, s.UpdateSent)
	require.Len(t, got, 1)
	assert.Equal(t, UpdateStory, got[0].Kind)
	assert.Same(t, s, got[0].Story)
}

func TestPublisherPublishStoryDeletedOnlyIfWasSent(t *testing.T) {
	p := newPublisher()
	var got []Update
	p.Subscribe(func(u Update) { got = append(got, u) })

	p.publishStoryDeleted(false, 1, 1)
	assert.Empty(t, got)

	p.publishStoryDeleted(true, 1, 1)
	require.Len(t, got, 1)
	assert.Equal(t, UpdateStoryDeleted, got[0].Kind)
	assert.Equal(t, OwnerID(1), got[0].DeletedOwner)
}

func TestPublisherFanOutToMultipleSubscribers(t *testing.T) {
	p := newPublisher()
	var a, b int
	p.Subscribe(func(Update) { a++ })
	p.Subscribe(func(Update) { b++ })

	p.publishListCount(StoryListMain, 5)

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestEngineSubscribeReceivesPublishedUpdates(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	received := make(chan Update, 1)
	e.Subscribe(func(u Update) { received <- u })

	e.Do(func() { e.pub.publishListCount(StoryListMain, 3) })

	u := <-received
	assert.Equal(t, UpdateStoryListChatCount, u.Kind)
	assert.Equal(t, 3, u.ListCount)
}
