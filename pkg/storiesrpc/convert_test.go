package storiesrpc

import (
	"testing"

	"github.com/gotd/td/tg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mau.fi/telegram-stories/pkg/stories"
)

func TestPeerOwnerID(t *testing.T) {
	owner, ok := peerOwnerID(&tg.PeerUser{UserID: 5})
	require.True(t, ok)
	assert.Equal(t, stories.OwnerID(5), owner)

	owner, ok = peerOwnerID(&tg.PeerChannel{ChannelID: 7})
	require.True(t, ok)
	assert.Equal(t, stories.OwnerID(7), owner)

	_, ok = peerOwnerID(&tg.PeerChat{ChatID: 0})
	assert.True(t, ok) // chat id 0 is still a dispatchable peer kind

	_, ok = peerOwnerID(nil)
	assert.False(t, ok)
}

func TestDispatchStoryItemDeleted(t *testing.T) {
	rec := dispatchStoryItem(1, &tg.StoryItemDeleted{ID: 9})
	require.NotNil(t, rec)
	assert.Equal(t, stories.ServerStoryDeleted, rec.Kind)
	assert.Equal(t, stories.StoryID(9), rec.StoryID)
}

func TestDispatchStoryItemSkipped(t *testing.T) {
	rec := dispatchStoryItem(1, &tg.StoryItemSkipped{ID: 3, Date: 100, ExpireDate: 200, CloseFriends: true})
	require.NotNil(t, rec)
	assert.Equal(t, stories.ServerStorySkipped, rec.Kind)
	assert.Equal(t, int64(100), rec.Date)
	assert.True(t, rec.ForCloseFriends)
}

func TestDispatchStoryItemFullWithPhoto(t *testing.T) {
	item := &tg.StoryItem{
		ID:         4,
		Date:       10,
		ExpireDate: 20,
		Pinned:     true,
		Caption:    "hello",
		Media: &tg.MessageMediaPhoto{
			Photo: &tg.Photo{ID: 55, AccessHash: 66},
		},
	}
	rec := dispatchStoryItem(1, item)
	require.NotNil(t, rec)
	assert.Equal(t, stories.ServerStoryFull, rec.Kind)
	assert.True(t, rec.Pinned)
	assert.Equal(t, "hello", rec.Caption.Text)

	photo, ok := rec.Content.(*stories.PhotoContent)
	require.True(t, ok)
	assert.Equal(t, int64(55), photo.Photo.ID)
}

func TestDispatchStoryItemUnknownVariantReturnsNil(t *testing.T) {
	assert.Nil(t, dispatchStoryItem(1, nil))
}

func TestMediaToContentPhoto(t *testing.T) {
	content, ok := mediaToContent(&tg.MessageMediaPhoto{Photo: &tg.Photo{ID: 1}})
	require.True(t, ok)
	_, isPhoto := content.(*stories.PhotoContent)
	assert.True(t, isPhoto)
}

func TestMediaToContentDocument(t *testing.T) {
	content, ok := mediaToContent(&tg.MessageMediaDocument{Document: &tg.Document{ID: 2}})
	require.True(t, ok)
	_, isVideo := content.(*stories.VideoContent)
	assert.True(t, isVideo)
}

func TestMediaToContentUnsupportedPhotoVariant(t *testing.T) {
	_, ok := mediaToContent(&tg.MessageMediaPhoto{Photo: &tg.PhotoEmpty{}})
	assert.False(t, ok)
}

func TestMediaToContentUnknownVariant(t *testing.T) {
	_, ok := mediaToContent(&tg.MessageMediaUnsupported{})
	assert.False(t, ok)
}

func TestDispatchPeerStories(t *testing.T) {
	ps := &tg.PeerStories{
		Peer:       &tg.PeerUser{UserID: 1},
		MaxReadID:  3,
		Stories: []tg.StoryItemClass{
			&tg.StoryItem{ID: 1, Date: 1, ExpireDate: 2},
			&tg.StoryItemDeleted{ID: 2},
		},
	}
	active, recs := dispatchPeerStories(ps)
	require.NotNil(t, active)
	assert.Equal(t, stories.OwnerID(1), active.OwnerID)
	assert.Equal(t, stories.StoryID(3), active.MaxReadStoryID)
	require.Len(t, recs, 2)
	// the deleted item contributes to recs but not to the active story id list
	assert.Equal(t, []stories.StoryID{1}, active.StoryIDs)
}

func TestDispatchPeerStoriesUnknownPeerReturnsNil(t *testing.T) {
	active, recs := dispatchPeerStories(&tg.PeerStories{Peer: nil})
	assert.Nil(t, active)
	assert.Nil(t, recs)
}

func TestContentToInputMediaPhoto(t *testing.T) {
	media, err := contentToInputMedia(&stories.PhotoContent{}, &tg.InputFile{ID: 1})
	require.NoError(t, err)
	_, ok := media.(*tg.InputMediaUploadedPhoto)
	assert.True(t, ok)
}

func TestContentToInputMediaVideo(t *testing.T) {
	media, err := contentToInputMedia(&stories.VideoContent{}, &tg.InputFile{ID: 1})
	require.NoError(t, err)
	doc, ok := media.(*tg.InputMediaUploadedDocument)
	require.True(t, ok)
	assert.Equal(t, "video/mp4", doc.MimeType)
}

func TestFindStoryUpdateLocatesUpdateStory(t *testing.T) {
	updates := &tg.Updates{
		Updates: []tg.UpdateClass{
			&tg.UpdateNewMessage{},
			&tg.UpdateStory{
				Peer:  &tg.PeerUser{UserID: 9},
				Story: &tg.StoryItem{ID: 5, Date: 1, ExpireDate: 2},
			},
		},
	}
	rec := findStoryUpdate(updates)
	require.NotNil(t, rec)
	assert.Equal(t, stories.OwnerID(9), rec.OwnerID)
	assert.Equal(t, stories.StoryID(5), rec.StoryID)
}

func TestFindStoryUpdateNoMatchReturnsNil(t *testing.T) {
	assert.Nil(t, findStoryUpdate(&tg.Updates{Updates: []tg.UpdateClass{&tg.UpdateNewMessage{}}}))
	assert.Nil(t, findStoryUpdate(&tg.UpdateShort{}))
}

func TestStoryIDIntConversionsRoundTrip(t *testing.T) {
	ids := []stories.StoryID{1, 2, 3}
	ints := storyIDsToInts(ids)
	assert.Equal(t, []int{1, 2, 3}, ints)
	assert.Equal(t, ids, intsToStoryIDs(ints))
}

func TestEncodeViewsOffset(t *testing.T) {
	assert.Equal(t, "", encodeViewsOffset(0))
	assert.Equal(t, "", encodeViewsOffset(-1))
	assert.Equal(t, "5", encodeViewsOffset(5))
}
