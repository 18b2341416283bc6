package storiesdb

import (
	"testing"

	"github.com/gotd/td/tg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mau.fi/telegram-stories/pkg/stories"
)

func TestEncodeDecodeContentPhotoRoundTrips(t *testing.T) {
	content := &stories.PhotoContent{Photo: &tg.Photo{
		ID:            123,
		AccessHash:    456,
		FileReference: []byte{1, 2, 3},
	}}

	data, err := encodeContent(content)
	require.NoError(t, err)

	decoded, err := decodeContent(data)
	require.NoError(t, err)

	photo, ok := decoded.(*stories.PhotoContent)
	require.True(t, ok)
	assert.Equal(t, int64(123), photo.Photo.ID)
	assert.Equal(t, int64(456), photo.Photo.AccessHash)
	assert.Equal(t, []byte{1, 2, 3}, photo.Photo.FileReference)
}

func TestEncodeDecodeContentVideoRoundTrips(t *testing.T) {
	content := &stories.VideoContent{Document: &tg.Document{
		ID:            9,
		AccessHash:    8,
		FileReference: []byte{4, 5},
		MimeType:      "video/mp4",
	}}

	data, err := encodeContent(content)
	require.NoError(t, err)

	decoded, err := decodeContent(data)
	require.NoError(t, err)

	video, ok := decoded.(*stories.VideoContent)
	require.True(t, ok)
	assert.Equal(t, int64(9), video.Document.ID)
	assert.Equal(t, "video/mp4", video.Document.MimeType)
}

func TestEncodeDecodeContentNilRoundTrips(t *testing.T) {
	data, err := encodeContent(nil)
	require.NoError(t, err)

	decoded, err := decodeContent(data)
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestToPendingStoryJSONRoundTripsContent(t *testing.T) {
	pending := &stories.PendingStory{
		OwnerID:  1,
		SendNum:  2,
		RandomID: 3,
		Story: &stories.Story{
			OwnerID: 1,
			Content: &stories.PhotoContent{Photo: &tg.Photo{ID: 77, AccessHash: 88}},
			Caption: stories.FormattedText{Text: "hi"},
			Pinned:  true,
		},
	}

	shadow, err := toPendingStoryJSON(pending)
	require.NoError(t, err)

	back, err := shadow.toPendingStory()
	require.NoError(t, err)

	require.NotNil(t, back.Story)
	photo, ok := back.Story.Content.(*stories.PhotoContent)
	require.True(t, ok)
	assert.Equal(t, int64(77), photo.Photo.ID)
	assert.Equal(t, "hi", back.Story.Caption.Text)
	assert.True(t, back.Story.Pinned)
	assert.Equal(t, uint32(2), back.SendNum)
}

func TestToPendingStoryJSONHandlesNil(t *testing.T) {
	shadow, err := toPendingStoryJSON(nil)
	require.NoError(t, err)
	assert.Nil(t, shadow)

	back, err := shadow.toPendingStory()
	require.NoError(t, err)
	assert.Nil(t, back)
}
