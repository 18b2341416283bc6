package stories

import (
	"context"
	"testing"
	"time"

	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPipelineEnqueueDispatchesImmediately(t *testing.T) {
	e, _, rpc := newTestEngine(1)
	defer e.Close()

	var sawSend bool
	rpc.sendFunc = func(ctx context.Context, p *PendingStory, inputFile tg.InputFileClass) (*ServerStory, error) {
		sawSend = true
		return &ServerStory{Kind: ServerStoryFull, OwnerID: p.OwnerID, StoryID: 1, Date: 1, ExpireDate: 2}, nil
	}

	s, err := e.SendStory(context.Background(), SendStoryRequest{
		Content:      &PhotoContent{Photo: &tg.Photo{ID: 1}},
		ActivePeriod: activePeriod1d,
	})
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.True(t, sawSend)
}

func TestSendPipelineOrdersConcurrentSendsBySendNum(t *testing.T) {
	e, _, rpc := newTestEngine(1)
	defer e.Close()

	var order []int64
	release := make(chan struct{})
	first := true
	rpc.sendFunc = func(ctx context.Context, p *PendingStory, inputFile tg.InputFileClass) (*ServerStory, error) {
		if first {
			first = false
			<-release
		}
		order = append(order, p.RandomID)
		return &ServerStory{Kind: ServerStoryFull, OwnerID: p.OwnerID, StoryID: StoryID(len(order)), Date: 1, ExpireDate: 2}, nil
	}

	var pending1, pending2 *PendingStory
	var result1, result2 <-chan sendResult
	e.Do(func() {
		pending1, result1 = e.send.Enqueue(context.Background(), SendStoryRequest{Content: &PhotoContent{Photo: &tg.Photo{ID: 1}}, RandomID: 1})
		pending2, result2 = e.send.Enqueue(context.Background(), SendStoryRequest{Content: &PhotoContent{Photo: &tg.Photo{ID: 2}}, RandomID: 2})
	})
	assert.Equal(t, uint32(1), pending1.SendNum)
	assert.Equal(t, uint32(2), pending2.SendNum)

	close(release)
	<-result1
	<-result2

	assert.Equal(t, []int64{1, 2}, order)
}

func TestSendPipelineReuploadsOnceOnExpiredFileReference(t *testing.T) {
	e, _, rpc := newTestEngine(1)
	defer e.Close()

	var attempts int
	rpc.sendFunc = func(ctx context.Context, p *PendingStory, inputFile tg.InputFileClass) (*ServerStory, error) {
		attempts++
		if attempts == 1 {
			return nil, tgerr.New(400, "FILE_REFERENCE_EXPIRED")
		}
		return &ServerStory{Kind: ServerStoryFull, OwnerID: p.OwnerID, StoryID: 1, Date: 1, ExpireDate: 2}, nil
	}

	s, err := e.SendStory(context.Background(), SendStoryRequest{
		Content:      &PhotoContent{Photo: &tg.Photo{ID: 1}},
		ActivePeriod: activePeriod1d,
	})
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 2, attempts)
}

func TestSendPipelineUploadFailurePropagates(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	upload := e.deps.Upload.(*fakeUpload)
	upload.uploadFunc = func(ctx context.Context, content StoryContent, badParts []int) (UploadResult, error) {
		return UploadResult{}, assert.AnError
	}

	_, err := e.SendStory(context.Background(), SendStoryRequest{
		Content:      &PhotoContent{Photo: &tg.Photo{ID: 1}},
		ActivePeriod: activePeriod1d,
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSendPipelineDiscardPendingEditResolvesNotFound(t *testing.T) {
	e, _, rpc := newTestEngine(1)
	defer e.Close()

	block := make(chan struct{})
	rpc.editFunc = func(ctx context.Context, p *PendingStory, inputFile tg.InputFileClass, caption *FormattedText, editCaption bool) (*ServerStory, error) {
		<-block
		return &ServerStory{Kind: ServerStoryFull, OwnerID: p.OwnerID, StoryID: p.StoryID, Date: 1, ExpireDate: 2}, nil
	}

	id := StoryFullID{OwnerID: 1, StoryID: 5}
	require.NoError(t, e.IngestServerStory(context.Background(), &ServerStory{
		Kind: ServerStoryFull, OwnerID: 1, StoryID: 5, Date: 1, ExpireDate: 999999999999,
	}))

	var resultCh <-chan sendResult
	e.Do(func() {
		resultCh = e.send.EditStory(context.Background(), id, 1, EditStoryRequest{NewCaption: &FormattedText{Text: "x"}})
	})

	// Give the edit dispatch a moment to register itself before discarding.
	time.Sleep(20 * time.Millisecond)
	e.Do(func() { e.send.discardPendingEdit(id) })

	res := <-resultCh
	assert.ErrorIs(t, res.err, ErrStoryNotFound)
	close(block)
}
