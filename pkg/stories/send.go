package stories

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"sort"
	"sync"

	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"
	"go.mau.fi/util/exsync"
)

// sendPipeline is the Send/Edit Pipeline (C7). Sends and edits for one owner
// share a single per-owner dispatch slot, taken strictly in ascending
// send_num order, one at a time, so a slow upload never lets a later send or
// edit race ahead and reorder what the recipient sees (spec.md §4.7, and §5:
// "edits share the same dispatcher but use descending send_num keys so they
// preempt sends").
type sendPipeline struct {
	e *Engine

	mu              sync.Mutex
	nextSendNum     uint32
	editSendCounter uint32
	queue           map[OwnerID][]*PendingStory
	dispatching     map[OwnerID]bool
	byRandomID      map[int64]*PendingStory

	editMu      sync.Mutex
	beingEdited map[StoryFullID]*BeingEditedStory

	inFlight *exsync.Event // created by newSendPipeline; nothing in the pipeline sets it
}

func newSendPipeline(e *Engine) *sendPipeline {
	return &sendPipeline{
		e:           e,
		queue:       make(map[OwnerID][]*PendingStory),
		dispatching: make(map[OwnerID]bool),
		byRandomID:  make(map[int64]*PendingStory),
		beingEdited: make(map[StoryFullID]*BeingEditedStory),
		inFlight:    exsync.NewEvent(),
	}
}

// SendStoryRequest carries validated caller input for a new story
// (spec.md §6, stories.sendStory client operation).
type SendStoryRequest struct {
	Content         StoryContent
	Caption         FormattedText
	PrivacyRules    []tg.InputPrivacyRuleClass
	ActivePeriod    int
	Pinned          bool
	ForCloseFriends bool
	NoForwards      bool
	RandomID        int64
}

// Enqueue admits a new outgoing story into the pipeline and returns a
// channel that resolves once the send has finished, successfully or not; if
// the engine is closed first, the channel is never resolved. A zero
// req.RandomID is replaced by a fresh non-zero random value. See spec.md §4.7 "restart recovery: sends and edits queued
// before a restart resume in their original order". Enqueue records a
// BinlogSendStory intent before it returns, so a crash mid-upload is
// recovered by Engine.Replay on the next startup (spec.md §4.7 "Restart
// replay").
func (p *sendPipeline) Enqueue(ctx context.Context, req SendStoryRequest) (*PendingStory, <-chan sendResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextSendNum++
	randomID := req.RandomID
	for randomID == 0 {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			p.e.log.Err(err).Msg("failed to generate story random_id")
			break
		}
		randomID = int64(binary.LittleEndian.Uint64(buf[:]))
	}
	pending := &PendingStory{
		OwnerID:  p.e.self,
		SendNum:  p.nextSendNum,
		RandomID: randomID,
		Story: &Story{
			OwnerID:         p.e.self,
			Content:         req.Content,
			Caption:         req.Caption,
			Pinned:          req.Pinned,
			ForCloseFriends: req.ForCloseFriends,
			NoForwards:      req.NoForwards,
		},
	}
	if p.e.deps.Binlog != nil {
		id, err := p.e.deps.Binlog.Append(ctx, &BinlogEvent{
			Kind:        BinlogSendStory,
			Owner:       p.e.self,
			StoryFullID: StoryFullID{OwnerID: p.e.self},
			Pending:     pending,
		})
		if err != nil {
			p.e.log.Err(err).Msg("failed to record send-story binlog intent")
		} else {
			pending.LogEventID = id
		}
	}
	p.byRandomID[randomID] = pending
	p.queue[p.e.self] = append(p.queue[p.e.self], pending)

	result := make(chan sendResult, 1)
	pending.result = result
	p.dispatchLocked(p.e.self)
	return pending, result
}

// restoreSend re-admits a send that was durably recorded before a restart
// (spec.md §4.7 "Restart replay"), preserving its original send_num and log
// event id so it resumes in its original position with no caller waiting on
// the result.
func (p *sendPipeline) restoreSend(pending *PendingStory) {
	p.mu.Lock()
	if pending.SendNum > p.nextSendNum {
		p.nextSendNum = pending.SendNum
	}
	p.byRandomID[pending.RandomID] = pending
	p.queue[pending.OwnerID] = append(p.queue[pending.OwnerID], pending)
	p.dispatchLocked(pending.OwnerID)
	p.mu.Unlock()
}

type sendResult struct {
	story *Story
	err   error
}

// dispatchLocked kicks off the head-of-queue send or edit for owner if
// nothing is already in flight for it. Caller must hold p.mu.
func (p *sendPipeline) dispatchLocked(owner OwnerID) {
	if p.dispatching[owner] {
		return
	}
	q := p.queue[owner]
	if len(q) == 0 {
		return
	}
	sort.SliceStable(q, func(i, j int) bool { return q[i].SendNum < q[j].SendNum })
	head := q[0]
	p.dispatching[owner] = true
	go p.uploadAndDispatch(context.Background(), owner, head, nil)
}

// uploadAndDispatch drives one queued PendingStory (send or edit) through
// upload and then its server RPC, re-entering the executor for every
// suspension point (spec.md §5, §4.7). badParts marks parts a previous
// attempt was told are missing, for step 6's "re-enter the upload with those
// parts marked bad".
func (p *sendPipeline) uploadAndDispatch(ctx context.Context, owner OwnerID, ps *PendingStory, badParts []int) {
	id := StoryFullID{OwnerID: ps.OwnerID, StoryID: ps.StoryID}
	var content StoryContent
	var be *BeingEditedStory
	if ps.IsEdit() {
		p.editMu.Lock()
		be = p.beingEdited[id]
		p.editMu.Unlock()
		if be == nil {
			// The edit was discarded (e.g. the story was deleted) while
			// queued; discardPendingEdit already resolved its promises.
			p.finishDispatch(owner, ps)
			return
		}
		content = be.NewContent
		ps.Story.Content = content // read by storiesrpc.EditStory to build the new media
	} else {
		content = ps.Story.Content
	}

	var inputFile tg.InputFileClass
	var missingParts []int
	var uploadErr error
	if content != nil {
		inputFile, missingParts, uploadErr = p.upload(ctx, content, badParts)
	}

	p.e.Post(func() {
		if p.e.closed.IsSet() {
			return
		}
		if uploadErr != nil {
			if len(missingParts) > 0 && !ps.UploadRetried {
				ps.UploadRetried = true
				go p.uploadAndDispatch(ctx, owner, ps, missingParts)
				return
			}
			if ps.IsEdit() {
				p.finishEditDispatch(owner, ps, ps.RandomID, nil, uploadErr)
			} else {
				p.finishSend(owner, ps, nil, uploadErr)
			}
			return
		}
		if ps.IsEdit() {
			p.dispatchEdit(ctx, owner, ps, be, inputFile)
			return
		}
		p.dispatchSend(ctx, owner, ps, inputFile)
	})
}

func (p *sendPipeline) dispatchSend(ctx context.Context, owner OwnerID, ps *PendingStory, inputFile tg.InputFileClass) {
	guard(p.e, ctx, func(ctx context.Context) (*ServerStory, error) {
		return p.e.deps.RPC.SendStory(ctx, ps, inputFile)
	}, func(rec *ServerStory, err error) {
		if err != nil {
			if isFileReferenceExpired(err) && !ps.WasReuploaded {
				ps.WasReuploaded = true
				go p.uploadAndDispatch(ctx, owner, ps, nil)
				return
			}
			p.finishSend(owner, ps, nil, err)
			return
		}
		if ingestErr := p.e.IngestServerStory(ctx, rec); ingestErr != nil {
			p.finishSend(owner, ps, nil, ingestErr)
			return
		}
		result, _ := p.e.GetStory(StoryFullID{OwnerID: rec.OwnerID, StoryID: rec.StoryID})
		if result == nil {
			result = ps.Story
		}
		p.finishSend(owner, ps, result, nil)
	})
}

func (p *sendPipeline) upload(ctx context.Context, content StoryContent, badParts []int) (tg.InputFileClass, []int, error) {
	if p.e.deps.Upload == nil {
		return nil, nil, nil
	}
	res, err := p.e.deps.Upload.Upload(ctx, content, badParts)
	if err != nil {
		return nil, missingFileParts(err), err
	}
	return res.InputFile, nil, nil
}

func (p *sendPipeline) finishSend(owner OwnerID, ps *PendingStory, story *Story, err error) {
	if ps.LogEventID != 0 && p.e.deps.Binlog != nil {
		if eraseErr := p.e.deps.Binlog.Erase(context.Background(), ps.LogEventID); eraseErr != nil {
			p.e.log.Err(eraseErr).Msg("failed to erase completed send-story binlog event")
		}
	}
	if ps.result != nil {
		ps.result <- sendResult{story: story, err: err}
		close(ps.result)
	}
	if err != nil {
		p.e.log.Err(err).Int64("owner", int64(owner)).Uint32("send_num", ps.SendNum).Msg("failed to send story")
	}
	p.finishDispatch(owner, ps)
}

// finishDispatch clears owner's dispatch slot and kicks the next queued item
// — the shared exit point for both the send and edit paths, so the two
// never overlap for the same owner (spec.md §4.7).
func (p *sendPipeline) finishDispatch(owner OwnerID, ps *PendingStory) {
	p.mu.Lock()
	q := p.queue[owner]
	for i, cand := range q {
		if cand == ps {
			p.queue[owner] = append(q[:i], q[i+1:]...)
			break
		}
	}
	delete(p.byRandomID, ps.RandomID)
	p.dispatching[owner] = false
	p.dispatchLocked(owner)
	p.mu.Unlock()
}

// discardPendingEdit drops any in-progress edit state for id (called when
// the underlying story is deleted, spec.md §4.2 "Deletion", §4.7 "edit
// generation invalidation").
func (p *sendPipeline) discardPendingEdit(id StoryFullID) {
	p.editMu.Lock()
	be, ok := p.beingEdited[id]
	if ok {
		delete(p.beingEdited, id)
	}
	p.editMu.Unlock()
	if ok {
		for _, pend := range be.pending {
			pend.resolve(nil, ErrStoryNotFound)
		}
	}
}

func isFileReferenceExpired(err error) bool {
	return tgerr.Is(err, tg.ErrFileReferenceExpired)
}

// missingFileParts extracts the part index a stories.sendStory/editStory
// call rejected as missing, so the upload can be retried with just that part
// marked bad instead of failing outright (spec.md §4.7 step 6,
// "FILE_PART_X_MISSING").
func missingFileParts(err error) []int {
	rpcErr, ok := tgerr.As(err)
	if !ok || rpcErr.Type != "FILE_PART_X_MISSING" {
		return nil
	}
	return []int{rpcErr.Argument}
}
