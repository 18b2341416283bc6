package stories

import (
	"context"

	"github.com/gotd/td/tg"
)

// EditStoryRequest carries validated caller input for editing an existing
// story (spec.md §6, stories.editStory client operation). A nil pointer
// field means "leave unchanged"; this mirrors the server's own optional-flag
// semantics for editStory.
type EditStoryRequest struct {
	NewContent StoryContent
	NewCaption *FormattedText
}

// EditStory applies a new edit to id, coalescing with any edit already
// queued or in flight for the same story by bumping EditGenerated: only the
// result of the most recently issued edit is ever applied, and earlier
// promises resolve with the newer edit's outcome once it lands (spec.md
// §4.7 "edit generation invalidation"). The edit itself is dispatched
// through the same per-owner queue sends use, with a descending send_num so
// it preempts queued sends (spec.md §4.7 step 4, §5). Every coalesced
// generation is durably recorded as a BinlogEditStory intent (Append the
// first time, Rewrite on every later coalesce) so a crash mid-edit is
// recovered by Engine.Replay (spec.md §4.7 "Restart replay").
func (p *sendPipeline) EditStory(ctx context.Context, id StoryFullID, randomID int64, req EditStoryRequest) <-chan sendResult {
	result := make(chan sendResult, 1)

	p.editMu.Lock()
	be, ok := p.beingEdited[id]
	if !ok {
		be = &BeingEditedStory{OwnerID: id.OwnerID, StoryID: id.StoryID}
		p.beingEdited[id] = be
	}
	if req.NewContent != nil {
		be.NewContent = req.NewContent
	}
	if req.NewCaption != nil {
		be.NewCaption = req.NewCaption
		be.EditCaption = true
	}
	be.EditGenerated = randomID
	be.pending = append(be.pending, &editPromise{resolve: func(s *Story, err error) {
		result <- sendResult{story: s, err: err}
		close(result)
	}})
	alreadyQueued := len(be.pending) > 1
	p.recordEditLocked(ctx, id, be)
	p.editMu.Unlock()

	if !alreadyQueued {
		p.enqueueEdit(id, randomID)
	}
	return result
}

// recordEditLocked Appends or Rewrites be's binlog intent to reflect its
// current coalesced state. Caller must hold p.editMu.
func (p *sendPipeline) recordEditLocked(ctx context.Context, id StoryFullID, be *BeingEditedStory) {
	if p.e.deps.Binlog == nil {
		return
	}
	ev := &BinlogEvent{
		Kind:        BinlogEditStory,
		Owner:       id.OwnerID,
		StoryFullID: id,
		EditCaption: be.EditCaption,
		Caption:     be.NewCaption,
		Pending: &PendingStory{
			OwnerID:  id.OwnerID,
			StoryID:  id.StoryID,
			RandomID: be.EditGenerated,
			Story:    &Story{OwnerID: id.OwnerID, StoryID: id.StoryID, Content: be.NewContent},
		},
	}
	if be.LogEventID == 0 {
		logID, err := p.e.deps.Binlog.Append(ctx, ev)
		if err != nil {
			p.e.log.Err(err).Msg("failed to record edit-story binlog intent")
			return
		}
		be.LogEventID = logID
		return
	}
	if err := p.e.deps.Binlog.Rewrite(ctx, be.LogEventID, ev); err != nil {
		p.e.log.Err(err).Msg("failed to update edit-story binlog intent")
	}
}

// restoreEdit re-admits an edit that was durably recorded before a restart
// (spec.md §4.7 "Restart replay"). It has no caller waiting on a result; a
// fresh EditStory call issued after replay still coalesces with it through
// the normal generation mechanism.
func (p *sendPipeline) restoreEdit(logEventID int64, id StoryFullID, pending *PendingStory, caption *FormattedText, editCaption bool) {
	if pending == nil || pending.Story == nil {
		return
	}
	p.editMu.Lock()
	be := &BeingEditedStory{
		OwnerID:       id.OwnerID,
		StoryID:       id.StoryID,
		NewContent:    pending.Story.Content,
		NewCaption:    caption,
		EditCaption:   editCaption,
		LogEventID:    logEventID,
		EditGenerated: pending.RandomID,
	}
	p.beingEdited[id] = be
	p.editMu.Unlock()
	p.enqueueEdit(id, pending.RandomID)
}

// enqueueEdit places an edit for id onto its owner's shared dispatch queue,
// keyed by a descending send_num (UINT32_MAX minus a monotone edit counter)
// so edits preempt sends already queued for the same owner (spec.md §4.7
// step 4).
func (p *sendPipeline) enqueueEdit(id StoryFullID, generation int64) {
	p.mu.Lock()
	p.editSendCounter++
	ps := &PendingStory{
		OwnerID:  id.OwnerID,
		StoryID:  id.StoryID,
		SendNum:  ^uint32(0) - p.editSendCounter,
		RandomID: generation,
		Story:    &Story{OwnerID: id.OwnerID, StoryID: id.StoryID},
	}
	p.queue[id.OwnerID] = append(p.queue[id.OwnerID], ps)
	p.dispatchLocked(id.OwnerID)
	p.mu.Unlock()
}

func (p *sendPipeline) dispatchEdit(ctx context.Context, owner OwnerID, ps *PendingStory, be *BeingEditedStory, inputFile tg.InputFileClass) {
	guard(p.e, ctx, func(ctx context.Context) (*ServerStory, error) {
		return p.e.deps.RPC.EditStory(ctx, ps, inputFile, be.NewCaption, be.EditCaption)
	}, func(rec *ServerStory, err error) {
		if err != nil && isFileReferenceExpired(err) && !ps.WasReuploaded {
			ps.WasReuploaded = true
			go p.uploadAndDispatch(ctx, owner, ps, nil)
			return
		}
		var story *Story
		if err == nil {
			if ingestErr := p.e.IngestServerStory(ctx, rec); ingestErr != nil {
				err = ingestErr
			} else {
				story, _ = p.e.GetStory(StoryFullID{OwnerID: ps.OwnerID, StoryID: ps.StoryID})
			}
		}
		p.finishEditDispatch(owner, ps, ps.RandomID, story, err)
	})
}

// finishEditDispatch resolves every promise queued against generation
// (spec.md §4.7): if a newer edit superseded this one while it was in
// flight, the superseded generation's promises stay queued and a fresh
// dispatch is enqueued for the current generation, so they eventually get
// that generation's own result rather than this stale one.
func (p *sendPipeline) finishEditDispatch(owner OwnerID, ps *PendingStory, generation int64, story *Story, err error) {
	id := StoryFullID{OwnerID: ps.OwnerID, StoryID: ps.StoryID}

	p.editMu.Lock()
	be, ok := p.beingEdited[id]
	stale := ok && be.EditGenerated != generation
	var toResolve []*editPromise
	var logEventID int64
	if ok && !stale {
		toResolve = be.pending
		logEventID = be.LogEventID
		delete(p.beingEdited, id)
	}
	p.editMu.Unlock()

	p.finishDispatch(owner, ps)

	if stale {
		p.enqueueEdit(id, be.EditGenerated)
		return
	}
	if logEventID != 0 && p.e.deps.Binlog != nil {
		if eraseErr := p.e.deps.Binlog.Erase(context.Background(), logEventID); eraseErr != nil {
			p.e.log.Err(eraseErr).Msg("failed to erase completed edit-story binlog event")
		}
	}
	for _, pend := range toResolve {
		pend.resolve(story, err)
	}
}
