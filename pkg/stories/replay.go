package stories

import "context"

// Replay re-drives every durable binlog event left over from a previous
// process (spec.md §4.7 "Restart replay"). Call it once after NewEngine,
// before the engine is exposed to callers, the same way cmd/storyengine's
// main drives it. Sends and edits are re-admitted to the dispatch queue and
// start again from the upload step; delete and read events erase their old
// binlog row and are issued again through the normal entry points.
func (e *Engine) Replay(ctx context.Context) error {
	if e.deps.Binlog == nil {
		return nil
	}
	var events []*BinlogEvent
	if err := e.deps.Binlog.ForEach(ctx, func(ev *BinlogEvent) error {
		events = append(events, ev)
		return nil
	}); err != nil {
		return err
	}
	for _, ev := range events {
		e.replayEvent(ctx, ev)
	}
	return nil
}

func (e *Engine) replayEvent(ctx context.Context, ev *BinlogEvent) {
	switch ev.Kind {
	case BinlogSendStory:
		if ev.Pending == nil {
			e.log.Warn().Int64("event_id", ev.ID).Msg("dropping send-story binlog event with no payload")
			if err := e.deps.Binlog.Erase(ctx, ev.ID); err != nil {
				e.log.Err(err).Msg("failed to erase unreplayable send-story binlog event")
			}
			return
		}
		e.Do(func() { e.send.restoreSend(ev.Pending) })

	case BinlogEditStory:
		e.Do(func() { e.send.restoreEdit(ev.ID, ev.StoryFullID, ev.Pending, ev.Caption, ev.EditCaption) })

	case BinlogDeleteStoryOnServer:
		// Erase first: DeleteStories records its own fresh intent, so
		// replaying the same row twice would otherwise never converge.
		if err := e.deps.Binlog.Erase(ctx, ev.ID); err != nil {
			e.log.Err(err).Msg("failed to erase pre-replay delete-story binlog event")
		}
		if err := e.DeleteStories(ctx, []StoryID{ev.StoryFullID.StoryID}); err != nil {
			e.log.Err(err).Str("story", ev.StoryFullID.String()).Msg("failed to replay queued story deletion")
		}

	case BinlogReadStoriesOnServer:
		if err := e.deps.Binlog.Erase(ctx, ev.ID); err != nil {
			e.log.Err(err).Msg("failed to erase pre-replay read-stories binlog event")
		}
		e.Do(func() { e.batch.MarkRead(ev.Owner, ev.MaxID) })

	case BinlogLoadDialogExpiringStories:
		// No caller currently appends this event kind (the background
		// expiring-story sweep reads GetExpiringStories directly rather
		// than queuing through the binlog); drop it defensively so a
		// stray row can't wedge replay forever.
		e.log.Warn().Int64("event_id", ev.ID).Msg("ignoring unexpected expiring-stories binlog event")
		if err := e.deps.Binlog.Erase(ctx, ev.ID); err != nil {
			e.log.Err(err).Msg("failed to erase stray expiring-stories binlog event")
		}
	}
}
