package storiesdb

import (
	"context"
	"encoding/json"

	"go.mau.fi/util/dbutil"

	"go.mau.fi/telegram-stories/pkg/stories"
)

type binlogQueries struct {
	db *dbutil.Database
}

const (
	appendBinlogQuery = `
		INSERT INTO story_binlog (kind, owner_id, story_id, max_id, payload)
		VALUES ($1, $2, $3, $4, $5)
	`
	rewriteBinlogQuery = `
		UPDATE story_binlog SET kind=$1, owner_id=$2, story_id=$3, max_id=$4, payload=$5 WHERE id=$6
	`
	eraseBinlogQuery = `DELETE FROM story_binlog WHERE id=$1`
	forEachBinlogQuery = `
		SELECT id, kind, owner_id, story_id, max_id, payload FROM story_binlog ORDER BY id ASC
	`
)

// binlogPayload holds the fields specific to send/edit events; the shared
// owner/story_id/max_id columns cover the simpler event kinds directly.
type binlogPayload struct {
	Pending     *pendingStoryJSON      `json:"pending,omitempty"`
	EditCaption bool                   `json:"edit_caption,omitempty"`
	Caption     *stories.FormattedText `json:"caption,omitempty"`
}

// pendingStoryJSON mirrors stories.PendingStory for binlog persistence. It
// exists because PendingStory.Story.Content is typed as the StoryContent
// interface: encoding/json can marshal an interface field through its
// dynamic type but cannot unmarshal back into one without a concrete type to
// target, so replay would otherwise lose a queued send/edit's content across
// a restart. The send/edit pipeline never populates Story.PrivacyRules
// before a story is sent (it's server-assigned), so that field isn't carried.
type pendingStoryJSON struct {
	OwnerID       stories.OwnerID
	StoryID       stories.StoryID
	SendNum       uint32
	RandomID      int64
	Story         *pendingStoryContentJSON `json:",omitempty"`
	LogEventID    int64
	WasReuploaded bool
}

type pendingStoryContentJSON struct {
	OwnerID             stories.OwnerID
	Content             contentEnvelope
	Caption             stories.FormattedText
	Pinned              bool
	ForCloseFriends     bool
	ForContacts         bool
	ForSelectedContacts bool
	NoForwards          bool
}

func toPendingStoryJSON(p *stories.PendingStory) (*pendingStoryJSON, error) {
	if p == nil {
		return nil, nil
	}
	out := &pendingStoryJSON{
		OwnerID:       p.OwnerID,
		StoryID:       p.StoryID,
		SendNum:       p.SendNum,
		RandomID:      p.RandomID,
		LogEventID:    p.LogEventID,
		WasReuploaded: p.WasReuploaded,
	}
	if p.Story != nil {
		env, err := contentEnvelopeOf(p.Story.Content)
		if err != nil {
			return nil, err
		}
		out.Story = &pendingStoryContentJSON{
			OwnerID:             p.Story.OwnerID,
			Content:             env,
			Caption:             p.Story.Caption,
			Pinned:              p.Story.Pinned,
			ForCloseFriends:     p.Story.ForCloseFriends,
			ForContacts:         p.Story.ForContacts,
			ForSelectedContacts: p.Story.ForSelectedContacts,
			NoForwards:          p.Story.NoForwards,
		}
	}
	return out, nil
}

func (p *pendingStoryJSON) toPendingStory() (*stories.PendingStory, error) {
	if p == nil {
		return nil, nil
	}
	out := &stories.PendingStory{
		OwnerID:       p.OwnerID,
		StoryID:       p.StoryID,
		SendNum:       p.SendNum,
		RandomID:      p.RandomID,
		LogEventID:    p.LogEventID,
		WasReuploaded: p.WasReuploaded,
	}
	if p.Story != nil {
		content, err := decodeContentEnvelope(p.Story.Content)
		if err != nil {
			return nil, err
		}
		out.Story = &stories.Story{
			OwnerID:             p.Story.OwnerID,
			Content:             content,
			Caption:             p.Story.Caption,
			Pinned:              p.Story.Pinned,
			ForCloseFriends:     p.Story.ForCloseFriends,
			ForContacts:         p.Story.ForContacts,
			ForSelectedContacts: p.Story.ForSelectedContacts,
			NoForwards:          p.Story.NoForwards,
		}
	}
	return out, nil
}

func (b *binlogQueries) Append(ctx context.Context, e *stories.BinlogEvent) (int64, error) {
	pending, err := toPendingStoryJSON(e.Pending)
	if err != nil {
		return 0, err
	}
	payload, err := json.Marshal(binlogPayload{Pending: pending, EditCaption: e.EditCaption, Caption: e.Caption})
	if err != nil {
		return 0, err
	}
	lastID, err := b.db.Exec(ctx, appendBinlogQuery, int(e.Kind), int64(e.Owner), int32(e.StoryFullID.StoryID), int32(e.MaxID), payload)
	if err != nil {
		return 0, err
	}
	id, err := lastID.LastInsertId()
	return id, err
}

func (b *binlogQueries) Rewrite(ctx context.Context, id int64, e *stories.BinlogEvent) error {
	pending, err := toPendingStoryJSON(e.Pending)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(binlogPayload{Pending: pending, EditCaption: e.EditCaption, Caption: e.Caption})
	if err != nil {
		return err
	}
	_, err = b.db.Exec(ctx, rewriteBinlogQuery, int(e.Kind), int64(e.Owner), int32(e.StoryFullID.StoryID), int32(e.MaxID), payload, id)
	return err
}

func (b *binlogQueries) Erase(ctx context.Context, id int64) error {
	_, err := b.db.Exec(ctx, eraseBinlogQuery, id)
	return err
}

func (b *binlogQueries) ForEach(ctx context.Context, f func(*stories.BinlogEvent) error) error {
	rows, err := b.db.Query(ctx, forEachBinlogQuery)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var kind int
		var owner int64
		var storyID, maxID int32
		var payloadBytes []byte
		if err := rows.Scan(&id, &kind, &owner, &storyID, &maxID, &payloadBytes); err != nil {
			return err
		}
		var payload binlogPayload
		if len(payloadBytes) > 0 {
			if err := json.Unmarshal(payloadBytes, &payload); err != nil {
				return err
			}
		}
		pending, err := payload.Pending.toPendingStory()
		if err != nil {
			return err
		}
		event := &stories.BinlogEvent{
			ID:          id,
			Kind:        stories.BinlogEventKind(kind),
			StoryFullID: stories.StoryFullID{OwnerID: stories.OwnerID(owner), StoryID: stories.StoryID(storyID)},
			Owner:       stories.OwnerID(owner),
			MaxID:       stories.StoryID(maxID),
			Pending:     pending,
			EditCaption: payload.EditCaption,
			Caption:     payload.Caption,
		}
		if err := f(event); err != nil {
			return err
		}
	}
	return rows.Err()
}
