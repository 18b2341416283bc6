package storiesdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/gotd/td/tg"
	"go.mau.fi/util/dbutil"

	"go.mau.fi/telegram-stories/pkg/stories"
)

type storyQueries struct {
	db *dbutil.Database
}

const (
	getStoryQuery = `
		SELECT date, expire_date, receive_date, edited, pinned, public,
		       for_close_friends, for_contacts, for_selected_contacts, no_forwards,
		       content, caption_text, caption_entities, view_count, recent_viewers
		FROM story WHERE owner_id=$1 AND story_id=$2
	`
	addStoryQuery = `
		INSERT INTO story (owner_id, story_id, global_id, date, expire_date, receive_date,
		                    edited, pinned, public, for_close_friends, for_contacts,
		                    for_selected_contacts, no_forwards, content, caption_text,
		                    caption_entities, view_count, recent_viewers)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (owner_id, story_id) DO UPDATE SET
			global_id=excluded.global_id, date=excluded.date, expire_date=excluded.expire_date,
			receive_date=excluded.receive_date, edited=excluded.edited, pinned=excluded.pinned,
			public=excluded.public, for_close_friends=excluded.for_close_friends,
			for_contacts=excluded.for_contacts, for_selected_contacts=excluded.for_selected_contacts,
			no_forwards=excluded.no_forwards, content=excluded.content, caption_text=excluded.caption_text,
			caption_entities=excluded.caption_entities, view_count=excluded.view_count,
			recent_viewers=excluded.recent_viewers
	`
	deleteStoryQuery    = `DELETE FROM story WHERE owner_id=$1 AND story_id=$2`
	getExpiringQuery    = `SELECT owner_id, story_id FROM story WHERE expire_date < $1 AND pinned=false LIMIT $2`
)

// contentEnvelope is the on-disk representation of stories.StoryContent. It
// keeps only what is needed to reconstruct the interface value; full TL
// object fidelity (DC routing, thumbnail sizes, …) is refetched from the
// server on demand rather than round-tripped through storage.
type contentEnvelope struct {
	Kind                  string `json:"kind"`
	PhotoID               int64  `json:"photo_id,omitempty"`
	PhotoAccessHash       int64  `json:"photo_access_hash,omitempty"`
	PhotoFileReference    []byte `json:"photo_file_reference,omitempty"`
	DocumentID            int64  `json:"document_id,omitempty"`
	DocumentAccessHash    int64  `json:"document_access_hash,omitempty"`
	DocumentFileReference []byte `json:"document_file_reference,omitempty"`
	DocumentMimeType      string `json:"document_mime_type,omitempty"`
}

func (c *storyQueries) Get(ctx context.Context, id stories.StoryFullID) (*stories.Story, error) {
	row := c.db.QueryRow(ctx, getStoryQuery, int64(id.OwnerID), int32(id.StoryID))
	var (
		date, expireDate, receiveDate         int64
		edited, pinned, public                bool
		forCloseFriends, forContacts, forSel  bool
		noForwards                            bool
		contentBytes, captionEntities, viewers []byte
		captionText                           string
		viewCount                             int
	)
	err := row.Scan(&date, &expireDate, &receiveDate, &edited, &pinned, &public,
		&forCloseFriends, &forContacts, &forSel, &noForwards,
		&contentBytes, &captionText, &captionEntities, &viewCount, &viewers)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	content, err := decodeContent(contentBytes)
	if err != nil {
		return nil, err
	}

	s := &stories.Story{
		OwnerID:             id.OwnerID,
		StoryID:             id.StoryID,
		Date:                date,
		ExpireDate:          expireDate,
		ReceiveDate:         receiveDate,
		Edited:              edited,
		Pinned:              pinned,
		Public:              public,
		ForCloseFriends:     forCloseFriends,
		ForContacts:         forContacts,
		ForSelectedContacts: forSel,
		NoForwards:          noForwards,
		Content:             content,
		Caption:             stories.FormattedText{Text: captionText},
		Interaction:         stories.InteractionInfo{ViewCount: viewCount},
	}
	return s, nil
}

func (c *storyQueries) Add(ctx context.Context, s *stories.Story) error {
	contentBytes, err := encodeContent(s.Content)
	if err != nil {
		return err
	}
	_, err = c.db.Exec(ctx, addStoryQuery,
		int64(s.OwnerID), int32(s.StoryID), int64(s.GlobalID), s.Date, s.ExpireDate, s.ReceiveDate,
		s.Edited, s.Pinned, s.Public, s.ForCloseFriends, s.ForContacts, s.ForSelectedContacts,
		s.NoForwards, contentBytes, s.Caption.Text, []byte{}, s.Interaction.ViewCount, []byte{})
	return err
}

func (c *storyQueries) Delete(ctx context.Context, id stories.StoryFullID) error {
	_, err := c.db.Exec(ctx, deleteStoryQuery, int64(id.OwnerID), int32(id.StoryID))
	return err
}

func (c *storyQueries) GetExpiring(ctx context.Context, before int64, limit int) ([]stories.StoryFullID, error) {
	rows, err := c.db.Query(ctx, getExpiringQuery, before, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []stories.StoryFullID
	for rows.Next() {
		var owner int64
		var storyID int32
		if err := rows.Scan(&owner, &storyID); err != nil {
			return nil, err
		}
		out = append(out, stories.StoryFullID{OwnerID: stories.OwnerID(owner), StoryID: stories.StoryID(storyID)})
	}
	return out, rows.Err()
}

func encodeContent(content stories.StoryContent) ([]byte, error) {
	env, err := contentEnvelopeOf(content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

func decodeContent(data []byte) (stories.StoryContent, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var env contentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return decodeContentEnvelope(env)
}

// contentEnvelopeOf builds the on-disk envelope for content without
// serializing it, so callers (storyQueries and the binlog) can embed it in
// their own JSON shapes.
func contentEnvelopeOf(content stories.StoryContent) (contentEnvelope, error) {
	env := contentEnvelope{Kind: "none"}
	switch c := content.(type) {
	case *stories.PhotoContent:
		if c.Photo != nil {
			env.Kind = "photo"
			env.PhotoID = c.Photo.ID
			env.PhotoAccessHash = c.Photo.AccessHash
			env.PhotoFileReference = c.Photo.FileReference
		}
	case *stories.VideoContent:
		if c.Document != nil {
			env.Kind = "video"
			env.DocumentID = c.Document.ID
			env.DocumentAccessHash = c.Document.AccessHash
			env.DocumentFileReference = c.Document.FileReference
			env.DocumentMimeType = c.Document.MimeType
		}
	}
	return env, nil
}

func decodeContentEnvelope(env contentEnvelope) (stories.StoryContent, error) {
	switch env.Kind {
	case "photo":
		return &stories.PhotoContent{Photo: &tg.Photo{
			ID:            env.PhotoID,
			AccessHash:    env.PhotoAccessHash,
			FileReference: env.PhotoFileReference,
		}}, nil
	case "video":
		return &stories.VideoContent{Document: &tg.Document{
			ID:            env.DocumentID,
			AccessHash:    env.DocumentAccessHash,
			FileReference: env.DocumentFileReference,
			MimeType:      env.DocumentMimeType,
		}}, nil
	default:
		return nil, nil
	}
}
