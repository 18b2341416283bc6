package storiesdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"go.mau.fi/util/dbutil"

	"go.mau.fi/telegram-stories/pkg/stories"
)

type scanner interface {
	Scan(dest ...any) error
}

type activeQueries struct {
	db *dbutil.Database
}

const (
	getActiveQuery = `
		SELECT story_ids, max_read_story_id, list_id, private_order, public_order
		FROM active_stories WHERE owner_id=$1
	`
	addActiveQuery = `
		INSERT INTO active_stories (owner_id, story_ids, max_read_story_id, list_id, private_order, public_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner_id) DO UPDATE SET
			story_ids=excluded.story_ids, max_read_story_id=excluded.max_read_story_id,
			list_id=excluded.list_id, private_order=excluded.private_order, public_order=excluded.public_order
	`
	deleteActiveQuery = `DELETE FROM active_stories WHERE owner_id=$1`

	listPageQuery = `
		SELECT owner_id, story_ids, max_read_story_id, list_id, private_order, public_order
		FROM active_stories
		WHERE list_id=$1 AND (private_order, owner_id) < ($2, $3)
		ORDER BY private_order DESC, owner_id DESC
		LIMIT $4
	`

	getListStateQuery = `SELECT server_state, server_total_count, server_has_more FROM story_list_state WHERE list_id=$1`
	addListStateQuery = `
		INSERT INTO story_list_state (list_id, server_state, server_total_count, server_has_more)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (list_id) DO UPDATE SET
			server_state=excluded.server_state, server_total_count=excluded.server_total_count,
			server_has_more=excluded.server_has_more
	`
)

func (c *activeQueries) Get(ctx context.Context, owner stories.OwnerID) (*stories.ActiveStories, error) {
	row := c.db.QueryRow(ctx, getActiveQuery, int64(owner))
	a, err := scanActive(row, owner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

func (c *activeQueries) Add(ctx context.Context, a *stories.ActiveStories) error {
	idsJSON, err := json.Marshal(a.StoryIDs)
	if err != nil {
		return err
	}
	_, err = c.db.Exec(ctx, addActiveQuery, int64(a.OwnerID), idsJSON, int32(a.MaxReadStoryID),
		int(a.ListID), int64(a.PrivateOrder), int64(a.PublicOrder))
	return err
}

func (c *activeQueries) Delete(ctx context.Context, owner stories.OwnerID) error {
	_, err := c.db.Exec(ctx, deleteActiveQuery, int64(owner))
	return err
}

func (c *activeQueries) ListPage(ctx context.Context, list stories.StoryListID, cursor stories.OrderKey, limit int) ([]*stories.ActiveStories, bool, error) {
	rows, err := c.db.Query(ctx, listPageQuery, int(list), int64(cursor.Order), int64(cursor.OwnerID), limit+1)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()
	var out []*stories.ActiveStories
	for rows.Next() {
		a, err := scanActiveCols(rows)
		if err != nil {
			return nil, false, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	hasMore := len(out) > limit
	if hasMore {
		out = out[:limit]
	}
	return out, hasMore, nil
}

func scanActive(row scanner, owner stories.OwnerID) (*stories.ActiveStories, error) {
	var idsJSON []byte
	var maxRead int32
	var listID int
	var privateOrder, publicOrder int64
	if err := row.Scan(&idsJSON, &maxRead, &listID, &privateOrder, &publicOrder); err != nil {
		return nil, err
	}
	var ids []stories.StoryID
	if len(idsJSON) > 0 {
		if err := json.Unmarshal(idsJSON, &ids); err != nil {
			return nil, err
		}
	}
	return &stories.ActiveStories{
		OwnerID:        owner,
		StoryIDs:       ids,
		MaxReadStoryID: stories.StoryID(maxRead),
		ListID:         stories.StoryListID(listID),
		PrivateOrder:   uint64(privateOrder),
		PublicOrder:    uint64(publicOrder),
	}, nil
}

func scanActiveCols(rows scanner) (*stories.ActiveStories, error) {
	var owner int64
	var idsJSON []byte
	var maxRead int32
	var listID int
	var privateOrder, publicOrder int64
	if err := rows.Scan(&owner, &idsJSON, &maxRead, &listID, &privateOrder, &publicOrder); err != nil {
		return nil, err
	}
	var ids []stories.StoryID
	if len(idsJSON) > 0 {
		if err := json.Unmarshal(idsJSON, &ids); err != nil {
			return nil, err
		}
	}
	return &stories.ActiveStories{
		OwnerID:        stories.OwnerID(owner),
		StoryIDs:       ids,
		MaxReadStoryID: stories.StoryID(maxRead),
		ListID:         stories.StoryListID(listID),
		PrivateOrder:   uint64(privateOrder),
		PublicOrder:    uint64(publicOrder),
	}, nil
}

func (c *activeQueries) GetListState(ctx context.Context, list stories.StoryListID) (state string, count int, hasMore bool, found bool, err error) {
	row := c.db.QueryRow(ctx, getListStateQuery, int(list))
	err = row.Scan(&state, &count, &hasMore)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, false, false, nil
	} else if err != nil {
		return "", 0, false, false, err
	}
	return state, count, hasMore, true, nil
}

func (c *activeQueries) AddListState(ctx context.Context, list stories.StoryListID, state string, count int, hasMore bool) error {
	_, err := c.db.Exec(ctx, addListStateQuery, int(list), state, count, hasMore)
	return err
}
