// Package storiesdb is the persistence adapter (C8): it implements
// stories.StoryDB and stories.Binlog on top of go.mau.fi/util/dbutil, the
// same database toolkit the bridge's own account store uses.
package storiesdb

import (
	"context"

	"go.mau.fi/util/dbutil"

	"go.mau.fi/telegram-stories/pkg/stories"
	"go.mau.fi/telegram-stories/pkg/storiesdb/upgrades"
)

var (
	_ stories.StoryDB = (*Container)(nil)
	_ stories.Binlog  = (*Container)(nil)
)

// Container owns the database handle and exposes the query helpers used by
// the engine's StoryDB/Binlog implementations.
type Container struct {
	db *dbutil.Database

	story  *storyQueries
	active *activeQueries
	binlog *binlogQueries
}

// New wraps an already-configured dbutil.Database (see cmd/storyengine) and
// scopes it to the story schema.
func New(db *dbutil.Database, log dbutil.DatabaseLogger) *Container {
	scoped := db.Child("stories_version", upgrades.Table, log)
	c := &Container{db: scoped}
	c.story = &storyQueries{db: scoped}
	c.active = &activeQueries{db: scoped}
	c.binlog = &binlogQueries{db: scoped}
	return c
}

// Upgrade runs any pending schema migrations.
func (c *Container) Upgrade(ctx context.Context) error {
	return c.db.Upgrade(ctx)
}

func (c *Container) GetStory(ctx context.Context, id stories.StoryFullID) (*stories.Story, error) {
	return c.story.Get(ctx, id)
}

func (c *Container) AddStory(ctx context.Context, s *stories.Story) error {
	return c.story.Add(ctx, s)
}

func (c *Container) DeleteStory(ctx context.Context, id stories.StoryFullID) error {
	return c.story.Delete(ctx, id)
}

func (c *Container) GetActiveStories(ctx context.Context, owner stories.OwnerID) (*stories.ActiveStories, error) {
	return c.active.Get(ctx, owner)
}

func (c *Container) AddActiveStories(ctx context.Context, a *stories.ActiveStories) error {
	return c.active.Add(ctx, a)
}

func (c *Container) DeleteActiveStories(ctx context.Context, owner stories.OwnerID) error {
	return c.active.Delete(ctx, owner)
}

func (c *Container) GetActiveStoryList(ctx context.Context, list stories.StoryListID, cursor stories.OrderKey, limit int) ([]*stories.ActiveStories, bool, error) {
	return c.active.ListPage(ctx, list, cursor, limit)
}

func (c *Container) GetActiveStoryListState(ctx context.Context, list stories.StoryListID) (string, int, bool, bool, error) {
	return c.active.GetListState(ctx, list)
}

func (c *Container) AddActiveStoryListState(ctx context.Context, list stories.StoryListID, state string, count int, hasMore bool) error {
	return c.active.AddListState(ctx, list, state, count, hasMore)
}

func (c *Container) GetExpiringStories(ctx context.Context, before int64, limit int) ([]stories.StoryFullID, error) {
	return c.story.GetExpiring(ctx, before, limit)
}

func (c *Container) Append(ctx context.Context, e *stories.BinlogEvent) (int64, error) {
	return c.binlog.Append(ctx, e)
}

func (c *Container) Rewrite(ctx context.Context, id int64, e *stories.BinlogEvent) error {
	return c.binlog.Rewrite(ctx, id, e)
}

func (c *Container) Erase(ctx context.Context, id int64) error {
	return c.binlog.Erase(ctx, id)
}

func (c *Container) ForEach(ctx context.Context, f func(*stories.BinlogEvent) error) error {
	return c.binlog.ForEach(ctx, f)
}
