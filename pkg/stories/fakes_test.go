package stories

import (
	"context"
	"sort"
	"sync"

	"github.com/gotd/td/tg"
	"github.com/rs/zerolog"
)

func discardLogger() zerolog.Logger {
	return zerolog.Nop()
}

// fakeDB is an in-memory stories.StoryDB for tests, avoiding a real sqlite
// dependency the way the send/edit pipeline tests do for the RPC boundary.
type fakeDB struct {
	mu      sync.Mutex
	stories map[StoryFullID]*Story
	active  map[OwnerID]*ActiveStories
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		stories: make(map[StoryFullID]*Story),
		active:  make(map[OwnerID]*ActiveStories),
	}
}

func (f *fakeDB) GetStory(ctx context.Context, id StoryFullID) (*Story, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stories[id], nil
}

func (f *fakeDB) AddStory(ctx context.Context, s *Story) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	f.stories[s.FullID()] = &cp
	return nil
}

func (f *fakeDB) DeleteStory(ctx context.Context, id StoryFullID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.stories, id)
	return nil
}

func (f *fakeDB) GetActiveStories(ctx context.Context, owner OwnerID) (*ActiveStories, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active[owner], nil
}

func (f *fakeDB) AddActiveStories(ctx context.Context, a *ActiveStories) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *a
	f.active[a.OwnerID] = &cp
	return nil
}

func (f *fakeDB) DeleteActiveStories(ctx context.Context, owner OwnerID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.active, owner)
	return nil
}

func (f *fakeDB) GetActiveStoryList(ctx context.Context, list StoryListID, cursor OrderKey, limit int) ([]*ActiveStories, bool, error) {
	return nil, false, nil
}

func (f *fakeDB) GetActiveStoryListState(ctx context.Context, list StoryListID) (string, int, bool, bool, error) {
	return "", 0, false, false, nil
}

func (f *fakeDB) AddActiveStoryListState(ctx context.Context, list StoryListID, state string, count int, hasMore bool) error {
	return nil
}

func (f *fakeDB) GetExpiringStories(ctx context.Context, before int64, limit int) ([]StoryFullID, error) {
	return nil, nil
}

var _ StoryDB = (*fakeDB)(nil)

// fakeBinlog is an in-memory Binlog for tests, real enough to exercise
// restart replay: events survive Append/Rewrite/Erase the same way
// pkg/storiesdb's SQL-backed one does, just without a database underneath.
type fakeBinlog struct {
	mu     sync.Mutex
	nextID int64
	events map[int64]*BinlogEvent
}

func newFakeBinlog() *fakeBinlog {
	return &fakeBinlog{events: make(map[int64]*BinlogEvent)}
}

func (b *fakeBinlog) Append(ctx context.Context, e *BinlogEvent) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	cp := *e
	cp.ID = b.nextID
	b.events[b.nextID] = &cp
	return b.nextID, nil
}

func (b *fakeBinlog) Rewrite(ctx context.Context, id int64, e *BinlogEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.events[id]; !ok {
		return nil
	}
	cp := *e
	cp.ID = id
	b.events[id] = &cp
	return nil
}

func (b *fakeBinlog) Erase(ctx context.Context, id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.events, id)
	return nil
}

func (b *fakeBinlog) ForEach(ctx context.Context, f func(*BinlogEvent) error) error {
	b.mu.Lock()
	ids := make([]int64, 0, len(b.events))
	for id := range b.events {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	events := make([]*BinlogEvent, 0, len(ids))
	for _, id := range ids {
		events = append(events, b.events[id])
	}
	b.mu.Unlock()
	for _, ev := range events {
		if err := f(ev); err != nil {
			return err
		}
	}
	return nil
}

var _ Binlog = (*fakeBinlog)(nil)

// fakeRPC is a scriptable stories.StoriesRPC for tests.
type fakeRPC struct {
	mu sync.Mutex

	sendFunc      func(ctx context.Context, p *PendingStory, inputFile tg.InputFileClass) (*ServerStory, error)
	editFunc      func(ctx context.Context, p *PendingStory, inputFile tg.InputFileClass, caption *FormattedText, editCaption bool) (*ServerStory, error)
	getByIDFunc   func(ctx context.Context, owner OwnerID, ids []StoryID) ([]*ServerStory, error)
	getAllFunc    func(ctx context.Context, list StoryListID, isNext bool, state string) (AllStoriesPage, bool, error)
	readCalls     []struct {
		owner OwnerID
		maxID StoryID
	}
	viewCalls [][]StoryID
}

func (r *fakeRPC) GetAllStories(ctx context.Context, list StoryListID, isNext bool, state string) (AllStoriesPage, bool, error) {
	if r.getAllFunc != nil {
		return r.getAllFunc(ctx, list, isNext, state)
	}
	return AllStoriesPage{}, true, nil
}

func (r *fakeRPC) GetAllReadUserStories(ctx context.Context) (map[OwnerID]StoryID, error) {
	return nil, nil
}

func (r *fakeRPC) ToggleAllStoriesHidden(ctx context.Context, hidden bool) error { return nil }

func (r *fakeRPC) ToggleStoriesHidden(ctx context.Context, owner OwnerID, hidden bool) error {
	return nil
}

func (r *fakeRPC) IncrementStoryViews(ctx context.Context, owner OwnerID, ids []StoryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.viewCalls = append(r.viewCalls, ids)
	return nil
}

func (r *fakeRPC) ReadStories(ctx context.Context, owner OwnerID, maxID StoryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readCalls = append(r.readCalls, struct {
		owner OwnerID
		maxID StoryID
	}{owner, maxID})
	return nil
}

func (r *fakeRPC) GetStoryViewsList(ctx context.Context, id StoryFullID, offset, limit int) ([]Viewer, int, error) {
	return nil, 0, nil
}

func (r *fakeRPC) GetStoriesByID(ctx context.Context, owner OwnerID, ids []StoryID) ([]*ServerStory, error) {
	if r.getByIDFunc != nil {
		return r.getByIDFunc(ctx, owner, ids)
	}
	return nil, nil
}

func (r *fakeRPC) GetPinnedStories(ctx context.Context, owner OwnerID, offset StoryID, limit int) ([]*ServerStory, bool, error) {
	return nil, false, nil
}

func (r *fakeRPC) GetStoriesArchive(ctx context.Context, offset StoryID, limit int) ([]*ServerStory, bool, error) {
	return nil, false, nil
}

func (r *fakeRPC) GetUserStories(ctx context.Context, owner OwnerID) (*ActiveStories, []*ServerStory, error) {
	return nil, nil, nil
}

func (r *fakeRPC) SendStory(ctx context.Context, p *PendingStory, inputFile tg.InputFileClass) (*ServerStory, error) {
	if r.sendFunc != nil {
		return r.sendFunc(ctx, p, inputFile)
	}
	return &ServerStory{Kind: ServerStoryFull, OwnerID: p.OwnerID, StoryID: 1, Date: 1, ExpireDate: 100}, nil
}

func (r *fakeRPC) EditStory(ctx context.Context, p *PendingStory, inputFile tg.InputFileClass, caption *FormattedText, editCaption bool) (*ServerStory, error) {
	if r.editFunc != nil {
		return r.editFunc(ctx, p, inputFile, caption, editCaption)
	}
	return &ServerStory{Kind: ServerStoryFull, OwnerID: p.OwnerID, StoryID: p.StoryID, Date: 1, ExpireDate: 100}, nil
}

func (r *fakeRPC) TogglePinned(ctx context.Context, ids []StoryID, pinned bool) ([]StoryID, error) {
	return ids, nil
}

func (r *fakeRPC) DeleteStories(ctx context.Context, ids []StoryID) ([]StoryID, error) {
	return ids, nil
}

func (r *fakeRPC) GetStoriesViews(ctx context.Context, ids []StoryID) (map[StoryID]InteractionInfo, error) {
	return nil, nil
}

func (r *fakeRPC) Report(ctx context.Context, owner OwnerID, ids []StoryID, reason tg.ReportReasonClass, message string) error {
	return nil
}

func (r *fakeRPC) CanSendStory(ctx context.Context, owner OwnerID) (bool, error) { return true, nil }

func (r *fakeRPC) ExportStoryLink(ctx context.Context, id StoryFullID) (string, error) {
	return "https://t.me/s/test", nil
}

var _ StoriesRPC = (*fakeRPC)(nil)

// fakeUpload is a scriptable FileUploadService.
type fakeUpload struct {
	uploadFunc func(ctx context.Context, content StoryContent, badParts []int) (UploadResult, error)
}

func (u *fakeUpload) Upload(ctx context.Context, content StoryContent, badParts []int) (UploadResult, error) {
	if u.uploadFunc != nil {
		return u.uploadFunc(ctx, content, badParts)
	}
	return UploadResult{}, nil
}

func (u *fakeUpload) DeleteFileReference(ctx context.Context, id FileID) error { return nil }

var _ FileUploadService = (*fakeUpload)(nil)

// fakeDialogs is a scriptable DialogDirectory.
type fakeDialogs struct {
	mu       sync.Mutex
	exists   map[OwnerID]bool
	hidden   map[OwnerID]bool
	contacts map[OwnerID]bool
}

func newFakeDialogs() *fakeDialogs {
	return &fakeDialogs{exists: make(map[OwnerID]bool), hidden: make(map[OwnerID]bool), contacts: make(map[OwnerID]bool)}
}

func (d *fakeDialogs) Exists(ctx context.Context, owner OwnerID) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ok, found := d.exists[owner]
	return found && ok, nil
}

func (d *fakeDialogs) HasReadAccess(ctx context.Context, owner OwnerID) (bool, error) {
	return d.Exists(ctx, owner)
}

func (d *fakeDialogs) IsContact(ctx context.Context, owner OwnerID) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.contacts[owner], nil
}

func (d *fakeDialogs) IsHidden(ctx context.Context, owner OwnerID) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hidden[owner], nil
}

var _ DialogDirectory = (*fakeDialogs)(nil)

// fakeUsers is a minimal UserDirectory.
type fakeUsers struct {
	self    OwnerID
	premium map[OwnerID]bool
}

func (u *fakeUsers) Self(ctx context.Context) OwnerID { return u.self }

func (u *fakeUsers) IsPremium(ctx context.Context, owner OwnerID) (bool, error) {
	return u.premium[owner], nil
}

var _ UserDirectory = (*fakeUsers)(nil)

// newTestEngine builds an Engine wired to fakes, mirroring cmd/storyengine's
// production wiring but with in-memory collaborators.
func newTestEngine(self OwnerID) (*Engine, *fakeDB, *fakeRPC) {
	db := newFakeDB()
	rpc := &fakeRPC{}
	e := NewEngine(Deps{
		DB:      db,
		Binlog:  newFakeBinlog(),
		RPC:     rpc,
		Upload:  &fakeUpload{},
		Dialogs: newFakeDialogs(),
		Users:   &fakeUsers{self: self, premium: make(map[OwnerID]bool)},
		Options: StaticOptionSource{Options: DefaultTunableOptions()},
	}, self, discardLogger())
	return e, db, rpc
}
