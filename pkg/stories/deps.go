package stories

import (
	"context"

	"github.com/gotd/td/tg"
)

// StoryDB is the async story database described in spec.md §4.8. A
// production implementation lives in pkg/storiesdb; it is injected here so
// the core never depends on a concrete SQL driver.
type StoryDB interface {
	GetStory(ctx context.Context, id StoryFullID) (*Story, error)
	AddStory(ctx context.Context, s *Story) error
	DeleteStory(ctx context.Context, id StoryFullID) error

	GetActiveStories(ctx context.Context, owner OwnerID) (*ActiveStories, error)
	AddActiveStories(ctx context.Context, a *ActiveStories) error
	DeleteActiveStories(ctx context.Context, owner OwnerID) error

	// GetActiveStoryList reads up to limit rows starting after the given
	// cursor, ordered by (order, owner) ascending from the end (i.e. most
	// recently surfaced first) — see Engine.LoadActiveStoryList.
	GetActiveStoryList(ctx context.Context, list StoryListID, cursor OrderKey, limit int) ([]*ActiveStories, bool, error)

	GetActiveStoryListState(ctx context.Context, list StoryListID) (state string, count int, hasMore bool, found bool, err error)
	AddActiveStoryListState(ctx context.Context, list StoryListID, state string, count int, hasMore bool) error

	// GetExpiringStories returns up to limit foreign non-pinned stories
	// whose expire_date is before the given time, for the background sweep
	// (spec.md §4.8).
	GetExpiringStories(ctx context.Context, before int64, limit int) ([]StoryFullID, error)
}

// BinlogEventKind names the durable event kinds from spec.md §6.
type BinlogEventKind int

const (
	BinlogDeleteStoryOnServer BinlogEventKind = iota + 1
	BinlogReadStoriesOnServer
	BinlogLoadDialogExpiringStories
	BinlogSendStory
	BinlogEditStory
)

// BinlogEvent is one durably-logged pending user action (spec.md §6).
type BinlogEvent struct {
	ID   int64
	Kind BinlogEventKind

	// DeleteStoryOnServer / ReadStoriesOnServer / LoadDialogExpiringStories
	StoryFullID StoryFullID
	Owner       OwnerID
	MaxID       StoryID

	// SendStory / EditStory
	Pending     *PendingStory
	EditCaption bool
	Caption     *FormattedText
}

// Binlog is the transactional append/rewrite/erase log used only for
// user-initiated long-running operations, so they survive process restarts
// (spec.md §4.7, §4.8).
type Binlog interface {
	Append(ctx context.Context, e *BinlogEvent) (id int64, err error)
	Rewrite(ctx context.Context, id int64, e *BinlogEvent) error
	Erase(ctx context.Context, id int64) error
	ForEach(ctx context.Context, f func(*BinlogEvent) error) error
}

// AllStoriesPage is the dispatched result of one stories.getAllStories page
// (spec.md §6): the active-story markers plus any inline story content the
// server bundled with them, ready for the store's normal ingestion path.
type AllStoriesPage struct {
	Active     []*ActiveStories
	Stories    []*ServerStory
	NextState  string
	HasMore    bool
}

// StoriesRPC is the set of server RPC contracts consumed, named exactly as
// in spec.md §6. Implementations wrap a real github.com/gotd/td client
// (see pkg/storiesrpc) and dispatch raw TL responses into the domain types
// below before returning, so the core engine never touches TL constructors
// directly.
type StoriesRPC interface {
	GetAllStories(ctx context.Context, list StoryListID, isNext bool, state string) (page AllStoriesPage, notModified bool, err error)
	GetAllReadUserStories(ctx context.Context) (map[OwnerID]StoryID, error)
	ToggleAllStoriesHidden(ctx context.Context, hidden bool) error
	ToggleStoriesHidden(ctx context.Context, owner OwnerID, hidden bool) error
	IncrementStoryViews(ctx context.Context, owner OwnerID, ids []StoryID) error
	ReadStories(ctx context.Context, owner OwnerID, maxID StoryID) error
	GetStoryViewsList(ctx context.Context, id StoryFullID, offset, limit int) (viewers []Viewer, totalCount int, err error)
	GetStoriesByID(ctx context.Context, owner OwnerID, ids []StoryID) ([]*ServerStory, error)
	GetPinnedStories(ctx context.Context, owner OwnerID, offset StoryID, limit int) (stories []*ServerStory, hasMore bool, err error)
	GetStoriesArchive(ctx context.Context, offset StoryID, limit int) (stories []*ServerStory, hasMore bool, err error)
	GetUserStories(ctx context.Context, owner OwnerID) (active *ActiveStories, stories []*ServerStory, err error)
	SendStory(ctx context.Context, p *PendingStory, inputFile tg.InputFileClass) (*ServerStory, error)
	EditStory(ctx context.Context, p *PendingStory, inputFile tg.InputFileClass, caption *FormattedText, editCaption bool) (*ServerStory, error)
	TogglePinned(ctx context.Context, ids []StoryID, pinned bool) (changed []StoryID, err error)
	DeleteStories(ctx context.Context, ids []StoryID) (deleted []StoryID, err error)
	GetStoriesViews(ctx context.Context, ids []StoryID) (map[StoryID]InteractionInfo, error)
	Report(ctx context.Context, owner OwnerID, ids []StoryID, reason tg.ReportReasonClass, message string) error

	// CanSendStory and ExportStoryLink are [SUPPLEMENT]ed from Telegram's
	// real schema (see SPEC_FULL.md DOMAIN STACK).
	CanSendStory(ctx context.Context, owner OwnerID) (bool, error)
	ExportStoryLink(ctx context.Context, id StoryFullID) (string, error)
}

// UploadResult is what the file upload service hands back once an upload
// completes (spec.md §4.7 step 4).
type UploadResult struct {
	InputFile tg.InputFileClass
	FileID    FileID
}

// FileUploadService is the external upload collaborator (spec.md §1, §4.7).
type FileUploadService interface {
	// Upload uploads the primary file of content and returns once it is
	// done; the send pipeline calls it off the executor. After a restart it
	// is called again for sends and edits restored by binlog replay.
	// badParts marks specific parts for retry.
	Upload(ctx context.Context, content StoryContent, badParts []int) (UploadResult, error)

	// DeleteFileReference drops an expired file reference so a subsequent
	// Upload will be forced to refetch it from the file service (§4.7 step
	// 7, "reupload once").
	DeleteFileReference(ctx context.Context, id FileID) error
}

// DialogDirectory resolves whether a dialog (chat with an owner) exists and
// is readable, an out-of-scope external collaborator enumerated for entry
// point validation (spec.md §6).
type DialogDirectory interface {
	Exists(ctx context.Context, owner OwnerID) (bool, error)
	HasReadAccess(ctx context.Context, owner OwnerID) (bool, error)
	IsContact(ctx context.Context, owner OwnerID) (bool, error)
	IsHidden(ctx context.Context, owner OwnerID) (bool, error)
}

// UserDirectory resolves per-user flags needed for list ordering (self,
// premium) — out of scope external collaborator (spec.md §6).
type UserDirectory interface {
	Self(ctx context.Context) OwnerID
	IsPremium(ctx context.Context, owner OwnerID) (bool, error)
}

// FileReferenceNotifier is notified when a story's file identifier set
// changes, so the file service's refresh paths keep working (spec.md §4.2
// step 7, §5 "Resource policy").
type FileReferenceNotifier interface {
	OnFileIDsChanged(ctx context.Context, id StoryFullID, old, new []FileID)
}

// MessageCrossReferenceNotifier is told to re-render any message that
// embeds a story whenever that story changes (spec.md §3 "Derived
// indices").
type MessageCrossReferenceNotifier interface {
	OnStoryChanged(ctx context.Context, id StoryFullID)
}

// Deps bundles every external collaborator the engine needs. All fields
// are required except Messages/FileRefs, which default to no-ops.
type Deps struct {
	DB       StoryDB
	Binlog   Binlog
	RPC      StoriesRPC
	Upload   FileUploadService
	Dialogs  DialogDirectory
	Users    UserDirectory
	Options  OptionSource
	FileRefs FileReferenceNotifier
	Messages MessageCrossReferenceNotifier
}
