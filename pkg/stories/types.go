// Package stories implements the client-side story subsystem: the
// in-memory model of ephemeral media posts owned by the local user and the
// users it follows, the ordered per-owner and global lists those posts
// surface in, and the send/edit pipeline that drives them through an
// external upload service.
package stories

import (
	"fmt"

	"github.com/gotd/td/tg"
)

// OwnerID identifies the user a story belongs to.
type OwnerID int64

// StoryID is an owner-scoped story identifier. Positive values are
// server-assigned; non-positive values mark a client-local draft that has
// not yet been accepted by the server.
type StoryID int32

// IsLocalDraft reports whether id has not yet been assigned by the server.
func (id StoryID) IsLocalDraft() bool { return id <= 0 }

// GlobalID is a monotone, session-scoped identifier assigned to every story
// on first registration of a StoryFullID. It is the key used by every timer
// set in the timer wheel (C4).
type GlobalID int64

// StoryFullID is the full identity of a story: (owner, story_id).
type StoryFullID struct {
	OwnerID OwnerID
	StoryID StoryID
}

func (id StoryFullID) String() string {
	return fmt.Sprintf("%d/%d", id.OwnerID, id.StoryID)
}

// FileID identifies a media file referenced by a story's content, in the
// numbering scheme of the external file/media service (out of scope here;
// see spec.md §1).
type FileID int64

// FileSourceID is the key the file service uses to resolve/refresh a file
// reference back to the story that owns it (§5 "Resource policy").
type FileSourceID string

// StoryContent is a tagged variant over story media kinds. It is opaque to
// the core except for its constituent file identifiers, which the core
// needs in order to notify the file service when a story's file set
// changes (§4.2 step 7).
type StoryContent interface {
	// FileIDs returns every file identifier referenced by this content
	// (e.g. the main asset and any thumbnail).
	FileIDs() []FileID
	contentKind() string
}

// PhotoContent is story content backed by a single Telegram photo.
type PhotoContent struct {
	Photo *tg.Photo
}

func (c *PhotoContent) contentKind() string { return "photo" }

func (c *PhotoContent) FileIDs() []FileID {
	if c == nil || c.Photo == nil {
		return nil
	}
	return []FileID{FileID(c.Photo.GetID())}
}

// VideoContent is story content backed by a single Telegram document
// (Telegram represents story videos as documents, same as chat videos).
type VideoContent struct {
	Document *tg.Document
}

func (c *VideoContent) contentKind() string { return "video" }

func (c *VideoContent) FileIDs() []FileID {
	if c == nil || c.Document == nil {
		return nil
	}
	ids := []FileID{FileID(c.Document.GetID())}
	for _, thumb := range c.Document.Thumbs {
		if sized, ok := thumb.(*tg.PhotoSize); ok {
			_ = sized // thumbnails don't carry a separate file id in this scheme
		}
	}
	return ids
}

// mergeContent implements the content-module field-wise merge referenced in
// spec.md §4.2 step 6: if the incoming type differs from the existing one
// (or there was none), it replaces outright; otherwise it merges
// field-by-field and reports whether anything observable changed versus
// whether only a re-save is warranted.
func mergeContent(existing, incoming StoryContent) (merged StoryContent, changed, needSave bool) {
	if existing == nil {
		return incoming, incoming != nil, false
	}
	if incoming == nil {
		return existing, false, false
	}
	if existing.contentKind() != incoming.contentKind() {
		return incoming, true, false
	}
	switch e := existing.(type) {
	case *PhotoContent:
		in := incoming.(*PhotoContent)
		if e.Photo.GetID() != in.Photo.GetID() {
			return in, true, false
		}
		refChanged := string(e.Photo.GetFileReference()) != string(in.Photo.GetFileReference())
		e.Photo = in.Photo
		return e, false, refChanged
	case *VideoContent:
		in := incoming.(*VideoContent)
		if e.Document.GetID() != in.Document.GetID() {
			return in, true, false
		}
		refChanged := string(e.Document.GetFileReference()) != string(in.Document.GetFileReference())
		e.Document = in.Document
		return e, false, refChanged
	default:
		return incoming, true, false
	}
}

// FormattedText is opaque formatted text plus its entity spans; the entity
// parser itself is an out-of-scope external collaborator (spec.md §1).
type FormattedText struct {
	Text     string
	Entities []tg.MessageEntityClass
}

// InteractionInfo carries the story's view count and up-to-three recent
// viewers. A zero value means "no interaction info available", not "zero
// views".
type InteractionInfo struct {
	Set           bool
	ViewCount     int
	RecentViewers []OwnerID
}

// Story is the authoritative record for one post.
type Story struct {
	OwnerID OwnerID
	StoryID StoryID

	Date        int64 // authoring time, unix seconds
	ExpireDate  int64 // server-given expiry, unix seconds
	ReceiveDate int64 // when this client last heard from the server about it

	Edited              bool
	Pinned              bool
	Public              bool
	ForCloseFriends     bool
	ForContacts         bool
	ForSelectedContacts bool
	NoForwards          bool

	Content StoryContent // nil => stub: known to exist, not yet loaded
	Caption FormattedText

	PrivacyRules []tg.PrivacyRuleClass

	Interaction InteractionInfo

	GlobalID GlobalID

	// UpdateSent is true once at least one external update referring to
	// this story has been emitted (C9).
	UpdateSent bool

	// CanGetViewers mirrors whether the viewer window is still open; it is
	// recomputed by the viewers_expire timer (§4.4) and surfaces in the
	// outbound update so other clients know whether to bother asking.
	CanGetViewers bool
}

// FullID returns the story's (owner, story_id) identity.
func (s *Story) FullID() StoryFullID {
	return StoryFullID{OwnerID: s.OwnerID, StoryID: s.StoryID}
}

// IsStub reports whether this story is known to exist but has no content
// loaded yet (spec.md §3 invariants).
func (s *Story) IsStub() bool { return s.Content == nil }

// Validate enforces the §3 invariants: expire_date > date > 0.
func (s *Story) Validate() error {
	if s.Date <= 0 {
		return fmt.Errorf("story date must be positive, got %d", s.Date)
	}
	if s.ExpireDate <= s.Date {
		return fmt.Errorf("story expire_date (%d) must be greater than date (%d)", s.ExpireDate, s.Date)
	}
	return nil
}

// IsOwned reports whether the given viewer is the owner of this story.
func (s *Story) IsOwned(self OwnerID) bool { return s.OwnerID == self }

// StoryListID names one of the two globally-ordered owner lists.
type StoryListID int

const (
	// StoryListNone means the owner does not currently surface in either
	// global list (e.g. not followed, or not yet materialised).
	StoryListNone StoryListID = iota
	StoryListMain
	StoryListArchive
)

func (l StoryListID) String() string {
	switch l {
	case StoryListMain:
		return "main"
	case StoryListArchive:
		return "archive"
	default:
		return "none"
	}
}

// ActiveStories is the non-empty list of story ids currently active for one
// owner, plus the bookkeeping needed to place that owner in the global
// lists (§3).
type ActiveStories struct {
	OwnerID        OwnerID
	StoryIDs       []StoryID // ascending
	MaxReadStoryID StoryID

	ListID       StoryListID
	PrivateOrder uint64
	PublicOrder  uint64
}

// LastStoryID returns the most recently posted (highest) active story id.
func (a *ActiveStories) LastStoryID() StoryID {
	if len(a.StoryIDs) == 0 {
		return 0
	}
	return a.StoryIDs[len(a.StoryIDs)-1]
}

// OrderKey is the (order, owner) cursor used to place an owner within a
// StoryList's sorted set and to compare against list_last_story_date.
type OrderKey struct {
	Order   uint64
	OwnerID OwnerID
}

// Less gives OrderKey its total order: by Order ascending, owner ascending
// as the tiebreaker (spec.md §4.3 "Sorted cursor").
func (k OrderKey) Less(other OrderKey) bool {
	if k.Order != other.Order {
		return k.Order < other.Order
	}
	return k.OwnerID < other.OwnerID
}

// StoryList holds the state of one of {Main, Archive}.
type StoryList struct {
	ID StoryListID

	ServerState      string
	ServerTotalCount int
	ServerHasMore    bool

	// OrderedStories is the sorted set of (private_order, owner_id) pairs
	// currently materialised in this list, ascending by OrderKey.
	OrderedStories []OrderKey

	// ListLastStoryDate is the greatest (order, owner) cursor materialised
	// so far; +Inf is represented by MaxOrderKey once pagination is
	// exhausted (spec.md §4.3 step 3).
	ListLastStoryDate OrderKey

	DatabaseHasMore bool

	SentTotalCount int
}

// MaxOrderKey represents "+infinity" for ListLastStoryDate once a list is
// fully materialised.
var MaxOrderKey = OrderKey{Order: ^uint64(0), OwnerID: ^OwnerID(0) >> 1}

// IsFullyMaterialised reports whether pagination of this list has reached
// the end (spec.md §4.3 step 3, "finalize").
func (l *StoryList) IsFullyMaterialised() bool {
	return l.ListLastStoryDate == MaxOrderKey
}

// PendingStory is an in-flight send or edit (new content path) awaiting
// upload + server acceptance (§3, §4.7).
type PendingStory struct {
	OwnerID OwnerID
	StoryID StoryID // 0 for new, non-zero for edits carrying new content

	SendNum       uint32
	RandomID      int64
	Story         *Story
	LogEventID    int64
	WasReuploaded bool
	UploadRetried bool // set once a "missing file parts" retry has been attempted

	result chan sendResult
}

// IsEdit reports whether this pending operation edits an existing story
// rather than creating a new one.
func (p *PendingStory) IsEdit() bool { return p.StoryID != 0 }

// BeingEditedStory is the in-flight edit state for a server-known story
// (§3).
type BeingEditedStory struct {
	OwnerID OwnerID
	StoryID StoryID

	NewContent    StoryContent
	NewCaption    *FormattedText
	EditCaption   bool
	LogEventID    int64
	EditGenerated int64 // random_id of the most recently requested edit

	pending []*editPromise
}

type editPromise struct {
	resolve func(*Story, error)
}
