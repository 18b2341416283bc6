package stories

// UpdateKind names one of the four outbound update shapes emitted by the
// Update Publisher (C9, spec.md §4.9).
type UpdateKind int

const (
	UpdateStory UpdateKind = iota
	UpdateStoryDeleted
	UpdateChatActiveStories
	UpdateStoryListChatCount
)

// Update is a diff-based outbound update. Exactly one of the typed fields
// is meaningful, selected by Kind.
type Update struct {
	Kind UpdateKind

	Story *Story // UpdateStory

	DeletedOwner OwnerID // UpdateStoryDeleted
	DeletedID    StoryID

	ActiveOwner OwnerID        // UpdateChatActiveStories
	Active      *ActiveStories // nil => owner has no active stories anymore

	List      StoryListID // UpdateStoryListChatCount
	ListCount int
}

// Subscriber receives published updates. The engine calls it synchronously
// from its executor; subscribers must not block.
type Subscriber func(Update)

// publisher is the Update Publisher (C9). It fans out updates to
// subscribers and is the only place UpdateSent gets set to true, so that
// subsequent changes to the same story know they must re-publish
// (spec.md §4.9, "Each entity is emitted at most once per logical change").
type publisher struct {
	subs []Subscriber
}

func newPublisher() *publisher {
	return &publisher{}
}

func (p *publisher) Subscribe(s Subscriber) {
	p.subs = append(p.subs, s)
}

func (p *publisher) emit(u Update) {
	for _, s := range p.subs {
		s(u)
	}
}

// publishStory emits updateStory(story) and marks it sent.
func (p *publisher) publishStory(s *Story) {
	s.UpdateSent = true
	p.emit(Update{Kind: UpdateStory, Story: s})
}

// publishStoryDeleted emits updateStoryDeleted(owner, id), but only if the
// story had previously been published (spec.md §4.2 "Deletion").
func (p *publisher) publishStoryDeleted(wasSent bool, owner OwnerID, id StoryID) {
	if !wasSent {
		return
	}
	p.emit(Update{Kind: UpdateStoryDeleted, DeletedOwner: owner, DeletedID: id})
}

// publishActiveStories emits updateChatActiveStories(owner, active|null).
func (p *publisher) publishActiveStories(owner OwnerID, active *ActiveStories) {
	p.emit(Update{Kind: UpdateChatActiveStories, ActiveOwner: owner, Active: active})
}

// publishListCount emits updateStoryListChatCount(list, count).
func (p *publisher) publishListCount(list StoryListID, count int) {
	p.emit(Update{Kind: UpdateStoryListChatCount, List: list, ListCount: count})
}
