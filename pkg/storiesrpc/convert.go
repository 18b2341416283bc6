package storiesrpc

import (
	"strconv"

	"github.com/gotd/td/tg"

	"go.mau.fi/telegram-stories/pkg/stories"
)

// dispatchPeerStories converts one stories.PeerStories into the
// ActiveStories summary plus the individual ServerStory records it carries,
// the same "dispatch the union, build the domain record" shape
// pkg/connector/directdownload.go uses for message media.
func dispatchPeerStories(ps *tg.PeerStories) (*stories.ActiveStories, []*stories.ServerStory) {
	owner, ok := peerOwnerID(ps.Peer)
	if !ok {
		return nil, nil
	}
	active := &stories.ActiveStories{
		OwnerID:        owner,
		MaxReadStoryID: stories.StoryID(ps.MaxReadID),
	}
	recs := make([]*stories.ServerStory, 0, len(ps.Stories))
	for _, item := range ps.Stories {
		rec := dispatchStoryItem(owner, item)
		if rec == nil {
			continue
		}
		recs = append(recs, rec)
		if rec.Kind != stories.ServerStoryDeleted {
			active.StoryIDs = append(active.StoryIDs, rec.StoryID)
		}
	}
	return active, recs
}

func dispatchStoryItems(owner stories.OwnerID, items []tg.StoryItemClass) []*stories.ServerStory {
	recs := make([]*stories.ServerStory, 0, len(items))
	for _, item := range items {
		if rec := dispatchStoryItem(owner, item); rec != nil {
			recs = append(recs, rec)
		}
	}
	return recs
}

// dispatchStoryItem converts one of the server's three story item variants
// into a ServerStory, per spec.md §4.2 step 1 / §9 "Dispatch over RPC
// variants".
func dispatchStoryItem(owner stories.OwnerID, item tg.StoryItemClass) *stories.ServerStory {
	switch v := item.(type) {
	case *tg.StoryItemDeleted:
		return &stories.ServerStory{Kind: stories.ServerStoryDeleted, OwnerID: owner, StoryID: stories.StoryID(v.ID)}
	case *tg.StoryItemSkipped:
		return &stories.ServerStory{
			Kind:            stories.ServerStorySkipped,
			OwnerID:         owner,
			StoryID:         stories.StoryID(v.ID),
			Date:            int64(v.Date),
			ExpireDate:      int64(v.ExpireDate),
			ForCloseFriends: v.CloseFriends,
		}
	case *tg.StoryItem:
		content, _ := mediaToContent(v.Media)
		rec := &stories.ServerStory{
			Kind:                stories.ServerStoryFull,
			OwnerID:             owner,
			StoryID:             stories.StoryID(v.ID),
			Date:                int64(v.Date),
			ExpireDate:          int64(v.ExpireDate),
			ForCloseFriends:     v.CloseFriends,
			Edited:              v.Edited,
			Pinned:              v.Pinned,
			Public:              v.Public,
			ForContacts:         v.ContactsOnly,
			ForSelectedContacts: v.SelectedContacts,
			NoForwards:          v.Noforwards,
			Content:             content,
			Caption:             stories.FormattedText{Text: v.Caption, Entities: v.Entities},
		}
		for _, rule := range v.Privacy {
			rec.PrivacyRules = append(rec.PrivacyRules, rule)
		}
		if views, ok := v.GetViews(); ok {
			rec.Interaction = stories.InteractionInfo{
				Set:       true,
				ViewCount: views.ViewsCount,
			}
			for _, id := range views.RecentViewers {
				rec.Interaction.RecentViewers = append(rec.Interaction.RecentViewers, stories.OwnerID(id))
			}
		}
		return rec
	default:
		return nil
	}
}

// mediaToContent extracts the story's photo/document content from the
// message-media union the server wraps it in, following the
// *tg.MessageMediaPhoto / *tg.MessageMediaDocument dispatch in
// pkg/connector/directdownload.go.
func mediaToContent(media tg.MessageMediaClass) (stories.StoryContent, bool) {
	switch m := media.(type) {
	case *tg.MessageMediaPhoto:
		photo, ok := m.Photo.(*tg.Photo)
		if !ok {
			return nil, false
		}
		return &stories.PhotoContent{Photo: photo}, true
	case *tg.MessageMediaDocument:
		doc, ok := m.Document.(*tg.Document)
		if !ok {
			return nil, false
		}
		return &stories.VideoContent{Document: doc}, true
	default:
		return nil, false
	}
}

// contentToInputMedia builds the outbound InputMedia for a send/edit request
// from the already-uploaded file plus the content's declared kind. Only the
// freshly uploaded file matters here; the rest of the content's fields are
// populated by the server's response, not echoed back to it.
func contentToInputMedia(content stories.StoryContent, inputFile tg.InputFileClass) (tg.InputMediaClass, error) {
	switch content.(type) {
	case *stories.VideoContent:
		return &tg.InputMediaUploadedDocument{
			File:     inputFile,
			MimeType: "video/mp4",
			Attributes: []tg.DocumentAttributeClass{
				&tg.DocumentAttributeVideo{SupportsStreaming: true},
			},
		}, nil
	default:
		return &tg.InputMediaUploadedPhoto{File: inputFile}, nil
	}
}

// findStoryUpdate scans an Updates response for the single updateStory
// carrying the freshly sent/edited item, the same "walk Updates.Updates
// looking for the relevant variant" idiom pkg/connector/client.go uses for
// *tg.Updates/*tg.UpdatesCombined dispatch.
func findStoryUpdate(updates tg.UpdatesClass) *stories.ServerStory {
	var list []tg.UpdateClass
	switch u := updates.(type) {
	case *tg.Updates:
		list = u.Updates
	case *tg.UpdatesCombined:
		list = u.Updates
	default:
		return nil
	}
	for _, upd := range list {
		us, ok := upd.(*tg.UpdateStory)
		if !ok {
			continue
		}
		owner, ok := peerOwnerID(us.Peer)
		if !ok {
			continue
		}
		return dispatchStoryItem(owner, us.Story)
	}
	return nil
}

func peerOwnerID(peer tg.PeerClass) (stories.OwnerID, bool) {
	switch p := peer.(type) {
	case *tg.PeerUser:
		return stories.OwnerID(p.UserID), true
	case *tg.PeerChat:
		return stories.OwnerID(p.ChatID), true
	case *tg.PeerChannel:
		return stories.OwnerID(p.ChannelID), true
	default:
		return 0, false
	}
}

func storyIDsToInts(ids []stories.StoryID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

func intsToStoryIDs(ints []int) []stories.StoryID {
	out := make([]stories.StoryID, len(ints))
	for i, v := range ints {
		out[i] = stories.StoryID(v)
	}
	return out
}

// encodeViewsOffset turns the caller's 0-based page offset into the
// cursor-string the server's StoriesGetStoryViewsList expects; this client
// only ever drives it as a plain offset, never resuming from a server
// cursor.
func encodeViewsOffset(offset int) string {
	if offset <= 0 {
		return ""
	}
	return strconv.Itoa(offset)
}
