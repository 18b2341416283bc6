// Package storiesrpc adapts a real github.com/gotd/td client to the
// stories.StoriesRPC contract, dispatching each TL response into the
// engine's own domain types the same way pkg/connector dispatches update
// and history responses into bridge-native ones.
package storiesrpc

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"

	"go.mau.fi/telegram-stories/pkg/stories"
	"go.mau.fi/telegram-stories/pkg/storiesrpc/humanise"
)

// wrapErr attaches a human-readable description of a Telegram RPC error
// (FLOOD_WAIT, PEER_ID_INVALID, and friends) without losing the original
// error for errors.Is/As callers further up the stack.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", humanise.Error(err), err)
}

// API is the subset of *tg.Client this package needs; production code
// passes client.API() from a *telegram.Client the same way pkg/connector
// does throughout.
type API interface {
	StoriesGetAllStories(ctx context.Context, request *tg.StoriesGetAllStoriesRequest) (tg.StoriesAllStoriesClass, error)
	StoriesGetAllReadUserStories(ctx context.Context) ([]tg.PeerStoriesClass, error)
	StoriesToggleAllStoriesHidden(ctx context.Context, hidden bool) (bool, error)
	StoriesToggleStoriesHidden(ctx context.Context, request *tg.StoriesToggleStoriesHiddenRequest) (bool, error)
	StoriesIncrementStoryViews(ctx context.Context, request *tg.StoriesIncrementStoryViewsRequest) (bool, error)
	StoriesReadStories(ctx context.Context, request *tg.StoriesReadStoriesRequest) ([]int, error)
	StoriesGetStoryViewsList(ctx context.Context, request *tg.StoriesGetStoryViewsListRequest) (*tg.StoriesStoryViewsList, error)
	StoriesGetStoriesByID(ctx context.Context, request *tg.StoriesGetStoriesByIDRequest) (*tg.StoriesStories, error)
	StoriesGetPinnedStories(ctx context.Context, request *tg.StoriesGetPinnedStoriesRequest) (*tg.StoriesStories, error)
	StoriesGetStoriesArchive(ctx context.Context, request *tg.StoriesGetStoriesArchiveRequest) (*tg.StoriesStories, error)
	StoriesGetUserStories(ctx context.Context, userID tg.InputUserClass) (*tg.StoriesUserStories, error)
	StoriesSendStory(ctx context.Context, request *tg.StoriesSendStoryRequest) (tg.UpdatesClass, error)
	StoriesEditStory(ctx context.Context, request *tg.StoriesEditStoryRequest) (tg.UpdatesClass, error)
	StoriesTogglePinned(ctx context.Context, request *tg.StoriesTogglePinnedRequest) ([]int, error)
	StoriesDeleteStories(ctx context.Context, id []int) ([]int, error)
	StoriesGetStoriesViews(ctx context.Context, request *tg.StoriesGetStoriesViewsRequest) (*tg.StoriesStoryViews, error)
	StoriesReport(ctx context.Context, request *tg.StoriesReportRequest) (bool, error)
	StoriesCanSendStory(ctx context.Context, peer tg.InputPeerClass) (bool, error)
	StoriesExportStoryLink(ctx context.Context, request *tg.StoriesExportStoryLinkRequest) (*tg.StoriesStoryLink, error)
}

// PeerResolver turns an OwnerID into the InputPeer/InputUser shapes the raw
// API needs; this is deliberately narrow so this package stays independent
// of however the caller tracks peer access hashes (see pkg/connector/ids
// for the equivalent bridge-side resolver).
type PeerResolver interface {
	InputPeer(ctx context.Context, owner stories.OwnerID) (tg.InputPeerClass, error)
	InputUser(ctx context.Context, owner stories.OwnerID) (tg.InputUserClass, error)
}

// Client implements stories.StoriesRPC.
type Client struct {
	API   API
	Peers PeerResolver
}

var _ stories.StoriesRPC = (*Client)(nil)

func (c *Client) GetAllStories(ctx context.Context, list stories.StoryListID, isNext bool, state string) (stories.AllStoriesPage, bool, error) {
	req := &tg.StoriesGetAllStoriesRequest{
		Next:  isNext,
		State: state,
	}
	if list == stories.StoryListArchive {
		req.Hidden = true
	}
	resp, err := c.API.StoriesGetAllStories(ctx, req)
	if err != nil {
		return stories.AllStoriesPage{}, false, wrapErr(err)
	}
	all, ok := resp.(*tg.StoriesAllStories)
	if !ok {
		return stories.AllStoriesPage{}, true, nil
	}
	page := stories.AllStoriesPage{NextState: all.State, HasMore: all.HasMore}
	for _, ps := range all.UserStories {
		active, recs := dispatchPeerStories(ps)
		page.Active = append(page.Active, active)
		page.Stories = append(page.Stories, recs...)
	}
	return page, false, nil
}

func (c *Client) GetAllReadUserStories(ctx context.Context) (map[stories.OwnerID]stories.StoryID, error) {
	list, err := c.API.StoriesGetAllReadUserStories(ctx)
	if err != nil {
		return nil, wrapErr(err)
	}
	out := make(map[stories.OwnerID]stories.StoryID, len(list))
	for _, ps := range list {
		full, ok := ps.(*tg.PeerStories)
		if !ok {
			continue
		}
		owner, ok := peerOwnerID(full.Peer)
		if !ok {
			continue
		}
		out[owner] = stories.StoryID(full.MaxReadID)
	}
	return out, nil
}

func (c *Client) ToggleAllStoriesHidden(ctx context.Context, hidden bool) error {
	_, err := c.API.StoriesToggleAllStoriesHidden(ctx, hidden)
	return wrapErr(err)
}

func (c *Client) ToggleStoriesHidden(ctx context.Context, owner stories.OwnerID, hidden bool) error {
	peer, err := c.Peers.InputPeer(ctx, owner)
	if err != nil {
		return err
	}
	_, err = c.API.StoriesToggleStoriesHidden(ctx, &tg.StoriesToggleStoriesHiddenRequest{Peer: peer, Hidden: hidden})
	return wrapErr(err)
}

func (c *Client) IncrementStoryViews(ctx context.Context, owner stories.OwnerID, ids []stories.StoryID) error {
	peer, err := c.Peers.InputPeer(ctx, owner)
	if err != nil {
		return err
	}
	_, err = c.API.StoriesIncrementStoryViews(ctx, &tg.StoriesIncrementStoryViewsRequest{Peer: peer, ID: storyIDsToInts(ids)})
	return wrapErr(err)
}

func (c *Client) ReadStories(ctx context.Context, owner stories.OwnerID, maxID stories.StoryID) error {
	peer, err := c.Peers.InputPeer(ctx, owner)
	if err != nil {
		return err
	}
	_, err = c.API.StoriesReadStories(ctx, &tg.StoriesReadStoriesRequest{Peer: peer, MaxID: int(maxID)})
	return wrapErr(err)
}

func (c *Client) GetStoryViewsList(ctx context.Context, id stories.StoryFullID, offset, limit int) ([]stories.Viewer, int, error) {
	peer, err := c.Peers.InputPeer(ctx, id.OwnerID)
	if err != nil {
		return nil, 0, err
	}
	resp, err := c.API.StoriesGetStoryViewsList(ctx, &tg.StoriesGetStoryViewsListRequest{
		Peer:   peer,
		ID:     int(id.StoryID),
		Limit:  limit,
		Offset: encodeViewsOffset(offset),
	})
	if err != nil {
		return nil, 0, wrapErr(err)
	}
	viewers := make([]stories.Viewer, 0, len(resp.Views))
	for _, v := range resp.Views {
		view, ok := v.(*tg.StoryView)
		if !ok {
			continue
		}
		viewers = append(viewers, stories.Viewer{ViewDate: int64(view.Date), UserID: stories.OwnerID(view.UserID)})
	}
	return viewers, resp.Count, nil
}

func (c *Client) GetStoriesByID(ctx context.Context, owner stories.OwnerID, ids []stories.StoryID) ([]*stories.ServerStory, error) {
	user, err := c.Peers.InputUser(ctx, owner)
	if err != nil {
		return nil, err
	}
	resp, err := c.API.StoriesGetStoriesByID(ctx, &tg.StoriesGetStoriesByIDRequest{UserID: user, ID: storyIDsToInts(ids)})
	if err != nil {
		return nil, wrapErr(err)
	}
	return dispatchStoryItems(owner, resp.Stories), nil
}

func (c *Client) GetPinnedStories(ctx context.Context, owner stories.OwnerID, offset stories.StoryID, limit int) ([]*stories.ServerStory, bool, error) {
	user, err := c.Peers.InputUser(ctx, owner)
	if err != nil {
		return nil, false, err
	}
	resp, err := c.API.StoriesGetPinnedStories(ctx, &tg.StoriesGetPinnedStoriesRequest{UserID: user, OffsetID: int(offset), Limit: limit})
	if err != nil {
		return nil, false, wrapErr(err)
	}
	recs := dispatchStoryItems(owner, resp.Stories)
	return recs, len(recs) == limit, nil
}

func (c *Client) GetStoriesArchive(ctx context.Context, offset stories.StoryID, limit int) ([]*stories.ServerStory, bool, error) {
	resp, err := c.API.StoriesGetStoriesArchive(ctx, &tg.StoriesGetStoriesArchiveRequest{OffsetID: int(offset), Limit: limit})
	if err != nil {
		return nil, false, wrapErr(err)
	}
	recs := dispatchStoryItems(0, resp.Stories)
	return recs, len(recs) == limit, nil
}

func (c *Client) GetUserStories(ctx context.Context, owner stories.OwnerID) (*stories.ActiveStories, []*stories.ServerStory, error) {
	user, err := c.Peers.InputUser(ctx, owner)
	if err != nil {
		return nil, nil, err
	}
	resp, err := c.API.StoriesGetUserStories(ctx, user)
	if err != nil {
		return nil, nil, wrapErr(err)
	}
	active, recs := dispatchPeerStories(&resp.Stories)
	return active, recs, nil
}

func (c *Client) SendStory(ctx context.Context, p *stories.PendingStory, inputFile tg.InputFileClass) (*stories.ServerStory, error) {
	media, err := contentToInputMedia(p.Story.Content, inputFile)
	if err != nil {
		return nil, err
	}
	req := &tg.StoriesSendStoryRequest{
		Peer:       &tg.InputPeerSelf{},
		Media:      media,
		Privacy:    []tg.InputPrivacyRuleClass{&tg.InputPrivacyValueAllowAll{}},
		RandomID:   p.RandomID,
		Pinned:     p.Story.Pinned,
		NoForwards: p.Story.NoForwards,
	}
	if p.Story.Caption.Text != "" {
		req.Caption = p.Story.Caption.Text
		req.SetEntities(p.Story.Caption.Entities)
	}
	updates, err := c.API.StoriesSendStory(ctx, req)
	if err != nil {
		return nil, wrapErr(err)
	}
	rec := findStoryUpdate(updates)
	if rec == nil {
		return nil, nil
	}
	rec.OwnerID = p.OwnerID
	return rec, nil
}

func (c *Client) EditStory(ctx context.Context, p *stories.PendingStory, inputFile tg.InputFileClass, caption *stories.FormattedText, editCaption bool) (*stories.ServerStory, error) {
	req := &tg.StoriesEditStoryRequest{
		Peer: &tg.InputPeerSelf{},
		ID:   int(p.StoryID),
	}
	if inputFile != nil && p.Story != nil {
		m, err := contentToInputMedia(p.Story.Content, inputFile)
		if err != nil {
			return nil, err
		}
		req.SetMedia(m)
	}
	if editCaption && caption != nil {
		req.SetCaption(caption.Text)
		req.SetEntities(caption.Entities)
	}
	updates, err := c.API.StoriesEditStory(ctx, req)
	if err != nil {
		return nil, wrapErr(err)
	}
	rec := findStoryUpdate(updates)
	if rec == nil {
		return nil, nil
	}
	rec.OwnerID = p.OwnerID
	return rec, nil
}

func (c *Client) TogglePinned(ctx context.Context, ids []stories.StoryID, pinned bool) ([]stories.StoryID, error) {
	changed, err := c.API.StoriesTogglePinned(ctx, &tg.StoriesTogglePinnedRequest{Peer: &tg.InputPeerSelf{}, ID: storyIDsToInts(ids), Pinned: pinned})
	if err != nil {
		return nil, wrapErr(err)
	}
	return intsToStoryIDs(changed), nil
}

func (c *Client) DeleteStories(ctx context.Context, ids []stories.StoryID) ([]stories.StoryID, error) {
	deleted, err := c.API.StoriesDeleteStories(ctx, storyIDsToInts(ids))
	if err != nil {
		return nil, wrapErr(err)
	}
	return intsToStoryIDs(deleted), nil
}

func (c *Client) GetStoriesViews(ctx context.Context, ids []stories.StoryID) (map[stories.StoryID]stories.InteractionInfo, error) {
	resp, err := c.API.StoriesGetStoriesViews(ctx, &tg.StoriesGetStoriesViewsRequest{Peer: &tg.InputPeerSelf{}, ID: storyIDsToInts(ids)})
	if err != nil {
		return nil, wrapErr(err)
	}
	out := make(map[stories.StoryID]stories.InteractionInfo, len(resp.Views))
	for i, v := range resp.Views {
		if i >= len(ids) {
			break
		}
		out[ids[i]] = stories.InteractionInfo{Set: true, ViewCount: v.ViewsCount}
	}
	return out, nil
}

func (c *Client) Report(ctx context.Context, owner stories.OwnerID, ids []stories.StoryID, reason tg.ReportReasonClass, message string) error {
	peer, err := c.Peers.InputPeer(ctx, owner)
	if err != nil {
		return err
	}
	_, err = c.API.StoriesReport(ctx, &tg.StoriesReportRequest{Peer: peer, ID: storyIDsToInts(ids), Reason: reason, Message: message})
	return wrapErr(err)
}

func (c *Client) CanSendStory(ctx context.Context, owner stories.OwnerID) (bool, error) {
	peer, err := c.Peers.InputPeer(ctx, owner)
	if err != nil {
		return false, err
	}
	ok, err := c.API.StoriesCanSendStory(ctx, peer)
	return ok, wrapErr(err)
}

func (c *Client) ExportStoryLink(ctx context.Context, id stories.StoryFullID) (string, error) {
	peer, err := c.Peers.InputPeer(ctx, id.OwnerID)
	if err != nil {
		return "", err
	}
	resp, err := c.API.StoriesExportStoryLink(ctx, &tg.StoriesExportStoryLinkRequest{Peer: peer, ID: int(id.StoryID)})
	if err != nil {
		return "", wrapErr(err)
	}
	return resp.Link, nil
}
