// Package storiespeers is the thin access-hash cache the RPC adapter needs
// to turn an OwnerID into an InputPeer/InputUser, plus the DialogDirectory
// and UserDirectory collaborators the engine uses for entry-point
// validation. Real access-hash bookkeeping belongs to the bridge's own
// dialog/contact sync (out of scope here, spec.md §1); this cache is filled
// from whatever peers the story stream itself has already surfaced.
package storiespeers

import (
	"context"
	"fmt"
	"sync"

	"github.com/gotd/td/tg"

	"go.mau.fi/telegram-stories/pkg/stories"
)

type peerInfo struct {
	accessHash int64
	isUser     bool
	isContact  bool
	isHidden   bool
}

// Cache is a process-local InputPeer/InputUser resolver plus the
// DialogDirectory/UserDirectory the engine needs. Remember must be called
// (by the caller's own update/dialog sync) before a given owner can be
// resolved; an owner never remembered resolves as not-found.
type Cache struct {
	self stories.OwnerID

	mu    sync.RWMutex
	peers map[stories.OwnerID]*peerInfo
}

func New(self stories.OwnerID) *Cache {
	return &Cache{self: self, peers: make(map[stories.OwnerID]*peerInfo)}
}

// Remember records or updates a peer's access hash, called whenever the
// caller's own sync path resolves a user/chat/channel (dialog list, contact
// list, or a story owner seen for the first time).
func (c *Cache) Remember(owner stories.OwnerID, accessHash int64, isUser, isContact bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.peers[owner] = &peerInfo{accessHash: accessHash, isUser: isUser, isContact: isContact}
}

func (c *Cache) SetHidden(owner stories.OwnerID, hidden bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.peers[owner]; ok {
		p.isHidden = hidden
	}
}

func (c *Cache) lookup(owner stories.OwnerID) (*peerInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.peers[owner]
	return p, ok
}

func (c *Cache) InputPeer(ctx context.Context, owner stories.OwnerID) (tg.InputPeerClass, error) {
	if owner == c.self {
		return &tg.InputPeerSelf{}, nil
	}
	p, ok := c.lookup(owner)
	if !ok {
		return nil, fmt.Errorf("no cached access hash for peer %d", owner)
	}
	if p.isUser {
		return &tg.InputPeerUser{UserID: int64(owner), AccessHash: p.accessHash}, nil
	}
	return &tg.InputPeerChannel{ChannelID: int64(owner), AccessHash: p.accessHash}, nil
}

func (c *Cache) InputUser(ctx context.Context, owner stories.OwnerID) (tg.InputUserClass, error) {
	if owner == c.self {
		return &tg.InputUserSelf{}, nil
	}
	p, ok := c.lookup(owner)
	if !ok {
		return nil, fmt.Errorf("no cached access hash for user %d", owner)
	}
	return &tg.InputUser{UserID: int64(owner), AccessHash: p.accessHash}, nil
}

var _ stories.DialogDirectory = (*Cache)(nil)
var _ stories.UserDirectory = (*Cache)(nil)

func (c *Cache) Exists(ctx context.Context, owner stories.OwnerID) (bool, error) {
	_, ok := c.lookup(owner)
	return ok || owner == c.self, nil
}

func (c *Cache) HasReadAccess(ctx context.Context, owner stories.OwnerID) (bool, error) {
	return c.Exists(ctx, owner)
}

func (c *Cache) IsContact(ctx context.Context, owner stories.OwnerID) (bool, error) {
	p, ok := c.lookup(owner)
	return ok && p.isContact, nil
}

func (c *Cache) IsHidden(ctx context.Context, owner stories.OwnerID) (bool, error) {
	p, ok := c.lookup(owner)
	return ok && p.isHidden, nil
}

func (c *Cache) Self(ctx context.Context) stories.OwnerID {
	return c.self
}

func (c *Cache) IsPremium(ctx context.Context, owner stories.OwnerID) (bool, error) {
	return false, nil
}
