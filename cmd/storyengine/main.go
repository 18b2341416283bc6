package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/tg"
	"github.com/rs/zerolog"
	"go.mau.fi/util/dbutil"
	"go.mau.fi/zerozap"
	"go.uber.org/zap"

	"go.mau.fi/telegram-stories/pkg/stories"
	"go.mau.fi/telegram-stories/pkg/storiesdb"
	"go.mau.fi/telegram-stories/pkg/storiespeers"
	"go.mau.fi/telegram-stories/pkg/storiesrpc"
	"go.mau.fi/telegram-stories/pkg/storiesupload"
)

// fileSession persists the MTProto session to a single file in the
// configured session directory, the same FileSession shape cmd/directdl
// uses for its own throwaway session.
type fileSession struct{ path string }

func (s *fileSession) LoadSession(context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, session.ErrNotFound
	}
	return data, nil
}

func (s *fileSession) StoreSession(ctx context.Context, data []byte) error {
	return os.WriteFile(s.path, data, 0600)
}

// noopNotifier satisfies FileReferenceNotifier/MessageCrossReferenceNotifier
// for a standalone deployment with no message-cross-reference collaborator
// (that belongs to the bridge side, out of scope here).
type noopNotifier struct{}

func (noopNotifier) OnFileIDsChanged(ctx context.Context, id stories.StoryFullID, old, new []stories.FileID) {
}

func (noopNotifier) OnStoryChanged(ctx context.Context, id stories.StoryFullID) {}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: storyengine <config.yaml>")
		os.Exit(1)
	}
	cfg, err := loadConfig(os.Args[1])
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if level, parseErr := zerolog.ParseLevel(cfg.LogLevel); parseErr == nil {
		log = log.Level(level)
	}
	zaplog := zap.New(zerozap.New(log))

	rawDB, err := dbutil.NewFromConfig("telegram-stories", cfg.Database, dbutil.ZeroLogger(log))
	if err != nil {
		panic(fmt.Errorf("failed to open database: %w", err))
	}
	db := storiesdb.New(rawDB, dbutil.ZeroLogger(log))
	ctx := context.Background()
	if err = db.Upgrade(ctx); err != nil {
		panic(fmt.Errorf("failed to upgrade database: %w", err))
	}

	sessionPath := cfg.Telegram.SessionDir
	if sessionPath == "" {
		sessionPath = "."
	}
	client := telegram.NewClient(cfg.Telegram.APIID, cfg.Telegram.APIHash, telegram.Options{
		SessionStorage: &fileSession{path: sessionPath + "/session"},
		Logger:         zaplog,
	})

	err = client.Run(ctx, func(ctx context.Context) error {
		users, err := client.API().UsersGetUsers(ctx, []tg.InputUserClass{&tg.InputUserSelf{}})
		if err != nil {
			return fmt.Errorf("failed to resolve self: %w", err)
		}
		self, ok := firstFullUser(users)
		if !ok {
			return fmt.Errorf("self lookup returned no user")
		}
		selfID := stories.OwnerID(self.GetID())

		peerCache := storiespeers.New(selfID)
		rpc := &storiesrpc.Client{API: client.API(), Peers: peerCache}
		upload := &storiesupload.Uploader{API: client.API(), Source: nil}

		engine := stories.NewEngine(stories.Deps{
			DB:       db,
			Binlog:   db,
			RPC:      rpc,
			Upload:   upload,
			Dialogs:  peerCache,
			Users:    peerCache,
			Options:  stories.StaticOptionSource{Options: stories.DefaultTunableOptions()},
			FileRefs: noopNotifier{},
			Messages: noopNotifier{},
		}, selfID, log)
		defer engine.Close()

		if err := engine.Replay(ctx); err != nil {
			return fmt.Errorf("failed to replay binlog: %w", err)
		}

		<-ctx.Done()
		return nil
	})
	if err != nil {
		panic(err)
	}
}

func firstFullUser(users []tg.UserClass) (*tg.User, bool) {
	for _, u := range users {
		if full, ok := u.(*tg.User); ok {
			return full, true
		}
	}
	return nil, false
}
