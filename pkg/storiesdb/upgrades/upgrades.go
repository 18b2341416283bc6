// Package upgrades holds the schema migrations for the story database,
// following the same registration pattern the bridge's own account
// database uses (see pkg/store/container.go).
package upgrades

import (
	"context"

	"go.mau.fi/util/dbutil"
)

var Table dbutil.UpgradeTable

func init() {
	Table.Register(-1, 1, 0, "Initial revision", dbutil.TxnModeOn, upgradeInitial)
}

func upgradeInitial(ctx context.Context, db *dbutil.Database) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE story (
			owner_id       BIGINT  NOT NULL,
			story_id       INTEGER NOT NULL,
			global_id      BIGINT  NOT NULL,
			date           BIGINT  NOT NULL,
			expire_date    BIGINT  NOT NULL,
			receive_date   BIGINT  NOT NULL,
			edited         BOOLEAN NOT NULL DEFAULT false,
			pinned         BOOLEAN NOT NULL DEFAULT false,
			public         BOOLEAN NOT NULL DEFAULT false,
			for_close_friends    BOOLEAN NOT NULL DEFAULT false,
			for_contacts         BOOLEAN NOT NULL DEFAULT false,
			for_selected_contacts BOOLEAN NOT NULL DEFAULT false,
			no_forwards    BOOLEAN NOT NULL DEFAULT false,
			content        bytea   NOT NULL,
			caption_text   TEXT    NOT NULL DEFAULT '',
			caption_entities bytea NOT NULL DEFAULT '',
			view_count     INTEGER NOT NULL DEFAULT 0,
			recent_viewers bytea   NOT NULL DEFAULT '',

			PRIMARY KEY (owner_id, story_id)
		)
	`)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `CREATE INDEX story_expire_date_idx ON story(expire_date)`)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		CREATE TABLE active_stories (
			owner_id         BIGINT  PRIMARY KEY,
			story_ids        bytea   NOT NULL,
			max_read_story_id INTEGER NOT NULL DEFAULT 0,
			list_id          SMALLINT NOT NULL DEFAULT 0,
			private_order    BIGINT  NOT NULL DEFAULT 0,
			public_order     BIGINT  NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `CREATE INDEX active_stories_order_idx ON active_stories(list_id, private_order DESC, owner_id DESC)`)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		CREATE TABLE story_list_state (
			list_id        SMALLINT PRIMARY KEY,
			server_state   TEXT    NOT NULL DEFAULT '',
			server_total_count INTEGER NOT NULL DEFAULT 0,
			server_has_more BOOLEAN NOT NULL DEFAULT false
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		CREATE TABLE story_binlog (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			kind          SMALLINT NOT NULL,
			owner_id      BIGINT  NOT NULL,
			story_id      INTEGER NOT NULL DEFAULT 0,
			max_id        INTEGER NOT NULL DEFAULT 0,
			payload       bytea   NOT NULL DEFAULT ''
		)
	`)
	return err
}
