// Package storiesupload adapts github.com/gotd/td/telegram/uploader to the
// stories.FileUploadService contract, the same uploader.NewUploader(...)/
// FromBytes(...) call the teacher's HandleMatrixMessage uses to get a
// locally-held file onto Telegram's servers before referencing it in a
// message (or, here, a story).
package storiesupload

import (
	"context"
	"fmt"
	"io"

	"github.com/gotd/td/telegram/uploader"

	"go.mau.fi/telegram-stories/pkg/stories"
)

// FileSource resolves a story's content back to the raw bytes backing it.
// The file service itself is out of scope (spec.md §1); this is the narrow
// edge Upload needs to cross into it, both for a brand new draft and for
// the "reupload once" retry after a file reference expires mid-send.
type FileSource interface {
	Open(ctx context.Context, id stories.FileID) (name string, data io.ReadCloser, err error)
}

// Uploader implements stories.FileUploadService on top of a single
// *telegram.Client's uploader.
type Uploader struct {
	API    uploader.Client
	Source FileSource
}

var _ stories.FileUploadService = (*Uploader)(nil)

func (u *Uploader) Upload(ctx context.Context, content stories.StoryContent, badParts []int) (stories.UploadResult, error) {
	ids := content.FileIDs()
	if len(ids) == 0 {
		return stories.UploadResult{}, fmt.Errorf("story content has no file to upload")
	}
	primary := ids[0]
	name, data, err := u.Source.Open(ctx, primary)
	if err != nil {
		return stories.UploadResult{}, fmt.Errorf("failed to open story file %d: %w", primary, err)
	}
	defer data.Close()

	up := uploader.NewUploader(u.API)
	// badParts only matters to an uploader that remembers in-progress part
	// state across calls; this one re-uploads whole, same as the teacher's
	// one-shot FromBytes/FromReader calls.
	_ = badParts
	inputFile, err := up.FromReader(ctx, name, data)
	if err != nil {
		return stories.UploadResult{}, fmt.Errorf("failed to upload story file: %w", err)
	}
	return stories.UploadResult{InputFile: inputFile, FileID: primary}, nil
}

func (u *Uploader) DeleteFileReference(ctx context.Context, id stories.FileID) error {
	return nil
}
