package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/vodmarks/internal/model"
)

// AttachSubtitles uploads a local .srt file to an entry.
func (c *Controller) AttachSubtitles(ctx context.Context, id model.ID, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return c.invalid("No file selected.")
	}
	if !strings.EqualFold(filepath.Ext(path), ".srt") {
		return c.invalid("Only .srt files are allowed.")
	}

	f, err := os.Open(path)
	if err != nil {
		return c.fail(err, "Upload failed.")
	}
	defer f.Close()

	c.info("Uploading SRT...")
	if _, err := c.backend.UploadSubtitles(ctx, id, filepath.Base(path), f); err != nil {
		return c.fail(err, "Upload failed.")
	}
	c.success("SRT uploaded successfully")
	return c.Refresh(ctx)
}

// FetchSubtitles writes an entry's subtitles to w and returns the
// suggested filename.
func (c *Controller) FetchSubtitles(ctx context.Context, id model.ID, w io.Writer) (string, error) {
	name, err := c.backend.DownloadSubtitles(ctx, id, w)
	if err != nil {
		return "", c.fail(err, "Failed to load subtitles.")
	}
	return name, nil
}

// SaveSubtitles downloads an entry's subtitles into dir and returns the
// written path.
func (c *Controller) SaveSubtitles(ctx context.Context, id model.ID, dir string) (string, error) {
	tmp, err := os.CreateTemp(dir, ".vodmarks-*.srt")
	if err != nil {
		return "", c.fail(err, "Failed to save subtitles.")
	}
	defer os.Remove(tmp.Name())

	name, err := c.FetchSubtitles(ctx, id, tmp)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		return "", c.fail(closeErr, "Failed to save subtitles.")
	}
	if err != nil {
		return "", err
	}

	dest := filepath.Join(dir, filepath.Base(name))
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", c.fail(err, "Failed to save subtitles.")
	}
	c.success("Saved " + dest)
	return dest, nil
}

// RemoveSubtitles deletes an entry's subtitles after confirmation.
func (c *Controller) RemoveSubtitles(ctx context.Context, id model.ID) error {
	if !c.confirmed(ctx, "Delete SRT", "Delete this subtitle file?") {
		return nil
	}
	if err := c.backend.DeleteSubtitles(ctx, id); err != nil {
		return c.fail(err, "Failed to delete subtitles.")
	}
	c.success("SRT file deleted")
	return c.Refresh(ctx)
}
