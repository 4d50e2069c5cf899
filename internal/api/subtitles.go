package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/nikbrunner/vodmarks/internal/model"
)

// SubtitleField is the multipart field carrying the .srt file.
const SubtitleField = "srt_file"

// UploadSubtitles attaches an .srt file to an entry, replacing any previous one.
// It returns the stored path reported by the backend.
func (c *Client) UploadSubtitles(ctx context.Context, id model.ID, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(SubtitleField, filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read subtitles: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	path := idPath("/api/bookmark/%s/upload_srt", id)
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf, mw.FormDataContentType())
	if err != nil {
		return "", err
	}
	resp, err := c.send(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	var out struct {
		status
		SRTFilePath string `json:"srt_file_path"`
	}
	if err := decodeJSON(resp.Body, &out); err != nil {
		return "", fmt.Errorf("%w: upload subtitles: %w", ErrDecode, err)
	}
	if out.Error != "" {
		return "", &Error{Status: resp.StatusCode, Message: out.Error}
	}
	return out.SRTFilePath, nil
}

// DownloadSubtitles writes an entry's .srt file to w and returns the
// download filename suggested by the backend.
func (c *Client) DownloadSubtitles(ctx context.Context, id model.ID, w io.Writer) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, idPath("/api/bookmark/%s/srt", id), nil, nil, "")
	if err != nil {
		return "", err
	}
	resp, err := c.send(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("%w: read subtitles: %w", ErrTransport, err)
	}

	filename := fmt.Sprintf("bookmark_%s.srt", id)
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		filename = params["filename"]
	}
	return filename, nil
}

// DeleteSubtitles removes the .srt file from an entry.
func (c *Client) DeleteSubtitles(ctx context.Context, id model.ID) error {
	return c.do(ctx, http.MethodDelete, idPath("/api/bookmark/%s/srt", id), nil, nil, nil)
}
