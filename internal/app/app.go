// Package app wires user actions to the backend and the state store.
//
// Every action runs its backend calls outside the store lock, applies the
// result to the store, and reports the outcome through the Notifier.
// Nothing is mutated optimistically: a failed request leaves the store as
// it was, and nothing is retried.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/nikbrunner/vodmarks/internal/api"
	"github.com/nikbrunner/vodmarks/internal/model"
	"github.com/nikbrunner/vodmarks/internal/state"
)

// ErrValidation marks an action refused locally before any request.
var ErrValidation = errors.New("invalid input")

// Backend is the subset of the API client the controller uses.
type Backend interface {
	Tree(ctx context.Context) (model.Tree, error)
	MergedGroups(ctx context.Context) ([]model.MergedGroup, error)
	FoldersFlat(ctx context.Context) ([]model.FolderRef, error)
	FolderBookmarks(ctx context.Context, folderID model.ID) ([]model.Bookmark, error)
	MergedBookmarks(ctx context.Context, key string) ([]model.Bookmark, error)

	CreateFolder(ctx context.Context, name string, parentID model.ID) error
	RenameFolder(ctx context.Context, id model.ID, name string) error
	DeleteFolder(ctx context.Context, id model.ID) (int, error)

	CreateVideo(ctx context.Context, folderID model.ID, videoURL string) error
	CreateMedia(ctx context.Context, folderID model.ID, title, date string) error
	MoveBookmark(ctx context.Context, id, folderID model.ID) error
	DeleteBookmark(ctx context.Context, id model.ID) error
	BulkDelete(ctx context.Context, ids []model.ID) (int, error)
	BulkMove(ctx context.Context, ids []model.ID, folderID model.ID) error

	MediaLog(ctx context.Context, category model.Category) ([]model.MediaLogItem, error)
	CreateMediaLogItem(ctx context.Context, item api.NewMediaLogItem) error
	UpdateMediaLogItem(ctx context.Context, id model.ID, update api.MediaLogUpdate) error
	DeleteMediaLogItem(ctx context.Context, id model.ID) error

	UploadSubtitles(ctx context.Context, id model.ID, filename string, r io.Reader) (string, error)
	DownloadSubtitles(ctx context.Context, id model.ID, w io.Writer) (string, error)
	DeleteSubtitles(ctx context.Context, id model.ID) error
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, title, message string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, title, message string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, title, message string) bool {
	return f(ctx, title, message)
}

// Notifier shows transient messages to the user.
type Notifier interface {
	Info(msg string)
	Success(msg string)
	Error(msg string)
}

type nopNotifier struct{}

func (nopNotifier) Info(string)    {}
func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// Controller owns the store and runs user actions against the backend.
type Controller struct {
	mu      sync.Mutex
	store   *state.Store
	backend Backend
	confirm Confirmer
	notify  Notifier
	logger  *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfirmer sets the confirmation prompt. Without one, destructive
// actions are declined.
func WithConfirmer(c Confirmer) Option {
	return func(ctrl *Controller) { ctrl.confirm = c }
}

// WithNotifier sets the message sink.
func WithNotifier(n Notifier) Option {
	return func(ctrl *Controller) { ctrl.notify = n }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(ctrl *Controller) { ctrl.logger = l }
}

// New creates a controller over store and backend.
func New(store *state.Store, backend Backend, opts ...Option) *Controller {
	c := &Controller{
		store:   store,
		backend: backend,
		confirm: ConfirmFunc(func(context.Context, string, string) bool { return false }),
		notify:  nopNotifier{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetConfirmer replaces the confirmation prompt.
func (c *Controller) SetConfirmer(cf Confirmer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirm = cf
}

// SetNotifier replaces the message sink.
func (c *Controller) SetNotifier(n Notifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = n
}

// Read calls fn with the store held. fn must not retain the store.
func (c *Controller) Read(fn func(s *state.Store)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.store)
}

// Update applies a local change to the store.
func (c *Controller) Update(fn func(s *state.Store)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.store)
}

func (c *Controller) sinks() (Confirmer, Notifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirm, c.notify
}

func (c *Controller) info(msg string) {
	_, n := c.sinks()
	n.Info(msg)
}

func (c *Controller) success(msg string) {
	_, n := c.sinks()
	n.Success(msg)
}

func (c *Controller) confirmed(ctx context.Context, title, message string) bool {
	cf, _ := c.sinks()
	return cf.Confirm(ctx, title, message)
}

// invalid reports a locally refused action.
func (c *Controller) invalid(msg string) error {
	_, n := c.sinks()
	n.Error(msg)
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// fail reports a failed request. The backend's own message wins over
// fallback when there is one.
func (c *Controller) fail(err error, fallback string) error {
	msg := fallback
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr) && apiErr.Message != "":
		msg = apiErr.Message
	case errors.Is(err, api.ErrTransport):
		msg = fallback + " Backend unreachable."
	}
	c.logger.Warn(fallback, zap.Error(err))
	_, n := c.sinks()
	n.Error(msg)
	return err
}
