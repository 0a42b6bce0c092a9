package services

import (
	"context"
	"fmt"

	"github.com/avasyliev/booktrack/pkg/api"
	"github.com/avasyliev/booktrack/pkg/data"
	"github.com/avasyliev/booktrack/pkg/logger"
	"github.com/avasyliev/booktrack/pkg/session"
)

// BookCache is the slice of the durable storage the controller needs.
type BookCache interface {
	ReplaceBooks(books []data.Book) error
	ListBooks() ([]data.Book, error)
	UpdateBookNote(id int, note string) error
	ClearBooks() error
}

// Controller wires the gateway, the session store and the local cache into
// the operations the screens and commands call. It also carries the profile
// for the lifetime of the authenticated session.
type Controller struct {
	client  *api.Client
	session session.Store
	cache   BookCache
	profile *data.UserProfile
}

func NewController(client *api.Client, sess session.Store, cache BookCache) *Controller {
	return &Controller{client: client, session: sess, cache: cache}
}

// RestoreSession is the bootstrap contract: with no stored access token the
// shell starts unauthenticated; with one, a profile fetch decides. Any
// fetch failure clears the stored credential and still reports
// unauthenticated rather than erroring.
func (c *Controller) RestoreSession(ctx context.Context) (*data.UserProfile, error) {
	if _, ok := c.session.AccessToken(); !ok {
		return nil, nil
	}
	profile, err := c.client.Profile(ctx)
	if err != nil {
		logger.Log.WithError(err).Debug("stored session rejected, clearing credential")
		if clearErr := c.session.Clear(); clearErr != nil {
			return nil, fmt.Errorf("failed to clear stale session: %w", clearErr)
		}
		return nil, nil
	}
	c.profile = &profile
	return &profile, nil
}

// SetProfile records the profile after a successful login or registration.
func (c *Controller) SetProfile(profile data.UserProfile) {
	c.profile = &profile
}

func (c *Controller) Profile() *data.UserProfile {
	return c.profile
}

// Logout drops the credential and the cached collection.
func (c *Controller) Logout() error {
	c.profile = nil
	if err := c.cache.ClearBooks(); err != nil {
		logger.Log.WithError(err).Warn("failed to clear cached books")
	}
	return c.session.Clear()
}

// RefreshLibrary fetches the collection and folds it into the local cache.
func (c *Controller) RefreshLibrary(ctx context.Context) ([]data.Book, error) {
	books, err := c.client.Books(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.cache.ReplaceBooks(books); err != nil {
		logger.Log.WithError(err).Warn("failed to cache book collection")
	}
	return books, nil
}

// CachedLibrary returns the last fetched collection without going remote.
func (c *Controller) CachedLibrary() ([]data.Book, error) {
	return c.cache.ListBooks()
}

// SaveNote commits a note change for one book. The screens apply the change
// locally first; when this fails they are expected to revert that local
// copy, so the cache here is only touched on success.
func (c *Controller) SaveNote(ctx context.Context, bookID int, note string) error {
	if _, err := c.client.UpdateBook(ctx, bookID, map[string]any{"note": note}); err != nil {
		return err
	}
	if err := c.cache.UpdateBookNote(bookID, note); err != nil {
		logger.Log.WithError(err).Warn("failed to update cached note")
	}
	return nil
}

// AddFromSearch turns a confirmed search result into a library book.
func (c *Controller) AddFromSearch(ctx context.Context, result data.SearchResult) (data.Book, error) {
	return c.client.AddBook(ctx, result.ToBook())
}

// Search proxies the external lookup.
func (c *Controller) Search(ctx context.Context, query, field string) ([]data.SearchResult, error) {
	return c.client.SearchExternal(ctx, query, field)
}

// RecordSession logs reading time against a book.
func (c *Controller) RecordSession(ctx context.Context, bookID, minutes int, note string) (data.ReadingSession, error) {
	return c.client.AddSession(ctx, data.ReadingSession{Book: bookID, Duration: minutes, Note: note})
}
