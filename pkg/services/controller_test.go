package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avasyliev/booktrack/pkg/api"
	"github.com/avasyliev/booktrack/pkg/data"
	"github.com/avasyliev/booktrack/pkg/session"
)

// fakeCache records what the controller does to the durable storage.
type fakeCache struct {
	books       []data.Book
	clearCalls  int
	noteUpdates map[int]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{noteUpdates: make(map[int]string)}
}

func (c *fakeCache) ReplaceBooks(books []data.Book) error {
	c.books = append([]data.Book(nil), books...)
	return nil
}

func (c *fakeCache) ListBooks() ([]data.Book, error) {
	return c.books, nil
}

func (c *fakeCache) UpdateBookNote(id int, note string) error {
	c.noteUpdates[id] = note
	return nil
}

func (c *fakeCache) ClearBooks() error {
	c.clearCalls++
	c.books = nil
	return nil
}

func newTestController(t *testing.T, handler http.Handler) (*Controller, *session.MemStore, *fakeCache) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	sess := session.NewMemStore()
	cache := newFakeCache()
	client := api.New(server.URL, server.URL, sess)
	return NewController(client, sess, cache), sess, cache
}

func TestRestoreSessionWithoutToken(t *testing.T) {
	calls := 0
	controller, _, _ := newTestController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	profile, err := controller.RestoreSession(context.Background())
	if err != nil {
		t.Fatalf("RestoreSession() error = %v", err)
	}
	if profile != nil {
		t.Error("expected unauthenticated start")
	}
	if calls != 0 {
		t.Error("no stored token means no network call")
	}
}

func TestRestoreSessionWithValidToken(t *testing.T) {
	controller, sess, _ := newTestController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "email": "a@b.com", "name": "Reader"})
	}))
	sess.Save(session.Credential{AccessToken: "good"})

	profile, err := controller.RestoreSession(context.Background())
	if err != nil {
		t.Fatalf("RestoreSession() error = %v", err)
	}
	if profile == nil || profile.Email != "a@b.com" {
		t.Fatalf("expected restored profile, got %v", profile)
	}
	if controller.Profile() == nil {
		t.Error("controller should carry the profile")
	}
}

func TestRestoreSessionRejectedTokenClearsCredential(t *testing.T) {
	controller, sess, _ := newTestController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	sess.Save(session.Credential{AccessToken: "stale", RefreshToken: "stale"})

	profile, err := controller.RestoreSession(context.Background())
	if err != nil {
		t.Fatalf("a rejected token is not an error, got %v", err)
	}
	if profile != nil {
		t.Error("expected unauthenticated result")
	}
	if _, ok := sess.AccessToken(); ok {
		t.Error("stale credential should have been cleared")
	}
}

func TestLogout(t *testing.T) {
	controller, sess, cache := newTestController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	sess.Save(session.Credential{AccessToken: "tok"})
	cache.ReplaceBooks([]data.Book{{ID: 1}})
	controller.SetProfile(data.UserProfile{ID: 1})

	if err := controller.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, ok := sess.AccessToken(); ok {
		t.Error("credential should be gone")
	}
	if cache.clearCalls != 1 {
		t.Error("cached books should be dropped")
	}
	if controller.Profile() != nil {
		t.Error("profile should be gone")
	}
}

func TestRefreshLibraryCachesCollection(t *testing.T) {
	controller, _, cache := newTestController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]data.Book{
			{ID: 1, Title: "Dune", Author: "Frank Herbert"},
			{ID: 2, Title: "Emma", Author: "Jane Austen"},
		})
	}))

	books, err := controller.RefreshLibrary(context.Background())
	if err != nil {
		t.Fatalf("RefreshLibrary() error = %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if len(cache.books) != 2 {
		t.Error("fetched collection should be cached")
	}

	cached, err := controller.CachedLibrary()
	if err != nil || len(cached) != 2 {
		t.Errorf("expected cached collection back, got %v %v", cached, err)
	}
}

func TestSaveNote(t *testing.T) {
	t.Run("success patches remote then cache", func(t *testing.T) {
		var patched map[string]any
		controller, _, cache := newTestController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPatch {
				t.Errorf("expected PATCH, got %s", r.Method)
			}
			json.NewDecoder(r.Body).Decode(&patched)
			json.NewEncoder(w).Encode(data.Book{ID: 3, Title: "T", Author: "A", Note: "n"})
		}))

		if err := controller.SaveNote(context.Background(), 3, "n"); err != nil {
			t.Fatalf("SaveNote() error = %v", err)
		}
		if patched["note"] != "n" {
			t.Errorf("expected note in patch body, got %v", patched)
		}
		if cache.noteUpdates[3] != "n" {
			t.Error("cache should reflect the saved note")
		}
	})

	t.Run("failure leaves the cache untouched", func(t *testing.T) {
		controller, _, cache := newTestController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		if err := controller.SaveNote(context.Background(), 3, "n"); err == nil {
			t.Fatal("expected an error")
		}
		if len(cache.noteUpdates) != 0 {
			t.Error("failed save must not touch the cache")
		}
	})
}

func TestAddFromSearch(t *testing.T) {
	var posted data.Book
	controller, _, _ := newTestController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&posted)
		posted.ID = 42
		json.NewEncoder(w).Encode(posted)
	}))

	result := data.SearchResult{Title: "Dune", Author: "Frank Herbert", Pages: 412}
	book, err := controller.AddFromSearch(context.Background(), result)
	if err != nil {
		t.Fatalf("AddFromSearch() error = %v", err)
	}
	if posted.Status != data.StatusWantToRead {
		t.Errorf("new books belong on the want-to-read shelf, got %q", posted.Status)
	}
	if book.ID != 42 {
		t.Errorf("expected backend id, got %d", book.ID)
	}
}

func TestRecordSession(t *testing.T) {
	var posted data.ReadingSession
	controller, _, _ := newTestController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&posted)
		posted.ID = 9
		json.NewEncoder(w).Encode(posted)
	}))

	created, err := controller.RecordSession(context.Background(), 3, 45, "evening")
	if err != nil {
		t.Fatalf("RecordSession() error = %v", err)
	}
	if posted.Book != 3 || posted.Duration != 45 || posted.Note != "evening" {
		t.Errorf("unexpected payload: %+v", posted)
	}
	if created.ID != 9 {
		t.Errorf("expected backend id, got %d", created.ID)
	}
}
