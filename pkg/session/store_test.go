package session

import (
	"path/filepath"
	"testing"

	"github.com/avasyliev/booktrack/pkg/data"
)

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	if _, ok := store.AccessToken(); ok {
		t.Error("fresh store should hold no access token")
	}
	if _, ok := store.RefreshToken(); ok {
		t.Error("fresh store should hold no refresh token")
	}

	if err := store.Save(Credential{AccessToken: "a1", RefreshToken: "r1"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if tok, ok := store.AccessToken(); !ok || tok != "a1" {
		t.Errorf("expected access a1, got %q %v", tok, ok)
	}
	if tok, ok := store.RefreshToken(); !ok || tok != "r1" {
		t.Errorf("expected refresh r1, got %q %v", tok, ok)
	}

	// Saving again overwrites both slots.
	store.Save(Credential{AccessToken: "a2", RefreshToken: "r2"})
	if tok, _ := store.AccessToken(); tok != "a2" {
		t.Errorf("expected access a2, got %q", tok)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok := store.AccessToken(); ok {
		t.Error("cleared store should hold no access token")
	}
}

func TestMemStoreEmptyAccessTokenMeansAbsent(t *testing.T) {
	store := NewMemStore()
	store.Save(Credential{AccessToken: "", RefreshToken: "r"})
	if _, ok := store.AccessToken(); ok {
		t.Error("empty access token must read as absent")
	}
}

func TestSlotStore(t *testing.T) {
	repo, err := data.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open repository: %v", err)
	}
	defer repo.Close()

	store := NewSlotStore(repo)
	if _, ok := store.AccessToken(); ok {
		t.Error("fresh store should hold no access token")
	}

	if err := store.Save(Credential{AccessToken: "a1", RefreshToken: "r1"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if tok, ok := store.AccessToken(); !ok || tok != "a1" {
		t.Errorf("expected access a1, got %q %v", tok, ok)
	}
	if tok, ok := store.RefreshToken(); !ok || tok != "r1" {
		t.Errorf("expected refresh r1, got %q %v", tok, ok)
	}

	// The credential survives a fresh store over the same repository.
	again := NewSlotStore(repo)
	if tok, ok := again.AccessToken(); !ok || tok != "a1" {
		t.Errorf("expected persisted access a1, got %q %v", tok, ok)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok := store.AccessToken(); ok {
		t.Error("cleared store should hold no access token")
	}
	if _, ok := store.RefreshToken(); ok {
		t.Error("cleared store should hold no refresh token")
	}

	// Clearing an already empty store is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear() error = %v", err)
	}
}
