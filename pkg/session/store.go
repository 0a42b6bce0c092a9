package session

import (
	"github.com/avasyliev/booktrack/pkg/data"
	"github.com/avasyliev/booktrack/pkg/logger"
)

// Credential is the access/refresh token pair identifying a session.
// No local validation is done on either token; the backend decides
// whether they are still good.
type Credential struct {
	AccessToken  string
	RefreshToken string
}

// Store persists the credential across runs in two independent slots.
// Absence of the access slot means not authenticated.
type Store interface {
	Save(cred Credential) error
	AccessToken() (string, bool)
	RefreshToken() (string, bool)
	Clear() error
}

const (
	slotAccess  = "access_token"
	slotRefresh = "refresh_token"
)

// SlotStore keeps the credential in the durable client storage.
type SlotStore struct {
	repo *data.Repository
}

func NewSlotStore(repo *data.Repository) *SlotStore {
	return &SlotStore{repo: repo}
}

func (s *SlotStore) Save(cred Credential) error {
	if err := s.repo.PutSlot(slotAccess, cred.AccessToken); err != nil {
		return err
	}
	return s.repo.PutSlot(slotRefresh, cred.RefreshToken)
}

func (s *SlotStore) AccessToken() (string, bool) {
	return s.slot(slotAccess)
}

func (s *SlotStore) RefreshToken() (string, bool) {
	return s.slot(slotRefresh)
}

func (s *SlotStore) slot(name string) (string, bool) {
	value, ok, err := s.repo.GetSlot(name)
	if err != nil {
		logger.Log.WithError(err).Errorf("failed to read %s slot", name)
		return "", false
	}
	return value, ok
}

func (s *SlotStore) Clear() error {
	if err := s.repo.DeleteSlot(slotAccess); err != nil {
		return err
	}
	return s.repo.DeleteSlot(slotRefresh)
}

// MemStore holds the credential in memory only. Used by tests and as a
// fallback when the durable storage cannot be opened.
type MemStore struct {
	cred Credential
	set  bool
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Save(cred Credential) error {
	s.cred = cred
	s.set = true
	return nil
}

func (s *MemStore) AccessToken() (string, bool) {
	if !s.set || s.cred.AccessToken == "" {
		return "", false
	}
	return s.cred.AccessToken, true
}

func (s *MemStore) RefreshToken() (string, bool) {
	if !s.set || s.cred.RefreshToken == "" {
		return "", false
	}
	return s.cred.RefreshToken, true
}

func (s *MemStore) Clear() error {
	s.cred = Credential{}
	s.set = false
	return nil
}
