package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avasyliev/booktrack/pkg/api"
	"github.com/avasyliev/booktrack/pkg/session"
)

// newTestGateway points both the domain and the auth prefix at one fake
// backend and backs the client with an in-memory session store.
func newTestGateway(t *testing.T, handler http.Handler) (*api.Client, *session.MemStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	sess := session.NewMemStore()
	return api.New(server.URL, server.URL, sess), sess
}

// happyBackend accepts a@b.com / Str0ng!pass and serves a matching profile.
func happyBackend(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/jwt/create/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode token request: %v", err)
		}
		if body["email"] != "a@b.com" || body["password"] != "Str0ng!pass" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "No active account found with the given credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access": "t-access", "refresh": "t-refresh"})
	})
	mux.HandleFunc("/profile/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer t-access" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "email": "a@b.com", "name": "Reader"})
	})
	return mux
}

func TestLoginFlowSubmit(t *testing.T) {
	client, sess := newTestGateway(t, happyBackend(t))
	flow := NewLoginFlow(client, sess)

	profile, token, err := flow.Submit(context.Background(), "a@b.com", "Str0ng!pass")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if profile.Email != "a@b.com" || profile.Name != "Reader" {
		t.Errorf("unexpected profile: %+v", profile)
	}
	if token != "t-access" {
		t.Errorf("expected access token back, got %q", token)
	}
	if stored, ok := sess.AccessToken(); !ok || stored != "t-access" {
		t.Errorf("session not persisted: %q %v", stored, ok)
	}
	if refresh, ok := sess.RefreshToken(); !ok || refresh != "t-refresh" {
		t.Errorf("refresh token not persisted: %q %v", refresh, ok)
	}
	if flow.State() != Succeeded {
		t.Errorf("expected state succeeded, got %v", flow.State())
	}
}

func TestLoginFlowEmptyFieldsSkipNetwork(t *testing.T) {
	called := false
	client, sess := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	flow := NewLoginFlow(client, sess)

	for _, creds := range [][2]string{{"", "x"}, {"a@b.com", ""}, {"", ""}} {
		_, _, err := flow.Submit(context.Background(), creds[0], creds[1])
		var vErr *ValidationError
		if !errors.As(err, &vErr) || err.Error() != MsgEnterEmailAndPassword {
			t.Errorf("creds %v: expected %q, got %v", creds, MsgEnterEmailAndPassword, err)
		}
	}
	if called {
		t.Error("empty credentials must not reach the network")
	}
	if _, ok := sess.AccessToken(); ok {
		t.Error("no token should be stored")
	}
}

func TestLoginFlowBadCredentials(t *testing.T) {
	client, sess := newTestGateway(t, happyBackend(t))
	flow := NewLoginFlow(client, sess)

	_, _, err := flow.Submit(context.Background(), "a@b.com", "wrong")
	if err == nil || err.Error() != MsgInvalidCredentials {
		t.Fatalf("expected %q, got %v", MsgInvalidCredentials, err)
	}
	if !api.IsKind(errors.Unwrap(err), api.KindAuthentication) {
		t.Error("cause should be the authentication rejection")
	}
	if _, ok := sess.AccessToken(); ok {
		t.Error("failed login must not store a token")
	}
	if flow.State() != Failed {
		t.Errorf("expected state failed, got %v", flow.State())
	}
}

func TestLoginFlowServerUnreachable(t *testing.T) {
	sess := session.NewMemStore()
	// A closed server: the connection is refused, nothing comes back.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	client := api.New(server.URL, server.URL, sess)
	flow := NewLoginFlow(client, sess)

	_, _, err := flow.Submit(context.Background(), "a@b.com", "Str0ng!pass")
	if err == nil || err.Error() != MsgServerUnreachable {
		t.Fatalf("expected %q, got %v", MsgServerUnreachable, err)
	}
}

func TestLoginFlowNonReentrant(t *testing.T) {
	client, sess := newTestGateway(t, happyBackend(t))
	flow := NewLoginFlow(client, sess)
	flow.state = Submitting

	_, _, err := flow.Submit(context.Background(), "a@b.com", "Str0ng!pass")
	if !errors.Is(err, ErrInFlight) {
		t.Errorf("expected ErrInFlight, got %v", err)
	}

	// Settled flows accept a fresh submission.
	flow.state = Failed
	if _, _, err := flow.Submit(context.Background(), "a@b.com", "Str0ng!pass"); err != nil {
		t.Errorf("resubmit after settle failed: %v", err)
	}
}
