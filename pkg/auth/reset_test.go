package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestResetRequestFlow(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/users/reset_password/", func(w http.ResponseWriter, r *http.Request) {
		calls++
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.com" {
			t.Errorf("unexpected email in request: %q", body["email"])
		}
		w.WriteHeader(http.StatusNoContent)
	})
	client, _ := newTestGateway(t, mux)
	flow := NewResetRequestFlow(client)

	if err := flow.Submit(context.Background(), "a@b.com"); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !flow.Sent() {
		t.Error("expected sent state")
	}

	// Success is terminal; resubmitting does not hit the backend again.
	if err := flow.Submit(context.Background(), "a@b.com"); err != nil {
		t.Fatalf("resubmit error = %v", err)
	}
	if calls != 1 {
		t.Errorf("expected one backend call, got %d", calls)
	}
}

func TestResetRequestFlowFailure(t *testing.T) {
	client, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	flow := NewResetRequestFlow(client)

	err := flow.Submit(context.Background(), "a@b.com")
	if err == nil || err.Error() != MsgResetFailed {
		t.Fatalf("expected %q, got %v", MsgResetFailed, err)
	}
	if flow.Sent() {
		t.Error("failed request must not read as sent")
	}
	// A failed flow may retry.
	if flow.State() != Failed {
		t.Errorf("expected failed, got %v", flow.State())
	}
}

func TestResetConfirmFlow(t *testing.T) {
	var got map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("/users/reset_password_confirm/", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	})
	client, _ := newTestGateway(t, mux)
	flow := NewResetConfirmFlow(client)

	err := flow.Submit(context.Background(), "uid-1", "tok-1", "Str0ng!pass", "Str0ng!pass")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	want := map[string]string{
		"uid":             "uid-1",
		"token":           "tok-1",
		"new_password":    "Str0ng!pass",
		"re_new_password": "Str0ng!pass",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("payload %s: expected %q, got %q", k, v, got[k])
		}
	}
}

func TestResetConfirmFlowWeakPasswordSkipsNetwork(t *testing.T) {
	calls := 0
	client, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	flow := NewResetConfirmFlow(client)

	// Missing lowercase: fine for registration, rejected here.
	err := flow.Submit(context.Background(), "uid", "tok", "STR0NG!XX", "STR0NG!XX")
	if err == nil || err.Error() != MsgWeakResetPassword {
		t.Fatalf("expected %q, got %v", MsgWeakResetPassword, err)
	}
	if calls != 0 {
		t.Error("invalid password must not reach the network")
	}
}

func TestResetConfirmFlowLinkInvalid(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusForbidden} {
		client, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		flow := NewResetConfirmFlow(client)

		err := flow.Submit(context.Background(), "uid", "tok", "Str0ng!pass", "Str0ng!pass")
		if err == nil || err.Error() != MsgResetLinkInvalid {
			t.Errorf("status %d: expected %q, got %v", status, MsgResetLinkInvalid, err)
		}
	}

	// Any other rejection gets the generic wording.
	client, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	flow := NewResetConfirmFlow(client)
	err := flow.Submit(context.Background(), "uid", "tok", "Str0ng!pass", "Str0ng!pass")
	if err == nil || err.Error() != MsgResetConfirmError {
		t.Errorf("expected %q, got %v", MsgResetConfirmError, err)
	}
}
