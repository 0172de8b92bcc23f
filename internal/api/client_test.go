package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"habitlink/internal/models"
	"habitlink/internal/session"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.MemoryTokenStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tokens := &session.MemoryTokenStore{}
	return NewClient(srv.URL, tokens), tokens
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth, gotType string
	client, tokens := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		json.NewEncoder(w).Encode([]models.Habit{})
	})
	if err := tokens.SetToken("tok-123"); err != nil {
		t.Fatal(err)
	}

	if _, err := client.Habits(context.Background()); err != nil {
		t.Fatalf("Habits failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotType != "application/json" {
		t.Errorf("Content-Type = %q", gotType)
	}
}

func TestClient_ErrorEnvelopeParsed(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invite expired"})
	})

	_, err := client.AcceptInvite(context.Background(), "old")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Invite expired" {
		t.Errorf("got %+v", apiErr)
	}
	if !IsBenignInviteFailure(err) {
		t.Error("expired invite should classify as benign")
	}
}

func TestClient_NonEnvelopeBodyFallsBackToRawText(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable\n"))
	})

	_, err := client.Habits(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if apiErr.Message != "upstream unavailable" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if IsBenignInviteFailure(err) {
		t.Error("gateway error must not classify as benign")
	}
}

func TestClient_UnauthorizedClearsStoredToken(t *testing.T) {
	client, tokens := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
	})
	if err := tokens.SetToken("stale"); err != nil {
		t.Fatal(err)
	}

	_, err := client.Habits(context.Background())
	if !IsAuthRejection(err) {
		t.Fatalf("expected auth rejection, got %v", err)
	}
	if _, err := tokens.Token(); !errors.Is(err, session.ErrNoToken) {
		t.Errorf("stale token not cleared: %v", err)
	}
}

func TestClient_NoContentSkipsDecode(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.RemoveFriend(context.Background(), "f1"); err != nil {
		t.Fatalf("RemoveFriend failed: %v", err)
	}
}

func TestIsBenignInviteFailure_Classification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"already used", &Error{Status: 400, Message: "Invite already used"}, true},
		{"expired", &Error{Status: 400, Message: "Invite expired"}, true},
		{"own invite", &Error{Status: 400, Message: "Cannot accept your own invite"}, true},
		{"other 400", &Error{Status: 400, Message: "Invalid code"}, false},
		{"server error", &Error{Status: 500, Message: "internal"}, false},
		{"plain error", errors.New("Invite expired"), false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBenignInviteFailure(tc.err); got != tc.want {
				t.Errorf("IsBenignInviteFailure = %v, want %v", got, tc.want)
			}
		})
	}
}
