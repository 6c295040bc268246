package slackbot

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/slack-go/slack"
)

type fakeMessenger struct {
	mu    sync.Mutex
	calls []string
	err   error
	sent  chan string
}

func newFakeMessenger(err error) *fakeMessenger {
	return &fakeMessenger{err: err, sent: make(chan string, 8)}
}

func (f *fakeMessenger) PostMessageContext(_ context.Context, channelID string, _ ...slack.MsgOption) (string, string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, channelID)
	f.mu.Unlock()
	f.sent <- channelID
	return "D123", "1700000000.000100", f.err
}

func (f *fakeMessenger) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func waitForSend(t *testing.T, f *fakeMessenger) string {
	t.Helper()
	select {
	case recipient := <-f.sent:
		return recipient
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for an outbound message send")
		return ""
	}
}

func assertNoMoreSends(t *testing.T, f *fakeMessenger) {
	t.Helper()
	select {
	case recipient := <-f.sent:
		t.Errorf("unexpected extra message send to %q", recipient)
	case <-time.After(50 * time.Millisecond):
	}
}

const teamJoinBody = `{
	"token": "t0ken",
	"team_id": "T123",
	"type": "event_callback",
	"event": {
		"type": "team_join",
		"user": {"id": "U123", "name": "newbie"}
	}
}`

func TestHandleURLVerification(t *testing.T) {
	h := NewEventHandler(NewGreeter(newFakeMessenger(nil), testRegistry(t)))
	body := `{"token": "t0ken", "type": "url_verification", "challenge": "abc"}`

	resp, contentType, status := h.Handle(t.Context(), []byte(body))
	if status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}
	if contentType != "text/plain" {
		t.Errorf("content type = %q, want %q", contentType, "text/plain")
	}
	if string(resp) != "abc" {
		t.Errorf("response body = %q, want %q", resp, "abc")
	}
}

func TestHandleBadPayload(t *testing.T) {
	h := NewEventHandler(NewGreeter(newFakeMessenger(nil), testRegistry(t)))

	if _, _, status := h.Handle(t.Context(), []byte("{not json")); status != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", status, http.StatusBadRequest)
	}
}

func TestHandleTeamJoinGreetsOnce(t *testing.T) {
	f := newFakeMessenger(nil)
	h := NewEventHandler(NewGreeter(f, testRegistry(t)))

	_, _, status := h.Handle(t.Context(), []byte(teamJoinBody))
	if status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}

	if recipient := waitForSend(t, f); recipient != "U123" {
		t.Errorf("welcome message recipient = %q, want %q", recipient, "U123")
	}
	assertNoMoreSends(t, f)
}

func TestHandleTeamJoinSendFailureStillAcks(t *testing.T) {
	f := newFakeMessenger(errors.New("user unreachable"))
	h := NewEventHandler(NewGreeter(f, testRegistry(t)))

	_, _, status := h.Handle(t.Context(), []byte(teamJoinBody))
	if status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}
	waitForSend(t, f)
}

func TestHandleTeamJoinWithoutUser(t *testing.T) {
	f := newFakeMessenger(nil)
	h := NewEventHandler(NewGreeter(f, testRegistry(t)))
	body := `{"type": "event_callback", "event": {"type": "team_join"}}`

	if _, _, status := h.Handle(t.Context(), []byte(body)); status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}
	assertNoMoreSends(t, f)
}

func TestHandleMemberJoinedChannel(t *testing.T) {
	f := newFakeMessenger(nil)
	h := NewEventHandler(NewGreeter(f, testRegistry(t)))
	body := `{
		"type": "event_callback",
		"event": {"type": "member_joined_channel", "user": "U456", "channel": "C789"}
	}`

	if _, _, status := h.Handle(t.Context(), []byte(body)); status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}
	// Channel joins are logged, not greeted.
	assertNoMoreSends(t, f)
}

func TestGreetEmptyUserID(t *testing.T) {
	g := NewGreeter(newFakeMessenger(nil), testRegistry(t))
	if err := g.Greet(t.Context(), ""); err == nil {
		t.Error("Greet() with an empty user ID: expected an error")
	}
}

func TestGreetWrapsSendError(t *testing.T) {
	sendErr := errors.New("rate limited")
	g := NewGreeter(newFakeMessenger(sendErr), testRegistry(t))

	if err := g.Greet(t.Context(), "U123"); !errors.Is(err, sendErr) {
		t.Errorf("Greet() error = %v, want wrapped %v", err, sendErr)
	}
}
