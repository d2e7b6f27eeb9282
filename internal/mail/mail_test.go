package mail

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (r *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, to+"|"+subject+"|"+body)
	return r.err
}

func TestWelcomer_SendsFixedMessage(t *testing.T) {
	rec := &recordingMailer{}
	w := NewWelcomer(rec, zap.NewNop())

	w.Welcome("a@gmail.com")
	w.Welcome("")
	w.Wait()

	if len(rec.sent) != 1 {
		t.Fatalf("expected one mail, got %d", len(rec.sent))
	}
	if rec.sent[0] != "a@gmail.com|"+WelcomeSubject+"|"+WelcomeBody {
		t.Fatalf("unexpected mail %q", rec.sent[0])
	}
}

func TestWelcomer_FailureIsSwallowed(t *testing.T) {
	rec := &recordingMailer{err: errors.New("relay down")}
	w := NewWelcomer(rec, zap.NewNop())

	w.Welcome("a@mail.ru")
	w.Wait()

	if len(rec.sent) != 1 {
		t.Fatalf("expected one attempt, got %d", len(rec.sent))
	}
}

func TestBuildMessage_EncodesSubject(t *testing.T) {
	msg := string(buildMessage("noreply@example.com", "a@gmail.com", WelcomeSubject, WelcomeBody))

	if !strings.Contains(msg, "Subject: =?utf-8?q?") {
		t.Fatalf("subject must be Q-encoded: %q", msg)
	}
	if !strings.HasSuffix(msg, "\r\n\r\n"+WelcomeBody) {
		t.Fatalf("body must follow a blank line: %q", msg)
	}
}
