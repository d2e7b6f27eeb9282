package mail

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	WelcomeSubject = "Добро пожаловать!"
	WelcomeBody    = "Спасибо за регистрацию в нашем сервисе."
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer sends plain text mail through an unauthenticated relay such as MailHog.
type SMTPMailer struct {
	addr string
	from string
}

func NewSMTPMailer(host string, port int, from string) *SMTPMailer {
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return smtp.SendMail(m.addr, nil, m.from, []string{to}, buildMessage(m.from, to, subject, body))
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// Welcomer sends the welcome message in the background. Delivery is not
// guaranteed; failures are only logged.
type Welcomer struct {
	mailer  Mailer
	log     *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewWelcomer(mailer Mailer, log *zap.Logger) *Welcomer {
	return &Welcomer{mailer: mailer, log: log, timeout: 30 * time.Second}
}

func (w *Welcomer) Welcome(email string) {
	if email == "" {
		return
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		defer cancel()

		if err := w.mailer.Send(ctx, email, WelcomeSubject, WelcomeBody); err != nil {
			w.log.Warn("welcome mail failed", zap.String("to", email), zap.Error(err))
		}
	}()
}

// Wait blocks until every pending welcome mail has been attempted.
func (w *Welcomer) Wait() {
	w.wg.Wait()
}
