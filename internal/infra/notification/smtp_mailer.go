// Package notification delivers generated credentials to their owners and
// selects the delivery channel from configuration.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"lmi/config"
	"lmi/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpMailer implements CredentialDispatcher by sending the credential mail
// directly through an SMTP relay.
type smtpMailer struct {
	cfg    *config.SMTPConfig
	logger *slog.Logger

	// sendMail is swappable in tests; defaults to smtp.SendMail.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer creates a new SMTP credential dispatcher.
func NewSMTPMailer(cfg *config.SMTPConfig, logger *slog.Logger) (service.CredentialDispatcher, error) {
	if cfg == nil || cfg.Host == "" {
		return nil, errors.New("smtp host is required for smtp provider")
	}
	if cfg.From == "" {
		return nil, errors.New("smtp from address is required for smtp provider")
	}

	return &smtpMailer{
		cfg:      cfg,
		logger:   logger,
		sendMail: smtp.SendMail,
	}, nil
}

// Dispatch sends the welcome mail carrying the one-time credential.
func (m *smtpMailer) Dispatch(ctx context.Context, notice *service.CredentialNotice) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := buildCredentialMail(m.cfg.From, notice)

	m.logger.Info("[SMTP] Sending credential mail",
		slog.Uint64("admin_id", uint64(notice.AdminID)),
		slog.String("relay", addr),
	)

	if err := m.sendMail(addr, auth, m.cfg.From, []string{notice.Email}, msg); err != nil {
		return errors.Wrap(err, "failed to send credential mail")
	}

	m.logger.Info("[SMTP] Credential mail sent",
		slog.Uint64("admin_id", uint64(notice.AdminID)),
	)

	return nil
}

// Close releases resources (no-op, connections are per-send).
func (m *smtpMailer) Close() error {
	return nil
}

// buildCredentialMail renders the RFC 5322 message body. Plain text only.
func buildCredentialMail(from string, notice *service.CredentialNotice) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", notice.Email)
	b.WriteString("Subject: Your admin account credentials\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Hello %s,\r\n\r\n", notice.Username)
	b.WriteString("Your administrator account has been created.\r\n\r\n")
	fmt.Fprintf(&b, "Username: %s\r\n", notice.Username)
	fmt.Fprintf(&b, "Password: %s\r\n\r\n", notice.Password)
	b.WriteString("Please sign in and change this password.\r\n")

	return []byte(b.String())
}
