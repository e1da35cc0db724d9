package notification

import (
	"context"
	"log/slog"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmi/config"
	"lmi/internal/domain/service"
)

func TestNewSMTPMailer_RequiresHostAndFrom(t *testing.T) {
	logger := slog.Default()

	_, err := NewSMTPMailer(nil, logger)
	assert.Error(t, err)

	_, err = NewSMTPMailer(&config.SMTPConfig{From: "no-reply@example.com"}, logger)
	assert.Error(t, err)

	_, err = NewSMTPMailer(&config.SMTPConfig{Host: "mail.example.com"}, logger)
	assert.Error(t, err)
}

func TestSMTPMailer_Dispatch(t *testing.T) {
	mailer, err := NewSMTPMailer(&config.SMTPConfig{
		Host: "mail.example.com",
		Port: 587,
		From: "no-reply@example.com",
	}, slog.Default())
	require.NoError(t, err)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	impl := mailer.(*smtpMailer)
	impl.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotMsg = msg

		return nil
	}

	notice := &service.CredentialNotice{
		AdminID:  42,
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "q7K!x2Mm9p#A",
	}
	require.NoError(t, mailer.Dispatch(context.Background(), notice))

	assert.Equal(t, "mail.example.com:587", gotAddr)
	assert.Equal(t, "no-reply@example.com", gotFrom)
	assert.Equal(t, []string{"jdoe@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Username: jdoe")
	assert.Contains(t, string(gotMsg), "Password: q7K!x2Mm9p#A")
	assert.Contains(t, string(gotMsg), "To: jdoe@example.com")
}

func TestSMTPMailer_DispatchCancelledContext(t *testing.T) {
	mailer, err := NewSMTPMailer(&config.SMTPConfig{
		Host: "mail.example.com",
		Port: 587,
		From: "no-reply@example.com",
	}, slog.Default())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, mailer.Dispatch(ctx, &service.CredentialNotice{Email: "jdoe@example.com"}))
}
