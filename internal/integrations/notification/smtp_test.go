package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

func TestNewSMTPSender_FromFallsBackToUsername(t *testing.T) {
	sender, err := NewSMTPSender(SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "robot@example.com",
		Password: "secret",
		Timeout:  time.Second,
	}, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, "robot@example.com", sender.from)
}

func TestSMTPSender_InvalidMessage(t *testing.T) {
	sender, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 25, From: "robot@example.com"}, logger.Discard())
	require.NoError(t, err)

	err = sender.Send(context.Background(), &Message{Subject: "no recipient"})
	assert.ErrorIs(t, err, ErrInvalidMessage)

	err = sender.Send(context.Background(), &Message{To: "not an address", Subject: "s"})
	assert.ErrorIs(t, err, ErrInvalidMessage)
}
