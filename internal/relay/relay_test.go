package relay

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := Message{Name: "Ada", Email: "ada@example.com", Body: "Hello"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		msg  Message
	}{
		{"empty name", Message{Email: "ada@example.com", Body: "Hello"}},
		{"whitespace name", Message{Name: "  ", Email: "ada@example.com", Body: "Hello"}},
		{"empty body", Message{Name: "Ada", Email: "ada@example.com"}},
		{"bad email", Message{Name: "Ada", Email: "not-an-address", Body: "Hello"}},
		{"empty email", Message{Name: "Ada", Body: "Hello"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.msg.Validate())
		})
	}
}

func TestComposePayload(t *testing.T) {
	payload := string(compose("site@example.com", "owner@example.com", Message{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Body:  "I have a project for you.",
	}))

	assert.Contains(t, payload, "To: owner@example.com\r\n")
	assert.Contains(t, payload, "Subject: Portfolio Contact: Ada Lovelace\r\n")
	assert.Contains(t, payload, "From: site@example.com\r\n")
	assert.Contains(t, payload, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, payload, "I have a project for you.")
}

func TestSendWithoutCredentials(t *testing.T) {
	sender := NewSMTPSender(Config{Host: "smtp.example.com", Port: "587"}, nil)

	err := sender.Send(context.Background(), Message{
		Name: "Ada", Email: "ada@example.com", Body: "Hello",
	})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
