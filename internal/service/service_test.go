package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/slotline/interview-api/internal/mailer"
	"github.com/slotline/interview-api/pkg/config"
	"github.com/slotline/interview-api/pkg/events"
)

// ---------- Mocks ----------

type captureBus struct {
	mu       sync.Mutex
	subjects []string
	payloads []interface{}
}

func (b *captureBus) Publish(_ context.Context, subject string, data interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subjects = append(b.subjects, subject)
	b.payloads = append(b.payloads, data)
	return nil
}

func (b *captureBus) Subscribe(string, func(msg *events.Message)) error { return nil }

func (b *captureBus) QueueSubscribe(string, string, func(msg *events.Message)) error { return nil }

func (b *captureBus) Close() error { return nil }

func (b *captureBus) published(subject string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, s := range b.subjects {
		if s == subject {
			n++
		}
	}
	return n
}

type sentMail struct {
	to      string
	name    string
	details mailer.InterviewDetails
}

type captureMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *captureMailer) SendInterviewScheduled(toEmail, toName string, details mailer.InterviewDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: toEmail, name: toName, details: details})
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			AccessTokenTTL: time.Hour,
		},
	}
}
