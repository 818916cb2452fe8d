package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	m := &MailerSendClient{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) SendInterviewScheduled(toEmail, toName string, details InterviewDetails) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := fmt.Sprintf("Your interview with %s is scheduled", details.CompanyName)
	html := fmt.Sprintf(`
		<h2>Interview Scheduled</h2>
		<p>Hi %s,</p>
		<p>Your interview with <strong>%s</strong> (%s) is confirmed for <strong>%s</strong>, %s–%s.</p>
		<p><a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Join Meeting</a></p>
		<p>Keep this link handy; you will need it to join the call.</p>
	`, toName, details.WithName, details.CompanyName, details.Date, details.StartTime, details.EndTime, details.MeetingLink)

	text := fmt.Sprintf("Your interview with %s (%s) is confirmed for %s, %s-%s.\n\nJoin here: %s",
		details.WithName, details.CompanyName, details.Date, details.StartTime, details.EndTime, details.MeetingLink)

	return m.sendEmail(toEmail, toName, subject, text, html)
}

func (m *MailerSendClient) sendEmail(toEmail, toName, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)

	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
