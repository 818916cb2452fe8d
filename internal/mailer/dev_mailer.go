package mailer

import (
	"fmt"

	"github.com/slotline/interview-api/pkg/logger"
)

type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendInterviewScheduled(toEmail, toName string, details InterviewDetails) error {
	logger.Info("📧 [DEV MAIL] Interview Scheduled Email",
		"to", toEmail,
		"name", toName,
		"company", details.CompanyName,
		"date", details.Date,
		"meeting_link", details.MeetingLink,
	)

	fmt.Printf("\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"📧 INTERVIEW SCHEDULED EMAIL (DEV MODE)\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"To: %s (%s)\n"+
		"Subject: Your interview with %s is scheduled\n"+
		"\n"+
		"With: %s\n"+
		"When: %s %s–%s\n"+
		"Meeting link: %s\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n",
		toEmail, toName, details.CompanyName,
		details.WithName, details.Date, details.StartTime, details.EndTime,
		details.MeetingLink)

	return nil
}
