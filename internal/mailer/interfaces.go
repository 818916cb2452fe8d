package mailer

// InterviewDetails carries everything a confirmation email mentions.
type InterviewDetails struct {
	CompanyName string
	Date        string
	StartTime   string
	EndTime     string
	MeetingLink string
	WithName    string // name of the other participant
}

type Service interface {
	SendInterviewScheduled(toEmail, toName string, details InterviewDetails) error
}
