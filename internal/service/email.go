package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/morem6161/bcsme/internal/domain"
	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendSponsorIssueNotification(ctx context.Context, adminEmail string, app *domain.Application) error {
	issues := ""
	if app.SponsorIssues != nil {
		issues = *app.SponsorIssues
	}

	body := fmt.Sprintf(`A new Junior membership application has been submitted but one or more sponsors could not be verified.

Application ID: %d
Applicant Name: %s
Email: %s

Sponsor Issues:
%s

Please review this application in the admin dashboard.
`, app.ID, app.Name, app.Email, issues)

	return s.send(adminEmail, "BCSME Membership: Sponsor Verification Issue", body)
}

func (s *emailService) SendDecisionNotification(ctx context.Context, app *domain.Application) error {
	var body string
	switch app.BoardStatus {
	case domain.BoardStatusApproved:
		body = fmt.Sprintf("Hello %s,\n\nYour BCSME membership application has been approved. Welcome to the club!\n\nMembership category: %s\n\nBest regards,\nBCSME", app.Name, app.Category)
	case domain.BoardStatusRejected:
		reason := ""
		if app.BoardNotes != nil {
			reason = *app.BoardNotes
		}
		body = fmt.Sprintf("Hello %s,\n\nWe are sorry to inform you that your BCSME membership application was not approved.\n\nReason: %s\n\nBest regards,\nBCSME", app.Name, reason)
	default:
		return fmt.Errorf("no decision to notify for application %d", app.ID)
	}

	return s.send(app.Email, "BCSME Membership: Application Decision", body)
}

func (s *emailService) SendPendingReviewDigest(ctx context.Context, adminEmail string, apps []domain.Application) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d application(s) are paid and awaiting board review:\n\n", len(apps))
	for _, app := range apps {
		fmt.Fprintf(&b, "  #%d  %s <%s>  %s  $%.0f\n", app.ID, app.Name, app.Email, app.Category, app.Fee)
	}
	b.WriteString("\nPlease review them in the admin dashboard.\n")

	return s.send(adminEmail, "BCSME Membership: Applications Awaiting Review", b.String())
}
