package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"crm/config"
)

// SendEmail delivers one HTML mail. SendGrid is used when an API key is
// configured, plain SMTP otherwise.
func SendEmail(to []string, subject string, htmlBody string) error {
	cfg := config.AppConfig

	if cfg.SendgridAPIKey != "" {
		return sendViaSendgrid(to, subject, htmlBody)
	}
	return sendViaSMTP(to, subject, htmlBody)
}

func sendViaSendgrid(to []string, subject string, htmlBody string) error {
	cfg := config.AppConfig
	client := sendgrid.NewSendClient(cfg.SendgridAPIKey)
	from := mail.NewEmail("CRM", cfg.EmailSender)

	for _, rcpt := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", rcpt), "", htmlBody)
		resp, err := client.Send(message)
		if err != nil {
			log.Printf("Error sending email via SendGrid: %v", err)
			return err
		}
		if resp.StatusCode >= 400 {
			log.Printf("SendGrid rejected email: %d %s", resp.StatusCode, resp.Body)
			return fmt.Errorf("sendgrid rejected email, code: %d", resp.StatusCode)
		}
	}
	return nil
}

func sendViaSMTP(to []string, subject string, htmlBody string) error {
	cfg := config.AppConfig

	from := cfg.EmailSender
	password := cfg.EmailPassword

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CRM <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, cfg.SMTPHost)

	err := smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the shared HTML layout.
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1F2A44; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1F2A44; line-height: 1.6; }
			.content h2 { color: #1F2A44; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.code { text-align: center; color: #2E7D32; font-size: 40px; margin: 20px 0; letter-spacing: 6px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #5B7DB1; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CRM</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message. Please do not reply.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendLoginCodeEmail mails the six digit login code.
func SendLoginCodeEmail(email, code string, ttlMinutes int) {
	subject := "Your login code"
	body := fmt.Sprintf(`
		<p>Use this code to sign in:</p>
		<h1 class="code">%s</h1>
		<p>The code expires in %d minutes. Do not share it with anyone.</p>
	`, code, ttlMinutes)

	go SendEmail([]string{email}, subject, getEmailTemplate("Login Verification", body))
}

// SendWelcomeEmail greets a freshly registered user.
func SendWelcomeEmail(email, fullName string) {
	subject := "Welcome aboard"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your account has been created. Ask your administrator to add you to a workspace to start working with leads.</p>
	`, fullName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome!", body))
}

// SendProposalEmail mails the workspace proposal to a lead. Returns the
// delivery error synchronously so the caller can report it.
func SendProposalEmail(leadEmail, leadName, subject, text, html string) error {
	body := html
	if body == "" {
		body = fmt.Sprintf(`
			<p>Dear %s,</p>
			<div class="info-box">%s</div>
		`, leadName, text)
		body = getEmailTemplate(subject, body)
	}
	return SendEmail([]string{leadEmail}, subject, body)
}
