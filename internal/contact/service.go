package contact

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"net/url"
	"strings"

	"safar-travel-api/config"

	"gorm.io/gorm"
)

type ContactService struct {
	DB  *gorm.DB
	CFG *config.Config
}

var sendMail = smtp.SendMail

// verifyCaptcha posts the client token to the verification endpoint and
// reports the boolean outcome. Single blocking call, no retry.
var verifyCaptcha = func(secret, token string) (bool, error) {
	resp, err := http.PostForm(
		"https://www.google.com/recaptcha/api/siteverify",
		url.Values{"secret": {secret}, "response": {token}},
	)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var out struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, err
	}
	return out.Success, nil
}

func (s *ContactService) Submit(in SubmitInput) (*ContactMessage, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)

	if name == "" {
		return nil, invalidf("name is required")
	}
	if email == "" {
		return nil, invalidf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, invalidf("email is not valid")
	}
	if message == "" {
		return nil, invalidf("message is required")
	}
	if strings.TrimSpace(in.CaptchaToken) == "" {
		return nil, invalidf("captcha token is required")
	}

	ok, err := verifyCaptcha(s.CFG.CaptchaSecret, in.CaptchaToken)
	if err != nil {
		return nil, &UpstreamError{Op: "verify captcha", Err: err}
	}
	if !ok {
		return nil, ErrCaptchaFailed
	}

	record := ContactMessage{
		Name:    name,
		Email:   email,
		Subject: in.Subject,
		Message: message,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, err
	}

	if err := s.sendNotification(&record); err != nil {
		log.Printf("Error sending contact notification for message %d: %v\n", record.ID, err)
		return nil, &UpstreamError{Op: "send mail", Err: err}
	}

	return &record, nil
}

func (s *ContactService) sendNotification(m *ContactMessage) error {
	from := s.CFG.GmailUser
	password := s.CFG.GmailPass
	to := []string{s.CFG.ContactRecipient}
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	subject := "New contact form message"
	if m.Subject != nil && *m.Subject != "" {
		subject = fmt.Sprintf("New contact form message: %s", *m.Subject)
	}
	body := fmt.Sprintf(
		"From: %s <%s>\n\n%s",
		m.Name,
		m.Email,
		m.Message,
	)

	// Header and body separated by a blank line, CRLF line endings.
	message := []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"Subject: %s\r\n"+
			"\r\n"+
			"%s",
		s.CFG.ContactRecipient,
		subject,
		body,
	))

	auth := smtp.PlainAuth("", from, password, smtpHost)
	return sendMail(smtpHost+":"+smtpPort, auth, from, to, message)
}

func (s *ContactService) List() ([]ContactMessage, error) {
	var messages []ContactMessage
	if err := s.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
