package contact

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"safar-travel-api/config"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&ContactMessage{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T) *ContactService {
	t.Helper()

	return &ContactService{
		DB: newTestDB(t),
		CFG: &config.Config{
			GmailUser:        "from@test.com",
			GmailPass:        "pass",
			ContactRecipient: "inbox@test.com",
			CaptchaSecret:    "captcha-secret",
		},
	}
}

func stubCaptcha(t *testing.T, ok bool, err error) {
	t.Helper()

	prev := verifyCaptcha
	t.Cleanup(func() { verifyCaptcha = prev })
	verifyCaptcha = func(secret, token string) (bool, error) {
		if secret != "captcha-secret" {
			t.Fatalf("unexpected captcha secret: %s", secret)
		}
		return ok, err
	}
}

func stubMail(t *testing.T, err error) *[]byte {
	t.Helper()

	prev := sendMail
	t.Cleanup(func() { sendMail = prev })

	var sentMsg []byte
	sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		if addr != "smtp.gmail.com:587" {
			t.Fatalf("unexpected addr: %s", addr)
		}
		if from != "from@test.com" {
			t.Fatalf("unexpected from: %s", from)
		}
		if len(to) != 1 || to[0] != "inbox@test.com" {
			t.Fatalf("unexpected to: %#v", to)
		}
		sentMsg = msg
		return err
	}
	return &sentMsg
}

func validInput() SubmitInput {
	return SubmitInput{
		Name:         "Aisha",
		Email:        "aisha@example.com",
		Message:      "Do you have availability in October?",
		CaptchaToken: "tok-123",
	}
}

func TestContactService_Submit_OK_PersistsAndSendsMail(t *testing.T) {
	svc := newTestService(t)
	stubCaptcha(t, true, nil)
	sentMsg := stubMail(t, nil)

	record, err := svc.Submit(validInput())
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if record.ID == 0 {
		t.Fatalf("expected persisted record with id")
	}

	var saved ContactMessage
	if err := svc.DB.First(&saved, record.ID).Error; err != nil {
		t.Fatalf("expected saved message: %v", err)
	}
	if saved.Email != "aisha@example.com" {
		t.Fatalf("unexpected email: %s", saved.Email)
	}

	if !strings.Contains(string(*sentMsg), "aisha@example.com") {
		t.Fatalf("expected sender email in mail body: %s", *sentMsg)
	}
	if !strings.Contains(string(*sentMsg), "To: inbox@test.com") {
		t.Fatalf("expected recipient header in mail: %s", *sentMsg)
	}
}

func TestContactService_Submit_SubjectFlowsIntoMailHeader(t *testing.T) {
	svc := newTestService(t)
	stubCaptcha(t, true, nil)
	sentMsg := stubMail(t, nil)

	subject := "Umrah group rates"
	in := validInput()
	in.Subject = &subject

	if _, err := svc.Submit(in); err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if !strings.Contains(string(*sentMsg), "Subject: New contact form message: Umrah group rates") {
		t.Fatalf("expected subject in mail: %s", *sentMsg)
	}
}

func TestContactService_Submit_MissingFields(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name   string
		mutate func(*SubmitInput)
	}{
		{"name", func(in *SubmitInput) { in.Name = "  " }},
		{"email", func(in *SubmitInput) { in.Email = "" }},
		{"message", func(in *SubmitInput) { in.Message = "" }},
		{"captcha token", func(in *SubmitInput) { in.CaptchaToken = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			var ve *ValidationError
			if _, err := svc.Submit(in); !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}

			var count int64
			svc.DB.Model(&ContactMessage{}).Count(&count)
			if count != 0 {
				t.Fatalf("expected no persisted rows, got %d", count)
			}
		})
	}
}

func TestContactService_Submit_InvalidEmail(t *testing.T) {
	svc := newTestService(t)

	in := validInput()
	in.Email = "not-an-email"

	var ve *ValidationError
	if _, err := svc.Submit(in); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestContactService_Submit_CaptchaRejected(t *testing.T) {
	svc := newTestService(t)
	stubCaptcha(t, false, nil)

	if _, err := svc.Submit(validInput()); !errors.Is(err, ErrCaptchaFailed) {
		t.Fatalf("expected ErrCaptchaFailed, got %v", err)
	}

	var count int64
	svc.DB.Model(&ContactMessage{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no persisted rows, got %d", count)
	}
}

func TestContactService_Submit_CaptchaEndpointDown(t *testing.T) {
	svc := newTestService(t)
	stubCaptcha(t, false, errors.New("connection refused"))

	var ue *UpstreamError
	if _, err := svc.Submit(validInput()); !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}

func TestContactService_Submit_MailFails_MessageStillPersisted(t *testing.T) {
	svc := newTestService(t)
	stubCaptcha(t, true, nil)
	stubMail(t, errors.New("smtp down"))

	var ue *UpstreamError
	if _, err := svc.Submit(validInput()); !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}

	var count int64
	svc.DB.Model(&ContactMessage{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected message persisted before mail attempt, got %d rows", count)
	}
}

func TestContactService_List_NewestFirst(t *testing.T) {
	svc := newTestService(t)

	older := ContactMessage{Name: "A", Email: "a@x.com", Message: "first", CreatedAt: time.Now().Add(-time.Hour)}
	newer := ContactMessage{Name: "B", Email: "b@x.com", Message: "second", CreatedAt: time.Now()}
	if err := svc.DB.Create(&older).Error; err != nil {
		t.Fatalf("seed older: %v", err)
	}
	if err := svc.DB.Create(&newer).Error; err != nil {
		t.Fatalf("seed newer: %v", err)
	}

	messages, err := svc.List()
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Message != "second" || messages[1].Message != "first" {
		t.Fatalf("expected newest first, got %q then %q", messages[0].Message, messages[1].Message)
	}
}
