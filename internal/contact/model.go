package contact

import "time"

type ContactMessage struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

type SubmitInput struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Subject      *string `json:"subject"`
	Message      string  `json:"message"`
	CaptchaToken string  `json:"captcha_token"`
}
