package logs

import (
	"time"
)

type SystemLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Level     string    `gorm:"size:20;not null" json:"level"`
	Service   string    `gorm:"size:100;not null" json:"service"`
	Action    string    `gorm:"size:255;not null" json:"action"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Admin     *string   `gorm:"size:100" json:"admin,omitempty"`
	Metadata  *string   `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SystemLog) TableName() string {
	return "logs"
}

type LogFilterInput struct {
	Level   *string `form:"level"`
	Service *string `form:"service"`
	Action  *string `form:"action"`
	Limit   int     `form:"limit"`
}
