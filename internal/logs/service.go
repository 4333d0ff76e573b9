package logs

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"
)

type LogService struct {
	DB *gorm.DB
}

func (ls *LogService) Log(log SystemLog, metadata interface{}) error {
	var metaStr *string

	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			str := string(b)
			metaStr = &str
		}
	}

	newLog := SystemLog{
		Level:     log.Level,
		Service:   log.Service,
		Action:    log.Action,
		Message:   log.Message,
		Admin:     log.Admin,
		Metadata:  metaStr,
		CreatedAt: time.Now(),
	}

	return ls.DB.Create(&newLog).Error
}

func (ls *LogService) GetLogs(input LogFilterInput) ([]SystemLog, error) {
	if input.Limit <= 0 || input.Limit > 500 {
		input.Limit = 100
	}

	q := ls.DB.Model(&SystemLog{})

	if input.Level != nil && strings.TrimSpace(*input.Level) != "" {
		q = q.Where("level = ?", strings.TrimSpace(*input.Level))
	}
	if input.Service != nil && strings.TrimSpace(*input.Service) != "" {
		q = q.Where("service = ?", strings.TrimSpace(*input.Service))
	}
	if input.Action != nil && strings.TrimSpace(*input.Action) != "" {
		q = q.Where("action = ?", strings.TrimSpace(*input.Action))
	}

	var rows []SystemLog
	if err := q.Order("created_at DESC").Limit(input.Limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
