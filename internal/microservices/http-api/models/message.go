package models

import "time"

// Message is an immutable post in a room. It references its room by secret
// code value only; ID breaks ties between equal CreatedAt values.
type Message struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	SecretCode string    `gorm:"column:secret_code;not null;index:idx_messages_secret_code_created" json:"-"`
	UserName   string    `gorm:"column:user_name;not null" json:"userName"`
	UserLogo   string    `gorm:"column:user_logo;not null;default:''" json:"userLogo"`
	Text       string    `gorm:"column:text;not null;type:text" json:"text"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;autoCreateTime;index:idx_messages_secret_code_created" json:"createdAt"`
}

func (Message) TableName() string {
	return "messages"
}
