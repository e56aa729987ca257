package models

// RoomTypePublic is reported for rooms stored without an explicit type.
const RoomTypePublic = "public"

type ChatRoom struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	ChatName   string `gorm:"column:chat_name;not null" json:"chatName"`
	SecretCode string `gorm:"column:secret_code;not null;uniqueIndex:idx_chat_rooms_secret_code" json:"secretCode"`
	Type       string `gorm:"column:type;not null;default:public" json:"type"`
}

func (ChatRoom) TableName() string {
	return "chat_rooms"
}

// EffectiveType returns the room type, treating an empty value as public.
func (r ChatRoom) EffectiveType() string {
	if r.Type == "" {
		return RoomTypePublic
	}
	return r.Type
}
