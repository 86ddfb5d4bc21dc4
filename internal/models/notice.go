package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NoticeType represents the delivery flavor of a notification
type NoticeType string

const (
	NoticeAlert   NoticeType = "alert"
	NoticeMessage NoticeType = "message"
)

// Notice is a broadcast notification addressed to a task's team.
// IsRead holds the IDs of recipients who have acknowledged it; a user
// appears at most once.
type Notice struct {
	ID       string                      `json:"id" gorm:"primaryKey"`
	Team     datatypes.JSONSlice[string] `json:"team"`
	Text     string                      `json:"text" gorm:"not null"`
	TaskID   string                      `json:"task" gorm:"column:task_id;index"`
	NotiType NoticeType                  `json:"notiType" gorm:"column:noti_type;not null;default:'alert'"`
	IsRead   datatypes.JSONSlice[string] `json:"isRead"`
	gorm.Model
}

// TableName specifies the table name for Notice Model
func (Notice) TableName() string {
	return "notices"
}

// ReadBy reports whether a user has already acknowledged the notice.
func (n *Notice) ReadBy(userID string) bool {
	for _, id := range n.IsRead {
		if id == userID {
			return true
		}
	}
	return false
}

// AddressedTo reports whether a user is a recipient of the notice.
func (n *Notice) AddressedTo(userID string) bool {
	for _, id := range n.Team {
		if id == userID {
			return true
		}
	}
	return false
}
