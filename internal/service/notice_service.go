package service

import (
	"fmt"

	"taskhub-api/internal/models"
	"taskhub-api/internal/store"
)

// NoticeService owns per-recipient read tracking on notifications.
type NoticeService struct {
	notices store.NoticeStore
}

// NewNoticeService wires a NoticeService over its storage port.
func NewNoticeService(notices store.NoticeStore) *NoticeService {
	return &NoticeService{notices: notices}
}

// ListUnread returns notices addressed to the user that the user has not
// acknowledged yet, newest first.
func (s *NoticeService) ListUnread(userID string) ([]models.Notice, error) {
	return s.notices.FindForUser(userID)
}

// MarkRead acknowledges notifications for a user. Scope "all" marks every
// unread notice addressed to the user; otherwise a single notice id is
// required. Marking an already-read notice is a no-op, so the operation is
// idempotent in both scopes.
func (s *NoticeService) MarkRead(userID, scope, noticeID string) error {
	if scope == "all" {
		unread, err := s.notices.FindForUser(userID)
		if err != nil {
			return err
		}
		for i := range unread {
			unread[i].IsRead = append(unread[i].IsRead, userID)
			if err := s.notices.Save(&unread[i]); err != nil {
				return err
			}
		}
		return nil
	}

	if noticeID == "" {
		return fmt.Errorf("%w: notification id is required", ErrInvalidArgument)
	}
	notice, err := s.notices.FindByID(noticeID)
	if err != nil {
		return err
	}
	if notice.ReadBy(userID) {
		return nil
	}
	notice.IsRead = append(notice.IsRead, userID)
	return s.notices.Save(notice)
}
