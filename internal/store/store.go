package store

import (
	"errors"

	"taskhub-api/internal/models"
)

// ErrNotFound is returned when a referenced record does not exist.
// Implementations translate their driver-specific miss into this sentinel.
var ErrNotFound = errors.New("record not found")

// TaskFilter narrows task listings. Stage is optional; IsTrashed always
// applies so active and trashed views never mix.
type TaskFilter struct {
	Stage     models.TaskStage
	IsTrashed bool
}

// TaskStore is the persistence port for tasks.
type TaskStore interface {
	Create(task *models.Task) error
	FindByID(id string) (*models.Task, error)
	Find(filter TaskFilter) ([]models.Task, error)
	FindNonTrashed() ([]models.Task, error)
	Save(task *models.Task) error
	// Delete permanently removes a task regardless of trashed state.
	Delete(id string) error
	// DeleteTrashed permanently removes all trashed tasks and returns the count.
	DeleteTrashed() (int64, error)
	// RestoreTrashed clears the trashed flag on all trashed tasks and returns the count.
	RestoreTrashed() (int64, error)
}

// UserStore is the persistence port for user accounts.
type UserStore interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindAll() ([]models.User, error)
	FindActive(limit int) ([]models.User, error)
	Save(user *models.User) error
	Delete(id string) error
}

// NoticeStore is the persistence port for notifications.
type NoticeStore interface {
	Create(notice *models.Notice) error
	FindByID(id string) (*models.Notice, error)
	// FindForUser returns notices addressed to the user that the user has
	// not yet read, newest first.
	FindForUser(userID string) ([]models.Notice, error)
	Save(notice *models.Notice) error
	// DeleteByTaskIDs removes notices referencing any of the given tasks.
	DeleteByTaskIDs(ids []string) error
}
