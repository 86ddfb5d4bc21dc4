package store

import (
	"errors"
	"fmt"

	"taskhub-api/internal/models"

	"gorm.io/gorm"
)

// gormTaskStore implements TaskStore on top of a gorm connection.
type gormTaskStore struct {
	db *gorm.DB
}

// NewTaskStore returns a gorm-backed TaskStore.
func NewTaskStore(db *gorm.DB) TaskStore {
	return &gormTaskStore{db: db}
}

func (s *gormTaskStore) Create(task *models.Task) error {
	return s.db.Create(task).Error
}

func (s *gormTaskStore) FindByID(id string) (*models.Task, error) {
	var task models.Task
	if err := s.db.Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &task, nil
}

func (s *gormTaskStore) Find(filter TaskFilter) ([]models.Task, error) {
	query := s.db.Model(&models.Task{}).Where("is_trashed = ?", filter.IsTrashed)
	if filter.Stage != "" {
		query = query.Where("stage = ?", filter.Stage)
	}
	var tasks []models.Task
	if err := query.Order("created_at desc").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *gormTaskStore) FindNonTrashed() ([]models.Task, error) {
	return s.Find(TaskFilter{IsTrashed: false})
}

func (s *gormTaskStore) Save(task *models.Task) error {
	return s.db.Save(task).Error
}

func (s *gormTaskStore) Delete(id string) error {
	// Unscoped: the trashed flag is the domain's soft delete; a store delete
	// is always permanent.
	result := s.db.Unscoped().Where("id = ?", id).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *gormTaskStore) DeleteTrashed() (int64, error) {
	result := s.db.Unscoped().Where("is_trashed = ?", true).Delete(&models.Task{})
	return result.RowsAffected, result.Error
}

func (s *gormTaskStore) RestoreTrashed() (int64, error) {
	result := s.db.Model(&models.Task{}).
		Where("is_trashed = ?", true).
		Update("is_trashed", false)
	return result.RowsAffected, result.Error
}

// gormUserStore implements UserStore on top of a gorm connection.
type gormUserStore struct {
	db *gorm.DB
}

// NewUserStore returns a gorm-backed UserStore.
func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *gormUserStore) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) FindAll() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *gormUserStore) FindActive(limit int) ([]models.User, error) {
	var users []models.User
	query := s.db.Where("is_active = ?", true).Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *gormUserStore) Save(user *models.User) error {
	return s.db.Save(user).Error
}

func (s *gormUserStore) Delete(id string) error {
	result := s.db.Unscoped().Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

// gormNoticeStore implements NoticeStore on top of a gorm connection.
type gormNoticeStore struct {
	db *gorm.DB
}

// NewNoticeStore returns a gorm-backed NoticeStore.
func NewNoticeStore(db *gorm.DB) NoticeStore {
	return &gormNoticeStore{db: db}
}

func (s *gormNoticeStore) Create(notice *models.Notice) error {
	return s.db.Create(notice).Error
}

func (s *gormNoticeStore) FindByID(id string) (*models.Notice, error) {
	var notice models.Notice
	if err := s.db.Where("id = ?", id).First(&notice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notice %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &notice, nil
}

// Recipient membership lives inside JSON columns, so matching happens here
// rather than in SQL. Notice volume is small (one row per task creation).
func (s *gormNoticeStore) FindForUser(userID string) ([]models.Notice, error) {
	all, err := s.findAddressedTo(userID)
	if err != nil {
		return nil, err
	}
	unread := make([]models.Notice, 0, len(all))
	for _, n := range all {
		if !n.ReadBy(userID) {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

func (s *gormNoticeStore) findAddressedTo(userID string) ([]models.Notice, error) {
	var notices []models.Notice
	if err := s.db.Order("created_at desc").Find(&notices).Error; err != nil {
		return nil, err
	}
	addressed := make([]models.Notice, 0, len(notices))
	for _, n := range notices {
		if n.AddressedTo(userID) {
			addressed = append(addressed, n)
		}
	}
	return addressed, nil
}

func (s *gormNoticeStore) Save(notice *models.Notice) error {
	return s.db.Save(notice).Error
}

func (s *gormNoticeStore) DeleteByTaskIDs(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Unscoped().Where("task_id IN ?", ids).Delete(&models.Notice{}).Error
}
