package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskStage represents the lifecycle bucket of a task
type TaskStage string

const (
	StageTodo       TaskStage = "todo"
	StageInProgress TaskStage = "in progress"
	StageCompleted  TaskStage = "completed"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityNormal TaskPriority = "normal"
	PriorityLow    TaskPriority = "low"
)

// ActivityType represents the kind of event recorded on a task's activity log
type ActivityType string

const (
	ActivityAssigned   ActivityType = "assigned"
	ActivityStarted    ActivityType = "started"
	ActivityInProgress ActivityType = "in progress"
	ActivityBug        ActivityType = "bug"
	ActivityCompleted  ActivityType = "completed"
	ActivityCommented  ActivityType = "commented"
	ActivityReviewed   ActivityType = "reviewed"
	ActivityApproved   ActivityType = "approved"
	ActivityRejected   ActivityType = "rejected"
)

// ParseStage normalizes a stage value to its lowercase enum form.
// Unrecognized values are rejected rather than stored as-is.
func ParseStage(s string) (TaskStage, error) {
	switch TaskStage(strings.ToLower(strings.TrimSpace(s))) {
	case StageTodo:
		return StageTodo, nil
	case StageInProgress:
		return StageInProgress, nil
	case StageCompleted:
		return StageCompleted, nil
	}
	return "", fmt.Errorf("invalid stage %q", s)
}

// ParsePriority normalizes a priority value to its lowercase enum form.
func ParsePriority(s string) (TaskPriority, error) {
	switch TaskPriority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityHigh:
		return PriorityHigh, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityNormal:
		return PriorityNormal, nil
	case PriorityLow:
		return PriorityLow, nil
	}
	return "", fmt.Errorf("invalid priority %q", s)
}

// ParseActivityType validates an activity kind against the known set.
func ParseActivityType(s string) (ActivityType, error) {
	switch t := ActivityType(strings.ToLower(strings.TrimSpace(s))); t {
	case ActivityAssigned, ActivityStarted, ActivityInProgress, ActivityBug,
		ActivityCompleted, ActivityCommented, ActivityReviewed,
		ActivityApproved, ActivityRejected:
		return t, nil
	}
	return "", fmt.Errorf("invalid activity type %q", s)
}

// Activity is one append-only entry in a task's event log
type Activity struct {
	Type     ActivityType `json:"type"`
	Activity string       `json:"activity"`
	By       string       `json:"by"`
	Date     time.Time    `json:"date"`
}

// SubTask is a lightweight checklist item attached to a task
type SubTask struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Tag   string    `json:"tag"`
}

// Task represents a task in the system. Array-valued fields are stored as
// JSON columns so the record keeps its document shape in SQLite.
type Task struct {
	ID         string                        `json:"id" gorm:"primaryKey"`
	Title      string                        `json:"title" gorm:"not null"`
	Date       time.Time                     `json:"date"`
	Priority   TaskPriority                  `json:"priority" gorm:"not null;default:'normal'"`
	Stage      TaskStage                     `json:"stage" gorm:"not null;default:'todo'"`
	Team       datatypes.JSONSlice[string]   `json:"team"`
	Assets     datatypes.JSONSlice[string]   `json:"assets"`
	SubTasks   datatypes.JSONSlice[SubTask]  `json:"subTasks"`
	Activities datatypes.JSONSlice[Activity] `json:"activities"`
	IsTrashed  bool                          `json:"isTrashed" gorm:"not null;default:false;index"`
	gorm.Model
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}

// HasMember reports whether a user is part of the task's team.
func (t *Task) HasMember(userID string) bool {
	for _, id := range t.Team {
		if id == userID {
			return true
		}
	}
	return false
}
