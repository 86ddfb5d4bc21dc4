package service

import (
	"fmt"
	"strings"
	"time"

	"taskhub-api/internal/models"
	"taskhub-api/internal/store"

	"github.com/google/uuid"
)

// Action types accepted by DeleteRestore.
const (
	ActionDelete     = "delete"
	ActionDeleteAll  = "deleteAll"
	ActionRestore    = "restore"
	ActionRestoreAll = "restoreAll"
)

// TaskService owns the task lifecycle: creation, duplication, updates,
// trash/restore transitions and permanent deletion, plus the notification
// fan-out that task assignment implies.
type TaskService struct {
	tasks   store.TaskStore
	notices store.NoticeStore
}

// NewTaskService wires a TaskService over its storage ports.
func NewTaskService(tasks store.TaskStore, notices store.NoticeStore) *TaskService {
	return &TaskService{tasks: tasks, notices: notices}
}

// CreateTaskInput carries the caller-supplied fields for a new task.
// Stage and Priority are raw strings; parsing fails closed on values
// outside the enums.
type CreateTaskInput struct {
	Title    string
	Team     []string
	Stage    string
	Date     time.Time
	Priority string
	Assets   []string
}

// UpdateTaskInput carries the full replacement field set for an update.
// Omitted fields are cleared; this is full-replace, not a merge.
type UpdateTaskInput struct {
	Title    string
	Date     time.Time
	Team     []string
	Stage    string
	Priority string
	Assets   []string
}

// assignmentText composes the human-readable notification body for a task
// assignment. Priority must already be normalized.
func assignmentText(teamSize int, priority models.TaskPriority, date time.Time) string {
	text := "New task has been assigned to you"
	if teamSize > 1 {
		text += fmt.Sprintf(" and %d others.", teamSize-1)
	}
	text += fmt.Sprintf(
		" The task priority is set at %s priority, so check and act accordingly. The task date is %s. Thank you!!!",
		priority, date.Format("Mon Jan 02 2006"),
	)
	return text
}

// notifyAssignment fans out exactly one notice to the full team.
func (s *TaskService) notifyAssignment(team []string, text, taskID string) error {
	notice := &models.Notice{
		ID:       uuid.NewString(),
		Team:     team,
		Text:     text,
		TaskID:   taskID,
		NotiType: models.NoticeAlert,
	}
	return s.notices.Create(notice)
}

// Create persists a new task seeded with one "assigned" activity authored by
// the actor, then emits a single notice to the team.
func (s *TaskService) Create(in CreateTaskInput, actorID string) (*models.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	stage, err := models.ParseStage(in.Stage)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	priorityIn := in.Priority
	if strings.TrimSpace(priorityIn) == "" {
		priorityIn = string(models.PriorityNormal)
	}
	priority, err := models.ParsePriority(priorityIn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	text := assignmentText(len(in.Team), priority, date)
	task := &models.Task{
		ID:       uuid.NewString(),
		Title:    in.Title,
		Date:     date,
		Priority: priority,
		Stage:    stage,
		Team:     in.Team,
		Assets:   in.Assets,
		Activities: []models.Activity{{
			Type:     models.ActivityAssigned,
			Activity: text,
			By:       actorID,
			Date:     time.Now(),
		}},
	}
	if err := s.tasks.Create(task); err != nil {
		return nil, err
	}
	if err := s.notifyAssignment(in.Team, text, task.ID); err != nil {
		return nil, err
	}
	return task, nil
}

// Duplicate copies team, sub-tasks, assets, priority, stage and date from the
// source task under a fresh identity. The duplicate starts its own activity
// log with a seeded "assigned" entry; the source log is not carried over.
func (s *TaskService) Duplicate(sourceID, actorID string) (*models.Task, error) {
	source, err := s.tasks.FindByID(sourceID)
	if err != nil {
		return nil, err
	}

	text := assignmentText(len(source.Team), source.Priority, source.Date)
	task := &models.Task{
		ID:       uuid.NewString(),
		Title:    source.Title + " - Duplicate",
		Date:     source.Date,
		Priority: source.Priority,
		Stage:    source.Stage,
		Team:     source.Team,
		Assets:   source.Assets,
		SubTasks: source.SubTasks,
		Activities: []models.Activity{{
			Type:     models.ActivityAssigned,
			Activity: text,
			By:       actorID,
			Date:     time.Now(),
		}},
	}
	if err := s.tasks.Create(task); err != nil {
		return nil, err
	}
	if err := s.notifyAssignment(source.Team, text, task.ID); err != nil {
		return nil, err
	}
	return task, nil
}

// PostActivity appends an entry to the task's activity log. The log is
// append-only; no notice is emitted.
func (s *TaskService) PostActivity(taskID, activityType, text, actorID string) error {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		return err
	}
	kind, err := models.ParseActivityType(activityType)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	task.Activities = append(task.Activities, models.Activity{
		Type:     kind,
		Activity: text,
		By:       actorID,
		Date:     time.Now(),
	})
	return s.tasks.Save(task)
}

// AddSubTask appends a sub-task entry. No notice is emitted.
func (s *TaskService) AddSubTask(taskID, title string, date time.Time, tag string) error {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		return err
	}
	task.SubTasks = append(task.SubTasks, models.SubTask{
		Title: title,
		Date:  date,
		Tag:   tag,
	})
	return s.tasks.Save(task)
}

// Update overwrites the listed fields wholesale. Reassignment here does not
// re-trigger the assignment notice; only create and duplicate fan out.
func (s *TaskService) Update(taskID string, in UpdateTaskInput) (*models.Task, error) {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	stage, err := models.ParseStage(in.Stage)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	priority, err := models.ParsePriority(in.Priority)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	task.Title = in.Title
	task.Date = in.Date
	task.Priority = priority
	task.Stage = stage
	task.Team = in.Team
	task.Assets = in.Assets
	if err := s.tasks.Save(task); err != nil {
		return nil, err
	}
	return task, nil
}

// Trash soft-deletes a task. Trashing an already-trashed task succeeds
// silently.
func (s *TaskService) Trash(taskID string) error {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		return err
	}
	task.IsTrashed = true
	return s.tasks.Save(task)
}

// Restore clears the trashed flag. Restoring a task that is not trashed is
// an invalid transition.
func (s *TaskService) Restore(taskID string) error {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		return err
	}
	if !task.IsTrashed {
		return fmt.Errorf("%w: task %s is not trashed", ErrInvalidState, taskID)
	}
	task.IsTrashed = false
	return s.tasks.Save(task)
}

// DeleteRestore dispatches on the action type. Permanent deletes cascade to
// notices referencing the removed tasks so readers never see a dangling
// task reference. Returns the number of tasks affected.
func (s *TaskService) DeleteRestore(actionType, taskID string) (int64, error) {
	switch actionType {
	case ActionDelete:
		if err := s.tasks.Delete(taskID); err != nil {
			return 0, err
		}
		if err := s.notices.DeleteByTaskIDs([]string{taskID}); err != nil {
			return 0, err
		}
		return 1, nil

	case ActionDeleteAll:
		trashed, err := s.tasks.Find(store.TaskFilter{IsTrashed: true})
		if err != nil {
			return 0, err
		}
		ids := make([]string, 0, len(trashed))
		for _, t := range trashed {
			ids = append(ids, t.ID)
		}
		count, err := s.tasks.DeleteTrashed()
		if err != nil {
			return 0, err
		}
		if err := s.notices.DeleteByTaskIDs(ids); err != nil {
			return 0, err
		}
		return count, nil

	case ActionRestore:
		if err := s.Restore(taskID); err != nil {
			return 0, err
		}
		return 1, nil

	case ActionRestoreAll:
		return s.tasks.RestoreTrashed()

	default:
		return 0, fmt.Errorf("%w: unknown action type %q", ErrInvalidArgument, actionType)
	}
}

// Get returns a single task. Trashed tasks are invisible here; trash views
// go through List.
func (s *TaskService) Get(taskID string) (*models.Task, error) {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task.IsTrashed {
		return nil, fmt.Errorf("task %s: %w", taskID, store.ErrNotFound)
	}
	return task, nil
}

// List returns tasks filtered by trashed state and optionally by stage.
func (s *TaskService) List(stage string, isTrashed bool) ([]models.Task, error) {
	filter := store.TaskFilter{IsTrashed: isTrashed}
	if strings.TrimSpace(stage) != "" {
		parsed, err := models.ParseStage(stage)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		filter.Stage = parsed
	}
	return s.tasks.Find(filter)
}
