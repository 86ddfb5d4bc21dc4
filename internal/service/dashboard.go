package service

import (
	"time"

	"taskhub-api/internal/models"
	"taskhub-api/internal/store"
)

// priorityOrder fixes the dashboard's graph ordering to the canonical enum
// order rather than first-seen aggregation order.
var priorityOrder = []models.TaskPriority{
	models.PriorityHigh,
	models.PriorityMedium,
	models.PriorityNormal,
	models.PriorityLow,
}

// UserSummary is the reduced user shape exposed on the dashboard.
type UserSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Role      string    `json:"role"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// PriorityCount is one graph data point: a priority and its task count.
type PriorityCount struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// Summary is the dashboard payload.
type Summary struct {
	TotalTasks   int                      `json:"totalTasks"`
	Last10Task   []models.Task            `json:"last10Task"`
	Users        []UserSummary            `json:"users"`
	TasksByStage map[models.TaskStage]int `json:"tasks"`
	GraphData    []PriorityCount          `json:"graphData"`
}

// DashboardService is a read-only reducer over the task store.
type DashboardService struct {
	tasks store.TaskStore
	users store.UserStore
}

// NewDashboardService wires a DashboardService over its storage ports.
func NewDashboardService(tasks store.TaskStore, users store.UserStore) *DashboardService {
	return &DashboardService{tasks: tasks, users: users}
}

// Summarize aggregates non-trashed tasks for the caller. Admins see every
// task and up to ten active user summaries; other callers see only tasks
// they are a team member of and no user list.
func (s *DashboardService) Summarize(userID string, isAdmin bool) (*Summary, error) {
	all, err := s.tasks.FindNonTrashed()
	if err != nil {
		return nil, err
	}

	tasks := all
	if !isAdmin {
		tasks = make([]models.Task, 0, len(all))
		for _, t := range all {
			if t.HasMember(userID) {
				tasks = append(tasks, t)
			}
		}
	}

	byStage := make(map[models.TaskStage]int)
	byPriority := make(map[models.TaskPriority]int)
	for _, t := range tasks {
		byStage[t.Stage]++
		byPriority[t.Priority]++
	}

	graph := make([]PriorityCount, 0, len(priorityOrder))
	for _, p := range priorityOrder {
		if total, ok := byPriority[p]; ok {
			graph = append(graph, PriorityCount{Name: string(p), Total: total})
		}
	}

	last10 := tasks
	if len(last10) > 10 {
		last10 = last10[:10]
	}

	users := []UserSummary{}
	if isAdmin {
		active, err := s.users.FindActive(10)
		if err != nil {
			return nil, err
		}
		for _, u := range active {
			users = append(users, UserSummary{
				ID:        u.ID,
				Name:      u.Name,
				Title:     u.Title,
				Role:      u.Role,
				IsAdmin:   u.IsAdmin,
				CreatedAt: u.CreatedAt,
			})
		}
	}

	return &Summary{
		TotalTasks:   len(tasks),
		Last10Task:   last10,
		Users:        users,
		TasksByStage: byStage,
		GraphData:    graph,
	}, nil
}
