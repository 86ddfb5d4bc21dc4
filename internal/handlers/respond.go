package handlers

import (
	"errors"
	"net/http"
	"time"

	"taskhub-api/internal/models"
	"taskhub-api/internal/service"
	"taskhub-api/internal/store"

	"github.com/gin-gonic/gin"
)

// respondError maps the domain error taxonomy onto the response envelope.
// Anything outside the taxonomy surfaces as a 400 with the store's message.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, service.ErrInvalidState):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{
		"status":  false,
		"message": err.Error(),
	})
}

// TeamMember is the reduced user shape embedded in task responses.
type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// ActivityAuthor is the reduced author shape on activity log entries.
type ActivityAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ActivityView is an activity entry with its author resolved to a name.
type ActivityView struct {
	Type     models.ActivityType `json:"type"`
	Activity string              `json:"activity"`
	Date     time.Time           `json:"date"`
	By       ActivityAuthor      `json:"by"`
}

// TaskView is a task with team member IDs resolved to user summaries.
// The embedded Team field is shadowed by the enriched one.
type TaskView struct {
	models.Task
	Team []TeamMember `json:"team"`
}

// TaskDetail additionally resolves activity authors; used on the single-task
// endpoint.
type TaskDetail struct {
	models.Task
	Team       []TeamMember   `json:"team"`
	Activities []ActivityView `json:"activities"`
}

// userIndex loads the whole user directory into a lookup map. The directory
// is small (single team); one fetch per request beats a query per member.
func userIndex(users store.UserStore) (map[string]models.User, error) {
	all, err := users.FindAll()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.User, len(all))
	for _, u := range all {
		byID[u.ID] = u
	}
	return byID, nil
}

func teamMembers(ids []string, byID map[string]models.User) []TeamMember {
	members := make([]TeamMember, 0, len(ids))
	for _, id := range ids {
		u, ok := byID[id]
		if !ok {
			// dangling member reference; keep the id so the client can
			// still render something
			members = append(members, TeamMember{ID: id})
			continue
		}
		members = append(members, TeamMember{
			ID:    u.ID,
			Name:  u.Name,
			Title: u.Title,
			Role:  u.Role,
			Email: u.Email,
		})
	}
	return members
}

func newTaskView(t models.Task, byID map[string]models.User) TaskView {
	return TaskView{
		Task: t,
		Team: teamMembers(t.Team, byID),
	}
}

func newTaskDetail(t models.Task, byID map[string]models.User) TaskDetail {
	activities := make([]ActivityView, 0, len(t.Activities))
	for _, a := range t.Activities {
		author := ActivityAuthor{ID: a.By}
		if u, ok := byID[a.By]; ok {
			author.Name = u.Name
		}
		activities = append(activities, ActivityView{
			Type:     a.Type,
			Activity: a.Activity,
			Date:     a.Date,
			By:       author,
		})
	}
	return TaskDetail{
		Task:       t,
		Team:       teamMembers(t.Team, byID),
		Activities: activities,
	}
}
