package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"taskhub-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCreateTask_Success(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.seedUser(t, "admin-1", true)
	env.seedUser(t, "u-1", false)
	env.seedUser(t, "u-2", false)

	w := env.do(t, http.MethodPost, "/api/tasks/create", adminToken, map[string]any{
		"title":    "Test Task",
		"team":     []string{"u-1", "u-2"},
		"stage":    "Todo",
		"date":     "2026-03-05T00:00:00Z",
		"priority": "HIGH",
		"assets":   []string{"spec.pdf"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	require.Equal(t, true, resp["status"])
	task := resp["task"].(map[string]any)
	require.Equal(t, "todo", task["stage"])
	require.Equal(t, "high", task["priority"])

	// fan-out: one notice addressed to both members
	unread, err := env.notices.FindForUser("u-2")
	require.NoError(t, err)
	require.Len(t, unread, 1)
	require.Contains(t, unread[0].Text, "and 1 others.")
}

func TestCreateTask_NonAdminForbidden(t *testing.T) {
	env := newTestEnv(t)
	memberToken := env.seedUser(t, "u-1", false)

	w := env.do(t, http.MethodPost, "/api/tasks/create", memberToken, map[string]any{
		"title": "Nope",
		"stage": "todo",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateTask_InvalidStage(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.seedUser(t, "admin-1", true)

	w := env.do(t, http.MethodPost, "/api/tasks/create", adminToken, map[string]any{
		"title": "Bad stage",
		"stage": "someday",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, false, decode(t, w)["status"])
}

func TestGetTask_EnrichesTeamAndAuthors(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.seedUser(t, "admin-1", true)
	env.seedUser(t, "u-1", false)

	w := env.do(t, http.MethodPost, "/api/tasks/create", adminToken, map[string]any{
		"title": "Detail",
		"team":  []string{"u-1"},
		"stage": "todo",
	})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode(t, w)["task"].(map[string]any)
	taskID := created["id"].(string)

	w = env.do(t, http.MethodGet, "/api/tasks/"+taskID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	task := decode(t, w)["task"].(map[string]any)

	team := task["team"].([]any)
	require.Len(t, team, 1)
	require.Equal(t, "u-1", team[0].(map[string]any)["name"])

	activities := task["activities"].([]any)
	require.Len(t, activities, 1)
	author := activities[0].(map[string]any)["by"].(map[string]any)
	require.Equal(t, "admin-1", author["name"])
}

func TestGetTask_Missing(t *testing.T) {
	env := newTestEnv(t)
	token := env.seedUser(t, "u-1", false)

	w := env.do(t, http.MethodGet, "/api/tasks/nope", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrashAndRecover(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.seedUser(t, "admin-1", true)

	w := env.do(t, http.MethodPost, "/api/tasks/create", adminToken, map[string]any{
		"title": "Trashable",
		"stage": "todo",
	})
	require.Equal(t, http.StatusOK, w.Code)
	taskID := decode(t, w)["task"].(map[string]any)["id"].(string)

	// recovering a task that is not trashed is rejected
	w = env.do(t, http.MethodGet, "/api/tasks/recover/"+taskID, adminToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPut, "/api/tasks/"+taskID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// trashed tasks vanish from the single-task endpoint
	w = env.do(t, http.MethodGet, "/api/tasks/"+taskID, adminToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/api/tasks/recover/"+taskID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/tasks/"+taskID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteRestore_DeleteAllWithCount(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.seedUser(t, "admin-1", true)

	var ids []string
	for i := 0; i < 3; i++ {
		w := env.do(t, http.MethodPost, "/api/tasks/create", adminToken, map[string]any{
			"title": fmt.Sprintf("task-%d", i),
			"stage": "todo",
		})
		require.Equal(t, http.StatusOK, w.Code)
		ids = append(ids, decode(t, w)["task"].(map[string]any)["id"].(string))
	}
	for _, id := range ids[:2] {
		w := env.do(t, http.MethodPut, "/api/tasks/"+id, adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := env.do(t, http.MethodDelete, "/api/tasks/delete-restore?actionType=deleteAll", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(2), decode(t, w)["count"])

	var remaining []models.Task
	require.NoError(t, env.db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	require.Equal(t, ids[2], remaining[0].ID)
}

func TestDeleteRestore_InvalidActionType(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.seedUser(t, "admin-1", true)

	w := env.do(t, http.MethodDelete, "/api/tasks/delete-restore?actionType=nuke", adminToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTasks_TrashFilter(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.seedUser(t, "admin-1", true)

	w := env.do(t, http.MethodPost, "/api/tasks/create", adminToken, map[string]any{
		"title": "active",
		"stage": "todo",
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodPost, "/api/tasks/create", adminToken, map[string]any{
		"title": "binned",
		"stage": "todo",
	})
	require.Equal(t, http.StatusOK, w.Code)
	trashID := decode(t, w)["task"].(map[string]any)["id"].(string)
	w = env.do(t, http.MethodPut, "/api/tasks/"+trashID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/tasks?isTrashed=false", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode(t, w)["tasks"].([]any), 1)

	w = env.do(t, http.MethodGet, "/api/tasks?isTrashed=true", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode(t, w)["tasks"].([]any), 1)
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.seedUser(t, "admin-1", true)
	memberToken := env.seedUser(t, "u-1", false)

	w := env.do(t, http.MethodPost, "/api/tasks/create", adminToken, map[string]any{
		"title":    "for member",
		"team":     []string{"u-1"},
		"stage":    "todo",
		"priority": "high",
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodPost, "/api/tasks/create", adminToken, map[string]any{
		"title":    "admin only",
		"team":     []string{"admin-1"},
		"stage":    "completed",
		"priority": "low",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/tasks/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.Equal(t, float64(2), resp["totalTasks"])
	require.NotEmpty(t, resp["users"])

	w = env.do(t, http.MethodGet, "/api/tasks/dashboard", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode(t, w)
	require.Equal(t, float64(1), resp["totalTasks"])
	require.Empty(t, resp["users"])
}

func TestAddSubTask(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.seedUser(t, "admin-1", true)

	w := env.do(t, http.MethodPost, "/api/tasks/create", adminToken, map[string]any{
		"title": "Parent",
		"stage": "todo",
	})
	require.Equal(t, http.StatusOK, w.Code)
	taskID := decode(t, w)["task"].(map[string]any)["id"].(string)

	w = env.do(t, http.MethodPut, "/api/tasks/create-subtask/"+taskID, adminToken, map[string]any{
		"title": "Child",
		"tag":   "chore",
	})
	require.Equal(t, http.StatusOK, w.Code)

	got, err := env.tasks.FindByID(taskID)
	require.NoError(t, err)
	require.Len(t, got.SubTasks, 1)
	require.Equal(t, "Child", got.SubTasks[0].Title)
}
