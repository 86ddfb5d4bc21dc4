package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"taskhub-api/internal/auth"
	"taskhub-api/internal/cache"
	"taskhub-api/internal/middleware"
	"taskhub-api/internal/models"
	"taskhub-api/internal/service"
	"taskhub-api/internal/store"
	"taskhub-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// testEnv wires the handlers over an in-memory database with the same
// middleware arrangement the real router uses.
type testEnv struct {
	db      *gorm.DB
	router  *gin.Engine
	users   store.UserStore
	tasks   store.TaskStore
	notices store.NoticeStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	users := store.NewUserStore(db)
	tasks := store.NewTaskStore(db)
	notices := store.NewNoticeStore(db)
	identities := cache.NewTTLCache[string, middleware.Identity]()

	taskService := service.NewTaskService(tasks, notices)
	dashboardService := service.NewDashboardService(tasks, users)
	noticeService := service.NewNoticeService(notices)

	userHandler := NewUserHandler(users, noticeService, identities)
	taskHandler := NewTaskHandler(taskService, dashboardService, users)

	protect := middleware.Protect(users, identities)
	adminOnly := middleware.AdminRequired()

	r := gin.New()
	r.POST("/api/user/register", userHandler.Register)
	r.POST("/api/user/login", userHandler.Login)

	authed := r.Group("", protect)
	authed.GET("/api/user/get-team", userHandler.GetTeam)
	authed.GET("/api/user/notifications", userHandler.Notifications)
	authed.PUT("/api/user/profile", userHandler.UpdateProfile)
	authed.PUT("/api/user/read-noti", userHandler.MarkNotificationRead)
	authed.PUT("/api/user/change-password", userHandler.ChangePassword)
	authed.PUT("/api/user/:id", adminOnly, userHandler.ActivateUserProfile)
	authed.DELETE("/api/user/:id", adminOnly, userHandler.DeleteUserProfile)

	authed.GET("/api/tasks", taskHandler.List)
	authed.GET("/api/tasks/dashboard", taskHandler.Dashboard)
	authed.GET("/api/tasks/:id", taskHandler.Get)
	authed.GET("/api/tasks/recover/:id", taskHandler.Recover)
	authed.POST("/api/tasks/activity/:id", taskHandler.PostActivity)
	authed.POST("/api/tasks/create", adminOnly, taskHandler.Create)
	authed.POST("/api/tasks/duplicate/:id", adminOnly, taskHandler.Duplicate)
	authed.PUT("/api/tasks/create-subtask/:id", adminOnly, taskHandler.AddSubTask)
	authed.PUT("/api/tasks/update/:id", adminOnly, taskHandler.Update)
	authed.PUT("/api/tasks/:id", adminOnly, taskHandler.Trash)
	authed.DELETE("/api/tasks/delete-restore", adminOnly, taskHandler.DeleteRestore)
	authed.DELETE("/api/tasks/delete-restore/:id", adminOnly, taskHandler.DeleteRestore)

	return &testEnv{db: db, router: r, users: users, tasks: tasks, notices: notices}
}

// seedUser creates a user with a bcrypt-hashed password and returns a token.
func (e *testEnv) seedUser(t *testing.T, id string, isAdmin bool) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	email := id + "@example.com"
	require.NoError(t, e.users.Create(&models.User{
		ID: id, Name: id, Title: "Dev", Role: "Developer",
		Email: email, Password: string(hash), IsAdmin: isAdmin, IsActive: true,
	}))
	token, err := auth.GenerateToken(id, email)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
