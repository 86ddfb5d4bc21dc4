package handlers

import (
	"net/http"

	"taskhub-api/internal/middleware"
	"taskhub-api/internal/models"
	"taskhub-api/internal/service"
	"taskhub-api/internal/store"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the user directory and notification endpoints.
type UserHandler struct {
	users      store.UserStore
	notices    *service.NoticeService
	identities *middleware.IdentityCache
}

// NewUserHandler wires a UserHandler.
func NewUserHandler(users store.UserStore, notices *service.NoticeService, identities *middleware.IdentityCache) *UserHandler {
	return &UserHandler{users: users, notices: notices, identities: identities}
}

// GetTeam returns all user summaries
// GET /api/user/get-team
func (h *UserHandler) GetTeam(c *gin.Context) {
	all, err := h.users.FindAll()
	if err != nil {
		respondError(c, err)
		return
	}

	team := make([]TeamMember, 0, len(all))
	for _, u := range all {
		team = append(team, TeamMember{
			ID:    u.ID,
			Name:  u.Name,
			Title: u.Title,
			Role:  u.Role,
			Email: u.Email,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"users":  team,
	})
}

// Notifications returns the caller's unread notices
// GET /api/user/notifications
func (h *UserHandler) Notifications(c *gin.Context) {
	userID := c.GetString("user_id")

	unread, err := h.notices.ListUnread(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        true,
		"notifications": unread,
	})
}

// UpdateProfileRequest represents the profile update payload. Admins may
// carry a target user id; everyone else updates themselves.
type UpdateProfileRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name" binding:"required"`
	Title string `json:"title" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

// UpdateProfile updates a user's name, title and role
// PUT /api/user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	isAdmin := c.GetBool("is_admin")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	targetID := userID
	if isAdmin && req.ID != "" {
		targetID = req.ID
	}

	user, err := h.users.FindByID(targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	user.Name = req.Name
	user.Title = req.Title
	user.Role = req.Role
	if err := h.users.Save(user); err != nil {
		respondError(c, err)
		return
	}
	h.identities.Delete(targetID)

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Profile updated successfully.",
		"user":    user,
	})
}

// MarkNotificationRead acknowledges notifications for the caller
// PUT /api/user/read-noti?isReadType=all or ?isReadType=&id=<notice id>
func (h *UserHandler) MarkNotificationRead(c *gin.Context) {
	userID := c.GetString("user_id")
	scope := c.Query("isReadType")
	noticeID := c.Query("id")

	if err := h.notices.MarkRead(userID, scope, noticeID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Notification marked as read.",
	})
}

// ChangePasswordRequest carries the caller's new password.
type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// ChangePassword re-hashes the caller's password
// PUT /api/user/change-password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	user, err := h.users.FindByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	user.Password = hash
	if err := h.users.Save(user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Password changed successfully.",
	})
}

// ActivateRequest toggles a user's active flag.
type ActivateRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// ActivateUserProfile activates or deactivates a user account (admin only)
// PUT /api/user/:id
func (h *UserHandler) ActivateUserProfile(c *gin.Context) {
	var req ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	user, err := h.users.FindByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	user.IsActive = *req.IsActive
	if err := h.users.Save(user); err != nil {
		respondError(c, err)
		return
	}
	h.identities.Delete(user.ID)

	message := "User account has been disabled."
	if user.IsActive {
		message = "User account has been activated."
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": message,
	})
}

// DeleteUserProfile permanently removes a user account (admin only)
// DELETE /api/user/:id
func (h *UserHandler) DeleteUserProfile(c *gin.Context) {
	id := c.Param("id")
	if err := h.users.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	h.identities.Delete(id)

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "User deleted successfully.",
	})
}

// summarize strips a user record down to its public shape.
func summarize(u *models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"name":     u.Name,
		"title":    u.Title,
		"role":     u.Role,
		"email":    u.Email,
		"isAdmin":  u.IsAdmin,
		"isActive": u.IsActive,
	}
}
