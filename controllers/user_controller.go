package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxurystay-backend/middleware"
	"luxurystay-backend/services"
	"luxurystay-backend/utils"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

type rolePayload struct {
	Role string `json:"role"`
}

// GetUsers handles GET /api/users (admin).
func (ctl *UserController) GetUsers(c *gin.Context) {
	page, limit := pageQuery(c)
	filter := services.UserFilter{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	users, total, err := ctl.users.GetAll(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONList(c, http.StatusOK, users, page, limit, total)
}

// GetUser handles GET /api/users/:id (admin).
func (ctl *UserController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := ctl.users.GetByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// UpdateUserRole handles PATCH /api/users/:id/role (admin). Promoting or
// demoting drops the target's cached session so the change applies at once.
func (ctl *UserController) UpdateUserRole(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload rolePayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Role == "" {
		utils.JSONError(c, http.StatusBadRequest, "role is required")
		return
	}

	if err := ctl.users.ChangeRole(c.Request.Context(), id, payload.Role); err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "role updated"})
}

// DeleteUser handles DELETE /api/users/:id (admin). Admins cannot delete
// themselves from the panel.
func (ctl *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	actor := middleware.CurrentActor(c)
	if actor.UserID == id {
		utils.JSONError(c, http.StatusBadRequest, "cannot delete your own account")
		return
	}

	if err := ctl.users.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "user deleted"})
}
