package handlers

import (
	"net/http"
	"strconv"

	"blogly/helper"
	"blogly/models"
	"blogly/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

// ListUsers renders the users index, ordered by last then first name.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		h.Helper.RenderServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "users.html", gin.H{
		"title": "Users",
		"users": users,
	})
}

func (h *UserHandler) NewUserForm(c *gin.Context) {
	c.HTML(http.StatusOK, "user_form.html", gin.H{
		"title": "Create a user",
	})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.RenderServerError(c, err)
		return
	}

	if errs := h.Helper.ValidateStruct(req); errs != nil {
		c.HTML(http.StatusBadRequest, "user_form.html", gin.H{
			"title":  "Create a user",
			"errors": errs,
			"form":   req,
		})
		return
	}

	if _, err := h.userService.CreateUser(req); err != nil {
		if msg := h.Helper.ConflictMessage(err); msg != "" {
			c.HTML(http.StatusConflict, "user_form.html", gin.H{
				"title":     "Create a user",
				"formError": msg,
				"form":      req,
			})
			return
		}
		h.Helper.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/users")
}

// ShowUser renders the user's page with their posts.
func (h *UserHandler) ShowUser(c *gin.Context) {
	user, ok := h.lookupUser(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "user.html", gin.H{
		"title": user.FullName(),
		"user":  user,
	})
}

func (h *UserHandler) EditUserForm(c *gin.Context) {
	user, ok := h.lookupUser(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "user_edit.html", gin.H{
		"title": "Edit " + user.FullName(),
		"user":  user,
	})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	user, ok := h.lookupUser(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.RenderServerError(c, err)
		return
	}

	if errs := h.Helper.ValidateStruct(req); errs != nil {
		c.HTML(http.StatusBadRequest, "user_edit.html", gin.H{
			"title":  "Edit " + user.FullName(),
			"user":   user,
			"errors": errs,
		})
		return
	}

	updated, err := h.userService.UpdateUser(user.ID, req)
	if err != nil {
		if msg := h.Helper.ConflictMessage(err); msg != "" {
			c.HTML(http.StatusConflict, "user_edit.html", gin.H{
				"title":     "Edit " + user.FullName(),
				"user":      user,
				"formError": msg,
			})
			return
		}
		h.Helper.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/users/"+strconv.FormatUint(uint64(updated.ID), 10))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	user, ok := h.lookupUser(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(user.ID); err != nil {
		h.Helper.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/users")
}

func (h *UserHandler) lookupUser(c *gin.Context) (*models.User, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.RenderNotFound(c, "user not found")
		return nil, false
	}

	user, err := h.userService.GetUser(uint(id))
	if err != nil {
		h.Helper.RenderError(c, err)
		return nil, false
	}

	return user, true
}
