package handlers

import (
	"net/http"
	"strconv"

	"blogly/helper"
	"blogly/models"
	"blogly/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
	userService services.UserService
	tagService  services.TagService
	Helper      *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, userService services.UserService, tagService services.TagService, h *helper.HTTPHelper) *PostHandler {
	return &PostHandler{
		postService: postService,
		userService: userService,
		tagService:  tagService,
		Helper:      h,
	}
}

// NewPostForm renders the creation form for a post owned by the user in
// the path, with all tags offered as choices.
func (h *PostHandler) NewPostForm(c *gin.Context) {
	user, ok := h.lookupUser(c)
	if !ok {
		return
	}

	tags, err := h.tagService.ListTags()
	if err != nil {
		h.Helper.RenderServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "post_form.html", gin.H{
		"title": "New post for " + user.FullName(),
		"user":  user,
		"tags":  tags,
	})
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	user, ok := h.lookupUser(c)
	if !ok {
		return
	}

	var req models.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.RenderServerError(c, err)
		return
	}

	if errs := h.Helper.ValidateStruct(req); errs != nil {
		tags, err := h.tagService.ListTags()
		if err != nil {
			h.Helper.RenderServerError(c, err)
			return
		}
		c.HTML(http.StatusBadRequest, "post_form.html", gin.H{
			"title":  "New post for " + user.FullName(),
			"user":   user,
			"tags":   tags,
			"errors": errs,
			"form":   req,
		})
		return
	}

	if _, err := h.postService.CreatePost(user.ID, req); err != nil {
		h.Helper.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/users/"+strconv.FormatUint(uint64(user.ID), 10))
}

// ShowPost renders a post with its author and tags.
func (h *PostHandler) ShowPost(c *gin.Context) {
	post, ok := h.lookupPost(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "post.html", gin.H{
		"title": post.Title,
		"post":  post,
	})
}

func (h *PostHandler) EditPostForm(c *gin.Context) {
	post, ok := h.lookupPost(c)
	if !ok {
		return
	}

	tags, err := h.tagService.ListTags()
	if err != nil {
		h.Helper.RenderServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "post_edit.html", gin.H{
		"title": "Edit " + post.Title,
		"post":  post,
		"tags":  tags,
	})
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	post, ok := h.lookupPost(c)
	if !ok {
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.RenderServerError(c, err)
		return
	}

	if errs := h.Helper.ValidateStruct(req); errs != nil {
		tags, err := h.tagService.ListTags()
		if err != nil {
			h.Helper.RenderServerError(c, err)
			return
		}
		c.HTML(http.StatusBadRequest, "post_edit.html", gin.H{
			"title":  "Edit " + post.Title,
			"post":   post,
			"tags":   tags,
			"errors": errs,
		})
		return
	}

	if _, err := h.postService.UpdatePost(post.ID, req); err != nil {
		h.Helper.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(uint64(post.ID), 10))
}

// DeletePost removes the post and sends the browser back to its owner.
func (h *PostHandler) DeletePost(c *gin.Context) {
	post, ok := h.lookupPost(c)
	if !ok {
		return
	}

	ownerID, err := h.postService.DeletePost(post.ID)
	if err != nil {
		h.Helper.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/users/"+strconv.FormatUint(uint64(ownerID), 10))
}

func (h *PostHandler) lookupPost(c *gin.Context) (*models.Post, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.RenderNotFound(c, "post not found")
		return nil, false
	}

	post, err := h.postService.GetPost(uint(id))
	if err != nil {
		h.Helper.RenderError(c, err)
		return nil, false
	}

	return post, true
}

func (h *PostHandler) lookupUser(c *gin.Context) (*models.User, bool) {
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
