package handlers

import (
	"net/http"
	"strconv"

	"blogly/helper"
	"blogly/models"
	"blogly/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, h *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: h}
}

func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListTags()
	if err != nil {
		h.Helper.RenderServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "tags.html", gin.H{
		"title": "Tags",
		"tags":  tags,
	})
}

func (h *TagHandler) NewTagForm(c *gin.Context) {
	c.HTML(http.StatusOK, "tag_form.html", gin.H{
		"title": "Create a tag",
	})
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.TagRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.RenderServerError(c, err)
		return
	}

	if errs := h.Helper.ValidateStruct(req); errs != nil {
		c.HTML(http.StatusBadRequest, "tag_form.html", gin.H{
			"title":  "Create a tag",
			"errors": errs,
			"form":   req,
		})
		return
	}

	tag, err := h.tagService.CreateTag(req)
	if err != nil {
		if msg := h.Helper.ConflictMessage(err); msg != "" {
			c.HTML(http.StatusConflict, "tag_form.html", gin.H{
				"title":     "Create a tag",
				"formError": msg,
				"form":      req,
			})
			return
		}
		h.Helper.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/tags/"+strconv.FormatUint(uint64(tag.ID), 10))
}

// ShowTag renders the tag with its associated posts.
func (h *TagHandler) ShowTag(c *gin.Context) {
	tag, ok := h.lookupTag(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "tag.html", gin.H{
		"title": tag.Name,
		"tag":   tag,
	})
}

func (h *TagHandler) EditTagForm(c *gin.Context) {
	tag, ok := h.lookupTag(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "tag_edit.html", gin.H{
		"title": "Rename " + tag.Name,
		"tag":   tag,
	})
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	tag, ok := h.lookupTag(c)
	if !ok {
		return
	}

	var req models.TagRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.RenderServerError(c, err)
		return
	}

	if errs := h.Helper.ValidateStruct(req); errs != nil {
		c.HTML(http.StatusBadRequest, "tag_edit.html", gin.H{
			"title":  "Rename " + tag.Name,
			"tag":    tag,
			"errors": errs,
		})
		return
	}

	renamed, err := h.tagService.RenameTag(tag.ID, req)
	if err != nil {
		if msg := h.Helper.ConflictMessage(err); msg != "" {
			c.HTML(http.StatusConflict, "tag_edit.html", gin.H{
				"title":     "Rename " + tag.Name,
				"tag":       tag,
				"formError": msg,
			})
			return
		}
		h.Helper.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/tags/"+strconv.FormatUint(uint64(renamed.ID), 10))
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	tag, ok := h.lookupTag(c)
	if !ok {
		return
	}

	if err := h.tagService.DeleteTag(tag.ID); err != nil {
		h.Helper.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/tags")
}

func (h *TagHandler) lookupTag(c *gin.Context) (*models.Tag, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.RenderNotFound(c, "tag not found")
		return nil, false
	}

	tag, err := h.tagService.GetTag(uint(id))
	if err != nil {
		h.Helper.RenderError(c, err)
		return nil, false
	}

	return tag, true
}
