package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkypra/recipe-api/internal/application"
	"github.com/rizkypra/recipe-api/pkg/response"
	"github.com/rizkypra/recipe-api/pkg/validation"
)

type TagHandler struct {
	Svc    *application.TagService
	Logger *logrus.Logger
}

func NewTagHandler(svc *application.TagService, logger *logrus.Logger) *TagHandler {
	return &TagHandler{Svc: svc, Logger: logger}
}

// name is allowed to be blank, matching the data model
type updateTagRequest struct {
	Name *string `json:"name" binding:"required"`
}

// assignedOnly interprets the assigned_only query flag ("1", "true", ...).
func assignedOnly(c *gin.Context) bool {
	v, err := strconv.ParseBool(c.DefaultQuery("assigned_only", "0"))
	return err == nil && v
}

func (h *TagHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	tags, err := h.Svc.List(c.Request.Context(), uid, assignedOnly(c))
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list tags failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to list tags", nil)
		return
	}
	response.Success(c, http.StatusOK, NewTagListResponse(tags), "tags", nil)
}

func (h *TagHandler) Detail(c *gin.Context) {
	uid := c.GetString("userID")
	t, err := h.Svc.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to get tag")
		return
	}
	response.Success(c, http.StatusOK, NewTagResponse(t), "tag", nil)
}

func (h *TagHandler) Update(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.UpdateName(c.Request.Context(), uid, c.Param("id"), *req.Name)
	if err != nil {
		h.writeError(c, err, "failed to update tag")
		return
	}
	response.Success(c, http.StatusOK, NewTagResponse(t), "tag updated", nil)
}

func (h *TagHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		h.writeError(c, err, "failed to delete tag")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TagHandler) writeError(c *gin.Context, err error, msg string) {
	if errors.Is(err, application.ErrTagNotFound) {
		response.Error[any](c, http.StatusNotFound, "tag not found", nil)
		return
	}
	if h.Logger != nil {
		h.Logger.WithError(err).Error(msg)
	}
	response.Error[any](c, http.StatusInternalServerError, msg, nil)
}
