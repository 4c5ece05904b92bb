package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkypra/recipe-api/internal/application"
	"github.com/rizkypra/recipe-api/pkg/response"
	"github.com/rizkypra/recipe-api/pkg/validation"
)

type IngredientHandler struct {
	Svc    *application.IngredientService
	Logger *logrus.Logger
}

func NewIngredientHandler(svc *application.IngredientService, logger *logrus.Logger) *IngredientHandler {
	return &IngredientHandler{Svc: svc, Logger: logger}
}

type updateIngredientRequest struct {
	Name *string `json:"name" binding:"required"`
}

func (h *IngredientHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	ings, err := h.Svc.List(c.Request.Context(), uid, assignedOnly(c))
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list ingredients failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to list ingredients", nil)
		return
	}
	response.Success(c, http.StatusOK, NewIngredientListResponse(ings), "ingredients", nil)
}

func (h *IngredientHandler) Detail(c *gin.Context) {
	uid := c.GetString("userID")
	i, err := h.Svc.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to get ingredient")
		return
	}
	response.Success(c, http.StatusOK, NewIngredientResponse(i), "ingredient", nil)
}

func (h *IngredientHandler) Update(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	i, err := h.Svc.UpdateName(c.Request.Context(), uid, c.Param("id"), *req.Name)
	if err != nil {
		h.writeError(c, err, "failed to update ingredient")
		return
	}
	response.Success(c, http.StatusOK, NewIngredientResponse(i), "ingredient updated", nil)
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		h.writeError(c, err, "failed to delete ingredient")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *IngredientHandler) writeError(c *gin.Context, err error, msg string) {
	if errors.Is(err, application.ErrIngredientNotFound) {
		response.Error[any](c, http.StatusNotFound, "ingredient not found", nil)
		return
	}
	if h.Logger != nil {
		h.Logger.WithError(err).Error(msg)
	}
	response.Error[any](c, http.StatusInternalServerError, msg, nil)
}
