package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"trail-catalog-go/internal/errs"
	"trail-catalog-go/internal/repository"
	"trail-catalog-go/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TrailHandler maps HTTP requests onto the trail service.
type TrailHandler struct {
	trailService *service.TrailService
	logger       *logrus.Logger
}

// NewTrailHandler creates a new TrailHandler.
func NewTrailHandler(trailService *service.TrailService, logger *logrus.Logger) *TrailHandler {
	return &TrailHandler{
		trailService: trailService,
		logger:       logger,
	}
}

// RegisterRoutes registers the API routes.
func (h *TrailHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/trails", h.CreateTrail)
		api.GET("/trails", h.ListTrails)
		api.GET("/trails/near", h.FindNear)
		api.GET("/trails/:id", h.GetTrail)
		api.PUT("/trails/:id", h.UpdateTrail)
		api.DELETE("/trails/:id", h.DeleteTrail)
	}
}

// CreateTrail handles POST /trails.
func (h *TrailHandler) CreateTrail(c *gin.Context) {
	var in service.TrailInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trail payload: " + err.Error()})
		return
	}

	trail, err := h.trailService.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, trail)
}

// ListTrails handles GET /trails with optional filter parameters.
func (h *TrailHandler) ListTrails(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	trails, err := h.trailService.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.ListTrailsResponse{Trails: trails, Total: len(trails)})
}

// GetTrail handles GET /trails/:id.
func (h *TrailHandler) GetTrail(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trail id"})
		return
	}

	trail, err := h.trailService.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, trail)
}

// UpdateTrail handles PUT /trails/:id with a full or partial payload.
func (h *TrailHandler) UpdateTrail(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trail id"})
		return
	}

	var in service.TrailInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trail payload: " + err.Error()})
		return
	}

	trail, err := h.trailService.Update(c.Request.Context(), id, in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, trail)
}

// DeleteTrail handles DELETE /trails/:id.
func (h *TrailHandler) DeleteTrail(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trail id"})
		return
	}

	if err := h.trailService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// FindNear handles GET /trails/near?lat=&lon=&radius=.
func (h *TrailHandler) FindNear(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	radiusStr := c.Query("radius")

	if latStr == "" || lonStr == "" || radiusStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat, lon and radius are required"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat"})
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lon"})
		return
	}
	radius, err := strconv.ParseFloat(radiusStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
		return
	}

	trails, err := h.trailService.FindNear(c.Request.Context(), lat, lon, radius)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.ListTrailsResponse{Trails: trails, Total: len(trails)})
}

// parseFilter builds a TrailFilter from the query string. A malformed numeric
// parameter is a validation failure; absent parameters contribute no clause.
func parseFilter(c *gin.Context) (repository.TrailFilter, error) {
	filter := repository.TrailFilter{
		ID:         c.Query("id"),
		Region:     c.Query("region"),
		Valley:     c.Query("valley"),
		Difficulty: c.Query("difficulty"),
	}

	var err error
	if filter.MinLength, err = optionalFloat(c, "minLength"); err != nil {
		return filter, err
	}
	if filter.MaxLength, err = optionalFloat(c, "maxLength"); err != nil {
		return filter, err
	}
	if filter.MinDuration, err = optionalInt(c, "minDuration"); err != nil {
		return filter, err
	}
	if filter.MaxDuration, err = optionalInt(c, "maxDuration"); err != nil {
		return filter, err
	}

	if tags := c.Query("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}
	return filter, nil
}

func optionalFloat(c *gin.Context, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errInvalidParam(key)
	}
	return &value, nil
}

func optionalInt(c *gin.Context, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errInvalidParam(key)
	}
	return &value, nil
}

func errInvalidParam(key string) error {
	return fmt.Errorf("%w: invalid numeric parameter %s", errs.ErrValidation, key)
}

// respondError maps the error taxonomy to HTTP statuses: validation and
// dangling references are client errors, missing records are 404, everything
// else is an opaque 500.
func (h *TrailHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Errorf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
