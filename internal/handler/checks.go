package handler

import (
	"errors"
	"net/http"
	"strconv"

	"delivery-zone-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RecentChecks handles GET /delivery-zone/checks requests
//
//	@Summary	Most recent zone checks, newest first
//	@Produce	json
//	@Param		limit	query		int	false	"Maximum number of checks (1-100, default 20)"
//	@Success	200		{array}		models.ZoneCheck
//	@Failure	503		{object}	map[string]string
//	@Router		/delivery-zone/checks [get]
func (h *ZoneHandler) RecentChecks(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit format"})
			return
		}
	}

	checks, err := h.service.RecentChecks(c.Request.Context(), limit)
	if err != nil {
		respondCheckError(c, err)
		return
	}

	c.JSON(http.StatusOK, checks)
}

// GetCheck handles GET /delivery-zone/checks/:id requests
//
//	@Summary	One recorded zone check
//	@Produce	json
//	@Param		id	path		string	true	"Check ID"
//	@Success	200	{object}	models.ZoneCheck
//	@Failure	404	{object}	map[string]string
//	@Router		/delivery-zone/checks/{id} [get]
func (h *ZoneHandler) GetCheck(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check id"})
		return
	}

	check, err := h.service.GetCheck(c.Request.Context(), id)
	if err != nil {
		respondCheckError(c, err)
		return
	}

	if check == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "zone check not found"})
		return
	}

	c.JSON(http.StatusOK, check)
}

func respondCheckError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrAuditDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "zone check history is not available"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
