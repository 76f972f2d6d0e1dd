package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the delivery-zone endpoints on r.
func RegisterRoutes(r gin.IRouter, h *ZoneHandler) {
	g := r.Group("/delivery-zone")
	g.GET("", h.Zone)
	g.GET("/check", h.Check)
	g.GET("/resolve", h.Resolve)
	g.GET("/estimate", h.Estimate)
	g.GET("/checks", h.RecentChecks)
	g.GET("/checks/:id", h.GetCheck)
}
