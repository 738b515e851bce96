package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geoportal-system/algo"
	"geoportal-system/model"
)

// RouteRequest 路线草图请求
type RouteRequest struct {
	Origin      model.Point `json:"origin"`
	Destination model.Point `json:"destination"`
}

// RouteResponse 路线草图响应
type RouteResponse struct {
	Waypoints []model.Point `json:"waypoints"`
	Polyline  string        `json:"polyline"`
}

// SketchRoute 生成 2~4 个途经点的简化路线
// 只是视觉近似 (不沿路网寻路)，同样的输入总是得到同样的途经点
func (h *Handler) SketchRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	if !req.Origin.Valid() || !req.Destination.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "坐标超出合法范围"})
		return
	}

	waypoints := algo.BuildRouteSketch(req.Origin, req.Destination, h.State.Network, h.State.Config)
	h.State.SetRoute(waypoints)

	c.JSON(http.StatusOK, RouteResponse{
		Waypoints: waypoints,
		Polyline:  algo.EncodeRoute(waypoints),
	})
}
