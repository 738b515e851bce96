package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"geoportal-system/algo"
	"geoportal-system/model"
)

// Handler 持有应用状态，所有接口都挂在它上面 (不依赖包级全局变量)
type Handler struct {
	State *algo.AppState
}

// New 创建 Handler
func New(state *algo.AppState) *Handler {
	return &Handler{State: state}
}

// Register 挂载全部 /api 路由
func (h *Handler) Register(api *gin.RouterGroup) {
	api.GET("/config", h.GetConfig)
	api.GET("/parks", h.GetParks)
	api.GET("/parks/search", h.SearchParks)
	api.GET("/parks/resolve", h.ResolvePark)
	api.GET("/boundary", h.GetBoundary)
	api.POST("/location", h.SetLocation)
	api.POST("/location/error", h.ReportLocationError)
	api.POST("/nearest", h.FindNearest)
	api.POST("/route", h.SketchRoute)
}

// GetConfig 返回前端初始化地图需要的默认视图参数
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"center":       model.Point{Lat: model.DefaultCenterLat, Lng: model.DefaultCenterLng},
		"zoom":         model.DefaultZoom,
		"min_zoom":     model.MinZoom,
		"max_zoom":     model.MaxZoom,
		"road_network": h.State.Network != nil,
	})
}

// GetBoundary 行政边界 GeoJSON 透传
func (h *Handler) GetBoundary(c *gin.Context) {
	if h.State.Boundary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "行政边界数据不可用"})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", h.State.Boundary)
}

// countSummary 生成前端展示的数量提示 (沿用原界面的西语文案)
func countSummary(n int, filtered bool) string {
	plural := ""
	if n != 1 {
		plural = "s"
	}
	if filtered {
		return fmt.Sprintf("%d parque%s encontrado%s", n, plural, plural)
	}
	return fmt.Sprintf("%d parque%s disponible%s", n, plural, plural)
}
