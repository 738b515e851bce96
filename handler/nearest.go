package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geoportal-system/algo"
	"geoportal-system/model"
)

// NearestRequest 最近公园搜索请求 (坐标来自前端地理定位)
type NearestRequest struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	AccuracyM float64 `json:"accuracy_m"`
}

// NearestResponse 最近公园搜索响应
type NearestResponse struct {
	Found         bool             `json:"found"`
	Nearest       *model.Estimate  `json:"nearest,omitempty"`
	Estimates     []model.Estimate `json:"estimates,omitempty"`
	Route         []model.Point    `json:"route,omitempty"`
	RoutePolyline string           `json:"route_polyline,omitempty"`
	Center        *model.Point     `json:"center,omitempty"`
	Zoom          int              `json:"zoom,omitempty"`
	OpenPopup     bool             `json:"open_popup,omitempty"`
	Message       string           `json:"message,omitempty"`
}

// FindNearest 最近公园搜索
// 候选集取当前过滤子集 (过滤为空时退回全量)，逐个估算距离后升序排序，
// 头部即最近公园；随后更新用户定位并重画到该公园的路线草图
func (h *Handler) FindNearest(c *gin.Context) {
	var req NearestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	user := model.Point{Lat: req.Lat, Lng: req.Lng}
	if !user.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "坐标超出合法范围"})
		return
	}

	candidates := h.State.SearchCandidates()
	if len(candidates) == 0 {
		c.JSON(http.StatusOK, NearestResponse{
			Found:   false,
			Message: "No hay parques disponibles con los filtros actuales",
		})
		return
	}

	estimates := algo.EstimateDistances(user, candidates, h.State.Network, h.State.Config)
	nearest := estimates[0]

	// 先丢弃旧的定位和路线，再写入新的 (避免残留图层)
	h.State.SetLocation(algo.UserLocation{Point: user, AccuracyM: req.AccuracyM})
	route := algo.BuildRouteSketch(user, model.Point{Lat: nearest.Lat, Lng: nearest.Lng}, h.State.Network, h.State.Config)
	h.State.SetRoute(route)

	c.JSON(http.StatusOK, NearestResponse{
		Found:         true,
		Nearest:       &nearest,
		Estimates:     estimates,
		Route:         route,
		RoutePolyline: algo.EncodeRoute(route),
		Center:        &model.Point{Lat: nearest.Lat, Lng: nearest.Lng},
		Zoom:          model.NearestZoom,
		OpenPopup:     true,
	})
}
