package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"geoportal-system/algo"
	"geoportal-system/model"
)

// LocationRequest 前端定位成功后的上报
type LocationRequest struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	AccuracyM float64 `json:"accuracy_m"`
}

// LocationErrorRequest 前端定位失败后的上报
type LocationErrorRequest struct {
	Code string `json:"code"`
}

// SetLocation 更新用户定位
// 旧的定位标记与精度圈整体替换，不会在地图上残留
func (h *Handler) SetLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	point := model.Point{Lat: req.Lat, Lng: req.Lng}
	if !point.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "坐标超出合法范围"})
		return
	}

	h.State.SetLocation(algo.UserLocation{Point: point, AccuracyM: req.AccuracyM})
	log.Printf("定位更新: %v, %v (±%.0fm)", req.Lat, req.Lng, req.AccuracyM)

	resp := gin.H{
		"location": point,
		"accuracy": req.AccuracyM,
		"zoom":     model.LocateZoom,
		"popup":    "Tu ubicación actual",
	}

	// 精度太差时附带提示 (阈值 1000 米，沿用原界面)
	if req.AccuracyM > 1000 {
		resp["low_accuracy"] = true
		resp["warning"] = fmt.Sprintf(
			"Precisión baja (±%.0fm). Para mejor precisión, activa el GPS y sal al exterior.",
			req.AccuracyM,
		)
	}

	c.JSON(http.StatusOK, resp)
}

// ReportLocationError 定位失败上报，按错误码归类出用户提示
// 服务端不做任何自动重试: 返回 retryable 之后控制权交还界面，
// 由用户通过定位按钮手动再试
func (h *Handler) ReportLocationError(c *gin.Context) {
	var req LocationErrorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	code := req.Code
	switch code {
	case model.GeoErrPermissionDenied, model.GeoErrPositionUnavailable, model.GeoErrTimeout:
	default:
		code = model.GeoErrUnknown
	}

	log.Printf("定位失败: %s", code)

	c.JSON(http.StatusOK, gin.H{
		"code":      code,
		"message":   model.GeolocationMessage(code),
		"retryable": true,
	})
}
