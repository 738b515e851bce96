package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"geoportal-system/model"
)

// ParkView 接口返回的公园信息
type ParkView struct {
	MarkerID   int                    `json:"marker_id"`
	Name       string                 `json:"name"`
	Lat        float64                `json:"lat"`
	Lng        float64                `json:"lng"`
	MapsLink   string                 `json:"maps_link"` // 外部导航链接 ("Cómo llegar")
	Properties map[string]interface{} `json:"properties,omitempty"`
}

func toParkView(entry *model.MarkerEntry) ParkView {
	return ParkView{
		MarkerID:   entry.MarkerID,
		Name:       entry.Park.Name,
		Lat:        entry.Lat,
		Lng:        entry.Lng,
		MapsLink:   entry.Park.GoogleMapsLink(),
		Properties: entry.Park.Properties,
	}
}

func toParkViews(entries []*model.MarkerEntry) []ParkView {
	views := make([]ParkView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, toParkView(entry))
	}
	return views
}

// GetParks 获取全部公园
func (h *Handler) GetParks(c *gin.Context) {
	entries := h.State.Catalog.Entries()
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"summary": countSummary(len(entries), false),
		"parks":   toParkViews(entries),
	})
}

// SearchParks 按名称过滤公园 (空关键字返回全部)
// 同时更新应用状态里的当前可见子集，供最近搜索复用
func (h *Handler) SearchParks(c *gin.Context) {
	query := c.Query("q")
	entries := h.State.SetFilter(query)

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(entries),
		"summary": countSummary(len(entries), true),
		"results": toParkViews(entries),
	})
}

// ResolvePark 深链接解析: ?parque=nombre-del-parque
// 连字符映射为空格后精确匹配；未命中不算致命错误，
// 返回全部可用名称方便排查
func (h *Handler) ResolvePark(c *gin.Context) {
	raw := c.Query("parque")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 parque 参数"})
		return
	}

	entry, ok := h.State.Catalog.ResolveDeepLink(raw)
	if !ok {
		log.Printf("警告: 未找到公园: %s", raw)
		log.Printf("可用公园: %v", h.State.Catalog.Names())
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "未找到公园: " + raw,
			"available": h.State.Catalog.Names(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"park":       toParkView(entry),
		"center":     model.Point{Lat: entry.Lat, Lng: entry.Lng},
		"zoom":       model.FocusZoom,
		"open_popup": true,
	})
}
