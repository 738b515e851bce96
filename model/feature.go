package model

import "strconv"

// Point 代表一个经纬度点 (WGS84)
type Point struct {
	Lat float64 `json:"lat"` // 纬度
	Lng float64 `json:"lng"` // 经度
}

// Valid 检查坐标是否在合法范围内
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Park 对应地图上的一个公园点要素 (来自 parques.geojson)
// 加载后不可变；Name 不保证唯一
type Park struct {
	Name       string                 `json:"name"`
	Lat        float64                `json:"lat"`
	Lng        float64                `json:"lng"`
	Properties map[string]interface{} `json:"properties,omitempty"` // 原始属性原样透传
}

// GoogleMapsLink 生成外部导航链接 ("Cómo llegar")
func (p *Park) GoogleMapsLink() string {
	return "https://www.google.com/maps/search/?api=1&query=" +
		strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

// MarkerEntry 包装一个公园要素及其渲染句柄
// 加载时每个有效要素创建一个，之后不再变更；MarkerID 由渲染层持有引用
type MarkerEntry struct {
	MarkerID int     `json:"marker_id"`
	Park     *Park   `json:"park"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// 地理定位错误码 (对应浏览器 Geolocation API 的四种失败情形)
const (
	GeoErrPermissionDenied    = "permission-denied"
	GeoErrPositionUnavailable = "position-unavailable"
	GeoErrTimeout             = "timeout"
	GeoErrUnknown             = "unknown"
)

// GeolocationMessage 把错误码翻译成面向用户的提示
// 文案保持前端界面的西班牙语原文
func GeolocationMessage(code string) string {
	const base = "No se pudo obtener tu ubicación. "
	switch code {
	case GeoErrPermissionDenied:
		return base + "Permiso denegado. Por favor, permite el acceso a tu ubicación."
	case GeoErrPositionUnavailable:
		return base + "Ubicación no disponible."
	case GeoErrTimeout:
		return base + "Tiempo de espera agotado. Intenta de nuevo."
	default:
		return base + "Error desconocido."
	}
}
