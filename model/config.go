package model

import "math"

// 距离估算的经验常数 (默认值)
// 这些阈值没有严格推导，属于实地调校出来的参数，
// 所以集中放在 EstimatorConfig 里，方便单独调整和测试
const (
	DefaultSearchRadiusKm  = 0.5 // 最近路段搜索半径 (公里)
	DefaultSnapThresholdM  = 300 // 候选点吸附道路网的阈值 (米)
	DefaultRouteThresholdM = 500 // 路线草图端点的合格阈值 (米)
	DefaultRouteOmitM      = 50  // 端点距路网过近时省略连接段的阈值 (米)
	DefaultDetourFactor    = 1.3 // 绕行系数: 补偿两投影点间直线低估的街道距离
	DefaultWalkingSpeedKmh = 4.0 // 步行速度 (公里/小时)
)

// 地图默认视图 (墨西哥城，沿用原界面的初始取景)
const (
	DefaultCenterLat = 19.344796609
	DefaultCenterLng = -99.238588729
	DefaultZoom      = 13
	MinZoom          = 10
	MaxZoom          = 19
	LocateZoom       = 15 // 定位成功后的居中级别
	NearestZoom      = 17 // 最近公园定位后的居中级别
	FocusZoom        = 18 // 深链接打开公园时的放大级别
)

// EstimatorConfig 距离估算与路线草图用到的全部可调参数
type EstimatorConfig struct {
	SearchRadiusKm  float64 // 最近路段搜索半径 (公里)
	SnapThresholdM  float64 // 候选点走道路网估算的最大投影距离 (米)
	RouteThresholdM float64 // 路线草图端点的合格阈值 (米)
	RouteOmitM      float64 // 省略连接段的阈值 (米)
	DetourFactor    float64 // 两投影点之间直线距离的绕行系数
	WalkingSpeedKmh float64 // 步行速度 (公里/小时)
}

// DefaultEstimatorConfig 返回默认参数
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		SearchRadiusKm:  DefaultSearchRadiusKm,
		SnapThresholdM:  DefaultSnapThresholdM,
		RouteThresholdM: DefaultRouteThresholdM,
		RouteOmitM:      DefaultRouteOmitM,
		DetourFactor:    DefaultDetourFactor,
		WalkingSpeedKmh: DefaultWalkingSpeedKmh,
	}
}

// WalkingMinutes 按固定步行速度把公里数换算成分钟 (四舍五入)
func (c EstimatorConfig) WalkingMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm * 1000 / (c.WalkingSpeedKmh * 1000) * 60))
}
