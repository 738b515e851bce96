package algo

import (
	"github.com/twpayne/go-polyline"

	"geoportal-system/model"
)

// BuildRouteSketch 构造可视化用的简化路线 (2~4 个途经点)
// 途经点顺序: 起点 → 起点的路网投影 → 终点的路网投影 → 终点，
// 端点距路网不足 50 米时省略对应投影点
//
// 注意这不是路网寻路: 两个投影点之间只画一条直线连接，
// 纯粹是视觉近似，属于有意为之的简化而不是缺陷
//
// 没有道路网、或任一端点没有合格的附近路段 (阈值 500 米) 时，
// 退回 [起点, 终点] 两点直线
// 相同输入总是产出相同的途经点序列
func BuildRouteSketch(origin, destination model.Point, net *model.RoadNetwork, cfg model.EstimatorConfig) []model.Point {
	straight := []model.Point{origin, destination}

	if net == nil || len(net.Features) == 0 {
		return straight
	}

	originProx, originOK := NearestSegment(net, origin, cfg)
	destProx, destOK := NearestSegment(net, destination, cfg)

	if !originOK || !destOK ||
		originProx.DistanceM > cfg.RouteThresholdM || destProx.DistanceM > cfg.RouteThresholdM {
		return straight
	}

	points := []model.Point{origin}
	if originProx.DistanceM > cfg.RouteOmitM {
		points = append(points, originProx.Point)
	}
	if destProx.DistanceM > cfg.RouteOmitM {
		points = append(points, destProx.Point)
	}
	points = append(points, destination)

	return points
}

// EncodeRoute 把途经点编码成 Google polyline 字符串，前端解码后直接绘制
func EncodeRoute(points []model.Point) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Lat, p.Lng}
	}
	return string(polyline.EncodeCoords(coords))
}
