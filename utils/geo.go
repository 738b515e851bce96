package utils

import (
	"math"

	"geoportal-system/model"
)

// EarthRadiusKm 地球平均半径 (公里)
const EarthRadiusKm = 6371.0

// DegreesToRadians 角度转弧度
func DegreesToRadians(d float64) float64 {
	return d * math.Pi / 180.0
}

// DistanceKm Haversine 公式 (直接计算两点间球面距离，公里)
// 对称: DistanceKm(A,B) == DistanceKm(B,A)；A==B 时为 0
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := DegreesToRadians(lat2 - lat1)
	dLon := DegreesToRadians(lon2 - lon1)

	// a = sin²(Δlat/2) + cos(lat1) * cos(lat2) * sin²(Δlon/2)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(DegreesToRadians(lat1))*math.Cos(DegreesToRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	// c = 2 * atan2(√a, √(1-a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// HaversineDistance 两个 Point 之间的球面距离 (公里)
func HaversineDistance(p1, p2 model.Point) float64 {
	return DistanceKm(p1.Lat, p1.Lng, p2.Lat, p2.Lng)
}

// NearestPointOnSegment 查询点到线段 p1-p2 的最近点 (平面近似)
// 把查询点正交投影到过 p1、p2 的直线上:
//
//	t = dot(query-p1, p2-p1) / |p2-p1|²
//
// t 截断到 [0,1]；零长线段 (lenSq == 0) 退化为 p1
// 搜索半径都在一公里以内，不做测地修正
func NearestPointOnSegment(query, p1, p2 model.Point) model.Point {
	a := query.Lng - p1.Lng
	b := query.Lat - p1.Lat
	c := p2.Lng - p1.Lng
	d := p2.Lat - p1.Lat

	dot := a*c + b*d
	lenSq := c*c + d*d
	if lenSq == 0 {
		return p1
	}

	t := dot / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return model.Point{
		Lat: p1.Lat + t*d,
		Lng: p1.Lng + t*c,
	}
}
