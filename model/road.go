package model

// RoadFeature 一条道路要素 (eje vial)，可能由多条不连续的折线链组成
// 即 GeoJSON 里的 MultiLineString；加载后不可变
type RoadFeature struct {
	Name  string    `json:"name"`
	Lines [][]Point `json:"lines"` // 每条链是一串有序顶点，相邻顶点构成路段
}

// RoadNetwork 道路网数据集，启动时加载一次
// 整个数据集是可选的：缺失时所有距离估算退化为直线模式，不算错误
type RoadNetwork struct {
	Features []RoadFeature
}

// SegmentCount 路段总数 (供启动日志统计)
func (n *RoadNetwork) SegmentCount() int {
	count := 0
	for _, f := range n.Features {
		for _, line := range f.Lines {
			if len(line) > 1 {
				count += len(line) - 1
			}
		}
	}
	return count
}

// Proximity 最近路段查询结果 (临时值，每次查询重新计算)
// 不变式: DistanceM >= 0，Point 落在被查询的路段上
type Proximity struct {
	Feature   *RoadFeature `json:"-"`
	RoadName  string       `json:"road_name"`
	Point     Point        `json:"point"`      // 路段上的投影点
	DistanceM float64      `json:"distance_m"` // 查询点到投影点的距离 (米)
}

// 距离估算方法标签
const (
	MethodStraightLine = "straight-line" // 直线距离
	MethodRoadNetwork  = "road-network"  // 经道路网近似
)

// Estimate 针对单个候选公园的距离/时间估算 (临时值，按请求重算)
// 不变式: TimeMinutes = round(DistanceKm × 1000 / 步行速度(米/小时) × 60)
type Estimate struct {
	MarkerID    int     `json:"marker_id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DistanceKm  float64 `json:"distance_km"`
	TimeMinutes int     `json:"time_minutes"`
	Method      string  `json:"method"`
}
