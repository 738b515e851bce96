package algo

import (
	"geoportal-system/model"
	"geoportal-system/utils"
)

// NearestSegment 在道路网里线性扫描离查询点最近的路段投影
// 返回投影结果和是否命中 (用显式布尔值代替 Infinity 哨兵)
//
// 剪枝只比较查询点到每个路段首顶点的直线距离是否小于搜索半径。
// 这是一个已知的启发式近似: 首顶点很远但路段内部很近的线段会被漏掉，
// 反过来首顶点近但整条路段远的线段也会进入精确计算。
// 绕行距离公式依赖这个行为，保持原样，不要"修正"。
//
// 每次调用 O(总顶点数)，数据集小且静态，够用
// 距离严格相等时保留迭代顺序里先遇到的路段，保证结果可测试
func NearestSegment(net *model.RoadNetwork, query model.Point, cfg model.EstimatorConfig) (model.Proximity, bool) {
	if net == nil || len(net.Features) == 0 {
		return model.Proximity{}, false
	}

	var best model.Proximity
	found := false

	for fi := range net.Features {
		feature := &net.Features[fi]
		for _, line := range feature.Lines {
			for i := 0; i < len(line)-1; i++ {
				p1 := line[i]
				p2 := line[i+1]

				// 快速剪枝: 只看路段首顶点
				if utils.HaversineDistance(query, p1) >= cfg.SearchRadiusKm {
					continue
				}

				projected := utils.NearestPointOnSegment(query, p1, p2)
				distM := utils.HaversineDistance(query, projected) * 1000

				if !found || distM < best.DistanceM {
					best = model.Proximity{
						Feature:   feature,
						RoadName:  feature.Name,
						Point:     projected,
						DistanceM: distM,
					}
					found = true
				}
			}
		}
	}

	return best, found
}
