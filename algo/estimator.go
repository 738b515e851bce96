package algo

import (
	"sort"

	"geoportal-system/model"
	"geoportal-system/utils"
)

// EstimateDistances 为每个候选公园生成一条距离/时间估算，按估算距离升序返回
// 调用方取第一条即为"最近"
//
// 策略:
//  1. 用户的最近路段投影只算一次，整批候选复用
//  2. 没有道路网、或用户附近没有合格路段 → 全部退化为直线距离
//  3. 否则逐个候选找它自己的最近路段投影:
//     投影距离小于吸附阈值 (300米) 时走道路网公式，
//     总距离 = 用户到路网 + 绕行系数×两投影点直线距离 + 路网到公园；
//     超出阈值的候选单独退回直线距离
//
// 全程同步、无副作用，只依赖内存里的已加载数据
func EstimateDistances(user model.Point, candidates []*model.MarkerEntry, net *model.RoadNetwork, cfg model.EstimatorConfig) []model.Estimate {
	userProx, userOnRoad := NearestSegment(net, user, cfg)

	estimates := make([]model.Estimate, 0, len(candidates))
	for _, entry := range candidates {
		estimates = append(estimates, estimateOne(user, entry, userProx, userOnRoad, net, cfg))
	}

	// 稳定排序: 距离相等时维持目录的插入顺序
	sort.SliceStable(estimates, func(i, j int) bool {
		return estimates[i].DistanceKm < estimates[j].DistanceKm
	})

	return estimates
}

// estimateOne 估算单个候选
func estimateOne(user model.Point, entry *model.MarkerEntry, userProx model.Proximity, userOnRoad bool, net *model.RoadNetwork, cfg model.EstimatorConfig) model.Estimate {
	distanceKm := utils.DistanceKm(user.Lat, user.Lng, entry.Lat, entry.Lng)
	method := model.MethodStraightLine

	if userOnRoad {
		parkProx, ok := NearestSegment(net, model.Point{Lat: entry.Lat, Lng: entry.Lng}, cfg)
		if ok && parkProx.DistanceM < cfg.SnapThresholdM {
			// 公园也贴着路网，按道路网近似估算
			userToRoadKm := userProx.DistanceM / 1000
			roadToParkKm := parkProx.DistanceM / 1000
			betweenKm := utils.HaversineDistance(userProx.Point, parkProx.Point)

			distanceKm = userToRoadKm + betweenKm*cfg.DetourFactor + roadToParkKm
			method = model.MethodRoadNetwork
		}
	}

	return model.Estimate{
		MarkerID:    entry.MarkerID,
		Name:        entry.Park.Name,
		Lat:         entry.Lat,
		Lng:         entry.Lng,
		DistanceKm:  distanceKm,
		TimeMinutes: cfg.WalkingMinutes(distanceKm),
		Method:      method,
	}
}
