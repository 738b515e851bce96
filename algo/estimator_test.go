package algo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoportal-system/model"
	"geoportal-system/utils"
)

func markers(parks ...*model.Park) []*model.MarkerEntry {
	return NewCatalog(parks).Entries()
}

func TestEstimateDistances_NoNetworkFallsBackToStraightLine(t *testing.T) {
	user := model.Point{Lat: 19.35, Lng: -99.15}
	candidates := markers(
		&model.Park{Name: "Parque Norte", Lat: 19.40, Lng: -99.20},
		&model.Park{Name: "Parque Sur", Lat: 19.30, Lng: -99.10},
	)

	estimates := EstimateDistances(user, candidates, nil, model.DefaultEstimatorConfig())
	require.Len(t, estimates, 2)

	// 没有道路网: 全部直线距离，按升序排列
	for _, e := range estimates {
		assert.Equal(t, model.MethodStraightLine, e.Method)
	}
	assert.LessOrEqual(t, estimates[0].DistanceKm, estimates[1].DistanceKm)

	// 直线距离等于 haversine
	for _, e := range estimates {
		want := utils.DistanceKm(user.Lat, user.Lng, e.Lat, e.Lng)
		assert.InDelta(t, want, e.DistanceKm, 1e-12)
	}
}

func TestEstimateDistances_RoadNetworkFormula(t *testing.T) {
	net := testNetwork()
	cfg := model.DefaultEstimatorConfig()

	user := model.Point{Lat: 19.3505, Lng: -99.1580}
	park := &model.Park{Name: "Parque Cercano", Lat: 19.3504, Lng: -99.1520}

	estimates := EstimateDistances(user, markers(park), net, cfg)
	require.Len(t, estimates, 1)
	got := estimates[0]
	assert.Equal(t, model.MethodRoadNetwork, got.Method)

	// 总距离 = 用户到路网 + 1.3×两投影点直线距离 + 路网到公园
	userProx, ok := NearestSegment(net, user, cfg)
	require.True(t, ok)
	parkProx, ok := NearestSegment(net, model.Point{Lat: park.Lat, Lng: park.Lng}, cfg)
	require.True(t, ok)
	require.Less(t, parkProx.DistanceM, cfg.SnapThresholdM)

	want := userProx.DistanceM/1000 +
		utils.HaversineDistance(userProx.Point, parkProx.Point)*cfg.DetourFactor +
		parkProx.DistanceM/1000
	assert.InDelta(t, want, got.DistanceKm, 1e-12)
}

func TestEstimateDistances_FarCandidateFallsBackIndividually(t *testing.T) {
	net := testNetwork()
	cfg := model.DefaultEstimatorConfig()

	// 用户贴着路网，两个候选: 一个贴着路网，一个远离路网
	user := model.Point{Lat: 19.3505, Lng: -99.1580}
	near := &model.Park{Name: "Parque Cercano", Lat: 19.3504, Lng: -99.1520}
	far := &model.Park{Name: "Parque Lejano", Lat: 19.3900, Lng: -99.1000}

	estimates := EstimateDistances(user, markers(near, far), net, cfg)
	require.Len(t, estimates, 2)

	byName := map[string]model.Estimate{}
	for _, e := range estimates {
		byName[e.Name] = e
	}
	assert.Equal(t, model.MethodRoadNetwork, byName["Parque Cercano"].Method)
	assert.Equal(t, model.MethodStraightLine, byName["Parque Lejano"].Method)
}

func TestEstimateDistances_UserOffRoadDisablesNetworkForAll(t *testing.T) {
	net := testNetwork()
	cfg := model.DefaultEstimatorConfig()

	// 用户远离路网: 即使候选贴着路网也全部退回直线
	user := model.Point{Lat: 19.40, Lng: -99.10}
	near := &model.Park{Name: "Parque Cercano", Lat: 19.3504, Lng: -99.1520}

	estimates := EstimateDistances(user, markers(near), net, cfg)
	require.Len(t, estimates, 1)
	assert.Equal(t, model.MethodStraightLine, estimates[0].Method)
}

func TestEstimateDistances_WalkingTimeInvariant(t *testing.T) {
	user := model.Point{Lat: 19.35, Lng: -99.15}
	candidates := markers(
		&model.Park{Name: "A", Lat: 19.352, Lng: -99.153},
		&model.Park{Name: "B", Lat: 19.36, Lng: -99.16},
	)

	cfg := model.DefaultEstimatorConfig()
	for _, e := range EstimateDistances(user, candidates, nil, cfg) {
		// 时间 = round(公里 × 1000 / 4000 × 60)
		want := int(math.Round(e.DistanceKm * 1000 / 4000 * 60))
		assert.Equal(t, want, e.TimeMinutes)
	}
}

func TestWalkingMinutes(t *testing.T) {
	cfg := model.DefaultEstimatorConfig()
	// 4 公里/小时: 1 公里 = 15 分钟
	assert.Equal(t, 15, cfg.WalkingMinutes(1.0))
	assert.Equal(t, 0, cfg.WalkingMinutes(0))
	assert.Equal(t, 30, cfg.WalkingMinutes(2.0))
}
