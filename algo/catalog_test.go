package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoportal-system/model"
)

func testParks() []*model.Park {
	return []*model.Park{
		{Name: "Parque Hundido", Lat: 19.3448, Lng: -99.2386},
		{Name: "Alameda Central", Lat: 19.4356, Lng: -99.1440},
		{Name: "Bosque de Chapultepec", Lat: 19.4204, Lng: -99.1819},
	}
}

func TestNewCatalog_AssignsSequentialMarkerIDs(t *testing.T) {
	c := NewCatalog(testParks())
	require.Equal(t, 3, c.Len())
	for i, entry := range c.Entries() {
		assert.Equal(t, i+1, entry.MarkerID)
		assert.Equal(t, entry.Park.Lat, entry.Lat)
		assert.Equal(t, entry.Park.Lng, entry.Lng)
	}
}

func TestFilter_EmptyTermReturnsAllInInsertionOrder(t *testing.T) {
	c := NewCatalog(testParks())
	got := c.Filter("")
	require.Len(t, got, 3)
	assert.Equal(t, "Parque Hundido", got[0].Park.Name)
	assert.Equal(t, "Alameda Central", got[1].Park.Name)
	assert.Equal(t, "Bosque de Chapultepec", got[2].Park.Name)
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	c := NewCatalog(testParks())

	got := c.Filter("HUNDIDO")
	require.Len(t, got, 1)
	assert.Equal(t, "Parque Hundido", got[0].Park.Name)

	got = c.Filter("alameda")
	require.Len(t, got, 1)

	got = c.Filter("e")
	assert.Len(t, got, 3)

	got = c.Filter("no existe")
	assert.Empty(t, got)
}

func TestResolveDeepLink(t *testing.T) {
	c := NewCatalog(testParks())

	// 连字符映射为空格，不区分大小写精确匹配
	entry, ok := c.ResolveDeepLink("parque-hundido")
	require.True(t, ok)
	assert.Equal(t, "Parque Hundido", entry.Park.Name)

	entry, ok = c.ResolveDeepLink("Bosque-de-Chapultepec")
	require.True(t, ok)
	assert.Equal(t, "Bosque de Chapultepec", entry.Park.Name)

	// 子串不算命中 (必须精确匹配)
	_, ok = c.ResolveDeepLink("hundido")
	assert.False(t, ok)

	_, ok = c.ResolveDeepLink("parque-inexistente")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	c := NewCatalog(testParks())
	assert.Equal(t, []string{"Parque Hundido", "Alameda Central", "Bosque de Chapultepec"}, c.Names())
}

func TestAppState_FilterFeedsSearchCandidates(t *testing.T) {
	state := NewAppState(NewCatalog(testParks()), nil, nil, model.DefaultEstimatorConfig())

	// 初始: 可见子集即全量
	assert.Len(t, state.SearchCandidates(), 3)

	// 过滤后: 最近搜索只用过滤子集
	state.SetFilter("hundido")
	got := state.SearchCandidates()
	require.Len(t, got, 1)
	assert.Equal(t, "Parque Hundido", got[0].Park.Name)
	assert.Equal(t, "hundido", state.SearchText())

	// 过滤结果为空时退回全量目录
	state.SetFilter("no existe")
	assert.Len(t, state.SearchCandidates(), 3)
}

func TestAppState_LocationAndRouteReplacement(t *testing.T) {
	state := NewAppState(NewCatalog(testParks()), nil, nil, model.DefaultEstimatorConfig())

	_, ok := state.Location()
	assert.False(t, ok)

	first := UserLocation{Point: model.Point{Lat: 19.35, Lng: -99.15}, AccuracyM: 20}
	state.SetLocation(first)
	got, ok := state.Location()
	require.True(t, ok)
	assert.Equal(t, first, got)

	// 新定位整体替换旧定位
	second := UserLocation{Point: model.Point{Lat: 19.36, Lng: -99.16}, AccuracyM: 1500}
	state.SetLocation(second)
	got, _ = state.Location()
	assert.Equal(t, second, got)

	// 路线同理: 先清后画
	state.SetRoute([]model.Point{{Lat: 19.35, Lng: -99.15}, {Lat: 19.36, Lng: -99.16}})
	assert.Len(t, state.Route(), 2)
	state.ClearRoute()
	assert.Nil(t, state.Route())
}
