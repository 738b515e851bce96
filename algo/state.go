package algo

import (
	"sync"

	"geoportal-system/model"
)

// UserLocation 当前用户定位 (定位标记 + 精度圈)
type UserLocation struct {
	Point     model.Point `json:"point"`
	AccuracyM float64     `json:"accuracy_m"`
}

// AppState 页面生命周期内的全部可变 UI 状态:
// 当前搜索文本、当前可见子集、当前用户定位、当前展示路线
// 用显式结构体代替散落的全局变量，核心逻辑可以脱离渲染环境做单元测试
//
// 约定: 重画定位/路线前必须先丢弃旧的可视对象 (这里表现为整体替换)，
// 否则地图上会残留孤儿图层
type AppState struct {
	mu sync.Mutex

	Catalog  *Catalog
	Network  *model.RoadNetwork // 可能为 nil: 全部估算退化为直线模式
	Boundary []byte             // 行政边界 GeoJSON 原文 (可选)
	Config   model.EstimatorConfig

	searchText string
	filtered   []*model.MarkerEntry
	location   *UserLocation
	route      []model.Point
}

// NewAppState 初始化应用状态，可见子集从全量开始
func NewAppState(catalog *Catalog, network *model.RoadNetwork, boundary []byte, cfg model.EstimatorConfig) *AppState {
	return &AppState{
		Catalog:  catalog,
		Network:  network,
		Boundary: boundary,
		Config:   cfg,
		filtered: catalog.Entries(),
	}
}

// SetFilter 更新搜索文本并重算可见子集
func (s *AppState) SetFilter(term string) []*model.MarkerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchText = term
	s.filtered = s.Catalog.Filter(term)
	return s.filtered
}

// SearchText 当前搜索文本
func (s *AppState) SearchText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchText
}

// SearchCandidates 最近搜索使用的候选集:
// 有过滤结果用过滤结果，过滤为空时退回全量目录
func (s *AppState) SearchCandidates() []*model.MarkerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.filtered) > 0 {
		return s.filtered
	}
	return s.Catalog.Entries()
}

// SetLocation 替换当前用户定位，旧的定位标记与精度圈随之废弃
// 新的定位请求到达时直接覆盖，不存在取消语义
func (s *AppState) SetLocation(loc UserLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = &loc
}

// Location 当前用户定位
func (s *AppState) Location() (UserLocation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.location == nil {
		return UserLocation{}, false
	}
	return *s.location, true
}

// SetRoute 替换当前展示的路线 (先清后画)
func (s *AppState) SetRoute(points []model.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.route = points
}

// ClearRoute 清除当前路线
func (s *AppState) ClearRoute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.route = nil
}

// Route 当前展示的路线途经点
func (s *AppState) Route() []model.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route
}
