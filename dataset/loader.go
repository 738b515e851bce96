package dataset

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"geoportal-system/model"
)

// LoadParks 从 GeoJSON 文件加载公园点要素
// 几何不是点、或坐标无效的要素跳过并告警，不中断整体加载
func LoadParks(path string) ([]*model.Park, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取公园数据失败: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("解析公园 GeoJSON 失败: %w", err)
	}

	parks := make([]*model.Park, 0, len(fc.Features))
	for _, feature := range fc.Features {
		name, _ := feature.Properties["Name"].(string)

		point, ok := feature.Geometry.(orb.Point)
		if !ok {
			log.Printf("警告: 跳过非点状要素: %q", name)
			continue
		}

		// GeoJSON 坐标顺序是 [经度, 纬度]
		lng, lat := point.Lon(), point.Lat()
		if math.IsNaN(lat) || math.IsNaN(lng) || !(model.Point{Lat: lat, Lng: lng}).Valid() {
			log.Printf("警告: 坐标无效，跳过要素: %q", name)
			continue
		}

		parks = append(parks, &model.Park{
			Name:       name,
			Lat:        lat,
			Lng:        lng,
			Properties: map[string]interface{}(feature.Properties),
		})
	}

	return parks, nil
}

// LoadRoads 加载道路网数据集 (ejes viales)
// 整个数据集是可选的: 调用方拿到错误后应降级为直线模式而不是退出
func LoadRoads(path string) (*model.RoadNetwork, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取道路网数据失败: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("解析道路网 GeoJSON 失败: %w", err)
	}

	net := &model.RoadNetwork{}
	for _, feature := range fc.Features {
		name, _ := feature.Properties["Name"].(string)

		var lines [][]model.Point
		switch geom := feature.Geometry.(type) {
		case orb.MultiLineString:
			for _, ls := range geom {
				if len(ls) > 1 {
					lines = append(lines, toPoints(ls))
				}
			}
		case orb.LineString:
			if len(geom) > 1 {
				lines = append(lines, toPoints(geom))
			}
		default:
			// 其他几何类型不参与路段搜索
			continue
		}

		if len(lines) > 0 {
			net.Features = append(net.Features, model.RoadFeature{Name: name, Lines: lines})
		}
	}

	return net, nil
}

// LoadBoundary 读取行政边界 GeoJSON，原样透传给前端叠加展示
// 只校验内容能被解析，不做转换
func LoadBoundary(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取行政边界失败: %w", err)
	}
	if _, err := geojson.UnmarshalFeatureCollection(raw); err != nil {
		return nil, fmt.Errorf("解析行政边界 GeoJSON 失败: %w", err)
	}
	return raw, nil
}

func toPoints(ls orb.LineString) []model.Point {
	points := make([]model.Point, len(ls))
	for i, p := range ls {
		points[i] = model.Point{Lat: p.Lat(), Lng: p.Lon()}
	}
	return points
}
