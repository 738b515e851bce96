package algo

import (
	"strings"

	"geoportal-system/model"
)

// Catalog 标记目录: 加载时每个有效公园要素创建一个 MarkerEntry
// 之后只读；条目顺序即数据文件里的插入顺序
type Catalog struct {
	entries []*model.MarkerEntry
}

// NewCatalog 从公园列表构建目录，渲染句柄 (MarkerID) 按顺序分配
func NewCatalog(parks []*model.Park) *Catalog {
	c := &Catalog{entries: make([]*model.MarkerEntry, 0, len(parks))}
	for i, p := range parks {
		c.entries = append(c.entries, &model.MarkerEntry{
			MarkerID: i + 1,
			Park:     p,
			Lat:      p.Lat,
			Lng:      p.Lng,
		})
	}
	return c
}

// Entries 按插入顺序返回全部标记
func (c *Catalog) Entries() []*model.MarkerEntry {
	return c.entries
}

// Len 目录条目数
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Filter 按名称做不区分大小写的子串过滤
// 空关键字匹配全部；结果保持插入顺序
func (c *Catalog) Filter(term string) []*model.MarkerEntry {
	needle := strings.ToLower(term)
	if needle == "" {
		return append([]*model.MarkerEntry(nil), c.entries...)
	}

	filtered := make([]*model.MarkerEntry, 0)
	for _, entry := range c.entries {
		if strings.Contains(strings.ToLower(entry.Park.Name), needle) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// Names 返回全部公园名称 (深链接未命中时用于诊断输出)
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, entry := range c.entries {
		names = append(names, entry.Park.Name)
	}
	return names
}

// ResolveDeepLink 解析启动参数命名的公园
// 连字符换成空格后，与公园名称做不区分大小写的精确匹配
func (c *Catalog) ResolveDeepLink(raw string) (*model.MarkerEntry, bool) {
	wanted := strings.ToLower(strings.ReplaceAll(raw, "-", " "))
	for _, entry := range c.entries {
		if strings.ToLower(entry.Park.Name) == wanted {
			return entry, true
		}
	}
	return nil, false
}
