package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"geoportal-system/algo"
	"geoportal-system/dataset"
	"geoportal-system/handler"
	"geoportal-system/model"
)

func main() {
	fmt.Println("=== 欢迎使用 Geoportal de Parques - 公园地图服务 ===")

	// 1. 读取配置 (数据文件路径与端口均可用环境变量覆盖)
	parksPath := getEnvOrDefault("PARKS_FILE", "archivos/parques.geojson")
	roadsPath := getEnvOrDefault("ROADS_FILE", "archivos/ejes_viales.geojson")
	boundaryPath := getEnvOrDefault("BOUNDARY_FILE", "archivos/limite_alcaldia.geojson")
	addr := ":" + getEnvOrDefault("PORT", "8080")

	// 2. 加载公园数据
	// 这是整个服务的根基，失败就退出，提示检查数据后重启
	fmt.Println("正在加载公园数据...")
	parks, err := dataset.LoadParks(parksPath)
	if err != nil {
		log.Fatalf("加载公园数据失败: %v\n请检查数据文件后重新启动服务", err)
	}
	fmt.Printf("公园数据加载成功! 共 %d 个公园\n", len(parks))

	// 3. 加载道路网 (可选)
	// 失败只降级为直线模式，不影响其余功能
	network, err := dataset.LoadRoads(roadsPath)
	if err != nil {
		log.Printf("警告: 道路网不可用，距离估算退化为直线模式: %v", err)
		network = nil
	} else {
		fmt.Printf("道路网加载成功! 共 %d 条道路, %d 个路段\n", len(network.Features), network.SegmentCount())
	}

	// 4. 加载行政边界 (可选，仅供前端叠加展示)
	boundary, err := dataset.LoadBoundary(boundaryPath)
	if err != nil {
		log.Printf("警告: 行政边界加载失败: %v", err)
		boundary = nil
	}

	// 5. 构建标记目录与应用状态
	catalog := algo.NewCatalog(parks)
	state := algo.NewAppState(catalog, network, boundary, model.DefaultEstimatorConfig())

	// 6. 初始化 Gin 引擎并配置路由
	r := gin.Default()
	setupRoutes(r, handler.New(state))

	// 7. 启动服务器
	fmt.Println("\n服务器启动中...")
	fmt.Println("访问地址: http://localhost" + addr)
	fmt.Println("前端页面: http://localhost" + addr + "/static/")
	fmt.Println("API 文档:")
	fmt.Println("  - GET    /api/config          - 地图默认视图")
	fmt.Println("  - GET    /api/parks           - 获取全部公园")
	fmt.Println("  - GET    /api/parks/search    - 按名称搜索公园")
	fmt.Println("  - GET    /api/parks/resolve   - 深链接解析 (?parque=...)")
	fmt.Println("  - GET    /api/boundary        - 行政边界 GeoJSON")
	fmt.Println("  - POST   /api/location        - 上报用户定位")
	fmt.Println("  - POST   /api/location/error  - 上报定位失败")
	fmt.Println("  - POST   /api/nearest         - 查找最近公园")
	fmt.Println("  - POST   /api/route           - 路线草图")
	fmt.Println("\n按 Ctrl+C 退出")

	if err := r.Run(addr); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}

// setupRoutes 配置路由
func setupRoutes(r *gin.Engine, h *handler.Handler) {
	// CORS 跨域中间件
	r.Use(cors.Default())

	// 静态文件服务 - 提供前端页面
	r.Static("/static", "./static")

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "ok",
		})
	})

	// 根路径重定向到前端页面
	r.GET("/", func(c *gin.Context) {
		c.Redirect(302, "/static/index.html")
	})

	// API 路由组
	api := r.Group("/api")
	h.Register(api)
}

// getEnvOrDefault 获取环境变量，如果不存在则返回默认值
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
