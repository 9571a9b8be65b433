package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alsterium/gs-portfolio/internal/config"
	"github.com/alsterium/gs-portfolio/internal/consts"
	"github.com/alsterium/gs-portfolio/internal/db"
	"github.com/alsterium/gs-portfolio/internal/middleware"
	"github.com/alsterium/gs-portfolio/internal/model"
	"github.com/alsterium/gs-portfolio/internal/router"
	"github.com/alsterium/gs-portfolio/internal/service"
	"github.com/alsterium/gs-portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	sweepSessions := flag.Bool("sweep-sessions", false, "清理过期会话并退出")
	createAdmin := flag.Bool("create-admin", false, "创建管理员账号并退出")
	adminUser := flag.String("admin-user", "", "管理员用户名 (配合 -create-admin)")
	adminEmail := flag.String("admin-email", "", "管理员邮箱 (配合 -create-admin)")
	adminPassword := flag.String("admin-password", "", "管理员密码 (配合 -create-admin)")
	flag.Parse()

	config.InitConfig("")
	db.InitDB()
	service.InitializeSettings()

	if *sweepSessions {
		runSweepSessions()
		return
	}
	if *createAdmin {
		runCreateAdmin(*adminUser, *adminEmail, *adminPassword)
		return
	}

	storagePath := config.Get().Storage.Path
	checkSecurePath(storagePath)
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		log.Fatal("无法创建存储目录: ", err)
	}

	gin.SetMode(config.Get().Server.Mode)

	r := gin.New()
	r.Use(gin.Logger(), middleware.Recovery())
	router.Init(r)

	distFS := GetFrontendAssets()
	indexData := setupFrontend(r, distFS)
	r.NoRoute(getNoRouteHandler(distFS, indexData))

	// 导出模式
	if *exportRoutes {
		exportAPI(r)
		return
	}

	printWelcomeMessage(distFS)

	srv := &http.Server{
		Addr:    ":" + config.Get().Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 服务启动成功，运行在 :%s\n", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ 服务强制关闭:", err)
	}
	service.CloseRedisClient()
	log.Println("✅ 服务已退出")
}

// runSweepSessions 运维钩子：手动触发过期会话清理
func runSweepSessions() {
	count, err := service.SweepExpiredSessions()
	if err != nil {
		log.Fatalf("❌ 清理过期会话失败: %v", err)
	}
	log.Printf("✅ 已清理 %d 条过期会话\n", count)
}

// runCreateAdmin 创建管理员账号，首次部署时使用
func runCreateAdmin(username, email, password string) {
	if username == "" || email == "" || password == "" {
		log.Fatal("❌ -create-admin 需要同时提供 -admin-user、-admin-email 和 -admin-password")
	}
	if len(password) < 8 {
		log.Fatal("❌ 管理员密码长度至少 8 位")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("❌ 密码哈希失败: %v", err)
	}

	user := model.AdminUser{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		log.Fatalf("❌ 创建管理员失败: %v", err)
	}
	log.Printf("✅ 管理员 %s (id=%d) 创建成功\n", username, user.ID)
}

// getNoRouteHandler SPA 回退：API 路径返回 404，其余路径回退到 index.html
func getNoRouteHandler(distFS fs.FS, indexData []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "接口不存在"})
			return
		}

		if distFS == nil || indexData == nil {
			c.Status(http.StatusNotFound)
			return
		}

		path := strings.TrimPrefix(c.Request.URL.Path, "/")
		if path == "" {
			c.Data(http.StatusOK, "text/html; charset=utf-8", indexData)
			return
		}

		// 尝试直接服务根目录下的静态文件 (如 favicon.ico, manifest.json)
		f, err := distFS.Open(path)
		if err == nil {
			defer func() { _ = f.Close() }()
			stat, _ := f.Stat()
			if !stat.IsDir() {
				c.FileFromFS(path, http.FS(distFS))
				return
			}
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", indexData)
	}
}

func printWelcomeMessage(distFS fs.FS) {
	frontendVersion := "未嵌入"
	if distFS != nil {
		if vData, err := fs.ReadFile(distFS, "version"); err == nil {
			frontendVersion = strings.TrimSpace(string(vData))
		}
	}

	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  后端版本 : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   💻  前端版本 : %s\n", frontendVersion)
	fmt.Printf(" │   🔥  服务端口 : %s\n", config.Get().Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func exportAPI(r *gin.Engine) {
	routes := r.Routes()

	type RouteInfo struct {
		Method  string `json:"method"`
		Path    string `json:"path"`
		Handler string `json:"handler"`
	}

	var exportList []RouteInfo
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, _ := json.MarshalIndent(exportList, "", "  ")
	_ = os.WriteFile("routes.json", file, 0644)

	println("✅ 路由已成功导出到 routes.json")
}

// checkSecurePath 防止把项目根目录或源代码目录配置成存储目录
func checkSecurePath(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Fatalf("❌ 路径解析失败: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("❌ 无法获取当前工作目录: %v", err)
	}

	if absPath == cwd {
		log.Fatalf("❌ 安全配置错误: 存储目录 '%s' 不能设置为项目根目录！这会导致源代码泄露。", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		// 项目目录之外的绝对路径由部署者自行负责
		return
	}

	relSlash := filepath.ToSlash(rel)

	// 只有位于这些目录下的路径才被允许作为存储目录
	allowedDirs := []string{
		"uploads",
		"storage",
		"data",
		"tmp",
	}

	firstComponent := strings.Split(relSlash, "/")[0]
	for _, dir := range allowedDirs {
		if firstComponent == dir {
			return
		}
	}
	log.Fatalf("❌ 安全配置错误: 存储目录 '%s' 必须位于 %v 之一下", path, allowedDirs)
}
