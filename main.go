package main

import (
	"net/http"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/chousawa/text-mahjong/mahjong"          // 游戏核心与 WebSocket 接入
	"github.com/chousawa/text-mahjong/mahjong/registry" // 房间存储
	"github.com/chousawa/text-mahjong/utils"            // 日志初始化与定时清理

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func main() {
	logger, err := utils.InitLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 配置文件缺失时直接用默认值
	cfg, err := utils.LoadConfig("config.json")
	if err != nil {
		logger.Info("config.json not loaded, using defaults", zap.Error(err))
	}

	reg := registry.New()
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	// 闲置房间的定时清理
	go utils.CronCleaner(reg, time.Duration(cfg.RoomTTLHours)*time.Hour, logger)

	router := gin.New()
	router.Use(gin.Recovery(), utils.RequestLogger(logger))

	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "rooms": reg.Len()})
	})
	router.GET("/ws", func(c *gin.Context) {
		mahjong.HandleConnections(c.Request.Context(), c.Writer, c.Request, reg, cfg, logger, upgrader)
	})

	// 客户端页面
	router.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
	router.Static("/static", cfg.StaticDir)

	if err := router.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("Failed to run server", zap.Error(err))
	}
}
