package utils

import (
	"time"

	"github.com/chousawa/text-mahjong/mahjong/registry"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CronCleaner 定时清理长时间无活动的房间。客户端异常掉线时
// disconnect 事件可能永远不会到达，闲置房间会一直留在内存里。
func CronCleaner(reg *registry.Registry, ttl time.Duration, logger *zap.Logger) {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		removed := reg.SweepIdle(ttl)
		if removed > 0 {
			logger.Info("idle rooms removed", zap.Int("count", removed))
		}
	})

	c.Start()
}
