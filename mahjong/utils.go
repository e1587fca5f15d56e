package mahjong

import (
	"math/rand"
	"time"
)

// CreateLocalRandGenerator 每条连接一个独立的随机源，
// 用于洗牌、机器人取名和机器人出牌。只在持有 registry 锁时使用。
func CreateLocalRandGenerator() *rand.Rand {
	source := rand.NewSource(time.Now().UnixNano())
	return rand.New(source)
}
