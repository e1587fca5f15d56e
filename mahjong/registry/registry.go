// Package registry 持有全部房间状态。一个 Registry 实例就是一个
// 独立的游戏服务：测试可以并行创建多个互不干扰的实例。
package registry

import (
	"sync"
	"time"

	"github.com/chousawa/text-mahjong/models"
)

// Registry 房间表。内部一把大锁串行化所有房间变更：
// 读取协程和机器人定时器在处理每个事件前先 Lock，处理完再 Unlock，
// 任何房间在同一时刻只会被一个事件修改。
type Registry struct {
	mu    sync.Mutex
	rooms map[string]*models.Room
}

// New 创建一个空的房间表。
func New() *Registry {
	return &Registry{rooms: make(map[string]*models.Room)}
}

// Lock 获取事件锁。每个入站事件（客户端消息或定时器回调）处理期间必须持有。
func (r *Registry) Lock() { r.mu.Lock() }

// Unlock 释放事件锁。
func (r *Registry) Unlock() { r.mu.Unlock() }

// Get 查找房间。调用方必须持有锁。
func (r *Registry) Get(roomID string) (*models.Room, bool) {
	room, ok := r.rooms[roomID]
	return room, ok
}

// GetOrCreate 返回已有房间，不存在则按给定设置创建。调用方必须持有锁。
func (r *Registry) GetOrCreate(roomID string, mode, maxPlayers int) *models.Room {
	if room, ok := r.rooms[roomID]; ok {
		return room
	}
	room := &models.Room{
		Mode:        mode,
		Players:     make([]*models.Player, 0, maxPlayers),
		Deck:        make([]string, 0),
		DiscardPile: make([]models.DiscardEntry, 0),
		State:       models.StateWaiting,
		MaxPlayers:  maxPlayers,
	}
	room.Touch()
	r.rooms[roomID] = room
	return room
}

// Delete 删除房间。调用方必须持有锁。
func (r *Registry) Delete(roomID string) {
	delete(r.rooms, roomID)
}

// FindByPlayer 找到包含指定连接的房间。调用方必须持有锁。
func (r *Registry) FindByPlayer(clientID string) (string, *models.Room) {
	for roomID, room := range r.rooms {
		if room.FindPlayer(clientID) != nil {
			return roomID, room
		}
	}
	return "", nil
}

// Len 当前房间数。自行加锁，供健康检查使用。
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms)
}

// SweepIdle 删除最后活动时间早于 ttl 的房间，返回删除数量。自行加锁。
func (r *Registry) SweepIdle(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := time.Now().Add(-ttl)
	removed := 0
	for roomID, room := range r.rooms {
		if room.LastActivity.Before(cutoff) {
			delete(r.rooms, roomID)
			removed++
		}
	}
	return removed
}
