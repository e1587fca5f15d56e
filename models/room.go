package models

import "time"

// 游戏模式。数值与客户端协议保持一致。
const (
	ModeBasic      = 1 // 基础玩法：摸牌、出牌、吃牌、胡牌
	ModeFreeForAll = 2 // 大乱斗：共同造句，随时可以结束故事
	ModeNoLimit    = 3 // 无极限：一次至少出三张，摸牌跳过回合，先出完或牌最少者胜
)

// 房间状态
const (
	StateWaiting = "WAITING"
	StatePlaying = "PLAYING"
)

// DiscardEntry 弃牌堆中的一条记录：一张牌加上打出它的座位。
type DiscardEntry struct {
	Char     string `json:"char"`
	FromSeat int    `json:"fromSeat"`
}

// Player 房间内的一个玩家。机器人没有连接（Conn 为 nil）。
type Player struct {
	ID      string
	Name    string
	Hand    []string
	Seat    int
	IsReady bool
	IsBot   bool
	Conn    Conn
}

// Room 一局游戏的全部权威状态，由 registry 独占持有。
// Deck 作为栈使用：从末尾弹出即为摸牌。
type Room struct {
	Mode        int
	Players     []*Player
	Deck        []string
	DiscardPile []DiscardEntry
	TurnIndex   int
	State       string
	LastDiscard *DiscardEntry
	MaxPlayers  int

	// Generation 在每次重置时递增，用于让已经排定的机器人定时器失效。
	Generation uint64
	// LastActivity 由每次房间变更刷新，供定时清理任务判断闲置。
	LastActivity time.Time
}

// Touch 刷新房间的最后活动时间。
func (r *Room) Touch() {
	r.LastActivity = time.Now()
}

// CurrentPlayer 返回当前回合的玩家，turnIndex 越界时返回 nil。
func (r *Room) CurrentPlayer() *Player {
	if len(r.Players) == 0 || r.TurnIndex < 0 || r.TurnIndex >= len(r.Players) {
		return nil
	}
	return r.Players[r.TurnIndex]
}

// FindPlayer 按连接 ID 查找玩家，找不到返回 nil。
func (r *Room) FindPlayer(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// HasHuman 房间里是否还有真人玩家。
func (r *Room) HasHuman() bool {
	for _, p := range r.Players {
		if !p.IsBot {
			return true
		}
	}
	return false
}
