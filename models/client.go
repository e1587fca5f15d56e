package models

import "golang.org/x/time/rate"

// Conn 是游戏层需要的最小连接接口。生产环境由 WebSocket 连接实现，
// 测试中用内存实现替换。
type Conn interface {
	ReadJSON(v interface{}) error
	WriteJSON(v interface{}) error
	Close() error
}

// Client 一条已升级的客户端连接。ID 为服务端生成的临时标识，
// 断线重连后会得到新的 ID。
type Client struct {
	Conn    Conn
	ID      string
	RoomID  string
	Name    string
	Limiter *rate.Limiter
}
