package mahjong

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// wsConn 包装 gorilla 连接。写侧加锁：广播和 ping 协程可能同时写，
// 而 gorilla 连接只允许一个并发写者。
type wsConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func newWSConn(conn *websocket.Conn) *wsConn {
	return &wsConn{conn: conn}
}

func (c *wsConn) ReadJSON(v interface{}) error {
	return c.conn.ReadJSON(v)
}

func (c *wsConn) WriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

// Ping 发送控制帧探活。
func (c *wsConn) Ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second))
}
