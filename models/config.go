package models

// Config 服务端配置，从 config.json 读取。
type Config struct {
	ListenAddr        string   `json:"listen_addr"`
	AllowOrigins      []string `json:"allow_origins"`
	StaticDir         string   `json:"static_dir"`
	DefaultMaxPlayers int      `json:"default_max_players"`
	DefaultGameMode   int      `json:"default_game_mode"`
	RoomTTLHours      int      `json:"room_ttl_hours"`
}

// DefaultConfig 配置文件缺失时的默认值。
func DefaultConfig() Config {
	return Config{
		ListenAddr:        ":3000",
		AllowOrigins:      []string{"*"},
		StaticDir:         "./web",
		DefaultMaxPlayers: 4,
		DefaultGameMode:   ModeBasic,
		RoomTTLHours:      24,
	}
}
