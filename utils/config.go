package utils

import (
	"encoding/json"
	"os"

	"github.com/chousawa/text-mahjong/models"
)

// LoadConfig 从 JSON 文件加载配置。未设置的字段回落到默认值。
func LoadConfig(filename string) (models.Config, error) {
	config := models.DefaultConfig()
	configFile, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer configFile.Close()

	jsonParser := json.NewDecoder(configFile)
	if err := jsonParser.Decode(&config); err != nil {
		return models.DefaultConfig(), err
	}
	if config.ListenAddr == "" {
		config.ListenAddr = models.DefaultConfig().ListenAddr
	}
	if config.DefaultMaxPlayers <= 0 {
		config.DefaultMaxPlayers = models.DefaultConfig().DefaultMaxPlayers
	}
	if config.DefaultGameMode <= 0 {
		config.DefaultGameMode = models.ModeBasic
	}
	if config.RoomTTLHours <= 0 {
		config.RoomTTLHours = models.DefaultConfig().RoomTTLHours
	}
	return config, nil
}
