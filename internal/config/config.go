package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	ItemServer    ServerConfig
	RawItemServer ServerConfig
	ImageServer   ImageServerConfig
	ImageClient   ImageClientConfig
}

type ServerConfig struct {
	Address string
}

type ImageServerConfig struct {
	Address   string
	AssetPath string
}

type ImageClientConfig struct {
	URL string
}

// Load 載入所有服務共用的配置
// 配置文件是可選的，找不到時使用預設值，讓每個服務不需任何設定即可啟動
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	// 每個服務的預設監聽位址與資產位置
	viper.SetDefault("itemserver.address", ":8000")
	viper.SetDefault("rawitemserver.address", ":8001")
	viper.SetDefault("imageserver.address", ":8002")
	viper.SetDefault("imageserver.assetpath", "sheep.jpg")
	viper.SetDefault("imageclient.url", "http://127.0.0.1:8002/image")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
