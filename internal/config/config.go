package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Printer PrinterConfig
	Log     LogConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Debug bool
}

type APIConfig struct {
	// BaseURL is the remote billing API root, including any path prefix.
	BaseURL string
	// Timeout of 0 means requests never time out; a hung request keeps the
	// busy indicator visible until it resolves.
	Timeout time.Duration
	// RequireCustomer enforces customer attribution at bill submit time.
	RequireCustomer bool
}

type PrinterConfig struct {
	Type    string // usb, network, or none
	Device  string // USB device path, e.g. /dev/usb/lp0
	Address string // network printer address, e.g. 192.168.1.50:9100
}

type LogConfig struct {
	Level  string
	Format string // text or json
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "billdesk")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_DEBUG", false)
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	viper.SetDefault("API_TIMEOUT_SECONDS", 0)
	viper.SetDefault("API_REQUIRE_CUSTOMER", true)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_DEVICE", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		API: APIConfig{
			BaseURL:         viper.GetString("API_BASE_URL"),
			Timeout:         time.Duration(viper.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
			RequireCustomer: viper.GetBool("API_REQUIRE_CUSTOMER"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			Device:  viper.GetString("PRINTER_DEVICE"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}
}
