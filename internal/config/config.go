package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		AdminBackend
		Sync
		Global
		Database
		Tasks
	}

	HTTP struct {
		Enabled bool
		Port    int32
		Host    string
		GinMode string
	}
	AdminBackend struct {
		URL    string
		APIKey string
	}
	Sync struct {
		Timeout time.Duration

		// Scheduled background sync, cron format: "0 * * * *" = hourly
		ScheduleEnabled bool
		Schedule        string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8189)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("http_server_enabled", true)
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Admin backend defaults
	v.SetDefault("admin_backend_url", "")
	v.SetDefault("admin_api_key", "")
	v.SetDefault("sync_timeout_seconds", 30)
	v.SetDefault("sync_schedule_enabled", false)
	v.SetDefault("sync_schedule", "0 * * * *") // Hourly at :00

	// Task queue defaults
	v.SetDefault("task_queue_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Enabled: v.GetBool("HTTP_SERVER_ENABLED"),
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),
		},
		AdminBackend: AdminBackend{
			URL:    v.GetString("ADMIN_BACKEND_URL"),
			APIKey: v.GetString("ADMIN_API_KEY"),
		},
		Sync: Sync{
			Timeout:         time.Duration(v.GetInt("SYNC_TIMEOUT_SECONDS")) * time.Second,
			ScheduleEnabled: v.GetBool("SYNC_SCHEDULE_ENABLED"),
			Schedule:        v.GetString("SYNC_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASK_QUEUE_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
	}
}
