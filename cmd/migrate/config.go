package main

import (
	"bookcatalog/internal/platform/config"
)

func loadEnvFiles() {
	config.LoadEnvFiles()
}

func migrationsDir() string {
	cfg, err := config.FromEnv()
	if err != nil || cfg.MigrationsDir == "" {
		return "db/migrations"
	}
	return cfg.MigrationsDir
}
