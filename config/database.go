package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB membuka koneksi database dari environment. Default MySQL;
// DB_DRIVER=sqlite dipakai untuk development lokal tanpa server DB.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")

	if driver == "sqlite" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "catering.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	user := envOrDefault("DB_USER", "root")
	pass := os.Getenv("DB_PASSWORD")
	name := envOrDefault("DB_NAME", "catering")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, name)

	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
