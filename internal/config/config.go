package config

import (
	"fmt"
	"os"
	"strconv"
)

// アプリ全体の設定
type Config struct {
	Port string // サーバーポート

	// DATABASE_URLがあれば最優先
	DatabaseURL string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string

	JWTSecret string // 空ならトークン発行なし（任意の本人確認機能）

	FEURL     string // フロントURL（CORS許可）
	UploadDir string // 写真の保存先

	// trueなら注文作成時に在庫を減らす（既定はfalse＝元の挙動）
	DecrementStock bool
}

// 環境変数から読み込む
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "app"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		FEURL:     os.Getenv("FE_URL"),
		UploadDir: getenv("UPLOAD_DIR", "uploads"),
	}

	pgPort, err := atoiOr("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	cfg.PostgresPort = pgPort

	if v := os.Getenv("DECREMENT_STOCK"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("DECREMENT_STOCK must be bool: %w", err)
		}
		cfg.DecrementStock = b
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
