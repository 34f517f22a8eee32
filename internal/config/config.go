package config

import (
	"log"
	"os"
)

type Config struct {
	Port        string
	DBDSN       string
	CatalogPath string
	PublicDir   string
	LogFile     string
	RedisAddr   string
	APIBase     string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "pricepeek.db"
	} // sqlite file in project root
	catalog := os.Getenv("CATALOG_PATH")
	if catalog == "" {
		catalog = "./data/products.json"
	}
	public := os.Getenv("PUBLIC_DIR")
	if public == "" {
		public = "./public"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./pricepeek.log" // default log sink in project root
	}
	// Empty REDIS_ADDR keeps the in-memory client-state store.
	redisAddr := os.Getenv("REDIS_ADDR")
	apiBase := os.Getenv("API_BASE")
	if apiBase == "" {
		apiBase = "http://localhost:" + port
	}

	cfg := Config{
		Port:        port,
		DBDSN:       dsn,
		CatalogPath: catalog,
		PublicDir:   public,
		LogFile:     logFile,
		RedisAddr:   redisAddr,
		APIBase:     apiBase,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s CATALOG_PATH=%s PUBLIC_DIR=%s LOG_FILE=%s REDIS_ADDR=%s",
		cfg.Port, cfg.DBDSN, cfg.CatalogPath, cfg.PublicDir, cfg.LogFile, cfg.RedisAddr)
	return cfg
}
