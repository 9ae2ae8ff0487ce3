package config

import "os"

type Config struct {
	Addr    string
	BaseURL string
	DataDir string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Load(flagAddr, flagBaseURL, flagDataDir string) Config {
	return Config{
		Addr:    flagAddr,
		BaseURL: getEnv("KALASETU_BASE_URL", flagBaseURL),
		DataDir: getEnv("KALASETU_DATA_DIR", flagDataDir),
	}
}
