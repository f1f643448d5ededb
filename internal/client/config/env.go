package config

import "os"

// APIURLEnv names the environment variable holding the API base address.
const APIURLEnv = "CHAT_API_URL"

func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(APIURLEnv); ok && v != "" {
		cfg.APIBaseURL = v
	}
}
