package app

import (
	"strings"

	"github.com/acolhedu/acolhe-backend/internal/logger"
	"github.com/acolhedu/acolhe-backend/internal/utils"
)

type Config struct {
	JWTSecretKey string
	SeedFile     string
	AllowOrigins []string
	Port         string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	seedFile := utils.GetEnv("ITEM_BANK_SEED_FILE", "config/item_bank.yaml", log)
	origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "", log)
	port := utils.GetEnv("PORT", "8080", log)

	var allowOrigins []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowOrigins = append(allowOrigins, o)
		}
	}

	return Config{
		JWTSecretKey: jwtSecretKey,
		SeedFile:     seedFile,
		AllowOrigins: allowOrigins,
		Port:         port,
	}
}
