package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-lookup/config"
	"github.com/oksasatya/go-user-lookup/internal/domain/repository"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg          *config.Config
	logger       *logrus.Logger
	redisClient  *redis.Client
	recordSource repository.RecordSource
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config {
	if cfg != nil {
		return cfg
	}
	return config.Load()
}
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger {
	if logger != nil {
		return logger
	}
	return logrus.StandardLogger()
}
func SetRedis(r *redis.Client)                  { redisClient = r }
func GetRedis() *redis.Client                   { return redisClient }
func SetRecordSource(s repository.RecordSource) { recordSource = s }
func GetRecordSource() repository.RecordSource  { return recordSource }
