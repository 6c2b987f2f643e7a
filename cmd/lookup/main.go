// Command lookup resolves one user and prints its profile.
//
// The id comes from -id, else from a CGI-style QUERY_STRING (id=N), else 1.
// Failures are logged and the process still exits 0.
package main

import (
	"context"
	"flag"
	"io"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-user-lookup/config"
	"github.com/oksasatya/go-user-lookup/internal/application"
	"github.com/oksasatya/go-user-lookup/internal/infrastructure"
	"github.com/oksasatya/go-user-lookup/internal/infrastructure/cache"
	"github.com/oksasatya/go-user-lookup/pkg/helpers"
)

func main() {
	_ = godotenv.Load() // load .env if present

	idFlag := flag.String("id", "", "user id to look up (default 1)")
	flag.Parse()

	cfg := config.Load()
	run(context.Background(), cfg, requestedID(*idFlag, os.Getenv("QUERY_STRING")), os.Stdout)
}

func run(ctx context.Context, cfg *config.Config, rawID string, out io.Writer) {
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogFormat, cfg.LogLevel, out)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
	}

	src, err := infrastructure.NewRecordSource(cfg, logger, rdb)
	if err != nil {
		logger.Error("Application error: " + err.Error())
		return
	}
	app, err := application.NewApp(ctx, src, logger, out)
	if err != nil {
		logger.Error("Application error: " + err.Error())
		return
	}
	defer func() { _ = app.Close() }()

	app.Run(ctx, rawID)
}

func requestedID(flagValue, queryString string) string {
	if flagValue != "" {
		return flagValue
	}
	q, err := url.ParseQuery(queryString)
	if err != nil {
		return ""
	}
	return q.Get("id")
}
