package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/mahmoudaladin7/To-Do-List/config"
)

// Container carries the process-wide infrastructure handles. It is built
// once in main (or per test) and passed down explicitly; nothing in the
// application reaches for ambient globals.
type Container struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	PG     *pgxpool.Pool
	Redis  *redis.Client
}

func New(cfg *config.Config, logger *logrus.Logger, pg *pgxpool.Pool, rdb *redis.Client) *Container {
	return &Container{Cfg: cfg, Logger: logger, PG: pg, Redis: rdb}
}
