package constants

import "time"

// TargetSeason is the only season searches are enriched against.
const TargetSeason = 2022

const (
	DefaultBallDontLieURL      = "https://www.balldontlie.io/api/v1"
	DefaultSearchConcurrency   = 8
	ExternalAPIReadTimeout     = 10 * time.Second
	ExternalAPIWriteTimeout    = 10 * time.Second
	ExternalAPIMaxIdleConn     = 1 * time.Minute
	ExternalAPIMaxConnsPerHost = 100
)

const (
	DatabaseTimeout = 5 * time.Second
)

// The in-memory database lives only as long as one connection stays open,
// so the pool holds exactly one and never recycles it.
const (
	DBMaxOpenConns    = 1
	DBMaxIdleConns    = 1
	DBConnMaxLifetime = 0
	DBMaxIdleTime     = 0
)

const (
	ShutdownTimeout = 5 * time.Second
)
