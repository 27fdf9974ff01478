package testdata

import (
	dbsql "database/sql"
	"time"
)

// CrossPackage tests cross-package types
type CrossPackage struct {
	Name             string           `json:"name"`
	Timestamp        time.Time        `json:"timestamp"`
	Duration         time.Duration    `json:"duration" partially:"as_type=*int64"`
	ConnectionString dbsql.NullString `partially:"rename=\"DSN\""`
	MaxConnections   *dbsql.NullInt64 `partially:"transparent"`
}
