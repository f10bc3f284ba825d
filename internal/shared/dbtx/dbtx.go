package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a GORM handle that runs every statement on tx, so repositories
// built over the same *gorm.DB join the caller's transaction. A nil tx returns
// db unchanged.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	// A Context forces a cloned statement; without it the session would share
	// (and mutate) the root statement.
	session := db.Session(&gorm.Session{
		NewDB:                  true,
		Context:                context.Background(),
		SkipDefaultTransaction: true,
	})
	session.Statement.ConnPool = tx
	return session
}
