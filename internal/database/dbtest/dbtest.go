// Package dbtest opens an in-memory SQLite database with the full schema for tests.
package dbtest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/abnerteste26-bot/group-champs/internal/audit"
	championshipModel "github.com/abnerteste26-bot/group-champs/internal/championship/model"
	clockModel "github.com/abnerteste26-bot/group-champs/internal/clock/model"
	"github.com/abnerteste26-bot/group-champs/internal/database/pool"
	groupModel "github.com/abnerteste26-bot/group-champs/internal/group/model"
	matchModel "github.com/abnerteste26-bot/group-champs/internal/match/model"
	registrationModel "github.com/abnerteste26-bot/group-champs/internal/registration/model"
	standingsModel "github.com/abnerteste26-bot/group-champs/internal/standings/model"
	teamModel "github.com/abnerteste26-bot/group-champs/internal/team/model"
)

var seq atomic.Int64

// Models lists every persisted model.
func Models() []interface{} {
	return []interface{}{
		&championshipModel.Championship{},
		&groupModel.Group{},
		&groupModel.GroupMembership{},
		&teamModel.Team{},
		&matchModel.Match{},
		&standingsModel.StandingRow{},
		&registrationModel.PendingRegistration{},
		&clockModel.SessionClock{},
		&audit.Entry{},
	}
}

// Open returns a migrated in-memory database private to the test. The pool
// holds a single connection, so concurrent transactions serialize.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:dbtest%d?mode=memory&cache=shared&_busy_timeout=5000", seq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, pool.SetupConnectionPool(db, pool.SingleConnConfig()))
	require.NoError(t, db.AutoMigrate(Models()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
