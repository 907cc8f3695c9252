package store

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestNGOListOrdersNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "cause", "created_by"}).
		AddRow(2, "Newer", "environment", 1).
		AddRow(1, "Older", "health", 1)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "ngos" ORDER BY created_at DESC`)).
		WillReturnRows(rows)

	ngos, err := NewPostgresNGOStore(db).List()
	require.NoError(t, err)
	require.Len(t, ngos, 2)
	assert.Equal(t, "Newer", ngos[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// The NGO cascade has to remove volunteer rows before events, and all
// children before the NGO row, or foreign keys would block the delete.
func TestNGODeleteCascadesChildrenInOrder(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "events" WHERE ngo_id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3).AddRow(4))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "event_volunteers" WHERE event_id IN ($1,$2)`)).
		WithArgs(3, 4).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "events" WHERE ngo_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "donations" WHERE ngo_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "favorites" WHERE ngo_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "ngos" WHERE "ngos"."id" = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, NewPostgresNGOStore(db).Delete(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNGODeleteWithoutEventsSkipsVolunteerSweep(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "events" WHERE ngo_id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "events" WHERE ngo_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "donations" WHERE ngo_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "favorites" WHERE ngo_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "ngos" WHERE "ngos"."id" = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, NewPostgresNGOStore(db).Delete(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDeleteCascadesOwnedNGOs(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "ngos" WHERE created_by = $1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	// Owned NGO goes first, with its own child sweep.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "events" WHERE ngo_id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "event_volunteers" WHERE event_id IN ($1)`)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "events" WHERE ngo_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "donations" WHERE ngo_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "favorites" WHERE ngo_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "ngos" WHERE "ngos"."id" = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Then everything hanging off the user itself.
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "donations" WHERE user_id = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "favorites" WHERE user_id = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "event_volunteers" WHERE user_id = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "notifications" WHERE user_id = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, NewPostgresUserStore(db).Delete(1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVolunteerRemoveReportsMissingRow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "event_volunteers" WHERE event_id = $1 AND user_id = $2`)).
		WithArgs(3, 9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	removed, err := NewPostgresVolunteerStore(db).Remove(3, 9)
	require.NoError(t, err)
	assert.False(t, removed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVolunteerRemoveDeletesExistingRow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "event_volunteers" WHERE event_id = $1 AND user_id = $2`)).
		WithArgs(3, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := NewPostgresVolunteerStore(db).Remove(3, 9)
	require.NoError(t, err)
	assert.True(t, removed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteExists(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "favorites" WHERE user_id = $1 AND ngo_id = $2`)).
		WithArgs(9, 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := NewPostgresFavoriteStore(db).Exists(9, 7)
	require.NoError(t, err)
	assert.True(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	_, err := NewPostgresUserStore(db).GetByEmail("missing@example.org")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventListByOrganizerJoinsOwningNGO(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "ngo_id", "title"}).
		AddRow(3, 7, "River cleanup")

	mock.ExpectQuery(`SELECT .* FROM "events" JOIN ngos ON ngos\.id = events\.ngo_id WHERE ngos\.created_by = \$1 ORDER BY events\.created_at DESC`).
		WithArgs(1).
		WillReturnRows(rows)
	// Preloading volunteer rows for the matched events.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "event_volunteers" WHERE "event_volunteers"."event_id" = $1`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "user_id"}).AddRow(11, 3, 9))

	events, err := NewPostgresEventStore(db).ListByOrganizer(1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "River cleanup", events[0].Title)
	require.Len(t, events[0].Volunteers, 1)
	assert.Equal(t, uint(9), events[0].Volunteers[0].UserID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
