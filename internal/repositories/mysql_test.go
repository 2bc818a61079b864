package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"airline/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func TestMySQLAirportFindByCode(t *testing.T) {
	db, mock := newMock(t)
	store := NewMySQLStore(db)

	mock.ExpectQuery("SELECT id, code, name, city FROM airports WHERE code = \\?").
		WithArgs("DEL").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "city"}).
			AddRow("a-1", "DEL", "Indira Gandhi International", "New Delhi"))

	got, err := store.Airports.FindByCode(context.Background(), "DEL")
	require.NoError(t, err)
	assert.Equal(t, models.Airport{ID: "a-1", Code: "DEL", Name: "Indira Gandhi International", City: "New Delhi"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLFlightMissingMapsToNotFound(t *testing.T) {
	db, mock := newMock(t)
	store := NewMySQLStore(db)

	mock.ExpectQuery("FROM flights WHERE flight_id = \\?").
		WithArgs("AI999").
		WillReturnError(sql.ErrNoRows)

	_, err := store.Flights.FindByID(context.Background(), "AI999")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLDuplicateKeyMapsToDuplicate(t *testing.T) {
	db, mock := newMock(t)
	store := NewMySQLStore(db)

	mock.ExpectExec("INSERT INTO airports").
		WithArgs("a-1", "DEL", "Indira Gandhi International", "New Delhi").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'DEL'"})

	err := store.Airports.Insert(context.Background(), models.Airport{
		ID: "a-1", Code: "DEL", Name: "Indira Gandhi International", City: "New Delhi",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLInsertManySplitsLargeBatches(t *testing.T) {
	db, mock := newMock(t)
	store := NewMySQLStore(db)

	airports := make([]models.Airport, insertBatchSize+1)
	for i := range airports {
		airports[i] = models.Airport{ID: fmt.Sprintf("a-%d", i), Code: fmt.Sprintf("C%03d", i), Name: "Airport", City: "City"}
	}

	mock.ExpectExec("INSERT INTO airports").WillReturnResult(sqlmock.NewResult(0, insertBatchSize))
	mock.ExpectExec("INSERT INTO airports").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Airports.InsertMany(context.Background(), airports))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLInsertManyEmptyIsNoop(t *testing.T) {
	db, mock := newMock(t)
	store := NewMySQLStore(db)

	require.NoError(t, store.Passengers.InsertMany(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLBoardingListByFlightOrdersByPosition(t *testing.T) {
	db, mock := newMock(t)
	store := NewMySQLStore(db)

	mock.ExpectQuery("FROM boarding_queue\\s+WHERE flight_id = \\? ORDER BY position ASC, seq ASC LIMIT \\?").
		WithArgs("AI101", 1000).
		WillReturnRows(sqlmock.NewRows([]string{"seq", "ticket_id", "passenger_name", "flight_id", "position"}).
			AddRow(4, "TKTABC12345", "Rajesh Kumar", "AI101", 0).
			AddRow(9, "TKTDEF67890", "Priya Sharma", "AI101", 1))

	items, err := store.Boarding.ListByFlight(context.Background(), "AI101", 1000)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.EqualValues(t, 4, items[0].Seq)
	assert.Equal(t, 1, items[1].Position)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLBoardingSetPositionBySeq(t *testing.T) {
	db, mock := newMock(t)
	store := NewMySQLStore(db)

	mock.ExpectExec("UPDATE boarding_queue SET position = \\? WHERE seq = \\?").
		WithArgs(0, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Boarding.SetPosition(context.Background(), models.BoardingQueueItem{Seq: 9, Position: 1}, 0)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLCancellationLatest(t *testing.T) {
	db, mock := newMock(t)
	store := NewMySQLStore(db)

	mock.ExpectQuery("FROM cancellations ORDER BY ts DESC, seq DESC LIMIT 1").
		WillReturnRows(sqlmock.NewRows([]string{"seq", "ticket_id", "passenger_name", "flight_id", "ts"}).
			AddRow(3, "TKTABC12345", "Rajesh Kumar", "AI101", "2025-01-01T10:00:00.000000+00:00"))

	item, err := store.Cancellations.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TKTABC12345", item.TicketID)
	assert.Equal(t, "2025-01-01T10:00:00.000000+00:00", item.Timestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLDeleteByCodeReportsRows(t *testing.T) {
	db, mock := newMock(t)
	store := NewMySQLStore(db)

	mock.ExpectExec("DELETE FROM airports WHERE code = \\?").
		WithArgs("XXX").
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := store.Airports.DeleteByCode(context.Background(), "XXX")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaAddsMissingBookedSeats(t *testing.T) {
	db, mock := newMock(t)

	for _, table := range []string{"airports", "flights", "passengers", "boarding_queue", "cancellations"} {
		mock.ExpectQuery("information_schema\\.tables").WithArgs(table).
			WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow(table))
	}
	mock.ExpectQuery("information_schema\\.columns").WithArgs("flights", "booked_seats").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))
	mock.ExpectExec("ALTER TABLE flights ADD COLUMN booked_seats").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaCreatesMissingTables(t *testing.T) {
	db, mock := newMock(t)

	for _, table := range []string{"airports", "flights", "passengers", "boarding_queue", "cancellations"} {
		mock.ExpectQuery("information_schema\\.tables").WithArgs(table).
			WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectQuery("information_schema\\.columns").WithArgs("flights", "booked_seats").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("booked_seats"))

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
