package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"airline/internal/domain/models"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

const mysqlDuplicateEntry = 1062

// insertBatchSize keeps a multi-row insert under MySQL's 65535 placeholder cap.
const insertBatchSize = 500

// NewMySQLStore returns a Store backed by MySQL tables created by EnsureSchema.
func NewMySQLStore(db *sqlx.DB) Store {
	return Store{
		Airports:      sqlAirports{db},
		Flights:       sqlFlights{db},
		Passengers:    sqlPassengers{db},
		Boarding:      sqlBoarding{db},
		Cancellations: sqlCancellations{db},
	}
}

func insertBatches[T any](ctx context.Context, db *sqlx.DB, query string, rows []T, op string) error {
	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))
		if _, err := db.NamedExecContext(ctx, query, rows[start:end]); err != nil {
			return mapErr(op, err)
		}
	}
	return nil
}

func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func rowLimit(limit int) int {
	if limit <= 0 {
		return math.MaxInt32
	}
	return limit
}

func affected(res sql.Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// --- airports ---

type sqlAirports struct{ db *sqlx.DB }

const insertAirport = `INSERT INTO airports (id, code, name, city) VALUES (:id, :code, :name, :city)`

func (r sqlAirports) Insert(ctx context.Context, a models.Airport) error {
	_, err := r.db.NamedExecContext(ctx, insertAirport, a)
	return mapErr("insert airport", err)
}

func (r sqlAirports) InsertMany(ctx context.Context, as []models.Airport) error {
	return insertBatches(ctx, r.db, insertAirport, as, "insert airports")
}

func (r sqlAirports) FindByCode(ctx context.Context, code string) (models.Airport, error) {
	var a models.Airport
	err := r.db.GetContext(ctx, &a, `SELECT id, code, name, city FROM airports WHERE code = ? LIMIT 1`, code)
	return a, mapErr("find airport", err)
}

func (r sqlAirports) List(ctx context.Context, limit int) ([]models.Airport, error) {
	out := []models.Airport{}
	err := r.db.SelectContext(ctx, &out, `SELECT id, code, name, city FROM airports ORDER BY seq ASC LIMIT ?`, rowLimit(limit))
	return out, mapErr("list airports", err)
}

func (r sqlAirports) DeleteByCode(ctx context.Context, code string) (int64, error) {
	n, err := affected(r.db.ExecContext(ctx, `DELETE FROM airports WHERE code = ? LIMIT 1`, code))
	return n, mapErr("delete airport", err)
}

func (r sqlAirports) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM airports`)
	return n, mapErr("count airports", err)
}

func (r sqlAirports) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM airports`)
	return mapErr("wipe airports", err)
}

// --- flights ---

type sqlFlights struct{ db *sqlx.DB }

const (
	flightColumns = `id, flight_id, source_code, destination_code, departure_time, total_seats, booked_seats`
	insertFlight  = `INSERT INTO flights (` + flightColumns + `)
		VALUES (:id, :flight_id, :source_code, :destination_code, :departure_time, :total_seats, :booked_seats)`
)

func (r sqlFlights) Insert(ctx context.Context, f models.FlightRoute) error {
	_, err := r.db.NamedExecContext(ctx, insertFlight, f)
	return mapErr("insert flight", err)
}

func (r sqlFlights) InsertMany(ctx context.Context, fs []models.FlightRoute) error {
	return insertBatches(ctx, r.db, insertFlight, fs, "insert flights")
}

func (r sqlFlights) FindByID(ctx context.Context, flightID string) (models.FlightRoute, error) {
	var f models.FlightRoute
	err := r.db.GetContext(ctx, &f, `SELECT `+flightColumns+` FROM flights WHERE flight_id = ? LIMIT 1`, flightID)
	return f, mapErr("find flight", err)
}

func (r sqlFlights) List(ctx context.Context, limit int) ([]models.FlightRoute, error) {
	out := []models.FlightRoute{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+flightColumns+` FROM flights ORDER BY seq ASC LIMIT ?`, rowLimit(limit))
	return out, mapErr("list flights", err)
}

func (r sqlFlights) DeleteByID(ctx context.Context, flightID string) (int64, error) {
	n, err := affected(r.db.ExecContext(ctx, `DELETE FROM flights WHERE flight_id = ? LIMIT 1`, flightID))
	return n, mapErr("delete flight", err)
}

func (r sqlFlights) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM flights`)
	return n, mapErr("count flights", err)
}

func (r sqlFlights) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM flights`)
	return mapErr("wipe flights", err)
}

func (r sqlFlights) IncrementBooked(ctx context.Context, flightID string, delta int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE flights SET booked_seats = booked_seats + ? WHERE flight_id = ?`, delta, flightID)
	return mapErr("increment booked_seats", err)
}

func (r sqlFlights) SetBooked(ctx context.Context, flightID string, booked int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE flights SET booked_seats = ? WHERE flight_id = ?`, booked, flightID)
	return mapErr("set booked_seats", err)
}

// --- passengers ---

type sqlPassengers struct{ db *sqlx.DB }

const (
	passengerColumns = `ticket_id, name, passport, flight_id, seat_number, status`
	insertPassenger  = `INSERT INTO passengers (` + passengerColumns + `)
		VALUES (:ticket_id, :name, :passport, :flight_id, :seat_number, :status)`
)

func (r sqlPassengers) Insert(ctx context.Context, p models.Passenger) error {
	_, err := r.db.NamedExecContext(ctx, insertPassenger, p)
	return mapErr("insert passenger", err)
}

func (r sqlPassengers) InsertMany(ctx context.Context, ps []models.Passenger) error {
	return insertBatches(ctx, r.db, insertPassenger, ps, "insert passengers")
}

func (r sqlPassengers) FindByTicket(ctx context.Context, ticketID string) (models.Passenger, error) {
	var p models.Passenger
	err := r.db.GetContext(ctx, &p, `SELECT `+passengerColumns+` FROM passengers WHERE ticket_id = ? LIMIT 1`, ticketID)
	return p, mapErr("find passenger", err)
}

func (r sqlPassengers) List(ctx context.Context, limit int) ([]models.Passenger, error) {
	out := []models.Passenger{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+passengerColumns+` FROM passengers ORDER BY seq ASC LIMIT ?`, rowLimit(limit))
	return out, mapErr("list passengers", err)
}

func (r sqlPassengers) SetStatus(ctx context.Context, ticketID string, status models.PassengerStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE passengers SET status = ? WHERE ticket_id = ?`, string(status), ticketID)
	return mapErr("set passenger status", err)
}

func (r sqlPassengers) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM passengers`)
	return mapErr("wipe passengers", err)
}

// --- boarding queue ---

type sqlBoarding struct{ db *sqlx.DB }

const (
	queueColumns = `seq, ticket_id, passenger_name, flight_id, position`
	insertQueue  = `INSERT INTO boarding_queue (ticket_id, passenger_name, flight_id, position)
		VALUES (:ticket_id, :passenger_name, :flight_id, :position)`
)

func (r sqlBoarding) Insert(ctx context.Context, item models.BoardingQueueItem) error {
	_, err := r.db.NamedExecContext(ctx, insertQueue, item)
	return mapErr("enqueue", err)
}

func (r sqlBoarding) InsertMany(ctx context.Context, items []models.BoardingQueueItem) error {
	return insertBatches(ctx, r.db, insertQueue, items, "insert boarding queue")
}

func (r sqlBoarding) ListByFlight(ctx context.Context, flightID string, limit int) ([]models.BoardingQueueItem, error) {
	out := []models.BoardingQueueItem{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+queueColumns+` FROM boarding_queue
		WHERE flight_id = ? ORDER BY position ASC, seq ASC LIMIT ?`, flightID, rowLimit(limit))
	return out, mapErr("list boarding queue", err)
}

func (r sqlBoarding) List(ctx context.Context, limit int) ([]models.BoardingQueueItem, error) {
	out := []models.BoardingQueueItem{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+queueColumns+` FROM boarding_queue ORDER BY seq ASC LIMIT ?`, rowLimit(limit))
	return out, mapErr("list boarding queue", err)
}

func (r sqlBoarding) CountByFlight(ctx context.Context, flightID string) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM boarding_queue WHERE flight_id = ?`, flightID)
	return n, mapErr("count boarding queue", err)
}

func (r sqlBoarding) Front(ctx context.Context, flightID string) (models.BoardingQueueItem, error) {
	var item models.BoardingQueueItem
	err := r.db.GetContext(ctx, &item, `SELECT `+queueColumns+` FROM boarding_queue
		WHERE flight_id = ? ORDER BY position ASC, seq ASC LIMIT 1`, flightID)
	return item, mapErr("queue front", err)
}

func (r sqlBoarding) Delete(ctx context.Context, item models.BoardingQueueItem) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM boarding_queue WHERE seq = ?`, item.Seq)
	return mapErr("dequeue", err)
}

func (r sqlBoarding) SetPosition(ctx context.Context, item models.BoardingQueueItem, position int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE boarding_queue SET position = ? WHERE seq = ?`, position, item.Seq)
	return mapErr("renumber boarding queue", err)
}

func (r sqlBoarding) DeleteByTicket(ctx context.Context, ticketID string) (int64, error) {
	n, err := affected(r.db.ExecContext(ctx, `DELETE FROM boarding_queue WHERE ticket_id = ?`, ticketID))
	return n, mapErr("remove ticket from boarding queue", err)
}

func (r sqlBoarding) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM boarding_queue`)
	return mapErr("wipe boarding queue", err)
}

// --- cancellations ---

type sqlCancellations struct{ db *sqlx.DB }

const (
	cancellationColumns = `seq, ticket_id, passenger_name, flight_id, ts`
	insertCancellation  = `INSERT INTO cancellations (ticket_id, passenger_name, flight_id, ts)
		VALUES (:ticket_id, :passenger_name, :flight_id, :ts)`
)

func (r sqlCancellations) Insert(ctx context.Context, item models.CancellationItem) error {
	_, err := r.db.NamedExecContext(ctx, insertCancellation, item)
	return mapErr("insert cancellation", err)
}

func (r sqlCancellations) InsertMany(ctx context.Context, items []models.CancellationItem) error {
	return insertBatches(ctx, r.db, insertCancellation, items, "insert cancellations")
}

func (r sqlCancellations) Latest(ctx context.Context) (models.CancellationItem, error) {
	var item models.CancellationItem
	err := r.db.GetContext(ctx, &item, `SELECT `+cancellationColumns+` FROM cancellations ORDER BY ts DESC, seq DESC LIMIT 1`)
	return item, mapErr("latest cancellation", err)
}

func (r sqlCancellations) ListRecent(ctx context.Context, limit int) ([]models.CancellationItem, error) {
	out := []models.CancellationItem{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+cancellationColumns+` FROM cancellations ORDER BY ts DESC, seq DESC LIMIT ?`, rowLimit(limit))
	return out, mapErr("list cancellations", err)
}

func (r sqlCancellations) Delete(ctx context.Context, item models.CancellationItem) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cancellations WHERE seq = ?`, item.Seq)
	return mapErr("delete cancellation", err)
}

func (r sqlCancellations) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cancellations`)
	return mapErr("wipe cancellations", err)
}
