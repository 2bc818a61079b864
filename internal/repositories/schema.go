package repositories

import (
	"context"
	"fmt"
	"log"

	intdb "airline/internal/db"

	"github.com/jmoiron/sqlx"
)

type tableDDL struct {
	name string
	ddl  string
}

// seq columns give every table a stable insertion order.
var schema = []tableDDL{
	{"airports", `CREATE TABLE IF NOT EXISTS airports (
		seq BIGINT AUTO_INCREMENT PRIMARY KEY,
		id CHAR(36) NOT NULL,
		code VARCHAR(16) NOT NULL,
		name VARCHAR(255) NOT NULL,
		city VARCHAR(255) NOT NULL,
		UNIQUE KEY uq_airports_code (code)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"flights", `CREATE TABLE IF NOT EXISTS flights (
		seq BIGINT AUTO_INCREMENT PRIMARY KEY,
		id CHAR(36) NOT NULL,
		flight_id VARCHAR(32) NOT NULL,
		source_code VARCHAR(16) NOT NULL,
		destination_code VARCHAR(16) NOT NULL,
		departure_time CHAR(5) NOT NULL,
		total_seats INT NOT NULL DEFAULT 180,
		booked_seats INT NOT NULL DEFAULT 0,
		UNIQUE KEY uq_flights_flight_id (flight_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"passengers", `CREATE TABLE IF NOT EXISTS passengers (
		seq BIGINT AUTO_INCREMENT PRIMARY KEY,
		ticket_id VARCHAR(32) NOT NULL,
		name VARCHAR(255) NOT NULL,
		passport VARCHAR(64) NOT NULL,
		flight_id VARCHAR(32) NOT NULL,
		seat_number VARCHAR(16) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		UNIQUE KEY uq_passengers_ticket_id (ticket_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"boarding_queue", `CREATE TABLE IF NOT EXISTS boarding_queue (
		seq BIGINT AUTO_INCREMENT PRIMARY KEY,
		ticket_id VARCHAR(32) NOT NULL,
		passenger_name VARCHAR(255) NOT NULL,
		flight_id VARCHAR(32) NOT NULL,
		position INT NOT NULL,
		KEY idx_boarding_queue_flight (flight_id, position)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"cancellations", `CREATE TABLE IF NOT EXISTS cancellations (
		seq BIGINT AUTO_INCREMENT PRIMARY KEY,
		ticket_id VARCHAR(32) NOT NULL,
		passenger_name VARCHAR(255) NOT NULL,
		flight_id VARCHAR(32) NOT NULL,
		ts VARCHAR(40) NOT NULL,
		KEY idx_cancellations_ts (ts)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
}

// EnsureSchema creates missing tables. Early deployments created flights
// without booked_seats; that column is added when absent.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, t := range schema {
		if intdb.HasTable(ctx, db, t.name) {
			continue
		}
		log.Printf("[SCHEMA] creating table %s", t.name)
		if _, err := db.ExecContext(ctx, t.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}

	if !intdb.HasColumn(ctx, db, "flights", "booked_seats") {
		log.Printf("[SCHEMA] adding flights.booked_seats")
		if _, err := db.ExecContext(ctx, `ALTER TABLE flights ADD COLUMN booked_seats INT NOT NULL DEFAULT 0`); err != nil {
			return fmt.Errorf("add flights.booked_seats: %w", err)
		}
	}
	return nil
}
