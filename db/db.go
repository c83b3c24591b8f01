package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"

	"github.com/nvoss/quill/domain"
)

// CollectionStore is the durable key-value slot holding the serialized
// note collection. Load returns (nil, nil) when no prior state exists.
type CollectionStore interface {
	Load() (*domain.Collection, error)
	Save(c *domain.Collection) error
}

// SlotName keys the single collection payload.
const SlotName = "notes"

const (
	sqlCreateCollectionsTable = `CREATE TABLE IF NOT EXISTS collections(
                        name varchar(100) NOT NULL PRIMARY KEY,
                        payload text NOT NULL,
                        saved_at timestamp default current_timestamp
                        )`
	sqlUpsertCollection = `INSERT INTO collections(name, payload, saved_at) VALUES (?, ?, ?)
                        ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`
	sqlSelectCollection = `SELECT payload FROM collections WHERE name = ?`
)

// DB stores the collection payload in a local sqlite database.
type DB struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the sqlite database at path.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Single local writer, keep the pool small
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	var journalMode string
	if err := sqlDB.QueryRow("PRAGMA journal_mode=WAL").Scan(&journalMode); err != nil {
		log.Printf("Warning: Failed to enable WAL mode: %v", err)
	}
	sqlDB.Exec("PRAGMA synchronous = NORMAL")
	sqlDB.Exec("PRAGMA busy_timeout = 5000")

	d := &DB{db: sqlDB}
	if err := d.createSchema(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// Load reads and deserializes the collection payload. A missing slot is
// not an error; corrupt JSON is.
func (d *DB) Load() (*domain.Collection, error) {
	var payload string
	row := d.db.QueryRow(sqlSelectCollection, SlotName)
	err := row.Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var col domain.Collection
	if err := json.Unmarshal([]byte(payload), &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// Save serializes the collection and upserts it under the fixed slot.
func (d *DB) Save(c *domain.Collection) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return d.wrapTransaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(sqlUpsertCollection, SlotName, string(payload), time.Now())
		return err
	})
}

func (d *DB) createSchema() error {
	return d.wrapTransaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(sqlCreateCollectionsTable)
		return err
	})
}

// wrapTransaction runs the given function within a transaction,
// retrying while sqlite reports SQLITE_BUSY.
func (d *DB) wrapTransaction(f func(tx *sql.Tx) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("error starting transaction: %s", err)
		return err
	}
	for {
		err = f(tx)
		if err != nil {
			serr, ok := err.(*sqlite.Error)
			if ok && serr.Code() == sqlitelib.SQLITE_BUSY {
				continue
			}
			log.Printf("error in transaction: %s", err)
			return err
		}
		err = tx.Commit()
		if err != nil {
			log.Printf("error committing transaction: %s", err)
			return err
		}
		break
	}
	return nil
}
