package storage

import (
	"database/sql"
	"fmt"
	"iter"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type Storage interface {
	StoreRun(Run) (int64, error)
	StoreRecords(runID int64, entries iter.Seq2[int, Entry]) error
	GetRecords(runID int64, addresses []int) (map[int]Entry, error)
	GetRun(id int64) (Run, bool, error)
}

// Run is one invocation of the generator.
type Run struct {
	ID            int64  `db:"id"`
	Dir           string `db:"dir"`
	PointsPerFile int    `db:"pointsPerFile"`
	Format        string `db:"format"`
	Files         int    `db:"files"`
	Points        int    `db:"points"`
}

// Entry is what was written for a single address.
type Entry struct {
	A     int32 `db:"a"`
	B     int32 `db:"b"`
	Chunk int   `db:"chunk"`
}

type SQLiteClient struct {
	db *sqlx.DB
}

func NewSQLiteClient(dataSourceName string) (*SQLiteClient, error) {
	db, err := sqlx.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("error connecting to SQLite: %w", err)
	}

	err = createTables(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	return &SQLiteClient{db: db}, nil
}

// createTables creates the required tables if they don't exist
func createTables(db *sqlx.DB) error {
	createRunsTable := `
    CREATE TABLE IF NOT EXISTS runs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        dir TEXT NOT NULL,
        pointsPerFile INTEGER NOT NULL,
        format TEXT NOT NULL,
        files INTEGER NOT NULL,
        points INTEGER NOT NULL
    );
    `

	createRecordsTable := `
    CREATE TABLE IF NOT EXISTS records (
        runID INTEGER NOT NULL,
        address INTEGER NOT NULL,
        a INTEGER NOT NULL,
        b INTEGER NOT NULL,
        chunk INTEGER NOT NULL,
        PRIMARY KEY (runID, address)
    );
    `

	_, err := db.Exec(createRunsTable)
	if err != nil {
		return fmt.Errorf("error creating runs table: %w", err)
	}

	_, err = db.Exec(createRecordsTable)
	if err != nil {
		return fmt.Errorf("error creating records table: %w", err)
	}

	return nil
}

func (db *SQLiteClient) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

func (db *SQLiteClient) StoreRun(run Run) (int64, error) {
	res, err := db.db.NamedExec(`INSERT INTO runs (dir, pointsPerFile, format, files, points)
        VALUES (:dir, :pointsPerFile, :format, :files, :points)`, run)
	if err != nil {
		return 0, fmt.Errorf("error inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error getting run id: %w", err)
	}
	return id, nil
}

func (db *SQLiteClient) StoreRecords(runID int64, entries iter.Seq2[int, Entry]) error {
	tx, err := db.db.Beginx()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT OR REPLACE INTO records (runID, address, a, b, chunk) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close()

	for address, entry := range entries {
		if _, err := stmt.Exec(runID, address, entry.A, entry.B, entry.Chunk); err != nil {
			return fmt.Errorf("error executing statement: %w", err)
		}
	}

	return tx.Commit()
}

func (db *SQLiteClient) GetRecords(runID int64, addresses []int) (map[int]Entry, error) {
	entries := make(map[int]Entry, len(addresses))

	for _, address := range addresses {
		var entry Entry
		err := db.db.Get(&entry, "SELECT a, b, chunk FROM records WHERE runID = ? AND address = ?", runID, address)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error querying database: %w", err)
		}
		entries[address] = entry
	}

	return entries, nil
}

// GetRun retrieves a run by its id
func (db *SQLiteClient) GetRun(id int64) (Run, bool, error) {
	var run Run
	err := db.db.Get(&run, "SELECT id, dir, pointsPerFile, format, files, points FROM runs WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return Run{}, false, nil
		}
		return Run{}, false, fmt.Errorf("failed to retrieve run: %w", err)
	}

	return run, true, nil
}
