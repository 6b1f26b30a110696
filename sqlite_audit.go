package sisrejection

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteAuditLogger mirrors every emitted snapshot into a SQLite database
// at <out>_trace.db, grounded on the teacher's sqlite_logger.go: the same
// OpenSQLiteDB helper, the same create-table/delete-from pair run once
// per run, one table ("snapshots") instead of six since there is only
// one kind of record to log here. This is an additive audit trail, never
// a substitute for the required CSV/runtime outputs (SPEC_FULL section
// 4.12). Init returns its error for the caller to log; WriteSnapshots
// logs its own errors rather than returning them, so a caller can
// fire-and-forget it without risking the required outputs.
type SQLiteAuditLogger struct {
	path  string
	runID string
}

// NewSQLiteAuditLogger derives the database path from the trace output
// path by replacing a trailing ".txt"/".csv" suffix, or appending, with
// "_trace.db".
func NewSQLiteAuditLogger(outpath, runID string) *SQLiteAuditLogger {
	path := outpath
	for _, suffix := range []string{".txt", ".csv"} {
		if strings.HasSuffix(path, suffix) {
			path = strings.TrimSuffix(path, suffix)
			break
		}
	}
	return &SQLiteAuditLogger{path: path + "_trace.db", runID: runID}
}

// OpenSQLiteDB opens (creating if necessary) the SQLite database at path,
// matching the teacher's helper of the same name (sqlite_logger.go).
func OpenSQLiteDB(path string) (*sql.DB, error) {
	return sql.Open("sqlite3", path)
}

// Init creates the snapshots table, matching the teacher's
// create-table/delete-from pattern.
func (l *SQLiteAuditLogger) Init() error {
	db, err := OpenSQLiteDB(l.path)
	if err != nil {
		return err
	}
	defer db.Close()
	const stmt = `
	create table if not exists snapshots (
		run_id text,
		step_index integer,
		current_time real,
		infected_count integer,
		susceptible_count integer
	);
	delete from snapshots where run_id = ?;
	`
	if _, err := db.Exec(stmt, l.runID); err != nil {
		return fmt.Errorf("%q: %s", err, stmt)
	}
	return nil
}

// WriteSnapshots mirrors summary into the snapshots table within a
// single transaction. Failures are logged, not returned -- the audit
// sink must never affect the process exit code (SPEC_FULL section 4.12).
func (l *SQLiteAuditLogger) WriteSnapshots(summary []Snapshot) {
	db, err := OpenSQLiteDB(l.path)
	if err != nil {
		log.Printf("audit sink: %v", err)
		return
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		log.Printf("audit sink: %v", err)
		return
	}
	const insert = "insert into snapshots(run_id, step_index, current_time, infected_count, susceptible_count) values(?, ?, ?, ?, ?)"
	stmt, err := tx.Prepare(insert)
	if err != nil {
		log.Printf("audit sink: %v", err)
		return
	}
	defer stmt.Close()
	for i, snap := range summary {
		if _, err := stmt.Exec(l.runID, i, snap.CurrentTime, snap.Infected, snap.Susceptible); err != nil {
			log.Printf("audit sink: %v", err)
			tx.Rollback()
			return
		}
	}
	if err := tx.Commit(); err != nil {
		log.Printf("audit sink: %v", err)
	}
}
