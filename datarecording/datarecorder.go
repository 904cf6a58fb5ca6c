// Package datarecording stores structured simulation output in SQLite
// databases, one table per entry type.
package datarecording

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// DataRecorder is a backend that can record and store data.
type DataRecorder interface {
	// CreateTable creates a new table that stores entries shaped like
	// sampleEntry.
	CreateTable(tableName string, sampleEntry any)

	// InsertData buffers one entry for a table that already exists.
	InsertData(tableName string, entry any)

	// ListTables returns the names of all the created tables.
	ListTables() []string

	// Flush writes all the buffered entries into the database.
	Flush()
}

// New creates a DataRecorder backed by a SQLite database at the given
// path. If path is empty a unique name is generated. The recorder flushes
// automatically at exit.
func New(path string) DataRecorder {
	r := &sqliteRecorder{
		dbName:    path,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}

	r.init()

	atexit.Register(func() { r.Flush() })

	return r
}

// NewWithDB creates a DataRecorder on an existing database connection.
func NewWithDB(db *sql.DB) DataRecorder {
	r := &sqliteRecorder{
		db:        db,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}

	atexit.Register(func() { r.Flush() })

	return r
}

type table struct {
	structType reflect.Type
	entries    []any
}

type sqliteRecorder struct {
	db *sql.DB

	dbName     string
	tables     map[string]*table
	batchSize  int
	entryCount int
}

func (r *sqliteRecorder) init() {
	if r.dbName == "" {
		r.dbName = "sdramsim_recording_" + xid.New().String()
	}

	filename := r.dbName + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Database created for recording: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	r.db = db
}

func (r *sqliteRecorder) CreateTable(tableName string, sampleEntry any) {
	mustHaveFlatFields(sampleEntry)

	fields := strings.Join(structs.Names(sampleEntry), ", \n\t")
	createTableSQL := `CREATE TABLE ` + tableName +
		` (` + "\n\t" + fields + "\n" + `);`
	r.mustExecute(createTableSQL)

	r.tables[tableName] = &table{
		structType: reflect.TypeOf(sampleEntry),
		entries:    []any{},
	}
}

func (r *sqliteRecorder) InsertData(tableName string, entry any) {
	t, exists := r.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	t.entries = append(t.entries, entry)

	r.entryCount++
	if r.entryCount >= r.batchSize {
		r.Flush()
	}
}

func (r *sqliteRecorder) ListTables() []string {
	tables := make([]string, 0, len(r.tables))
	for name := range r.tables {
		tables = append(tables, name)
	}

	return tables
}

func (r *sqliteRecorder) Flush() {
	if r.entryCount == 0 {
		return
	}

	r.mustExecute("BEGIN TRANSACTION")
	defer r.mustExecute("COMMIT TRANSACTION")

	for tableName, t := range r.tables {
		if len(t.entries) == 0 {
			continue
		}

		stmt := r.prepareInsert(tableName, t.entries[0])

		for _, entry := range t.entries {
			v := []any{}

			value := reflect.ValueOf(entry)
			for i := 0; i < value.NumField(); i++ {
				v = append(v, value.Field(i).Interface())
			}

			_, err := stmt.Exec(v...)
			if err != nil {
				panic(err)
			}
		}

		t.entries = nil

		stmt.Close()
	}

	r.entryCount = 0
}

func (r *sqliteRecorder) prepareInsert(tableName string, entry any) *sql.Stmt {
	placeholders := structs.Names(entry)
	for i := range placeholders {
		placeholders[i] = "?"
	}

	sqlStr := "INSERT INTO " + tableName +
		" VALUES (" + strings.Join(placeholders, ", ") + ")"

	stmt, err := r.db.Prepare(sqlStr)
	if err != nil {
		panic(err)
	}

	return stmt
}

func (r *sqliteRecorder) mustExecute(query string) sql.Result {
	res, err := r.db.Exec(query)
	if err != nil {
		fmt.Printf("Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}

// mustHaveFlatFields rejects entry types with fields that cannot be stored
// in a database column.
func mustHaveFlatFields(entry any) {
	types := reflect.TypeOf(entry)

	for i := 0; i < types.NumField(); i++ {
		switch types.Field(i).Type.Kind() {
		case reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16,
			reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16,
			reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64,
			reflect.String:
			// storable
		default:
			panic(fmt.Sprintf(
				"field %s of entry type %s cannot be stored",
				types.Field(i).Name, types.Name()))
		}
	}
}
