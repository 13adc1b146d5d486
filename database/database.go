package database

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/fulldump/proteomedb/collection"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

type Config struct {
	Flatfile string
	Schema   *collection.Schema // nil means collection.DefaultSchema()
	Logger   *log.Logger        // load progress, nil means log.Default()
}

// Database answers accession lookups over a loaded flatfile. The loaded
// collection is read-only, accessors are safe for concurrent use.
type Database struct {
	config      *Config
	status      string
	statusMutex *sync.RWMutex
	loadID      string
	collection  atomic.Pointer[collection.Collection]
	exit        chan struct{}
	stopOnce    *sync.Once
}

func NewDatabase(config *Config) *Database {
	return &Database{
		config:      config,
		status:      StatusOpening,
		statusMutex: &sync.RWMutex{},
		exit:        make(chan struct{}),
		stopOnce:    &sync.Once{},
	}
}

// Open loads filename and returns a ready Database. No Database is returned
// when the file cannot be loaded.
func Open(filename string) (*Database, error) {

	db := NewDatabase(&Config{
		Flatfile: filename,
	})

	err := db.Load()
	if err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Database) GetStatus() string {
	db.statusMutex.RLock()
	defer db.statusMutex.RUnlock()
	return db.status
}

func (db *Database) setStatus(status string) {
	db.statusMutex.Lock()
	db.status = status
	db.statusMutex.Unlock()
}

// LoadID identifies the current load, it changes every time Load succeeds.
func (db *Database) LoadID() string {
	db.statusMutex.RLock()
	defer db.statusMutex.RUnlock()
	return db.loadID
}

func (db *Database) Load() error {

	logger := db.logger()
	logger.Printf("Loading flatfile %s...\n", db.config.Flatfile)

	t0 := time.Now()
	col, err := collection.OpenCollection(db.config.Flatfile, db.config.Schema)
	if err != nil {
		logger.Printf("ERROR: load flatfile '%s': %s\n", db.config.Flatfile, err.Error())
		db.setStatus(StatusClosing)
		return err
	}
	logger.Println(db.config.Flatfile, col.Len(), "proteins", col.Skipped, "skipped", time.Since(t0))

	db.collection.Store(col)

	db.statusMutex.Lock()
	db.loadID = uuid.New().String()
	select {
	case <-db.exit:
		// stopped while loading
	default:
		db.status = StatusOperating
	}
	db.statusMutex.Unlock()

	return nil
}

func (db *Database) logger() *log.Logger {
	if db.config.Logger == nil {
		return log.Default()
	}
	return db.config.Logger
}

func (db *Database) Start() error {

	go db.Load()

	<-db.exit

	return nil
}

func (db *Database) Stop() error {

	db.stopOnce.Do(func() {
		db.setStatus(StatusClosing)
		close(db.exit)
	})

	return nil
}

// Collection returns the loaded collection or nil while loading.
func (db *Database) Collection() *collection.Collection {
	return db.collection.Load()
}

func (db *Database) row(id string) (*collection.Row, bool) {
	col := db.collection.Load()
	if col == nil {
		return nil, false
	}
	return col.Get(id)
}

// field returns the raw value of the named field for the accession. ok is
// false when the accession or the field are unknown.
func (db *Database) field(id, name string) (string, bool) {
	row, ok := db.row(id)
	if !ok {
		return "", false
	}
	return row.Field(name)
}

// UniqueKeys returns the canonical accession of every protein, one per
// flatfile row and in file order. Iterate these instead of aliases to avoid
// visiting a protein more than once.
func (db *Database) UniqueKeys() []string {
	col := db.collection.Load()
	if col == nil {
		return []string{}
	}
	keys := make([]string, len(col.UniqueKeys))
	copy(keys, col.UniqueKeys)
	return keys
}

func (db *Database) Len() int {
	col := db.collection.Load()
	if col == nil {
		return 0
	}
	return col.Len()
}

// Skipped returns how many malformed rows were left out of the last load.
func (db *Database) Skipped() int {
	col := db.collection.Load()
	if col == nil {
		return 0
	}
	return col.Skipped
}

// Lookup returns a copy of every raw field of the accession.
func (db *Database) Lookup(id string) (map[string]string, bool) {
	row, ok := db.row(id)
	if !ok {
		return nil, false
	}
	fields := make(map[string]string, len(row.Fields))
	for k, v := range row.Fields {
		fields[k] = v
	}
	return fields, true
}

// Aliases returns every accession that resolves to the same protein as id,
// canonical first.
func (db *Database) Aliases(id string) ([]string, bool) {
	row, ok := db.row(id)
	if !ok {
		return nil, false
	}
	aliases := make([]string, len(row.Aliases))
	copy(aliases, row.Aliases)
	return aliases, true
}
