package mockapi

import (
	"sync"

	"github.com/hashicorp/go-memdb"
)

// table names of the resource database
const (
	tableUsers      = "users"
	tableSessions   = "sessions"
	tableCharacters = "characters"
	tableItems      = "items"
	tableSpells     = "spells"
	tableMonsters   = "monsters"
	tableNPCs       = "npcs"
	tableLocations  = "locations"
	tableQuests     = "quests"
	tableStory      = "story"
)

// User represents a registered account of the stub API
type User struct {
	Username     string
	Email        string
	PasswordHash []byte
	Role         string
}

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tableUsers: {
			Name: tableUsers,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Username"},
				},
				"email": {
					Name:    "email",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Email"},
				},
			},
		},
		tableSessions: {
			Name: tableSessions,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Token"},
				},
				"expires": {
					Name:    "expires",
					Unique:  false,
					Indexer: &memdb.IntFieldIndex{Field: "Expires"},
				},
			},
		},
		tableCharacters: resourceTable(tableCharacters),
		tableItems:      resourceTable(tableItems),
		tableSpells:     resourceTable(tableSpells),
		tableMonsters:   resourceTable(tableMonsters),
		tableNPCs:       resourceTable(tableNPCs),
		tableLocations:  resourceTable(tableLocations),
		tableQuests:     resourceTable(tableQuests),
		tableStory:      resourceTable(tableStory),
	},
}

// resourceTable builds the uniform schema of an ID-indexed resource table
func resourceTable(name string) *memdb.TableSchema {
	return &memdb.TableSchema{
		Name: name,
		Indexes: map[string]*memdb.IndexSchema{
			"id": {
				Name:    "id",
				Unique:  true,
				Indexer: &memdb.IntFieldIndex{Field: "ID"},
			},
		},
	}
}

// Store holds the stub API's state in an in-memory database
type Store struct {
	db *memdb.MemDB

	mu      sync.Mutex
	nextIDs map[string]int
}

// NewStore creates a new empty resource store
func NewStore() (*Store, error) {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return nil, err
	}
	return &Store{
		db:      db,
		nextIDs: make(map[string]int),
	}, nil
}

// NextID allocates the next record ID of the given table
func (store *Store) NextID(table string) int {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.nextIDs[table]++
	return store.nextIDs[table]
}

// Put inserts or replaces a record
func (store *Store) Put(table string, obj any) error {
	txn := store.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert(table, obj); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// DeleteByID deletes a record by its ID and reports whether one existed
func (store *Store) DeleteByID(table string, id int) (bool, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()
	n, err := txn.DeleteAll(table, "id", id)
	if err != nil {
		return false, err
	}
	txn.Commit()
	return n > 0, nil
}

// Get retrieves a record by its ID.
// The result is nil (without an error) if no record exists.
func Get[T any](store *Store, table string, id int) (T, error) {
	var zero T
	txn := store.db.Txn(false)
	obj, err := txn.First(table, "id", id)
	if err != nil || obj == nil {
		return zero, err
	}
	return obj.(T), nil
}

// List retrieves every record of a table in ID order
func List[T any](store *Store, table string) ([]T, error) {
	txn := store.db.Txn(false)
	it, err := txn.Get(table, "id")
	if err != nil {
		return nil, err
	}
	records := []T{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		records = append(records, obj.(T))
	}
	return records, nil
}
