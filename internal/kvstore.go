package internal

import (
	"database/sql"
)

// KVStore is the durable key-value store backing all persisted state.
// Values are JSON documents under namespaced keys (e.g. "aicad_user").
type KVStore struct {
	db *sql.DB
}

// NewKVStore creates a KVStore on top of an open database.
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// Get returns the value for key. The second result is false when the key
// is absent.
func (s *KVStore) Get(key string) (string, bool, error) {
	var value sql.NullString
	err := s.db.QueryRow("SELECT value FROM aicadKV WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageError{Path: key, Op: "get", Err: err}
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// Set writes value under key, replacing any prior value.
func (s *KVStore) Set(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO aicadKV (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return &StorageError{Path: key, Op: "set", Err: err}
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *KVStore) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM aicadKV WHERE key = ?", key); err != nil {
		return &StorageError{Path: key, Op: "delete", Err: err}
	}
	return nil
}

// List returns all pairs whose key matches the given LIKE pattern,
// ordered by key.
func (s *KVStore) List(pattern string) ([]KeyValuePair, error) {
	rows, err := s.db.Query(
		"SELECT key, value FROM aicadKV WHERE key LIKE ? AND value IS NOT NULL ORDER BY key",
		pattern,
	)
	if err != nil {
		return nil, &StorageError{Path: pattern, Op: "get", Err: err}
	}
	defer rows.Close()

	var pairs []KeyValuePair
	for rows.Next() {
		var pair KeyValuePair
		var value sql.NullString
		if err := rows.Scan(&pair.Key, &value); err != nil {
			return nil, &StorageError{Path: pattern, Op: "get", Err: err}
		}
		if value.Valid {
			pair.Value = value.String
			pairs = append(pairs, pair)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, &StorageError{Path: pattern, Op: "get", Err: err}
	}

	return pairs, nil
}

// KeyValuePair represents a key-value pair from the store
type KeyValuePair struct {
	Key   string
	Value string
}
