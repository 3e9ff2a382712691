package main

import (
	"database/sql"
	"sync"

	"github.com/ip812/helloadp/database"
	"github.com/ip812/helloadp/status"
)

type DBWrapper interface {
	DB() (*sql.DB, error)
}

// SwappableDB lets the server start before the database is reachable. Until
// Swap is called every caller gets status.ErrDatabaseNotReady.
type SwappableDB struct {
	mu    sync.RWMutex
	db    *sql.DB
	ready bool
}

func NewSwappableDB() *SwappableDB {
	return &SwappableDB{}
}

func (s *SwappableDB) Swap(db *sql.DB) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db = db
	s.ready = true
}

func (s *SwappableDB) DB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return nil, status.ErrDatabaseNotReady
	}
	return s.db, nil
}

func queriesFrom(db DBWrapper) (*database.Queries, error) {
	conn, err := db.DB()
	if err != nil {
		return nil, err
	}
	return database.New(conn), nil
}
