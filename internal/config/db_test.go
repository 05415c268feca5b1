package config

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPingDBWithoutConnection(t *testing.T) {
	CloseDB()
	if CurrentDB() != nil {
		t.Fatalf("expected no connection")
	}
	if _, err := PingDB(context.Background()); !errors.Is(err, ErrNoDatabase) {
		t.Fatalf("expected ErrNoDatabase, got %v", err)
	}
}

func TestPingDBReturnsSharedHandle(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	mock.ExpectPing()
	mock.ExpectClose()

	dbMu.Lock()
	DB = db
	dbMu.Unlock()

	// readers race with CloseDB; run with -race to check the locking
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = CurrentDB()
		}()
	}

	got, err := PingDB(context.Background())
	if err != nil {
		t.Fatalf("ping: %v", err)
	}
	if got != db {
		t.Fatalf("expected the shared handle back")
	}

	CloseDB()
	wg.Wait()
	if CurrentDB() != nil {
		t.Fatalf("expected handle cleared after CloseDB")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
