package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReadinessCheck(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	check := ReadinessCheck(conn, time.Second)

	mock.ExpectPing()
	if err := check(context.Background()); err != nil {
		t.Fatalf("healthy ping: %v", err)
	}

	down := errors.New("connection refused")
	mock.ExpectPing().WillReturnError(down)
	if err := check(context.Background()); !errors.Is(err, down) {
		t.Fatalf("err = %v, want wrapped %v", err, down)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestConfigureAppliesPool(t *testing.T) {
	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	configure(conn, PoolConfig{MaxOpenConns: 7, MaxIdleConns: 3, ConnMaxLifetime: time.Minute})
	if got := conn.Stats().MaxOpenConnections; got != 7 {
		t.Fatalf("max open = %d, want 7", got)
	}
}

func TestDefaultPoolConfig(t *testing.T) {
	pool := DefaultPoolConfig()
	if pool.MaxOpenConns != 25 || pool.MaxIdleConns != 25 || pool.ConnMaxLifetime != 5*time.Minute {
		t.Fatalf("pool = %+v", pool)
	}
}
