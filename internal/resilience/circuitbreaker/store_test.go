package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sony/gobreaker"
)

func TestStoreBreaker_QueryContext_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = db.Close() }()

	sb := NewStoreBreaker(db)

	mock.ExpectQuery("SELECT (.+) FROM charts").
		WillReturnRows(sqlmock.NewRows([]string{"fingerprint"}).AddRow("abc"))

	rows, err := sb.QueryContext(context.Background(), "SELECT fingerprint FROM charts")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		t.Fatal("expected at least one row")
	}
	var fp string
	if err := rows.Scan(&fp); err != nil {
		t.Fatalf("failed to scan row: %v", err)
	}
	if fp != "abc" {
		t.Errorf("expected fingerprint=abc, got %s", fp)
	}
	if sb.State() != gobreaker.StateClosed {
		t.Errorf("expected state to remain Closed after success, got %s", sb.State())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreBreaker_ExecContext_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = db.Close() }()

	sb := NewStoreBreaker(db)
	mock.ExpectExec("DELETE FROM charts").WillReturnResult(sqlmock.NewResult(0, 4))

	res, err := sb.ExecContext(context.Background(), "DELETE FROM charts WHERE created_at < $1", time.Now())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	n, _ := res.RowsAffected()
	if n != 4 {
		t.Errorf("expected 4 rows affected, got %d", n)
	}
}

func TestStoreBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = db.Close() }()

	cfg := StoreConfig()
	cfg.Timeout = 50 * time.Millisecond
	sb := NewStoreBreakerWithConfig(db, cfg)
	ctx := context.Background()

	expectedErr := errors.New("connection refused")
	for i := 0; i < 5; i++ {
		mock.ExpectExec("INSERT INTO charts").WillReturnError(expectedErr)
	}
	for i := 0; i < 5; i++ {
		if _, err := sb.ExecContext(ctx, "INSERT INTO charts VALUES ($1)", i); err == nil {
			t.Errorf("attempt %d: expected error, got nil", i+1)
		}
	}

	if !sb.IsOpen() {
		t.Fatalf("expected circuit to be open, state: %s", sb.State())
	}

	_, err = sb.ExecContext(ctx, "INSERT INTO charts VALUES ($1)", 6)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}

	time.Sleep(100 * time.Millisecond)
	mock.ExpectExec("INSERT INTO charts").WillReturnResult(sqlmock.NewResult(1, 1))
	if _, err := sb.ExecContext(ctx, "INSERT INTO charts VALUES ($1)", 7); err != nil {
		t.Fatalf("expected half-open probe to succeed, got %v", err)
	}
}

func TestStoreBreaker_QueryRowContext(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = db.Close() }()

	sb := NewStoreBreaker(db)
	mock.ExpectQuery("SELECT payload FROM charts WHERE fingerprint = ?").
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`{}`)))

	var payload []byte
	if err := sb.QueryRowContext(context.Background(), "SELECT payload FROM charts WHERE fingerprint = ?", "k").Scan(&payload); err != nil {
		t.Fatalf("failed to scan row: %v", err)
	}
	if string(payload) != "{}" {
		t.Errorf("unexpected payload %q", payload)
	}
	if sb.DB() != db {
		t.Error("expected DB() to return underlying connection")
	}
}

func TestStoreConfig(t *testing.T) {
	cfg := StoreConfig()
	if cfg.Name != "chart-store" {
		t.Errorf("expected name 'chart-store', got %q", cfg.Name)
	}
	if cfg.FailureThreshold != 1.0 || cfg.MinRequests != 5 {
		t.Errorf("unexpected store config: %+v", cfg)
	}
}
