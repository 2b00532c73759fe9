package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestFetch_RowsWithColumnOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"nome", "login", "senha"}).
		AddRow("Ana", "ana1", "pw").
		AddRow("Bob", "bob2", "secret")

	mock.ExpectQuery("SELECT nome, login, senha FROM usuario").
		WillReturnRows(rows)

	got, err := Fetch(ctx, db, "SELECT nome, login, senha FROM usuario")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}

	wantColumns := []string{"nome", "login", "senha"}
	for i, col := range got[0].Columns {
		if col != wantColumns[i] {
			t.Errorf("column %d: expected %q, got %q", i, wantColumns[i], col)
		}
	}

	if got[0].Get("nome") != "Ana" || got[0].Get("login") != "ana1" || got[0].Get("senha") != "pw" {
		t.Errorf("unexpected first row values: %v", got[0].Values)
	}
	if got[1].Get("login") != "bob2" {
		t.Errorf("expected second row login bob2, got %q", got[1].Get("login"))
	}
}

func TestFetch_NullBecomesEmptyString(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"nome", "login"}).
		AddRow(nil, "ana1")

	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	got, err := Fetch(context.Background(), db, "SELECT nome, login FROM usuario")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Get("nome") != "" {
		t.Errorf("expected empty string for NULL column, got %q", got[0].Get("nome"))
	}
}

func TestFetch_EmptyResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"nome", "login", "senha"}))

	got, err := Fetch(context.Background(), db, "SELECT nome, login, senha FROM usuario")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no rows, got %d", len(got))
	}
}

func TestFetch_QueryErrorWrappedAsDBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	cause := errors.New("connection refused")
	mock.ExpectQuery("SELECT").WillReturnError(cause)

	_, err = Fetch(context.Background(), db, "SELECT nome FROM usuario")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var dbErr *DBError
	if !errors.As(err, &dbErr) {
		t.Fatalf("expected *DBError, got %T", err)
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to remain reachable via errors.Is")
	}
}

func TestExec_RowsAffected(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM usuario").
		WithArgs("ana1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	outcome, err := Exec(context.Background(), db, "DELETE FROM usuario WHERE login = $1", "ana1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.RowsAffected != 1 {
		t.Errorf("expected 1 affected row, got %d", outcome.RowsAffected)
	}
}

func TestExec_ZeroRowsAffectedIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE usuario").
		WillReturnResult(sqlmock.NewResult(0, 0))

	outcome, err := Exec(context.Background(), db, "UPDATE usuario SET nome = $1", "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.RowsAffected != 0 {
		t.Errorf("expected 0 affected rows, got %d", outcome.RowsAffected)
	}
}

func TestExec_StatementErrorWrappedAsDBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO usuario").
		WillReturnError(errors.New("syntax error"))

	_, err = Exec(context.Background(), db, "INSERT INTO usuario VALUES ($1)", "x")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var dbErr *DBError
	if !errors.As(err, &dbErr) {
		t.Fatalf("expected *DBError, got %T", err)
	}
	if dbErr.Op != "exec" {
		t.Errorf("expected op exec, got %q", dbErr.Op)
	}
}
