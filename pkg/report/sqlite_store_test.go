// SPDX-License-Identifier: Apache-2.0

package report

import (
	"context"
	"database/sql"
	stderrors "errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jllopis/parecho/pkg/errors"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestSQLiteStoreSaveGet(t *testing.T) {
	store := newTestStore(t)
	r := Build(errors.New(errors.CodeTimeout, "late again", nil).
		WithAttribute("stage", "planner"))

	if err := store.Save(context.Background(), r); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Get(context.Background(), r.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Code != "TIMEOUT" || got.Attributes["stage"] != "planner" {
		t.Errorf("unexpected report: %+v", got)
	}
}

func TestSQLiteStoreGetMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Get(context.Background(), "no-such-id")
	if !stderrors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestSQLiteStoreList(t *testing.T) {
	store := newTestStore(t)
	for _, code := range []errors.Code{errors.CodeTimeout, errors.CodeTimeout, errors.CodeNotFound} {
		r := Build(errors.New(code, "x", nil))
		if err := store.Save(context.Background(), r); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	timeouts, err := store.List(context.Background(), "TIMEOUT", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(timeouts) != 2 {
		t.Errorf("expected 2 timeout reports, got %d", len(timeouts))
	}
	all, err := store.List(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 reports, got %d", len(all))
	}
}

func TestSQLiteStorePurge(t *testing.T) {
	store := newTestStore(t)
	r := Build(errors.New(errors.CodeInternal, "old", nil))
	r.CreatedAt = time.Now().UTC().Add(-48 * time.Hour)
	if err := store.Save(context.Background(), r); err != nil {
		t.Fatalf("save: %v", err)
	}
	n, err := store.Purge(context.Background(), time.Now().UTC().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 purged report, got %d", n)
	}
}

func TestSQLiteStoreSaveInvalid(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(context.Background(), &Report{}); err == nil {
		t.Errorf("expected error for report without id")
	}
}
