package analysis

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ingria/ingria-backend/internal/common"
	"github.com/ingria/ingria-backend/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+analysis_results\s*\(user_id,\s*ai_response,\s*file_name,\s*file_path\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(11))
	mock.ExpectQuery(q).
		WithArgs(int64(3), "a cat", "cat.jpg", "http://files/media/abc-cat.jpg").
		WillReturnRows(rows)

	id, err := repo.Create(context.Background(), &models.AnalysisRecord{
		UserID:     3,
		AIResponse: "a cat",
		FileName:   "cat.jpg",
		FilePath:   "http://files/media/abc-cat.jpg",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 11 {
		t.Fatalf("unexpected id: %d", id)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+analysis_results`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.AnalysisRecord{UserID: 1})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestSelectAll_NewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+ar.id,\s*ar.timestamp,\s*u.session_id,\s*ar.ai_response,\s*ar.file_name,\s*ar.file_path\s+FROM\s+analysis_results\s+ar\s+JOIN\s+users\s+u\s+ON\s+ar.user_id\s*=\s*u.id\s+ORDER\s+BY\s+ar.timestamp\s+DESC\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "timestamp", "session_id", "ai_response", "file_name", "file_path"}).
		AddRow(int64(2), now, "sess-1", "second", "b.png", "http://files/media/b").
		AddRow(int64(1), now.Add(-time.Minute), "sess-1", "first", "a.png", "http://files/media/a")
	mock.ExpectQuery(q).WillReturnRows(rows)

	records, err := repo.SelectAll(context.Background())
	if err != nil {
		t.Fatalf("SelectAll error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("unexpected count: %d", len(records))
	}
	if records[0].ID != 2 || records[1].ID != 1 {
		t.Fatalf("unexpected order: %d, %d", records[0].ID, records[1].ID)
	}
	if records[0].UserSessionID != "sess-1" {
		t.Fatalf("unexpected session id: %s", records[0].UserSessionID)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+ar.id`).
		WithArgs(int64(99999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99999)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "timestamp", "session_id", "ai_response", "file_name", "file_path"}).
		AddRow(int64(5), now, "sess-9", "an owl", "owl.jpg", "http://files/media/owl")
	mock.ExpectQuery(`SELECT\s+ar.id`).WithArgs(int64(5)).WillReturnRows(rows)

	rec, err := repo.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if rec.ID != 5 || rec.AIResponse != "an owl" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}
