package messages

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_ReturnsStoredRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+chat_messages\s*\(chat_id,\s*role,\s*content\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*timestamp\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "timestamp"}).AddRow(int64(4), now)
	mock.ExpectQuery(q).WithArgs(int64(2), "user", "hi").WillReturnRows(rows)

	msg, err := repo.Create(context.Background(), 2, "user", "hi")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if msg.ID != 4 || msg.ChatID != 2 || msg.Role != "user" || msg.Content != "hi" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+chat_messages`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), 2, "user", "hi")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestSelectByChat_AppendOrder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*chat_id,\s*role,\s*content,\s*timestamp\s+FROM\s+chat_messages\s+WHERE\s+chat_id\s*=\s*\$1\s+ORDER\s+BY\s+timestamp\s+ASC,\s*id\s+ASC\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "chat_id", "role", "content", "timestamp"}).
		AddRow(int64(1), int64(2), "user", "hi", now).
		AddRow(int64(2), int64(2), "user", "there", now.Add(time.Second))
	mock.ExpectQuery(q).WithArgs(int64(2)).WillReturnRows(rows)

	msgs, err := repo.SelectByChat(context.Background(), 2)
	if err != nil {
		t.Fatalf("SelectByChat error: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("unexpected count: %d", len(msgs))
	}
	if msgs[0].Content != "hi" || msgs[1].Content != "there" {
		t.Fatalf("unexpected order: %q, %q", msgs[0].Content, msgs[1].Content)
	}
}

func TestSelectByChat_EmptyChat(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "chat_id", "role", "content", "timestamp"})
	mock.ExpectQuery(`SELECT\s+id,\s*chat_id`).WithArgs(int64(7)).WillReturnRows(rows)

	msgs, err := repo.SelectByChat(context.Background(), 7)
	if err != nil {
		t.Fatalf("SelectByChat error: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected empty history, got %d", len(msgs))
	}
}
