package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/acquisitions/internal/common"
	"github.com/dmitrijs2005/acquisitions/internal/server/models"
)

const (
	selectQuery = `(?s)^SELECT\s+id,\s*name,\s*email,\s*password_hash,\s*role,\s*created_at,\s*updated_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`
	insertQuery = `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*name,\s*email,\s*password_hash,\s*role\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+created_at,\s*updated_at\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func fixedID(t *testing.T, id string) {
	t.Helper()
	orig := newID
	newID = func() string { return id }
	t.Cleanup(func() { newID = orig })
}

func TestInsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()
	fixedID(t, "0b8f6a4e-1111-4c1e-9d7a-000000000001")

	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertQuery).
		WithArgs("0b8f6a4e-1111-4c1e-9d7a-000000000001", "Ann", "ann@x.com", "$2a$10$hash", "user").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	candidate := &models.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "$2a$10$hash", Role: "user"}
	got, err := repo.Insert(context.Background(), candidate)
	require.NoError(t, err)

	assert.Equal(t, &models.PublicUser{
		ID:        "0b8f6a4e-1111-4c1e-9d7a-000000000001",
		Name:      "Ann",
		Email:     "ann@x.com",
		Role:      "user",
		CreatedAt: created,
	}, got)
	assert.Empty(t, candidate.ID, "candidate must not be mutated")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_GeneratesUUIDByDefault(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs(sqlmock.AnyArg(), "Bob", "bob@x.com", "h", "admin").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))

	got, err := repo.Insert(context.Background(), &models.User{Name: "Bob", Email: "bob@x.com", PasswordHash: "h", Role: "admin"})
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, got.ID)
}

func TestInsert_UniqueViolationMapsToDuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

	_, err := repo.Insert(context.Background(), &models.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "h", Role: "user"})
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestInsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WillReturnError(errors.New("db down"))

	_, err := repo.Insert(context.Background(), &models.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "h", Role: "user"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	assert.NotErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestInsert_OtherPgErrorIsNotDuplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.NotNullViolation})

	_, err := repo.Insert(context.Background(), &models.User{Email: "ann@x.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestFindByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at", "updated_at"}).
		AddRow("u-1", "Ann", "ann@x.com", "$2a$10$hash", "user", created, created)
	mock.ExpectQuery(selectQuery).
		WithArgs("ann@x.com").
		WillReturnRows(rows)

	got, err := repo.FindByEmail(context.Background(), "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, "$2a$10$hash", got.PasswordHash)
	assert.Equal(t, created, got.CreatedAt)
}

func TestFindByEmail_IsExactMatch(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).
		WithArgs(" Ann@X.com ").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), " Ann@X.com ")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).
		WithArgs("ann@x.com").
		WillReturnError(errors.New("db err"))

	_, err := repo.FindByEmail(context.Background(), "ann@x.com")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
