package userrepo_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
	"recicleme/internal/repository/userrepo"
)

func newRepo(t *testing.T) (*userrepo.UserRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return userrepo.NewUserRepository(db, time.Second, logger.NewNopLogger()), mock
}

func TestSave_Success(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "maria@exemplo.com", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := repo.Save(context.Background(), domain.User{Email: "maria@exemplo.com", PasswordHash: "hash"})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_DuplicateEmail(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Save(context.Background(), domain.User{Email: "maria@exemplo.com"})

	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestSave_OtherDBError(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec("INSERT INTO users").WillReturnError(errors.New("disco cheio"))

	_, err := repo.Save(context.Background(), domain.User{Email: "maria@exemplo.com"})

	assert.IsType(t, &apperror.InternalError{}, err)
}

func TestFindByEmail(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()
	mock.ExpectQuery("FROM users WHERE email = \\$1").
		WithArgs("maria@exemplo.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
			AddRow("u-1", "maria@exemplo.com", "hash", now, now))

	user, err := repo.FindByEmail(context.Background(), "maria@exemplo.com")

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("FROM users WHERE id = \\$1").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "u-404")

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestHasRole(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("FROM user_roles").
		WithArgs("u-1", "admin").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("FROM user_roles").
		WithArgs("u-2", "admin").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.HasRole(context.Background(), "u-1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.HasRole(context.Background(), "u-2", domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)
}
