package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/suite"

	"github.com/blackpdx/ggokka-ot/internal/model"
)

const (
	insertQuery   = `(?s)^INSERT\s+INTO\s+users\s*\(name,\s*email,\s*password_hash,\s*age_group,\s*style_preferences,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+id$`
	selectByID    = `^SELECT id, name, email, password_hash, age_group, style_preferences, created_at FROM users WHERE id = \$1$`
	selectByEmail = `^SELECT id, name, email, password_hash, age_group, style_preferences, created_at FROM users WHERE email = \$1$`
	selectAll     = `^SELECT id, name, email, password_hash, age_group, style_preferences, created_at FROM users ORDER BY id$`
)

var columns = []string{"id", "name", "email", "password_hash", "age_group", "style_preferences", "created_at"}

type StorageSuite struct {
	suite.Suite
	db      *sql.DB
	mock    sqlmock.Sqlmock
	storage *Storage
	ctx     context.Context
	now     time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)
	s.db = db
	s.mock = mock
	s.storage = NewWithDB(db)
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	_ = s.db.Close()
}

func (s *StorageSuite) TestCreateUser() {
	age := 20
	user := &model.User{
		Name:             "Kim",
		Email:            "kim@example.com",
		PasswordHash:     "hash",
		AgeGroup:         &age,
		StylePreferences: []string{"미니멀", "캐주얼"},
		CreatedAt:        s.now,
	}
	s.mock.ExpectQuery(insertQuery).
		WithArgs("Kim", "kim@example.com", "hash", int64(20), `["미니멀","캐주얼"]`, s.now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err := s.storage.CreateUser(s.ctx, user)

	s.Require().NoError(err)
	s.Equal(model.UserID(7), user.ID)
}

func (s *StorageSuite) TestCreateUserWithoutOptionalFields() {
	user := &model.User{Name: "Kim", Email: "kim@example.com", PasswordHash: "hash", CreatedAt: s.now}
	s.mock.ExpectQuery(insertQuery).
		WithArgs("Kim", "kim@example.com", "hash", nil, `[]`, s.now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	s.Require().NoError(s.storage.CreateUser(s.ctx, user))
}

func (s *StorageSuite) TestCreateUserDuplicateEmail() {
	s.mock.ExpectQuery(insertQuery).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	err := s.storage.CreateUser(s.ctx, &model.User{Email: "kim@example.com", CreatedAt: s.now})

	s.ErrorIs(err, model.ErrEmailTaken)
}

func (s *StorageSuite) TestCreateUserDBError() {
	s.mock.ExpectQuery(insertQuery).WillReturnError(errors.New("db down"))

	err := s.storage.CreateUser(s.ctx, &model.User{Email: "kim@example.com", CreatedAt: s.now})

	s.Require().Error(err)
	s.Contains(err.Error(), "db error: db down")
	s.NotErrorIs(err, model.ErrEmailTaken)
}

func (s *StorageSuite) TestGetUser() {
	s.mock.ExpectQuery(selectByID).WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(3), "Kim", "kim@example.com", "hash", int64(30), []byte(`["클래식"]`), s.now))

	user, err := s.storage.GetUser(s.ctx, 3)

	s.Require().NoError(err)
	s.Equal(model.UserID(3), user.ID)
	s.Equal("Kim", user.Name)
	s.Require().NotNil(user.AgeGroup)
	s.Equal(30, *user.AgeGroup)
	s.Equal([]string{"클래식"}, user.StylePreferences)
	s.Equal(s.now, user.CreatedAt)
}

func (s *StorageSuite) TestGetUserNotFound() {
	s.mock.ExpectQuery(selectByID).WithArgs(int64(3)).WillReturnError(sql.ErrNoRows)

	_, err := s.storage.GetUser(s.ctx, 3)

	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByEmailNullAgeGroup() {
	s.mock.ExpectQuery(selectByEmail).WithArgs("kim@example.com").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "Kim", "kim@example.com", "hash", nil, []byte(`[]`), s.now))

	user, err := s.storage.GetUserByEmail(s.ctx, "kim@example.com")

	s.Require().NoError(err)
	s.Nil(user.AgeGroup)
	s.Empty(user.StylePreferences)
}

func (s *StorageSuite) TestGetUserByEmailNotFound() {
	s.mock.ExpectQuery(selectByEmail).WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := s.storage.GetUserByEmail(s.ctx, "nobody@example.com")

	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestListUsers() {
	s.mock.ExpectQuery(selectAll).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "Kim", "kim@example.com", "h1", int64(20), []byte(`["미니멀"]`), s.now).
			AddRow(int64(2), "Lee", "lee@example.com", "h2", nil, []byte(`[]`), s.now))

	users, err := s.storage.ListUsers(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("Kim", users[0].Name)
	s.Equal("Lee", users[1].Name)
}

func (s *StorageSuite) TestListUsersEmpty() {
	s.mock.ExpectQuery(selectAll).WillReturnRows(sqlmock.NewRows(columns))

	users, err := s.storage.ListUsers(s.ctx)

	s.Require().NoError(err)
	s.NotNil(users)
	s.Empty(users)
}

func (s *StorageSuite) TestListUsersQueryError() {
	s.mock.ExpectQuery(selectAll).WillReturnError(errors.New("db down"))

	_, err := s.storage.ListUsers(s.ctx)

	s.Error(err)
}

func (s *StorageSuite) TestListUsersBadPreferences() {
	s.mock.ExpectQuery(selectAll).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "Kim", "kim@example.com", "h1", nil, []byte(`not json`), s.now))

	_, err := s.storage.ListUsers(s.ctx)

	s.ErrorContains(err, "decode style preferences")
}

func (s *StorageSuite) TestMigrateUsesEmbeddedDir() {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	s.Require().NoError(s.storage.Migrate(s.ctx))
	s.Equal(".", gotDir)
}

func (s *StorageSuite) TestMigrateError() {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	s.ErrorContains(s.storage.Migrate(s.ctx), "migrate: boom")
}
