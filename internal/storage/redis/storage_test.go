package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/blackpdx/ggokka-ot/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func newUser(name, email string) *model.User {
	age := 30
	return &model.User{
		Name:             name,
		Email:            email,
		PasswordHash:     "$2a$10$hash",
		AgeGroup:         &age,
		StylePreferences: []string{"클래식"},
		CreatedAt:        time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestCreateAndGetUser() {
	user := newUser("Kim", "kim@example.com")

	err := s.storage.CreateUser(s.ctx, user)
	s.Require().NoError(err)
	s.Equal(model.UserID(1), user.ID)

	retrieved, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("Kim", retrieved.Name)
	s.Equal("kim@example.com", retrieved.Email)
	s.Equal("$2a$10$hash", retrieved.PasswordHash)
	s.Equal([]string{"클래식"}, retrieved.StylePreferences)
	s.Require().NotNil(retrieved.AgeGroup)
	s.Equal(30, *retrieved.AgeGroup)
	s.True(user.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestCreateWritesIndexes() {
	user := newUser("Kim", "kim@example.com")
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	idx, err := s.mini.Get(emailIndexKey("kim@example.com"))
	s.Require().NoError(err)
	s.Equal("1", idx)

	members, err := s.mini.ZMembers(usersIndexKey())
	s.Require().NoError(err)
	s.Equal([]string{"1"}, members)
}

func (s *StorageSuite) TestCreateDuplicateEmail() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, newUser("Kim", "kim@example.com")))

	err := s.storage.CreateUser(s.ctx, newUser("Other", "kim@example.com"))

	s.ErrorIs(err, model.ErrEmailTaken)
	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 1)
	s.Equal("Kim", users[0].Name)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 99)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByEmail() {
	user := newUser("Kim", "kim@example.com")
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	retrieved, err := s.storage.GetUserByEmail(s.ctx, "kim@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
}

func (s *StorageSuite) TestGetUserByEmailNotFound() {
	_, err := s.storage.GetUserByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestListUsersOrderedByID() {
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		s.Require().NoError(s.storage.CreateUser(s.ctx, newUser("user", email)))
	}

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 3)
	s.Equal("a@example.com", users[0].Email)
	s.Equal("c@example.com", users[2].Email)
}

func (s *StorageSuite) TestListUsersEmpty() {
	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Empty(users)
}

func (s *StorageSuite) TestListUsersSkipsMissingRecords() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, newUser("Kim", "kim@example.com")))
	s.Require().NoError(s.storage.CreateUser(s.ctx, newUser("Lee", "lee@example.com")))
	s.mini.Del(userKey(1))

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal("Lee", users[0].Name)
}

func (s *StorageSuite) TestNewRejectsBadURL() {
	_, err := New(Config{URL: "not a url"})
	s.Error(err)
}

func (s *StorageSuite) TestNewConnects() {
	st, err := New(Config{URL: "redis://" + s.mini.Addr(), PoolSize: 2})
	s.Require().NoError(err)
	defer st.Close()

	s.Require().NoError(st.CreateUser(s.ctx, newUser("Kim", "kim@example.com")))
}
