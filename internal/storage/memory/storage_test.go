package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func newUser(name, email string) *model.User {
	age := 20
	return &model.User{
		Name:             name,
		Email:            email,
		PasswordHash:     "hash",
		AgeGroup:         &age,
		StylePreferences: []string{"미니멀", "캐주얼"},
		CreatedAt:        time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestCreateAssignsSequentialIDs() {
	first := newUser("Kim", "kim@example.com")
	second := newUser("Lee", "lee@example.com")

	s.Require().NoError(s.storage.CreateUser(s.ctx, first))
	s.Require().NoError(s.storage.CreateUser(s.ctx, second))

	s.Equal(model.UserID(1), first.ID)
	s.Equal(model.UserID(2), second.ID)
}

func (s *StorageSuite) TestCreateAndGetUser() {
	user := newUser("Kim", "kim@example.com")
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	retrieved, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("Kim", retrieved.Name)
	s.Equal([]string{"미니멀", "캐주얼"}, retrieved.StylePreferences)
	s.Require().NotNil(retrieved.AgeGroup)
	s.Equal(20, *retrieved.AgeGroup)
}

func (s *StorageSuite) TestCreateDuplicateEmail() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, newUser("Kim", "kim@example.com")))

	err := s.storage.CreateUser(s.ctx, newUser("Other", "kim@example.com"))

	s.ErrorIs(err, model.ErrEmailTaken)
	users, _ := s.storage.ListUsers(s.ctx)
	s.Len(users, 1)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 42)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByEmail() {
	user := newUser("Kim", "kim@example.com")
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	retrieved, err := s.storage.GetUserByEmail(s.ctx, "kim@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)

	_, err = s.storage.GetUserByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestReturnedUsersAreCopies() {
	user := newUser("Kim", "kim@example.com")
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))
	user.Name = "Changed"
	user.StylePreferences[0] = "Changed"

	retrieved, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("Kim", retrieved.Name)
	s.Equal("미니멀", retrieved.StylePreferences[0])
}

func (s *StorageSuite) TestListUsersOrderedByID() {
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		s.Require().NoError(s.storage.CreateUser(s.ctx, newUser("user", email)))
	}

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 3)
	for i, u := range users {
		s.Equal(model.UserID(i+1), u.ID)
	}
}

func (s *StorageSuite) TestConcurrentCreateKeepsEmailsUnique() {
	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.storage.CreateUser(s.ctx, newUser("Kim", "kim@example.com"))
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		}
	}
	s.Equal(1, succeeded)
}
