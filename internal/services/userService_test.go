package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"blogdash/internal/models"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()

	t.Run("create hashes the password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(&fakeDB{}, repo)

		user, err := svc.CreateUser(ctx, models.CreateUserRequest{Email: "a@b.c", Username: "alice", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEqual(t, "secret1", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)

		users, err := svc.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.createErr = mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}
		svc := NewUserService(&fakeDB{}, repo)

		_, err := svc.CreateUser(ctx, models.CreateUserRequest{Email: "a@b.c", Username: "alice", Password: "secret1"})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rename", func(t *testing.T) {
		alice := models.User{ID: primitive.NewObjectID(), Username: "alice"}
		repo := newFakeUserRepo(alice)
		svc := NewUserService(&fakeDB{}, repo)

		user, err := svc.UpdateUser(ctx, alice.ID, "alicia")
		require.NoError(t, err)
		assert.Equal(t, "alicia", user.Username)
		assert.Equal(t, "alicia", repo.users[alice.ID].Username)

		_, err = svc.UpdateUser(ctx, primitive.NewObjectID(), "nobody")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		alice := models.User{ID: primitive.NewObjectID(), Username: "alice"}
		repo := newFakeUserRepo(alice)
		svc := NewUserService(&fakeDB{}, repo)

		require.NoError(t, svc.DeleteUser(ctx, alice.ID))
		assert.Empty(t, repo.users)
		assert.ErrorIs(t, svc.DeleteUser(ctx, alice.ID), ErrUserNotFound)
	})
}
