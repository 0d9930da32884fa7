package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/back-informatica/chamados/internal/domain/user"
	vo "github.com/back-informatica/chamados/internal/domain/user/valueobjects"
)

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate username", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: chamados.users index: username_1",
		}))
		repo := NewUserRepository(mt.DB)

		u, err := user.NewUser("u1", "ana", "", "", vo.RoleClient, "", "hash", testNow)
		require.NoError(mt, err)

		assert.ErrorIs(mt, repo.Create(context.Background(), u), user.ErrUsernameTaken)
	})

	mt.Run("get by username", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "chamados.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "u1"},
			{Key: "username", Value: "ana"},
			{Key: "role", Value: "tecnico"},
			{Key: "status", Value: "blocked"},
			{Key: "created_at", Value: testNow},
			{Key: "updated_at", Value: testNow},
		}))
		repo := NewUserRepository(mt.DB)

		u, err := repo.GetByUsername(context.Background(), "ana")

		require.NoError(mt, err)
		assert.Equal(mt, vo.RoleTechnician, u.Role())
		assert.True(mt, u.IsBlocked())
	})

	mt.Run("profile without status is active", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "chamados.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "uid-1"},
			{Key: "email", Value: "ana@example.com"},
			{Key: "role", Value: "cliente"},
		}))
		repo := NewUserRepository(mt.DB)

		u, err := repo.GetByID(context.Background(), "uid-1")

		require.NoError(mt, err)
		assert.False(mt, u.IsBlocked())
	})

	mt.Run("update missing user", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})
		repo := NewUserRepository(mt.DB)

		p, err := user.NewProfile("ghost", "", testNow)
		require.NoError(mt, err)

		assert.ErrorIs(mt, repo.Update(context.Background(), p), user.ErrUserNotFound)
	})
}
