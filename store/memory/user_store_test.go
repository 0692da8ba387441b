package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderai/wanderai-backend/errors"
	"github.com/wanderai/wanderai-backend/store"
	"github.com/wanderai/wanderai-backend/types"
)

func newRecord(email string, createdAt time.Time) *store.UserRecord {
	return &store.UserRecord{
		User: types.User{
			ID:        uuid.NewString(),
			Email:     email,
			Name:      "Test User",
			Role:      types.RoleUser,
			CreatedAt: createdAt,
		},
		PasswordHash: "not-a-real-hash",
	}
}

func TestSeededDemoAccounts(t *testing.T) {
	s := NewSeededUserStore()
	ctx := context.Background()

	admin, err := s.GetByEmail(ctx, "admin@wanderai.com")
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, admin.Role)
	assert.NotEmpty(t, admin.PasswordHash)

	user, err := s.GetByEmail(ctx, "user@wanderai.com")
	require.NoError(t, err)
	assert.Equal(t, types.RoleUser, user.Role)
}

func TestCreateAndGet(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	record := newRecord("Traveler@Example.com", time.Now().UTC())
	require.NoError(t, s.Create(ctx, record))

	// Email lookups are case and whitespace insensitive.
	byEmail, err := s.GetByEmail(ctx, "  traveler@example.com ")
	require.NoError(t, err)
	assert.Equal(t, record.ID, byEmail.ID)

	byID, err := s.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "traveler@example.com", byID.Email)
}

func TestCreateDuplicateEmail(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newRecord("dup@example.com", time.Now().UTC())))

	err := s.Create(ctx, newRecord("DUP@example.com", time.Now().UTC()))
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ConflictError, appErr.Type)
}

func TestGetMissing(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	_, err := s.GetByEmail(ctx, "missing@example.com")
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.NotFoundError, appErr.Type)

	_, err = s.GetByID(ctx, uuid.NewString())
	assert.Error(t, err)
}

func TestListOrderedByCreation(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	base := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Create(ctx, newRecord("second@example.com", base.Add(time.Hour))))
	require.NoError(t, s.Create(ctx, newRecord("first@example.com", base)))

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "first@example.com", records[0].Email)
	assert.Equal(t, "second@example.com", records[1].Email)
}

func TestRecordsAreCopies(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	record := newRecord("copy@example.com", time.Now().UTC())
	require.NoError(t, s.Create(ctx, record))

	got, err := s.GetByEmail(ctx, "copy@example.com")
	require.NoError(t, err)
	got.Name = "Mutated"

	again, err := s.GetByEmail(ctx, "copy@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Test User", again.Name)
}
