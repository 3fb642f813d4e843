package users

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuniersoad/dota2notify/internal/database"
)

func setupTestStore(t *testing.T) (UserStore, *sql.DB) {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	t.Cleanup(teardown)
	return New(db), db
}

func testUser() *User {
	return &User{
		UserID:    42,
		Name:      "Alice",
		Recipient: "123456789",
		Following: []FollowedPlayer{
			{PlayerID: 111, Name: "SumaiL", LastMatchID: "100"},
		},
	}
}

func TestUpsertUserAssignsIDAndDefaults(t *testing.T) {
	store, _ := setupTestStore(t)

	saved, err := store.UpsertUser(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "user", saved.Type)

	got, err := store.GetUser(42)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "123456789", got.Recipient)
	require.Len(t, got.Following, 1)
	assert.Equal(t, int64(111), got.Following[0].PlayerID)
	assert.Equal(t, "100", got.Following[0].LastMatchID)
}

func TestUpsertUserOverwritesExistingRecord(t *testing.T) {
	store, _ := setupTestStore(t)

	saved, err := store.UpsertUser(testUser())
	require.NoError(t, err)

	saved.Name = "Alice Updated"
	saved.Following = append(saved.Following, FollowedPlayer{PlayerID: 222, Name: "Miracle-"})
	_, err = store.UpsertUser(saved)
	require.NoError(t, err)

	got, err := store.GetUser(42)
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", got.Name)
	assert.Len(t, got.Following, 2)
}

func TestGetUserNotFound(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.GetUser(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsersExcludesNonUserRecords(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.UpsertUser(testUser())
	require.NoError(t, err)
	_, err = store.UpsertUser(&User{UserID: 43, Name: "Bob"})
	require.NoError(t, err)
	_, err = store.UpsertUser(&User{UserID: 44, Name: "System", Type: "system"})
	require.NoError(t, err)

	all, err := store.ListUsers()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(42), all[0].UserID)
	assert.Equal(t, int64(43), all[1].UserID)
}

func TestAddFollowedPlayer(t *testing.T) {
	store, _ := setupTestStore(t)
	_, err := store.UpsertUser(testUser())
	require.NoError(t, err)

	user, err := store.AddFollowedPlayer(42, FollowedPlayer{PlayerID: 222, Name: "Miracle-"})
	require.NoError(t, err)
	assert.Len(t, user.Following, 2)

	got, err := store.GetUser(42)
	require.NoError(t, err)
	assert.Len(t, got.Following, 2)
}

func TestAddFollowedPlayerIsIdempotent(t *testing.T) {
	store, _ := setupTestStore(t)
	_, err := store.UpsertUser(testUser())
	require.NoError(t, err)

	user, err := store.AddFollowedPlayer(42, FollowedPlayer{PlayerID: 111, Name: "Duplicate"})
	require.NoError(t, err)
	require.Len(t, user.Following, 1)
	assert.Equal(t, "SumaiL", user.Following[0].Name)
	assert.Equal(t, "100", user.Following[0].LastMatchID)
}

func TestAddFollowedPlayerUserNotFound(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.AddFollowedPlayer(999, FollowedPlayer{PlayerID: 111})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateLastMatchID(t *testing.T) {
	store, _ := setupTestStore(t)
	_, err := store.UpsertUser(testUser())
	require.NoError(t, err)

	ok, err := store.UpdateLastMatchID(42, 111, "101")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := store.GetUser(42)
	require.NoError(t, err)
	assert.Equal(t, "101", got.Following[0].LastMatchID)
}

func TestUpdateLastMatchIDMissingUser(t *testing.T) {
	store, _ := setupTestStore(t)

	ok, err := store.UpdateLastMatchID(999, 111, "101")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateLastMatchIDMissingPlayer(t *testing.T) {
	store, _ := setupTestStore(t)
	_, err := store.UpsertUser(testUser())
	require.NoError(t, err)

	ok, err := store.UpdateLastMatchID(42, 555, "101")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := store.GetUser(42)
	require.NoError(t, err)
	assert.Equal(t, "100", got.Following[0].LastMatchID)
}
