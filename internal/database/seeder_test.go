package database

import (
	"context"
	"testing"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/provider"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "seeder-test-secret"

func TestSeedAllIsRepeatable(t *testing.T) {
	f := provider.NewFactory(testSecret, provider.WithAutoMigrate(true), provider.WithPasswordCost(bcrypt.MinCost))
	t.Cleanup(func() { _ = f.Close() })
	url := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	key, err := provider.MintAPIKey(testSecret, provider.RoleServiceRole)
	require.NoError(t, err)
	client, err := f.Client(url, key, provider.WithPersistSession(false))
	require.NoError(t, err)

	ctx := context.Background()
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, SeedAll(ctx, client, now))
	require.NoError(t, SeedAll(ctx, client, now))

	db, err := client.DB(ctx)
	require.NoError(t, err)

	var users, companies, attendance, leaves int64
	db.Model(&model.User{}).Count(&users)
	db.Model(&model.Company{}).Count(&companies)
	db.Model(&model.Attendance{}).Count(&attendance)
	db.Model(&model.LeaveRequest{}).Count(&leaves)
	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(1), companies)
	assert.Equal(t, int64(15), attendance)
	assert.Equal(t, int64(2), leaves)

	anon, err := provider.MintAPIKey(testSecret, provider.RoleAnon)
	require.NoError(t, err)
	login, err := f.Client(url, anon)
	require.NoError(t, err)
	_, err = login.SignInWithPassword(ctx, "hr@test.com", SeedPassword)
	assert.NoError(t, err)
}

func TestSeedAllNeedsServiceKey(t *testing.T) {
	f := provider.NewFactory(testSecret)
	key, err := provider.MintAPIKey(testSecret, provider.RoleAnon)
	require.NoError(t, err)
	client, err := f.Client("file:"+uuid.NewString()+"?mode=memory&cache=shared", key)
	require.NoError(t, err)

	assert.Error(t, SeedAll(context.Background(), client, time.Now()))
}
