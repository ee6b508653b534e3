package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sampleapp/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Account{}, &model.Post{}, &model.Relationship{}))
	return db
}

func createAccount(t *testing.T, repo AccountRepository, n int) *model.Account {
	t.Helper()
	a := &model.Account{
		Name:           fmt.Sprintf("Person %d", n),
		Email:          fmt.Sprintf("person_%d@example.com", n),
		PasswordDigest: "digest",
	}
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func TestAccountRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	a := createAccount(t, repo, 1)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.False(t, a.Admin)

	found, err := repo.FindByEmail(ctx, "PERSON_1@Example.com")
	require.NoError(t, err)
	assert.Equal(t, a.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	taken, err := repo.EmailTaken(ctx, "Person_1@example.com", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = repo.EmailTaken(ctx, "person_1@example.com", a.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	found.Name = "New Name"
	found.Email = "new@example.com"
	found.Admin = true // must not be persisted by Update
	require.NoError(t, repo.Update(ctx, found))

	reloaded, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", reloaded.Name)
	assert.Equal(t, "new@example.com", reloaded.Email)
	assert.False(t, reloaded.Admin)

	require.NoError(t, repo.UpdateAdmin(ctx, a.ID, true))
	reloaded, err = repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Admin)
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))
	first := createAccount(t, repo, 1)
	second := createAccount(t, repo, 2)

	dup := &model.Account{Name: "Copy", Email: first.Email, PasswordDigest: "digest"}
	err := repo.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, IsDuplicate(err), "got %v", err)

	second.Email = first.Email
	err = repo.Update(ctx, second)
	require.Error(t, err)
	assert.True(t, IsDuplicate(err), "got %v", err)

	assert.True(t, IsDuplicate(gorm.ErrDuplicatedKey))
	assert.False(t, IsDuplicate(gorm.ErrRecordNotFound))
	assert.False(t, IsDuplicate(nil))
}

func TestAccountRepository_WithTransaction(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))
	createAccount(t, repo, 1)

	err := repo.WithTransaction(ctx, func(ctx context.Context, tx AccountRepository) error {
		require.NoError(t, tx.Create(ctx, &model.Account{Name: "Rolled Back", Email: "rollback@example.com", PasswordDigest: "digest"}))
		taken, err := tx.EmailTaken(ctx, "rollback@example.com", uuid.Nil)
		require.NoError(t, err)
		assert.True(t, taken, "writes are visible inside the transaction")
		return tx.Create(ctx, &model.Account{Name: "Copy", Email: "person_1@example.com", PasswordDigest: "digest"})
	})
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))

	_, err = repo.FindByEmail(ctx, "rollback@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, repo.WithTransaction(ctx, func(ctx context.Context, tx AccountRepository) error {
		return tx.Create(ctx, &model.Account{Name: "Kept", Email: "kept@example.com", PasswordDigest: "digest"})
	}))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestAccountRepository_ListAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))
	for i := 1; i <= 5; i++ {
		createAccount(t, repo, i)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)

	page, err := repo.List(ctx, 0, 3)
	require.NoError(t, err)
	assert.Len(t, page, 3)

	rest, err := repo.List(ctx, 3, 3)
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}

func TestAccountRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	accounts := NewAccountRepository(db)
	posts := NewPostRepository(db)
	rels := NewRelationshipRepository(db)

	a := createAccount(t, accounts, 1)
	b := createAccount(t, accounts, 2)
	require.NoError(t, posts.Create(ctx, &model.Post{Content: "hello", UserID: a.ID}))
	require.NoError(t, posts.Create(ctx, &model.Post{Content: "bye", UserID: b.ID}))
	require.NoError(t, rels.Create(ctx, &model.Relationship{FollowerID: a.ID, FollowedID: b.ID}))
	require.NoError(t, rels.Create(ctx, &model.Relationship{FollowerID: b.ID, FollowedID: a.ID}))

	require.NoError(t, accounts.Delete(ctx, a.ID))

	count, err := accounts.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	n, err := posts.CountByUser(ctx, a.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = posts.CountByUser(ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = rels.CountFollowers(ctx, b.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = rels.CountFollowing(ctx, b.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.ErrorIs(t, accounts.Delete(ctx, a.ID), gorm.ErrRecordNotFound)
}

func TestRelationshipRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	accounts := NewAccountRepository(db)
	rels := NewRelationshipRepository(db)

	a := createAccount(t, accounts, 1)
	b := createAccount(t, accounts, 2)
	c := createAccount(t, accounts, 3)

	edge := &model.Relationship{FollowerID: a.ID, FollowedID: b.ID}
	require.NoError(t, rels.Create(ctx, edge))
	require.NoError(t, rels.Create(ctx, &model.Relationship{FollowerID: c.ID, FollowedID: b.ID}))

	assert.Error(t, rels.Create(ctx, &model.Relationship{FollowerID: a.ID, FollowedID: b.ID}), "duplicate pair")

	found, err := rels.Find(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, edge.ID, found.ID)

	_, err = rels.Find(ctx, b.ID, a.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	following, err := rels.ListFollowing(ctx, a.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, b.ID, following[0].ID)
	assert.Equal(t, "Person 2", following[0].Name)

	followers, err := rels.ListFollowers(ctx, b.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, followers, 2)

	n, err := rels.CountFollowers(ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	require.NoError(t, rels.Delete(ctx, edge.ID))
	n, err = rels.CountFollowing(ctx, a.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.ErrorIs(t, rels.Delete(ctx, edge.ID), gorm.ErrRecordNotFound)
}

func TestPostRepository_OrderAndFeed(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	accounts := NewAccountRepository(db)
	posts := NewPostRepository(db)
	rels := NewRelationshipRepository(db)

	a := createAccount(t, accounts, 1)
	b := createAccount(t, accounts, 2)
	c := createAccount(t, accounts, 3)

	now := time.Now()
	older := &model.Post{Content: "older", UserID: a.ID, CreatedAt: now.Add(-2 * time.Hour)}
	newer := &model.Post{Content: "newer", UserID: a.ID, CreatedAt: now.Add(-time.Hour)}
	require.NoError(t, posts.Create(ctx, older))
	require.NoError(t, posts.Create(ctx, newer))
	require.NoError(t, posts.Create(ctx, &model.Post{Content: "from b", UserID: b.ID, CreatedAt: now}))
	require.NoError(t, posts.Create(ctx, &model.Post{Content: "from c", UserID: c.ID, CreatedAt: now}))

	list, err := posts.ListByUser(ctx, a.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].Content)
	assert.Equal(t, "older", list[1].Content)

	require.NoError(t, rels.Create(ctx, &model.Relationship{FollowerID: a.ID, FollowedID: b.ID}))

	feed, err := posts.Feed(ctx, a.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "from b", feed[0].Content)
	assert.Equal(t, "Person 2", feed[0].User.Name)
	for _, p := range feed {
		assert.NotEqual(t, c.ID, p.UserID)
	}

	n, err := posts.CountFeed(ctx, a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	require.NoError(t, posts.Delete(ctx, older.ID))
	_, err = posts.FindByID(ctx, older.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
