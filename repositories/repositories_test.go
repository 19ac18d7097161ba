package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/studieren/compliments/models"
	"github.com/studieren/compliments/repositories"
	"github.com/studieren/compliments/testutil"
)

func strPtr(s string) *string { return &s }

func TestUsersRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUsersRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Ana", Email: "ana@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.Len(t, user.ID, 36)

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ana", found.Name)

	missing, err := repo.FindByID(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = repo.Create(ctx, &models.User{Name: "Dup", Email: "ana@example.com", Password: "hash"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestTagsRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewTagsRepository(db)
	ctx := context.Background()

	tag := &models.Tag{Name: "Kindness", Slug: "kindness"}
	require.NoError(t, repo.Create(ctx, tag))
	assert.Equal(t, "#Kindness", tag.NameCustom)

	found, err := repo.FindBySlug(ctx, "kindness")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "#Kindness", found.NameCustom)

	none, err := repo.FindBySlug(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, repo.Create(ctx, &models.Tag{Name: "Ally", Slug: "ally"}))

	tags, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Ally", tags[0].Name)
	assert.Equal(t, "#Ally", tags[0].NameCustom)

	err = repo.Create(ctx, &models.Tag{Name: "ALLY", Slug: "ally"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestComplimentsRepository_PreloadsRelations(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := repositories.NewUsersRepository(db)
	tags := repositories.NewTagsRepository(db)
	repo := repositories.NewComplimentsRepository(db)
	ctx := context.Background()

	sender := &models.User{Name: "Ana", Email: "ana@example.com", Password: "x"}
	receiver := &models.User{Name: "Bia", Email: "bia@example.com", Password: "x"}
	require.NoError(t, users.Create(ctx, sender))
	require.NoError(t, users.Create(ctx, receiver))
	tag := &models.Tag{Name: "Team", Slug: "team"}
	require.NoError(t, tags.Create(ctx, tag))

	c := &models.Compliment{
		UserSender:   strPtr(sender.ID),
		UserReceiver: strPtr(receiver.ID),
		TagID:        strPtr(tag.ID),
		Message:      "great work",
	}
	require.NoError(t, repo.Create(ctx, c))

	received, err := repo.ListByReceiver(ctx, receiver.ID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	require.NotNil(t, received[0].Sender)
	require.NotNil(t, received[0].Receiver)
	require.NotNil(t, received[0].Tag)
	assert.Equal(t, "Ana", received[0].Sender.Name)
	assert.Equal(t, "Bia", received[0].Receiver.Name)
	assert.Equal(t, "#Team", received[0].Tag.NameCustom)

	sent, err := repo.ListBySender(ctx, sender.ID)
	require.NoError(t, err)
	assert.Len(t, sent, 1)

	none, err := repo.ListBySender(ctx, receiver.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestComplimentsRepository_DeleteSetsNull(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := repositories.NewComplimentsRepository(db)

	sender := &models.User{Name: "Ana", Email: "ana@example.com", Password: "x"}
	receiver := &models.User{Name: "Bia", Email: "bia@example.com", Password: "x"}
	tag := &models.Tag{Name: "Team", Slug: "team"}
	require.NoError(t, db.Create(sender).Error)
	require.NoError(t, db.Create(receiver).Error)
	require.NoError(t, db.Create(tag).Error)

	c := &models.Compliment{
		UserSender:   strPtr(sender.ID),
		UserReceiver: strPtr(receiver.ID),
		TagID:        strPtr(tag.ID),
		Message:      "thanks",
	}
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, db.Delete(&models.Tag{}, "id = ?", tag.ID).Error)

	var reloaded models.Compliment
	require.NoError(t, db.First(&reloaded, "id = ?", c.ID).Error)
	assert.Nil(t, reloaded.TagID)
	require.NotNil(t, reloaded.UserSender)
	assert.Equal(t, sender.ID, *reloaded.UserSender)
}

func TestComplimentsRepository_ForeignKeyEnforced(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewComplimentsRepository(db)

	err := repo.Create(context.Background(), &models.Compliment{
		TagID:   strPtr("00000000-0000-0000-0000-000000000000"),
		Message: "orphan",
	})
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}
