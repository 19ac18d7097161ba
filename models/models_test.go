package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studieren/compliments/models"
	"github.com/studieren/compliments/testutil"
)

func TestBeforeCreate_AssignsUUID(t *testing.T) {
	db := testutil.NewTestDB(t)

	user := &models.User{Name: "Ana", Email: "ana@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	assert.Len(t, user.ID, 36)

	preset := &models.User{ID: "fixed-id", Name: "Bia", Email: "bia@example.com", Password: "x"}
	require.NoError(t, db.Create(preset).Error)
	assert.Equal(t, "fixed-id", preset.ID)
}

func TestTag_NameCustomNotPersisted(t *testing.T) {
	db := testutil.NewTestDB(t)

	tag := &models.Tag{Name: "Ally", Slug: "ally", NameCustom: "ignored"}
	require.NoError(t, db.Create(tag).Error)
	assert.Equal(t, "#Ally", tag.NameCustom)
	assert.False(t, db.Migrator().HasColumn(&models.Tag{}, "name_custom"))

	var loaded models.Tag
	require.NoError(t, db.First(&loaded, "id = ?", tag.ID).Error)
	assert.Equal(t, "#Ally", loaded.NameCustom)
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	b, err := json.Marshal(models.User{ID: "1", Password: "hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hash")
	assert.NotContains(t, string(b), "password")
}
