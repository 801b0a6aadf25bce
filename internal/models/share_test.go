package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharesync/pkg/api"
)

func TestShare_Apply(t *testing.T) {
	base := &Share{ID: "s1", Title: "old", Content: "body", Pinned: false, Version: 3}

	newTitle := "new"
	updated := base.Apply(api.SharePatch{Title: &newTitle})

	// Nil-поля patch не изменяют запись
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "body", updated.Content)
	assert.False(t, updated.Pinned)

	// Исходная запись не изменилась
	assert.Equal(t, "old", base.Title)
}

func TestShare_CloneNil(t *testing.T) {
	var s *Share
	assert.Nil(t, s.Clone())
}

func TestShare_Clone(t *testing.T) {
	base := &Share{ID: "s1", Title: "t", Version: 7}
	clone := base.Clone()

	require.NotNil(t, clone)
	assert.Equal(t, *base, *clone)

	clone.Title = "changed"
	assert.Equal(t, "t", base.Title)
}
