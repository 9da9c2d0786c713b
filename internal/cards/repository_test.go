package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoryOrdersByID(t *testing.T) {
	repo := fixtureRepo()
	assert.Equal(t, []int{1, 2, 3, 5, 10, 20, 100001}, ids(repo.All()))
	assert.Equal(t, 7, repo.Len())
	assert.Equal(t, "7", repo.Version())
}

func TestNewRepositoryCollapsesDuplicates(t *testing.T) {
	repo := NewRepository([]Card{
		{ID: 1, Name: "first", Categories: []string{"a", "a", "b"}},
		{ID: 1, Name: "second"},
	}, "")
	require.Equal(t, 1, repo.Len())
	c, ok := repo.Card(1)
	require.True(t, ok)
	assert.Equal(t, "first", c.Name)
	assert.Equal(t, []string{"a", "b"}, c.Categories)
}

func TestRepositoryAllIsACopy(t *testing.T) {
	repo := fixtureRepo()
	all := repo.All()
	all[0] = nil
	assert.NotNil(t, repo.All()[0])
}

func TestRepositoryGet(t *testing.T) {
	repo := fixtureRepo()
	c, err := repo.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "Blue-Eyes White Dragon", c.Name)

	_, err = repo.Get(999)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestNilRepositoryIsEmpty(t *testing.T) {
	var repo *Repository
	assert.Equal(t, 0, repo.Len())
	assert.Empty(t, repo.All())
	assert.Equal(t, "", repo.Version())
	_, ok := repo.Card(1)
	assert.False(t, ok)
}
