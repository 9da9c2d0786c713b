package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterNoConstraintsKeepsEverything(t *testing.T) {
	repo := fixtureRepo()
	assert.Equal(t, ids(repo.All()), ids(Filter(repo.All(), FilterState{})))
}

func TestFilterSearchTag(t *testing.T) {
	repo := fixtureRepo()
	f := FilterState{}
	require.True(t, f.AddTag("Dragon"))

	got := Filter(repo.All(), f)
	assert.Equal(t, []int{1, 3, 10}, ids(got))
	for _, c := range got {
		assert.True(t, MatchesText(c, "Dragon"), c.Name)
	}
}

func TestFilterMatchesIDText(t *testing.T) {
	repo := fixtureRepo()
	f := FilterState{Search: "100001"}
	assert.Equal(t, []int{100001}, ids(Filter(repo.All(), f)))
}

func TestFilterSearchAndTagsAreANDed(t *testing.T) {
	repo := fixtureRepo()
	f := FilterState{Search: "Dragon", Tags: []string{"Knight"}}
	assert.Equal(t, []int{10}, ids(Filter(repo.All(), f)))

	f.Tags = append(f.Tags, "nothing like this")
	assert.Empty(t, Filter(repo.All(), f))
}

func TestFilterFieldValues(t *testing.T) {
	repo := fixtureRepo()
	f := FilterState{}
	f.Toggle(FieldAttribute, "闇")
	assert.Equal(t, []int{2, 5}, ids(Filter(repo.All(), f)))

	// OR within a field.
	f.Toggle(FieldAttribute, "地")
	assert.Equal(t, []int{1, 2, 5}, ids(Filter(repo.All(), f)))

	// AND across fields.
	f.Toggle(FieldRace, "悪魔族")
	assert.Equal(t, []int{2}, ids(Filter(repo.All(), f)))
}

func TestFilterLevelCoercedToString(t *testing.T) {
	repo := fixtureRepo()
	f := FilterState{}
	f.Toggle(FieldLevel, "8")
	assert.Equal(t, []int{3}, ids(Filter(repo.All(), f)))
}

func TestFilterCategorySubstring(t *testing.T) {
	repo := fixtureRepo()
	f := FilterState{}
	f.SetCategory(" Blue ")
	assert.Equal(t, "Blue", f.Category)
	assert.Equal(t, []int{3}, ids(Filter(repo.All(), f)))

	f.SetCategory("blue")
	assert.Empty(t, Filter(repo.All(), f), "category match is case-sensitive")
}

func TestFilterIsIdempotent(t *testing.T) {
	repo := fixtureRepo()
	f := FilterState{Tags: []string{"a"}}
	f.Toggle(FieldType, "効果モン")
	once := Filter(repo.All(), f)
	assert.Equal(t, ids(once), ids(Filter(once, f)))
}

func TestMatchesIsDeterministic(t *testing.T) {
	repo := fixtureRepo()
	f := FilterState{Category: "ドラゴン", Search: "Blue"}
	f.Toggle(FieldLevel, "8")
	f.Toggle(FieldAttribute, "光")
	for _, c := range repo.All() {
		first := Matches(c, f)
		for range 10 {
			assert.Equal(t, first, Matches(c, f))
		}
	}
}

func TestToggleRemovesValue(t *testing.T) {
	f := FilterState{}
	f.Toggle(FieldGender, "-")
	assert.True(t, f.Checked(FieldGender, "-"))
	f.Toggle(FieldGender, "-")
	assert.False(t, f.Checked(FieldGender, "-"))
	assert.Empty(t, f.Values)
}

func TestCommitSearch(t *testing.T) {
	f := FilterState{}
	f.SetSearch("   ")
	assert.False(t, f.CommitSearch())
	assert.Empty(t, f.Tags)

	f.SetSearch(" Elf ")
	require.True(t, f.CommitSearch())
	assert.Equal(t, []string{"Elf"}, f.Tags)
	assert.Equal(t, "", f.Search)
}

func TestRemoveTagAndResets(t *testing.T) {
	f := FilterState{Tags: []string{"a", "b", "c"}, Search: "x", Category: "y"}
	f.Toggle(FieldType, "融合")

	assert.False(t, f.RemoveTag(3))
	assert.True(t, f.RemoveTag(1))
	assert.Equal(t, []string{"a", "c"}, f.Tags)

	f.ResetFilters()
	assert.Empty(t, f.Values)
	assert.Equal(t, "", f.Category)
	assert.Equal(t, []string{"a", "c"}, f.Tags)

	f.ResetSearch()
	assert.Empty(t, f.Tags)
	assert.Equal(t, "", f.Search)
}

func TestCloneIsDeep(t *testing.T) {
	f := FilterState{Tags: []string{"a"}}
	f.Toggle(FieldType, "融合")
	c := f.Clone()
	c.Tags[0] = "b"
	c.Values[FieldType][0] = "通常罠"
	assert.Equal(t, "a", f.Tags[0])
	assert.Equal(t, "融合", f.Values[FieldType][0])
}

func TestParseField(t *testing.T) {
	f, err := ParseField("race")
	require.NoError(t, err)
	assert.Equal(t, FieldRace, f)

	_, err = ParseField("colour")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestInZone(t *testing.T) {
	repo := fixtureRepo()
	assert.Equal(t, []int{10}, ids(InZone(repo.All(), ZoneExtra)))
	assert.NotContains(t, ids(InZone(repo.All(), ZoneMain)), 10)
}
