package cards

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvFixture = `id,名前,略称,種類,属性,種族,レベル,攻撃力,守備力,性別,説明,追加日,categories
2,La Jinn,Jinn,効果モン,闇,悪魔族,4,1800,1000,-,ランプの魔人,20020101,魔人／悪魔
1,Gemini Elf,Elf,通常モン,地,魔法使い族,4,1900,900,-,「双子」,20030101,
x,bad row,,,,,,,,,,,
9,Link Spider,Spider,リンク,地,サイバース族,,1000,,-,,,-
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadSingleCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")
	writeFile(t, path, csvFixture)

	records, err := loadSingleCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 3, "rows without a numeric id are skipped")

	jinn := records[0]
	assert.Equal(t, 2, jinn.ID)
	assert.Equal(t, "Jinn", jinn.ShortName)
	require.NotNil(t, jinn.Level)
	assert.Equal(t, 4, *jinn.Level)
	assert.Equal(t, []string{"魔人", "悪魔"}, jinn.Categories)

	spider := records[2]
	assert.Nil(t, spider.Level)
	assert.Equal(t, 0, spider.Defense)
	assert.Empty(t, spider.Categories)
}

func TestLoadSingleCSVWithBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")
	writeFile(t, path, "\ufeff"+csvFixture)

	records, err := loadSingleCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 3, "the id column is found behind a byte order mark")
	assert.Equal(t, 2, records[0].ID)
	assert.Equal(t, 1, records[1].ID)
}

func TestLoadCardsFromDataDir(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadCardsFromDataDir(dir)
	assert.ErrorIs(t, err, ErrNoData)

	writeFile(t, filepath.Join(dir, "cards.csv"), csvFixture)
	writeFile(t, filepath.Join(dir, "custom_cards.csv"), "id,名前\n500,Custom\n")
	records, err := LoadCardsFromDataDir(dir)
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestLoadDispatchesOnPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.csv")
	writeFile(t, path, csvFixture)

	repo, err := Load(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 9}, ids(repo.All()))

	repo, err = Load(context.Background(), dir, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.Len())

	_, err = Load(context.Background(), filepath.Join(dir, "missing.db"), nil)
	assert.Error(t, err)
}

func TestParseLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"2500", 2500, true},
		{" -1 ", -1, true},
		{"12abc", 12, true},
		{"?", 0, false},
		{"", 0, false},
		{"-", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseLeadingInt(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
	}
}

func createCardDB(t *testing.T, withMetadata bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	stmts := []string{
		`CREATE TABLE cards (id INTEGER PRIMARY KEY, 名前 TEXT, 略称 TEXT, 種類 TEXT, 属性 TEXT,
			種族 TEXT, レベル INTEGER, 攻撃力 INTEGER, 守備力 INTEGER, 性別 TEXT, 説明 TEXT, 追加日 INTEGER)`,
		`CREATE TABLE card_categories (card_id INTEGER, category TEXT)`,
		`INSERT INTO cards VALUES (4007, 'Blue-Eyes White Dragon', 'Blue-Eyes', '通常モン', '光',
			'ドラゴン族', 8, 3000, 2500, '-', '「伝説」のドラゴン', 20020101)`,
		`INSERT INTO cards VALUES (9000, 'Tyrant', 'Tyrant', '融合', '闇', 'ドラゴン族', NULL, -1, -1, NULL, NULL, NULL)`,
		`INSERT INTO card_categories VALUES (4007, 'ドラゴン'), (4007, 'ドラゴン'), (4007, '通常'), (9999, 'orphan')`,
	}
	if withMetadata {
		stmts = append(stmts,
			`CREATE TABLE metadata (key TEXT, value TEXT)`,
			`INSERT INTO metadata VALUES ('version', '2024.06')`)
	}
	for _, s := range stmts {
		_, err := db.Exec(s)
		require.NoError(t, err, s)
	}
	return path
}

func TestLoadSQLite(t *testing.T) {
	path := createCardDB(t, true)
	repo, err := LoadSQLite(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "2024.06", repo.Version())
	assert.Equal(t, []int{4007, 9000}, ids(repo.All()))

	blue, ok := repo.Card(4007)
	require.True(t, ok)
	assert.Equal(t, "Blue-Eyes", blue.ShortName)
	assert.Equal(t, 3000, blue.Attack)
	assert.Equal(t, 20020101, blue.Release)
	assert.Equal(t, []string{"ドラゴン", "通常"}, blue.Categories)

	tyrant, ok := repo.Card(9000)
	require.True(t, ok)
	assert.Nil(t, tyrant.Level)
	assert.Equal(t, StatUnknown, tyrant.Attack)
	assert.Equal(t, ZoneExtra, tyrant.Zone())
	assert.Empty(t, tyrant.Categories)
}

func TestLoadSQLiteWithoutMetadata(t *testing.T) {
	repo, err := Load(context.Background(), createCardDB(t, false), nil)
	require.NoError(t, err)
	assert.Equal(t, "", repo.Version())
	assert.Equal(t, 2, repo.Len())
}
