package cards

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Column names shared by the SQLite table and the CSV header.
const (
	colID          = "id"
	colName        = "名前"
	colShortName   = "略称"
	colType        = "種類"
	colAttribute   = "属性"
	colRace        = "種族"
	colLevel       = "レベル"
	colAttack      = "攻撃力"
	colDefense     = "守備力"
	colGender      = "性別"
	colDescription = "説明"
	colRelease     = "追加日"
	colCategories  = "categories"
)

// csvFiles are read from a data directory in this order.
var csvFiles = []string{"cards.csv", "custom_cards.csv"}

// Load builds a repository from path: a SQLite database (.db, .sqlite), a
// CSV file, or a directory holding CSV files.
func Load(ctx context.Context, path string, logger *slog.Logger) (*Repository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	var repo *Repository
	switch {
	case info.IsDir():
		var records []Card
		records, err = LoadCardsFromDataDir(path)
		repo = NewRepository(records, "")
	case strings.EqualFold(filepath.Ext(path), ".csv"):
		var records []Card
		records, err = loadSingleCSV(path)
		repo = NewRepository(records, "")
	default:
		repo, err = LoadSQLite(ctx, path)
	}
	if err != nil {
		return nil, err
	}
	logger.Info("cards loaded", "path", path, "count", repo.Len(), "version", repo.Version())
	return repo, nil
}

func parseListCell(s string) []string {
	s = strings.ReplaceAll(s, "／", "/")
	parts := strings.Split(s, "/")
	out := []string{}
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" && t != "-" {
			out = append(out, t)
		}
	}
	return out
}

// parseLeadingInt reads an optionally signed run of leading digits, the
// way loosely typed numeric columns are read. ok is false when there are
// no digits.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

// cardFromRow builds a record from named column values. Rows without a
// numeric id are rejected.
func cardFromRow(get func(name string) string) (Card, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(get(colID)))
	if err != nil {
		return Card{}, false
	}
	c := Card{
		ID:          id,
		Name:        get(colName),
		ShortName:   get(colShortName),
		Type:        get(colType),
		Attribute:   get(colAttribute),
		Race:        get(colRace),
		Gender:      get(colGender),
		Description: get(colDescription),
	}
	if lv, ok := parseLeadingInt(get(colLevel)); ok {
		c.Level = intPtr(lv)
	}
	c.Attack, _ = parseLeadingInt(get(colAttack))
	c.Defense, _ = parseLeadingInt(get(colDefense))
	c.Release, _ = parseLeadingInt(get(colRelease))
	return c, true
}

// LoadCardsFromDataDir loads the CSV files of a data directory.
// cards.csv is expected; custom_cards.csv is optional.
func LoadCardsFromDataDir(dataDir string) ([]Card, error) {
	var all []Card
	var found bool
	for _, name := range csvFiles {
		f := filepath.Join(dataDir, name)
		if _, err := os.Stat(f); err != nil {
			continue
		}
		found = true
		cs, err := loadSingleCSV(f)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
		all = append(all, cs...)
	}
	if !found {
		return nil, fmt.Errorf("%w in %s", ErrNoData, dataDir)
	}
	return all, nil
}

func loadSingleCSV(path string) ([]Card, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")] = i
	}

	out := []Card{}
	for _, row := range rows[1:] {
		get := func(name string) string {
			if idx, ok := cols[name]; ok && idx < len(row) {
				return row[idx]
			}
			return ""
		}
		c, ok := cardFromRow(get)
		if !ok {
			continue
		}
		c.Categories = parseListCell(get(colCategories))
		out = append(out, c)
	}
	return out, nil
}
