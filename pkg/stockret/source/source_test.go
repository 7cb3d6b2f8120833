package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/komsit37/stockret/pkg/stockret/types"
)

const scenarioCSV = `Stock,Sector,PriceStart,PriceEnd
A,Tech,100,120
B, Tech ,50,40
C,Energy,abc,30
D,Energy,10,-5
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDecodeCSV(t *testing.T) {
	rows, err := decodeCSV(strings.NewReader(scenarioCSV))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, types.RawRow{"Stock": "A", "Sector": "Tech", "PriceStart": "100", "PriceEnd": "120"}, rows[0])
	assert.Equal(t, " Tech ", rows[1]["Sector"], "values are not trimmed by the source")
	assert.Equal(t, "abc", rows[2]["PriceStart"])
}

func TestDecodeCSVEdgeCases(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		rows, err := decodeCSV(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("header only", func(t *testing.T) {
		rows, err := decodeCSV(strings.NewReader("Stock,Sector,PriceStart,PriceEnd\n"))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("bom and short rows", func(t *testing.T) {
		rows, err := decodeCSV(strings.NewReader("\ufeffStock,Sector,PriceStart,PriceEnd\nA,Tech\n\nB,X,1,2,extra\n"))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, types.RawRow{"Stock": "A", "Sector": "Tech"}, rows[0])
		assert.Equal(t, "2", rows[1]["PriceEnd"])
	})

	t.Run("bare quote keeps the file", func(t *testing.T) {
		rows, err := decodeCSV(strings.NewReader("Stock,Sector,PriceStart,PriceEnd\nA,Tech,100,120\nB \"x\",Tech,50,40\nC,Tech,1,2\n"))
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "A", rows[0]["Stock"])
		assert.Equal(t, `B "x"`, rows[1]["Stock"])
		assert.Equal(t, "40", rows[1]["PriceEnd"])
		assert.Equal(t, "C", rows[2]["Stock"])
	})

	t.Run("quoted fields", func(t *testing.T) {
		rows, err := decodeCSV(strings.NewReader("Stock,Sector,PriceStart,PriceEnd\n\"Acme, Inc\",\"Consumer \"\"Staples\"\"\",1,2\n"))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Acme, Inc", rows[0]["Stock"])
		assert.Equal(t, `Consumer "Staples"`, rows[0]["Sector"])
	})
}

func TestFileSourceCSV(t *testing.T) {
	p := writeFile(t, t.TempDir(), "prices.CSV", scenarioCSV)
	rows, err := FileSource{}.Load(context.Background(), p)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestFileSourceXLSX(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "prices.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	data := [][]any{
		{"Stock", "Sector", "PriceStart", "PriceEnd"},
		{"A", "Tech", 100, 120},
		{"B", "Tech", "50", "forty"},
		{},
		{"C", "Energy", 10.5},
	}
	for i, r := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := r
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(p))
	require.NoError(t, f.Close())

	rows, err := FileSource{}.Load(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, types.RawRow{"Stock": "A", "Sector": "Tech", "PriceStart": "100", "PriceEnd": "120"}, rows[0])
	assert.Equal(t, "forty", rows[1]["PriceEnd"])
	_, hasEnd := rows[2]["PriceEnd"]
	assert.False(t, hasEnd)
	assert.Equal(t, "10.5", rows[2]["PriceStart"])
}

func TestFileSourceYAML(t *testing.T) {
	dir := t.TempDir()

	t.Run("list", func(t *testing.T) {
		p := writeFile(t, dir, "list.yaml", `
- Stock: A
  Sector: Tech
  PriceStart: 100
  PriceEnd: 120.5
- stock: B
  price_start: "50"
  price_end:
`)
		rows, err := FileSource{}.Load(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, types.RawRow{"Stock": "A", "Sector": "Tech", "PriceStart": "100", "PriceEnd": "120.5"}, rows[0])
		assert.Equal(t, types.RawRow{"Stock": "B", "PriceStart": "50"}, rows[1])
	})

	t.Run("rows", func(t *testing.T) {
		p := writeFile(t, dir, "rows.yml", "rows:\n  - {Stock: A, Sector: Tech, PriceStart: 1, PriceEnd: 2}\n")
		rows, err := FileSource{}.Load(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "2", rows[0]["PriceEnd"])
	})

	t.Run("watchlist groups become sectors", func(t *testing.T) {
		p := writeFile(t, dir, "wl.yaml", `
watchlist:
  - name: Tech
    watchlist:
      - sym: AAPL
      - sym: XOM
        sector: Energy
  - sym: SPY
`)
		rows, err := FileSource{}.Load(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, types.RawRow{"Stock": "AAPL", "Sector": "Tech"}, rows[0])
		assert.Equal(t, types.RawRow{"Stock": "XOM", "Sector": "Energy"}, rows[1])
		assert.Equal(t, types.RawRow{"Stock": "SPY"}, rows[2])
	})

	t.Run("invalid shape", func(t *testing.T) {
		p := writeFile(t, dir, "bad.yaml", "foo: bar\n")
		_, err := FileSource{}.Load(context.Background(), p)
		assert.Error(t, err)
	})
}

func TestParseYAMLAliasPrecedence(t *testing.T) {
	doc := []byte("- {sym: B, Stock: A, stock: C, end: 9, price_end: 11, PriceStart: 10, Sector: Tech}\n")
	want := types.RawRow{"Stock": "A", "Sector": "Tech", "PriceStart": "10", "PriceEnd": "9"}
	for i := 0; i < 100; i++ {
		rows, err := parseYAML(doc)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, want, rows[0], "run %d", i)
	}
}

func TestFileSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", "Stock,Sector,PriceStart,PriceEnd\nB,X,1,2\n")
	writeFile(t, dir, "a.csv", "Stock,Sector,PriceStart,PriceEnd\nA,X,1,2\n")
	writeFile(t, dir, "nested/c.yaml", "- {Stock: C, Sector: Y, PriceStart: 1, PriceEnd: 3}\n")
	writeFile(t, dir, "notes.txt", "ignored")

	rows, err := FileSource{}.Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "A", rows[0]["Stock"])
	assert.Equal(t, "B", rows[1]["Stock"])
	assert.Equal(t, "C", rows[2]["Stock"])
}

func TestFileSourceErrors(t *testing.T) {
	_, err := FileSource{}.Load(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	p := writeFile(t, t.TempDir(), "prices.txt", "x")
	_, err = FileSource{}.Load(context.Background(), p)
	var ufe *UnsupportedFormatError
	assert.True(t, errors.As(err, &ufe))

	_, err = FileSource{}.Load(context.Background(), 42)
	assert.Error(t, err)
}
