package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/komsit37/stockret/pkg/stockret/types"
)

// Source loads raw rows from a specification (e.g., a file path).
type Source interface {
	Load(ctx context.Context, spec any) ([]types.RawRow, error)
}

// decodeFunc parses one file into rows.
type decodeFunc func(path string) ([]types.RawRow, error)

var decoders = map[string]decodeFunc{
	".csv":  readCSV,
	".xlsx": readXLSX,
	".yaml": readYAML,
	".yml":  readYAML,
}

// UnsupportedFormatError reports a file extension no decoder handles.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported input format %q (want .csv, .xlsx, .yaml or .yml)", e.Path)
}

// FileSource loads rows from a file, picking the decoder by extension, or
// from every supported file beneath a directory.
type FileSource struct{}

// Load expects spec to be a string filepath.
func (FileSource) Load(ctx context.Context, spec any) ([]types.RawRow, error) {
	path, ok := spec.(string)
	if !ok {
		return nil, fmt.Errorf("file source expects filepath string spec, got %T", spec)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return decodeFile(path)
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := decoders[strings.ToLower(filepath.Ext(d.Name()))]; ok {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var all []types.RawRow
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := decodeFile(f)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}
	return all, nil
}

func decodeFile(path string) ([]types.RawRow, error) {
	dec, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, &UnsupportedFormatError{Path: path}
	}
	rows, err := dec(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// rowFromCells pairs header names with cells. Cells past the end of a short
// row are left out so they read as absent columns.
func rowFromCells(header, cells []string) types.RawRow {
	row := make(types.RawRow, len(header))
	for i, h := range header {
		if h == "" || i >= len(cells) {
			continue
		}
		row[h] = cells[i]
	}
	return row
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
