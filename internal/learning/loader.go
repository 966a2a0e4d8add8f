package learning

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Extensions recognized by LoadAuto and ListSets.
var Extensions = []string{".json", ".csv", ".md", ".markdown"}

// LoadJSON reads a set from a JSON document.
func LoadJSON(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var set Set
	if err := json.NewDecoder(f).Decode(&set); err != nil {
		return nil, &FormatError{Path: path, Reason: "decode JSON", Err: err}
	}
	if set.IsEmpty() {
		return nil, &FormatError{Path: path, Reason: "learning set contains no cards or questions"}
	}
	return &set, nil
}

// LoadCSV reads cards from a CSV file with a header row followed by
// front,back[,tags] records. Tags are separated by semicolons.
func LoadCSV(path, name string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	set := &Set{Name: name}
	header := true
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &FormatError{Path: path, Reason: "parse CSV", Err: err}
		}
		if header {
			header = false
			continue
		}
		if len(rec) < 2 {
			line, _ := r.FieldPos(0)
			return nil, &FormatError{Path: path, Reason: fmt.Sprintf("line %d: expected front,back[,tags]", line)}
		}

		card := Card{
			Front: strings.TrimSpace(rec[0]),
			Back:  strings.TrimSpace(rec[1]),
		}
		if len(rec) > 2 {
			card.Tags = splitTags(rec[2])
		}
		set.Cards = append(set.Cards, card)
	}

	if set.IsEmpty() {
		return nil, &FormatError{Path: path, Reason: "no cards found in CSV file"}
	}
	return set, nil
}

func splitTags(s string) []string {
	var tags []string
	for t := range strings.SplitSeq(s, ";") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// LoadAuto picks a loader from the file extension. CSV sets are named after
// the file.
func LoadAuto(path string) (*Set, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return LoadJSON(path)
	case ".csv":
		return LoadCSV(path, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	case ".md", ".markdown":
		return LoadMarkdown(path)
	default:
		return nil, &FormatError{Path: path, Reason: fmt.Sprintf("unsupported file extension %q", ext)}
	}
}

// ListSets returns the learning-set files directly inside dir, sorted by
// name. A missing directory yields no files and no error.
func ListSets(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list learning sets: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if slices.Contains(Extensions, strings.ToLower(filepath.Ext(e.Name()))) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(paths)
	return paths, nil
}
