package learning

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "set.json", `{
		"name": "Test Set",
		"description": "A test learning set",
		"cards": [
			{"front": "Question 1", "back": "Answer 1", "tags": ["test"]}
		],
		"questions": [
			{"question": "2+2?", "correct_answer": "4", "alternatives": ["3", "5"], "explanation": "arithmetic"}
		]
	}`)

	set, err := LoadJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Set", set.Name)
	assert.Equal(t, "A test learning set", set.Description)
	require.Len(t, set.Cards, 1)
	assert.Equal(t, "Question 1", set.Cards[0].Front)
	assert.Equal(t, []string{"test"}, set.Cards[0].Tags)
	require.Len(t, set.Questions, 1)
	assert.Equal(t, "4", set.Questions[0].CorrectAnswer)
	assert.Equal(t, "arithmetic", set.Questions[0].Explanation)
}

func TestLoadJSON_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadJSON(filepath.Join(dir, "nope.json"))
		var le *LoadError
		require.ErrorAs(t, err, &le)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeFile(t, dir, "bad.json", `{"name": `)
		_, err := LoadJSON(path)
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, path, fe.Path)
		assert.NotNil(t, fe.Unwrap())
	})

	t.Run("empty set", func(t *testing.T) {
		path := writeFile(t, dir, "empty.json", `{"name": "Empty"}`)
		_, err := LoadJSON(path)
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Contains(t, fe.Reason, "no cards or questions")
	})
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cards.csv",
		"front,back,tags\n\"Q1\",\"A1\",\"tag1;tag2\"\n\"Q2\",\"A2\",\"\"\nQ3, A3\n")

	set, err := LoadCSV(path, "Test")
	require.NoError(t, err)

	assert.Equal(t, "Test", set.Name)
	require.Len(t, set.Cards, 3)
	assert.Equal(t, Card{Front: "Q1", Back: "A1", Tags: []string{"tag1", "tag2"}}, set.Cards[0])
	assert.Empty(t, set.Cards[1].Tags)
	assert.Equal(t, "A3", set.Cards[2].Back)
}

func TestLoadCSV_QuotedComma(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cards.csv",
		"front,back\n\"Hello, world\",\"Hallo, Welt\"\n")

	set, err := LoadCSV(path, "Greetings")
	require.NoError(t, err)
	require.Len(t, set.Cards, 1)
	assert.Equal(t, "Hello, world", set.Cards[0].Front)
	assert.Equal(t, "Hallo, Welt", set.Cards[0].Back)
}

func TestLoadCSV_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("short record", func(t *testing.T) {
		path := writeFile(t, dir, "short.csv", "front,back\nonly-front\n")
		_, err := LoadCSV(path, "x")
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Contains(t, fe.Reason, "line 2")
	})

	t.Run("header only", func(t *testing.T) {
		path := writeFile(t, dir, "header.csv", "front,back\n")
		_, err := LoadCSV(path, "x")
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCSV(filepath.Join(dir, "missing.csv"), "x")
		var le *LoadError
		require.ErrorAs(t, err, &le)
	})
}

func TestLoadAuto(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "a.JSON", `{"name": "J", "cards": [{"front": "f", "back": "b"}]}`)
	csvPath := writeFile(t, dir, "vocab.csv", "front,back\nHund,dog\n")
	mdPath := writeFile(t, dir, "notes.markdown", "# Notes\n\nFront: a\nBack: b\n")
	txtPath := writeFile(t, dir, "notes.txt", "Front: a\nBack: b\n")

	set, err := LoadAuto(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "J", set.Name)

	set, err = LoadAuto(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "vocab", set.Name)

	set, err = LoadAuto(mdPath)
	require.NoError(t, err)
	assert.Equal(t, "Notes", set.Name)

	_, err = LoadAuto(txtPath)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Reason, "unsupported")
}

func TestListSets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", "")
	writeFile(t, dir, "a.json", "")
	writeFile(t, dir, "c.md", "")
	writeFile(t, dir, "readme.txt", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

	paths, err := ListSets(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.csv"),
		filepath.Join(dir, "c.md"),
	}, paths)
}

func TestListSets_MissingDir(t *testing.T) {
	paths, err := ListSets(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, paths)
}
