package typing

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWords(t *testing.T, dir string, lang Language, words []Word) {
	t.Helper()
	data, err := json.Marshal(words)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, lang.WordFile()), data, 0o644))
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 42))
}

func TestLoader_FiltersByLevelAndLength(t *testing.T) {
	dir := t.TempDir()
	writeWords(t, dir, English, []Word{
		{Word: "cat", CEFRLevel: "A1"},
		{Word: "dog", CEFRLevel: "a2"},
		{Word: "elephant", CEFRLevel: "A1"},
		{Word: "sun", CEFRLevel: "C1"},
		{Word: "", CEFRLevel: "A1"},
	})

	l := &Loader{DataDir: dir}
	words, err := l.Load(English, Easy, newRand())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"cat", "dog"}, words)
}

func TestLoader_FallsBackToLengthOnly(t *testing.T) {
	dir := t.TempDir()
	writeWords(t, dir, English, []Word{
		{Word: "cat"},
		{Word: "house", CEFRLevel: "C2"},
		{Word: "encyclopedia"},
	})

	l := &Loader{DataDir: dir}
	words, err := l.Load(English, Easy, newRand())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"cat", "house"}, words)
}

func TestLoader_TakesWordCount(t *testing.T) {
	dir := t.TempDir()
	var list []Word
	for i := range 100 {
		list = append(list, Word{Word: strings.Repeat("a", 1+i%5), CEFRLevel: "A1"})
	}
	writeWords(t, dir, English, list)

	l := &Loader{DataDir: dir}
	words, err := l.Load(English, Easy, newRand())
	require.NoError(t, err)
	assert.Len(t, words, Easy.WordCount())
}

func TestLoader_GermanCapitalization(t *testing.T) {
	dir := t.TempDir()
	writeWords(t, dir, German, []Word{
		{Word: "Haus", CEFRLevel: "A1", CapitalizationSensitive: true},
		{Word: "Gehen", CEFRLevel: "A1"},
	})

	l := &Loader{DataDir: dir}
	words, err := l.Load(German, Easy, newRand())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Haus", "gehen"}, words)
}

func TestLoader_LengthCountsRunes(t *testing.T) {
	dir := t.TempDir()
	// Six runes, eight bytes.
	writeWords(t, dir, German, []Word{{Word: "größer", CEFRLevel: "A2"}})

	l := &Loader{DataDir: dir}
	words, err := l.Load(German, Easy, newRand())
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, 6, utf8.RuneCountInString(words[0]))
}

func TestLoader_NoMatchingWords(t *testing.T) {
	dir := t.TempDir()
	writeWords(t, dir, English, []Word{{Word: "extraordinary"}})

	l := &Loader{DataDir: dir}
	_, err := l.Load(English, Easy, newRand())
	assert.True(t, errors.Is(err, ErrNoMatchingWords))
}

func TestLoader_MissingFile(t *testing.T) {
	l := &Loader{DataDir: t.TempDir()}
	_, err := l.Load(English, Easy, newRand())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoader_UsesCache(t *testing.T) {
	dir := t.TempDir()
	writeWords(t, dir, English, []Word{{Word: "cat", CEFRLevel: "A1"}})

	l := &Loader{DataDir: dir, Cache: NewWordCache()}
	_, err := l.Load(English, Easy, newRand())
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(dir, English.WordFile())))

	words, err := l.Load(English, Easy, newRand())
	require.NoError(t, err, "second load should be served from the cache")
	assert.Equal(t, []string{"cat"}, words)
}

func TestGenerateText(t *testing.T) {
	dir := t.TempDir()
	writeWords(t, dir, English, []Word{
		{Word: "cat", CEFRLevel: "A1"},
		{Word: "dog", CEFRLevel: "A1"},
	})

	l := &Loader{DataDir: dir}
	text, err := l.GenerateText(English, Easy, newRand())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cat", "dog"}, strings.Fields(text))
	assert.Equal(t, 1, strings.Count(text, " "))
}
