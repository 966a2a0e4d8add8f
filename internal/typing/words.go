package typing

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"
)

// ErrNoMatchingWords is returned when no word in the list fits the
// difficulty.
var ErrNoMatchingWords = errors.New("no words match the difficulty")

// Word is an entry of a word list file.
type Word struct {
	Word                    string `json:"word"`
	UsefulForFlashcard      bool   `json:"useful_for_flashcard"`
	CEFRLevel               string `json:"cefr_level"`
	POS                     string `json:"pos"`
	Frequency               int    `json:"word_frequency"`
	CapitalizationSensitive bool   `json:"capitalization_sensitive"`
}

// WordCache keeps parsed word lists per language. It is safe for concurrent
// use. The zero value is ready to use.
type WordCache struct {
	mu    sync.Mutex
	lists map[Language][]Word
}

// NewWordCache creates an empty cache.
func NewWordCache() *WordCache {
	return &WordCache{}
}

func (c *WordCache) get(lang Language) ([]Word, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	words, ok := c.lists[lang]
	return words, ok
}

func (c *WordCache) put(lang Language, words []Word) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lists == nil {
		c.lists = make(map[Language][]Word)
	}
	c.lists[lang] = words
}

// Loader reads word lists from DataDir. Cache may be nil, in which case
// every call reads the file again.
type Loader struct {
	DataDir string
	Cache   *WordCache
}

// Words returns the full word list for lang.
func (l *Loader) Words(lang Language) ([]Word, error) {
	if l.Cache != nil {
		if words, ok := l.Cache.get(lang); ok {
			return words, nil
		}
	}

	path := filepath.Join(l.DataDir, lang.WordFile())
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	var words []Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parse word list %s: %w", path, err)
	}

	if l.Cache != nil {
		l.Cache.put(lang, words)
	}
	return words, nil
}

// Load picks diff.WordCount() random words for a test. Words of the
// difficulty's CEFR levels are preferred; when none qualify any word short
// enough is used. German words are lowercased unless marked as
// capitalization-sensitive.
func (l *Loader) Load(lang Language, diff Difficulty, r *rand.Rand) ([]string, error) {
	words, err := l.Words(lang)
	if err != nil {
		return nil, err
	}

	candidates := filterWords(words, lang, diff, true)
	if len(candidates) == 0 {
		candidates = filterWords(words, lang, diff, false)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%s/%s: %w", lang.Code(), diff, ErrNoMatchingWords)
	}

	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates[:min(len(candidates), diff.WordCount())], nil
}

// GenerateText returns a space-separated test text.
func (l *Loader) GenerateText(lang Language, diff Difficulty, r *rand.Rand) (string, error) {
	words, err := l.Load(lang, diff, r)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

func filterWords(words []Word, lang Language, diff Difficulty, byLevel bool) []string {
	levels := diff.AllowedCEFR()
	maxLen := diff.MaxWordLength()

	var out []string
	for _, w := range words {
		text := strings.TrimSpace(w.Word)
		n := utf8.RuneCountInString(text)
		if n == 0 || n > maxLen {
			continue
		}
		if byLevel && !slices.Contains(levels, strings.ToUpper(w.CEFRLevel)) {
			continue
		}
		if lang == German && !w.CapitalizationSensitive {
			text = strings.ToLower(text)
		}
		out = append(out, text)
	}
	return out
}
