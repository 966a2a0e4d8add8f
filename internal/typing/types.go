// Package typing generates typing-test texts and scores attempts.
package typing

import (
	"fmt"
	"strings"
)

// Language selects the word list used for a typing test.
type Language string

const (
	English Language = "en"
	German  Language = "de"
)

// Languages lists the supported languages in menu order.
var Languages = []Language{English, German}

// ParseLanguage accepts a language code or name, case-insensitively.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english":
		return English, nil
	case "de", "german", "deutsch":
		return German, nil
	default:
		return "", fmt.Errorf("unknown language %q", s)
	}
}

// Code returns the two-letter language code.
func (l Language) Code() string { return string(l) }

// Name returns the language's display name.
func (l Language) Name() string {
	switch l {
	case German:
		return "Deutsch"
	case English:
		return "English"
	default:
		return string(l)
	}
}

func (l Language) String() string { return l.Name() }

// WordFile returns the name of the word list file for the language.
func (l Language) WordFile() string {
	switch l {
	case German:
		return "german_words.json"
	default:
		return "english_words.json"
	}
}

// Difficulty controls how many words a test has and how long they may be.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the difficulties in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty accepts English or German names or the numbers 1 to 3.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "einfach", "1":
		return Easy, nil
	case "medium", "mittel", "2":
		return Medium, nil
	case "hard", "schwer", "3":
		return Hard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return string(d)
	}
}

// WordCount returns the number of words in a test.
func (d Difficulty) WordCount() int {
	switch d {
	case Easy:
		return 15
	case Hard:
		return 50
	default:
		return 30
	}
}

// MaxWordLength returns the longest word, in runes, a test may contain.
func (d Difficulty) MaxWordLength() int {
	switch d {
	case Easy:
		return 6
	case Hard:
		return 15
	default:
		return 9
	}
}

// AllowedCEFR returns the CEFR levels preferred for the difficulty.
func (d Difficulty) AllowedCEFR() []string {
	switch d {
	case Easy:
		return []string{"A1", "A2"}
	case Hard:
		return []string{"B2", "C1", "C2"}
	default:
		return []string{"A2", "B1", "B2"}
	}
}

// Description returns a one-line summary for menus.
func (d Difficulty) Description() string {
	levels := d.AllowedCEFR()
	return fmt.Sprintf("%s - %d words (%s-%s)", d, d.WordCount(), levels[0], levels[len(levels)-1])
}
