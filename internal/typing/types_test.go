package typing

import "testing"

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"en", English, false},
		{"English", English, false},
		{"DE", German, false},
		{"german", German, false},
		{"Deutsch", German, false},
		{" de ", German, false},
		{"fr", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLanguage(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"Einfach", Easy, false},
		{"1", Easy, false},
		{"medium", Medium, false},
		{"mittel", Medium, false},
		{"2", Medium, false},
		{"HARD", Hard, false},
		{"schwer", Hard, false},
		{"3", Hard, false},
		{"4", "", true},
		{"extreme", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDifficultyParameters(t *testing.T) {
	tests := []struct {
		d         Difficulty
		count     int
		maxLen    int
		firstCEFR string
	}{
		{Easy, 15, 6, "A1"},
		{Medium, 30, 9, "A2"},
		{Hard, 50, 15, "B2"},
	}
	for _, tt := range tests {
		if got := tt.d.WordCount(); got != tt.count {
			t.Errorf("%s.WordCount() = %d, want %d", tt.d, got, tt.count)
		}
		if got := tt.d.MaxWordLength(); got != tt.maxLen {
			t.Errorf("%s.MaxWordLength() = %d, want %d", tt.d, got, tt.maxLen)
		}
		if got := tt.d.AllowedCEFR()[0]; got != tt.firstCEFR {
			t.Errorf("%s.AllowedCEFR()[0] = %s, want %s", tt.d, got, tt.firstCEFR)
		}
	}
}

func TestLanguageFiles(t *testing.T) {
	if English.WordFile() != "english_words.json" {
		t.Errorf("English.WordFile() = %s", English.WordFile())
	}
	if German.WordFile() != "german_words.json" {
		t.Errorf("German.WordFile() = %s", German.WordFile())
	}
	if German.Name() != "Deutsch" || German.Code() != "de" {
		t.Errorf("German = (%s, %s)", German.Name(), German.Code())
	}
}

func TestDifficultyDescription(t *testing.T) {
	if got := Easy.Description(); got != "Easy - 15 words (A1-A2)" {
		t.Errorf("Easy.Description() = %q", got)
	}
	if got := Hard.Description(); got != "Hard - 50 words (B2-C2)" {
		t.Errorf("Hard.Description() = %q", got)
	}
}
