package typing

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Result is the outcome of one typing test.
type Result struct {
	WPM          float64
	CPM          float64
	Accuracy     float64
	Duration     time.Duration
	ErrorCount   int
	TotalChars   int
	CorrectChars int
}

// Calculate scores an attempt. Speed is measured on the target text;
// accuracy compares typed runes position by position. errorCount is the number
// of wrong keystrokes counted while typing.
func Calculate(target, typed string, d time.Duration, errorCount int) Result {
	secs := d.Seconds()
	var wpm, cpm float64
	if secs > 0 {
		wpm = float64(len(strings.Fields(target))) / secs * 60
		cpm = float64(utf8.RuneCountInString(target)) / secs * 60
	}

	correct, total := compareRunes(target, typed)
	accuracy := 100.0
	if total > 0 {
		accuracy = 100 * float64(correct) / float64(total)
	}

	return Result{
		WPM:          wpm,
		CPM:          cpm,
		Accuracy:     accuracy,
		Duration:     d,
		ErrorCount:   errorCount,
		TotalChars:   total,
		CorrectChars: correct,
	}
}

// compareRunes counts typed runes that match the target at the same
// position, and the number of typed runes.
func compareRunes(target, typed string) (correct, total int) {
	tr := []rune(target)
	for i, r := range []rune(typed) {
		if i < len(tr) && tr[i] == r {
			correct++
		}
		total++
	}
	return correct, total
}

// Rating returns a short verdict on the result.
func (r Result) Rating() string {
	switch {
	case r.Accuracy >= 98 && r.WPM >= 60:
		return "PERFECT! Outstanding performance!"
	case r.Accuracy >= 95 && r.WPM >= 45:
		return "VERY GOOD! Strong performance!"
	case r.Accuracy >= 90 && r.WPM >= 30:
		return "GOOD! Keep it up!"
	default:
		return "Practice makes perfect!"
	}
}

// QualifiesForHighscore reports whether the accuracy is at least minAccuracy percent.
func (r Result) QualifiesForHighscore(minAccuracy float64) bool {
	return r.Accuracy >= minAccuracy
}

// DurationString formats the duration in seconds with two decimals.
func (r Result) DurationString() string {
	return fmt.Sprintf("%.2fs", r.Duration.Seconds())
}

// RealtimeAccuracy returns the percentage of typed runes that match the
// target so far. It is 100 before anything is typed.
func RealtimeAccuracy(target, typed string) float64 {
	correct, total := compareRunes(target, typed)
	if total == 0 {
		return 100.0
	}
	return 100 * float64(correct) / float64(total)
}

// Progress returns how much of the target has been typed, in percent.
func Progress(target, typed string) float64 {
	n := utf8.RuneCountInString(target)
	if n == 0 {
		return 100.0
	}
	return 100 * float64(utf8.RuneCountInString(typed)) / float64(n)
}
