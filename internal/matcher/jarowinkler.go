package matcher

// Winkler prefix parameters.
const (
	prefixScale    = 0.1
	maxPrefix      = 4
	boostThreshold = 0.7
)

// Jaro returns the Jaro similarity of a and b, compared rune by rune.
// Two empty strings are identical (1.0); one empty string scores 0.
func Jaro(a, b string) float64 {
	ar, br := []rune(a), []rune(b)
	if len(ar) == 0 && len(br) == 0 {
		return 1.0
	}
	if len(ar) == 0 || len(br) == 0 {
		return 0.0
	}

	window := max(len(ar), len(br))/2 - 1
	if window < 0 {
		window = 0
	}

	aMatched := make([]bool, len(ar))
	bMatched := make([]bool, len(br))
	matches := 0
	for i, r := range ar {
		lo := max(0, i-window)
		hi := min(len(br), i+window+1)
		for j := lo; j < hi; j++ {
			if bMatched[j] || br[j] != r {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0.0
	}

	// Half the number of matched runes that appear out of order.
	transpositions := 0
	k := 0
	for i, r := range ar {
		if !aMatched[i] {
			continue
		}
		for !bMatched[k] {
			k++
		}
		if r != br[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	t := float64(transpositions / 2)
	return (m/float64(len(ar)) + m/float64(len(br)) + (m-t)/m) / 3.0
}

// JaroWinkler returns the Jaro-Winkler similarity of a and b. Strings that
// share a prefix of up to four runes score higher than their plain Jaro
// similarity once that similarity exceeds 0.7.
func JaroWinkler(a, b string) float64 {
	sim := Jaro(a, b)
	if sim <= boostThreshold {
		return sim
	}

	ar, br := []rune(a), []rune(b)
	prefix := 0
	for prefix < maxPrefix && prefix < len(ar) && prefix < len(br) && ar[prefix] == br[prefix] {
		prefix++
	}

	sim += prefixScale * float64(prefix) * (1.0 - sim)
	if sim > 1.0 {
		return 1.0
	}
	return sim
}
