package app

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen/quotesync/internal/domain"
)

// CompareMode selects how a sync cycle decides whether local and remote differ.
type CompareMode string

const (
	// CompareMultiset treats the texts as an unordered multiset.
	CompareMultiset CompareMode = "multiset"

	// CompareTextJoin compares the comma-joined texts. Order matters and a
	// comma inside a text can make two different lists look equal.
	CompareTextJoin CompareMode = "textjoin"
)

// ParseCompareMode converts a configuration value into a CompareMode.
// An empty value selects CompareMultiset.
func ParseCompareMode(s string) (CompareMode, error) {
	switch CompareMode(s) {
	case "", CompareMultiset:
		return CompareMultiset, nil
	case CompareTextJoin:
		return CompareTextJoin, nil
	default:
		return "", domain.NewValidationErrorWithValue("compare_mode",
			fmt.Sprintf("must be %q or %q", CompareMultiset, CompareTextJoin), s)
	}
}

// SameQuotes reports whether local and remote hold the same texts under mode.
// Categories are ignored.
func SameQuotes(mode CompareMode, local, remote []domain.Quote) bool {
	if mode == CompareTextJoin {
		return strings.Join(domain.Texts(local), ",") == strings.Join(domain.Texts(remote), ",")
	}

	if len(local) != len(remote) {
		return false
	}

	counts := make(map[string]int, len(local))
	for _, q := range local {
		counts[q.Text]++
	}

	for _, q := range remote {
		counts[q.Text]--
		if counts[q.Text] < 0 {
			return false
		}
	}

	return true
}
