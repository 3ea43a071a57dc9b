// Package positional distributes the positional tokens collected during a
// command-line scan over the declared positional parameter slots.
package positional

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Slot describes one positional parameter, in declaration order.
type Slot struct {
	Name       string
	Optional   bool // may be left without a word
	Repeatable bool // absorbs every word not claimed by another slot
}

// RequiredError reports a mandatory slot left without a word.
type RequiredError struct {
	Name string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("param %q is required", e.Name)
}

// ExtraError reports words left over once every slot has been served.
type ExtraError struct {
	Word string
}

func (e *ExtraError) Error() string {
	return fmt.Sprintf("extra param %q", e.Word)
}

// Distribute assigns words to slots and returns one word list per slot,
// indexed like the input slots. Mandatory slots are reserved one word each
// before any optional slot is served; remaining words then go to optional
// slots in declaration order, one each; whatever is still left is absorbed
// by the repeatable slot. Words keep their command-line order, so each slot
// receives a contiguous run.
func Distribute(slots []Slot, words []string) ([][]string, error) {
	mandatory := 0
	for _, slot := range slots {
		if !slot.Optional {
			mandatory++
		}
	}

	if len(words) < mandatory {
		return nil, &RequiredError{Name: firstUnfilled(slots, len(words))}
	}

	counts := make([]int, len(slots))
	extras := len(words) - mandatory

	for i, slot := range slots {
		if !slot.Optional {
			counts[i] = 1
		}
	}

	for i, slot := range slots {
		if slot.Optional && extras > 0 {
			counts[i] = 1
			extras--
		}
	}

	if extras > 0 {
		rep := slices.IndexFunc(slots, func(s Slot) bool { return s.Repeatable })
		if rep < 0 {
			return nil, &ExtraError{Word: words[len(words)-extras]}
		}

		counts[rep] += extras
	}

	bound := make([][]string, len(slots))
	next := 0

	for i, count := range counts {
		if count == 0 {
			continue
		}

		bound[i] = words[next : next+count]
		next += count
	}

	return bound, nil
}

// firstUnfilled names the mandatory slot that the n available words
// cannot reach: words cover mandatory slots in declaration order.
func firstUnfilled(slots []Slot, n int) string {
	filled := 0

	for _, slot := range slots {
		if slot.Optional {
			continue
		}

		if filled == n {
			return slot.Name
		}

		filled++
	}

	return ""
}
