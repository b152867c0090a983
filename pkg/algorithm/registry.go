package algorithm

import (
	"fmt"
	"strings"

	"github.com/henderiw/sortviz/pkg/sequence"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Kind selects an algorithm.
type Kind string

const (
	Bubble    Kind = "bubble"
	Cocktail  Kind = "cocktail"
	Insertion Kind = "insertion"
	Selection Kind = "selection"
	Merge     Kind = "merge"
	Comb      Kind = "comb"
	OddEven   Kind = "odd-even"
	Bogo      Kind = "bogo"
)

// label keys attached to every kind
const (
	LabelFamily     = "family"
	LabelComplexity = "complexity"
	LabelStable     = "stable"
	LabelCompletion = "completion"
	LabelRandomized = "randomized"
)

// completion label values
const (
	CompletionSelf     = "self"
	CompletionSequence = "sequence"
)

type constructor func(seq sequence.Sequence, rng sequence.Range, o *options) Algorithm

type registration struct {
	fullName string
	labels   labels.Set
	new      constructor
}

var registry = map[Kind]registration{
	Bubble: {
		fullName: "Bubble",
		labels:   kindLabels("exchange", "quadratic", true, CompletionSelf, false),
		new:      newBubbleSort,
	},
	Cocktail: {
		fullName: "Cocktail Shaker",
		labels:   kindLabels("exchange", "quadratic", true, CompletionSelf, false),
		new:      newCocktailSort,
	},
	Insertion: {
		fullName: "Insertion",
		labels:   kindLabels("insertion", "quadratic", true, CompletionSelf, false),
		new:      newInsertionSort,
	},
	Selection: {
		fullName: "Selection",
		labels:   kindLabels("selection", "quadratic", false, CompletionSelf, false),
		new:      newSelectionSort,
	},
	Merge: {
		fullName: "Merge",
		labels:   kindLabels("merge", "linearithmic", true, CompletionSelf, false),
		new: func(seq sequence.Sequence, rng sequence.Range, o *options) Algorithm {
			return newMergeSort(seq, rng, o)
		},
	},
	Comb: {
		fullName: "Comb",
		labels:   kindLabels("exchange", "quadratic", false, CompletionSelf, false),
		new:      newCombSort,
	},
	OddEven: {
		fullName: "Odd Even",
		labels:   kindLabels("exchange", "quadratic", true, CompletionSequence, false),
		new:      newOddEvenSort,
	},
	Bogo: {
		fullName: "Bogo",
		labels:   kindLabels("random", "unbounded", false, CompletionSequence, true),
		new:      newBogoSort,
	},
}

func kindLabels(family, complexity string, stable bool, completion string, randomized bool) labels.Set {
	return labels.Set{
		LabelFamily:     family,
		LabelComplexity: complexity,
		LabelStable:     fmt.Sprint(stable),
		LabelCompletion: completion,
		LabelRandomized: fmt.Sprint(randomized),
	}
}

// ParseKind accepts a kind name in any case; "oddeven" is accepted for OddEven.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "oddeven" || k == "odd_even" {
		k = OddEven
	}
	if _, ok := registry[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

func (k Kind) String() string { return string(k) }

func (k Kind) FullName() string {
	if reg, ok := registry[k]; ok {
		return reg.fullName
	}
	return string(k)
}

// Kinds returns every registered kind in name order.
func Kinds() []Kind {
	return sets.List(sets.KeySet(registry))
}

// Labels returns a copy of the labels of k.
func Labels(k Kind) labels.Set {
	reg, ok := registry[k]
	if !ok {
		return nil
	}
	return labels.Merge(reg.labels, nil)
}

// Select returns the kinds whose labels match the selector, in name order.
func Select(selector labels.Selector) []Kind {
	kinds := []Kind{}
	for _, k := range Kinds() {
		if selector.Matches(registry[k].labels) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// New builds an algorithm of the given kind over seq[rng.Lo..rng.Hi].
func New(kind Kind, seq sequence.Sequence, rng sequence.Range, opts ...Option) (Algorithm, error) {
	reg, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	if !rng.IsValid() || !rng.CoveredBy(seq.Bounds()) {
		return nil, fmt.Errorf("%w: %s not within %s", ErrInvalidRange, rng, seq.Bounds())
	}
	return reg.new(seq, rng, newOptions(opts)), nil
}
