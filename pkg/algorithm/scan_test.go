package algorithm

import (
	"testing"

	"github.com/henderiw/sortviz/pkg/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepResult struct {
	a, b     int
	seq      sequence.Sequence
	complete bool
}

func trace(t *testing.T, k Kind, seq sequence.Sequence, steps int) []stepResult {
	t.Helper()
	alg, err := New(k, seq, seq.Bounds())
	require.NoError(t, err)

	results := make([]stepResult, 0, steps)
	for i := 0; i < steps; i++ {
		a, b := alg.Step()
		results = append(results, stepResult{a: a, b: b, seq: seq.Clone(), complete: alg.IsComplete()})
	}
	return results
}

func TestBubbleScenario(t *testing.T) {
	got := trace(t, Bubble, sequence.Sequence{3, 1, 2}, 3)
	expected := []stepResult{
		{a: 0, b: 1, seq: sequence.Sequence{1, 3, 2}},
		{a: 1, b: 2, seq: sequence.Sequence{1, 2, 3}},
		{a: 0, b: 1, seq: sequence.Sequence{1, 2, 3}, complete: true},
	}
	assert.Equal(t, expected, got)
}

func TestCocktailScenario(t *testing.T) {
	// forward pass carries 4 up, backward pass carries 1 down
	got := trace(t, Cocktail, sequence.Sequence{2, 4, 1, 3}, 5)
	expected := []stepResult{
		{a: 0, b: 1, seq: sequence.Sequence{2, 4, 1, 3}},
		{a: 1, b: 2, seq: sequence.Sequence{2, 1, 4, 3}},
		{a: 2, b: 3, seq: sequence.Sequence{2, 1, 3, 4}},
		{a: 1, b: 2, seq: sequence.Sequence{2, 1, 3, 4}},
		{a: 0, b: 1, seq: sequence.Sequence{1, 2, 3, 4}},
	}
	assert.Equal(t, expected, got)
}

func TestSelectionScenario(t *testing.T) {
	got := trace(t, Selection, sequence.Sequence{3, 1, 2}, 5)
	expected := []stepResult{
		{a: 1, b: 0, seq: sequence.Sequence{3, 1, 2}},
		{a: 2, b: 1, seq: sequence.Sequence{3, 1, 2}},
		{a: 0, b: 1, seq: sequence.Sequence{1, 3, 2}},
		{a: 2, b: 1, seq: sequence.Sequence{1, 3, 2}},
		{a: 1, b: 2, seq: sequence.Sequence{1, 2, 3}, complete: true},
	}
	assert.Equal(t, expected, got)
}

func TestInsertionScenario(t *testing.T) {
	got := trace(t, Insertion, sequence.Sequence{3, 1, 2}, 6)
	expected := []stepResult{
		// shift 3 right, the key 1 moves with it
		{a: 0, b: 1, seq: sequence.Sequence{1, 3, 2}},
		// insert key 1
		{a: 0, b: 1, seq: sequence.Sequence{1, 3, 2}},
		// advance to key 2
		{a: 1, b: 2, seq: sequence.Sequence{1, 3, 2}},
		{a: 1, b: 2, seq: sequence.Sequence{1, 2, 3}},
		{a: 1, b: 2, seq: sequence.Sequence{1, 2, 3}},
		{a: 2, b: 2, seq: sequence.Sequence{1, 2, 3}, complete: true},
	}
	assert.Equal(t, expected, got)
}

func TestCombGap(t *testing.T) {
	cases := map[string]struct {
		size        int
		expectedGap int
	}{
		"One":     {size: 1, expectedGap: 0},
		"Two":     {size: 2, expectedGap: 1},
		"Ten":     {size: 10, expectedGap: 8},
		"Hundred": {size: 100, expectedGap: 83},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			seq := sequence.New(tc.size)
			alg, err := New(Comb, seq, seq.Bounds())
			require.NoError(t, err)
			assert.Equal(t, tc.expectedGap, alg.(*combSort).gap)
		})
	}
}

func TestCombRepeatsGapOnePass(t *testing.T) {
	// gap starts at 1 for two elements; the swapping pass is followed by a
	// clean pass before the gap may fall to zero
	got := trace(t, Comb, sequence.Sequence{2, 1}, 4)
	expected := []stepResult{
		{a: 0, b: 1, seq: sequence.Sequence{1, 2}},
		{a: 1, b: 1, seq: sequence.Sequence{1, 2}},
		{a: 0, b: 1, seq: sequence.Sequence{1, 2}},
		{a: 1, b: 1, seq: sequence.Sequence{1, 2}, complete: true},
	}
	assert.Equal(t, expected, got)
}

func TestOddEvenScenario(t *testing.T) {
	got := trace(t, OddEven, sequence.Sequence{4, 3, 2, 1}, 4)
	expected := []stepResult{
		{a: 2, b: 3, seq: sequence.Sequence{3, 4, 1, 2}},
		{a: 1, b: 2, seq: sequence.Sequence{3, 1, 4, 2}},
		{a: 2, b: 3, seq: sequence.Sequence{1, 3, 2, 4}},
		{a: 1, b: 2, seq: sequence.Sequence{1, 2, 3, 4}, complete: true},
	}
	assert.Equal(t, expected, got)
}
