package voicing_test

import (
	"math"
	"testing"

	"github.com/polynizer/fretpath/chord"
	"github.com/polynizer/fretpath/voicing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type solverFunc func([]string, chord.Source, ...voicing.Option) (voicing.Result, error)

var solvers = map[string]solverFunc{
	"dynamic":    voicing.Dynamic,
	"exhaustive": voicing.Exhaustive,
	"greedy":     voicing.Greedy,
}

// TestConcreteScenario: a:0 → b:0 costs 0 and beats b:1 (cost 9) for every
// solver, greedy included.
func TestConcreteScenario(t *testing.T) {
	song := []string{"a", "b"}
	for name, solve := range solvers {
		res, err := solve(song, scenario())
		require.NoError(t, err, name)
		assert.Equal(t, []int{0, 0}, res.Path.Variants(), name)
		assert.Equal(t, 0.0, res.Cost, name)
		assert.Equal(t, 0.0, res.Path[0].Cost, name)
		require.NoError(t, voicing.ValidatePath(song, scenario(), res.Path), name)
	}

	alt := voicing.Path{
		{Chord: "a", Variant: 0, Centroid: 2},
		{Chord: "b", Variant: 1, Centroid: 5, Cost: 9},
	}
	assert.Equal(t, 9.0, voicing.PathCost(alt))
	require.NoError(t, voicing.ValidatePath(song, scenario(), alt))
}

// TestNoSolution: a chord without any playable variant makes every solver
// report ErrNoSolution and never a finite cost.
func TestNoSolution(t *testing.T) {
	src := fixed{
		"a": {1, 2, S},
		"x": {S, S, S},
		"b": {3, S, S},
	}
	song := []string{"a", "x", "b"}
	for name, solve := range solvers {
		res, err := solve(song, src)
		assert.ErrorIs(t, err, voicing.ErrNoSolution, name)
		assert.True(t, math.IsInf(res.Cost, 1), name)
		assert.Nil(t, res.Path, name)
		assert.False(t, res.Solved(), name)
	}
}

func TestNoSolution_LastChordDead(t *testing.T) {
	src := fixed{"a": {1, S, S}, "x": {S, S, S}}
	for name, solve := range solvers {
		_, err := solve([]string{"a", "x"}, src)
		assert.ErrorIs(t, err, voicing.ErrNoSolution, name)
	}
}

func TestSingleChordCostsZero(t *testing.T) {
	src := fixed{"a": {S, 4.5, 1.25}}
	for name, solve := range solvers {
		res, err := solve([]string{"a"}, src)
		require.NoError(t, err, name)
		assert.Equal(t, 0.0, res.Cost, name)
		require.Len(t, res.Path, 1, name)
		assert.Equal(t, 1, res.Path[0].Variant, "%s: first playable variant", name)
	}
}

func TestSingleDeadChord(t *testing.T) {
	src := fixed{"x": {S, S, S}}
	for name, solve := range solvers {
		_, err := solve([]string{"x"}, src)
		assert.ErrorIs(t, err, voicing.ErrNoSolution, name)
	}
}

func TestEmptySequence(t *testing.T) {
	for name, solve := range solvers {
		res, err := solve(nil, scenario())
		assert.ErrorIs(t, err, voicing.ErrEmptySequence, name)
		assert.True(t, math.IsInf(res.Cost, 1), name)
	}
	_, _, err := voicing.Stage([]string{}, scenario())
	assert.ErrorIs(t, err, voicing.ErrEmptySequence)
}

func TestMissingChordFailsFast(t *testing.T) {
	for name, solve := range solvers {
		_, err := solve([]string{"a", "nope"}, scenario())
		assert.ErrorIs(t, err, chord.ErrChordNotFound, name)
	}
}

func TestNilSource(t *testing.T) {
	for name, solve := range solvers {
		_, err := solve([]string{"a"}, nil)
		assert.ErrorIs(t, err, voicing.ErrNilSource, name)
	}
}

func TestNamesAreNormalized(t *testing.T) {
	res, err := voicing.Dynamic([]string{" A ", "B"}, scenario())
	require.NoError(t, err)
	assert.Equal(t, "a", res.Path[0].Chord)
	assert.Equal(t, "b", res.Path[1].Chord)
}

// TestGreedyIsMyopic: greedy follows the nearest neighbour a:5 → b:4 and
// pays for it at c; the optimum detours through b:7.
func TestGreedyIsMyopic(t *testing.T) {
	src := fixed{
		"a": {5, S, S},
		"b": {4, 7, S},
		"c": {9, S, S},
	}
	song := []string{"a", "b", "c"}

	g, err := voicing.Greedy(song, src)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, g.Path.Variants())
	assert.Equal(t, 26.0, g.Cost)
	assert.Equal(t, []float64{0, 1, 26}, []float64{g.Path[0].Cost, g.Path[1].Cost, g.Path[2].Cost})

	d, err := voicing.Dynamic(song, src)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0}, d.Path.Variants())
	assert.Equal(t, 8.0, d.Cost)

	e, err := voicing.Exhaustive(song, src)
	require.NoError(t, err)
	assert.Equal(t, d.Cost, e.Cost)
	assert.Equal(t, d.Path, e.Path)
}

// TestGreedyOpening covers both readings of the opening rule.
func TestGreedyOpening(t *testing.T) {
	src := fixed{
		"a": {S, 3, S},
		"b": {3, S, S},
	}
	song := []string{"a", "b"}

	res, err := voicing.Greedy(song, src)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Path.Variants())
	assert.Equal(t, 0.0, res.Cost)

	lit, err := voicing.Greedy(song, src, voicing.WithLiteralGreedyOpening())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, lit.Path.Variants())
	assert.Equal(t, S, lit.Path[0].Centroid)
	assert.Equal(t, (S-3)*(S-3), lit.Cost, "the sentinel propagates into the cost")
	assert.ErrorIs(t, voicing.ValidatePath(song, src, lit.Path), voicing.ErrInvalidPath)
}

func TestTieBreakFirstMinimum(t *testing.T) {
	src := fixed{
		"a": {1, 1, 1},
		"b": {1, 1, S},
	}
	song := []string{"a", "b"}
	for name, solve := range solvers {
		res, err := solve(song, src)
		require.NoError(t, err, name)
		assert.Equal(t, []int{0, 0}, res.Path.Variants(), name)
	}
}

func TestStageTables(t *testing.T) {
	src := fixed{
		"a": {1, 2, S},
		"b": {3, S, 4},
	}
	song := []string{"a", "b"}

	final, tables, err := voicing.Stage(song, src)
	require.NoError(t, err)
	require.Equal(t, 2, tables.Len())

	rows, cols := tables.F.Dims()
	assert.Equal(t, chord.Variants, rows)
	assert.Equal(t, 2, cols)

	// Base case: every state starts at 0 and points at itself.
	for s := 0; s < chord.Variants; s++ {
		assert.Equal(t, 0.0, tables.F.At(s, 0))
		assert.Equal(t, s, tables.G[s][0])
	}

	assert.Equal(t, 1.0, tables.F.At(0, 1)) // from a:1 (2→3)
	assert.Equal(t, 1, tables.G[0][1])
	assert.True(t, math.IsInf(tables.F.At(1, 1), 1))
	assert.Equal(t, -1, tables.G[1][1])
	assert.Equal(t, 4.0, tables.F.At(2, 1)) // from a:1 (2→4)
	assert.Equal(t, 1, tables.G[2][1])

	assert.Equal(t, 0, final)

	p, err := voicing.Trace(song, tables, final)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, p.Variants())
	assert.Equal(t, 1.0, p.Total())
}

func TestStage_NoSolutionKeepsTables(t *testing.T) {
	src := fixed{"a": {1, S, S}, "x": {S, S, S}}
	final, tables, err := voicing.Stage([]string{"a", "x"}, src)
	assert.ErrorIs(t, err, voicing.ErrNoSolution)
	assert.Equal(t, -1, final)
	require.NotNil(t, tables)
	for s := 0; s < chord.Variants; s++ {
		assert.True(t, math.IsInf(tables.F.At(s, 1), 1))
	}
}

func TestTrace_Errors(t *testing.T) {
	song := []string{"a", "b"}
	_, tables, err := voicing.Stage(song, scenario())
	require.NoError(t, err)

	_, err = voicing.Trace(song, tables, 3)
	assert.ErrorIs(t, err, voicing.ErrInvalidPath)

	_, err = voicing.Trace(song[:1], tables, 0)
	assert.ErrorIs(t, err, voicing.ErrInvalidPath)

	_, err = voicing.Trace(song, nil, 0)
	assert.ErrorIs(t, err, voicing.ErrInvalidPath)

	// b:2 is unplayable, so its F entry is +Inf.
	_, err = voicing.Trace(song, tables, 2)
	assert.ErrorIs(t, err, voicing.ErrNoSolution)
}

func TestExhaustive_MaxLength(t *testing.T) {
	song := []string{"a", "b", "a"}

	_, err := voicing.Exhaustive(song, scenario(), voicing.WithMaxExhaustive(2))
	assert.ErrorIs(t, err, voicing.ErrSequenceTooLong)

	_, err = voicing.Exhaustive(song, scenario(), voicing.WithMaxExhaustive(3))
	assert.NoError(t, err)

	// The bound only applies to exhaustive search.
	_, err = voicing.Dynamic(song, scenario(), voicing.WithMaxExhaustive(2))
	assert.NoError(t, err)

	assert.Panics(t, func() { voicing.WithMaxExhaustive(-1) })
}

func TestPathCostMatchesTotal(t *testing.T) {
	src := fixed{
		"a": {1.5, 2.25, S},
		"b": {3, 0.5, 7},
		"c": {2, S, 4},
	}
	song := []string{"a", "b", "c", "a", "b"}
	for name, solve := range solvers {
		res, err := solve(song, src)
		require.NoError(t, err, name)
		assert.InDelta(t, voicing.PathCost(res.Path), res.Cost, epsCost, name)
		assert.Equal(t, res.Path.Total(), res.Cost, name)
	}
}

func TestValidatePath_Errors(t *testing.T) {
	song := []string{"a", "b"}
	good := voicing.Path{
		{Chord: "a", Variant: 0, Centroid: 2},
		{Chord: "b", Variant: 0, Centroid: 2},
	}
	require.NoError(t, voicing.ValidatePath(song, scenario(), good))

	short := good[:1]
	assert.ErrorIs(t, voicing.ValidatePath(song, scenario(), short), voicing.ErrInvalidPath)

	renamed := append(voicing.Path(nil), good...)
	renamed[1].Chord = "a"
	assert.ErrorIs(t, voicing.ValidatePath(song, scenario(), renamed), voicing.ErrInvalidPath)

	dead := append(voicing.Path(nil), good...)
	dead[1].Variant, dead[1].Centroid = 2, S
	assert.ErrorIs(t, voicing.ValidatePath(song, scenario(), dead), voicing.ErrInvalidPath)

	wrongCentroid := append(voicing.Path(nil), good...)
	wrongCentroid[1].Centroid = 2.5
	assert.ErrorIs(t, voicing.ValidatePath(song, scenario(), wrongCentroid), voicing.ErrInvalidPath)

	wrongCost := append(voicing.Path(nil), good...)
	wrongCost[1].Cost = 1
	assert.ErrorIs(t, voicing.ValidatePath(song, scenario(), wrongCost), voicing.ErrInvalidPath)
}

func TestResultSolved(t *testing.T) {
	assert.False(t, voicing.Result{}.Solved())
	assert.True(t, voicing.Result{Path: voicing.Path{}}.Solved())
	assert.Equal(t, 0.0, voicing.Path(nil).Total())
}
