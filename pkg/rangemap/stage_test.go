package rangemap_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-almanac/pkg/rangemap"
	"github.com/askiada/go-almanac/pkg/rangemap/model"
)

func TestStageMapPoint(t *testing.T) {
	t.Parallel()

	stage := createStage(t, "seed-to-soil", triple{50, 98, 2}, triple{52, 50, 48})

	tcs := map[string]struct {
		input    int64
		expected int64
	}{
		"inside second rule":  {input: 79, expected: 81},
		"below every rule":    {input: 14, expected: 14},
		"second rule middle":  {input: 55, expected: 57},
		"below every rule 2":  {input: 13, expected: 13},
		"first rule start":    {input: 98, expected: 50},
		"first rule end":      {input: 99, expected: 51},
		"after every rule":    {input: 100, expected: 100},
		"second rule start":   {input: 50, expected: 52},
		"second rule end":     {input: 97, expected: 99},
		"just before rules":   {input: 49, expected: 49},
		"negative":            {input: -7, expected: -7},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, stage.MapPoint(tc.input))
		})
	}
}

func TestStageMapInterval(t *testing.T) {
	t.Parallel()

	stage := createStage(t, "seed-to-soil", triple{50, 98, 2}, triple{52, 50, 48})

	tcs := map[string]struct {
		input    model.Interval
		expected []model.Interval
	}{
		"fully outside": {
			input:    model.Interval{Start: 0, End: 10},
			expected: []model.Interval{{Start: 0, End: 10}},
		},
		"fully after": {
			input:    model.Interval{Start: 100, End: 1000},
			expected: []model.Interval{{Start: 100, End: 1000}},
		},
		"exactly first rule": {
			input:    model.Interval{Start: 98, End: 100},
			expected: []model.Interval{{Start: 50, End: 52}},
		},
		"exactly second rule": {
			input:    model.Interval{Start: 50, End: 98},
			expected: []model.Interval{{Start: 52, End: 100}},
		},
		"inside one rule": {
			input:    model.Interval{Start: 60, End: 70},
			expected: []model.Interval{{Start: 62, End: 72}},
		},
		"straddles everything": {
			input: model.Interval{Start: 45, End: 105},
			expected: []model.Interval{
				{Start: 45, End: 50},
				{Start: 52, End: 100},
				{Start: 50, End: 52},
				{Start: 100, End: 105},
			},
		},
		"crosses one boundary": {
			input: model.Interval{Start: 96, End: 99},
			expected: []model.Interval{
				{Start: 98, End: 100},
				{Start: 50, End: 51},
			},
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := stage.MapInterval(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestStageMapIntervalEmpty(t *testing.T) {
	t.Parallel()

	stage := createStage(t, "seed-to-soil", triple{50, 98, 2})

	_, err := stage.MapInterval(model.Interval{Start: 5, End: 5})
	require.ErrorIs(t, err, rangemap.ErrInvalidRange)

	_, err = stage.Split(model.Interval{Start: 6, End: 5})
	require.ErrorIs(t, err, rangemap.ErrInvalidRange)
}

func TestStageIdentity(t *testing.T) {
	t.Parallel()

	stage, err := rangemap.NewStage("identity", nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		iv := randomInterval(rng, 1000, 100)
		got, err := stage.MapInterval(iv)
		require.NoError(t, err)
		assert.Equal(t, []model.Interval{iv}, got)
		assert.Equal(t, iv.Start, stage.MapPoint(iv.Start))
	}
}

func TestNewStage(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		rules       []model.RangeRule
		expectedErr error
	}{
		"empty": {},
		"adjacent rules": {
			rules: []model.RangeRule{
				{SourceStart: 10, Length: 5, Offset: 1},
				{SourceStart: 15, Length: 5, Offset: 2},
			},
		},
		"overlapping rules": {
			rules: []model.RangeRule{
				{SourceStart: 14, Length: 5, Offset: 1},
				{SourceStart: 10, Length: 5, Offset: 2},
			},
			expectedErr: rangemap.ErrInvalidStageDefinition,
		},
		"nested rules": {
			rules: []model.RangeRule{
				{SourceStart: 0, Length: 100},
				{SourceStart: 40, Length: 2},
			},
			expectedErr: rangemap.ErrInvalidStageDefinition,
		},
		"zero length": {
			rules:       []model.RangeRule{{SourceStart: 10, Length: 0, Offset: 1}},
			expectedErr: rangemap.ErrInvalidRange,
		},
		"negative length": {
			rules:       []model.RangeRule{{SourceStart: 10, Length: -3, Offset: 1}},
			expectedErr: rangemap.ErrInvalidRange,
		},
		"destination past max int64": {
			rules:       []model.RangeRule{{SourceStart: 0, Length: 10, Offset: math.MaxInt64 - 5}},
			expectedErr: rangemap.ErrInvalidRange,
		},
		"destination below min int64": {
			rules:       []model.RangeRule{{SourceStart: -5, Length: 10, Offset: math.MinInt64}},
			expectedErr: rangemap.ErrInvalidRange,
		},
	}

	for name, tc := range tcs {
		name, tc := name, tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			stage, err := rangemap.NewStage(name, tc.rules)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, stage)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.rules), stage.Len())
		})
	}
}

func TestNewStageSortsAndCopiesRules(t *testing.T) {
	t.Parallel()

	rules := []model.RangeRule{
		{SourceStart: 98, Length: 2, Offset: -48},
		{SourceStart: 50, Length: 48, Offset: 2},
	}
	stage, err := rangemap.NewStage("seed-to-soil", rules)
	require.NoError(t, err)

	rules[0].Offset = 1000
	got := stage.Rules()
	assert.Equal(t, []model.RangeRule{
		{SourceStart: 50, Length: 48, Offset: 2},
		{SourceStart: 98, Length: 2, Offset: -48},
	}, got)

	got[0].Offset = 1000
	assert.Equal(t, int64(52), stage.MapPoint(50))
	assert.Equal(t, "seed-to-soil", stage.Name())
}

// The sources of the split segments must cover the input exactly, and translating a point by the
// offset of its segment must agree with MapPoint.
func TestStageSplitCoverage(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		stage := randomStage(t, rng, "random", 6)
		iv := randomInterval(rng, 150, 60)

		segments, err := stage.Split(iv)
		require.NoError(t, err)
		require.NotEmpty(t, segments)

		assert.Equal(t, iv.Start, segments[0].Source.Start)
		assert.Equal(t, iv.End, segments[len(segments)-1].Source.End)
		for j, segment := range segments {
			require.NoError(t, segment.Source.Validate())
			if j > 0 {
				assert.Equal(t, segments[j-1].Source.End, segment.Source.Start)
			}
			for x := segment.Source.Start; x < segment.Source.End; x++ {
				require.Equal(t, stage.MapPoint(x), x+segment.Offset, "stage %v interval %s point %d", stage.Rules(), iv, x)
			}
		}

		mapped, err := stage.MapInterval(iv)
		require.NoError(t, err)
		require.Len(t, mapped, len(segments))
		for j, segment := range segments {
			assert.Equal(t, segment.Destination(), mapped[j])
		}
	}
}
