package drawer_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-almanac/pkg/rangemap"
	"github.com/askiada/go-almanac/pkg/rangemap/drawer"
	"github.com/askiada/go-almanac/pkg/rangemap/measure"
	"github.com/askiada/go-almanac/pkg/rangemap/model"
)

func createPipeline(t *testing.T, opts ...model.PipelineOption) *rangemap.Pipeline {
	t.Helper()

	soil, err := rangemap.NewStage("seed-to-soil", []model.RangeRule{
		{SourceStart: 98, Length: 2, Offset: -48},
		{SourceStart: 50, Length: 48, Offset: 2},
	})
	require.NoError(t, err)
	fertilizer, err := rangemap.NewStage("soil-to-fertilizer", []model.RangeRule{
		{SourceStart: 15, Length: 37, Offset: -15},
		{SourceStart: 52, Length: 2, Offset: -15},
		{SourceStart: 0, Length: 15, Offset: 39},
	})
	require.NoError(t, err)

	pipe, err := rangemap.NewPipeline([]*rangemap.Stage{soil, fertilizer}, rangemap.WithHooks(opts...))
	require.NoError(t, err)

	return pipe
}

func TestPipelineDrawer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	pipe := createPipeline(t, drawer.PipelineDrawer(drawer.NewDOTDrawer(&buf), nil))
	require.NoError(t, pipe.Finish())

	got := buf.String()
	assert.Contains(t, got, "strict digraph {")
	assert.Contains(t, got, `"seeds" -> "seed-to-soil"`)
	assert.Contains(t, got, `"seed-to-soil" -> "soil-to-fertilizer"`)
	assert.Contains(t, got, `rules="3"`)
	assert.NotContains(t, got, "label")
}

func TestPipelineDrawerWithMeasure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	msr := measure.NewDefaultMeasure()
	pipe := createPipeline(t, measure.PipelineMeasure(msr), drawer.PipelineDrawer(drawer.NewDOTDrawer(&buf), msr))

	_, err := pipe.MapRangeSet(context.Background(), rangemap.Normalize(
		model.Interval{Start: 79, End: 93},
		model.Interval{Start: 55, End: 68},
	))
	require.NoError(t, err)
	require.NoError(t, pipe.Finish())

	got := buf.String()
	assert.Contains(t, got, `label="2 -> 2"`)
	assert.Contains(t, got, "fan-out")
	assert.Contains(t, got, `color="#`)
}

func TestDOTDrawerErrors(t *testing.T) {
	t.Parallel()

	d := drawer.NewDOTDrawer(&bytes.Buffer{})
	require.NoError(t, d.AddStage("seeds", 0))
	require.Error(t, d.AddStage("seeds", 0))
	require.Error(t, d.AddLink("seeds", "missing"))

	msr := measure.NewDefaultMeasure()
	msr.AddMetric("missing")
	require.Error(t, d.AddMeasure(msr))
}
