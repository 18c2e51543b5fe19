package rangemap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-almanac/pkg/rangemap"
	"github.com/askiada/go-almanac/pkg/rangemap/model"
)

// triple is an almanac rule line: destination, source, length.
type triple [3]int64

func createStage(t *testing.T, name string, triples ...triple) *rangemap.Stage {
	t.Helper()
	rules := make([]model.RangeRule, len(triples))
	for i, tr := range triples {
		rule, err := model.NewRangeRule(tr[0], tr[1], tr[2])
		require.NoError(t, err)
		rules[i] = rule
	}
	stage, err := rangemap.NewStage(name, rules)
	require.NoError(t, err)

	return stage
}

func sampleStages(t *testing.T) []*rangemap.Stage {
	t.Helper()

	return []*rangemap.Stage{
		createStage(t, "seed-to-soil", triple{50, 98, 2}, triple{52, 50, 48}),
		createStage(t, "soil-to-fertilizer", triple{0, 15, 37}, triple{37, 52, 2}, triple{39, 0, 15}),
		createStage(t, "fertilizer-to-water", triple{49, 53, 8}, triple{0, 11, 42}, triple{42, 0, 7}, triple{57, 7, 4}),
		createStage(t, "water-to-light", triple{88, 18, 7}, triple{18, 25, 70}),
		createStage(t, "light-to-temperature", triple{45, 77, 23}, triple{81, 45, 19}, triple{68, 64, 13}),
		createStage(t, "temperature-to-humidity", triple{0, 69, 1}, triple{1, 0, 69}),
		createStage(t, "humidity-to-location", triple{60, 56, 37}, triple{56, 93, 4}),
	}
}

func samplePipeline(t *testing.T, opts ...rangemap.Option) *rangemap.Pipeline {
	t.Helper()
	pipe, err := rangemap.NewPipeline(sampleStages(t), opts...)
	require.NoError(t, err)

	return pipe
}

// randomStage builds up to maxRules disjoint rules over roughly [0, 25*maxRules), given in shuffled order.
func randomStage(t *testing.T, rng *rand.Rand, name string, maxRules int) *rangemap.Stage {
	t.Helper()
	total := rng.Intn(maxRules + 1)
	rules := make([]model.RangeRule, 0, total)
	cur := rng.Int63n(5)
	for i := 0; i < total; i++ {
		start := cur + rng.Int63n(10)
		length := 1 + rng.Int63n(15)
		rules = append(rules, model.RangeRule{
			SourceStart: start,
			Length:      length,
			Offset:      rng.Int63n(101) - 50,
		})
		cur = start + length
	}
	rng.Shuffle(len(rules), func(i, j int) {
		rules[i], rules[j] = rules[j], rules[i]
	})

	stage, err := rangemap.NewStage(name, rules)
	require.NoError(t, err)

	return stage
}

func randomInterval(rng *rand.Rand, span, maxLength int64) model.Interval {
	start := rng.Int63n(span)

	return model.Interval{Start: start, End: start + 1 + rng.Int63n(maxLength)}
}
