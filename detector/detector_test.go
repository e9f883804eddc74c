package detector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adietrichs/kzg-sharding-go/field"
	"github.com/adietrichs/kzg-sharding-go/prover"
	"github.com/adietrichs/kzg-sharding-go/sample"
	"github.com/adietrichs/kzg-sharding-go/setup"
)

func pseudoRandomBlob(seed, n int) []field.Fr {
	blob := make([]field.Fr, n)
	x := uint64(seed*2654435761 + 1)
	for i := range blob {
		x = x*6364136223846793005 + 1442695040888963407
		blob[i] = field.NewFr(x)
	}
	return blob
}

func buildScenario(t *testing.T, rows, nLocs, nCols int) (*setup.CRS, sample.Matrix, []field.G1) {
	t.Helper()
	n := nLocs * nCols
	crs := setup.Generate(field.NewFr(1927409816240961209), n-1)

	blobs := make([][]field.Fr, rows)
	for i := range blobs {
		blobs[i] = pseudoRandomBlob(i+31, n)
	}

	matrix, commitments, err := prover.CreateMatrix(crs, blobs, nLocs)
	require.NoError(t, err)
	return crs, matrix, commitments
}

func selectSamples(matrix sample.Matrix, coords [][2]int) []sample.Sample {
	out := make([]sample.Sample, len(coords))
	for k, c := range coords {
		out[k] = matrix[c[0]][c[1]]
	}
	return out
}

func corrupt(s *sample.Sample, l int) {
	s.Vs = append([]field.Fr(nil), s.Vs...)
	s.Vs[l] = field.AddFr(s.Vs[l], field.NewFr(1))
}

func TestDetectAggregatedCleanSetReturnsEmpty(t *testing.T) {
	crs, matrix, commitments := buildScenario(t, 4, 16, 4)
	samples := selectSamples(matrix, [][2]int{{0, 3}, {2, 0}, {2, 2}, {3, 2}})

	got, err := DetectAggregated(crs, samples, commitments)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDetectAggregatedSingleCorruptionAtIndexZero(t *testing.T) {
	crs, matrix, commitments := buildScenario(t, 4, 16, 4)
	samples := selectSamples(matrix, [][2]int{{0, 3}, {2, 0}, {2, 2}, {3, 2}})
	corrupt(&samples[0], 0)

	got, err := DetectAggregated(crs, samples, commitments)
	require.NoError(t, err)
	require.Equal(t, []int{0}, got)
}

func TestDetectAggregatedTwoCorruptionsAtEnds(t *testing.T) {
	crs, matrix, commitments := buildScenario(t, 4, 16, 4)
	samples := selectSamples(matrix, [][2]int{{0, 3}, {2, 0}, {2, 2}, {3, 2}})
	corrupt(&samples[0], 0)
	corrupt(&samples[3], 3)

	got, err := DetectAggregated(crs, samples, commitments)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3}, got)
}

func TestDetectAggregatedEverySampleCorrupted(t *testing.T) {
	crs, matrix, commitments := buildScenario(t, 4, 16, 4)
	samples := selectSamples(matrix, [][2]int{{0, 3}, {2, 0}, {2, 2}, {3, 2}})
	for i := range samples {
		corrupt(&samples[i], 0)
	}

	got, err := DetectAggregated(crs, samples, commitments)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestDetectAggregatedSingleElementFailingSet(t *testing.T) {
	crs, matrix, commitments := buildScenario(t, 1, 16, 2)
	samples := selectSamples(matrix, [][2]int{{0, 0}})
	corrupt(&samples[0], 5)

	got, err := DetectAggregated(crs, samples, commitments)
	require.NoError(t, err)
	require.Equal(t, []int{0}, got)
}
