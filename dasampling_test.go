package dasampling

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adietrichs/kzg-sharding-go/field"
)

// fixedRNG is a deterministic stand-in for crypto/rand.Reader, used so the
// seed scenarios (spec §8) are reproducible.
type fixedRNG struct {
	seed uint64
}

func (f *fixedRNG) Read(p []byte) (int, error) {
	buf := new(bytes.Buffer)
	for buf.Len() < len(p) {
		f.seed = f.seed*6364136223846793005 + 1442695040888963407
		binary.Write(buf, binary.LittleEndian, f.seed)
	}
	return copy(p, buf.Bytes()[:len(p)]), nil
}

func fixedPRNGBlob(seed uint64, n int) []Fr {
	blob := make([]Fr, n)
	x := seed
	for i := range blob {
		x = x*6364136223846793005 + 1442695040888963407
		blob[i] = field.NewFr(x)
	}
	return blob
}

const seedTrapdoor = 1927409816240961209

// S1: two rows, N_cols=2, N_locs=16; every sample must verify individually.
func TestSeedScenarioS1EverySampleVerifies(t *testing.T) {
	const nLocs, nCols, rows = 16, 2, 2
	n := nLocs * nCols
	crs := GenerateSetup(field.NewFr(seedTrapdoor), nCols*nLocs-1)

	blobs := make([][]Fr, rows)
	for i := range blobs {
		blobs[i] = fixedPRNGBlob(uint64(i+1), n)
	}

	matrix, commitments, err := CreateMatrix(crs, blobs, nLocs)
	require.NoError(t, err)

	for i, row := range matrix {
		for j, s := range row {
			ok, err := Verify(crs, s, commitments)
			require.NoError(t, err)
			require.True(t, ok, "row %d col %d", i, j)
		}
	}
}

// buildS2Batch is the shared setup for S2-S6: N_rows=4, N_cols=4,
// N_locs=16, with the fixed sample set {m[0][3], m[2][0], m[2][2], m[3][2]}.
func buildS2Batch(t *testing.T) (*CRS, []Sample, []G1) {
	t.Helper()
	const nLocs, nCols, rows = 16, 4, 4
	n := nLocs * nCols
	crs := GenerateSetup(field.NewFr(seedTrapdoor), nCols*nLocs-1)

	blobs := make([][]Fr, rows)
	for i := range blobs {
		blobs[i] = fixedPRNGBlob(uint64(i+101), n)
	}

	matrix, commitments, err := CreateMatrix(crs, blobs, nLocs)
	require.NoError(t, err)

	samples := []Sample{
		matrix[0][3],
		matrix[2][0],
		matrix[2][2],
		matrix[3][2],
	}
	return crs, samples, commitments
}

func TestSeedScenarioS2AggregatedBatchVerifies(t *testing.T) {
	crs, samples, commitments := buildS2Batch(t)
	ok, err := VerifyAggregatedWithRNG(crs, samples, commitments, &fixedRNG{seed: 7})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSeedScenarioS3CorruptedBatchFailsVerification(t *testing.T) {
	crs, samples, commitments := buildS2Batch(t)
	samples[0].Vs = append([]Fr(nil), samples[0].Vs...)
	samples[0].Vs[0] = field.AddFr(samples[0].Vs[0], field.NewFr(1))

	ok, err := VerifyAggregatedWithRNG(crs, samples, commitments, &fixedRNG{seed: 7})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSeedScenarioS4DetectsSingleCorruption(t *testing.T) {
	crs, samples, commitments := buildS2Batch(t)
	samples[0].Vs = append([]Fr(nil), samples[0].Vs...)
	samples[0].Vs[0] = field.AddFr(samples[0].Vs[0], field.NewFr(1))

	got, err := DetectAggregated(crs, samples, commitments)
	require.NoError(t, err)
	require.Equal(t, []int{0}, got)
}

func TestSeedScenarioS5DetectsTwoCorruptions(t *testing.T) {
	crs, samples, commitments := buildS2Batch(t)
	samples[0].Vs = append([]Fr(nil), samples[0].Vs...)
	samples[0].Vs[0] = field.AddFr(samples[0].Vs[0], field.NewFr(1))
	samples[3].Vs = append([]Fr(nil), samples[3].Vs...)
	samples[3].Vs[3] = field.AddFr(samples[3].Vs[3], field.NewFr(1))

	got, err := DetectAggregated(crs, samples, commitments)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3}, got)
}

func TestSeedScenarioS6DetectsEveryCorruption(t *testing.T) {
	crs, samples, commitments := buildS2Batch(t)
	for i := range samples {
		samples[i].Vs = append([]Fr(nil), samples[i].Vs...)
		samples[i].Vs[0] = field.AddFr(samples[i].Vs[0], field.NewFr(1))
	}

	got, err := DetectAggregated(crs, samples, commitments)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, got)
}
