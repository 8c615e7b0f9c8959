package report

import (
	"bytes"
	"testing"

	"charge-calculator/internal/composition"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Regenerate with: go test ./internal/report -update
func TestWriteDefaultGrid(t *testing.T) {
	g := composition.DefaultGrid()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g, composition.ComputeGrid(g)))

	goldie.New(t).Assert(t, "default_grid", buf.Bytes())
}

func TestWriteZeroWeight(t *testing.T) {
	g := composition.DefaultGrid()
	g.ClearWeights()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g, composition.ComputeGrid(g)))

	goldie.New(t).Assert(t, "zero_weight", buf.Bytes())
}
