package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"charge-calculator/internal/access"
	"charge-calculator/internal/composition"
	"charge-calculator/internal/config"
	"charge-calculator/internal/report"
	"charge-calculator/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "charge-calculator", cmd.Use)

	sub, _, err := cmd.Find([]string{"report"})
	require.NoError(t, err)
	assert.Equal(t, "report", sub.Name())
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"config", "data-dir", "log-level", "json-logs"} {
		t.Run(name, func(t *testing.T) {
			require.NotNil(t, cmd.PersistentFlags().Lookup(name))
		})
	}
}

// runReportCommand executes "report" against an isolated config and data dir
func runReportCommand(t *testing.T, dataDir, stdin string, extra ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))

	args := []string{
		"report",
		"--config", filepath.Join(t.TempDir(), "missing.toml"),
		"--data-dir", dataDir,
		"--log-level", "error",
	}
	cmd.SetArgs(append(args, extra...))

	err := cmd.Execute()
	return out.String(), err
}

func expectedReport(t *testing.T, g composition.Grid) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, g, composition.ComputeGrid(g)))
	return buf.String()
}

func TestReportDefaultGrid(t *testing.T) {
	out, err := runReportCommand(t, t.TempDir(), "4252\n")
	require.NoError(t, err)

	assert.Equal(t, expectedReport(t, composition.DefaultGrid()), out)
}

func TestReportSavedGrid(t *testing.T) {
	dir := t.TempDir()
	g := composition.DefaultGrid()
	g.ClearWeights()
	g[6][composition.WeightColumn] = "5"
	require.NoError(t, storage.NewStore(dir, nil).Write(g))

	out, err := runReportCommand(t, dir, "4252")
	require.NoError(t, err)

	assert.Equal(t, expectedReport(t, g), out)
	assert.Contains(t, out, "Total Weight")
}

func TestReportWrongPIN(t *testing.T) {
	out, err := runReportCommand(t, t.TempDir(), "0000\n")

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Contains(t, err.Error(), "Wrong PIN. Attempt 1/3")
	assert.Empty(t, out)
}

func TestReportShortPIN(t *testing.T) {
	_, err := runReportCommand(t, t.TempDir(), "42\n")

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Contains(t, err.Error(), access.MsgEnterDigits)
}

func TestReportRejectsPINWithExtraCharacters(t *testing.T) {
	for _, stdin := range []string{"42525\n", "4 2 5 2\n", "42x52\n"} {
		out, err := runReportCommand(t, t.TempDir(), stdin)

		require.ErrorIs(t, err, ErrAccessDenied, stdin)
		assert.Contains(t, err.Error(), access.MsgEnterDigits)
		assert.Empty(t, out)
	}
}

func TestReportEmptyInput(t *testing.T) {
	_, err := runReportCommand(t, t.TempDir(), "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccessDenied)
}

func TestReportUsesConfiguredPIN(t *testing.T) {
	t.Setenv("CHARGE_PIN", "9876")

	_, err := runReportCommand(t, t.TempDir(), "4252\n")
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = runReportCommand(t, t.TempDir(), "9876\n")
	require.NoError(t, err)
}

func TestInvalidLogLevelFlag(t *testing.T) {
	_, err := runReportCommand(t, t.TempDir(), "4252\n", "--log-level", "loud")

	var verr *config.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "log_level", verr.Field)
}

func TestVerifyPIN(t *testing.T) {
	tests := map[string]access.Outcome{
		"4252":    access.OutcomeUnlocked,
		"1111":    access.OutcomeWrongPIN,
		"425":     access.OutcomeIncomplete,
		"42x52":   access.OutcomeIncomplete,
		"42525":   access.OutcomeIncomplete,
		"4252999": access.OutcomeIncomplete,
		"4 2 5 2": access.OutcomeIncomplete,
		"":        access.OutcomeIncomplete,
	}

	for pin, want := range tests {
		t.Run(pin, func(t *testing.T) {
			gate := access.NewGate(access.DefaultOptions())
			assert.Equal(t, want, VerifyPIN(gate, pin))
		})
	}
}
