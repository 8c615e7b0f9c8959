package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"charge-calculator/internal/access"
	"charge-calculator/internal/composition"
	"charge-calculator/internal/report"
	"charge-calculator/internal/storage"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrAccessDenied is returned when the PIN given to report is not accepted
var ErrAccessDenied = errors.New("access denied")

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the saved grid and its computed composition",
		Long: `Print the saved grid and its computed composition.

The PIN is read without echo when stdin is a terminal, otherwise as the first
line of stdin. When no valid saved data exists the default grid is printed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(rootOpts, cmd)
		},
	}

	return cmd
}

func runReport(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := opts.Config(cmd)
	if err != nil {
		return err
	}
	log := opts.Logger(cfg, cmd.ErrOrStderr())

	pin, err := readPIN(cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	gate := access.NewGate(cfg.GateOptions())
	if outcome := VerifyPIN(gate, pin); outcome != access.OutcomeUnlocked {
		log.Warning("CLI", "report refused", map[string]interface{}{
			"outcome": outcome.String(),
		})
		return fmt.Errorf("%w: %s", ErrAccessDenied, gate.State().Message)
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return err
	}

	store := storage.NewStore(dataDir, log)
	g, ok := store.Load()
	if !ok {
		g = composition.DefaultGrid()
	}

	return report.Write(cmd.OutOrStdout(), g, composition.ComputeGrid(g))
}

// VerifyPIN submits pin to gate as a whole. Only an exact match of
// access.PINLength ASCII digits unlocks.
func VerifyPIN(gate *access.Gate, pin string) access.Outcome {
	return gate.SubmitPIN(pin)
}

func readPIN(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "PIN: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("read PIN: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read PIN: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("read PIN: %w", io.ErrUnexpectedEOF)
	}
	return line, nil
}
