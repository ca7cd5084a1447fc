package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/levercalc/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run an interactive calculator session",
	Long: `Start an interactive session that recomputes every derived metric
after each edit.

Edits are entered as field=value, e.g.:
  price_high=50000
  direction=short

Other commands inside the session:
  show     - reprint the current table
  fields   - list the editable field names
  history  - print the edit log
  quit     - end the session

Examples:
  levercalc session
  levercalc session --config levercalc.yaml --log edits.csv`,
	RunE: runSession,
}

var (
	sessionConfigPath string
	sessionLogPath    string
	sessionVerbose    bool
)

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.Flags().StringVarP(&sessionConfigPath, "config", "c", "", "path to config file")
	sessionCmd.Flags().StringVar(&sessionLogPath, "log", "", "write the edit history as CSV to this file on exit")
	sessionCmd.Flags().BoolVarP(&sessionVerbose, "verbose", "v", false, "enable debug logging")
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(sessionConfigPath)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if sessionVerbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer logger.Sync()
	}

	in, err := cfg.ToInputs()
	if err != nil {
		return err
	}

	s := session.New(in, logger)
	out := cmd.OutOrStdout()

	renderDerivation(out, s.Inputs(), s.Result(), cfg.Display.Fallback)
	fmt.Fprintln(out, `Enter field=value to edit, "quit" to exit.`)

	scanner := bufio.NewScanner(cmd.InOrStdin())
loop:
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "quit", "exit":
			break loop
		case "show":
			renderDerivation(out, s.Inputs(), s.Result(), cfg.Display.Fallback)
			continue
		case "fields":
			for _, name := range session.FieldNames {
				fmt.Fprintf(out, "  %s\n", name)
			}
			continue
		case "history":
			printHistory(out, s)
			continue
		}

		field, raw, ok := strings.Cut(line, "=")
		if !ok {
			fmt.Fprintf(out, "! expected field=value, got %q\n", line)
			continue
		}

		if err := s.Set(strings.TrimSpace(field), strings.TrimSpace(raw)); err != nil {
			fmt.Fprintf(out, "! %v\n", err)
			continue
		}
		renderDerivation(out, s.Inputs(), s.Result(), cfg.Display.Fallback)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if sessionLogPath != "" {
		if err := writeHistoryFile(s, sessionLogPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Wrote edit history: %s\n", sessionLogPath)
	}
	return nil
}

func printHistory(w io.Writer, s *session.Session) {
	h := s.History()
	if len(h) == 0 {
		fmt.Fprintln(w, "no edits yet")
		return
	}
	for _, e := range h {
		fmt.Fprintf(w, "%s  %-20s %s\n", e.ID, e.Field, e.Raw)
	}
}

func writeHistoryFile(s *session.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create history file: %w", err)
	}
	defer f.Close()

	if err := s.WriteHistoryCSV(f); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
