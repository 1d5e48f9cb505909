// Package cli implements the postfix command: evaluate a file of postfix
// expressions and write them in infix form ordered by value.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/postfix"
	"github.com/zephyrtronium/postfix/internal/config"
	"github.com/zephyrtronium/postfix/internal/logger"
	"github.com/zephyrtronium/postfix/internal/verify"
)

// Execute runs the command with the process arguments. Any failure prints a
// diagnostic and exits with status 1.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		report(cmd, err)
		os.Exit(1)
	}
}

func report(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	fmt.Fprintln(w, "postfix:", err)
	if KindOf(err) == KindUsage {
		fmt.Fprint(w, cmd.UsageString())
	}
}

type options struct {
	configPath string
	debug      bool
	jsonLog    bool
	verify     bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "postfix INPUT OUTPUT",
		Short: "Convert postfix expressions to infix, ordered by value",
		Long: `postfix reads one postfix expression per line from INPUT, evaluates each,
and writes "infix = value" lines to OUTPUT in ascending order of value.
Blank lines are skipped. Use - for stdin or stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &Error{
					Op:   "cli.args",
					Kind: KindUsage,
					Err:  fmt.Errorf("need input and output paths, got %d arguments", len(args)),
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], args[1])
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &Error{Op: "cli.flags", Kind: KindUsage, Err: err}
	})

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML settings file (optional)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging to stderr")
	cmd.Flags().BoolVar(&opts.jsonLog, "json-log", false, "write log records as JSON")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "re-evaluate each infix rendering and warn on mismatches")
	return cmd
}

func run(cmd *cobra.Command, opts options, inPath, outPath string) error {
	var cfg config.Config
	if opts.configPath != "" {
		c, err := config.Load(opts.configPath)
		if err != nil {
			return &Error{Op: "cli.config", Kind: KindConfig, Path: opts.configPath, Err: err}
		}
		cfg = c
	}
	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("json-log") {
		cfg.JSONLog = opts.jsonLog
	}
	if flags.Changed("verify") {
		cfg.Verify = opts.verify
	}

	cleanup := logger.Setup(logger.Config{Debug: cfg.Debug, JSON: cfg.JSONLog, W: cmd.ErrOrStderr()})
	defer cleanup()
	log := logger.L()

	batch, err := readBatch(cmd.InOrStdin(), inPath)
	if err != nil {
		return err
	}
	log.Debug("batch.read", "path", inPath, "count", len(batch))

	postfix.Rank(batch)
	log.Debug("batch.ranked", "min", batch[0].Value, "max", batch[len(batch)-1].Value)

	if cfg.Verify {
		for _, e := range batch {
			if err := verify.RoundTrip(e); err != nil {
				log.Warn("verify.mismatch", "source", e.Source, "infix", e.Infix.Text, "err", err)
			}
		}
	}

	if err := writeBatch(cmd.OutOrStdout(), outPath, batch); err != nil {
		return err
	}
	log.Debug("batch.written", "path", outPath, "count", len(batch))
	return nil
}

// readBatch evaluates every expression in the input. path "-" reads stdin.
func readBatch(stdin io.Reader, path string) ([]*postfix.Expr, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, &Error{Op: "cli.open_input", Kind: KindInputIO, Path: path, Err: err}
		}
		defer f.Close()
		r = f
	}
	batch, err := postfix.ReadBatch(r)
	if err != nil {
		return nil, &Error{Op: "cli.read_input", Kind: batchKind(err), Path: path, Err: err}
	}
	return batch, nil
}

// writeBatch creates or truncates the output and writes the batch to it. path
// "-" writes to stdout.
func writeBatch(stdout io.Writer, path string, batch []*postfix.Expr) error {
	if path == "-" {
		if err := postfix.WriteBatch(stdout, batch); err != nil {
			return &Error{Op: "cli.write_output", Kind: KindOutputIO, Path: path, Err: err}
		}
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return &Error{Op: "cli.create_output", Kind: KindOutputIO, Path: path, Err: err}
	}
	if err := postfix.WriteBatch(f, batch); err != nil {
		f.Close()
		return &Error{Op: "cli.write_output", Kind: KindOutputIO, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Op: "cli.write_output", Kind: KindOutputIO, Path: path, Err: err}
	}
	return nil
}
