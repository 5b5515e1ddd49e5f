// Command duro is a thin front door over the document processor library:
// load and pretty-print a file via the serializer, or check it for errors
// only. Exit codes follow the teacher's cmd/devcmd-parser convention of
// distinct codes per failure class rather than a single catch-all.
//
// Grounded in the teacher's cli/main.go (cobra root command, persistent
// flags, RunE error plumbing) and cmd/devcmd-parser/main.go (the
// read-file/parse/report exit-code shape), generalized from executing shell
// commands to loading and dumping configuration documents.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aledsdavies/duro/errors"
	"github.com/aledsdavies/duro/parser"
	"github.com/aledsdavies/duro/serialize"
)

const (
	exitSuccess    = 0
	exitUsageError = 1
	exitIOError    = 2
	exitParseError = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	var verbose bool
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "duro",
		Short:         "Load, dump, and validate documents in the language",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				log.SetLevel(logrus.TraceLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "trace-log the file being loaded or checked")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print a debug dump of the value tree instead of canonical source")

	exitCode := exitSuccess

	loadCmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Parse a file and print it back in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := runLoad(args[0], debug, log)
			exitCode = code
			return err
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a file for validation only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := runCheck(args[0], log)
			exitCode = code
			return err
		},
	}

	rootCmd.AddCommand(loadCmd, checkCmd)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitCode == exitSuccess {
			exitCode = exitUsageError
		}
		return exitCode
	}
	return exitCode
}

func runLoad(file string, debug bool, log *logrus.Logger) (int, error) {
	text, dir, code, err := readInputFile(file)
	if err != nil {
		return code, err
	}

	log.WithField("file", file).Trace("loading document")
	v, err := parser.Load(text, parser.WithBaseDir(dir))
	if err != nil {
		return classifyError(err), err
	}

	if debug {
		fmt.Printf("%+v\n", v)
		return exitSuccess, nil
	}

	out, err := serialize.Dump(v)
	if err != nil {
		return exitParseError, err
	}
	fmt.Print(out)
	return exitSuccess, nil
}

func runCheck(file string, log *logrus.Logger) (int, error) {
	text, dir, code, err := readInputFile(file)
	if err != nil {
		return code, err
	}

	log.WithField("file", file).Trace("checking document")
	if _, err := parser.Load(text, parser.WithBaseDir(dir)); err != nil {
		return classifyError(err), err
	}
	fmt.Println("ok")
	return exitSuccess, nil
}

func readInputFile(file string) (text, dir string, code int, err error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return "", "", exitIOError, fmt.Errorf("reading %s: %w", file, err)
	}
	return string(raw), filepath.Dir(file), exitSuccess, nil
}

// classifyError maps a document processor error to the CLI's exit-code
// table: FileNotFound is an I/O failure, every other documented Kind is a
// parse/validation failure.
func classifyError(err error) int {
	if errors.Is(err, errors.FileNotFound) {
		return exitIOError
	}
	return exitParseError
}
