package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/eolymp/go-mathml"
	"github.com/eolymp/go-mathml/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		exprs    []string
		strict   bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "mathml2asciimath [file...]",
		Short:        "Convert MathML to AsciiMath",
		Long:         `Reads MathML from files, inline expressions or standard input and prints AsciiMath, one line per input. Use "-" to read standard input.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}

			logger := logging.New(cmd.ErrOrStderr(), level)
			converter := mathml.New(mathml.WithLogger(logger), mathml.WithStrict(strict))

			return run(converter, logger, cmd.InOrStdin(), cmd.OutOrStdout(), exprs, args)
		},
	}

	cmd.Flags().StringArrayVarP(&exprs, "expr", "e", nil, "MathML expression to convert, can be repeated")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unsupported MathML elements instead of printing Fail(element)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// run converts inline expressions first and then files, standard input is read when nothing else is given
func run(converter *mathml.Converter, logger *slog.Logger, stdin io.Reader, stdout io.Writer, exprs, files []string) error {
	for index, expr := range exprs {
		logger.Debug("converting expression", "index", index)

		if err := convert(converter, stdout, expr); err != nil {
			return fmt.Errorf("unable to convert expression #%d: %w", index+1, err)
		}
	}

	if len(files) == 0 && len(exprs) == 0 {
		files = []string{"-"}
	}

	for _, name := range files {
		logger.Debug("converting file", "file", name)

		data, err := read(stdin, name)
		if err != nil {
			return err
		}

		if err := convert(converter, stdout, string(data)); err != nil {
			return fmt.Errorf("unable to convert %v: %w", name, err)
		}
	}

	return nil
}

func read(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("unable to read standard input: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unable to read %v: %w", name, err)
	}

	return data, nil
}

func convert(converter *mathml.Converter, w io.Writer, input string) error {
	out, err := converter.Convert(input)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, out)
	return err
}
