package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/trails/internal/convert"
	"github.com/woozymasta/trails/internal/export"
	"github.com/woozymasta/trails/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Format string `short:"f" long:"format" env:"OUTPUT_FORMAT" description:"Output format" choice:"json" choice:"min" choice:"yaml" default:"json"`
}

// errUsage means the problem was already reported by the flags parser or
// the usage text.
var errUsage = errors.New("usage")

func main() {
	// Any failure aborts the whole conversion; there is no per-row recovery here.
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] <input.csv> <output.json>"

	args, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return errUsage
	}
	if len(args) != 2 {
		parser.WriteHelp(stdout)
		return errUsage
	}

	opts.Logger.Setup()

	if err := convertFile(args[0], args[1], export.Format(opts.Format)); err != nil {
		return err
	}

	log.Info().Str("path", args[1]).Msg("Conversion complete")
	return nil
}

func convertFile(inputPath, outputPath string, format export.Format) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	trails, err := convert.Convert(string(data))
	if err != nil {
		return err
	}

	return export.WriteFile(outputPath, trails, format)
}
