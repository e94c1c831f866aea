package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/trails/internal/export"
	"github.com/woozymasta/trails/internal/logger"
	"github.com/woozymasta/trails/internal/merge"
	"github.com/woozymasta/trails/internal/source"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Format string `short:"f" long:"format" env:"OUTPUT_FORMAT" description:"Output format" choice:"json" choice:"min" choice:"yaml" choice:"geojson" choice:"shp" default:"json"`
	Strict bool   `short:"s" long:"strict" env:"STRICT_COUNT"  description:"Abort on any row/coordinate count difference, not only on missing coordinates"`
}

// errUsage means the problem was already reported by the flags parser or
// the usage text.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("Merge failed")
	}
}

func run(args []string, stdout io.Writer) error {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] <input.csv> <coords.json> <output.json>"

	args, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return errUsage
	}
	if len(args) != 3 {
		parser.WriteHelp(stdout)
		return errUsage
	}

	opts.Logger.Setup()

	inputCSV, coordsJSON, outputPath := args[0], args[1], args[2]

	policy := merge.Lenient
	if opts.Strict {
		policy = merge.Strict
	}

	rows, err := source.ReadCSVFile(inputCSV)
	if err != nil {
		return fmt.Errorf("read CSV file %s: %w", inputCSV, err)
	}

	coords, err := source.ReadCoordinatesFile(coordsJSON)
	if err != nil {
		return fmt.Errorf("read coordinates file %s: %w", coordsJSON, err)
	}

	res, err := merge.Merge(rows, coords, policy)
	if err != nil {
		return fmt.Errorf("%s merge: %w", policy, err)
	}

	for _, skipped := range res.Skipped {
		log.Warn().
			Int("index", skipped.Index).
			Err(skipped.Err).
			Msgf("Skipping invalid entry at index %d", skipped.Index)
	}

	if export.Format(opts.Format) == export.FormatShapefile {
		outputPath = export.ShapefilePath(outputPath)
	}

	if err := export.WriteRecords(outputPath, res.Records, export.Format(opts.Format)); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	log.Info().
		Str("path", outputPath).
		Str("format", opts.Format).
		Int("records", len(res.Records)).
		Int("skipped", len(res.Skipped)).
		Msg("Data successfully written")

	return nil
}
