package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/woozymasta/trails/internal/export"
	"github.com/woozymasta/trails/internal/fetch"
	"github.com/woozymasta/trails/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	URL    string `short:"u" long:"url"    env:"TRAILS_URL"    description:"ArcGIS layer query endpoint (Boulder County trailheads if empty)"`
	Format string `short:"f" long:"format" env:"OUTPUT_FORMAT" description:"Output format" choice:"json" choice:"min" choice:"yaml" choice:"geojson" choice:"shp" default:"json"`
}

// errUsage means the problem was already reported by the flags parser or
// the usage text.
var errUsage = errors.New("usage")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("Fetch failed")
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] <output.json>"

	args, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return errUsage
	}
	if len(args) != 1 {
		parser.WriteHelp(stdout)
		return errUsage
	}

	opts.Logger.Setup()
	outputPath := args[0]

	if opts.URL == "" {
		opts.URL = fetch.DefaultEndpoint
	}

	log.Info().Str("source", opts.URL).Msg("Fetching trailheads")

	// No timeout: the request runs until the server answers or the connection fails.
	records, err := fetch.Fetch(ctx, http.DefaultClient, opts.URL)
	if err != nil {
		return fmt.Errorf("fetch trailheads from %s: %w", opts.URL, err)
	}

	if export.Format(opts.Format) == export.FormatShapefile {
		outputPath = export.ShapefilePath(outputPath)
	}

	if err := export.WriteRecords(outputPath, records, export.Format(opts.Format)); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	log.Info().
		Str("path", outputPath).
		Str("format", opts.Format).
		Int("records", len(records)).
		Msg("Data successfully written")

	return nil
}
