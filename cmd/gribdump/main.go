// Command gribdump lists the submessages in a GRIB2 file: their product,
// grid and packing templates, and optionally the decoded values of one
// selected submessage.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/scorix/grib2"
)

func main() {
	var (
		path    = flag.String("f", "", "path to a GRIB2 file")
		verbose = flag.Bool("v", false, "verbose logging")
		dump    = flag.Int("dump", -1, "decode and print values of the submessage at this index")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)

	if *path == "" {
		logger.Fatal().Msg("missing required -f flag")
	}

	if err := run(*path, *dump, &logger); err != nil {
		logger.Fatal().Err(err).Msg("gribdump failed")
	}
}

func run(path string, dumpIndex int, logger *zerolog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	h, err := grib2.Open(f, info.Size(), grib2.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("scanning %s: %w", path, err)
	}

	logger.Info().Int("submessages", h.Len()).Uint64("capabilities", h.Capabilities()).Msg("scanned file")

	i := 0
	for idx, view := range h.Messages() {
		prod := view.ProdDef()
		grid := view.GridDef()
		drep := view.DataRepr()

		fmt.Printf("[%d] message=%d submessage=%d product_template=%d grid_template=%d packing_template=%d points=%d\n",
			i, idx.MessageIndex, idx.SubmessageIndex,
			prod.ProductDefinitionTemplateNumber(),
			grid.GridDefinitionTemplateNumber(),
			drep.DataRepresentationTemplateNumber(),
			drep.NumberOfDataPoints(),
		)

		if i == dumpIndex {
			if err := dumpValues(view); err != nil {
				return err
			}
		}
		i++
	}

	return nil
}
