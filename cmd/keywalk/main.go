// keywalk enumerates every fixed-length key sequence a chess piece can walk
// on a keypad layout, prunes sequences with too many vowels and reports the
// total count across all starting keys.
package main

import (
	"context"
	"flag"
	"fmt"
	"slices"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"keywalk/internal/enumerator"
	"keywalk/internal/generics"
	"keywalk/internal/keypad"
	"keywalk/internal/movetable"
	"keywalk/internal/parameters"
	"keywalk/internal/piece"
	"keywalk/internal/profilers"
	"keywalk/internal/ui/cli"
	"keywalk/internal/ui/spinning"
)

var (
	flagLayout = flag.String("layout", "",
		"Path to a YAML keypad layout (fields: sentinel, rows). Uses the built-in keypad when empty.")
	flagConfig = flag.String("config", "piece=knight,length=10,max_vowels=2",
		"Run configuration, a comma-separated list of key=value settings. Known settings: "+
			"piece (knight, king, rook, bishop), length, max_vowels, vowels, parallelism.")
	flagColor = flag.Bool("color", true, "Colorize the output.")
	flagQuiet = flag.Bool("quiet", false, "Only print the total count.")

	// globalCtx is cancelled when the program is interrupted (Ctrl+C).
	globalCtx = context.Background()
)

// The built-in keypad: 18 keys, two dead corners.
var (
	defaultSentinel = keypad.Key('_')
	defaultRows     = []string{
		"ABCDE",
		"FGHIJ",
		"KLMNO",
		"_123_",
	}
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	var cancel func()
	globalCtx, cancel = context.WithCancel(globalCtx)
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	if err := run(globalCtx); err != nil {
		klog.Exitf("keywalk failed: %+v", err)
	}
}

// run reports every failure as an error: configuration problems surface as
// regular errors, and integration defects (panics thrown below) are caught
// at this boundary.
func run(ctx context.Context) error {
	return exceptions.TryCatch[error](func() {
		layout := must.M1(loadLayout())
		cfg := must.M1(parseConfig())
		chessPiece := must.M1(piece.New(cfg.pieceName, layout))
		table := movetable.Build(layout, chessPiece)

		ui := cli.New(*flagColor)
		if !*flagQuiet {
			ui.PrintLayout(layout)
		}

		spinner := spinning.New(ctx)
		collection := must.M1(enumerator.Enumerate(ctx, layout, table, cfg.opts))
		spinner.Done()

		total := must.M1(collection.Total())
		if *flagQuiet {
			fmt.Println(total)
			return
		}
		ui.PrintCounts(collection)
		ui.PrintTotal(total)
	})
}

func loadLayout() (*keypad.Layout, error) {
	if *flagLayout != "" {
		return keypad.LoadYAML(*flagLayout)
	}
	return keypad.ParseRows(defaultSentinel, defaultRows)
}

type runConfig struct {
	pieceName string
	opts      enumerator.Options
}

// parseConfig translates the --config string into enumeration options and
// the selected piece name.
func parseConfig() (cfg runConfig, err error) {
	params := parameters.NewFromConfigString(*flagConfig)
	if cfg.pieceName, err = parameters.PopParamOr(params, "piece", "knight"); err != nil {
		return
	}
	if cfg.opts.TargetLength, err = parameters.PopParamOr(params, "length", 10); err != nil {
		return
	}
	if cfg.opts.MaxVowels, err = parameters.PopParamOr(params, "max_vowels", 2); err != nil {
		return
	}
	if cfg.opts.Parallelism, err = parameters.PopParamOr(params, "parallelism", 0); err != nil {
		return
	}
	var vowels string
	if vowels, err = parameters.PopParamOr(params, "vowels", "AEIOU"); err != nil {
		return
	}
	cfg.opts.Vowels = generics.SetWith([]keypad.Key(vowels)...)
	if len(params) > 0 {
		err = errors.Errorf("unknown settings %v in --config=%q",
			slices.Collect(generics.SortedKeys(params)), *flagConfig)
	}
	return
}
