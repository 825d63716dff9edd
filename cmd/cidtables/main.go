/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// cidtables writes the CIDToGIDMap, widths, ToUnicode CMap and font descriptor of TrueType fonts
// next to each font file.
//
// Usage: cidtables [flags] font.ttf [font2.ttf ...]
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/unidoc/cidmetrics/common"
	"github.com/unidoc/cidmetrics/pdf/cidtables"
	"github.com/unidoc/cidmetrics/pdf/fontmetrics"
)

func main() {
	var (
		provider = flag.String("provider", string(cidtables.ProviderTrueType), "font reader: truetype or sfnt")
		maxCID   = flag.Uint("maxcid", fontmetrics.MaxCID, "last CID of the CIDToGIDMap")
		cmapName = flag.String("cmapname", "", "ToUnicode CMap name (default: PostScript name, else file base name)")
		validate = flag.Bool("validate", false, "check font checksums before building")
		debug    = flag.Bool("debug", false, "enable debug logging")
		trace    = flag.Bool("trace", false, "enable trace logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] font.ttf [font2.ttf ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *maxCID > fontmetrics.MaxCID {
		fmt.Fprintf(os.Stderr, "-maxcid %d is above %d\n", *maxCID, fontmetrics.MaxCID)
		os.Exit(2)
	}

	level := common.LogLevelInfo
	if *trace {
		level = common.LogLevelTrace
	} else if *debug {
		level = common.LogLevelDebug
	}
	common.SetLogger(common.NewConsoleLogger(level))

	opts := cidtables.DefaultOptions()
	opts.Provider = cidtables.ProviderKind(*provider)
	opts.MaxCID = fontmetrics.CID(*maxCID)
	opts.CMapName = *cmapName
	opts.Validate = *validate

	paths := flag.Args()
	errs := make([]error, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			errs[i] = run(path, opts)
		}(i, path)
	}
	wg.Wait()

	failed := false
	for i, err := range errs {
		if err != nil {
			common.Log.Error("%s: %v", paths[i], err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// run builds the tables of the font at `path` and writes them next to it.
func run(path string, opts cidtables.Options) error {
	a, err := cidtables.BuildFile(path, opts)
	if err != nil {
		return err
	}
	written, err := a.WriteFiles()
	if err != nil {
		return err
	}
	for _, p := range written {
		common.Log.Info("Wrote %s", p)
	}
	return nil
}
