package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/scanicon/scanicon"
	"github.com/scanicon/scanicon/imop"
	"github.com/scanicon/scanicon/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌─┐┌─┐┌─┐┌┐┌┬┌─┐┌─┐┌┐┌
└─┐│  ├─┤│││││  │ ││││
└─┘└─┘┴ ┴┘└┘┴└─┘└─┘┘└┘

Procedural app icon generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	destination = flag.String("out", ".", "Output directory, or a file like assets/icon.tiff whose extension selects the format")
	sizeList    = flag.String("sizes", joinSizes(scanicon.DefaultSizes), "Comma separated icon sizes in pixels")
	format      = flag.String("format", "", "Output format: png, bmp or tiff (default taken from -out, else png)")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of icons to render concurrently")
	supersample = flag.Int("ss", 1, "Supersampling factor (1 renders the exact pixel grid)")
	composite   = flag.String("comp", imop.Copy, "Composite operation used for the overlays: "+strings.Join(imop.InitOp().Ops(), ", "))
)

// spinner used to instantiate and call the progress indicator.
var spinner *utils.Spinner

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	isTerm := term.IsTerminal(int(os.Stderr.Fd()))
	utils.NoColor = !isTerm

	sizes, err := parseSizes(*sizeList)
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	op := imop.InitOp()
	if err := op.Set(*composite); err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	outDir, outFormat, err := outputTarget(*destination, *format)
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	renderer := scanicon.NewRenderer()
	renderer.Supersample = *supersample
	renderer.Composite = op.Get()

	batch := &scanicon.Batch{
		Renderer: renderer,
		OutDir:   outDir,
		Sizes:    sizes,
		Workers:  *workers,
		Format:   outFormat,
	}

	if isTerm {
		spinnerText := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ SCANICON", utils.StatusMessage),
			utils.DecorateText("is rendering the icons...", utils.DefaultMessage))
		spinner = utils.NewSpinner(spinnerText, time.Millisecond*100, true)
	}

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		if spinner != nil {
			spinner.Stop()
		}
		os.Exit(1)
	}()

	now := time.Now()
	done := make(chan struct{})
	defer close(done)

	startSpinner()
	var results []scanicon.Result
	for res := range batch.Run(done) {
		stopSpinner()
		printStatus(res)
		results = append(results, res)
		startSpinner()
	}
	stopSpinner()

	summary := scanicon.Summarize(results)
	fmt.Fprintf(os.Stderr, "\n%s icons written to %s, %s failed\n",
		utils.DecorateText(fmt.Sprintf("%d/%d", len(summary.Written), len(sizes)), utils.SuccessMessage),
		outDir,
		utils.DecorateText(strconv.Itoa(len(summary.Failed)), failureColor(summary)),
	)
	for _, res := range summary.Failed {
		fmt.Fprintf(os.Stderr, "\t%dx%d: %v\n", res.Size, res.Size, res.Err)
	}
	fmt.Fprintf(os.Stderr, "Execution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	if len(summary.Written) == 0 && len(summary.Failed) > 0 {
		os.Exit(1)
	}
}

// printStatus displays the outcome of a single icon.
func printStatus(res scanicon.Result) {
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText(fmt.Sprintf("✗ Error rendering %dx%d:", res.Size, res.Size), utils.ErrorMessage),
			utils.DecorateText(res.Err.Error(), utils.DefaultMessage),
		)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s (%dx%d)\n",
		utils.DecorateText("✔ Created:", utils.SuccessMessage),
		res.Path, res.Size, res.Size,
	)
}

func failureColor(s scanicon.Summary) utils.MessageType {
	if s.OK() {
		return utils.SuccessMessage
	}
	return utils.ErrorMessage
}

func startSpinner() {
	if spinner != nil {
		spinner.Start()
	}
}

func stopSpinner() {
	if spinner != nil {
		spinner.Stop()
	}
}

// outputTarget splits -out into the output directory and the icon format.
// When -out names a file with a known image extension its directory is used
// and the extension selects the format, unless -format is given.
func outputTarget(out, format string) (string, scanicon.Format, error) {
	dir := out
	fromPath := scanicon.PNG
	if filepath.Ext(out) != "" {
		if f, err := scanicon.FormatFromPath(out); err == nil {
			dir, fromPath = filepath.Dir(out), f
		}
	}
	if format == "" {
		return dir, fromPath, nil
	}
	f, err := scanicon.ParseFormat(format)
	if err != nil {
		return "", "", err
	}
	return dir, f, nil
}

// parseSizes parses a comma separated list of edge lengths.
// Non-positive values are kept so the batch reports them as failures.
func parseSizes(list string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid icon size %q: %w", field, err)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no icon sizes given")
	}
	return sizes, nil
}

func joinSizes(sizes []int) string {
	fields := make([]string, len(sizes))
	for i, s := range sizes {
		fields[i] = strconv.Itoa(s)
	}
	return strings.Join(fields, ",")
}
