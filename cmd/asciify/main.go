package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	asciify "github.com/esimov/asciify/core"
	"github.com/esimov/asciify/utils"
	"golang.org/x/term"
)

const banner = `
┌─┐┌─┐┌─┐┬┬┌─┐┬ ┬
├─┤└─┐│  ││├┤ └┬┘
┴ ┴└─┘└─┘┴┴└   ┴

Image to ASCII art converter.
    Version: %s

Usage: asciify [flags] <image|->

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Exit codes.
const (
	exitOK = iota
	exitDecode
	exitUsage
	exitWrite
)

const (
	// message colors
	successColor = "\x1b[92m"
	errorColor   = "\x1b[31m"
	defaultColor = "\x1b[0m"
)

// Version indicates the current build version.
var Version string

// config holds the parsed command line settings.
type config struct {
	source      string
	destination string
	width       int
	charset     string
	customChars string
	invert      bool
	filter      string
	quiet       bool
	render      asciify.RenderOptions
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		logger.Printf("%s%v%s", errorColor, err, defaultColor)
		return exitUsage
	}

	cs, err := asciify.ParseCharset(cfg.charset)
	if cfg.customChars != "" {
		cs, err = asciify.Custom(cfg.customChars)
	}
	if err != nil {
		logger.Printf("%s%v%s", errorColor, err, defaultColor)
		return exitUsage
	}
	filter, err := asciify.ParseFilter(cfg.filter)
	if err != nil {
		logger.Printf("%s%v%s", errorColor, err, defaultColor)
		return exitUsage
	}
	conv := asciify.NewConverter(cs, asciify.WithFilter(filter))
	opts := asciify.Options{Width: cfg.width, Invert: cfg.invert}

	var ind *utils.ProgressIndicator
	if !cfg.quiet && isTerminal(stderr) {
		ind = utils.NewProgressIndicator(stderr, "Converting image...", time.Millisecond*100)
		ind.Start()
	}

	var art asciify.Art
	if cfg.source == pipeName {
		if isTerminal(stdin) {
			stopIndicator(ind, false)
			logger.Printf("%s`-` should be used with a pipe for stdin%s", errorColor, defaultColor)
			return exitUsage
		}
		art, err = conv.Convert(stdin, opts)
	} else {
		art, err = conv.ConvertFile(cfg.source, opts)
	}
	if err != nil {
		stopIndicator(ind, false)
		var decErr *asciify.DecodeError
		if errors.As(err, &decErr) {
			logger.Printf("%sConversion error: %v%s", errorColor, err, defaultColor)
			if ct, sniffErr := utils.DetectFileContentType(cfg.source); sniffErr == nil && !utils.IsImageContentType(ct) {
				logger.Printf("%sUnsupported content type: %s%s", errorColor, ct, defaultColor)
			}
			return exitDecode
		}
		logger.Printf("%s%v%s", errorColor, err, defaultColor)
		return exitUsage
	}
	stopIndicator(ind, true)

	switch {
	case cfg.destination == "" || cfg.destination == pipeName:
		if _, err := art.WriteTo(stdout); err != nil {
			logger.Printf("%sError writing the ASCII art: %v%s", errorColor, err, defaultColor)
			return exitWrite
		}
		return exitOK
	case asciify.IsImagePath(cfg.destination):
		err = asciify.SaveImage(art, cfg.destination, cfg.render)
	default:
		err = asciify.SaveText(art, cfg.destination)
	}
	if err != nil {
		logger.Printf("%s%v%s", errorColor, err, defaultColor)
		return exitWrite
	}
	if !cfg.quiet {
		logger.Printf("ASCII art saved to: %s%s%s", successColor, cfg.destination, defaultColor)
	}
	return exitOK
}

// parseFlags parses args into a config. Flags may appear before or after
// the image argument.
func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{
		render: asciify.DefaultRenderOptions,
	}

	fs := flag.NewFlagSet("asciify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, banner, Version)
		fs.PrintDefaults()
	}

	fs.IntVar(&cfg.width, "width", asciify.DefaultWidth, "Width of the ASCII art in characters")
	fs.IntVar(&cfg.width, "w", asciify.DefaultWidth, "Shorthand for -width")
	fs.StringVar(&cfg.destination, "output", pipeName, "Output file (.txt, or .png/.jpg to render an image)")
	fs.StringVar(&cfg.destination, "o", pipeName, "Shorthand for -output")
	fs.StringVar(&cfg.charset, "charset", asciify.NameDetailed, "Character set: detailed|simple|blocks or a literal ramp, darkest first")
	fs.StringVar(&cfg.charset, "c", asciify.NameDetailed, "Shorthand for -charset")
	fs.StringVar(&cfg.customChars, "custom-chars", "", "Custom character set, darkest to lightest (overrides -charset)")
	fs.BoolVar(&cfg.invert, "invert", false, "Invert brightness mapping")
	fs.BoolVar(&cfg.invert, "i", false, "Shorthand for -invert")
	fs.StringVar(&cfg.filter, "filter", "catmullrom", "Resampling filter: nearest|box|linear|catmullrom|lanczos")
	fs.StringVar(&cfg.render.FontPath, "font", "", "TrueType font used when rendering an image")
	fs.Float64Var(&cfg.render.FontSize, "fontsize", asciify.DefaultRenderOptions.FontSize, "Font size in points when rendering an image")
	fs.StringVar(&cfg.render.Foreground, "fg", asciify.DefaultRenderOptions.Foreground, "Foreground color when rendering an image")
	fs.StringVar(&cfg.render.Background, "bg", asciify.DefaultRenderOptions.Background, "Background color when rendering an image")
	fs.BoolVar(&cfg.quiet, "q", false, "Do not print progress and status messages")

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	if len(positional) != 1 {
		fs.Usage()
		return nil, errors.New("exactly one source image is required")
	}
	if cfg.width <= 0 {
		return nil, fmt.Errorf("width must be greater than zero, got %d", cfg.width)
	}
	cfg.source = positional[0]

	return cfg, nil
}

// stopIndicator stops the spinner, if any, with a status message.
func stopIndicator(ind *utils.ProgressIndicator, ok bool) {
	if ind == nil {
		return
	}
	if ok {
		ind.StopMsg = fmt.Sprintf("Converting image... %sfinished ✔%s\n", successColor, defaultColor)
	} else {
		ind.StopMsg = fmt.Sprintf("Converting image... %sfailed ✗%s\n", errorColor, defaultColor)
	}
	ind.Stop()
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
