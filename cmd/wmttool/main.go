// wmttool is a CLI utility for working with WMT sector/portal maps.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/tiot2/wmt/internal/assets"
	"github.com/tiot2/wmt/internal/config"
	"github.com/tiot2/wmt/internal/logger"
	"github.com/tiot2/wmt/internal/mapgen"
	"github.com/tiot2/wmt/pkg/level"
	"github.com/tiot2/wmt/pkg/wmt"
)

func main() {
	rest := config.ParseFlags(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if len(rest) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := rest[0]
	args := rest[1:]

	switch command {
	case "info":
		cmdInfo(cfg, args)
	case "check":
		cmdCheck(cfg, args)
	case "fmt":
		cmdFmt(cfg, args)
	case "gen":
		cmdGen(cfg, args)
	case "default":
		cmdDefault(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`wmttool - WMT sector/portal map utility

Usage:
  wmttool [global options] <command> [options]

Commands:
  info <map>              Show map statistics
  check <map>             Validate and compile a map
  fmt <map>               Reformat a map canonically
  gen [options]           Generate a random map
  default [options]       Write the built-in demo map

Global options:
  -config <path>          Config file (default: wmttool.yaml)
  -debug                  Enable debug logging
  -log-file <path>        Write logs to file
  -strict                 Treat validation warnings as errors

Examples:
  wmttool info maps/default.wmt
  wmttool check -json dungeon.wmt
  wmttool fmt -w dungeon.wmt
  wmttool gen -seed 7 -rooms 4x3 -o dungeon.wmt`)
}

// loadMap resolves a map name through the config search paths and
// parses it.
func loadMap(cfg *config.Config, name string) *wmt.Document {
	path, err := cfg.ResolveMap(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("loading map", zap.String("path", path))

	doc, err := wmt.ParseFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
		os.Exit(1)
	}
	return doc
}

func cmdInfo(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: wmttool info <map>")
		os.Exit(1)
	}

	doc := loadMap(cfg, args[0])

	fmt.Printf("Map:     %s\n", args[0])
	fmt.Printf("Points:  %d\n", len(doc.Points))
	fmt.Printf("Walls:   %d\n", len(doc.Walls))
	fmt.Printf("Sectors: %d\n", len(doc.Sectors))

	if lo, hi, ok := doc.Bounds(); ok {
		fmt.Printf("Extent:  (%g, %g) to (%g, %g)\n", lo.X, lo.Y, hi.X, hi.Y)
	}
	if floor, ceiling, ok := doc.HeightRange(); ok {
		fmt.Printf("Heights: %g to %g\n", floor, ceiling)
	}

	if doc.HasCamera {
		cam := doc.Camera
		fmt.Printf("Camera:  (%g, %g) height %g rotation %g\n", cam.X, cam.Y, cam.Height, cam.Rotation)
	} else {
		fmt.Println("Camera:  none")
	}

	lvl, err := level.Build(doc)
	if err != nil {
		fmt.Printf("Compile: failed (%v)\n", err)
		return
	}

	fmt.Println("Compile: ok")
	for i := range lvl.Sectors {
		s := &lvl.Sectors[i]
		walls := 0
		for _, e := range s.Edges {
			if e.Kind == level.EdgeWall {
				walls++
			}
		}
		fmt.Printf("  sector %d: %d walls, %d portals, heights [%g, %g]\n",
			i, walls, len(s.Edges)-walls, s.Floor, s.Ceiling)
	}
}

// checkReport is the JSON shape of a check run.
type checkReport struct {
	Map      string      `json:"map"`
	Issues   []wmt.Issue `json:"issues"`
	Compiled bool        `json:"compiled"`
	Error    string      `json:"error,omitempty"`
}

func cmdCheck(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	jsonOut := fs.Bool("json", cfg.Check.JSON, "Emit the report as JSON")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: wmttool check [-json] <map>")
		os.Exit(1)
	}

	doc := loadMap(cfg, fs.Arg(0))

	report := checkReport{
		Map:    fs.Arg(0),
		Issues: doc.Validate(),
	}

	if _, err := level.Build(doc); err != nil {
		report.Error = err.Error()
	} else {
		report.Compiled = true
	}

	if *jsonOut {
		out, err := sonic.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	} else {
		for _, issue := range report.Issues {
			fmt.Printf("%s: %s: %s\n", issue.Severity, issue.Kind, issue.Message)
		}
		if report.Compiled {
			fmt.Printf("%s: ok (%d issues)\n", report.Map, len(report.Issues))
		} else {
			fmt.Printf("%s: does not compile: %s\n", report.Map, report.Error)
		}
	}

	failed := !report.Compiled || wmt.HasErrors(report.Issues)
	if cfg.Check.Strict && len(report.Issues) > 0 {
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}

func cmdFmt(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	write := fs.Bool("w", false, "Rewrite the file in place instead of printing")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: wmttool fmt [-w] <map>")
		os.Exit(1)
	}

	path, err := cfg.ResolveMap(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	doc, err := wmt.ParseFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
		os.Exit(1)
	}

	if *write {
		if err := wmt.WriteFile(path, doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("rewrote map", zap.String("path", path))
	} else {
		os.Stdout.Write(wmt.Encode(doc))
	}
}

func cmdGen(cfg *config.Config, args []string) {
	gen := mapgen.Config{
		RoomsX:     cfg.Generate.RoomsX,
		RoomsY:     cfg.Generate.RoomsY,
		RoomSize:   cfg.Generate.RoomSize,
		Jitter:     cfg.Generate.Jitter,
		MinCeiling: cfg.Generate.MinCeiling,
		MaxCeiling: cfg.Generate.MaxCeiling,
		Seed:       cfg.Generate.Seed,
	}

	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	seed := fs.Uint64("seed", uint64(gen.Seed), "Random seed")
	rooms := fs.String("rooms", "", "Room grid as WxH, e.g. 4x3")
	size := fs.Float64("size", float64(gen.RoomSize), "Room side length")
	jitter := fs.Float64("jitter", float64(gen.Jitter), "Lattice jitter fraction")
	out := fs.String("o", "", "Output file (default: stdout)")
	fs.Parse(args)

	gen.Seed = uint32(*seed)
	gen.RoomSize = float32(*size)
	gen.Jitter = float32(*jitter)

	if *rooms != "" {
		x, y, err := parseRooms(*rooms)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		gen.RoomsX, gen.RoomsY = x, y
	}

	doc, err := mapgen.Generate(gen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	writeResult(wmt.Encode(doc), *out)
	logger.Info("generated map",
		zap.Int("rooms_x", gen.RoomsX),
		zap.Int("rooms_y", gen.RoomsY),
		zap.Uint32("seed", gen.Seed))
}

func cmdDefault(args []string) {
	fs := flag.NewFlagSet("default", flag.ExitOnError)
	out := fs.String("o", "", "Output file (default: stdout)")
	fs.Parse(args)

	writeResult(assets.DefaultMapSource(), *out)
}

// parseRooms splits a WxH grid spec like "4x3".
func parseRooms(spec string) (int, int, error) {
	parts := strings.SplitN(spec, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad room grid %q, expected WxH", spec)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad room grid %q: %v", spec, err)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad room grid %q: %v", spec, err)
	}
	return x, y, nil
}

func writeResult(data []byte, path string) {
	if path == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
