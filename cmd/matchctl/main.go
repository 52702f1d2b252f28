// cmd/matchctl/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	obferrors "github.com/vantines/obfmatch/internal/errors"
	"github.com/vantines/obfmatch/internal/matcher"
	"github.com/vantines/obfmatch/internal/parseradapter"
	"github.com/vantines/obfmatch/internal/report"
)

const version = "0.1.0"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" || args[0] == "help" {
		showUsage()
		return nil
	}
	if args[0] == "--version" || args[0] == "version" {
		fmt.Println("matchctl " + version)
		return nil
	}

	refPath, targetPath, exportDir, err := parseArgs(args)
	if err != nil {
		return err
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var parser parseradapter.Parser = parseradapter.Unimplemented{}

	refGroup, err := parser.ParseGroup(refPath)
	if err != nil {
		return obferrors.Wrapf(obferrors.KindParse, err, "parse reference jar %s", refPath)
	}
	targetGroup, err := parser.ParseGroup(targetPath)
	if err != nil {
		return obferrors.Wrapf(obferrors.KindParse, err, "parse target jar %s", targetPath)
	}

	cfg := matcher.DefaultConfig()
	cfg.Logger = logger
	eng := matcher.New(cfg)

	result, err := eng.Run(context.Background(), targetGroup, refGroup)
	if err != nil {
		return obferrors.Wrap(obferrors.KindPass, err, "run matcher")
	}

	rep := report.New(uuid.New(), time.Now(), result)
	if err := rep.WriteText(os.Stdout); err != nil {
		return err
	}
	if exportDir != "" {
		if err := rep.Export(exportDir); err != nil {
			return err
		}
	}
	return nil
}

// parseArgs reads the two positional JAR paths (reference, then target)
// and the optional --export <dir> flag.
func parseArgs(args []string) (refPath, targetPath, exportDir string, err error) {
	var positional []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--export":
			if i+1 >= len(args) {
				return "", "", "", obferrors.New(obferrors.KindConfig, "--export requires a directory argument")
			}
			exportDir = args[i+1]
			i++
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) != 2 {
		return "", "", "", obferrors.New(obferrors.KindConfig, "expected exactly two positional arguments: <reference.jar> <target.jar>")
	}
	return positional[0], positional[1], exportDir, nil
}

func showUsage() {
	fmt.Println(`matchctl - recover names in an obfuscated JAR from a previously-named reference JAR

Usage:
  matchctl <reference.jar> <target.jar> [--export <dir>]

Flags:
  --export <dir>   write JSON and text match reports under <dir>
  --help, -h        show this help
  --version         show the version`)
}
