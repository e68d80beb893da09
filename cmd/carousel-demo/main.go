// Package main provides the carousel demo application.
//
// It reads carousel.yaml from the project directory (the working directory,
// or the one passed with --dir) and shows the configured images in a
// carousel. Without a config file it shows a set of color swatches.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-drift/drift/pkg/drift"

	"github.com/go-drift/carousel/pkg/config"
)

// swatches are shown when carousel.yaml lists no images.
var swatches = []string{"coral", "gold", "mediumseagreen", "steelblue", "orchid"}

func main() {
	dir, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	resolved, err := config.Resolve(dir, swatches)
	if err != nil {
		log.Fatalf("carousel-demo: %v", err)
	}

	drift.NewApp(App(resolved, newAssetProvider(resolved.ImageDir))).Run()
}

// parseArgs extracts the project directory from --dir.
func parseArgs(args []string) (string, error) {
	dir := "."
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--dir" || args[i] == "-dir":
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s requires a value", args[i])
			}
			dir = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--dir="):
			dir = strings.TrimPrefix(args[i], "--dir=")
		default:
			return "", fmt.Errorf("unknown argument %q", args[i])
		}
	}
	return dir, nil
}
