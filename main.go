package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	hwp_extractor "github.com/dongkki/hwpExtactor/pkg/hwp-extractor"
)

func main() {
	recursive := flag.Bool("r", false, "recurse into directories")
	flag.Parse()

	if err := run(flag.Args(), *recursive); err != nil {
		log.Fatal(err)
	}
}

// run extracts every HWP family document named by args (files or
// directories) and prints the per-section text. Documents are processed in
// parallel; a failure on one file is logged and does not abort the batch.
func run(args []string, recursive bool) error {
	if len(args) == 0 {
		return errors.New("usage: hwpextract [-r] <file_or_dir1> [file_or_dir2] ...")
	}

	paths := gatherPaths(args, recursive)
	extractor := hwp_extractor.NewHwpExtractor()

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())
	var mu sync.Mutex

	for _, path := range paths {
		path := path
		g.Go(func() error {
			doc, err := extractor.ExtractContext(ctx, path)
			if err != nil {
				log.Printf("%s: %v", path, err)
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			fmt.Printf("==== %s (%s, %d sections)\n", path, doc.Version, len(doc.Sections))
			if doc.Degraded() {
				fmt.Printf("notice: %s\n", doc.Notice)
			}
			fmt.Print(doc.Text())
			return nil
		})
	}
	return g.Wait()
}

// gatherPaths expands directory arguments into the .hwp/.hwpx files they
// hold. Explicit file arguments are kept as given; unreadable paths are
// logged and skipped.
func gatherPaths(args []string, recursive bool) []string {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			log.Printf("%s: %v", arg, err)
			continue
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		if recursive {
			filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					log.Printf("%s: %v", path, err)
					return nil
				}
				if !d.IsDir() && isHwpFile(path) {
					paths = append(paths, path)
				}
				return nil
			})
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			log.Printf("%s: %v", arg, err)
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() && isHwpFile(entry.Name()) {
				paths = append(paths, filepath.Join(arg, entry.Name()))
			}
		}
	}
	return paths
}

func isHwpFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hwp", ".hwpx":
		return true
	}
	return false
}
