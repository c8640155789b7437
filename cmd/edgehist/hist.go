// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-edgehist/hwy/contrib/image"
	"github.com/ajroetker/go-edgehist/hwy/contrib/texture"
	"github.com/ajroetker/go-edgehist/hwy/contrib/workerpool"
)

type histOptions struct {
	step    int
	indent  int
	format  string
	workers int
	all     bool
}

// histReport is one file's entry in the JSON output.
type histReport struct {
	File      string   `json:"file"`
	Format    string   `json:"format"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Step      int      `json:"step"`
	Indent    int      `json:"indent"`
	Samples   uint64   `json:"samples"`
	Histogram []uint32 `json:"histogram"`
}

func newHistCmd() *cobra.Command {
	opts := histOptions{}

	cmd := &cobra.Command{
		Use:   "hist FILE...",
		Short: "Print the second-derivative histogram of each image",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHist(cmd.OutOrStdout(), args, opts)
		},
	}
	cmd.Flags().IntVar(&opts.step, "step", 1, "Neighbor distance of the second derivative")
	cmd.Flags().IntVar(&opts.indent, "indent", 1, "Border excluded on every side (>= step)")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text or json")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Frames processed concurrently (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Print empty bins in text output")
	return cmd
}

func runHist(w io.Writer, paths []string, opts histOptions) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	pool := workerpool.New(opts.workers)
	defer pool.Close()

	frames := make([]*image.Image[uint8], len(paths))
	formats := make([]string, len(paths))
	errs := make([]error, len(paths))
	pool.ParallelFor(len(paths), func(start, end int) {
		for i := start; i < end; i++ {
			frames[i], formats[i], errs[i] = loadGray(paths[i])
		}
	})
	for i, err := range errs {
		if err != nil {
			return err
		}
		slog.Debug("Loaded image", "file", paths[i], "format", formats[i],
			"width", frames[i].Width(), "height", frames[i].Height())
	}

	for i, f := range frames {
		if err := texture.CheckGeometry(f.Width(), f.Height(), opts.step, opts.indent); err != nil {
			return fmt.Errorf("%s: %w", paths[i], err)
		}
	}

	start := time.Now()
	hists := texture.Batch(pool, frames, opts.step, opts.indent)
	slog.Info("Computed histograms", "frames", len(frames), "workers", pool.NumWorkers(),
		"elapsed", time.Since(start))

	reports := make([]histReport, len(frames))
	for i, f := range frames {
		reports[i] = histReport{
			File:      paths[i],
			Format:    formats[i],
			Width:     f.Width(),
			Height:    f.Height(),
			Step:      opts.step,
			Indent:    opts.indent,
			Samples:   hists[i].Total(),
			Histogram: hists[i][:],
		}
	}

	if opts.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	return writeText(w, reports, opts.all)
}

func writeText(w io.Writer, reports []histReport, all bool) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# %s %dx%d step=%d indent=%d samples=%d\n",
			r.File, r.Width, r.Height, r.Step, r.Indent, r.Samples); err != nil {
			return err
		}
		for bin, count := range r.Histogram {
			if count == 0 && !all {
				continue
			}
			if _, err := fmt.Fprintf(w, "%3d %d\n", bin, count); err != nil {
				return err
			}
		}
	}
	return nil
}
