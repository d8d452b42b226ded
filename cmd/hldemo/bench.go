package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/hldemo/internal/demofile"
	"github.com/samcharles93/hldemo/internal/logger"
	"github.com/samcharles93/hldemo/pkg/hldemo"
)

type benchResult struct {
	Name  string
	Runs  int
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

func (r benchResult) avg() time.Duration {
	if r.Runs == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Runs)
}

func benchCmd() *cli.Command {
	var (
		warmupRuns int
		benchRuns  int
	)

	flags := append(decodeFlags(),
		&cli.IntFlag{
			Name:        "warmup",
			Usage:       "number of warmup runs",
			Value:       1,
			Destination: &warmupRuns,
		},
		&cli.IntFlag{
			Name:        "runs",
			Usage:       "number of timed runs per mode",
			Value:       5,
			Destination: &benchRuns,
		},
	)

	return &cli.Command{
		Name:      "bench",
		Usage:     "Time metadata-only, sequential and parallel decoding of a demo",
		ArgsUsage: "<demo>",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			applyDecodeConfig(cmd, configFromContext(ctx))
			if benchRuns < 1 {
				return cli.Exit("error: --runs must be at least 1", 1)
			}

			path, err := demoArg(cmd)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			f, err := demofile.Open(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: couldn't open the file: %v", err), 1)
			}
			defer func() { _ = f.Close() }()

			modes := []struct {
				name string
				opts hldemo.Options
			}{
				{"metadata", hldemo.Options{SkipFrames: true}},
				{"sequential", hldemo.Options{}},
				{"parallel", hldemo.Options{Workers: workers}},
			}

			results := make([]benchResult, 0, len(modes))
			for _, m := range modes {
				for i := range warmupRuns {
					log.Debug("warmup run", "mode", m.name, "run", i+1)
					if _, err := hldemo.DecodeWithOptions(f.Bytes(), m.opts); err != nil {
						return cli.Exit(fmt.Sprintf("error: couldn't parse the demo: %v", err), 1)
					}
				}
				res, err := timeDecode(ctx, f.Bytes(), m.name, m.opts, benchRuns)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: couldn't parse the demo: %v", err), 1)
				}
				results = append(results, res)
			}

			printBench(os.Stdout, path, f.Size(), workers, results)
			return nil
		},
	}
}

func timeDecode(ctx context.Context, buf []byte, name string, opts hldemo.Options, runs int) (benchResult, error) {
	res := benchResult{Name: name}
	for range runs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		start := time.Now()
		if _, err := hldemo.DecodeWithOptions(buf, opts); err != nil {
			return res, err
		}
		d := time.Since(start)
		if res.Runs == 0 || d < res.Min {
			res.Min = d
		}
		res.Max = max(res.Max, d)
		res.Total += d
		res.Runs++
	}
	return res, nil
}

func printBench(w io.Writer, path string, size, workers int, results []benchResult) {
	fmt.Fprintln(w, "=== hldemo bench ===")
	fmt.Fprintf(w, "Demo:       %s (%.1f MB)\n", path, float64(size)/(1024*1024))
	fmt.Fprintf(w, "CPUs:       %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Fprintf(w, "Workers:    %d\n", workers)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-12s %6s %12s %12s %12s %10s\n", "Mode", "Runs", "Avg", "Min", "Max", "MB/s")
	for _, r := range results {
		avg := r.avg()
		var mbps float64
		if avg > 0 {
			mbps = float64(size) / (1024 * 1024) / avg.Seconds()
		}
		fmt.Fprintf(w, "%-12s %6d %12s %12s %12s %10.1f\n",
			r.Name, r.Runs, avg.Round(time.Microsecond), r.Min.Round(time.Microsecond), r.Max.Round(time.Microsecond), mbps)
	}
}
