package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"dsand/internal/app"
	"dsand/internal/sims/sand"

	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("dsand.sweep")

type paramSet struct {
	ignite     float64
	extinguish float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("ignite=%.2f extinguish=%.2f", p.ignite, p.extinguish)
}

type scenarioResult struct {
	params    paramSet
	fraction  float64
	steps     float64
	peakFire  int
	burnedOut int
	runs      int
}

func main() {
	steps := flag.Int("steps", 4000, "step cap per run")
	runs := flag.Int("runs", 3, "seeded runs averaged per parameter pair")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 120, "world width")
	height := flag.Int("height", 80, "world height")
	seed := flag.Int64("seed", 1337, "first seed; run i uses seed+i")
	top := flag.Int("top", 5, "number of results to print")
	logSpec := flag.String("log", "<root>=INFO", "logging configuration")
	flag.Parse()

	logs, err := app.SetupLogging(*logSpec, "", false)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fire-sweep:", err)
		os.Exit(1)
	}
	defer logs.Close()

	base := sand.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Seed = *seed

	chances := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}
	var sets []paramSet
	for _, ignite := range chances {
		for _, extinguish := range chances {
			sets = append(sets, paramSet{ignite: ignite, extinguish: extinguish})
		}
	}

	fmt.Printf("Sweeping %d parameter pairs (%d workers, %d runs, %d step cap)\n", len(sets), *workers, *runs, *steps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, *runs, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		logger.Debugf("%s burned %.3f in %.0f steps", res.params, res.fraction, res.steps)
		if len(all)%10 == 0 {
			logger.Infof("%d/%d pairs done", len(all), len(sets))
		}
	}

	// Most oil burned first, then the slower burn.
	sort.Slice(all, func(i, j int) bool {
		if all[i].fraction != all[j].fraction {
			return all[i].fraction > all[j].fraction
		}
		return all[i].steps > all[j].steps
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) burned=%.3f steps=%.0f peakFire=%d burnedOut=%d/%d %s\n",
			i+1, res.fraction, res.steps, res.peakFire, res.burnedOut, res.runs, res.params)
	}
}

func runScenario(base sand.Config, params paramSet, runs, steps int) scenarioResult {
	res := scenarioResult{params: params, runs: runs}
	if runs <= 0 {
		return res
	}
	cfg := base
	cfg.Params.IgniteChance = params.ignite
	cfg.Params.ExtinguishChance = params.extinguish
	for i := 0; i < runs; i++ {
		cfg.Seed = base.Seed + int64(i)
		trial := sand.BurnTrial(cfg, steps)
		res.fraction += trial.Fraction()
		res.steps += float64(trial.Steps)
		if trial.PeakFire > res.peakFire {
			res.peakFire = trial.PeakFire
		}
		if trial.BurnedOut {
			res.burnedOut++
		}
	}
	res.fraction /= float64(runs)
	res.steps /= float64(runs)
	return res
}
