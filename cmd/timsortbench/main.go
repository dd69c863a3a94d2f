// Command timsortbench times timsort.Sort over a chosen dataset (or a
// synthetic random/sorted/reversed sequence) and, with -verify, checks
// each result against an untimed sort.SliceStable reference. It is the
// external benchmark
// harness spec.md carves out of scope for the core engine, grounded in
// original_source/src/bench.cpp (the C++ project's own dataset-driven
// benchmark) and, for flag handling, in
// calvinalkan-agent-task/internal/cli's use of github.com/spf13/pflag.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/google/go-cmp/cmp"
	flag "github.com/spf13/pflag"

	"github.com/tvanslyke/timsort-go/internal/dataset"
	timsort "github.com/tvanslyke/timsort-go"
)

func main() {
	var (
		n      = flag.IntP("size", "n", 1_000_000, "synthetic input size (ignored if -mnist or -naics is set)")
		shape  = flag.String("shape", "random", "synthetic input shape: random, sorted, reversed")
		mnist  = flag.String("mnist", "", "path to an MNIST idx1-ubyte label file to sort instead of synthetic data")
		naics  = flag.String("naics", "", "path to a NAICS census CSV (or .snappy) file to sort instead of synthetic data")
		verify = flag.Bool("verify", false, "diff the result against sort.Stable")
		repeat = flag.Int("repeat", 1, "number of timed repetitions")
		seed   = flag.Int64("seed", 1, "PRNG seed for synthetic data")
	)
	flag.Parse()

	data, err := loadInts(*mnist, *naics, *n, *shape, *seed)
	if err != nil {
		log.Fatalf("timsortbench: %v", err)
	}

	var reference []int
	if *verify {
		reference = append([]int(nil), data...)
		sort.SliceStable(reference, func(i, j int) bool { return reference[i] < reference[j] })
	}

	var total time.Duration
	for i := 0; i < *repeat; i++ {
		trial := append([]int(nil), data...)
		start := time.Now()
		timsort.Sort(trial)
		total += time.Since(start)

		if *verify {
			if diff := cmp.Diff(reference, trial); diff != "" {
				log.Fatalf("timsortbench: mismatch against sort.Stable on repeat %d:\n%s", i, diff)
			}
		}
	}

	fmt.Printf("n=%d repeat=%d total=%s avg=%s\n", len(data), *repeat, total, total/time.Duration(*repeat))
}

func loadInts(mnistPath, naicsPath string, n int, shape string, seed int64) ([]int, error) {
	switch {
	case mnistPath != "":
		labels, err := dataset.ReadMNISTLabels(mnistPath)
		if err != nil {
			return nil, err
		}
		out := make([]int, len(labels))
		for i, b := range labels {
			out[i] = int(b)
		}
		return out, nil
	case naicsPath != "":
		records, err := dataset.ReadNAICSCSV(naicsPath)
		if err != nil {
			return nil, err
		}
		out := make([]int, len(records))
		for i, r := range records {
			out[i] = r.Code
		}
		return out, nil
	default:
		return syntheticInts(n, shape, seed), nil
	}
}

func syntheticInts(n int, shape string, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	switch shape {
	case "sorted":
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	case "reversed":
		out := make([]int, n)
		for i := range out {
			out[i] = n - i
		}
		return out
	default:
		return rng.Perm(n)
	}
}
