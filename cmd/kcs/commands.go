package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kay64/computer-science/concurrent"
	"github.com/kay64/computer-science/container/tree"
	"github.com/kay64/computer-science/logs"
	"github.com/kay64/computer-science/patterns/decorator"
	"github.com/kay64/computer-science/sorting"
	"github.com/pkg/errors"
)

func runTree(ctx context.Context, c TreeConfig, logger logs.Logger, out io.Writer) error {
	t := tree.NewOrdered[int, string]()
	for _, k := range c.Keys {
		t.Put(k, strconv.Itoa(k))
	}

	logger.Debug(ctx, "tree populated", logs.MapFields{"size": t.Len()})

	for _, k := range c.Remove {
		v, ok := t.Remove(k)
		logger.Info(ctx, "remove", logs.MapFields{
			"key":   k,
			"found": ok,
			"value": v,
			"size":  t.Len(),
		})
	}

	if err := t.Check(); err != nil {
		return errors.Wrap(err, "tree is inconsistent")
	}

	var werr error
	t.InOrderWalk(func(k int, v string) {
		if werr == nil {
			_, werr = fmt.Fprintf(out, "%d\t%s\n", k, v)
		}
	})

	return werr
}

func randomInts(seed int64, size int) []int {
	r := rand.New(rand.NewSource(seed))
	res := make([]int, size)
	for i := range res {
		res[i] = r.Intn(100)
	}
	return res
}

func runSort(ctx context.Context, c SortConfig, logger logs.Logger, out io.Writer) error {
	alg, err := sorting.Lookup(c.Algorithm)
	if err != nil {
		return err
	}

	values := randomInts(c.Seed, c.Size)
	logger.Debug(ctx, "initial", logs.MapFields{"values": fmt.Sprint(values)})

	if err := decorator.Timed(ctx, logger, alg.Name, func() error {
		alg.Sort(values, cmp.Compare[int])
		return nil
	}); err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, values)
	return err
}

type benchResult struct {
	name    string
	elapsed time.Duration
}

func runBench(ctx context.Context, c BenchConfig, logger logs.Logger, out io.Writer) error {
	var algs []sorting.Algorithm
	if len(c.Algorithms) == 0 {
		algs = sorting.Algorithms()
	} else {
		for _, name := range c.Algorithms {
			alg, err := sorting.Lookup(name)
			if err != nil {
				return err
			}
			algs = append(algs, alg)
		}
	}

	input := randomInts(time.Now().UnixNano(), c.Size)
	suppliers := make([]concurrent.Supplier[benchResult], 0, len(algs))
	for _, alg := range algs {
		alg := alg
		suppliers = append(suppliers, concurrent.SupplierFunc[benchResult](func() (benchResult, error) {
			values := make([]int, len(input))
			copy(values, input)

			start := time.Now()
			alg.Sort(values, cmp.Compare[int])
			elapsed := time.Since(start)

			if !sort.IntsAreSorted(values) {
				return benchResult{}, errors.Errorf("%s produced an unsorted result", alg.Name)
			}

			return benchResult{name: alg.Name, elapsed: elapsed}, nil
		}))
	}

	results, err := concurrent.BatchSliceWithOpts(ctx, suppliers, concurrent.BatchOpts{
		Concurrency: c.Concurrency,
	})
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Err() != nil {
			return res.Err()
		}

		r := res.Value()
		logger.Debug(ctx, "algorithm completed", logs.MapFields{
			"algorithm": r.name,
			"elapsed":   r.elapsed.String(),
		})

		if _, err := fmt.Fprintf(out, "%-10s %s values in %s\n",
			r.name, humanize.Comma(int64(c.Size)), r.elapsed); err != nil {
			return err
		}
	}

	return nil
}
