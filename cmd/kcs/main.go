// Command kcs exercises the data structures and algorithms of
// this module from the command line.
//
//	kcs tree --keys 44,17,88 --remove 17
//	kcs sort --algorithm shaker --size 30
//	kcs bench --bench-size 5000 --concurrency 2
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kay64/computer-science/config"
	errs "github.com/kay64/computer-science/errors"
	"github.com/kay64/computer-science/logs"
	"github.com/pkg/errors"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	c := &Config{}
	parser, err := config.Generate("kcs", c)
	if err != nil {
		return err
	}

	if err := parser.Parse(args); err != nil {
		return err
	}

	logger := logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:  logs.ParseLevel(c.Log.Level),
		Output: errOut,
		Format: c.Log.Format,
	})

	positional := parser.Args()
	if len(positional) == 0 {
		_ = parser.Usage()
		return errors.Wrap(errs.ErrUnknownCommand, "expected one of tree, sort or bench")
	}

	switch positional[0] {
	case "tree":
		return runTree(ctx, c.Tree, logger.ForClass("main", "tree"), out)
	case "sort":
		return runSort(ctx, c.Sort, logger.ForClass("main", "sort"), out)
	case "bench":
		return runBench(ctx, c.Bench, logger.ForClass("main", "bench"), out)
	default:
		return errors.Wrapf(errs.ErrUnknownCommand, "command %q", positional[0])
	}
}
