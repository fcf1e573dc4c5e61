// Command csrgen writes synthetic edge lists for csrconvert.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/csrgraph/edgelist"
	"github.com/katalvlaran/csrgraph/generate"
	"github.com/katalvlaran/csrgraph/internal/cli"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stdout, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stdout, err)
		os.Exit(cli.ExitCode)
	}
}

func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.ParseGenerate(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	con := constructor(cfg)
	cons := make([]generate.Constructor, cfg.Copies)
	for i := range cons {
		cons[i] = con
	}

	opts := []generate.Option{generate.WithSeed(cfg.Seed)}
	if cfg.Symmetric {
		opts = append(opts, generate.WithSymmetric())
	}
	if cfg.Anchor {
		opts = append(opts, generate.WithAnchor())
	}

	es, err := generate.Edges(opts, cons...)
	if err != nil {
		return cli.Fail(err)
	}

	header := fmt.Sprintf("shape=%s copies=%d seed=%d symmetric=%t edges=%d",
		cfg.Shape, cfg.Copies, cfg.Seed, cfg.Symmetric, len(es))
	if cfg.OutputPath == "-" {
		return edgelist.Write(outW, es, header)
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return cli.Fail(fmt.Errorf("failed to create edge list: %w", err))
	}
	if err := edgelist.Write(f, es, header); err != nil {
		f.Close()
		return cli.Fail(err)
	}
	if err := f.Close(); err != nil {
		return cli.Fail(err)
	}
	_, err = fmt.Fprintf(outW, "Wrote %d edges to %s\n", len(es), cfg.OutputPath)
	return err
}

func constructor(cfg *cli.GenerateConfig) generate.Constructor {
	switch cfg.Shape {
	case "path":
		return generate.Path(cfg.N)
	case "cycle":
		return generate.Cycle(cfg.N)
	case "star":
		return generate.Star(cfg.N)
	case "wheel":
		return generate.Wheel(cfg.N)
	case "complete":
		return generate.Complete(cfg.N)
	case "grid":
		return generate.Grid(cfg.Rows, cfg.Cols)
	case "tree":
		return generate.BinaryTree(cfg.N)
	case "sparse":
		return generate.RandomSparse(cfg.N, cfg.P)
	default:
		return generate.RandomMultigraph(cfg.N, cfg.M)
	}
}
