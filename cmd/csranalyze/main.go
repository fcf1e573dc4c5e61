// Command csranalyze loads a CSR snapshot and reports a serial BFS from one
// source followed by a serial component labeling.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/csrgraph/bfs"
	"github.com/katalvlaran/csrgraph/cc"
	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/internal/cli"
	"github.com/katalvlaran/csrgraph/internal/logging"
	"github.com/katalvlaran/csrgraph/report"
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

// run encapsulates the command so tests can drive it with a buffer.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.ParseAnalyze(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := logging.New(outW, cfg.LogLevel)
	if err != nil {
		return cli.Fail(err)
	}

	g, err := csr.LoadFile(cfg.GraphPath)
	if err != nil {
		return cli.Fail(fmt.Errorf("failed to load graph %s: %w", cfg.GraphPath, err))
	}
	logger.Debug("snapshot loaded", "path", cfg.GraphPath, "nodes", g.NumNodes(), "edges", g.NumEdges())

	rep := report.New(outW, report.WithFormat(cfg.Format))
	if err := rep.Loaded(g); err != nil {
		return err
	}

	if err := rep.BFSStart(cfg.Source); err != nil {
		return err
	}
	visit, err := bfs.BFS(g, cfg.Source)
	if err != nil {
		return cli.Fail(err)
	}
	logger.Debug("bfs finished", "source", cfg.Source, "depth", visit.MaxLevel(), "peak_queue", visit.PeakQueue)
	if err := rep.BFS(visit); err != nil {
		return err
	}

	if err := rep.ComponentsStart(); err != nil {
		return err
	}
	labels, err := cc.ConnectedComponents(g)
	if err != nil {
		return cli.Fail(err)
	}
	logger.Debug("labeling finished", "components", labels.Count)
	if err := rep.Components(labels); err != nil {
		return err
	}

	return rep.Close()
}
