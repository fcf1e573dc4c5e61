// Command csrconvert converts a text edge list into a binary CSR snapshot.
//
// The input is parsed three times straight from disk (sizing, degree count,
// fill), so only the CSR arrays are held in memory.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/edgelist"
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
	cfg, shouldExit, err := cli.ParseConvert(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	profile := cfg.Profile

	logger, err := logging.New(outW, profile.Logging.Level)
	if err != nil {
		return cli.Fail(err)
	}

	in, err := os.Open(cfg.InputPath)
	if err != nil {
		return cli.Fail(fmt.Errorf("failed to open edge list: %w", err))
	}
	defer in.Close()

	stream := edgelist.NewReaderStream(in,
		edgelist.WithStrictness(profile.Strictness()),
		edgelist.WithCommentPrefix(profile.Parse.CommentPrefix),
		edgelist.WithLogger(logger),
	)

	buildOpts := []csr.BuildOption{csr.WithLogger(logger)}
	if profile.Capacity.MaxNodes > 0 {
		buildOpts = append(buildOpts, csr.WithMaxNodes(profile.Capacity.MaxNodes))
	}
	if profile.Capacity.MaxEdges > 0 {
		buildOpts = append(buildOpts, csr.WithMaxEdges(profile.Capacity.MaxEdges))
	}

	g, err := csr.Build(stream, buildOpts...)
	if err != nil {
		return cli.Fail(fmt.Errorf("failed to build graph from %s: %w", cfg.InputPath, err))
	}

	if err := csr.SaveFile(cfg.OutputPath, g); err != nil {
		return cli.Fail(fmt.Errorf("failed to write snapshot: %w", err))
	}
	logger.Debug("snapshot written", "path", cfg.OutputPath, "bytes", csr.SnapshotSize(g.NumNodes(), g.NumEdges()))

	return report.New(outW).Converted(g, stream.Stats(), profile.Preview)
}
