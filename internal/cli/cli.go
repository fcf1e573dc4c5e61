package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/csrgraph/edgelist"
	"github.com/katalvlaran/csrgraph/internal/config"
	"github.com/katalvlaran/csrgraph/internal/logging"
	"github.com/katalvlaran/csrgraph/report"
)

// ExitCode is used for every failure; the commands do not distinguish causes
// by code.
const ExitCode = 1

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the cause, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Fail wraps err into an ExitError with ExitCode.
func Fail(err error) *ExitError {
	return &ExitError{Code: ExitCode, Message: err.Error(), Err: err}
}

// AnalyzeConfig holds the settings of one csranalyze run.
type AnalyzeConfig struct {
	GraphPath string
	Source    int32
	Format    report.Format
	LogLevel  string
}

// ParseAnalyze processes csranalyze arguments. It returns the settings,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func ParseAnalyze(args []string, output io.Writer) (*AnalyzeConfig, bool, error) {
	flagSet := flag.NewFlagSet("csranalyze", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `Usage: csranalyze [options] <graph.csr>

Runs a serial BFS and a serial component labeling over a CSR snapshot.

Options:
`)
		flagSet.PrintDefaults()
	}

	sourceFlag := flagSet.Int64("source", 0, "BFS source node.")
	formatFlag := flagSet.String("format", "text", "Report format. Options: 'text' or 'yaml'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: "+logging.Levels+".")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, Fail(err)
	}

	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: ExitCode, Message: "expected exactly one graph file argument"}
	}

	if *sourceFlag < 0 || *sourceFlag > math.MaxInt32 {
		return nil, false, &ExitError{Code: ExitCode, Message: fmt.Sprintf("invalid source: %d", *sourceFlag)}
	}
	format, err := report.ParseFormat(*formatFlag)
	if err != nil {
		return nil, false, Fail(err)
	}
	if _, err := logging.New(io.Discard, *logLevelFlag); err != nil {
		return nil, false, Fail(err)
	}

	return &AnalyzeConfig{
		GraphPath: flagSet.Arg(0),
		Source:    int32(*sourceFlag),
		Format:    format,
		LogLevel:  *logLevelFlag,
	}, false, nil
}

// ConvertConfig holds the settings of one csrconvert run. Profile carries
// the loaded YAML profile with command-line overrides applied.
type ConvertConfig struct {
	InputPath  string
	OutputPath string
	Profile    *config.Config
}

// ParseConvert processes csrconvert arguments. Flags given explicitly
// override the values of the -config profile.
func ParseConvert(args []string, output io.Writer) (*ConvertConfig, bool, error) {
	flagSet := flag.NewFlagSet("csrconvert", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `Usage: csrconvert [options] <edges.txt> <graph.csr>

Converts a whitespace-separated edge list into a binary CSR snapshot.

Options:
`)
		flagSet.PrintDefaults()
	}

	profileFlag := flagSet.String("config", "", "Path to a YAML conversion profile.")
	strictFlag := flagSet.Bool("strict", false, "Reject malformed lines instead of skipping them.")
	commentFlag := flagSet.String("comment", edgelist.DefaultCommentPrefix, "Comment line prefix.")
	previewFlag := flagSet.String("preview", "0,1", "Comma-separated nodes whose neighbors are printed; empty for none.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: "+logging.Levels+".")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, Fail(err)
	}

	if flagSet.NArg() != 2 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: ExitCode, Message: "expected an input edge list and an output snapshot path"}
	}

	profile := config.Default()
	if *profileFlag != "" {
		loaded, err := config.LoadConfig(*profileFlag)
		if err != nil {
			return nil, false, Fail(err)
		}
		profile = loaded
	}

	var overrideErr error
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			if *strictFlag {
				profile.Parse.Strictness = edgelist.Strict.String()
			} else {
				profile.Parse.Strictness = edgelist.Lenient.String()
			}
		case "comment":
			profile.Parse.CommentPrefix = *commentFlag
		case "preview":
			nodes, err := ParsePreview(*previewFlag)
			if err != nil {
				overrideErr = err
				return
			}
			profile.Preview = nodes
		case "log-level":
			profile.Logging.Level = *logLevelFlag
		}
	})
	if overrideErr != nil {
		return nil, false, Fail(overrideErr)
	}
	if err := profile.Validate(); err != nil {
		return nil, false, Fail(err)
	}

	return &ConvertConfig{
		InputPath:  flagSet.Arg(0),
		OutputPath: flagSet.Arg(1),
		Profile:    profile,
	}, false, nil
}

// ParsePreview parses a comma-separated list of node ids.
func ParsePreview(s string) ([]int32, error) {
	nodes := []int32{}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseInt(field, 10, 32)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("invalid preview node %q", field)
		}
		nodes = append(nodes, int32(v))
	}
	return nodes, nil
}

// GenerateConfig holds the settings of one csrgen run.
type GenerateConfig struct {
	Shape      string
	N          int
	M          int
	Rows       int
	Cols       int
	P          float64
	Seed       int64
	Copies     int
	Symmetric  bool
	Anchor     bool
	OutputPath string
}

// Shapes lists the topologies csrgen accepts.
var Shapes = []string{"path", "cycle", "star", "wheel", "complete", "grid", "tree", "sparse", "multigraph"}

// ParseGenerate processes csrgen arguments. The single positional argument
// is the output path; "-" writes to the command output.
func ParseGenerate(args []string, output io.Writer) (*GenerateConfig, bool, error) {
	flagSet := flag.NewFlagSet("csrgen", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `Usage: csrgen [options] <edges.txt|->

Writes a generated edge list for csrconvert.

Options:
`)
		flagSet.PrintDefaults()
	}

	cfg := &GenerateConfig{}
	flagSet.StringVar(&cfg.Shape, "shape", "multigraph", "Topology. Options: "+strings.Join(Shapes, ", ")+".")
	flagSet.IntVar(&cfg.N, "n", 1000, "Node count (path, cycle, star, wheel, complete, tree, sparse, multigraph).")
	flagSet.IntVar(&cfg.M, "m", 4000, "Edge draws (multigraph).")
	flagSet.IntVar(&cfg.Rows, "rows", 32, "Grid rows.")
	flagSet.IntVar(&cfg.Cols, "cols", 32, "Grid columns.")
	flagSet.Float64Var(&cfg.P, "p", 0.01, "Edge probability (sparse).")
	flagSet.Int64Var(&cfg.Seed, "seed", 1, "RNG seed.")
	flagSet.IntVar(&cfg.Copies, "copies", 1, "Disjoint copies of the shape.")
	flagSet.BoolVar(&cfg.Symmetric, "symmetric", false, "Emit the reverse of every edge.")
	flagSet.BoolVar(&cfg.Anchor, "anchor", false, "Append a self-loop on the last node so trailing isolated nodes survive.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, Fail(err)
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: ExitCode, Message: "expected exactly one output path"}
	}
	cfg.OutputPath = flagSet.Arg(0)

	cfg.Shape = strings.ToLower(cfg.Shape)
	known := false
	for _, s := range Shapes {
		known = known || s == cfg.Shape
	}
	if !known {
		return nil, false, &ExitError{Code: ExitCode, Message: fmt.Sprintf("unknown shape %q", cfg.Shape)}
	}
	if cfg.Copies < 1 {
		return nil, false, &ExitError{Code: ExitCode, Message: fmt.Sprintf("invalid copies: %d", cfg.Copies)}
	}

	return cfg, false, nil
}
