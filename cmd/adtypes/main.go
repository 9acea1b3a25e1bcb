// adtypes inspects the registered AD backends, and colors sparsity patterns.
//
// Examples:
//
//	adtypes -list
//	adtypes -backend=enzyme:mode=reverse -sparse
//	adtypes -pattern=jacobian.txt -coloring=greedy -partition=column
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/adtypes/backends"
	_ "github.com/gomlx/adtypes/backends/default"
	"github.com/gomlx/adtypes/pkg/core/coloring"
	"github.com/gomlx/adtypes/pkg/core/sparsity"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"k8s.io/klog/v2"
)

var (
	flagList    = flag.Bool("list", false, "Lists the registered AD backends, with their resolved modes.")
	flagBackend = flag.String("backend", "", "Backend configuration to describe, formatted as "+
		"\"<backend_name>:<backend_configuration>\". E.g.: \"forwarddiff:chunksize=4\".")
	flagSparse  = flag.Bool("sparse", false, "Wraps the backend given by -backend in an AutoSparse.")
	flagPattern = flag.String("pattern", "", "File with a sparsity pattern to color: one row per line, "+
		"with 'x' for nonzero entries and '.' for zeros.")
	flagColoring = flag.String("coloring", "greedy",
		fmt.Sprintf("Coloring algorithm to use with -pattern, one of %q, or %q to compare all of them.",
			coloring.AlgorithmNames, allColorings))
	flagPartition = flag.String("partition", "column",
		fmt.Sprintf("Partition to color with -pattern, one of %q.", coloring.PartitionStrings()))
	flagNoColor = flag.Bool("nocolor", false, "Plain ASCII output, without colors. "+
		"It's the default if the output is not a terminal.")
)

// allColorings is the value of -coloring that compares all algorithms.
const allColorings = "all"

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if err := checkFlags(flag.Args(), *flagBackend, *flagSparse); err != nil {
		klog.Errorf("%v. See 'adtypes -help'.", err)
		os.Exit(1)
	}
	if *flagNoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if !*flagList && *flagBackend == "" && *flagPattern == "" {
		*flagList = true
	}

	if *flagList {
		fmt.Println(titleStyle.Render("Backends"))
		fmt.Println(listBackends())
	}
	if *flagBackend != "" {
		backend, err := newBackend(*flagBackend, *flagSparse)
		if err != nil {
			klog.Exitf("Failed to create backend: %+v", err)
		}
		fmt.Println(titleStyle.Render("Backend"))
		fmt.Println(describeBackend(backend))
	}
	if *flagPattern != "" {
		pattern := must.M1(readPattern(*flagPattern))
		var report string
		var err error
		if strings.ToLower(*flagColoring) == allColorings {
			report, err = compareColorings(pattern, *flagPartition)
		} else {
			report, err = colorPattern(pattern, *flagColoring, *flagPartition)
		}
		if err != nil {
			klog.Exitf("Failed to color pattern in %q: %+v", *flagPattern, err)
		}
		fmt.Println(titleStyle.Render("Coloring"))
		fmt.Println(report)
	}
}

// checkFlags returns an error for flag combinations that would be silently ignored.
func checkFlags(args []string, backendConfig string, sparse bool) error {
	if len(args) > 0 {
		return errors.Errorf("unexpected arguments %q", args)
	}
	if sparse && backendConfig == "" {
		return errors.New("-sparse requires -backend")
	}
	return nil
}

// listBackends renders a table with all registered backends, created with their default configuration.
func listBackends() string {
	table := newPlainTable(true, lipgloss.Left, lipgloss.Left, lipgloss.Center)
	table.Headers("Name", "Descriptor", "Mode", "In-place")
	for _, name := range backends.List() {
		backend, err := backends.NewWithConfig(name)
		if err != nil {
			klog.Warningf("Failed to create backend %q with default configuration: %v", name, err)
			continue
		}
		table.Row(name, backend.String(), backends.ResolveMode(backend).String(),
			strconv.FormatBool(backends.SupportsInPlace(backend)))
	}
	return table.Render()
}

// newBackend creates the backend for config, optionally wrapped in an AutoSparse.
func newBackend(config string, sparse bool) (backends.Backend, error) {
	backend, err := backends.NewWithConfig(config)
	if err != nil {
		return nil, err
	}
	if sparse {
		backend = backends.NewAutoSparse(backend)
	}
	return backend, nil
}

// describeBackend renders the capabilities of the backend.
func describeBackend(backend backends.Backend) string {
	caps := backends.CapabilitiesOf(backend)
	table := newPlainTable(false, lipgloss.Right, lipgloss.Left)
	table.Row("name", backend.Name())
	table.Row("descriptor", backend.String())
	table.Row("mode", caps.Mode.String())
	table.Row("forward", strconv.FormatBool(caps.Mode.SupportsForward()))
	table.Row("reverse", strconv.FormatBool(caps.Mode.SupportsReverse()))
	table.Row("in-place", strconv.FormatBool(caps.InPlace))
	table.Row("sparse", strconv.FormatBool(caps.Sparse))
	if caps.Sparse {
		table.Row("dense backend", backends.DenseAD(backend).String())
	}
	return table.Render()
}

// readPattern reads and parses a pattern file.
func readPattern(filePath string) (*sparsity.Pattern, error) {
	contents, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read pattern file %q", filePath)
	}
	pattern, err := sparsity.Parse(string(contents))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse pattern file %q", filePath)
	}
	return pattern, nil
}

func parsePartition(partitionName string) (coloring.Partition, error) {
	partition, err := coloring.PartitionString(partitionName)
	if err != nil {
		return partition, errors.Wrapf(err, "invalid partition %q, valid values are %q", partitionName,
			coloring.PartitionStrings())
	}
	return partition, nil
}

// validColoring colors the pattern and validates the result.
func validColoring(algo coloring.Algorithm, pattern *sparsity.Pattern, partition coloring.Partition) ([]int, error) {
	colors, err := coloring.Color(algo, pattern, partition)
	if err != nil {
		return nil, err
	}
	if err = coloring.Validate(pattern, partition, colors); err != nil {
		return nil, errors.WithMessagef(err, "%s produced an invalid coloring", algo)
	}
	return colors, nil
}

// compression is the number of columns (or rows) per color, the reduction in the number of evaluations
// needed to recover the Jacobian (or Hessian).
func compression(colors []int) string {
	numColors := coloring.NumColors(colors)
	if numColors == 0 {
		return "-"
	}
	return humanize.FtoaWithDigits(float64(len(colors))/float64(numColors), 2) + "x"
}

// colorPattern colors the pattern with the named algorithm and partition, validates the result and renders
// a report.
func colorPattern(pattern *sparsity.Pattern, algoName, partitionName string) (string, error) {
	algo, err := coloring.ByName(algoName)
	if err != nil {
		return "", err
	}
	partition, err := parsePartition(partitionName)
	if err != nil {
		return "", err
	}
	colors, err := validColoring(algo, pattern, partition)
	if err != nil {
		return "", err
	}

	numColors := coloring.NumColors(colors)
	table := newPlainTable(false, lipgloss.Right, lipgloss.Left)
	table.Row("algorithm", algo.String())
	table.Row("partition", partition.String())
	table.Row("shape", fmt.Sprintf("%d x %d", pattern.Rows(), pattern.Cols()))
	table.Row("nonzeros", humanize.Comma(int64(pattern.NNZ())))
	table.Row("# colors", humanize.Comma(int64(numColors)))
	table.Row("compression", compression(colors))
	table.Row("colors", formatColors(colors))
	return table.Render(), nil
}

// compareColorings colors the pattern with every algorithm of coloring.AlgorithmNames in parallel, and renders
// a table comparing them.
func compareColorings(pattern *sparsity.Pattern, partitionName string) (string, error) {
	partition, err := parsePartition(partitionName)
	if err != nil {
		return "", err
	}
	algos := make([]coloring.Algorithm, len(coloring.AlgorithmNames))
	results := make([][]int, len(coloring.AlgorithmNames))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for ii, name := range coloring.AlgorithmNames {
		algo, err := coloring.ByName(name)
		if err != nil {
			return "", err
		}
		algos[ii] = algo
		g.Go(func() error {
			colors, err := validColoring(algo, pattern, partition)
			if err != nil {
				return err
			}
			results[ii] = colors
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return "", err
	}

	table := newPlainTable(true, lipgloss.Left, lipgloss.Right)
	table.Headers("Algorithm", "# Colors", "Compression")
	for ii, algo := range algos {
		table.Row(algo.String(), humanize.Comma(int64(coloring.NumColors(results[ii]))), compression(results[ii]))
	}
	return table.Render(), nil
}

func formatColors(colors []int) string {
	parts := make([]string, len(colors))
	for ii, c := range colors {
		parts[ii] = strconv.Itoa(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
