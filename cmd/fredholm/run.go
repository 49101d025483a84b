package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fredholm/harness"
	"github.com/katalvlaran/fredholm/linsolve"
	"github.com/katalvlaran/fredholm/method"
	"github.com/katalvlaran/fredholm/quadrature"
	"github.com/katalvlaran/fredholm/scenario"
)

// methodNames lists the selectable methods in run order.
var methodNames = []string{"galerkin-poly", "galerkin-cos", "neumann", "nystrom"}

// runConfig holds the flags of the run command.
type runConfig struct {
	scenario   string
	method     string
	width      float64
	nodes      int
	points     int
	rounds     int
	polyDegree int
	cosDegree  int
	workers    int
	out        string
	plot       bool
	pivot      bool
}

var runCfg runConfig

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compare methods against the reference scenarios",
	Long: `Solves each selected scenario with each selected method, prints a
report per pair and writes <scenario>_<method>{,_diff,_stats}.csv plus
<scenario>_actual.csv into the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComparison(cmd, runCfg)
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runCfg.scenario, "scenario", "all", "Scenario: exponent, rational, all")
	f.StringVar(&runCfg.method, "method", "all", "Method: "+strings.Join(methodNames, ", ")+", all")
	f.Float64Var(&runCfg.width, "width", 15, "Domain half-width")
	f.IntVar(&runCfg.nodes, "nodes", 5000, "Base node count")
	f.IntVar(&runCfg.points, "points", 5000, "Comparison point count")
	f.IntVar(&runCfg.rounds, "rounds", 500, "Neumann iteration count")
	f.IntVar(&runCfg.polyDegree, "poly-degree", 60, "Degree of the even-power Galerkin basis")
	f.IntVar(&runCfg.cosDegree, "cos-degree", 400, "Degree of the cosine Galerkin basis")
	f.IntVar(&runCfg.workers, "workers", 0, "Goroutines per parallel region (0 = GOMAXPROCS)")
	f.StringVar(&runCfg.out, "out", "results", "Output directory")
	f.BoolVar(&runCfg.plot, "plot", false, "Also render PNG charts")
	f.BoolVar(&runCfg.pivot, "pivot", false, "Use partial pivoting in the linear solver")

	rootCmd.AddCommand(runCmd)
}

func runComparison(cmd *cobra.Command, cfg runConfig) error {
	scenarios, err := selectScenarios(cfg.scenario)
	if err != nil {
		return err
	}
	cases, err := buildCases(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("starting comparison",
		"scenarios", len(scenarios), "methods", len(cases), "nodes", cfg.nodes, "width", cfg.width)

	reports, err := harness.Run(cases, scenarios,
		harness.WithDir(cfg.out),
		harness.WithPoints(cfg.points),
		harness.WithWidth(cfg.width),
		harness.WithPlot(cfg.plot),
		harness.WithLogger(logger),
	)
	for _, r := range reports {
		fmt.Fprintln(cmd.OutOrStdout(), r)
	}

	return err
}

// selectScenarios resolves a --scenario value.
func selectScenarios(name string) ([]scenario.Scenario, error) {
	if name == "all" {
		return scenario.Defaults(), nil
	}
	s, ok := scenario.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown scenario: %s", name)
	}

	return []scenario.Scenario{s}, nil
}

// buildCases configures the methods selected by cfg.method with the
// node budget split of the published runs: Galerkin integrates on nodes/4
// (even powers) and nodes/10 (cosines) points, Neumann on nodes.
func buildCases(cfg runConfig, logger *slog.Logger) ([]harness.Case, error) {
	names := []string{cfg.method}
	if cfg.method == "all" {
		names = methodNames
	}

	var solver linsolve.Solver = linsolve.LU{Workers: cfg.workers, Logger: logger}
	if cfg.pivot {
		solver = linsolve.Pivoting{}
	}
	opts := []method.Option{method.WithWorkers(cfg.workers), method.WithLogger(logger)}
	trapezoid := func(n int) (*quadrature.Trapezoid, error) {
		return quadrature.NewTrapezoid(n, quadrature.WithWorkers(cfg.workers))
	}

	cases := make([]harness.Case, 0, len(names))
	for _, name := range names {
		var (
			m   method.Method
			err error
		)
		switch name {
		case "nystrom":
			m, err = method.NewNystrom(solver, cfg.nodes, opts...)
		case "neumann":
			var rule *quadrature.Trapezoid
			if rule, err = trapezoid(cfg.nodes); err == nil {
				m, err = method.NewNeumann(cfg.rounds, cfg.nodes, rule, opts...)
			}
		case "galerkin-poly":
			var rule *quadrature.Trapezoid
			if rule, err = trapezoid(cfg.nodes / 4); err == nil {
				m, err = method.NewPolynomialGalerkin(rule, solver, method.SemicircleWeight, cfg.polyDegree, opts...)
			}
		case "galerkin-cos":
			var rule *quadrature.Trapezoid
			if rule, err = trapezoid(cfg.nodes / 10); err == nil {
				m, err = method.NewCosineGalerkin(rule, solver, method.SemicircleWeight, cfg.cosDegree, opts...)
			}
		default:
			return nil, fmt.Errorf("unknown method: %s", name)
		}
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", name, err)
		}
		cases = append(cases, harness.Case{Name: name, Method: m})
	}

	return cases, nil
}
