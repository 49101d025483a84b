// Package harness measures a Method against a Scenario's exact solution.
//
// Compare solves once, timing the solve, samples the relative error
// |u−exact|/exact·100 on a uniform grid of [0, width], and summarizes it as
// maximum, mean and median. It writes four files named after the scenario
// (prefix) and method (name) into the output directory:
//
//	<prefix>_actual.csv        exact solution, "x,value" per line
//	<prefix>_<name>.csv        numerical solution
//	<prefix>_<name>_diff.csv   relative error in percent
//	<prefix>_<name>_stats.csv  the Report text
//
// WithPlot adds two PNG charts (solution vs exact, and error) rendered with
// gonum/plot.
package harness
