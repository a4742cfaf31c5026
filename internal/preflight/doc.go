// Package preflight validates the environment before the first stage runs:
// required input files, wrapped tool availability, and the samtools
// version. On real runs any failure is fatal; debug runs downgrade tooling
// failures to warnings so the stage sequence can still be inspected on a
// machine without the tools installed.
package preflight
