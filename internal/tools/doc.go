// Package tools wraps the external programs the pipeline sequences:
// samtools for alignment statistics and pileup generation, the VarScan jar
// for copy-number calling and refinement, and the Rscript helpers for arm
// splitting and segmentation.
//
// Every wrapped tool is a black box with a documented input/output
// contract; nothing here parses alignments or implements numerics. Clients
// build Invocation values that the stage runner executes, and an Executor
// seam keeps the clients testable without the real binaries installed.
package tools
