// Command copycall is the command-line entry point for the somatic
// copy-number calling pipeline. The run command executes the pipeline
// against a work directory; plan, deps, and config are operator utilities.
package main
