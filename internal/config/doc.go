// Package config loads, normalizes, and validates copycall configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: the external tool binaries and helper scripts the pipeline
// wraps, and the logging surface. Pipeline thresholds (coverage minimums,
// recenter cutoffs, the segmentation standard deviation) are fixed by the
// calling conventions of the wrapped tools and deliberately not
// configurable.
package config
