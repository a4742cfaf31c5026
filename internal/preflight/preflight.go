package preflight

import (
	"context"
	"fmt"
	"strings"

	"copycall/internal/config"
	"copycall/internal/deps"
	"copycall/internal/tools"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Inputs lists the five required input files a run needs.
type Inputs struct {
	ControlBAM  string
	TumorBAM    string
	Reference   string
	Centromeres string
	Whitelist   string
}

// RunAll executes every preflight check: required inputs readable, external
// dependencies present, samtools version supported. Failures here are
// environment or usage errors reported before any stage runs.
func RunAll(ctx context.Context, cfg *config.Config, in Inputs, samtools *tools.Samtools) []Result {
	results := make([]Result, 0, 12)

	for _, input := range []struct {
		name string
		path string
	}{
		{"control alignment", in.ControlBAM},
		{"tumor alignment", in.TumorBAM},
		{"reference", in.Reference},
		{"centromere table", in.Centromeres},
		{"region whitelist", in.Whitelist},
	} {
		results = append(results, checkReadableFile(input.name, input.path))
	}

	for _, status := range deps.Check(deps.FromConfig(cfg)) {
		results = append(results, Result{
			Name:   status.Name,
			Passed: status.Available,
			Detail: status.Detail,
		})
	}

	if samtools != nil {
		results = append(results, checkSamtoolsVersion(ctx, samtools))
	}

	return results
}

// Failed collects the failing checks' descriptions, empty when all passed.
func Failed(results []Result) []string {
	var failures []string
	for _, r := range results {
		if r.Passed {
			continue
		}
		if r.Detail != "" {
			failures = append(failures, fmt.Sprintf("%s: %s", r.Name, r.Detail))
		} else {
			failures = append(failures, r.Name)
		}
	}
	return failures
}

func checkSamtoolsVersion(ctx context.Context, samtools *tools.Samtools) Result {
	result := Result{Name: "samtools version"}
	version, err := samtools.Version(ctx)
	if err != nil {
		result.Detail = err.Error()
		return result
	}
	if !supportedSamtoolsVersion(version) {
		result.Detail = fmt.Sprintf("version %s is unsupported, need 1.x or newer", version)
		return result
	}
	result.Passed = true
	result.Detail = version
	return result
}

// supportedSamtoolsVersion accepts 1.x and newer. The 0.1.x series took
// different mpileup arguments and emits flagstat reports this pipeline does
// not parse.
func supportedSamtoolsVersion(version string) bool {
	major, _, _ := strings.Cut(version, ".")
	switch strings.TrimSpace(major) {
	case "", "0":
		return false
	default:
		return major[0] >= '1' && major[0] <= '9'
	}
}
