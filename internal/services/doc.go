// Package services defines the error taxonomy shared by the pipeline stages.
//
// Errors fall into the categories the orchestrator reports to operators:
// usage errors (bad flags, unreadable inputs, detected before any stage
// runs), environment errors (missing or wrong-version external tools),
// sanity-check errors (reference naming mismatches found by inspecting
// intermediate data), validation errors (an artifact that should exist is
// missing or truncated), and external tool errors (a wrapped process failed
// outright). Wrap tags an error with its category and stage context; all
// categories terminate the run.
package services
