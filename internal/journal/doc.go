// Package journal records stage attempts in a SQLite database inside the
// work directory.
//
// The journal exists for operators: it remembers which stages ran, were
// skipped on resume, or failed, together with the exact command text and
// timestamps. It is not a source of truth: the pipeline's resume behavior
// reads only artifact validity on disk, so a deleted or corrupt journal
// never changes what a rerun does. Debug runs never open one.
package journal
