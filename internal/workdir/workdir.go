// Package workdir selects or creates the run's working directory and guards
// it against concurrent orchestrators.
//
// The directory is the entire recovery state: one artifact file per stage,
// named deterministically, so pointing a later run at the same directory
// resumes exactly where the previous one stopped.
package workdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"copycall/internal/services"
)

const lockFileName = ".copycall.lock"

// Resolve returns the working directory for this run. Exactly one of
// scratch and resume must be supplied: scratch creates a fresh
// "varscan.<suffix>" directory beneath an existing scratch root, resume
// returns an existing prior directory unchanged. Artifact contents are not
// inspected here; each stage re-checks its own output.
func Resolve(scratch, resume string) (string, error) {
	scratch = strings.TrimSpace(scratch)
	resume = strings.TrimSpace(resume)

	switch {
	case scratch == "" && resume == "":
		return "", services.Wrap(services.ErrUsage, "", "resolve work directory",
			"either a scratch directory or a resume directory is required", nil)
	case scratch != "" && resume != "":
		return "", services.Wrap(services.ErrUsage, "", "resolve work directory",
			"scratch and resume directories are mutually exclusive", nil)
	case resume != "":
		info, err := os.Stat(resume)
		if err != nil || !info.IsDir() {
			return "", services.Wrap(services.ErrUsage, "", "resolve work directory",
				fmt.Sprintf("resume directory %s does not exist", resume), err)
		}
		return resume, nil
	default:
		info, err := os.Stat(scratch)
		if err != nil || !info.IsDir() {
			return "", services.Wrap(services.ErrUsage, "", "resolve work directory",
				fmt.Sprintf("scratch directory %s does not exist", scratch), err)
		}
		dir := filepath.Join(scratch, "varscan."+randomSuffix())
		if err := os.Mkdir(dir, 0o755); err != nil {
			return "", services.Wrap(services.ErrUsage, "", "resolve work directory",
				fmt.Sprintf("create %s", dir), err)
		}
		return dir, nil
	}
}

// Preview mirrors Resolve without touching the filesystem: dry runs need
// artifact paths but must not create the directory. The scratch and resume
// roots are still required to exist so a dry run flags the same usage
// errors a real one would.
func Preview(scratch, resume string) (string, error) {
	scratch = strings.TrimSpace(scratch)
	resume = strings.TrimSpace(resume)

	switch {
	case scratch == "" && resume == "":
		return "", services.Wrap(services.ErrUsage, "", "resolve work directory",
			"either a scratch directory or a resume directory is required", nil)
	case scratch != "" && resume != "":
		return "", services.Wrap(services.ErrUsage, "", "resolve work directory",
			"scratch and resume directories are mutually exclusive", nil)
	case resume != "":
		info, err := os.Stat(resume)
		if err != nil || !info.IsDir() {
			return "", services.Wrap(services.ErrUsage, "", "resolve work directory",
				fmt.Sprintf("resume directory %s does not exist", resume), err)
		}
		return resume, nil
	default:
		info, err := os.Stat(scratch)
		if err != nil || !info.IsDir() {
			return "", services.Wrap(services.ErrUsage, "", "resolve work directory",
				fmt.Sprintf("scratch directory %s does not exist", scratch), err)
		}
		return filepath.Join(scratch, "varscan."+randomSuffix()), nil
	}
}

// Acquire takes an advisory lock on the work directory. Two orchestrators
// sharing one directory would race on every artifact, so the second one
// fails fast instead. Release by calling Unlock on the returned lock.
func Acquire(dir string) (*flock.Flock, error) {
	lock := flock.New(filepath.Join(dir, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrEnvironment, "", "lock work directory", dir, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrEnvironment, "", "lock work directory",
			fmt.Sprintf("another copycall run already holds %s", dir), nil)
	}
	return lock, nil
}

func randomSuffix() string {
	id := uuid.NewString()
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
