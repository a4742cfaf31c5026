package preflight

import (
	"fmt"
	"os"
	"strings"
)

func checkReadableFile(name, path string) Result {
	result := Result{Name: name}
	if strings.TrimSpace(path) == "" {
		result.Detail = "path not set"
		return result
	}
	info, err := os.Stat(path)
	if err != nil {
		result.Detail = fmt.Sprintf("%s does not exist", path)
		return result
	}
	if info.IsDir() {
		result.Detail = fmt.Sprintf("%s is a directory", path)
		return result
	}
	file, err := os.Open(path)
	if err != nil {
		result.Detail = fmt.Sprintf("%s is not readable", path)
		return result
	}
	_ = file.Close()
	result.Passed = true
	return result
}
