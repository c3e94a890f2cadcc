package resolver

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Resolve turns a local path into the root of the Go module that contains it.
func Resolve(input string, logger *slog.Logger) (string, error) {
	absPath, err := filepath.Abs(input)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", absPath, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", absPath)
	}

	modRoot, err := findModuleRoot(absPath)
	if err != nil {
		return "", err
	}

	logger.Info("resolved local directory", "input", input, "module_root", modRoot)
	return modRoot, nil
}

// PackageDir joins rel onto the module root and checks that it is a directory
// holding at least one .go file.
func PackageDir(root, rel string) (string, error) {
	dir := filepath.Join(root, filepath.FromSlash(rel))
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return "", fmt.Errorf("listing %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no Go files in %s", dir)
	}
	return dir, nil
}

func findModuleRoot(dir string) (string, error) {
	current := dir
	for {
		goMod := filepath.Join(current, "go.mod")
		if _, err := os.Stat(goMod); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no go.mod found in %s or any parent directory", dir)
		}
		current = parent
	}
}
