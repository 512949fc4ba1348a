package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// OutputManager places generated files under one base directory
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	if baseOutputDir == "" {
		baseOutputDir = "."
	}
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// EnsureOutputDirExists ensures the base output directory exists
func (om *OutputManager) EnsureOutputDirExists() error {
	return os.MkdirAll(om.BaseOutputDir, 0755)
}

// GetOutputFilePath generates a full path for an output file
func (om *OutputManager) GetOutputFilePath(fileName string) string {
	// Clean the filename to remove any path separators
	return filepath.Join(om.BaseOutputDir, filepath.Base(fileName))
}

// WriteFile writes content to fileName inside the base directory and returns the path
func (om *OutputManager) WriteFile(fileName, content string) (string, error) {
	if err := om.EnsureOutputDirExists(); err != nil {
		return "", errors.Wrap(err, "failed to create output directory")
	}

	path := om.GetOutputFilePath(fileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}
