package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/makegen-labs/makegen/internal/config"
	"github.com/makegen-labs/makegen/internal/values"
)

//go:embed files/Makefile.tmp
var scaffoldFS embed.FS

// Result holds the outcome of a scaffold generation.
type Result struct {
	Files    []string
	Warnings []string
}

// StarterTemplate returns the embedded starter Makefile template.
func StarterTemplate() ([]byte, error) {
	data, err := scaffoldFS.ReadFile("files/Makefile.tmp")
	if err != nil {
		return nil, fmt.Errorf("reading starter template: %w", err)
	}
	return data, nil
}

// Generate writes Makefile.tmp and makegen.yaml into dir, creating dir if
// needed. Existing files are only replaced when force is set.
func Generate(dir string, file *values.File, force bool) (*Result, error) {
	if file == nil {
		file = &values.File{}
	}

	tmpl, err := StarterTemplate()
	if err != nil {
		return nil, err
	}
	valuesData, err := values.Marshal(file)
	if err != nil {
		return nil, err
	}

	outputs := []struct {
		name string
		data []byte
	}{
		{config.DefaultTemplate, tmpl},
		{values.DefaultFileName, valuesData},
	}

	if !force {
		for _, o := range outputs {
			path := filepath.Join(dir, o.name)
			if _, err := os.Stat(path); err == nil {
				return nil, fmt.Errorf("%s already exists; use --force to overwrite", path)
			}
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	result := &Result{}
	for _, o := range outputs {
		path := filepath.Join(dir, o.name)
		if err := os.WriteFile(path, o.data, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		result.Files = append(result.Files, o.name)
	}

	// The values file is written from user input, so check it the same way
	// render and check will.
	valResult, err := values.ValidateFile(filepath.Join(dir, values.DefaultFileName))
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not validate values file: %v", err))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, issue.String())
		}
	}

	return result, nil
}
