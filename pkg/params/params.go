package params

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the parameter file name looked up inside a project
// directory.
const ProjectFile = "tower.yaml"

// Load reads tower parameters from a YAML file. The decode starts from
// Defaults, so fields missing from the file keep their fallback values.
func Load(path string) (*TowerParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file: %w", err)
	}

	p := Defaults()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing parameter YAML: %w", err)
	}

	return &p, nil
}

// LoadProject loads tower parameters from a project directory. It looks for
// tower.yaml in the given directory.
func LoadProject(projectDir string) (*TowerParameters, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}

// Marshal renders the parameters as YAML, suitable for writing a project
// file.
func (p *TowerParameters) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding parameter YAML: %w", err)
	}
	return data, nil
}
