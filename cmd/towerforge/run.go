package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ChicagoDave/towerforge/pkg/export"
	"github.com/ChicagoDave/towerforge/pkg/params"
	"github.com/ChicagoDave/towerforge/pkg/scene"
	"github.com/ChicagoDave/towerforge/pkg/tower"
	"github.com/ChicagoDave/towerforge/pkg/validation"
)

// loadAndLint loads the parameter file and runs the pre-build lint.
func loadAndLint(projectPath string) (*params.TowerParameters, *validation.Report, error) {
	p, err := params.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading parameters: %w", err)
	}
	return p, validation.ValidateParams(p), nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndLint(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runBuild(projectPath string) error {
	p, report, err := loadAndLint(projectPath)
	if err != nil {
		return err
	}

	// Building never fails, but surface lint findings on stderr so a piped
	// scene graph stays clean JSON.
	if len(report.Errors) > 0 || len(report.Warnings) > 0 {
		fmt.Fprintf(os.Stderr, "parameter lint: %s\n", report.Summary)
	}

	t := tower.Build(*p)
	graph := scene.Assemble(t, *p)
	report.Merge(scene.ValidateGraph(graph))

	output := map[string]any{
		"parameters":  p,
		"tower":       t,
		"validation":  report,
		"scene_graph": graph,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runExport(projectPath, outPath string) error {
	p, report, err := loadAndLint(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		fmt.Fprintln(os.Stderr, "exporting anyway; corrected values are in effect")
	}

	t := tower.Build(*p)
	if err := export.ExportOBJ(outPath, t); err != nil {
		return err
	}

	printTowerSummary(t)
	fmt.Printf("Exported %d floors to %s\n", len(t.Floors), outPath)
	return nil
}

func runRandom(seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	p := params.Defaults()
	p.Randomize(rng)

	data, err := p.Marshal()
	if err != nil {
		return err
	}

	fmt.Printf("# seed: %d\n", seed)
	_, err = os.Stdout.Write(data)
	return err
}
