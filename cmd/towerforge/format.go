package main

import (
	"fmt"

	"github.com/ChicagoDave/towerforge/pkg/tower"
	"github.com/ChicagoDave/towerforge/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.ParamPath != "" {
				fmt.Printf("    -> %s = %v\n", e.ParamPath, e.ActualValue)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.ParamPath != "" {
				fmt.Printf("    -> %s = %v\n", w.ParamPath, w.ActualValue)
			}
			if w.CorrectedTo != nil {
				fmt.Printf("    build will use: %v\n", w.CorrectedTo)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printTowerSummary(t *tower.Tower) {
	fmt.Println("Tower")
	fmt.Println("=====")
	fmt.Printf("  Floors:       %d x %d-sided slabs\n", t.FloorCount, t.SlabSides)
	fmt.Printf("  Height:       %.2f (slab %.2f)\n", t.Height, t.SlabHeight)
	fmt.Printf("  Base radius:  %.2f\n", t.BaseRadius)
	fmt.Printf("  Stack span:   %.2f .. %.2f\n", t.Bottom(), t.Top())
	fmt.Printf("  Max extent:   %.2f\n", t.MaxExtent())
}
