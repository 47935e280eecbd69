package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/towerforge/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "towerforge",
		Short: "Parameter-driven procedural tower generator",
	}

	rootCmd.AddCommand(buildCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(randomCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [project-path]",
		Short: "Build the tower and emit the scene graph as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runBuild(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Lint a parameter file without building",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [project-path]",
		Short: "Build the tower and export it as a Wavefront OBJ mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0], out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "tower.obj", "output OBJ path (matching .mtl written alongside)")
	return cmd
}

func randomCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Emit a randomized parameter file to stdout",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runRandom(seed)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with the JSON scene API",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
