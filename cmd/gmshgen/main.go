package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshforge/gmsh-go/internal/apigen"
	"github.com/meshforge/gmsh-go/internal/libpath"
	"github.com/meshforge/gmsh-go/pkg/gmsh"
)

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gmshgen",
		Short: "Maintain the generated Gmsh C API bindings",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	cobra.EnableCommandSorting = false

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the cgo wrappers from the API descriptor",
		Long: "Render the cgo wrappers and their non-cgo stubs from the API descriptor.\n" +
			"Run from the repository root so the source path recorded in the generated\n" +
			"headers matches the committed files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptor, _ := cmd.Flags().GetString("descriptor")
			outDir, _ := cmd.Flags().GetString("out")
			typemapPath, _ := cmd.Flags().GetString("typemap")
			check, _ := cmd.Flags().GetBool("check")

			api, err := apigen.Load(descriptor)
			if err != nil {
				return err
			}
			slog.Debug("parsed descriptor", "functions", len(api.Functions), "version", api.Version, "sha256", api.Checksum)

			tm := apigen.NewTypeMap()
			if typemapPath != "" {
				if tm, err = apigen.LoadTypeMap(typemapPath); err != nil {
					return err
				}
			}
			files, err := apigen.Generate(api, tm, apigen.Options{Source: descriptor, OutDir: outDir})
			if err != nil {
				return err
			}

			if check {
				stale, err := apigen.Check(files)
				if err != nil {
					return err
				}
				if len(stale) > 0 {
					return fmt.Errorf("stale generated files, run gmshgen generate: %s", strings.Join(stale, ", "))
				}
				fmt.Printf("%d files up to date\n", len(files))
				return nil
			}

			if err := apigen.Write(files); err != nil {
				return err
			}
			for _, f := range files {
				fmt.Printf("wrote %s (%d functions)\n", f.Path, len(api.Functions))
			}
			return nil
		},
	}
	generateCmd.Flags().String("descriptor", "api/gmsh_api.json", "API descriptor to render from")
	generateCmd.Flags().String("out", "internal/bindings", "directory the generated files are written to")
	generateCmd.Flags().String("typemap", "", "YAML file mapping additional descriptor types onto builtin ones")
	generateCmd.Flags().Bool("check", false, "verify the committed files are current instead of writing")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the API descriptor against its schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptor, _ := cmd.Flags().GetString("descriptor")
			api, err := apigen.Load(descriptor)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d functions, Gmsh API %s, sha256 %s\n",
				descriptor, len(api.Functions), api.Version, api.Checksum)
			return nil
		},
	}
	validateCmd.Flags().String("descriptor", "api/gmsh_api.json", "API descriptor to validate")

	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the local Gmsh installation",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("search order:")
			for _, p := range libpath.Candidates() {
				fmt.Printf("  %s\n", p)
			}
			path, err := libpath.Locate()
			if err != nil {
				return err
			}
			fmt.Printf("found %s\n", path)
			if err := libpath.Probe(path); err != nil {
				return err
			}
			fmt.Println("library loads and exports the Gmsh C API")
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print wrapper and API versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("gmsh-go %s (Gmsh API %s)\n", gmsh.WrapperVersion(), gmsh.APIVersion())
			return nil
		},
	}

	rootCmd.AddCommand(
		generateCmd,
		validateCmd,
		doctorCmd,
		versionCmd,
	)

	return rootCmd
}

func main() {
	cobra.CheckErr(NewCLI().Execute())
}
