package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"istudio/internal/buildpipeline"
	"istudio/internal/diag"
	"istudio/internal/driver"
	"istudio/internal/project"
	"istudio/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build [dir]",
	Short: "Compile every source file in a package and emit backend output",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("out", "dist", "output directory for generated files")
	buildCmd.Flags().String("backend", "", "override the backend named in istudio.toml")
	buildCmd.Flags().Int("jobs", 0, "parallel compile jobs (0 picks GOMAXPROCS)")
	buildCmd.Flags().String("cache", "", "disk cache directory (empty disables caching)")
	buildCmd.Flags().Bool("no-progress", false, "disable the interactive progress display")
}

func runBuild(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	backendName, err := cmd.Flags().GetString("backend")
	if err != nil {
		return err
	}
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	cacheDir, err := cmd.Flags().GetString("cache")
	if err != nil {
		return err
	}
	noProgress, err := cmd.Flags().GetBool("no-progress")
	if err != nil {
		return err
	}

	buildDir := dir
	if manifest, ok, mErr := project.Load(dir); mErr != nil {
		return mErr
	} else if ok {
		buildDir = manifest.Root
		if backendName == "" {
			backendName = manifest.Config.Build.Backend
		}
		if !filepath.IsAbs(outDir) {
			outDir = filepath.Join(manifest.Root, outDir)
		}
	}

	var cache *driver.DiskCache
	if cacheDir != "" {
		cache, err = driver.OpenDiskCache(cacheDir)
		if err != nil {
			return fmt.Errorf("open cache %q: %w", cacheDir, err)
		}
	}

	req := buildpipeline.Request{
		Dir:            buildDir,
		OutputDir:      outDir,
		BackendName:    backendName,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics(cmd),
		Cache:          cache,
	}

	ctx := context.Background()

	if noProgress || !isTerminal(os.Stdout) {
		return runBuildPlain(cmd, ctx, req)
	}
	return runBuildWithProgress(cmd, ctx, req)
}

func runBuildPlain(cmd *cobra.Command, ctx context.Context, req buildpipeline.Request) error {
	result, err := buildpipeline.Build(ctx, req, nil)
	if err != nil {
		return err
	}
	return reportBuildResult(cmd, result)
}

func runBuildWithProgress(cmd *cobra.Command, ctx context.Context, req buildpipeline.Request) error {
	files, err := buildpipeline.ListFiles(req.Dir)
	if err != nil {
		return err
	}

	events := make(chan buildpipeline.Event, 32)
	model := ui.NewProgressModel(fmt.Sprintf("building %s", req.Dir), files, events)
	program := tea.NewProgram(model)

	var (
		result    buildpipeline.Result
		buildErr  error
		buildDone = make(chan struct{})
	)
	go func() {
		defer close(buildDone)
		result, buildErr = buildpipeline.Build(ctx, req, events)
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("render progress: %w", err)
	}
	<-buildDone
	if buildErr != nil {
		return buildErr
	}
	return reportBuildResult(cmd, result)
}

func reportBuildResult(cmd *cobra.Command, result buildpipeline.Result) error {
	out := cmd.OutOrStdout()
	if len(result.Diagnostics) > 0 {
		for _, d := range result.Diagnostics {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", severityLabel(d), d.Message)
		}
	}
	for _, path := range result.Written {
		fmt.Fprintf(out, "wrote %s\n", path)
	}
	if result.HasErrors {
		os.Exit(1)
	}
	return nil
}

func severityLabel(d diag.Diagnostic) string {
	switch d.Severity {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}
