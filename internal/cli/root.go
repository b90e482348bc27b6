// Package cli wires configuration, logging and the site into cobra commands.
package cli

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rahulcj/portfolio/internal/config"
	"github.com/rahulcj/portfolio/internal/logger"
	"github.com/rahulcj/portfolio/internal/page"
	"github.com/rahulcj/portfolio/internal/projects"
)

var appVersion = "0.1.0"

// app is what every command needs once flags have been applied.
type app struct {
	cfg  config.Config
	log  *logger.Logger
	site *page.Site
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "portfolio – personal portfolio site",
		Long:          "Serves the single-page portfolio, or exports it as static files.",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("profile", "", "YAML profile with the site content (default: embedded)")
	root.PersistentFlags().String("static-dir", "", "Directory overriding the embedded static files")
	root.PersistentFlags().String("projects-url", "", "Fetch projects.json from this URL instead of the static files")

	root.AddCommand(newServeCmd(), newBuildCmd())
	return root
}

// Execute runs the CLI until completion or an interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// setup loads the environment and lets explicitly set flags override it.
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("profile") {
		cfg.ProfilePath, _ = flags.GetString("profile")
	}
	if flags.Changed("static-dir") {
		cfg.StaticDir, _ = flags.GetString("static-dir")
	}
	if flags.Changed("projects-url") {
		cfg.ProjectsURL, _ = flags.GetString("projects-url")
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.Port, _ = flags.GetString("port")
	}

	log, err := logger.New(logger.Options{Level: cfg.LogLevel, HumanReadable: cfg.LogHuman, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, err
	}

	profile, err := config.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: log, site: page.NewSite(profile)}, nil
}

// projectSource picks the remote source when configured.
func (a *app) projectSource(static fs.FS) projects.Source {
	if a.cfg.ProjectsURL != "" {
		return projects.HTTPSource{URL: a.cfg.ProjectsURL}
	}
	return projects.FSSource{FS: static, Name: "projects.json"}
}
