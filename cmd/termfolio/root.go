package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nathoo/termfolio/cli"
	"github.com/nathoo/termfolio/engine"
	"github.com/nathoo/termfolio/render"
	"github.com/nathoo/termfolio/tui"
	"github.com/nathoo/termfolio/web"
)

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "termfolio",
		Short: "A portfolio you browse from a terminal",
		Long: `termfolio serves a portfolio as a small command console.

Without a subcommand it opens the full-screen console when stdout is a
terminal, and the plain line console otherwise.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()
			if !cli.IsTerminal(os.Stdout) {
				return runPlain(a, "", true)
			}
			return runTUI(a)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./termfolio.yaml or ~/.termfolio/termfolio.yaml)")

	root.AddCommand(newPlainCommand(&configPath))
	root.AddCommand(newServeCommand(&configPath))
	root.AddCommand(newVersionCommand())
	return root
}

func newPlainCommand(configPath *string) *cobra.Command {
	var (
		script string
		noRaw  bool
	)
	cmd := &cobra.Command{
		Use:   "plain",
		Short: "Line console without the full-screen interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.close()
			return runPlain(a, script, noRaw)
		},
	}
	cmd.Flags().StringVar(&script, "script", "", "run commands from a file, echoing each line")
	cmd.Flags().BoolVar(&noRaw, "no-raw", false, "read whole lines instead of using the line editor")
	return cmd
}

func newServeCommand(configPath *string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio page and browser console over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.close()
			if addr != "" {
				a.cfg.Server.Addr = addr
			}

			srv, err := web.NewServer(a.cfg, web.Deps{
				Store:    a.store,
				Catalog:  a.catalog,
				Root:     a.root,
				Title:    a.title(),
				Greeting: a.greeting(),
				Log:      a.log,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			fmt.Fprintf(cmd.OutOrStdout(), "serving on %s\n", a.cfg.Server.Addr)
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "termfolio %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

func runTUI(a *app) error {
	rec := render.NewRecorder()
	frames := engine.NewFrames()
	eng := a.newEngine(rec, frames.Send)
	defer eng.Close()

	return tui.Run(tui.Options{
		Engine:   eng,
		Recorder: rec,
		Catalog:  a.catalog,
		Frames:   frames,
		Title:    a.title(),
		Greeting: a.greeting(),
	})
}

// runPlain runs the line console. A script or a non-terminal stdin uses
// the scanner loop; otherwise the raw line editor unless noRaw is set.
func runPlain(a *app, script string, noRaw bool) error {
	rec := render.NewRecorder()
	frames := engine.NewFrames()
	eng := a.newEngine(rec, frames.Send)
	defer eng.Close()

	c := cli.New(eng, rec, a.catalog)
	c.Greeting = a.greeting()

	if script != "" {
		f, err := os.Open(script)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c.In = f
		c.EchoInput = true
		return c.Run()
	}

	if noRaw || !cli.IsTerminal(os.Stdin) {
		return c.Run()
	}
	c.Frames = frames
	return c.RunRaw(int(os.Stdin.Fd()))
}

