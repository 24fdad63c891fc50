package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noanitzan/my-keeps/internal/config"
	"github.com/noanitzan/my-keeps/internal/keeps"
	"github.com/noanitzan/my-keeps/internal/logging"
	"github.com/noanitzan/my-keeps/internal/store"
	"github.com/noanitzan/my-keeps/internal/tui"
	"github.com/noanitzan/my-keeps/internal/ui"
)

// app is the state one invocation builds in PersistentPreRunE.
type app struct {
	opt Options

	// root flags
	dataDir string
	backend string
	verbose bool
	noColor bool

	cfg     config.Config
	log     *zap.Logger
	lib     *keeps.Library
	sharer  keeps.Sharer
	closeFn func() error
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "keeps",
		Short: "keeps - collect the things that bring you joy",
		Long: `keeps collects images, quotes, poems, galleries and movies,
organised into folders and stored locally.

Run without arguments to open the interactive browser.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup() },
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown command %q", args[0])
			}
			return a.runInteractive(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "where collections are stored (default ~/.keeps)")
	root.PersistentFlags().StringVar(&a.backend, "backend", "", "storage backend: json, sqlite or memory")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output (also NO_COLOR)")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usagef("%s", err.Error())
	})

	root.AddCommand(
		domainCommand(a, keeps.Images, func(l *keeps.Library) *keeps.ImageCollection { return l.Images }, keeps.ImageForm),
		domainCommand(a, keeps.Quotes, func(l *keeps.Library) *keeps.QuoteCollection { return l.Quotes }, keeps.QuoteForm),
		domainCommand(a, keeps.Poems, func(l *keeps.Library) *keeps.PoemCollection { return l.Poems }, keeps.PoemForm),
		domainCommand(a, keeps.Galleries, func(l *keeps.Library) *keeps.GalleryCollection { return l.Galleries }, keeps.GalleryForm),
		domainCommand(a, keeps.Movies, func(l *keeps.Library) *keeps.MovieCollection { return l.Movies }, keeps.MovieForm),
		a.statsCommand(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.dataDir)
	if err != nil {
		return err
	}
	if err := cfg.Override(a.dataDir, a.backend); err != nil {
		return usagef("%s", err.Error())
	}
	a.cfg = cfg
	ui.SetTheme(cfg.Theme)
	if a.noColor || os.Getenv("NO_COLOR") != "" {
		ui.SetColorForcing(false, true)
	}

	a.log, err = logging.New(cfg.Logging.Level, cfg.Logging.File, a.verbose)
	if err != nil {
		return err
	}
	medium, closeFn, err := store.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return err
	}
	a.closeFn = closeFn
	a.log.Debug("storage opened", zap.String("backend", cfg.Backend), zap.String("dir", cfg.DataDir))

	a.lib = keeps.NewLibrary(store.NewAdapter(medium, a.log), keeps.WithLogger(a.log))
	a.lib.Initialize()
	a.sharer = keeps.Sharer{Origin: cfg.Origin, Clipboard: a.opt.Clipboard, Log: a.log}
	return nil
}

func (a *app) close() {
	if a.closeFn != nil {
		if err := a.closeFn(); err != nil && a.log != nil {
			a.log.Warn("close storage", zap.Error(err))
		}
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

// runInteractive starts the TUI; when it fails the user may try again.
func (a *app) runInteractive(cmd *cobra.Command) error {
	in := bufio.NewReader(cmd.InOrStdin())
	for {
		err := tui.Run(a.lib, a.sharer)
		if err == nil {
			return nil
		}
		a.log.Error("interactive session failed", zap.Error(err))
		ui.Fail(cmd.ErrOrStderr(), "Something went wrong: "+err.Error())
		fmt.Fprint(cmd.OutOrStdout(), "Try again? [y/N] ")
		answer, _ := in.ReadString('\n')
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			return fmt.Errorf("tui: %w", err)
		}
	}
}
