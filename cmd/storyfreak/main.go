package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storyfreak/internal/config"
	"storyfreak/internal/eventbus"
	"storyfreak/internal/logging"
	"storyfreak/internal/storage"
	"storyfreak/internal/ui"
	"storyfreak/internal/users"
)

// app holds the services shared by every command
type app struct {
	configPath  string
	storagePath string
	verbose     bool

	configSvc config.ConfigService
	cfg       *config.Config
	log       *zap.Logger
	bus       eventbus.EventBus
	repo      *users.Repository
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "storyfreak",
		Short: "Terminal component showcase",
		Long: `storyfreak showcases two terminal components, an input field and a
data table, backed by a small persisted user list.

Run without arguments to start the interactive showcase.`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup() },
		PersistentPostRun: func(cmd *cobra.Command, args []string) { a.shutdown() },
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/storyfreak/"+config.FileName+")")
	flags.StringVar(&a.storagePath, "storage", "", "key-value storage file, overrides storage_path")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newStoriesCmd(a), newUsersCmd(a), newConfigCmd(a))
	return root
}

// setup loads config and wires logger, bus, storage and repository
func (a *app) setup() error {
	// log_file must be known before the logger and bus exist
	bootSvc := config.NewConfigService(a.configPath)
	boot, err := bootSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logFile := boot.LogFile
	if logFile == "" {
		logFile = filepath.Join(filepath.Dir(bootSvc.Path()), logging.DefaultFile)
	}

	log, err := logging.New(logFile, a.verbose)
	if err != nil {
		return err
	}
	bus := eventbus.New(log)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ConfigLoadedEvent)
		log.Info("config loaded",
			zap.String("storage", ev.StoragePath),
			zap.Stringer("theme", ev.Theme))
	})

	configSvc := config.NewConfigServiceWithBus(a.configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		bus.Close()
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.LogFile = logFile
	if a.storagePath != "" {
		cfg.StoragePath = a.storagePath
	}

	store, err := storage.OpenFileStorage(cfg.StoragePath)
	if err != nil {
		bus.Close()
		return fmt.Errorf("failed to open storage: %w", err)
	}

	a.cfg = cfg
	a.log = log
	a.bus = bus
	a.configSvc = configSvc
	a.repo = users.NewRepository(store, bus, log)

	log.Info("storyfreak started",
		zap.String("config", configSvc.Path()),
		zap.String("storage", store.Path()))
	return nil
}

func (a *app) shutdown() {
	if a.bus != nil {
		a.bus.Close()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func (a *app) runTUI(ctx context.Context) error {
	// Subscribe before the model loads data so startup errors are shown
	events := ui.NewEventForwarder(a.bus, a.log)
	defer events.Stop()

	model := ui.NewModel(a.cfg, a.repo, a.bus, a.log)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)
	events.Start(p.Send)

	if _, err := p.Run(); err != nil {
		a.log.Error("program failed", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
