package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bon-clevique/NotionSync/internal/adapters/driven/config/env"
	"github.com/bon-clevique/NotionSync/internal/adapters/driven/config/file"
	"github.com/bon-clevique/NotionSync/internal/adapters/driven/filesystem"
	"github.com/bon-clevique/NotionSync/internal/adapters/driven/notion"
	"github.com/bon-clevique/NotionSync/internal/core/domain"
	"github.com/bon-clevique/NotionSync/internal/core/services"
	"github.com/bon-clevique/NotionSync/internal/logger"
	"github.com/bon-clevique/NotionSync/internal/markdown"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch directories and upload new markdown files",
	Long: `Runs the sync daemon. New markdown files appearing in the watched
directories are converted to Notion blocks, created as pages in the
configured database and then archived or deleted locally.

Directories come from the --targets file, a single positional argument,
the ` + env.WatchDirsVar + ` variable or ~/.notionsync/sync_targets.json,
in that order. The daemon runs until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

var (
	watchTargetsFile string
	watchDisposal    string
)

func init() {
	watchCmd.Flags().StringVar(&watchTargetsFile, "targets", "",
		"path to a sync targets JSON file")
	watchCmd.Flags().StringVar(&watchDisposal, "disposal", "",
		"what to do with uploaded files: archive or delete")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	// 1. Resolve configuration before touching the filesystem.
	creds, err := env.LoadCredentials()
	if err != nil {
		return err
	}

	configDir := defaultConfigDir()
	settings, err := file.LoadSettings(filepath.Join(configDir, file.SettingsFileName))
	if err != nil {
		return err
	}
	if watchDisposal != "" {
		settings.Disposal = watchDisposal
	}
	mode, err := domain.ParseDisposalMode(settings.Disposal)
	if err != nil {
		return err
	}

	targets, err := resolveTargets(watchTargetsFile, args, configDir)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("%w: configure %s or pass a directory",
			domain.ErrNoTargets, file.TargetsFileName)
	}

	// 2. Send log output to the console and the log file.
	logDir := settings.LogDir
	if logDir == "" {
		logDir = logger.DefaultDir()
	}
	logFile, err := logger.OpenFile(logDir)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger.SetOutput(io.MultiWriter(os.Stderr, logFile))
	defer logger.SetOutput(os.Stderr)

	// 3. Assemble the daemon.
	dirs := make([]string, 0, len(targets))
	for _, target := range targets {
		dirs = append(dirs, target.Directory)
	}
	watcher, err := filesystem.NewWatcher(dirs)
	if err != nil {
		return err
	}
	defer watcher.Close()

	disposer, err := filesystem.NewDisposer(mode)
	if err != nil {
		return err
	}

	publisher := notion.New(notion.Config{
		Token:            creds.Token,
		DatabaseID:       creds.DatabaseID,
		TitleProperty:    settings.TitleProperty,
		RelationProperty: settings.RelationProperty,
	})

	pipeline := services.NewSyncPipeline(
		filesystem.NewReader(), markdown.New(), publisher, disposer)
	dispatcher := services.NewDispatcher(targets, watcher, pipeline,
		services.WithSettleDelay(settings.SettleDelay()))

	// 4. Run until interrupted. In-flight uploads finish first.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("notionsync %s starting (disposal: %s)", version, mode)
	if err := dispatcher.Run(ctx); err != nil {
		return err
	}
	logger.Info("Shutdown complete")
	return nil
}

// resolveTargets picks the watch target list from the first configured
// source: an explicit targets file, a positional directory, the
// environment, then the default targets file. A missing default file
// means no targets; a missing explicit file is an error.
func resolveTargets(targetsFile string, args []string, configDir string) ([]domain.WatchTarget, error) {
	if targetsFile != "" {
		return file.LoadTargets(targetsFile)
	}

	if len(args) > 0 {
		return []domain.WatchTarget{{Directory: args[0]}}, nil
	}

	if targets, ok := env.Targets(); ok {
		return targets, nil
	}

	targets, err := file.LoadTargets(filepath.Join(configDir, file.TargetsFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return targets, nil
}
