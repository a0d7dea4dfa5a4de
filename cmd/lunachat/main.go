package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fungone76-ux/luna-chat-v1/internal/chat"
	"github.com/fungone76-ux/luna-chat-v1/internal/config"
	"github.com/fungone76-ux/luna-chat-v1/internal/lora"
)

var version = "dev"

var (
	// Global flags
	configPath string
	verbose    bool

	// Logger, built once in the root PersistentPreRunE
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lunachat",
	Short: "Luna Chat - structured replies, image gating, and prompt assembly",
	Long: `lunachat turns raw language-model output into a validated structured
reply, decides whether the turn warrants an image, and assembles the
positive/negative prompts for the image backend.

The pipeline is parse -> decide -> select -> assemble; every stage is a
pure function over an immutable modifier catalog.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default ~/.config/lunachat/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(turnCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(catalogCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildEngine loads config, characters, and catalog, and wires the engine.
func buildEngine() (*chat.Engine, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	characters, err := chat.LoadCharacters(cfg.CharactersPath)
	if err != nil {
		return nil, nil, err
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}

	engine, err := chat.NewEngine(characters, cfg.DefaultCharacter, cfg.GateConfig(), catalog, cfg.SDXL, logger)
	if err != nil {
		return nil, nil, err
	}
	return engine, cfg, nil
}

func loadCatalog(cfg *config.Config) (*lora.Catalog, error) {
	if cfg.CatalogPath == "" {
		return lora.Default(), nil
	}
	return lora.Load(cfg.CatalogPath)
}

// readRawReply reads the raw model output from a file, or stdin when the
// path is "-" or empty.
func readRawReply(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading reply file: %w", err)
	}
	return string(data), nil
}
