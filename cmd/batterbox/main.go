package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"batterbox/cmd/batterbox/chat"
	"batterbox/internal/config"
	"batterbox/internal/intent"
	"batterbox/internal/llm"
	"batterbox/internal/logging"
	"batterbox/internal/narrative"
	"batterbox/internal/naver"
	"batterbox/internal/router"
	"batterbox/internal/store"
)

// Version is set at build time.
var Version = "1.0.0"

var (
	configPath string
	dataDir    string
	verbose    bool

	logger *zap.Logger
)

// rootCmd launches the interactive chat when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "batterbox",
	Short: "batterbox - KBO player chatbot",
	Long: `batterbox is a conversational assistant for KBO baseball.

It answers questions about players, teams, jersey numbers, season records,
and recent news, combining a local reference dataset with live record pages
and a news search API.

Run without arguments to start the interactive chat interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The chat surface owns the terminal; skip the console logger there
		if cmd.Use == "batterbox" && cmd.CalledAs() == "batterbox" {
			return nil
		}
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
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveChat()
	},
}

// askCmd answers a single question and exits.
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a single question and exit",
	Long: `Answers one question on the command line without entering the chat
interface. Tabular answers are printed as plain rows.

Example:
  batterbox ask "양의지 선수에 대해 알려줘"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

// versionCmd prints the version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("batterbox %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "batterbox.yaml", "config file path")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "reference data directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildRouter loads config and data and wires the answer pipeline.
func buildRouter(ctx context.Context) (*router.Router, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	if err := logging.Initialize(cfg.Logging.Dir, cfg.Logging.DebugMode, cfg.Logging.Level); err != nil {
		return nil, nil, fmt.Errorf("initialize logging: %w", err)
	}

	st, err := store.Load(cfg.Data.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("load reference data: %w", err)
	}

	gemini, err := llm.NewGeminiClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLMTimeout())
	if err != nil {
		return nil, nil, err
	}

	scraper := naver.NewScraper(cfg.Naver.StatsURL, cfg.Browser.Headless, cfg.PageTimeout(), cfg.SettleDelay())
	news := naver.NewNewsClient(cfg.Naver.NewsURL, cfg.Naver.ClientID, cfg.Naver.ClientSecret, cfg.Naver.NewsCount, cfg.NaverTimeout())

	rt := router.New(
		st,
		scraper,
		news,
		narrative.NewGenerator(gemini),
		intent.NewClassifier(gemini),
		cfg.Data.CurrentSeason,
	)
	return rt, cfg, nil
}

func runInteractiveChat() error {
	ctx := context.Background()
	rt, _, err := buildRouter(ctx)
	if err != nil {
		return err
	}
	defer logging.Shutdown()

	program := tea.NewProgram(chat.New(rt), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("chat session failed: %w", err)
	}
	return nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	rt, _, err := buildRouter(ctx)
	if err != nil {
		return err
	}
	defer logging.Shutdown()

	question := args[0]
	for _, extra := range args[1:] {
		question += " " + extra
	}
	logger.Info("answering question", zap.String("question", question))

	reply := rt.Route(ctx, question)
	fmt.Println(reply.Content)

	printTable := func(headers []string, rows [][]string) {
		fmt.Println()
		for i, h := range headers {
			if i > 0 {
				fmt.Print(" | ")
			}
			fmt.Print(h)
		}
		fmt.Println()
		for _, row := range rows {
			for i, cell := range row {
				if i > 0 {
					fmt.Print(" | ")
				}
				fmt.Print(cell)
			}
			fmt.Println()
		}
	}
	if reply.Table != nil {
		printTable(reply.Table.Headers, reply.Table.Rows)
	}
	if reply.Profile != nil {
		printTable(reply.Profile.Headers, reply.Profile.Rows)
	}
	return nil
}
