package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	cfg, err := loadConfig(configPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	bindFlags(flag.CommandLine, cfg)
	listSaves := flag.Bool("list-saves", false, "List archived key codes and exit")

	flag.Usage = func() {
		fmt.Printf("Usage: threedoors [options]\n\n")
		fmt.Printf("Options:\n")
		fmt.Printf("  -h, --help           Show this help message\n")
		fmt.Printf("  --headless           Run in headless mode\n")
		fmt.Printf("  --seed <n>           Set the random seed\n")
		fmt.Printf("  --shop               Start the run in the item shop\n")
		fmt.Printf("  --save-path <path>   Save file path (default: %s)\n", DefaultSavePath)
		fmt.Printf("  --world <path>       Override narration from an ini file\n")
		fmt.Printf("  --autosave           Enable autosave and the save archive\n")
		fmt.Printf("  --autosave-interval  Turns between autosaves (default: 5)\n")
		fmt.Printf("  --autosave-path      Archive file path (default: data/autosave.db)\n")
		fmt.Printf("  --restore <code>     Start from an archived save\n")
		fmt.Printf("  --resume             Start from the latest autosave\n")
		fmt.Printf("  --list-saves         List archived key codes\n")
		fmt.Printf("  --mcp-http           Serve the game over MCP Streamable HTTP\n")
		fmt.Printf("\nSettings are also read from %s (or $%s).\n", DefaultConfigPath, ConfigPathEnv)
	}

	flag.Parse()

	logger, err := newLogger(cfg.LogLevel, cfg.LogEncoding, cfg.LogOutput)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	world, err := loadWorld(cfg.WorldPath)
	if err != nil {
		logger.Fatal("load world failed", zap.Error(err))
	}

	deps := gameDeps{World: world, Log: logger}
	if cfg.Autosave || cfg.Restore != "" || cfg.Resume || *listSaves {
		archive, err := openArchive(cfg.AutosavePath)
		if err != nil {
			logger.Fatal("open archive failed", zap.Error(err))
		}
		defer archive.Close()
		deps.Archive = archive
	}

	if *listSaves {
		codes, err := deps.Archive.Codes()
		if err != nil {
			logger.Fatal("list saves failed", zap.Error(err))
		}
		for _, code := range codes {
			outPrintln(nil, code)
		}
		return
	}

	if cfg.MCPHTTP {
		server, err := NewMCPServer(cfg, deps)
		if err != nil {
			logger.Fatal("start game failed", zap.Error(err))
		}
		if err := RunMCPHTTP(server, cfg); err != nil {
			logger.Fatal("mcp server stopped", zap.Error(err))
		}
		return
	}

	g, err := openGame(cfg, deps, nil, os.Stdout)
	if err != nil {
		logger.Fatal("start game failed", zap.Error(err))
	}
	reader := newConsoleReader(cfg.Headless)

	for g.IsPlaying {
		line, err := reader.ReadLine("> ")
		if err != nil {
			logger.Fatal("read input failed", zap.Error(err))
		}
		if err := g.Feed(line); err != nil {
			logger.Fatal("game aborted", zap.Error(err))
		}
	}
}
