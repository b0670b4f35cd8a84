package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jask/walletbar/internal/config"
	"github.com/jask/walletbar/internal/logging"
	"github.com/jask/walletbar/internal/provider"
	"github.com/jask/walletbar/internal/tui"
	"github.com/jask/walletbar/internal/wallet"
)

func main() {
	ctx := context.Background()

	flags := config.Flags()
	initCfg := flags.Bool("init", false, "write a default config file and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("flags: %v", err)
	}

	if *initCfg {
		path := config.DefaultPath()
		if p, _ := flags.GetString("config"); p != "" {
			path = p
		}
		if err := config.WriteDefault(path); err != nil {
			log.Fatalf("init config: %v", err)
		}
		fmt.Println(path)
		return
	}

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logFile, err := logging.OpenFile(cfg.Log.Path)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer logFile.Close()
	logger := logging.New(logFile, cfg.Log.Level, cfg.Log.Format)

	host := provider.NewHost(cfg.Provider.Settings(), logger.With("component", "provider"))
	conn := wallet.New(host, wallet.WithLogger(logger.With("component", "wallet")))
	defer conn.Close()

	logger.Info("starting", "transport", cfg.Provider.Transport)
	p := tea.NewProgram(tui.New(ctx, cfg.UI, conn, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
