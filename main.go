package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kaique/pubdesk/internal/config"
	"github.com/kaique/pubdesk/internal/gateway"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(1)
	}

	if cfg.UI.Debug {
		f, err := tea.LogToFile("pubdesk-debug.log", "debug")
		if err != nil {
			fmt.Println("debug log:", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	gw := gateway.New(cfg.API.BaseURL, cfg.API.Timeout())

	p := tea.NewProgram(newModel(context.Background(), cfg, gw), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
