package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/uno-arena/internal/logger"
	"github.com/palemoky/uno-arena/internal/ui"
)

func main() {
	serverAddr := flag.String("server", "localhost:1790", "服务器地址")
	offline := flag.Bool("offline", false, "单机模式（人机对战，无需服务器）")
	mode := flag.String("mode", "classic", "游戏模式: classic/flip")
	bots := flag.Int("bots", 2, "单机模式的机器人数量")
	flag.Parse()

	// 日志写到文件，避免污染终端界面
	if err := logger.Init(); err != nil {
		log.Printf("初始化日志失败: %v", err)
	}
	defer logger.Close()

	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	var model tea.Model
	if *offline {
		model = ui.NewOfflineModel(*mode, *bots)
	} else {
		serverURL := fmt.Sprintf("ws://%s/ws", *serverAddr)
		model = ui.NewOnlineModel(serverURL)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动客户端时出错: %v", err)
	}
}
