package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"view-tween/internal/config"
	"view-tween/internal/core/doc"
	"view-tween/internal/infra/logx"
	"view-tween/internal/ui"
)

func main() {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Println("config:", err)
	}
	logx.SetMinLevel(logx.ParseLevel(cfg.LogLevel))

	// Enable debug logging when DEBUG environment variable is set
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
		logx.SetOutput(f)
		logx.SetMinLevel(logx.LevelDebug)
		fmt.Println("Debug logging enabled. Run 'tail -f debug.log' to view logs.")
	}

	d, title, err := loadDocument()
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	m := ui.InitialModel(cfg, title, d)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	m.Session().SetNotify(func() { p.Send(ui.FrameMsg{}) })

	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func loadDocument() (*doc.Document, string, error) {
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			return nil, "", err
		}
		return doc.FromText(string(data)), filepath.Base(os.Args[1]), nil
	}
	return doc.FromText(sampleText()), "sample", nil
}

// sampleText builds a foldable demo document when no file is given.
func sampleText() string {
	var b strings.Builder
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&b, "section %d\n", i)
		for j := 1; j <= 6; j++ {
			fmt.Fprintf(&b, "    item %d.%d\n", i, j)
			if j%3 == 0 {
				fmt.Fprintf(&b, "        note for item %d.%d\n", i, j)
			}
		}
	}
	return b.String()
}
