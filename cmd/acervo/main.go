package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cmagno/acervo/internal/config"
	"github.com/cmagno/acervo/internal/ingest"
	"github.com/cmagno/acervo/internal/logging"
	"github.com/cmagno/acervo/internal/progress"
	"github.com/cmagno/acervo/internal/session"
	"github.com/cmagno/acervo/internal/store"
	"github.com/cmagno/acervo/internal/ui"
)

func main() {
	fileFlag := flag.String("file", "", "spreadsheet (.xlsx) to load on startup")
	dbFlag := flag.String("db", "", "progress database path (default <data dir>/acervo.db)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dataDir := cfg.ResolveDataDir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	if err := logging.Init(dataDir); err != nil {
		log.Fatalf("Failed to init logging: %v", err)
	}
	defer logging.Close()

	dbPath := *dbFlag
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "acervo.db")
	}
	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Read-state cached from previous sessions seeds the progress map.
	saved, err := st.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load progress: %v", err)
	}
	prog := progress.FromMap(saved)
	logging.Info("progress loaded", "keys", len(saved), "db", dbPath)

	sess := session.New(prog, cfg.UI.PageSize)

	appCfg := ui.AppConfig{
		LoadTable: func(path string) tea.Cmd {
			return func() tea.Msg {
				records, err := ingest.ReadFile(path)
				if err != nil {
					logging.Error("ingest failed", "path", path, "err", err)
					return ui.TableLoaded{Path: path, Err: err}
				}
				logging.Info("table loaded", "path", path, "records", len(records))
				return ui.TableLoaded{Path: path, Records: records}
			}
		},
		LoadProgress: func(path string) tea.Cmd {
			return func() tea.Msg {
				data, err := os.ReadFile(path)
				if err != nil {
					return ui.ProgressFileLoaded{Path: path, Err: fmt.Errorf("read progress file: %w", err)}
				}
				return ui.ProgressFileLoaded{Path: path, Data: data}
			}
		},
		WriteExport: func(data []byte) tea.Cmd {
			return func() tea.Msg {
				dir := cfg.ExportDir
				if dir == "" {
					dir = "."
				}
				path := filepath.Join(dir, progress.ExportFilename(time.Now()))
				if err := os.WriteFile(path, data, 0644); err != nil {
					return ui.ProgressExported{Err: fmt.Errorf("write progress file: %w", err)}
				}
				logging.Info("progress exported", "path", path)
				return ui.ProgressExported{Path: path}
			}
		},
		Flush: func(m map[string]bool) tea.Cmd {
			return func() tea.Msg {
				wrote, err := st.Flush(m)
				return ui.ProgressFlushed{Wrote: wrote, Err: err}
			}
		},
	}

	app := ui.NewApp(sess, appCfg)
	program := tea.NewProgram(app, tea.WithAltScreen())

	if *fileFlag != "" {
		path := *fileFlag
		go program.Send(appCfg.LoadTable(path)())
	}

	if _, err := program.Run(); err != nil {
		logging.Error("program error", "err", err)
	}

	// Final unconditional save on the way out.
	if err := st.Close(prog.Snapshot()); err != nil {
		logging.Error("close store", "err", err)
	}
}
