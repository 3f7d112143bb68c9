package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/astromechza/handla/pkg/agent"
	"github.com/astromechza/handla/pkg/list"
	"github.com/astromechza/handla/pkg/ui"
)

func main() {
	if err := mainInner(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func mainInner() error {
	addrVar := flag.String("addr", "127.0.0.1:8080", "the address of the server")
	listVar := flag.String("list", "", "the id of the shared list to open")
	nameVar := flag.String("name", "", "set the list name on first connect")
	cacheVar := flag.String("cache", "", "directory for the offline cache (defaults to the user cache dir)")
	flag.Parse()

	if *listVar == "" {
		return fmt.Errorf("a -list id is required")
	}

	// the TUI owns the terminal, agent logs would tear it up
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	cacheDir := *cacheVar
	if cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return fmt.Errorf("failed to resolve cache dir: %w", err)
		}
		cacheDir = filepath.Join(base, "handla")
	}

	wsURL := url.URL{
		Scheme:   "ws",
		Host:     *addrVar,
		Path:     "/api/ws",
		RawQuery: url.Values{"listId": {*listVar}}.Encode(),
	}

	a := agent.New(*listVar, agent.WebSocketDialer(wsURL.String()), agent.NewCache(cacheDir))
	if *nameVar != "" {
		a.Send(list.Message{Type: list.TypeUpdateName, Name: *nameVar})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.Run(ctx)
	}()

	p := tea.NewProgram(ui.New(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		cancel()
		wg.Wait()
		return fmt.Errorf("failed to run ui: %w", err)
	}

	cancel()
	wg.Wait()
	return nil
}
