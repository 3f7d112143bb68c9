package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
	_ "github.com/mattn/go-sqlite3"

	"github.com/astromechza/handla/pkg/hub"
	"github.com/astromechza/handla/pkg/persist"
	"github.com/astromechza/handla/pkg/server"
	"github.com/astromechza/handla/pkg/store"
	"github.com/astromechza/handla/pkg/suggest"
)

func main() {
	if err := mainInner(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func mainInner() error {
	addrVar := flag.String("addr", "localhost:8080", "the address to listen on")
	databaseVar := flag.String("database", "handla.sqlite3", "path to the sqlite database")
	flag.Parse()

	slog.Info("Opening database", "path", *databaseVar)
	db, err := sql.Open("sqlite3", *databaseVar)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	persister := persist.New(db)
	if err := persister.Init(ctx); err != nil {
		return err
	}

	st := store.New(persister)
	persisted, err := persister.LoadAll(ctx)
	if err != nil {
		return err
	}
	st.Restore(persisted)

	h := server.New(st, hub.New(), suggest.NewIndex())

	r := mux.NewRouter()
	r.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			m := httpsnoop.CaptureMetrics(handler, writer, request)
			slog.Info("handled", "method", request.Method, "url", request.URL, "duration", m.Duration, "status", m.Code)
		})
	})
	r.Methods(http.MethodGet).Path("/api/ws").HandlerFunc(h.Sync)
	r.Methods(http.MethodGet).Path("/api/lists/{list}").HandlerFunc(h.GetList)
	r.Methods(http.MethodGet).Path("/api/suggest").HandlerFunc(h.Suggest)

	httpServer := &http.Server{Addr: *addrVar, Handler: r}

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("Listening", "addr", *addrVar)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server listen failed", "err", err)
		}
	}()

	exit := make(chan os.Signal, 1) // we need to reserve to buffer size 1, so the notifier are not blocked
	signal.Notify(exit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-exit
	slog.Info("Signal caught", "sig", sig)
	cancel()
	_ = httpServer.Close()

	wg.Wait()

	// best-effort final mirror of everything in memory
	st.Flush(context.Background())
	return nil
}
