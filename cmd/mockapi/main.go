// Command mockapi serves a product list for local runs of the showcase.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-faster/errors"

	"vitrine/internal/config"
	"vitrine/internal/obs"
	"vitrine/showcase/catalog"
	"vitrine/showcase/mockapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.MockAPIAddr, "Listen address.")
	file := flag.String("file", "", "JSON product list to serve (built-in sample when empty).")
	flag.Parse()

	log := obs.New(os.Stderr, obs.ParseLevel(cfg.LogLevel))

	list := mockapi.Sample()
	if *file != "" {
		list, err = mockapi.LoadFile(*file)
		if err != nil {
			log.Error("load_failed", "file", *file, "err", err)
			os.Exit(1)
		}
	}

	if err := run(*addr, list, log); err != nil {
		log.Error("server_failed", "err", err)
		os.Exit(1)
	}
}

func run(addr string, list catalog.ProductList, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           mockapi.NewRouter(list, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("mockapi_listening", "addr", addr, "products", list.Len(), "path", mockapi.ProductsPath)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
