package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/football-predictions-view/internal/predictions-view/app"
	"github.com/radieske/football-predictions-view/internal/predictions-view/render"
	"github.com/radieske/football-predictions-view/internal/predictions-view/view"
	"github.com/radieske/football-predictions-view/internal/shared/config"
	"github.com/radieske/football-predictions-view/internal/shared/logger"
	"github.com/radieske/football-predictions-view/internal/shared/metrics"
)

func main() {
	tab := flag.String("tab", "", "aba inicial (games, neural, stats, combo); vazio = padrão da variante")
	format := flag.String("format", "text", "saída: text, markdown ou html")
	interactive := flag.Bool("interactive", false, "lê nomes de abas do stdin; q encerra")
	color := flag.Bool("color", true, "badges coloridos na saída text")
	flag.Parse()

	// carrega config
	cfg, err := config.Load("predictions-view")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	// aba inválida falha antes de qualquer requisição
	startTab, err := initialTab(cfg.Variant, *tab)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tab:", err)
		os.Exit(2)
	}

	// inicia logger (stderr, stdout fica para a view)
	log, err := logger.New(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to build view", zap.Error(err))
	}
	defer a.Close()

	// métricas só quando METRICS_PORT estiver definido
	if cfg.MetricsPort != "" {
		msrv := metrics.StartMetricsServer(cfg.MetricsPort, a.Registry, a.Health)
		defer shutdown(msrv)
		log.Info("metrics/health server starting", zap.String("port", cfg.MetricsPort))
	}

	if err := a.View.Mount(ctx); err != nil {
		log.Fatal("mount failed", zap.Error(err))
	}

	out := &printer{w: os.Stdout, format: *format, opts: render.Options{Location: cfg.Location(), Color: *color}}

	// primeira tela: carregando (markdown e html saem uma vez só, já carregados)
	if *format == "text" {
		if err := out.print(a.View.State()); err != nil {
			log.Fatal("render failed", zap.Error(err))
		}
	}
	if err := a.View.Wait(ctx); err != nil {
		log.Warn("interrompido antes do fim da carga", zap.Error(err))
		return
	}

	if startTab != "" {
		if err := a.View.Select(startTab); err != nil {
			log.Fatal("invalid tab", zap.Error(err))
		}
	}
	if err := out.print(a.View.State()); err != nil {
		log.Fatal("render failed", zap.Error(err))
	}

	if *interactive {
		loop(ctx, os.Stdin, a.View, out, log)
	}
}

// initialTab valida a aba pedida na linha de comando contra a variante; vazio mantém o padrão
func initialTab(variant, raw string) (view.Tab, error) {
	v, err := view.ParseVariant(variant)
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", nil
	}
	tab := view.Tab(raw)
	if !v.Has(tab) {
		return "", fmt.Errorf("%w: %q (%s)", view.ErrUnknownTab, raw, tabNames(v))
	}
	return tab, nil
}

type printer struct {
	w      io.Writer
	format string
	opts   render.Options
}

func (p *printer) print(st view.State) error {
	switch p.format {
	case "text":
		return render.Text(p.w, st, p.opts)
	case "markdown":
		md, err := render.Markdown(st, p.opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(p.w, md)
		return err
	case "html":
		return render.HTML(p.w, st, render.HTMLOptions{Options: p.opts})
	default:
		return fmt.Errorf("unknown format %q", p.format)
	}
}

// loop troca de aba a cada linha lida; não refaz requisições
func loop(ctx context.Context, in io.Reader, v *view.View, out *printer, log *zap.Logger) {
	sc := bufio.NewScanner(in)
	fmt.Fprintf(out.w, "\naba (%s) ou q: ", tabNames(v.State().Variant))
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		cmd := strings.TrimSpace(sc.Text())
		switch {
		case cmd == "":
		case cmd == "q" || cmd == "quit":
			return
		default:
			if err := v.Select(view.Tab(cmd)); err != nil {
				fmt.Fprintln(out.w, err)
			} else if err := out.print(v.State()); err != nil {
				log.Error("render failed", zap.Error(err))
				return
			}
		}
		fmt.Fprintf(out.w, "\naba (%s) ou q: ", tabNames(v.State().Variant))
	}
}

func tabNames(variant view.Variant) string {
	names := make([]string, 0, 4)
	for _, t := range variant.Tabs() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
