package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jcorbin/flatscript/internal/lineinput"
	"github.com/jcorbin/flatscript/internal/logio"
	"github.com/jcorbin/flatscript/internal/panicerr"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	var (
		configPath string
		timeout    time.Duration
		trace      bool
		traceFile  string
		labels     string
	)
	flag.StringVar(&configPath, "config", "", "load settings from a TOML file")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit for each script")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&traceFile, "trace-file", "", "write trace records to a JSON lines file")
	flag.StringVar(&labels, "labels", "", "label mode: lazy or prescan")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [flags] [script ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var cfg Config
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			return 2
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "timeout":
			cfg.Timeout.Duration = timeout
		case "trace":
			cfg.Trace = trace
		case "trace-file":
			cfg.TraceFile = traceFile
		case "labels":
			cfg.Labels = labels
		}
	})
	opts, err := cfg.Options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 2
	}

	log, logCloser, err := newLogger(os.Stderr, cfg.Trace, cfg.TraceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 2
	}
	defer logCloser.Close()

	// scripts share one buffered stdin, so INPUT lines flow across them
	stdin := bufio.NewReader(os.Stdin)

	progs, err := loadPrograms(flag.Args(), stdin)
	if err != nil {
		log.Error("load", "error", err)
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	for _, prog := range progs {
		progLog := log.With("prog", prog.Name)
		vm := New(append(opts,
			WithInput(lineinput.NamedReader("stdin", stdin)),
			WithOutput(os.Stdout),
			WithLogger(progLog),
		)...)
		err := runProgram(ctx, cfg.Timeout.Duration, vm, prog)
		if cfg.Trace {
			lw := logio.SlogWriter(progLog, slog.LevelDebug)
			vmDumper{vm: vm, out: lw}.dump()
			lw.Close()
		}
		if cerr := vm.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			if panicerr.IsPanic(err) {
				progLog.Error("interpreter panic", "stack", panicerr.PanicStack(err))
			}
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			return 1
		}
	}
	return 0
}

func loadPrograms(paths []string, stdin *bufio.Reader) ([]Program, error) {
	if len(paths) == 0 {
		prog, err := ReadProgram(lineinput.NamedReader("stdin", stdin))
		return []Program{prog}, err
	}
	progs := make([]Program, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		prog, err := ReadProgram(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("cannot read %v: %w", path, err)
		}
		progs = append(progs, prog)
	}
	return progs, nil
}

func runProgram(ctx context.Context, timeout time.Duration, vm *VM, prog Program) error {
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	start := time.Now()
	err := vm.Run(ctx, prog)
	vm.logger.Debug("done", "elapsed", time.Since(start), slog.Bool("ok", err == nil))
	return err
}
