package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/wildfunctions/algebra/pkg/engine"
	"github.com/wildfunctions/algebra/pkg/pool"
)

func main() {
	fl := engine.DefaultConfig()
	var configPath, file, single, bind string

	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.StringVar(&fl.Action, "action", fl.Action, "action ("+strings.Join(engine.Actions, ", ")+")")
	flag.StringVar(&fl.Var, "var", fl.Var, "variable for linear and solve")
	flag.StringVar(&bind, "bind", "", "variable bindings, e.g. x=1,y=2.5")
	flag.StringVar(&fl.Plot.X, "xaxis", fl.Plot.X, "plot x axis variable")
	flag.StringVar(&fl.Plot.Y, "yaxis", fl.Plot.Y, "plot y axis variable")
	flag.Float64Var(&fl.Plot.From, "from", fl.Plot.From, "first plot sample")
	flag.Float64Var(&fl.Plot.To, "to", fl.Plot.To, "last plot sample")
	flag.IntVar(&fl.Plot.Points, "points", fl.Plot.Points, "number of plot samples")
	flag.IntVar(&fl.Workers, "workers", fl.Workers, "number of parallel workers")
	flag.StringVar(&fl.Format, "format", fl.Format, "output format (text, json, latex)")
	flag.StringVar(&fl.Template, "template", fl.Template, "pongo2 template for text output")
	flag.BoolVar(&fl.Verbose, "verbose", fl.Verbose, "progress output on stderr")
	flag.BoolVar(&fl.Dump, "dump", fl.Dump, "dump the parsed tree")
	flag.IntVar(&fl.Random, "random", fl.Random, "process this many generated expressions and exit")
	flag.StringVar(&fl.Pool, "pool", fl.Pool, "pool for generated expressions ("+strings.Join(pool.Names(), ", ")+")")
	flag.IntVar(&fl.Depth, "depth", fl.Depth, "maximum depth of generated expressions")
	flag.Int64Var(&fl.Seed, "seed", fl.Seed, "random seed (0 = random)")
	flag.StringVar(&file, "file", "", "process every line of a file (- for stdin) and exit")
	flag.StringVar(&single, "e", "", "process one expression and exit")
	flag.Parse()

	cfg := engine.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = engine.LoadConfig(configPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "action":
			cfg.Action = fl.Action
		case "var":
			cfg.Var = fl.Var
		case "xaxis":
			cfg.Plot.X = fl.Plot.X
		case "yaxis":
			cfg.Plot.Y = fl.Plot.Y
		case "from":
			cfg.Plot.From = fl.Plot.From
		case "to":
			cfg.Plot.To = fl.Plot.To
		case "points":
			cfg.Plot.Points = fl.Plot.Points
		case "workers":
			cfg.Workers = fl.Workers
		case "format":
			cfg.Format = fl.Format
		case "template":
			cfg.Template = fl.Template
		case "verbose":
			cfg.Verbose = fl.Verbose
		case "dump":
			cfg.Dump = fl.Dump
		case "random":
			cfg.Random = fl.Random
		case "pool":
			cfg.Pool = fl.Pool
		case "depth":
			cfg.Depth = fl.Depth
		case "seed":
			cfg.Seed = fl.Seed
		}
	})
	if bind != "" {
		b, err := parseBindings(bind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		for k, v := range b {
			cfg.Bindings[k] = v
		}
	}

	e, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	tpl, err := engine.LoadTemplate(cfg.Template)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case single != "":
		report := e.Run([]string{single})
		writeReport(os.Stdout, tpl, cfg.Format, report)
		if report.Failed > 0 {
			os.Exit(1)
		}

	case cfg.Random > 0:
		inputs, err := e.RandomInputs()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		writeReport(os.Stdout, tpl, cfg.Format, e.Run(inputs))

	case file != "":
		var data []byte
		if file == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(file)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
			os.Exit(1)
		}
		writeReport(os.Stdout, tpl, cfg.Format, e.Run(engine.ReadInputs(string(data))))

	default:
		repl(e, tpl, cfg.Format)
	}
}

// repl reads one expression per line, reports the result or the error, and
// prompts again until EOF or "exit".
func repl(e *engine.Engine, tpl *pongo2.Template, format string) {
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(": ")
		if !sc.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return
		}
		res := e.Process(line)
		report := engine.Report{Config: e.Config(), Results: []engine.Result{res}}
		if res.Err != nil {
			report.Failed = 1
		}
		writeReport(os.Stdout, tpl, format, report)
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
		os.Exit(1)
	}
}

func writeReport(w io.Writer, tpl *pongo2.Template, format string, report engine.Report) {
	var err error
	switch format {
	case "json":
		err = engine.WriteJSON(w, report)
	case "latex":
		engine.WriteLatex(w, report)
	default:
		err = engine.WriteText(w, tpl, report)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error writing output: %v\n", err)
		os.Exit(1)
	}
}

// parseBindings parses "name=value" pairs separated by commas.
func parseBindings(s string) (map[string]float64, error) {
	out := map[string]float64{}
	for _, pair := range strings.Split(s, ",") {
		name, val, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("bad binding %q, want name=value", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("bad binding %q: %w", pair, err)
		}
		out[strings.TrimSpace(name)] = v
	}
	return out, nil
}
