// Package engine runs a session of algebra commands over one or many inputs
// and renders the results.
package engine

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/alecthomas/repr"

	"github.com/wildfunctions/algebra/pkg/expr"
	"github.com/wildfunctions/algebra/pkg/lexer"
	"github.com/wildfunctions/algebra/pkg/parser"
	"github.com/wildfunctions/algebra/pkg/plot"
	"github.com/wildfunctions/algebra/pkg/pool"
)

// Engine applies the configured action to inputs.
type Engine struct {
	cfg Config
}

// Point is one sample of a plotted equation. Y is nil where the value is
// not a finite number.
type Point struct {
	X float64  `json:"x"`
	Y *float64 `json:"y"`
}

// Result is the outcome of processing a single input.
type Result struct {
	Input       string   `json:"input"`
	Tokens      []string `json:"tokens,omitempty"`
	Parsed      string   `json:"parsed,omitempty"`
	Output      string   `json:"output,omitempty"`
	OutputLaTeX string   `json:"output_latex,omitempty"`
	Value       *float64 `json:"value,omitempty"`
	Coeff       string   `json:"k,omitempty"`
	Offset      string   `json:"b,omitempty"`
	Samples     []Point  `json:"samples,omitempty"`
	FreeVars    []string `json:"free_vars,omitempty"`
	Nodes       int      `json:"nodes,omitempty"`
	Depth       int      `json:"depth,omitempty"`
	Dump        string   `json:"dump,omitempty"`
	Error       string   `json:"error,omitempty"`

	// Err is the error behind Error, for errors.Is checks.
	Err error `json:"-"`
}

// Report summarizes a batch run.
type Report struct {
	Config    Config    `json:"config"`
	Results   []Result  `json:"results"`
	Failed    int       `json:"failed"`
	Timestamp time.Time `json:"timestamp"`
}

// New creates a new engine from the given config.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Bindings == nil {
		cfg.Bindings = map[string]float64{}
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Process parses input and applies the configured action to it.
func (e *Engine) Process(input string) Result {
	res := Result{Input: input}

	if e.cfg.Action == ActionTokens {
		for _, tok := range lexer.Tokenize(input) {
			res.Tokens = append(res.Tokens, tok.Value)
		}
		return res
	}

	tree, err := parser.Parse(input)
	if err != nil {
		return res.fail(err)
	}
	res.Parsed = tree.String()
	res.FreeVars = expr.FreeVars(tree)
	if e.cfg.Dump {
		res.Dump = repr.String(tree, repr.Indent("  "))
	}

	var out expr.Expr
	switch e.cfg.Action {
	case ActionSimplify:
		out = expr.Simplify(tree)

	case ActionEval:
		v, err := expr.Evaluate(tree, e.cfg.Bindings)
		if err != nil {
			return res.fail(err)
		}
		res.Value = &v
		out = expr.Const(v)

	case ActionLinear:
		k, b, err := expr.LinearForm(expr.Simplify(tree), e.cfg.Var)
		if err != nil {
			return res.fail(err)
		}
		k, b = expr.Simplify(k), expr.Simplify(b)
		res.Coeff, res.Offset = k.String(), b.String()
		out = expr.Add(expr.Mul(k, expr.Var(e.cfg.Var)), b)

	case ActionSolve:
		solved, err := expr.Solve(tree, e.cfg.Var)
		if err != nil {
			return res.fail(err)
		}
		if e.bound(solved.Right) {
			v, err := solved.Right.Eval(e.cfg.Bindings)
			if err != nil {
				return res.fail(err)
			}
			res.Value = &v
		}
		out = solved

	case ActionPlot:
		pc := e.cfg.Plot
		params := map[string]expr.Expr{}
		for name, v := range e.cfg.Bindings {
			if name != pc.X && name != pc.Y {
				params[name] = expr.Const(v)
			}
		}
		xs := plot.Range(pc.From, pc.To, pc.Points)
		ys, err := plot.Sample(expr.Substitute(tree, params), pc.X, pc.Y, xs)
		if err != nil {
			return res.fail(err)
		}
		res.Samples = make([]Point, len(xs))
		for i := range xs {
			res.Samples[i] = Point{X: xs[i]}
			if y := ys[i]; !math.IsNaN(y) && !math.IsInf(y, 0) {
				res.Samples[i].Y = &y
			}
		}
		out = tree
	}

	res.Output = out.String()
	res.OutputLaTeX = out.LaTeX()
	res.Nodes = out.NodeCount()
	res.Depth = out.Depth()
	return res
}

// bound reports whether every variable of e has a binding.
func (e *Engine) bound(x expr.Expr) bool {
	for _, name := range expr.FreeVars(x) {
		if _, ok := e.cfg.Bindings[name]; !ok {
			return false
		}
	}
	return true
}

func (r Result) fail(err error) Result {
	r.Err = err
	r.Error = err.Error()
	return r
}

// Run processes all inputs in parallel and returns the results in input order.
func (e *Engine) Run(inputs []string) Report {
	start := time.Now()
	n := len(inputs)
	results := make([]Result, n)

	workers := e.cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if e.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Starting action %s on %d inputs, workers %d\n", e.cfg.Action, n, workers)
	}

	type job struct {
		idx   int
		input string
	}

	jobs := make(chan job, n)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.idx] = e.Process(j.input)
			}
		}()
	}

	for i, in := range inputs {
		jobs <- job{idx: i, input: in}
	}
	close(jobs)
	wg.Wait()

	report := Report{
		Config:    e.cfg,
		Results:   results,
		Timestamp: time.Now().UTC(),
	}
	for _, r := range results {
		if r.Err != nil {
			report.Failed++
			if e.cfg.Verbose {
				fmt.Fprintf(os.Stderr, "  failed: %s: %v\n", r.Input, r.Err)
			}
		}
	}
	if e.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Done in %s, %d of %d failed\n", time.Since(start).Round(time.Millisecond), report.Failed, n)
	}
	return report
}

// RandomInputs generates cfg.Random inputs from the configured pool. The
// same seed always yields the same inputs.
func (e *Engine) RandomInputs() ([]string, error) {
	p, err := pool.Get(e.cfg.Pool)
	if err != nil {
		return nil, err
	}
	seed := e.cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	if e.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Generating %d inputs from pool %s, depth %d, seed %d\n", e.cfg.Random, p.Name(), e.cfg.Depth, seed)
	}
	rng := rand.New(rand.NewSource(seed))

	equations := e.cfg.Action == ActionSolve || e.cfg.Action == ActionPlot
	inputs := make([]string, e.cfg.Random)
	for i := range inputs {
		if equations {
			inputs[i] = pool.RandomEquation(p, rng, e.cfg.Depth).String()
		} else {
			inputs[i] = p.RandomTree(rng, e.cfg.Depth).String()
		}
	}
	return inputs, nil
}

// ReadInputs splits text into input lines, dropping blank lines and lines
// starting with '#'.
func ReadInputs(text string) []string {
	var inputs []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	return inputs
}
