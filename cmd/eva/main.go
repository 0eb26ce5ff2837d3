// Command eva is a thin driver around the core evaluator: it builds an AST
// (from a JSON document or, absent one, a small built-in demo), applies an
// optional eva.yaml, runs the program, and reports the result. It is not a
// language front end — there is no parser here, by design: programs arrive
// already parsed as a JSON-encoded AST document.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/eva-lang/eva/internal/ast"
	"github.com/eva-lang/eva/internal/astjson"
	"github.com/eva-lang/eva/internal/config"
	"github.com/eva-lang/eva/internal/evaluator"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("eva", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to eva.yaml (default: discovered by walking up from the current directory)")
	programPath := fs.String("program", "", "path to a JSON-encoded AST document (default: a built-in demo program)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	start := time.Now()
	traceID := uuid.New().String()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eva: %s\n", err)
		return 1
	}

	program, err := loadProgram(*programPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eva: %s\n", err)
		return 1
	}

	env := evaluator.NewGlobalEnvironment()
	maxDepth, err := cfg.Apply(env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eva: %s\n", err)
		return 1
	}

	ev := evaluator.New()
	if maxDepth > 0 {
		ev.MaxDepth = maxDepth
	}

	value, evalErr := ev.Eval(program, env)
	elapsed := time.Since(start)

	if evalErr != nil {
		fmt.Fprintf(os.Stderr, "eva: %s\n", evalErr)
		printSummary(traceID, elapsed, false)
		return 1
	}

	fmt.Println(value.Inspect())
	printSummary(traceID, elapsed, true)
	return 0
}

func loadConfig(explicitPath string) (*config.Config, error) {
	path := explicitPath
	if path == "" {
		found, err := config.FindConfig(".")
		if err != nil {
			return nil, err
		}
		path = found
	}
	if path == "" {
		return &config.Config{}, nil
	}
	return config.LoadConfig(path)
}

func loadProgram(path string) (ast.Node, error) {
	if path == "" {
		return demoProgram(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading program %s: %w", path, err)
	}
	node, err := astjson.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parsing program %s: %w", path, err)
	}
	return node, nil
}

// demoProgram runs when no -program flag is given: a counter factory built
// as a class whose constructor stashes its start value, and a
// lambda-returning function that captures its argument by reference to an
// enclosing scope, exercising both closures and classes.
func demoProgram() ast.Node {
	makeCounter := ast.Def("makeCounter", []string{"start"}, ast.Blk(
		ast.Var("count", ast.Id("start")),
		ast.Lam(nil, ast.Blk(
			ast.Inc("count"),
			ast.Id("count"),
		)),
	))

	counterClass := ast.Class("Counter", nil, ast.Blk(
		ast.Def("constructor", []string{"self", "start"}, ast.Blk(
			ast.SetMember("self", "value", ast.Id("start")),
		)),
		ast.Def("next", []string{"self"}, ast.Blk(
			ast.SetMember("self", "value", ast.Bin("+", ast.Member("self", "value"), ast.Int(1))),
			ast.Member("self", "value"),
		)),
	))

	return ast.Blk(
		makeCounter,
		counterClass,
		ast.Var("tick", ast.Call("makeCounter", ast.Int(0))),
		ast.Call("tick"),
		ast.Call("tick"),
		ast.Var("c", ast.New("Counter", ast.Int(10))),
		ast.CallMethod("c", "next", ast.Id("c")),
		ast.CallMethod("c", "next", ast.Id("c")),
	)
}

func printSummary(traceID string, elapsed time.Duration, ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	since := time.Now().Add(-elapsed)
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintf(os.Stderr, "[%s] %s in %s\n", traceID, status, humanize.Time(since))
	} else {
		fmt.Fprintf(os.Stderr, "trace=%s status=%s elapsed=%s\n", traceID, status, elapsed)
	}
}
