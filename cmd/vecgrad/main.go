// Package main provides the vecgrad CLI.
//
// Usage:
//
//	vecgrad [klog flags] version
//	vecgrad [klog flags] demo [-scenario=concat|add-exp] [-x=0.5,-0.1] [-y=-0.1]
//
// The demo command builds a small graph, computes the gradients of its scalar
// output with respect to the leaves x and y and prints one line per leaf with
// space-separated numbers.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const version = "v0.1.0"

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() { usage(flag.CommandLine.Output()) }
	flag.Parse()

	err := run(flag.Args(), os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		klog.Exitf("%+v", err)
	}
}

// run executes the command in args[0] with its own flags in args[1:].
func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errors.New("missing command")
	}
	switch args[0] {
	case "version":
		if len(args) > 1 {
			return errors.Errorf("version: unexpected arguments %q", args[1:])
		}
		_, err := fmt.Fprintf(stdout, "vecgrad %s\n", version)
		return err
	case "demo":
		return demoCommand(args[1:], stdout, stderr)
	default:
		usage(stderr)
		return errors.Errorf("unknown command %q", args[0])
	}
}

// demoCommand parses the demo flags and runs the demo.
func demoCommand(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenarioName := fs.String("scenario", "concat",
		"Demo graph to build: \"concat\" computes 0.5·σ(Σ tanh(exp(x) ‖ y)), \"add-exp\" computes exp(x + y).")
	xFlag := fs.String("x", "", "Comma-separated values of leaf x. Defaults depend on the scenario.")
	yFlag := fs.String("y", "", "Comma-separated values of leaf y. Defaults depend on the scenario.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return errors.Errorf("demo: unexpected arguments %q", fs.Args())
	}
	return exceptions.TryCatch[error](func() {
		runDemo(stdout, *scenarioName, *xFlag, *yFlag)
	})
}

func usage(out io.Writer) {
	fmt.Fprintf(out, "vecgrad %s - reverse-mode autodiff over float64 vectors\n\n", version)
	fmt.Fprintln(out, "Usage: vecgrad [klog flags] <command> [command flags]")
	fmt.Fprintln(out, "\nCommands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  demo       Build a demo graph and print the gradients of its output")
	fmt.Fprintln(out, "             (see \"vecgrad demo -h\" for its flags)")
}

// runDemo builds the scenario, prints its gradients to w and panics on error.
func runDemo(w io.Writer, scenarioName, xFlag, yFlag string) {
	s := must.M1(lookupScenario(scenarioName))
	x, y := s.x, s.y
	if xFlag != "" {
		x = must.M1(parseValues(xFlag))
	}
	if yFlag != "" {
		y = must.M1(parseValues(yFlag))
	}
	for _, grad := range s.gradients(x, y) {
		must.M1(fmt.Fprintln(w, grad.String()))
	}
}
