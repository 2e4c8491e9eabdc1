package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dianpeng/topjoin/output"
	"github.com/dianpeng/topjoin/query"
	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/pkg/profile"
)

var fT1 = flag.String(
	"t1",
	"",
	"path of relation T1, one \"a x\" pair per line",
)

var fT2 = flag.String(
	"t2",
	"",
	"path of relation T2, one \"b y\" pair per line",
)

var fT3 = flag.String(
	"t3",
	"",
	"path of relation T3, one \"c z\" pair per line",
)

var fOutput = flag.String(
	"output",
	"",
	"specify path to save the result file",
)

var fConfig = flag.String(
	"config",
	"",
	"optional YAML config file, explicit flags override its values",
)

var fWorkers = flag.Int(
	"workers",
	0,
	"size of the join worker pool, 0 means GOMAXPROCS",
)

var fChunk = flag.Int(
	"chunk",
	0,
	"number of groups handed to a join worker at once, 0 means default",
)

var fVerify = flag.Bool(
	"verify",
	false,
	"cross check the result with the nested loop reference evaluator",
)

var fPrint = flag.Bool(
	"print",
	false,
	"print the result table to STDOUT as well",
)

var fVerbose = flag.Int(
	"v",
	0,
	"log verbosity, 0 only logs the summary",
)

var fProfile = flag.String(
	"profile",
	"",
	"enable profiling, cpu or mem, profile is saved in the current directory",
)

func oops(stage string, err error) {
	fmt.Fprintf(
		os.Stderr,
		"%s %s\n",
		color.New(color.FgRed, color.Bold).Sprintf("ERROR [%s]", stage),
		err,
	)
	os.Exit(-1)
}

func newLogger(v int) logr.Logger {
	return funcr.New(
		func(prefix, args string) {
			if prefix != "" {
				fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, args)
			} else {
				fmt.Fprintln(os.Stderr, args)
			}
		},
		funcr.Options{
			LogTimestamp: true,
			Verbosity:    v,
		},
	).WithName("topjoin")
}

func loadConfig() query.Config {
	c := query.DefaultConfig()
	if *fConfig != "" {
		cc, err := query.LoadConfig(*fConfig)
		if err != nil {
			oops("config", err)
		}
		c = cc
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			c.Workers = *fWorkers
		case "chunk":
			c.ChunkSize = *fChunk
		case "verify":
			c.Verify = *fVerify
		}
	})
	return c
}

// the 4 paths can also be given positionally: t1 t2 t3 output
func inputPaths() (query.Input, string) {
	in := query.Input{T1: *fT1, T2: *fT2, T3: *fT3}
	out := *fOutput

	if args := flag.Args(); len(args) > 0 {
		if len(args) != 4 {
			oops("args", fmt.Errorf("expect 4 positional arguments: t1 t2 t3 output, got %d", len(args)))
		}
		in = query.Input{T1: args[0], T2: args[1], T3: args[2]}
		out = args[3]
	}

	if in.T1 == "" || in.T2 == "" || in.T3 == "" || out == "" {
		flag.Usage()
		oops("args", fmt.Errorf("t1, t2, t3 and output must all be specified"))
	}
	return in, out
}

func main() {
	flag.Parse()

	switch *fProfile {
	case "":
		break
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		oops("args", fmt.Errorf("unknown profile mode %q", *fProfile))
	}

	config := loadConfig()
	in, out := inputPaths()

	exe := query.NewExecutor(config, newLogger(*fVerbose))
	res, err := exe.Select(context.Background(), in, out)
	if err != nil {
		stage := query.Stage(err)
		if stage == "" {
			stage = "query"
		}
		oops(stage, err)
	}

	if *fPrint {
		if err := output.Print(os.Stdout, res.Rows, !color.NoColor); err != nil {
			oops("print", err)
		}
	}
}
