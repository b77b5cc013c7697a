// Command subsume runs the subsumption and self-subsuming resolution engine
// once over a DIMACS CNF file and reports what it removed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aodinaev/cryptominisat/loader"
	"github.com/aodinaev/cryptominisat/subsume"
)

var flagGzip = flag.Bool(
	"gzip",
	false,
	"treat the instance file as gzip-compressed",
)

var flagSeed = flag.Int64(
	"seed",
	1,
	"seed for the solver-owned random source used to sample candidates",
)

var flagSubsumeBudget = flag.Int64(
	"subsume_budget",
	1_000_000,
	"work credit granted to a single subsumption pass",
)

var flagStrengthenBudget = flag.Int64(
	"strengthen_budget",
	1_000_000,
	"work credit granted to a single strengthening pass",
)

var flagRemoveImplicit = flag.Bool(
	"remove_implicit",
	true,
	"collapse redundant binary/ternary occurrences absorbed by 2-literal clauses",
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile:     flag.Arg(0),
		gzipped:          *flagGzip,
		seed:             *flagSeed,
		subsumeBudget:    *flagSubsumeBudget,
		strengthenBudget: *flagStrengthenBudget,
		removeImplicit:   *flagRemoveImplicit,
	}, nil
}

type config struct {
	instanceFile     string
	gzipped          bool
	seed             int64
	subsumeBudget    int64
	strengthenBudget int64
	removeImplicit   bool
}

func engineOptions(cfg *config) subsume.Options {
	opts := subsume.DefaultOptions()
	opts.RemoveImplicit = cfg.removeImplicit
	return opts
}

func run(cfg *config) error {
	st, err := loader.FromDIMACS(cfg.instanceFile, cfg.gzipped, cfg.seed)
	if err != nil {
		return fmt.Errorf("could not load instance: %s", err)
	}

	fmt.Printf("c irredundant literals: %d\n", st.Counters.IrredLits)

	e := subsume.New(st, engineOptions(cfg))

	t := time.Now()
	e.PerformSubsumption(cfg.subsumeBudget)
	ok := e.PerformStrengthening(cfg.strengthenBudget)
	e.FinishedRun()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec):        %f\n", elapsed.Seconds())
	fmt.Printf("c tried:             %d\n", e.Global.Tried)
	fmt.Printf("c subsumed (sub):    %d\n", e.Global.SubsumedBySub)
	fmt.Printf("c subsumed (str):    %d\n", e.Global.SubsumedByStr)
	fmt.Printf("c lits removed:      %d\n", e.Global.LitsRemStrengthen)
	fmt.Printf("c irredundant lits:  %d\n", st.Counters.IrredLits)
	fmt.Printf("c largest removed:   %v\n", e.Top.Top())
	if !ok {
		fmt.Printf("c status:            UNSAT (empty clause derived)\n")
	} else {
		fmt.Printf("c status:            unknown\n")
	}

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
	os.Exit(0)
}
