package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/felixge/fgprof"
)

var cfg = defaultConfig()

func main() {
	log.SetFlags(0)
	var (
		configFile = flag.String("config", "", "ini config file (default $ADVENTRC, then ~/.adventrc)")
		verbose    = flag.Bool("v", false, "log extra statistics to stderr")
		profile    = flag.String("fgprof", "", "write a wall-clock profile of the solution to `file`")
	)
	flag.Usage = usage
	flag.Parse()

	var err error
	cfg, err = loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "v" {
			cfg.verbose = *verbose
		}
	})

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	fn, ok := solutions[flag.Arg(0)]
	if !ok {
		log.Fatalf("unknown solution %q", flag.Arg(0))
	}

	if *profile == "" {
		fn(flag.Args()[1:])
		return
	}
	stop, err := startProfile(*profile)
	if err != nil {
		log.Fatal(err)
	}
	fn(flag.Args()[1:])
	if err := stop(); err != nil {
		log.Fatalf("error writing profile: %s", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [args...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range solutionNames() {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "and flags are:")
	flag.PrintDefaults()
}

var solutions = make(map[string]func([]string))

func register(name string, fn func([]string)) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}

// vlogf logs only when verbose output was requested.
func vlogf(format string, args ...interface{}) {
	if cfg.verbose {
		log.Printf(format, args...)
	}
}

func startProfile(path string) (stop func() error, err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
