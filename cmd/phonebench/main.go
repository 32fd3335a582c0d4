package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"phonebench/pkg/common"
	"phonebench/pkg/config"
	"phonebench/pkg/core"
	"phonebench/pkg/phonebook"
	"phonebench/pkg/report"
	"phonebench/pkg/storage"
)

func main() {
	configPath := flag.String("config", "", "Path to phonebench.yaml")
	dirPath := flag.String("directory", "", "Directory file (<phone> <name> per line)")
	findPath := flag.String("queries", "", "Query file (one name per line)")
	source := flag.String("source", "", "Input source: text or sqlite")
	sqlitePath := flag.String("sqlite", "", "SQLite database path")
	importMode := flag.Bool("import", false, "Copy the text inputs into the SQLite database and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(cfg, *dirPath, *findPath, *source, *sqlitePath)

	if *importMode {
		if err := importText(cfg); err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		log.Printf("[Storage] Imported %s and %s into %s", cfg.Input.DirectoryPath, cfg.Input.QueriesPath, cfg.Input.SQLitePath)
		return
	}

	src, err := openSource(cfg)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	defer src.Close()

	records, err := src.LoadDirectory()
	if err != nil {
		log.Fatalf("Failed to load directory: %v", err)
	}
	queries, err := src.LoadQueries()
	if err != nil {
		log.Fatalf("Failed to load queries: %v", err)
	}

	runner := core.NewRunner(core.NewDirectory(records), queries)
	if err := runSuite(os.Stdout, runner, cfg.Bench); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
}

func applyFlags(cfg *config.Config, dirPath, findPath, source, sqlitePath string) {
	if dirPath != "" {
		cfg.Input.DirectoryPath = dirPath
	}
	if findPath != "" {
		cfg.Input.QueriesPath = findPath
	}
	if source != "" {
		cfg.Input.Source = source
	}
	if sqlitePath != "" {
		cfg.Input.SQLitePath = sqlitePath
	}
}

func openSource(cfg *config.Config) (storage.Source, error) {
	switch cfg.Input.Source {
	case config.SourceText:
		return phonebook.TextSource{
			DirectoryPath: cfg.Input.DirectoryPath,
			QueriesPath:   cfg.Input.QueriesPath,
		}, nil
	case config.SourceSQLite:
		db, err := storage.OpenSQLite(cfg.Input.SQLitePath, false)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, common.NewInvalidInputError(fmt.Sprintf("unknown source %q", cfg.Input.Source), nil)
	}
}

func importText(cfg *config.Config) error {
	records, err := phonebook.LoadDirectory(cfg.Input.DirectoryPath)
	if err != nil {
		return err
	}
	queries, err := phonebook.LoadQueries(cfg.Input.QueriesPath)
	if err != nil {
		return err
	}

	db, err := storage.OpenSQLite(cfg.Input.SQLitePath, true)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Import(records, queries)
}

// runSuite runs the fixed benchmark sequence. The linear run's search time is
// the baseline handed to the bubble sort run.
func runSuite(w io.Writer, runner *core.Runner, bench config.BenchConfig) error {
	factor := core.WithFallbackFactor(bench.FallbackFactor)

	fmt.Fprintln(w, "Start searching (linear search)...")
	linear := runner.Run(nil, core.LinearSubstringSearch{}, "linear search")
	if err := report.Write(w, linear); err != nil {
		return err
	}
	baseline := core.BaselineFrom(linear)

	fmt.Fprintln(w, "\nStart searching (bubble sort + jump search)...")
	res := runner.Run(core.BubbleSort{}, core.JumpSearch{}, "bubble sort + jump search", core.WithBaseline(baseline), factor)
	if err := report.Write(w, res); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nStart searching (quick sort + binary search)...")
	res = runner.Run(core.QuickSort{}, core.BinarySearch{}, "quick sort + binary search")
	if err := report.Write(w, res); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nStart searching (hash table)...")
	hash := core.NewHashIndex()
	res = runner.Run(hash, core.HashLookup{Index: hash}, "hash table")
	if err := report.Write(w, res); err != nil {
		return err
	}

	if bench.TreeIndex {
		fmt.Fprintln(w, "\nStart searching (b-tree)...")
		tree := core.NewTreeIndex(32)
		res = runner.Run(tree, core.TreeLookup{Index: tree}, "b-tree")
		if err := report.Write(w, res); err != nil {
			return err
		}
	}
	return nil
}
