package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"productgen/internal/config"
	"productgen/internal/dataset"
	"productgen/internal/domain"
	"productgen/internal/http/handlers"
	applog "productgen/internal/log"
	"productgen/internal/repos"
	"productgen/internal/services"
	"productgen/internal/validate"
)

const usage = `usage:
  productgen [generate] [-count N] [-format json|csv|both] [-output PREFIX] [-seed N]
  productgen import [-csv FILE] [-categories A,B] [-truncate]
  productgen serve`

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the exit status. Deferred cleanups finish before main exits.
func run(args []string) int {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := applog.MirrorToFile(cfg.LogFile)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
		}
	}

	cmd := "generate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "generate":
		return runGenerate(cfg, args)
	case "import":
		return runImport(cfg, args)
	case "serve":
		return runServe(cfg)
	default:
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}
}

func runGenerate(cfg config.Config, args []string) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	count := fs.Int("count", cfg.Count, "number of products to generate")
	format := fs.String("format", cfg.Format, "output format: json, csv or both")
	output := fs.String("output", cfg.Output, "output file name prefix")
	seed := fs.Uint64("seed", cfg.Seed, "random seed, 0 for a random run")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	svc := services.NewDatasetService("")
	req, _, err := svc.Validate(services.DatasetRequest{Count: *count, Format: *format, Output: *output, Seed: *seed})
	if err != nil {
		fmt.Fprintf(os.Stderr, "productgen: %v\n%s\n", err, usage)
		return 2
	}

	fmt.Println("Product Dataset Generator")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Generating %d products...\n", req.Count)

	res, err := svc.Generate(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "productgen: %v\n", err)
		return 1
	}

	for _, f := range res.Files {
		fmt.Printf("Saved %d products to %s\n", res.Count, f)
	}
	fmt.Println()
	fmt.Println("Dataset generation complete!")
	fmt.Printf("Generated %d products in %s\n", res.Count, res.Elapsed)
	if res.Sample != nil {
		fmt.Println()
		fmt.Println("Sample product:")
		row := dataset.Flatten(*res.Sample).Row()
		for i, col := range domain.Columns[:10] {
			fmt.Printf("  %s: %s\n", col, row[i])
		}
		fmt.Println("  ...")
	}
	return 0
}

func runImport(cfg config.Config, args []string) int {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	csvPath := fs.String("csv", cfg.ImportCSV, "tabular artifact to import")
	catList := fs.String("categories", "", "comma separated categories to keep (default all)")
	truncate := fs.Bool("truncate", false, "empty the products table first")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cats, ok := validate.Categories(*catList)
	if !ok {
		fmt.Fprintf(os.Stderr, "productgen: invalid -categories %q\n", *catList)
		return 2
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		applog.Error(nil, "db.open", err, map[string]any{"dsn": cfg.DBDSN})
		return 1
	}
	defer db.Close()

	svc := services.NewImportService(repos.NewProductRepo(db), cfg.ChunkSize, cfg.LinkSuffix)
	if *truncate {
		if err := svc.Reset(); err != nil {
			applog.Error(nil, "import.reset", err, nil)
			return 1
		}
	}
	res, err := svc.ImportFile(*csvPath, cats)
	if err != nil {
		applog.Error(nil, "import.failed", err, map[string]any{"csv": *csvPath, "written": res.Written})
		return 1
	}
	fmt.Printf("Imported %d of %d products (%d skipped) into %s, %d stored\n", res.Written, res.Read, res.Skipped, cfg.DBDSN, res.Stored)
	return 0
}

func runServe(cfg config.Config) int {
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer db.Close()

	deps, err := handlers.NewDeps(db, cfg)
	if err != nil {
		log.Print(err)
		return 1
	}
	if cfg.AuthPassword == "password" {
		log.Printf("[warn] AUTH_PASSWORD is the default; set it before exposing the server")
	}

	if cfg.ImportOnStart {
		// serve anyway on failure; the job can be relaunched over HTTP
		_, _ = deps.JobHandler.RunOnStart()
	}

	app := handlers.NewApp(deps)
	log.Printf("[serve] listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}
