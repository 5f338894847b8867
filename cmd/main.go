package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/acmecollege/registrar/internal/app"
	"github.com/acmecollege/registrar/internal/pkg/dbctx"
	"github.com/acmecollege/registrar/internal/seed"
)

func main() {
	var runSeed bool
	var list bool
	var dumpMetrics bool
	flag.BoolVar(&runSeed, "seed", false, "apply the seed scenario (embedded, or SEED_SCENARIO_YAML) to an empty store")
	flag.BoolVar(&list, "list", false, "print every course registration after migrating")
	flag.BoolVar(&dumpMetrics, "metrics", false, "write store metrics in Prometheus text format before exiting")
	flag.Parse()

	ctx := context.Background()
	application, err := app.New(ctx)
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	log := application.Log
	dbc := dbctx.Context{Ctx: ctx}
	log.Info("Schema migrated", "driver", application.Cfg.DB.Driver)

	if runSeed {
		sc, err := seed.Load()
		if err != nil {
			log.Error("Load seed scenario failed", "error", err)
			application.Close()
			os.Exit(1)
		}
		runner := seed.NewRunner(application.DB, log, application.Services.College, application.Services.Registration)
		res, err := runner.Run(dbc, sc)
		if err != nil {
			log.Error("Seed failed", "scenario", sc.Name, "error", err)
			application.Close()
			os.Exit(1)
		}
		fmt.Printf("seed %s: courses=%d professors=%d students=%d registrations=%d skipped=%v\n",
			sc.Name, res.Courses, res.Professors, res.Students, res.Registrations, res.Skipped)
	}

	if list {
		rows, err := application.Services.Registration.FindAll(dbc)
		if err != nil {
			log.Error("List registrations failed", "error", err)
			application.Close()
			os.Exit(1)
		}
		for _, r := range rows {
			professor := "-"
			if r.Professor != nil {
				professor = r.Professor.FirstName + " " + r.Professor.LastName
			}
			course, student := "?", "?"
			if r.Course != nil {
				course = r.Course.Code
			}
			if r.Student != nil {
				student = r.Student.FirstName + " " + r.Student.LastName
			}
			fmt.Printf("%s\t%s\t%s\t%s\t%d\n", course, student, professor, r.LetterGrade, r.NumericGrade)
		}
	}

	if dumpMetrics {
		if err := application.Metrics.WritePrometheus(os.Stdout); err != nil {
			log.Warn("Write metrics failed", "error", err)
		}
	}
}
