package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"myhealth/rehab-api/internal/config"
	"myhealth/rehab-api/internal/docstore"
	"myhealth/rehab-api/internal/logging"
	"myhealth/rehab-api/internal/repository/docrepo"
	"myhealth/rehab-api/internal/service"
)

type options struct {
	Config string `long:"config" env:"SEED_CONFIG" default:"." description:"directory holding config.yaml"`
	File   string `long:"file" env:"SEED_FILE" default:"fixtures/exercises.yaml" description:"exercise fixture"`
	Force  bool   `long:"force" description:"seed even when the catalogue is not empty"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "seed"
	parser.LongDescription = "Loads the exercise catalogue from a YAML fixture"

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	if err := run(context.Background(), opts); err != nil {
		logrus.WithError(err).Fatal("seeding failed")
	}
}

// run seeds the catalogue. The store is closed before it returns, whatever
// the outcome.
func run(ctx context.Context, opts options) error {
	cfg, err := config.LoadConfig(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	f, err := os.Open(opts.File)
	if err != nil {
		return fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	exercises, err := readFixture(f)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	store, err := docstore.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open document store: %w", err)
	}
	db := docstore.NewDB(store, log)
	defer func() {
		if err := db.Close(ctx); err != nil {
			log.WithError(err).Error("failed to close document store")
		}
	}()

	exerciseService := service.NewExerciseService(docrepo.NewExerciseRepository(db, log))
	created, skipped, err := seed(ctx, exerciseService, exercises, opts.Force)
	fields := logrus.Fields{"created": created, "skipped": skipped}
	if err != nil {
		log.WithFields(fields).Error("seeding stopped")
		return err
	}
	log.WithFields(fields).Info("exercise catalogue seeded")
	return nil
}
