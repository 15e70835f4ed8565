package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/skybi/hashtable/internal/config"
	"github.com/skybi/hashtable/internal/hashmap"
	"github.com/skybi/hashtable/internal/threadsafe"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})

	// Load the application configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	table, stop, err := buildTable(cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create the table")
	}
	defer stop()

	if err := runScript(log.Logger, table, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("could not apply the script")
	}

	fmt.Println(table)
	log.Info().Object("stats", table.Stats()).Msg("done!")
}

// buildTable creates an expiring table with a running cleanup task if entries expire and a plain table otherwise
// The returned function stops the cleanup task.
func buildTable(cfg *config.Config, logger zerolog.Logger) (hashmap.Map[string, string], func(), error) {
	opts := []hashmap.Option{hashmap.WithLogger(logger.With().Str("component", "table").Logger())}
	if !cfg.Expires() {
		table, err := hashmap.New[string, string](cfg.Capacity, hashmap.String, opts...)
		if err != nil {
			return nil, nil, err
		}
		return table, func() {}, nil
	}

	table, err := threadsafe.NewExpiringTable[string, string](cfg.Capacity, hashmap.String, cfg.EntryLifetime, opts...)
	if err != nil {
		return nil, nil, err
	}
	table.ScheduleCleanupTask(cfg.CleanupInterval)
	return table, table.StopCleanupTask, nil
}
