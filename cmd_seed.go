package main

import (
	"time"

	"raisedesk/config"
	"raisedesk/database/seed"
	"raisedesk/services/matching"
	"raisedesk/utils"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo dataset into the configured store",
	Long: `Replaces all investors and clients with the embedded demo dataset and
adds its meetings and tasks. Only useful with STORE_DRIVER=mongo; the memory
store is seeded on start when SEED_ON_START is set. Cached match results are
invalidated when REDIS_ADDR is set.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := openStore(cmd.Context(), logger)
	if err != nil {
		return err
	}
	cache, err := openMatchCache()
	if err != nil {
		return err
	}
	ds, err := seed.Load(time.Now())
	if err != nil {
		return err
	}
	return seed.Apply(cmd.Context(), store, ds, cache, logger)
}

// openMatchCache connects the Redis cache client. It returns nil when Redis is not configured.
func openMatchCache() (matching.MatchCache, error) {
	if err := utils.InitCache(); err != nil {
		return nil, err
	}
	rdb := utils.GetCacheClient()
	if rdb == nil {
		return nil, nil
	}
	return matching.NewRedisMatchCache(rdb, config.AppConfig.MatchCacheTTL), nil
}
