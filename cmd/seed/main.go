package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"soberup/internal/infra"
	"soberup/internal/repositories"
	"soberup/internal/seed"
	"soberup/pkg/config"
	"soberup/pkg/utils"
)

var (
	configPath    string
	hashPasswords bool
	dryRun        bool

	rootCmd = &cobra.Command{
		Use:   "seed [file]",
		Short: "Load users and support locations from a YAML file",
		Long: `seed inserts the users and support locations listed in a YAML
file. Records that already exist (by username, or by location name) are
left untouched, so the command can be run repeatedly.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runSeed,
	}
)

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultPath(), "path to the YAML config file")
	rootCmd.Flags().BoolVar(&hashPasswords, "hash-passwords", true, "store bcrypt hashes instead of the plaintext passwords in the file")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate and report without writing")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	file, err := seed.Decode(in)
	if err != nil {
		return err
	}

	db, err := infra.InitPostgresql(cfg.Database.URL)
	if err != nil {
		return err
	}
	defer infra.ClosePostgresql(db, logger)

	if cfg.Database.AutoMigrate && !dryRun {
		if err := infra.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrating schema: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	res, err := seed.Apply(ctx, file,
		repositories.NewUserRepository(db),
		repositories.NewSupportLocationRepository(db),
		seed.Options{
			HashPasswords: hashPasswords,
			DryRun:        dryRun,
			Location:      utils.LoadLocation(cfg.App.Timezone),
			Now:           time.Now(),
		},
		logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "users: %d created, %d skipped; support locations: %d created, %d skipped\n",
		res.UsersCreated, res.UsersSkipped, res.LocationsCreated, res.LocationsSkipped)
	return nil
}
