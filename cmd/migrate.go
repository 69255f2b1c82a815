package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long:  `This job applies the embedded goose migrations to the configured database.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		// Load the config, initialize the database and set up logging
		commonSetUp()
		defer webinarDB.Close()

		// Run the migrations
		log.Info().Msgf("Running migrations...")
		if err := webinarDB.Migrate(); err != nil {
			log.Error().Err(err).Msg("Failed to run migrations")
			return err
		}

		log.Info().Msg("Migrations complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
