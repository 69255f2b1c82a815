package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var syncTemplatesCmd = &cobra.Command{
	Use:   "sync-templates",
	Short: "Store the Zoom webinar templates not known yet",
	RunE: func(cmd *cobra.Command, args []string) error {

		commonSetUp()
		defer webinarDB.Close()

		service, publisher, err := initializeService(commandContext())
		if err != nil {
			return err
		}
		defer publisher.Close()

		result, err := service.SyncTemplates(commandContext())
		if err != nil {
			log.Error().Err(err).Msg("Failed to sync webinar templates")
			return err
		}

		fmt.Printf("Fetched %d templates, inserted %d\n", result.Fetched, result.Inserted)
		return nil
	},
}

var syncAttendanceCmd = &cobra.Command{
	Use:   "sync-attendance",
	Short: "Sync attendance of every ended webinar not synced yet",
	RunE: func(cmd *cobra.Command, args []string) error {

		commonSetUp()
		defer webinarDB.Close()

		service, publisher, err := initializeService(commandContext())
		if err != nil {
			return err
		}
		defer publisher.Close()

		results, err := service.SyncPendingAttendance(commandContext(), time.Now())
		for _, result := range results {
			fmt.Printf("Webinar %s: %d attendees, %d inserted\n", result.Webinar, result.Attendees, result.Inserted)
		}
		if err != nil {
			log.Error().Err(err).Msg("Failed to sync attendance for some webinars")
			return err
		}
		return nil
	},
}

var importWebinarCmd = &cobra.Command{
	Use:   "import-webinar <zoom-webinar-id>",
	Short: "Link an existing Zoom webinar to a new local webinar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		commonSetUp()
		defer webinarDB.Close()

		service, publisher, err := initializeService(commandContext())
		if err != nil {
			return err
		}
		defer publisher.Close()

		wb, created, err := service.ImportWebinar(commandContext(), args[0])
		if err != nil {
			log.Error().Err(err).Str("zoom_webinar_id", args[0]).Msg("Failed to import webinar")
			return err
		}

		if created {
			fmt.Printf("Imported webinar %s as %s\n", wb.ZoomWebinarID, wb.ID)
		} else {
			fmt.Printf("Webinar %s already imported as %s\n", wb.ZoomWebinarID, wb.ID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncTemplatesCmd)
	rootCmd.AddCommand(syncAttendanceCmd)
	rootCmd.AddCommand(importWebinarCmd)
}
