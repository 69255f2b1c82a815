package cmd

import (
	"fmt"
	"net/http"
	"path"

	"github.com/EO-DataHub/zoom-webinar-services/api/handlers"
	"github.com/EO-DataHub/zoom-webinar-services/api/middleware"
	"github.com/EO-DataHub/zoom-webinar-services/api/services"
	docs "github.com/EO-DataHub/zoom-webinar-services/docs"
	"github.com/EO-DataHub/zoom-webinar-services/internal/appconfig"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Webinar Services API
// @version v1
// @description This is the API for managing webinars hosted on Zoom.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	RunE: func(cmd *cobra.Command, args []string) error {

		// Load the config, initialize the database and set up logging
		commonSetUp()
		defer webinarDB.Close()

		service, publisher, err := initializeService(commandContext())
		if err != nil {
			return err
		}
		defer publisher.Close()

		r := newRouter(appCfg, service)

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			r); err != nil {

			log.Error().Err(err).Msg("could not start server")
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}

// newRouter registers the API routes and the docs.
func newRouter(cfg *appconfig.Config, service *services.Service) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix(cfg.BasePath).Subrouter()

	// Apply the middleware to the API routes
	api.Use(middleware.WithLogger)
	api.Use(middleware.JWTMiddleware)

	// Routes open to any authenticated user
	api.HandleFunc("/webinars", handlers.GetWebinars(service)).Methods(http.MethodGet)
	api.HandleFunc("/webinars/{webinar-id}", handlers.GetWebinar(service)).Methods(http.MethodGet)
	api.HandleFunc("/webinars/{webinar-id}/registrations", handlers.Register(service)).Methods(http.MethodPost)
	api.HandleFunc("/templates", handlers.GetTemplates(service)).Methods(http.MethodGet)

	// Administrator routes
	adminRole := cfg.Webinars.AdminRole
	if adminRole == "" {
		adminRole = appconfig.DefaultAdminRole
	}
	admin := middleware.RequireRole(adminRole)

	api.Handle("/webinars", admin(handlers.CreateWebinar(service))).Methods(http.MethodPost)
	api.Handle("/webinars/import", admin(handlers.ImportWebinar(service))).Methods(http.MethodPost)
	api.Handle("/webinars/{webinar-id}", admin(handlers.UpdateWebinar(service))).Methods(http.MethodPut)
	api.Handle("/webinars/{webinar-id}", admin(handlers.DeleteWebinar(service))).Methods(http.MethodDelete)
	api.Handle("/webinars/{webinar-id}/registrations", admin(handlers.GetRegistrations(service))).Methods(http.MethodGet)
	api.Handle("/webinars/{webinar-id}/attendance", admin(handlers.GetAttendance(service))).Methods(http.MethodGet)
	api.Handle("/webinars/{webinar-id}/attendance/sync", admin(handlers.SyncAttendance(service))).Methods(http.MethodPost)
	api.Handle("/zoom/webinars", admin(handlers.GetZoomWebinars(service))).Methods(http.MethodGet)
	api.Handle("/templates/sync", admin(handlers.SyncTemplates(service))).Methods(http.MethodPost)

	// Docs
	docs.SwaggerInfo.Host = cfg.Host
	docs.SwaggerInfo.BasePath = cfg.BasePath
	r.PathPrefix(cfg.DocsPath).Handler(httpSwagger.Handler(
		httpSwagger.URL(path.Join(cfg.DocsPath, "/doc.json")),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)).Methods(http.MethodGet)

	return r
}
