package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/schoolsvc/pkg/app"
	"github.com/ghuser/schoolsvc/services/school/application/handlers"
	appsvcs "github.com/ghuser/schoolsvc/services/school/application/services"
)

// SchoolRoutes registers school endpoints on the provided chi router.
func SchoolRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/school", func(r chi.Router) {
			r.Get("/", handlers.NewGetSchoolsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostSchoolHandler(svcs).Execute)
			r.Route("/{schoolId}", func(r chi.Router) {
				r.Get("/", handlers.NewGetSchoolHandler(svcs).Execute)
				r.Put("/", handlers.NewPutSchoolHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteSchoolHandler(svcs).Execute)
			})
		})
	})
}
