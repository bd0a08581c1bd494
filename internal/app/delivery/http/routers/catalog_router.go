package routers

import (
	"healthsync-service/internal/app/delivery/http/controllers"
	"healthsync-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// Catalog reads are public; no session required to browse.
func attachCatalogRoutes(router chi.Router, _ *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.Route("/medicines", func(r chi.Router) {
		r.Get("/", catalogController.FindAllMedicines)
		r.Get("/{medicineID}", catalogController.FindMedicineByID)
	})

	router.Route("/lab-tests", func(r chi.Router) {
		r.Get("/", catalogController.FindAllLabTests)
		r.Get("/{labTestID}", catalogController.FindLabTestByID)
	})

	router.Route("/articles", func(r chi.Router) {
		r.Get("/", catalogController.FindAllArticles)
		r.Get("/{articleID}", catalogController.FindArticleByID)
	})
}
