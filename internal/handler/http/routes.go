package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the handler's interface.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Get("/upcheck", h.upcheck)

	switch h.iface {
	case IfaceNode:
		router.Post("/push", h.push)
		router.Post("/pushPrivacyGroup", h.pushPrivacyGroup)
		router.Post("/partyinfo", h.partyInfo)
	case IfaceClient:
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		router.Post("/send", h.send)
		router.Post("/receive", h.receive)
		router.Post("/createPrivacyGroup", h.createPrivacyGroup)
		router.Post("/deletePrivacyGroup", h.deletePrivacyGroup)
		router.Post("/retrievePrivacyGroup", h.retrievePrivacyGroup)
		router.Post("/findPrivacyGroup", h.findPrivacyGroup)
		router.Post("/registerPeer", h.registerPeer)
		router.Get("/peers", h.peers)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
