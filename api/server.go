package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/bundleswap/escrow-engine/api/handlers"
)

func Serve(
	ctx context.Context,
	addr string,
	bundlesHandler *handlers.BundlesHandler,
	offersHandler *handlers.OffersHandler,
	swapsHandler *handlers.SwapsHandler,
) {
	r := mux.NewRouter()
	r.HandleFunc("/v1/bundles", bundlesHandler.HandleCreate).Methods("POST")
	r.HandleFunc("/v1/bundles/{bundleId:[0-9]+}", bundlesHandler.HandleGet).Methods("GET")
	r.HandleFunc("/v1/bundles/{bundleId:[0-9]+}", bundlesHandler.HandleDelete).Methods("DELETE")
	r.HandleFunc("/v1/bundles/{bundleId:[0-9]+}/offers", offersHandler.HandleCreate).Methods("POST")
	r.HandleFunc("/v1/bundles/{bundleId:[0-9]+}/offers", offersHandler.HandleList).Methods("GET")
	r.HandleFunc("/v1/offers/{offerId:[0-9]+}", offersHandler.HandleGet).Methods("GET")
	r.HandleFunc("/v1/offers/{offerId:[0-9]+}", offersHandler.HandleDelete).Methods("DELETE")
	r.HandleFunc("/v1/bundles/{bundleId:[0-9]+}/offers/{offerId:[0-9]+}/accept", swapsHandler.HandleAccept).Methods("POST")
	r.HandleFunc("/v1/swaps/{bundleId:[0-9]+}", swapsHandler.HandleReceipt).Methods("GET")

	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
