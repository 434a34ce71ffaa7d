package controllers

import (
	"net/http"

	"github.com/BAPPI-SWE/yumzy-backend/api/responses"
	"github.com/BAPPI-SWE/yumzy-backend/internal/locations"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/logger"
)

// LocationsList returns the delivery areas and their sub-locations so the
// profile editor can offer valid choices.
func LocationsList(svc locations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		areas, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, areas)
	}
}
