package controllers

import (
	"net/http"

	"github.com/BAPPI-SWE/yumzy-backend/api/middleware"
	"github.com/BAPPI-SWE/yumzy-backend/api/responses"
	"github.com/BAPPI-SWE/yumzy-backend/api/validators"
	"github.com/BAPPI-SWE/yumzy-backend/internal/profiles"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/logger"
)

type upsertProfilePayload struct {
	Name         string `json:"name" validate:"max=120"`
	Phone        string `json:"phone" validate:"max=20"`
	BaseLocation string `json:"base_location" validate:"max=120"`
	SubLocation  string `json:"sub_location" validate:"max=120"`
	Building     string `json:"building" validate:"max=120"`
	Floor        string `json:"floor" validate:"max=40"`
	Room         string `json:"room" validate:"max=40"`
}

// ProfileGet returns the caller's delivery profile.
func ProfileGet(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		profile, err := svc.Get(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}

// ProfileUpsert creates or replaces the caller's delivery profile.
func ProfileUpsert(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var payload upsertProfilePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		profile, err := svc.Upsert(ctx, userID, profiles.UpsertInput{
			Name:         validators.SanitizeString(payload.Name, 120),
			Phone:        validators.SanitizeString(payload.Phone, 20),
			BaseLocation: validators.SanitizeString(payload.BaseLocation, 120),
			SubLocation:  validators.SanitizeString(payload.SubLocation, 120),
			Building:     validators.SanitizeString(payload.Building, 120),
			Floor:        validators.SanitizeString(payload.Floor, 40),
			Room:         validators.SanitizeString(payload.Room, 40),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}
