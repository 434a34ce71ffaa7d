package controllers

import (
	"net/http"

	"github.com/BAPPI-SWE/yumzy-backend/api/responses"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/config"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/db"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/logger"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Yumzy-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbPing db.Pinger, redisPing redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Yumzy-Env", cfg.App.Env)
		ctx := r.Context()

		checks := map[string]string{}
		healthy := true

		if dbPing != nil {
			if err := dbPing.Ping(ctx); err != nil {
				checks["postgres"] = err.Error()
				healthy = false
			} else {
				checks["postgres"] = "ok"
			}
		}
		if redisPing != nil {
			if err := redisPing.Ping(ctx); err != nil {
				checks["redis"] = err.Error()
				healthy = false
			} else {
				checks["redis"] = "ok"
			}
		}

		if !healthy {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, "dependency unavailable").WithDetails(checks))
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
