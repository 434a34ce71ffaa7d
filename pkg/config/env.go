package config

// EnvPrefix is the envconfig prefix applied to every configuration variable.
const EnvPrefix = "YUMZY"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv    = "YUMZY_APP_ENV"
	EnvPort      = "YUMZY_APP_PORT"
	EnvDBDSN     = "YUMZY_DB_DSN"
	EnvDBHost    = "YUMZY_DB_HOST"
	EnvDBUser    = "YUMZY_DB_USER"
	EnvDBName    = "YUMZY_DB_NAME"
	EnvRedisURL  = "YUMZY_REDIS_URL"
	EnvJWTSecret = "YUMZY_JWT_SECRET"
	EnvJWTIssuer = "YUMZY_JWT_ISSUER"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
