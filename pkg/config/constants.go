package config

// EnvPrefix scopes envconfig processing; individual fields carry explicit
// UF_-prefixed names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv         = "UF_APP_ENV"
	EnvPort           = "UF_APP_PORT"
	EnvLogLevel       = "UF_LOG_LEVEL"
	EnvRedisURL       = "UF_REDIS_URL"
	EnvResendAPIKey   = "UF_RESEND_API_KEY"
	EnvMailFrom       = "UF_MAIL_FROM"
	EnvWarehouseEmail = "UF_WAREHOUSE_EMAIL"
	EnvDraftTTL       = "UF_DRAFT_TTL"
)
