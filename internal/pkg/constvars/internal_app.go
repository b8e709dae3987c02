package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY   contextKey = "request_id"
	CONTEXT_SESSION_ID_KEY   contextKey = "session_id"
	CONTEXT_SESSION_DATA_KEY contextKey = "session_data"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"

	RedisSessionKeyPrefix   = "session:"
	RedisDashboardKeyPrefix = "dashboard:"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "FUNCIONARIO"
	RoleClient   = "CLIENTE"

	UserStatusActive  = "ATIVO"
	UserStatusPending = "PENDENTE"
)
