package contextkeys

// Ключи, которые auth middleware кладет в gin.Context
const (
	AccountIDKey    = "accountID"
	AccountEmailKey = "accountEmail"
	AccountKindKey  = "accountKind"
	BearerTokenKey  = "bearerToken"
)
