package middleware

// keys of values stored in context
type MiddleWareContextKey string

const (
	TENANT_ID      = MiddleWareContextKey("tenant_id")      // The context value is a string representing the tenant ID.
	API_KEY_ID     = MiddleWareContextKey("api_key_id")     // The context value is a string representing the API key ID.
	API_KEY_SCOPES = MiddleWareContextKey("api_key_scopes") // The context value is a []string holding the scopes of the API key.
	ADMIN_SUBJECT  = MiddleWareContextKey("admin_subject")  // The context value is a string representing the admin token subject.
)
