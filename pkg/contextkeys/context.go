package contextkeys

// Custom type to avoid context key collisions.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle is stored.
const DBContextKey = contextKey("db")
