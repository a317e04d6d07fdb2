package cache

import "strings"

const (
	GlobalKeyPrefix = "vidquiz"
)

// Key of the capped list holding recent unparseable model completions.
var MalformedCompletionsKey = GenerateCacheKey("diagnostics", "completion", "malformed")

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}
