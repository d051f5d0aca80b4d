package config

import (
	"os"
	"strconv"
	"strings"
)

// Keys for the configuration surface. The three SUPABASE_DB_* values and
// ADMIN_PASSWORD are required; everything else has a default.
const (
	KeyDBHost     = "SUPABASE_DB_HOST"
	KeyDBUser     = "SUPABASE_DB_USER"
	KeyDBPassword = "SUPABASE_DB_PASSWORD"
	KeyDBName     = "SUPABASE_DB_NAME"
	KeyDBPort     = "SUPABASE_DB_PORT"

	KeyAdminPassword    = "ADMIN_PASSWORD"
	KeyAdminTokenSecret = "ADMIN_TOKEN_SECRET"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

// MissingStoreKeys returns the required store connection keys that are not
// set. A non-empty result means data loading cannot start.
func MissingStoreKeys(config map[string]string) []string {
	var missing []string
	for _, key := range []string{KeyDBHost, KeyDBUser, KeyDBPassword, KeyDBName} {
		if GetString(config, key, "") == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
