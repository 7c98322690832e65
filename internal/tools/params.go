package tools

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Length bounds for string parameters, matching the Planka API's own
// field limits.
const (
	maxIDLen          = 100
	maxNameLen        = 500
	maxDescriptionLen = 10000
	maxQueryLen       = 200
	maxShortNameLen   = 100
)

// Pagination bounds.
const (
	defaultLimit = 50
	maxLimit     = 100
)

// argString extracts a string argument trimmed of surrounding
// whitespace. Every string field is trimmed before validation.
func argString(req mcp.CallToolRequest, key string) string {
	return strings.TrimSpace(req.GetString(key, ""))
}

// argInt extracts an integer argument (JSON numbers are float64),
// returning def when the key is missing or not a number.
func argInt(req mcp.CallToolRequest, key string, def int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return def
	}
	return int(v)
}

// argFloat extracts an optional float argument.
func argFloat(req mcp.CallToolRequest, key string) (float64, bool) {
	v, ok := req.GetArguments()[key].(float64)
	return v, ok
}

// argBool extracts a boolean argument, reporting whether it was set.
func argBool(req mcp.CallToolRequest, key string) (bool, bool) {
	v, ok := req.GetArguments()[key].(bool)
	return v, ok
}

// requireString validates a required string field against a length
// bound.
func requireString(req mcp.CallToolRequest, key string, maxLen int) (string, error) {
	v := argString(req, key)
	if v == "" {
		return "", fmt.Errorf("'%s' is required", key)
	}
	if len(v) > maxLen {
		return "", fmt.Errorf("'%s' must be at most %d characters", key, maxLen)
	}
	return v, nil
}

// optionalString validates an optional string field against a length
// bound. Empty means absent.
func optionalString(req mcp.CallToolRequest, key string, maxLen int) (string, error) {
	v := argString(req, key)
	if len(v) > maxLen {
		return "", fmt.Errorf("'%s' must be at most %d characters", key, maxLen)
	}
	return v, nil
}

// argEnum validates an enum field, defaulting when absent and
// rejecting unrecognized values.
func argEnum(req mcp.CallToolRequest, key, def string, allowed ...string) (string, error) {
	v := argString(req, key)
	if v == "" {
		return def, nil
	}
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", fmt.Errorf("'%s' must be one of: %s", key, strings.Join(allowed, ", "))
}

// argLimit validates the limit parameter against [1, maxLimit].
func argLimit(req mcp.CallToolRequest) (int, error) {
	v := argInt(req, "limit", defaultLimit)
	if v < 1 || v > maxLimit {
		return 0, fmt.Errorf("'limit' must be between 1 and %d", maxLimit)
	}
	return v, nil
}

// argOffset validates the offset parameter as non-negative.
func argOffset(req mcp.CallToolRequest) (int, error) {
	v := argInt(req, "offset", 0)
	if v < 0 {
		return 0, fmt.Errorf("'offset' must be >= 0")
	}
	return v, nil
}

// rejectUnknownArgs errors on any argument name outside the allowed
// set, so typos surface instead of being silently ignored.
func rejectUnknownArgs(req mcp.CallToolRequest, allowed ...string) error {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[a] = true
	}
	for key := range req.GetArguments() {
		if !set[key] {
			return fmt.Errorf("unrecognized parameter: '%s'", key)
		}
	}
	return nil
}
