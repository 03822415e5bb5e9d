package helper

import (
	"strings"

	"github.com/google/uuid"
)

// RequestIdKey is both the gin context key and the response header carrying the request id.
const RequestIdKey = "X-Contentgen-Request-Id"

// GenRequestID returns a compact random request id.
func GenRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
