package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAuthAlert        = "Repeated failed logins from one client"
	LogMsgRateLimited      = "Client over the request limit, rejecting"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderPlayerID       = "X-Player-ID"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// SecurityHeaders are set on every response
var SecurityHeaders = map[string]string{
	HeaderContentType:    "nosniff",
	HeaderFrameOptions:   "SAMEORIGIN",
	HeaderXSSProtection:  "1; mode=block",
	HeaderReferrerPolicy: "strict-origin-when-cross-origin",
}

// Request guard limits used when the config leaves them unset
const (
	DefaultAuthAlertThreshold = 5
	DefaultRateLimit          = 1000
	DefaultRateWindow         = 5 * time.Minute
)

// MaxRequestBodyBytes caps every request body
const MaxRequestBodyBytes = 1 << 20

// PublicPaths bypass authentication
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
}

// RedactedValue replaces secret header values in logs
const RedactedValue = "[REDACTED]"
