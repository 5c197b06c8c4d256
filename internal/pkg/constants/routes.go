package constants

// Static route constants
const (
	APIRoute   = "/api"
	ProxyRoute = "/proxy"
	// Proxy path without leading slash for URL construction
	ProxyPath = "proxy"
)
