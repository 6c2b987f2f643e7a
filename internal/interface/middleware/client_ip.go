package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// TrustProxies decides which hops may report the client address, so that
// c.ClientIP() (and every limiter key built on it) cannot be set by the client.
// With no proxies and no platform the TCP peer address is used as is.
// platform is "cloudflare", "google" or the name of a header set by the edge.
func TrustProxies(r *gin.Engine, proxies []string, platform string) error {
	if len(proxies) == 0 {
		proxies = nil
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		return err
	}
	switch strings.ToLower(platform) {
	case "":
		r.TrustedPlatform = ""
	case "cloudflare":
		r.TrustedPlatform = gin.PlatformCloudflare
	case "google":
		r.TrustedPlatform = gin.PlatformGoogleAppEngine
	default:
		r.TrustedPlatform = platform
	}
	return nil
}

func clientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
