package middleware

import (
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured apex domain, any of its subdomains, and
// localhost on any port, with credentials.
func CORS(domain string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc:  originMatcher(domain),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func originMatcher(domain string) func(origin string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))

	return func(origin string) bool {
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			return false
		}
		host := strings.ToLower(u.Hostname())

		if host == "localhost" || host == "127.0.0.1" {
			return true
		}
		if domain == "" {
			return false
		}
		return host == domain || strings.HasSuffix(host, "."+domain)
	}
}
