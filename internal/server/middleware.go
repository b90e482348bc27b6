package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rahulcj/portfolio/internal/logger"
)

// untrackedPrefixes are never logged.
var untrackedPrefixes = []string{"/static/", "/favicon", "/resume.pdf"}

// newSalt returns the per-process salt for client hashing.
func newSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms.
		panic("server: generate salt: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// hashIP returns a salted, truncated hash so visitors can be told apart in
// the logs without their address being stored.
func hashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// requestLogger logs one line per request. Requests with DNT: 1 are logged
// without client identifiers.
func requestLogger(log *logger.Logger, salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		start := time.Now()
		c.Next()

		client := map[string]string{}
		if c.GetHeader("DNT") != "1" {
			client["client"] = hashIP(c.ClientIP(), salt)
			client["user_agent"] = c.GetHeader("User-Agent")
		}
		log.Request(c.Request.Method, path, c.Writer.Status(), time.Since(start), client)
	}
}

// clientHints asks browsers for their colour scheme on later requests.
func clientHints() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Accept-CH", "Sec-CH-Prefers-Color-Scheme")
		c.Header("Vary", "Sec-CH-Prefers-Color-Scheme, Cookie")
		c.Next()
	}
}
