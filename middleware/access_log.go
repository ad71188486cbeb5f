package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"clientpulse-backend/utils"
)

const maxLogLine = 80

type summaryWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *summaryWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *summaryWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// AccessLogger records method, path, status, latency and a truncated response
// summary for requests under /api. Other paths pass through untouched.
func AccessLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.Next()
			return
		}

		start := time.Now()
		w := &summaryWriter{ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		line := fmt.Sprintf("%s %s %d in %s",
			c.Request.Method, c.Request.URL.Path, w.Status(), time.Since(start))
		if w.body.Len() > 0 {
			line += " :: " + w.body.String()
		}
		if len(line) > maxLogLine {
			line = line[:maxLogLine-1] + "…"
		}
		log.Info(line)
	}
}

// Recovery converts a panicking request into a logged, generic 500 instead of
// taking the process down.
func Recovery(log *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("panic", recovered).
			Errorf("%s %s failed", c.Request.Method, c.Request.URL.Path)
		c.Abort()
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal Server Error")
	})
}
