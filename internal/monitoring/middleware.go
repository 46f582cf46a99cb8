package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware records request counts and latency for every route. The route
// template is used as the path label to keep cardinality bounded; unmatched
// requests fall back to the raw path.
func Middleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		m.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

// Timer measures one tool call and reports it with a terminal status.
type Timer struct {
	metrics *Metrics
	tool    string
	start   time.Time
}

// NewTimer starts timing a tool call.
func NewTimer(m *Metrics, tool string) *Timer {
	return &Timer{metrics: m, tool: tool, start: time.Now()}
}

// Stop records the elapsed time under the given status.
func (t *Timer) Stop(status string) {
	t.metrics.RecordToolCall(t.tool, status, time.Since(t.start))
}
