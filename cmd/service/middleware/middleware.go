package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/time/rate"

	"github.com/sahayak-ai/sahayak/app/response"
	"github.com/sahayak-ai/sahayak/pkg/errors"
	"github.com/sahayak-ai/sahayak/pkg/i18n"
)

func I18n() gin.HandlerFunc {
	var allowList []string
	for k := range i18n.ALLOW_LANG {
		allowList = append(allowList, k)
	}
	l := i18n.NewLocalizer(allowList...)

	return response.ProvideResponseLocalizer(l)
}

func Cors(c *gin.Context) {
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Accept-Language")
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
	}
	c.Next()
}

type limiterRegistry struct {
	limiters cmap.ConcurrentMap[string, *rate.Limiter]
	rps      rate.Limit
	burst    int
}

func newLimiterRegistry(rps float64, burst int) *limiterRegistry {
	return &limiterRegistry{
		limiters: cmap.New[*rate.Limiter](),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (r *limiterRegistry) get(key string) *rate.Limiter {
	if l, ok := r.limiters.Get(key); ok {
		return l
	}
	l := rate.NewLimiter(r.rps, r.burst)
	r.limiters.SetIfAbsent(key, l)
	l, _ = r.limiters.Get(key)
	return l
}

// UseLimit throttles per client key. rps below or equal to zero disables
// the limiter entirely.
func UseLimit(operation string, rps float64, genKeyFunc func(c *gin.Context) string) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) {}
	}
	registry := newLimiterRegistry(rps, int(rps)+1)

	return func(c *gin.Context) {
		if !registry.get(operation + ":" + genKeyFunc(c)).Allow() {
			response.APIError(c, errors.New("middleware.limiter", i18n.ERROR_TOO_MANY_REQUESTS, nil).
				Code(http.StatusTooManyRequests))
		}
	}
}
