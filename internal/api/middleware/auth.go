package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TourGateway/internal/api/handlers"
)

// AgentIDHeader заголовок с идентификатором турагента
const AgentIDHeader = "X-Agent-ID"

const maxAgentIDLength = 128

const msgMissingAgentID = "missing X-Agent-ID header"

type contextKey string

const agentIDKey contextKey = "agentID"

// Auth требует заголовок X-Agent-ID и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agentID := strings.TrimSpace(r.Header.Get(AgentIDHeader))
		if agentID == "" || len(agentID) > maxAgentIDLength {
			handlers.RespondUnauthorized(w, msgMissingAgentID)
			return
		}

		ctx := WithAgentID(r.Context(), agentID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithAgentID возвращает контекст с ID агента
func WithAgentID(ctx context.Context, agentID string) context.Context {
	return context.WithValue(ctx, agentIDKey, agentID)
}

// GetAgentID извлекает ID агента из контекста
func GetAgentID(ctx context.Context) (string, bool) {
	agentID, ok := ctx.Value(agentIDKey).(string)
	return agentID, ok && agentID != ""
}
