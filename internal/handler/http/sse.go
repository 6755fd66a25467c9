package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/yamato-foods/backoffice-go/internal/handler/http/response"
	"github.com/yamato-foods/backoffice-go/internal/pkg/jwt"
	"github.com/yamato-foods/backoffice-go/internal/pkg/sse"
)

type SSEHandler interface {
	// Stream subscribes the client to its company's event stream
	Stream(w http.ResponseWriter, r *http.Request)
}

type sseHandlerImpl struct {
	hub        *sse.Hub
	jwtService jwt.Service
}

func NewSSEHandler(hub *sse.Hub, jwtService jwt.Service) SSEHandler {
	return &sseHandlerImpl{
		hub:        hub,
		jwtService: jwtService,
	}
}

// Stream handles GET /events/stream.
// EventSource cannot send an Authorization header, so the client passes a
// short-lived token from POST /auth/sse-token as a query parameter.
func (h *sseHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	companyID, err := h.jwtService.ValidateSSEToken(r.URL.Query().Get("token"))
	if err != nil {
		response.Unauthorized(w, "Invalid or expired stream token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, unsubscribe := h.hub.Subscribe(companyID)
	defer unsubscribe()

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-events:
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()
		}
	}
}
