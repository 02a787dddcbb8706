package vendor_proxy

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourGateway/internal/api/handlers"
)

const (
	msgFetchFailed        = "Failed to fetch from vendor: "
	msgInvalidRequestBody = "invalid request body"
	msgBodyTooLarge       = "request body too large"
)

// maxProxyBodyBytes ограничение размера пересылаемого тела; больший запрос отклоняется целиком
const maxProxyBodyBytes = 1 << 20

type Handler struct {
	client VendorClient
	logger Logger
}

func NewHandler(client VendorClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// For возвращает обработчик маршрута прокси.
// Тело пересылается как есть, статус и тело поставщика возвращаются без изменений.
func (h *Handler) For(route Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxProxyBodyBytes))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					h.logger.Warn("%s %s - Request body exceeds %d bytes", route.Method, route.Path, tooLarge.Limit)
					handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
					return
				}
				h.logger.Warn("%s %s - Failed to read request body: %v", route.Method, route.Path, err)
				handlers.RespondBadRequest(w, msgInvalidRequestBody)
				return
			}
			body = data
		}

		resp, err := h.client.Forward(r.Context(), route.Method, route.VendorPath, body)
		if err != nil {
			h.logger.Error("%s %s - Proxy error (%s): %v", route.Method, route.Path, route.VendorPath, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFetchFailed+route.VendorPath)
			return
		}

		if resp.StatusCode >= http.StatusBadRequest {
			h.logger.Warn("%s %s - Vendor responded with status=%d", route.Method, route.Path, resp.StatusCode)
		}
		handlers.RespondRaw(w, resp.StatusCode, resp.ContentType, resp.Body)
	}
}

// Register регистрирует все маршруты прокси в роутере
func (h *Handler) Register(router *mux.Router) {
	for _, route := range Routes {
		router.HandleFunc(route.Path, h.For(route)).Methods(route.Method)
	}
}
