package http

import (
	"net/http"

	"github.com/mvidales/go-purchase-graph/internal/utils"
	"github.com/mvidales/go-purchase-graph/models"
)

// writeError sends the uniform JSON error body with the given status code.
// Internal details never reach the client; message is the user-facing text.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
