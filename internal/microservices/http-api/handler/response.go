package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"bookhub/internal/microservices/http-api/middleware"
	"bookhub/internal/validation"

	"github.com/gin-gonic/gin"
)

const (
	msgInternalError = "Internal server error."
	msgMalformedBody = "Malformed JSON body"
	msgInvalidBookID = "Invalid book id"
	msgBookNotFound  = "Book not found"
	msgBodyTooLarge  = "Request body too large"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

func writeMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// bindBody decodes the request body and checks it against schema. On failure
// it writes the 400 (or 413) response itself and returns false.
func bindBody(c *gin.Context, schema validation.Schema) (validation.Values, bool) {
	body, err := validation.DecodeBody(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"message": validation.Violations{{Message: msgBodyTooLarge}},
			})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"message": validation.Violations{{Message: msgMalformedBody}},
		})
		return nil, false
	}

	values, violations := schema.Validate(body)
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": violations})
		return nil, false
	}
	return values, true
}

// parseID reads a numeric path parameter, answering 400 with message when it is not one.
func parseID(c *gin.Context, param, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		writeMessage(c, http.StatusBadRequest, message)
		return 0, false
	}
	return id, true
}

// currentUser returns the id set by the auth guard. Routes using it are
// always mounted behind the guard, so a miss is a wiring bug.
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		writeMessage(c, http.StatusUnauthorized, "Invalid session data")
	}
	return userID, ok
}

// internalError logs err and answers with a generic 500.
func internalError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Error("request failed",
		slog.String("method", c.Request.Method),
		slog.String("route", c.FullPath()),
		slog.Any("error", err),
	)
	writeMessage(c, http.StatusInternalServerError, msgInternalError)
}
