package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ottshare/ott-share-hub/policy"
	"github.com/ottshare/ott-share-hub/store"
)

// Success writes a 200 response with success=true merged over payload fields.
func Success(ctx *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	ctx.JSON(http.StatusOK, body)
}

// SuccessMsg is Success with a human-readable message field.
func SuccessMsg(ctx *gin.Context, message string, payload gin.H) {
	body := gin.H{"success": true, "message": message}
	for k, v := range payload {
		body[k] = v
	}
	ctx.JSON(http.StatusOK, body)
}

// Fail writes the standard error envelope.
func Fail(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"success": false, "message": message})
}

// FailErr maps a domain error onto the envelope with message as the
// user-facing text. Unknown errors become a generic 500; internals never
// reach the client.
func FailErr(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, policy.ErrUnauthenticated):
		Fail(ctx, http.StatusUnauthorized, message)
	case errors.Is(err, policy.ErrForbidden):
		Fail(ctx, http.StatusForbidden, message)
	case errors.Is(err, store.ErrNotFound):
		Fail(ctx, http.StatusNotFound, message)
	default:
		Fail(ctx, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
	}
}
