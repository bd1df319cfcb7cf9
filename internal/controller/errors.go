package controller

import (
	"errors"
	"net/http"

	"pengasuh_backend/internal/scoring"
	"pengasuh_backend/internal/util"

	"github.com/gin-gonic/gin"
)

var badRequestErrors = []error{
	scoring.ErrNoQuestions,
	scoring.ErrIncompleteAnswers,
	scoring.ErrUnknownQuestion,
	scoring.ErrResponseOutOfRange,
	scoring.ErrUnknownOption,
	scoring.ErrInvalidOptions,
	util.ErrInvalidQuizSet,
	util.ErrInvalidTopic,
	util.ErrInvalidMediaKind,
	util.ErrInvalidMediaLink,
	util.ErrInvalidQuestion,
	util.ErrInvalidFileType,
}

// respondError maps domain errors to status codes; anything unknown is a 500.
func respondError(ctx *gin.Context, err error) {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	switch {
	case errors.Is(err, util.ErrEmailRegistered):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, util.ErrUserNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrFileTooLarge):
		util.Error(ctx, http.StatusRequestEntityTooLarge, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

func currentUserID(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}
	return claims.UserID, true
}
