// internal/api/gift_handlers.go
package api

import (
	"encoding/json"
	"strconv"
	"strings"

	stderrors "giftwise/internal/common/errors"
	"giftwise/internal/common/validation"
	"giftwise/internal/models"

	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 20

func (r *Router) handleRecommend(c *gin.Context) {
	var doc map[string]interface{}
	if err := c.ShouldBindJSON(&doc); err != nil {
		r.errors.Respond(c, stderrors.NewValidationFailedError("request body must be valid JSON"))
		return
	}

	issues, err := validation.ValidateSurvey(doc)
	if err != nil {
		r.errors.Respond(c, err)
		return
	}
	if len(issues) > 0 {
		r.errors.Respond(c, stderrors.NewValidationFailedError(strings.Join(issues, "; ")))
		return
	}

	// The document passed the schema, so this decode cannot fail on types.
	raw, err := json.Marshal(doc)
	if err != nil {
		r.errors.Respond(c, stderrors.NewInternalError(err))
		return
	}
	var survey models.Survey
	if err := json.Unmarshal(raw, &survey); err != nil {
		r.errors.Respond(c, stderrors.NewInternalError(err))
		return
	}

	userID := ""
	if user := currentUser(c); user != nil {
		userID = user.ID
	}

	result := r.deps.Recommender.Recommend(c.Request.Context(), userID, survey)
	c.JSON(200, result)
}

func (r *Router) handleHistory(c *gin.Context) {
	user := currentUser(c)

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			r.errors.Respond(c, stderrors.NewValidationFailedError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	recs, err := r.deps.History.ListByUser(c.Request.Context(), user.ID, limit)
	if err != nil {
		r.errors.Respond(c, err)
		return
	}
	c.JSON(200, gin.H{"recommendations": recs})
}

func (r *Router) handleGetGift(c *gin.Context) {
	gift, err := r.deps.Gifts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		r.errors.Respond(c, err)
		return
	}
	c.JSON(200, gin.H{"gift": gift})
}

func (r *Router) handleListSavedGifts(c *gin.Context) {
	user := currentUser(c)

	gifts, err := r.deps.Saved.List(c.Request.Context(), user.ID)
	if err != nil {
		r.errors.Respond(c, err)
		return
	}
	c.JSON(200, gin.H{"gifts": gifts})
}

func (r *Router) handleSaveGift(c *gin.Context) {
	user := currentUser(c)

	var gift models.Gift
	if err := c.ShouldBindJSON(&gift); err != nil || gift.ID == "" || gift.Name == "" {
		r.errors.Respond(c, stderrors.NewValidationFailedError("gift id and name are required"))
		return
	}

	if err := r.deps.Saved.Save(c.Request.Context(), user.ID, gift); err != nil {
		r.errors.Respond(c, err)
		return
	}
	c.JSON(201, gin.H{"gift": gift})
}

func (r *Router) handleIsGiftSaved(c *gin.Context) {
	user := currentUser(c)

	saved, err := r.deps.Saved.IsSaved(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		r.errors.Respond(c, err)
		return
	}
	c.JSON(200, gin.H{"saved": saved})
}

func (r *Router) handleRemoveSavedGift(c *gin.Context) {
	user := currentUser(c)

	if err := r.deps.Saved.Remove(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		r.errors.Respond(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Gift removed"})
}
