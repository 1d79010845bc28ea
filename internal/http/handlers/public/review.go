package public

import (
	"strconv"

	handlershared "github.com/sofreh-next/internal/http/handlers/shared"
	"github.com/sofreh-next/internal/http/response"
	"github.com/sofreh-next/internal/repository"
	"github.com/sofreh-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateReviewRequest is the body of a review submission.
type CreateReviewRequest struct {
	ItemID   uint   `json:"item_id" binding:"required"`
	UserName string `json:"user_name" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment" binding:"required"`
}

var reviewErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.item_not_found"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.review_invalid"},
	{target: service.ErrInvalidRating, code: response.CodeBadRequest, key: "error.rating_invalid"},
}

// ListReviews returns reviews, paginated, optionally filtered by item.
func (h *Handler) ListReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.ReviewListFilter{Page: page, PageSize: pageSize}
	if raw := c.Query("item_id"); raw != "" {
		itemID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		filter.MenuItemID = uint(itemID)
	}

	reviews, total, err := h.ReviewService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.review_fetch_failed", err)
		return
	}
	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, reviews, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// ListItemReviews returns every review of one menu item.
func (h *Handler) ListItemReviews(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	reviews, err := h.ReviewService.ListForItem(uint(itemID))
	if err != nil {
		respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.review_fetch_failed")
		return
	}
	response.Success(c, reviews)
}

// CreateReview stores a review for a menu item.
func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.review_invalid", nil)
		return
	}
	review, err := h.ReviewService.Create(service.CreateReviewInput{
		MenuItemID: req.ItemID,
		UserName:   req.UserName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.review_save_failed")
		return
	}
	response.Success(c, review)
}

// DeleteReview removes a review.
func (h *Handler) DeleteReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.ReviewService.Delete(uint(id)); err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
		}, response.CodeInternal, "error.review_save_failed")
		return
	}
	response.Success(c, nil)
}
