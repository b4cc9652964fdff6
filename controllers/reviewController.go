package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rishijha390/delhi-tandoori-momo/helper"
	"github.com/rishijha390/delhi-tandoori-momo/models"
	"github.com/rishijha390/delhi-tandoori-momo/repository"
)

type ReviewController struct {
	repo     repository.ReviewRepository
	validate *validator.Validate
	log      *logrus.Logger
}

func NewReviewController(repo repository.ReviewRepository, log *logrus.Logger) *ReviewController {
	return &ReviewController{repo: repo, validate: validator.New(), log: log}
}

// Get approved reviews, newest first
func (rc *ReviewController) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}

	reviews, err := rc.repo.ListApproved(ctx, limit)
	if err != nil {
		rc.log.WithError(err).Error("Error fetching reviews")
		helper.RespondError(w, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	if reviews == nil {
		reviews = []models.Review{}
	}
	helper.RespondJSON(w, http.StatusOK, reviews)
}

// Submit a review. Reviews always start unapproved and only become visible
// once approved.
func (rc *ReviewController) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input models.ReviewCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := rc.validate.Struct(input); err != nil {
		helper.RespondValidationError(w, err)
		return
	}

	review := models.Review{
		ID:          primitive.NewObjectID(),
		Name:        input.Name,
		Rating:      input.Rating,
		Review:      input.Review,
		Avatar:      helper.AvatarInitials(input.Name),
		Date:        "Just now",
		Is_approved: false,
		Created_at:  time.Now().UTC(),
	}
	review.Review_id = review.ID.Hex()

	if err := rc.repo.Insert(ctx, review); err != nil {
		rc.log.WithError(err).Error("Error creating review")
		helper.RespondError(w, http.StatusInternalServerError, "Failed to submit review")
		return
	}

	rc.log.WithField("name", review.Name).Info("Review submitted")
	helper.RespondJSON(w, http.StatusOK, review)
}

// Approve a review (admin)
func (rc *ReviewController) ApproveReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	reviewID := mux.Vars(r)["review_id"]

	err := rc.repo.Approve(ctx, reviewID)
	if err == repository.ErrNotFound {
		helper.RespondError(w, http.StatusNotFound, "Review not found")
		return
	}
	if err != nil {
		rc.log.WithError(err).Error("Error approving review")
		helper.RespondError(w, http.StatusInternalServerError, "Failed to approve review")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Review approved successfully",
	})
}
