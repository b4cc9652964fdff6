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

type ContactController struct {
	repo     repository.ContactRepository
	validate *validator.Validate
	log      *logrus.Logger
}

func NewContactController(repo repository.ContactRepository, log *logrus.Logger) *ContactController {
	return &ContactController{repo: repo, validate: validator.New(), log: log}
}

// Submit a contact form message
func (cc *ContactController) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input models.ContactMessageCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := cc.validate.Struct(input); err != nil {
		helper.RespondValidationError(w, err)
		return
	}

	message := models.ContactMessage{
		ID:         primitive.NewObjectID(),
		Name:       input.Name,
		Phone:      input.Phone,
		Email:      input.Email,
		Message:    input.Message,
		Is_read:    false,
		Created_at: time.Now().UTC(),
	}
	message.Message_id = message.ID.Hex()

	if err := cc.repo.Insert(ctx, message); err != nil {
		cc.log.WithError(err).Error("Error creating contact message")
		helper.RespondError(w, http.StatusInternalServerError, "Failed to submit message")
		return
	}

	cc.log.WithField("name", message.Name).Info("Contact message received")
	helper.RespondJSON(w, http.StatusOK, message)
}

// Get contact messages newest first (admin)
func (cc *ContactController) GetContactMessages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = 50
	}
	offset, err := strconv.ParseInt(r.URL.Query().Get("offset"), 10, 64)
	if err != nil || offset < 0 {
		offset = 0
	}

	messages, err := cc.repo.List(ctx, limit, offset)
	if err != nil {
		cc.log.WithError(err).Error("Error fetching contact messages")
		helper.RespondError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	if messages == nil {
		messages = []models.ContactMessage{}
	}
	helper.RespondJSON(w, http.StatusOK, messages)
}

// Mark a contact message as read (admin)
func (cc *ContactController) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	messageID := mux.Vars(r)["message_id"]

	err := cc.repo.MarkRead(ctx, messageID)
	if err == repository.ErrNotFound {
		helper.RespondError(w, http.StatusNotFound, "Message not found")
		return
	}
	if err != nil {
		cc.log.WithError(err).Error("Error marking message as read")
		helper.RespondError(w, http.StatusInternalServerError, "Failed to update message")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Message marked as read",
	})
}
