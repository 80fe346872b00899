package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/delivery/http/middleware"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/response"
	"clinic-admin/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TransferHandler struct {
	transferUsecase usecase.TransferUsecase
	validator       *validator.CustomValidator
}

func NewTransferHandler(transferUsecase usecase.TransferUsecase, validator *validator.CustomValidator) *TransferHandler {
	return &TransferHandler{
		transferUsecase: transferUsecase,
		validator:       validator,
	}
}

// ListTransfers returns transfers the current user is part of. The
// "direction" filter narrows to incoming or outgoing; "status" narrows by
// transfer status.
func (h *TransferHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	q := parseListQuery(r, "direction", "status")

	transfers, total, err := h.transferUsecase.List(r.Context(), userID, q)
	if err != nil {
		response.InternalServerError(w, "Failed to list transfers")
		return
	}

	response.Paginated(w, "Transfers retrieved successfully", pageEnvelope(q, transfers, total))
}

func (h *TransferHandler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	transferID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid transfer ID", nil)
		return
	}

	transfer, err := h.transferUsecase.GetByID(r.Context(), transferID)
	if err != nil {
		if err == usecase.ErrTransferNotFound {
			response.NotFound(w, "Transfer not found")
			return
		}
		response.InternalServerError(w, "Failed to get transfer")
		return
	}

	response.Success(w, http.StatusOK, "Transfer retrieved successfully", transfer)
}

func (h *TransferHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	transfer, err := h.transferUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrRecipientNotFound:
			response.NotFound(w, "Recipient not found")
		case usecase.ErrTransferSelf:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create transfer")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Transfer created successfully", transfer)
}

func (h *TransferHandler) AcceptTransfer(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.transferUsecase.Accept, "Transfer accepted successfully")
}

func (h *TransferHandler) RejectTransfer(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.transferUsecase.Reject, "Transfer rejected successfully")
}

func (h *TransferHandler) CancelTransfer(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.transferUsecase.Cancel, "Transfer cancelled successfully")
}

func (h *TransferHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	decision func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.TransferResponse, error),
	message string,
) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	transferID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid transfer ID", nil)
		return
	}

	transfer, err := decision(r.Context(), userID, transferID)
	if err != nil {
		switch err {
		case usecase.ErrTransferNotFound:
			response.NotFound(w, "Transfer not found")
		case usecase.ErrTransferNotPending:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		case usecase.ErrNotTransferRecipient, usecase.ErrNotTransferSender:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update transfer")
		}
		return
	}

	response.Success(w, http.StatusOK, message, transfer)
}
