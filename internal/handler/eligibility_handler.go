package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eligify/eligify-backend/internal/model"
	"github.com/eligify/eligify-backend/internal/response"
	"github.com/eligify/eligify-backend/internal/service"
	"github.com/eligify/eligify-backend/internal/validator"
)

type EligibilityHandler struct {
	eligibilityService *service.EligibilityService
}

func NewEligibilityHandler(eligibilityService *service.EligibilityService) *EligibilityHandler {
	return &EligibilityHandler{eligibilityService: eligibilityService}
}

// CheckEligibility godoc
// POST /api/v1/eligibility/check
func (h *EligibilityHandler) CheckEligibility(c *gin.Context) {
	var in model.CandidateInput
	if details := validator.Bind(c, &in); details != nil {
		response.FailWithDetails(c, http.StatusBadRequest, response.ErrInvalidPayload, details)
		return
	}

	result, vr, err := h.eligibilityService.Check(c.Request.Context(), in)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if !vr.Valid {
		response.FailWithDetails(c, http.StatusUnprocessableEntity, response.ErrValidation, vr.Errors)
		return
	}

	message := fmt.Sprintf("Success! %s, your profile has been matched with %d exams.",
		result.Candidate.FirstName, result.TotalMatches)
	if result.TotalMatches == 0 {
		message = fmt.Sprintf("Sorry, %s. No exams matched your criteria in our database.",
			result.Candidate.FirstName)
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":       message,
		"candidate":     result.Candidate,
		"matches":       result.Matches,
		"total_matches": result.TotalMatches,
	})
}
