package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eligify/eligify-backend/internal/model"
	"github.com/eligify/eligify-backend/internal/response"
	"github.com/eligify/eligify-backend/internal/service"
	"github.com/eligify/eligify-backend/internal/validator"
)

type MarksheetHandler struct {
	marksheetService *service.MarksheetService
}

func NewMarksheetHandler(marksheetService *service.MarksheetService) *MarksheetHandler {
	return &MarksheetHandler{marksheetService: marksheetService}
}

// ParseMarksheet godoc
// POST /api/v1/marksheets/parse
//
// A field-level extraction failure reported by the parser is a warning, not a
// request failure: scanning and eligibility matching are independent features.
func (h *MarksheetHandler) ParseMarksheet(c *gin.Context) {
	var opts model.ParseMarksheetOptions
	if details := validator.BindQuery(c, &opts); details != nil {
		response.FailWithDetails(c, http.StatusBadRequest, response.ErrValidation, details)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	result, err := h.marksheetService.Parse(c.Request.Context(), file, header, opts)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
		case errors.Is(err, service.ErrExtractionFailed):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrExtractionFailed)
		case errors.Is(err, service.ErrParserUnavailable):
			response.Fail(c, http.StatusBadGateway, response.ErrParserUnavailable)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	data := gin.H{
		"fields": result.Fields,
		"method": result.Method,
		"dpi":    result.DPI,
	}
	if result.Fields.Error != "" {
		data["warning"] = result.Fields.Error
	}
	response.Success(c, http.StatusOK, data)
}
