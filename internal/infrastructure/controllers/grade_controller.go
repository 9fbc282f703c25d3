package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/corrigir/internal/domain/commands"
	"github.com/rios0rios0/corrigir/internal/domain/entities"
)

const (
	gradeFailureMessage = "Erro ao processar a correção."
	maxRequestBodyBytes = 1 << 20
)

// GradeController handles "POST /corrigir".
type GradeController struct {
	command   commands.Grade
	validator *validator.Validate
}

// NewGradeController creates a new GradeController.
func NewGradeController(command commands.Grade) *GradeController {
	return &GradeController{
		command:   command,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// GetBind returns where the grade controller is mounted.
func (it *GradeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Method: http.MethodPost,
		Path:   "/corrigir",
	}
}

// Execute grades the submitted answer. Every failure is answered with the same 500.
func (it *GradeController) Execute(w http.ResponseWriter, r *http.Request) {
	input, err := it.bind(r)
	if err != nil {
		logger.Errorf("Rejected grading request: %v", err)
		writeError(w, gradeFailureMessage)
		return
	}

	output, err := it.command.Execute(r.Context(), input)
	if err != nil {
		logger.Errorf("Grading failed: %v", err)
		writeError(w, gradeFailureMessage)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (it *GradeController) bind(r *http.Request) (entities.GradeInput, error) {
	var input entities.GradeInput

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(&input); err != nil {
		return input, fmt.Errorf("%w: invalid JSON: %w", entities.ErrInvalidRequest, err)
	}
	if err := it.validator.Struct(input); err != nil {
		return input, fmt.Errorf("%w: %w", entities.ErrInvalidRequest, err)
	}

	return input, nil
}
