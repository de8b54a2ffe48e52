package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors agrega as falhas de todos os campos de um request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

func ValidateCreateLeadInput(input CreateLeadInput) ValidationErrors {
	var errors ValidationErrors

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	if input.Status == "" {
		errors = append(errors, ValidationError{"status", "is required"})
	} else if !entity.IsValidLeadStatus(input.Status) {
		errors = append(errors, ValidationError{"status", fmt.Sprintf("must be one of: %s", strings.Join(entity.LeadStatuses, ", "))})
	}

	if input.Source == "" {
		errors = append(errors, ValidationError{"source", "is required"})
	} else if !entity.IsValidLeadSource(input.Source) {
		errors = append(errors, ValidationError{"source", fmt.Sprintf("must be one of: %s", strings.Join(entity.LeadSources, ", "))})
	}

	if input.SalesAgentID != nil && !isValidUUID(*input.SalesAgentID) {
		errors = append(errors, ValidationError{"sales_agent_id", "must be a valid UUID"})
	}

	errors = append(errors, validateTags(input.Tags)...)

	return errors
}

func ValidateUpdateLeadInput(input UpdateLeadInput) ValidationErrors {
	var errors ValidationErrors

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		errors = append(errors, ValidationError{"name", "must not be empty"})
	}

	if input.Email != nil && *input.Email != "" {
		if _, err := mail.ParseAddress(*input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	if input.Status != nil && !entity.IsValidLeadStatus(*input.Status) {
		errors = append(errors, ValidationError{"status", fmt.Sprintf("must be one of: %s", strings.Join(entity.LeadStatuses, ", "))})
	}

	if input.Source != nil && !entity.IsValidLeadSource(*input.Source) {
		errors = append(errors, ValidationError{"source", fmt.Sprintf("must be one of: %s", strings.Join(entity.LeadSources, ", "))})
	}

	if input.SalesAgentID != nil && *input.SalesAgentID != "" && !isValidUUID(*input.SalesAgentID) {
		errors = append(errors, ValidationError{"sales_agent_id", "must be a valid UUID"})
	}

	errors = append(errors, validateTags(input.Tags)...)

	return errors
}

func ValidateCreateAgentInput(input CreateAgentInput) ValidationErrors {
	var errors ValidationErrors

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

func ValidateCreateCommentInput(input CreateCommentInput) ValidationErrors {
	var errors ValidationErrors

	if strings.TrimSpace(input.Text) == "" {
		errors = append(errors, ValidationError{"text", "is required"})
	}

	if input.AuthorID != nil && !isValidUUID(*input.AuthorID) {
		errors = append(errors, ValidationError{"author_id", "must be a valid UUID"})
	}

	return errors
}

func ValidateCreateTagInput(input CreateTagInput) ValidationErrors {
	var errors ValidationErrors

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 50 {
		errors = append(errors, ValidationError{"name", "must not exceed 50 characters"})
	}

	return errors
}

// ValidateLeadFilter valida cada campo do filtro antes de virar predicado.
func ValidateLeadFilter(filter entity.LeadFilter) ValidationErrors {
	var errors ValidationErrors

	if filter.SalesAgentID != nil && !isValidUUID(*filter.SalesAgentID) {
		errors = append(errors, ValidationError{"salesAgentId", "must be a valid UUID"})
	}

	if filter.Status != nil && !entity.IsValidLeadStatus(*filter.Status) {
		errors = append(errors, ValidationError{"status", fmt.Sprintf("must be one of: %s", strings.Join(entity.LeadStatuses, ", "))})
	}

	if filter.Source != nil && !entity.IsValidLeadSource(*filter.Source) {
		errors = append(errors, ValidationError{"source", fmt.Sprintf("must be one of: %s", strings.Join(entity.LeadSources, ", "))})
	}

	for _, tag := range filter.Tags {
		if strings.TrimSpace(tag) == "" {
			errors = append(errors, ValidationError{"tags", "must not contain empty names"})
			break
		}
	}

	return errors
}

func validateTags(tags []string) ValidationErrors {
	var errors ValidationErrors
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			errors = append(errors, ValidationError{"tags", "must not contain empty names"})
			break
		}
	}
	return errors
}

func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
