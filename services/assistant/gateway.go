package assistant

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"zyppr/models"
	"zyppr/scheduling"
	"zyppr/utils"
)

// Interpret runs one conversational turn: project availability, assemble the
// bounded context, call the model, extract and validate the JSON reply. It
// never returns an error; transport failures, missing JSON, parse errors and
// contract violations all collapse into a deterministic fallback response.
// No retry is attempted; a new user turn always starts fresh.
func (s *DefaultAssistantService) Interpret(ctx context.Context, message string, role models.Role, business models.Business, user *models.User) *models.AssistantResponse {
	logger := utils.GetLogger()
	now := s.now().UTC()

	slots := scheduling.ProjectUpcomingSlots(business.Services, now, s.horizonDays())
	prompt := buildPrompt(role, user, business, slots, now, message)

	raw, err := s.Model.GenerateContent(ctx, instructionForRole(string(role)), prompt)
	if err != nil {
		logger.Error("assistant: model call failed",
			zap.String("businessID", business.ID), zap.Error(err))
		return s.fallback(role, business, false)
	}

	jsonText, err := ExtractJSON(raw)
	if err != nil {
		logger.Error("assistant: no JSON object in model output",
			zap.String("businessID", business.ID), zap.Error(err))
		return s.fallback(role, business, false)
	}

	var parsed models.AssistantResponse
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		logger.Error("assistant: model output failed to parse",
			zap.String("businessID", business.ID), zap.Error(err))
		return s.fallback(role, business, false)
	}

	if err := ValidateResponse(&parsed); err != nil {
		logger.Error("assistant: model output failed contract validation",
			zap.String("businessID", business.ID), zap.Error(err))
		return s.fallback(role, business, IsSchemaViolation(err))
	}

	return &parsed
}

// fallback is the user-safe answer for any failed turn. It always carries a
// populated response bag; schema violations additionally ask the user to
// rephrase.
func (s *DefaultAssistantService) fallback(role models.Role, business models.Business, schemaViolation bool) *models.AssistantResponse {
	bag := &models.AssistantResponseBag{
		AssistantReply: "I'm sorry, an unexpected error occurred. Please try again in a moment.",
		Errors:         []string{"An unexpected error occurred while processing your request. The assistant may be offline or have returned an invalid response."},
	}
	if schemaViolation {
		bag.Errors = []string{"The assistant returned data in an unexpected format. Please try again."}
		bag.ClarifyingQuestions = []string{"Could you please rephrase your request?"}
	}

	return &models.AssistantResponse{
		Operation: models.OpAssist,
		Role:      string(role),
		Status:    "failure",
		Business: &models.AssistantBusinessCtx{
			ID:       business.ID,
			Name:     business.Name,
			Category: models.CategoryForType(business.Type),
			Address:  business.Address,
			Zipcode:  business.Zipcode,
			Timezone: business.Timezone,
		},
		Request:  nil,
		Response: bag,
	}
}
