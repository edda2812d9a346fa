// Package assistant is the interpretation gateway: it turns a user's free
// text plus structured business context into a contract-validated structured
// operation result via an external language model. All external failure
// modes are absorbed here; callers always receive a schema-conformant value.
package assistant

import (
	"context"
	"time"

	"zyppr/models"
)

// ModelClient abstracts the text-completion call to the interpretation
// service. Full context is resent every turn; no server-side state.
type ModelClient interface {
	GenerateContent(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// ImageGenerator produces one image payload from a text prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (data []byte, mimeType string, err error)
}

// Service is the assistant surface consumed by handlers.
type Service interface {
	// Interpret never fails: every failure mode resolves to a fallback
	// response with status "failure" and a populated response bag.
	Interpret(ctx context.Context, message string, role models.Role, business models.Business, user *models.User) *models.AssistantResponse

	GenerateMarketingPost(ctx context.Context, businessType, platform, tone string) (*models.MarketingPost, error)
	GenerateDescription(ctx context.Context, serviceName, businessType string) (string, error)
}

// DefaultAssistantService wires the model client, the image generator and
// the projection horizon together.
type DefaultAssistantService struct {
	Model       ModelClient
	Images      ImageGenerator
	HorizonDays int
	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultAssistantService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAssistantService) horizonDays() int {
	if s.HorizonDays > 0 {
		return s.HorizonDays
	}
	return 14
}
