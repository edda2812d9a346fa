package assistant

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"zyppr/models"
)

// GenerateMarketingPost produces caption text and one generated image for a
// social post. Pure pass-through to the model: no retries, errors are
// returned to the caller.
func (s *DefaultAssistantService) GenerateMarketingPost(ctx context.Context, businessType, platform, tone string) (*models.MarketingPost, error) {
	textPrompt := fmt.Sprintf(
		"Create a short, engaging social media post for a %s to be published on %s. The tone should be %s. Include relevant hashtags.",
		businessType, platform, tone)
	caption, err := s.Model.GenerateContent(ctx, "", textPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate post text: %w", err)
	}

	imagePrompt := fmt.Sprintf(
		"A vibrant, high-quality photograph for a social media post about a %s. The image should be inspiring and relevant to %s marketing. Aspect ratio for %s.",
		businessType, strings.ToLower(tone), platform)
	data, mimeType, err := s.Images.GenerateImage(ctx, imagePrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate post image: %w", err)
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	return &models.MarketingPost{
		Platform: platform,
		Caption:  strings.TrimSpace(caption),
		ImageURL: fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)),
	}, nil
}

// GenerateDescription writes a one-sentence description for a new service.
// A failure degrades to an empty description rather than blocking creation.
func (s *DefaultAssistantService) GenerateDescription(ctx context.Context, serviceName, businessType string) (string, error) {
	prompt := fmt.Sprintf(
		"Write a brief, appealing one-sentence description for a service called %q at a %s.",
		serviceName, businessType)
	text, err := s.Model.GenerateContent(ctx, "", prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate description: %w", err)
	}
	return strings.TrimSpace(text), nil
}
