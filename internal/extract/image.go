package extract

import (
	"context"
	"fmt"
	"strings"

	"fine-ill-eat/internal/llm"
)

// ImageContext tells the image parser what kind of picture it is looking at,
// which changes how meal names should be read out of it.
type ImageContext string

const (
	// ImageMealService is a screenshot of a meal delivery service menu.
	ImageMealService ImageContext = "meal-service"
	// ImageEnjoyedMeal is a photo of a meal the user liked.
	ImageEnjoyedMeal ImageContext = "enjoyed-meal"
)

// MealsFromImage asks the vision model to read meal names out of an image
// and returns them one per entry.
func MealsFromImage(ctx context.Context, describer llm.ImageDescriber, imgCtx ImageContext, mimeType string, data []byte) ([]string, error) {
	resp, err := describer.DescribeImage(ctx, mimeType, data, imagePrompt(imgCtx))
	if err != nil {
		return nil, fmt.Errorf("failed to parse meal image: %w", err)
	}
	return splitMealLines(resp.Content), nil
}

func imagePrompt(imgCtx ImageContext) string {
	switch imgCtx {
	case ImageMealService:
		return "This is a screenshot of a meal delivery service menu. " +
			"List every meal name visible in the image, one per line. " +
			"Output only the meal names, no numbering and no commentary."
	default:
		return "This is a photo of a meal someone enjoyed. " +
			"Identify the dish and name it, one dish per line if several are visible. " +
			"Output only the dish names, no commentary."
	}
}

// splitMealLines cleans model output into bare meal names: bullets and
// numbering stripped, blank lines dropped.
func splitMealLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•")
		line = strings.TrimLeft(line, "0123456789.)")
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
