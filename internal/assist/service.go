package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"safar-travel-api/internal/booking"
	"safar-travel-api/internal/catalog"

	"google.golang.org/genai"
	"gorm.io/gorm"
)

var ErrNotConfigured = errors.New("assistant is not configured")

type AssistService struct {
	DB     *gorm.DB
	Client *genai.Client
}

// Ask answers an admin question against the current catalog and trip data.
// The whole inventory is small enough to inline into the prompt.
func (as *AssistService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("question is required")
	}
	if as.Client == nil {
		return "", ErrNotConfigured
	}

	contextBlock, err := as.buildContext()
	if err != nil {
		return "", err
	}

	prompt := question +
		"\n\nAnswer the question using only the travel catalog below. " +
		"Do not invent packages, prices or dates that are not listed.\n\n" +
		contextBlock

	genResp, err := as.Client.Models.GenerateContent(ctx, "gemini-2.5-flash", []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("generation error: %w", err)
	}

	var response string
	if len(genResp.Candidates) > 0 {
		for _, candidate := range genResp.Candidates {
			if candidate.Content != nil {
				for _, part := range candidate.Content.Parts {
					if part.Text != "" {
						response = part.Text
						break
					}
				}
			}
		}
	}

	if response == "" {
		return "", fmt.Errorf("no response from Gemini")
	}

	return response, nil
}

// buildContext renders active package records and published trips as a plain
// text block for the prompt.
func (as *AssistService) buildContext() (string, error) {
	var records []catalog.PackageRecord
	if err := as.DB.
		Where("is_active = ?", true).
		Order("kind, created_at DESC").
		Find(&records).Error; err != nil {
		return "", err
	}

	var trips []booking.Trip
	if err := as.DB.
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&trips).Error; err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("PACKAGES:\n")
	for _, r := range records {
		b.WriteString(fmt.Sprintf("- [%s] %s", r.Kind, r.Title))
		if r.Category != nil {
			b.WriteString(fmt.Sprintf(" (%s)", *r.Category))
		}
		if r.Price != nil {
			b.WriteString(fmt.Sprintf(", price %.2f", *r.Price))
		}
		if r.Caption != nil {
			b.WriteString(fmt.Sprintf(", %s", *r.Caption))
		}
		b.WriteString("\n")
	}

	b.WriteString("\nTRIPS:\n")
	for _, tr := range trips {
		b.WriteString(fmt.Sprintf("- %s to %s, %s to %s, price %.2f, %d seats left",
			tr.Title, tr.Destination, tr.StartDate, tr.EndDate, tr.Price, tr.SeatsAvailable))
		if len(tr.Highlights) > 0 {
			b.WriteString(", highlights: " + strings.Join(tr.Highlights, "; "))
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}
