package globalsvc

import (
	"context"
	"fmt"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// DefaultMaxItems is how many lines a panel shows before truncation.
const DefaultMaxItems = 8

// BuildSummaries runs each builder against the source and collects the
// panels that produced content, in builder order. A builder that errors or
// returns nil contributes nothing; the remaining panels still render, so a
// single denied API call never blanks the whole sidebar.
func BuildSummaries(ctx context.Context, src *Source, maxItems int, builders []NamedBuilder) []models.GlobalServiceSummary {
	summaries := make([]models.GlobalServiceSummary, 0, len(builders))
	for _, b := range builders {
		summary, err := b.Build(ctx, src, maxItems)
		if err != nil || summary == nil {
			continue
		}
		summaries = append(summaries, *summary)
	}
	return summaries
}

// TruncateLines caps a panel's line list at maxItems. When lines are dropped
// a final "… (+N more)" line reports how many, so the panel never hides the
// existence of resources it did not list.
func TruncateLines(lines []string, maxItems int) []string {
	if maxItems < 0 {
		maxItems = 0
	}
	if len(lines) <= maxItems {
		return lines
	}
	out := make([]string, 0, maxItems+1)
	out = append(out, lines[:maxItems]...)
	out = append(out, fmt.Sprintf("… (+%d more)", len(lines)-maxItems))
	return out
}
