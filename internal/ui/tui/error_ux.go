package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/intrale/brandkit/internal/domain"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindInvalidConfig:
			if strings.Contains(err.Error(), "GITHUB_TOKEN") {
				return "GITHUB_TOKEN is not set"
			}
			return "Invalid board configuration"

		case domain.KindNotFound:
			if strings.HasPrefix(oe.Op, "githubgql") {
				return "Project not found (check INTRALE_PROJECT_ID)"
			}
			return "Not found"

		case domain.KindExecution:
			if strings.Contains(err.Error(), "unexpected status 401") {
				return "GitHub rejected the token"
			}
			return "Board request failed (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Board request timed out"
	}
	return "Unexpected error (see logs)"
}
