package tools

import (
	"errors"
	"fmt"

	"github.com/roelven/another-planka-mcp/internal/planka"
)

// apiErrorText converts a remote-call failure into its user-facing
// message. Every tool funnels failures through here, so adding a new
// status mapping touches one place. The messages are returned as tool
// text, not raised — the agent reads them and corrects course.
func apiErrorText(err error) string {
	var statusErr *planka.StatusError
	switch {
	case errors.As(err, &statusErr):
		switch statusErr.Status {
		case 401:
			return "Error: Invalid API credentials. Check your access token or API key in the .env file."
		case 403:
			return "Error: You don't have permission to access this resource. You may need board membership."
		case 404:
			return "Error: Resource not found. Check that the ID is correct and the resource exists."
		case 429:
			return "Error: Rate limit exceeded. Wait a moment before trying again."
		default:
			return fmt.Sprintf("Error: API request failed (HTTP %d). Please try again.", statusErr.Status)
		}
	case errors.Is(err, planka.ErrTimeout):
		return "Error: Request timed out. The Planka server may be slow or unreachable."
	case errors.Is(err, planka.ErrConnect):
		return "Error: Cannot connect to Planka server. Check the PLANKA_BASE_URL in your .env file."
	default:
		return fmt.Sprintf("Error: Unexpected error - %T: %v", err, err)
	}
}
