package postgres

import (
	"fmt"

	"github.com/glossa-app/glossa-api/internal/domain"
)

// Card states are stored as smallint codes. The mapping is fixed; adding a
// state means appending a new code, never renumbering.
const (
	cardStateNewCode        int16 = 0
	cardStateLearningCode   int16 = 1
	cardStateReviewCode     int16 = 2
	cardStateRelearningCode int16 = 3
)

// encodeCardState converts a domain card state to its storage code.
func encodeCardState(state domain.CardState) (int16, error) {
	switch state {
	case domain.CardStateNew:
		return cardStateNewCode, nil
	case domain.CardStateLearning:
		return cardStateLearningCode, nil
	case domain.CardStateReview:
		return cardStateReviewCode, nil
	case domain.CardStateRelearning:
		return cardStateRelearningCode, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidCardState, state)
	}
}

// decodeCardState converts a storage code back to a domain card state.
func decodeCardState(code int16) (domain.CardState, error) {
	switch code {
	case cardStateNewCode:
		return domain.CardStateNew, nil
	case cardStateLearningCode:
		return domain.CardStateLearning, nil
	case cardStateReviewCode:
		return domain.CardStateReview, nil
	case cardStateRelearningCode:
		return domain.CardStateRelearning, nil
	default:
		return "", fmt.Errorf("%w: unknown storage code %d", domain.ErrInvalidCardState, code)
	}
}
