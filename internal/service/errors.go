package service

import "errors"

var (
	// ErrQuizNotFound means no rows resolved for the requested quiz.
	ErrQuizNotFound = errors.New("quiz not found")

	// ErrNoValidAnswers means every submitted answer failed the
	// quiz/question/option consistency check. The evaluation is rejected
	// before any engine call is made.
	ErrNoValidAnswers = errors.New("no submitted answer matched the quiz")

	// ErrRecommendationNotFound means the requested stored recommendation
	// does not exist.
	ErrRecommendationNotFound = errors.New("recommendation not found")
)
