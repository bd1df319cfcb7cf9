package scoring

import "errors"

var (
	ErrNoQuestions        = errors.New("question set is empty")
	ErrIncompleteAnswers  = errors.New("not all questions are answered")
	ErrUnknownQuestion    = errors.New("answer refers to an unknown question")
	ErrResponseOutOfRange = errors.New("response value out of range")
	ErrUnknownOption      = errors.New("answer is not one of the question's options")
	ErrInvalidOptions     = errors.New("question options are malformed")
)
