package service

import (
	"fmt"

	"starthobby-backend/internal/model"
	"starthobby-backend/internal/repository"
)

type QuizService interface {
	GetQuizzes() ([]model.Quiz, error)
	GetQuizTree(quizID uint) (*model.QuizTree, error)
	UpdateQuestionText(questionID uint, text string) error
	UpdateOptionText(optionID uint, text string) error
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) GetQuizzes() ([]model.Quiz, error) {
	return s.quizRepo.GetQuizzes()
}

// GetQuizTree fetches the ordered join rows for a quiz and folds them
// into the nested quiz/question/option structure.
func (s *quizService) GetQuizTree(quizID uint) (*model.QuizTree, error) {
	rows, err := s.quizRepo.GetQuizTreeRows(quizID)
	if err != nil {
		return nil, fmt.Errorf("fetch quiz rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrQuizNotFound
	}
	return buildQuizTree(rows), nil
}

// buildQuizTree folds flat join rows into a tree. Rows arrive sorted by
// (question_id, option_id); questions keep first-seen order and options
// keep input order. The quiz header comes from the first row. Must only
// be called with a non-empty row set.
func buildQuizTree(rows []model.QuizTreeRow) *model.QuizTree {
	tree := &model.QuizTree{
		QuizID:      rows[0].QuizID,
		Title:       rows[0].Title,
		Description: rows[0].Description,
		Questions:   []model.QuestionNode{},
	}

	// question id -> index into tree.Questions; appends invalidate node
	// pointers, so indices are recorded instead.
	seen := make(map[uint]int)

	for _, row := range rows {
		idx, ok := seen[row.QuestionID]
		if !ok {
			idx = len(tree.Questions)
			seen[row.QuestionID] = idx
			tree.Questions = append(tree.Questions, model.QuestionNode{
				QuestionID:   row.QuestionID,
				QuestionText: row.QuestionText,
				Options:      []model.OptionNode{},
			})
		}
		tree.Questions[idx].Options = append(tree.Questions[idx].Options, model.OptionNode{
			OptionID:   row.OptionID,
			OptionText: row.OptionText,
		})
	}

	return tree
}

func (s *quizService) UpdateQuestionText(questionID uint, text string) error {
	return s.quizRepo.UpdateQuestionText(questionID, text)
}

func (s *quizService) UpdateOptionText(optionID uint, text string) error {
	return s.quizRepo.UpdateOptionText(optionID, text)
}
