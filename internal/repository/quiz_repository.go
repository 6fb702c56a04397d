package repository

import (
	"starthobby-backend/internal/db"
	"starthobby-backend/internal/model"
)

type QuizRepository interface {
	GetQuizzes() ([]model.Quiz, error)
	GetQuizTreeRows(quizID uint) ([]model.QuizTreeRow, error)
	ResolveAnswer(quizID, questionID, optionID uint) (*model.QAPair, bool, error)
	UpdateQuestionText(questionID uint, text string) error
	UpdateOptionText(optionID uint, text string) error
}

type quizRepository struct{}

func NewQuizRepository() QuizRepository {
	return &quizRepository{}
}

func (r *quizRepository) GetQuizzes() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := db.GetDB().Find(&quizzes).Error
	return quizzes, err
}

// GetQuizTreeRows returns the flat quiz/question/option join for one
// quiz. The ORDER BY fixes the shape of the tree built from these rows;
// the aggregator does not re-sort.
func (r *quizRepository) GetQuizTreeRows(quizID uint) ([]model.QuizTreeRow, error) {
	var rows []model.QuizTreeRow
	err := db.GetDB().Raw(`
		SELECT q.quiz_id, q.title, q.description,
		       qq.question_id, qq.question_text,
		       qo.option_id, qo.option_text
		FROM quizzes q
		JOIN questions qq ON qq.quiz_id = q.quiz_id
		JOIN options qo ON qo.question_id = qq.question_id
		WHERE q.quiz_id = ?
		ORDER BY qq.question_id, qo.option_id`, quizID).Scan(&rows).Error
	return rows, err
}

// ResolveAnswer performs the three-way consistency check: the question
// must belong to the quiz and the option must belong to that question.
// The second return value is false when no such chain exists.
func (r *quizRepository) ResolveAnswer(quizID, questionID, optionID uint) (*model.QAPair, bool, error) {
	var row struct {
		QuestionText string
		OptionText   string
	}
	result := db.GetDB().Raw(`
		SELECT qq.question_text, qo.option_text
		FROM questions qq
		JOIN options qo ON qo.question_id = qq.question_id
		WHERE qq.quiz_id = ? AND qq.question_id = ? AND qo.option_id = ?`,
		quizID, questionID, optionID).Scan(&row)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}
	return &model.QAPair{Question: row.QuestionText, Answer: row.OptionText}, true, nil
}

func (r *quizRepository) UpdateQuestionText(questionID uint, text string) error {
	return db.GetDB().Model(&model.Question{}).
		Where("question_id = ?", questionID).
		Update("question_text", text).Error
}

func (r *quizRepository) UpdateOptionText(optionID uint, text string) error {
	return db.GetDB().Model(&model.Option{}).
		Where("option_id = ?", optionID).
		Update("option_text", text).Error
}
