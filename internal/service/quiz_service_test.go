package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starthobby-backend/internal/model"
)

// fakeQuizRepo serves canned rows and resolves answers from an in-memory
// quiz/question/option chain table.
type fakeQuizRepo struct {
	rows    []model.QuizTreeRow
	rowsErr error

	// chains maps quizID -> questionID -> optionID -> QAPair
	chains     map[uint]map[uint]map[uint]model.QAPair
	resolveErr error
	lookups    int
}

func (f *fakeQuizRepo) GetQuizzes() ([]model.Quiz, error) { return nil, nil }

func (f *fakeQuizRepo) GetQuizTreeRows(quizID uint) ([]model.QuizTreeRow, error) {
	return f.rows, f.rowsErr
}

func (f *fakeQuizRepo) ResolveAnswer(quizID, questionID, optionID uint) (*model.QAPair, bool, error) {
	f.lookups++
	if f.resolveErr != nil {
		return nil, false, f.resolveErr
	}
	questions, ok := f.chains[quizID]
	if !ok {
		return nil, false, nil
	}
	options, ok := questions[questionID]
	if !ok {
		return nil, false, nil
	}
	pair, ok := options[optionID]
	if !ok {
		return nil, false, nil
	}
	return &pair, true, nil
}

func (f *fakeQuizRepo) UpdateQuestionText(questionID uint, text string) error { return nil }
func (f *fakeQuizRepo) UpdateOptionText(optionID uint, text string) error     { return nil }

func TestGetQuizTree_FoldsRowsIntoTree(t *testing.T) {
	repo := &fakeQuizRepo{rows: []model.QuizTreeRow{
		{QuizID: 1, Title: "Hobby Finder", Description: "Find your hobby", QuestionID: 10, QuestionText: "Outdoors?", OptionID: 100, OptionText: "Yes"},
		{QuizID: 1, Title: "Hobby Finder", Description: "Find your hobby", QuestionID: 10, QuestionText: "Outdoors?", OptionID: 101, OptionText: "No"},
		{QuizID: 1, Title: "Hobby Finder", Description: "Find your hobby", QuestionID: 11, QuestionText: "Team player?", OptionID: 110, OptionText: "Always"},
		{QuizID: 1, Title: "Hobby Finder", Description: "Find your hobby", QuestionID: 11, QuestionText: "Team player?", OptionID: 111, OptionText: "Never"},
	}}
	svc := NewQuizService(repo)

	tree, err := svc.GetQuizTree(1)
	require.NoError(t, err)

	assert.Equal(t, uint(1), tree.QuizID)
	assert.Equal(t, "Hobby Finder", tree.Title)
	assert.Equal(t, "Find your hobby", tree.Description)

	// One node per distinct question id, in first-seen order.
	require.Len(t, tree.Questions, 2)
	assert.Equal(t, uint(10), tree.Questions[0].QuestionID)
	assert.Equal(t, uint(11), tree.Questions[1].QuestionID)

	// Options keep input order.
	require.Len(t, tree.Questions[0].Options, 2)
	assert.Equal(t, uint(100), tree.Questions[0].Options[0].OptionID)
	assert.Equal(t, "Yes", tree.Questions[0].Options[0].OptionText)
	assert.Equal(t, uint(101), tree.Questions[0].Options[1].OptionID)

	require.Len(t, tree.Questions[1].Options, 2)
	assert.Equal(t, "Always", tree.Questions[1].Options[0].OptionText)
}

func TestGetQuizTree_QuestionOrderFollowsFirstAppearance(t *testing.T) {
	// The query orders rows; the aggregator must not re-sort them.
	repo := &fakeQuizRepo{rows: []model.QuizTreeRow{
		{QuizID: 2, Title: "T", QuestionID: 30, QuestionText: "C", OptionID: 300, OptionText: "x"},
		{QuizID: 2, Title: "T", QuestionID: 12, QuestionText: "A", OptionID: 120, OptionText: "y"},
		{QuizID: 2, Title: "T", QuestionID: 12, QuestionText: "A", OptionID: 121, OptionText: "z"},
	}}
	svc := NewQuizService(repo)

	tree, err := svc.GetQuizTree(2)
	require.NoError(t, err)
	require.Len(t, tree.Questions, 2)
	assert.Equal(t, uint(30), tree.Questions[0].QuestionID)
	assert.Equal(t, uint(12), tree.Questions[1].QuestionID)
	assert.Len(t, tree.Questions[1].Options, 2)
}

func TestGetQuizTree_EmptyRowsIsNotFound(t *testing.T) {
	svc := NewQuizService(&fakeQuizRepo{})

	_, err := svc.GetQuizTree(42)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestGetQuizTree_RepoErrorSurfaces(t *testing.T) {
	svc := NewQuizService(&fakeQuizRepo{rowsErr: errors.New("connection reset")})

	_, err := svc.GetQuizTree(1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrQuizNotFound)
}
