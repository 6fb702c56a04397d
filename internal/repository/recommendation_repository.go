package repository

import (
	"starthobby-backend/internal/db"
	"starthobby-backend/internal/model"
)

type RecommendationRepository interface {
	Save(rec *model.Recommendation) error
	GetByUser(userID uint) ([]model.Recommendation, error)
	GetByID(id uint) (*model.Recommendation, error)
}

type recommendationRepository struct{}

func NewRecommendationRepository() RecommendationRepository {
	return &recommendationRepository{}
}

// Save writes one new row per call. There is no upsert or dedup; two
// semantically identical saves produce two records.
func (r *recommendationRepository) Save(rec *model.Recommendation) error {
	return db.GetDB().Create(rec).Error
}

func (r *recommendationRepository) GetByUser(userID uint) ([]model.Recommendation, error) {
	var recs []model.Recommendation
	err := db.GetDB().Where("user_id = ?", userID).Order("created_at desc").Find(&recs).Error
	return recs, err
}

func (r *recommendationRepository) GetByID(id uint) (*model.Recommendation, error) {
	var rec model.Recommendation
	err := db.GetDB().Where("id = ?", id).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
