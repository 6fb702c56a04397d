package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	"starthobby-backend/internal/model"
	"starthobby-backend/internal/repository"
)

type ReportService interface {
	GenerateReport(recommendationID uint) ([]byte, string, error)
}

type reportService struct {
	recRepo repository.RecommendationRepository
}

func NewReportService(recRepo repository.RecommendationRepository) ReportService {
	return &reportService{recRepo: recRepo}
}

// GenerateReport renders a stored recommendation as a downloadable PDF.
// Returns the document bytes and a suggested filename.
func (s *reportService) GenerateReport(recommendationID uint) ([]byte, string, error) {
	rec, err := s.recRepo.GetByID(recommendationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrRecommendationNotFound
		}
		return nil, "", fmt.Errorf("fetch recommendation: %w", err)
	}

	var strengths []string
	if err := json.Unmarshal([]byte(rec.Strengths), &strengths); err != nil {
		return nil, "", fmt.Errorf("decode strengths blob: %w", err)
	}
	var hobbies []model.HobbySuggestion
	if err := json.Unmarshal([]byte(rec.SuggestedHobbies), &hobbies); err != nil {
		return nil, "", fmt.Errorf("decode hobbies blob: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "StartHobby Recommendation")
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Personality: "+rec.PersonalityType)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, rec.PersonalitySummary, "", "L", false)
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Strengths")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	for _, strength := range strengths {
		pdf.Cell(0, 6, "- "+strength)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Suggested Hobbies")
	pdf.Ln(9)
	for _, hobby := range hobbies {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 6, hobby.Hobby)
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, hobby.Reason, "", "L", false)
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "I", 9)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Generated "+rec.GeneratedAt.Format("2006-01-02 15:04 MST"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render PDF: %w", err)
	}

	filename := fmt.Sprintf("recommendation_%d.pdf", rec.ID)
	return buf.Bytes(), filename, nil
}
