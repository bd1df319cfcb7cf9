package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"pengasuh_backend/internal/model"
	"pengasuh_backend/internal/util"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// HistoryEntry is one past attempt of either kind.
type HistoryEntry struct {
	Kind     string    `json:"kind"`
	ID       uint      `json:"id"`
	Level    string    `json:"level"`
	Score    int       `json:"score"`
	QuizSet  string    `json:"quizSet,omitempty"`
	Correct  int       `json:"correctAnswers,omitempty"`
	Total    int       `json:"totalQuestions,omitempty"`
	TestedAt time.Time `json:"testedAt"`
}

type HistoryService struct {
	Results ResultRepositoryI
	log     *zap.Logger
}

func NewHistoryService(results ResultRepositoryI, log *zap.Logger) *HistoryService {
	return &HistoryService{Results: results, log: log}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return util.DefaultHistoryLimit
	}
	if limit > util.MaxHistoryLimit {
		return util.MaxHistoryLimit
	}
	return limit
}

// List merges the user's stress and quiz results, newest first.
func (s *HistoryService) List(ctx context.Context, userID uint, limit int) ([]HistoryEntry, error) {
	limit = clampLimit(limit)

	stress, err := s.Results.ListStress(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stress results: %w", err)
	}
	quiz, err := s.Results.ListQuiz(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(stress)+len(quiz))
	for _, r := range stress {
		entries = append(entries, HistoryEntry{
			Kind:     KindStress,
			ID:       r.ID,
			Level:    r.Level,
			Score:    r.TotalScore,
			TestedAt: r.TestedAt,
		})
	}
	for _, r := range quiz {
		entries = append(entries, HistoryEntry{
			Kind:     KindQuiz,
			ID:       r.ID,
			Level:    r.Level,
			Score:    r.Percentage,
			QuizSet:  string(r.QuizSet),
			Correct:  r.CorrectAnswers,
			Total:    r.TotalQuestions,
			TestedAt: r.TestedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TestedAt.After(entries[j].TestedAt)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

type LatestResults struct {
	Stress *model.StressResult `json:"stress"`
	Quiz   *model.QuizResult   `json:"quiz"`
}

func (s *HistoryService) Latest(ctx context.Context, userID uint) (*LatestResults, error) {
	stress, err := s.Results.ListStress(ctx, userID, 1)
	if err != nil {
		return nil, err
	}
	quiz, err := s.Results.ListQuiz(ctx, userID, 1)
	if err != nil {
		return nil, err
	}

	latest := &LatestResults{}
	if len(stress) > 0 {
		latest.Stress = &stress[0]
	}
	if len(quiz) > 0 {
		latest.Quiz = &quiz[0]
	}
	return latest, nil
}

// ExportPDF writes the user's history as a PDF report.
func (s *HistoryService) ExportPDF(ctx context.Context, user *model.User, w io.Writer) error {
	entries, err := s.List(ctx, user.ID, util.MaxHistoryLimit)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Riwayat Aktivitas", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Riwayat Aktivitas Pengasuh", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Nama: %s", user.FullName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Email: %s", user.Email), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Tanggal", "Jenis", "Skor", "Tingkat"}
	widths := []float64{55, 40, 45, 40}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	if len(entries) == 0 {
		pdf.CellFormat(0, 8, "Belum ada riwayat.", "1", 1, "C", false, 0, "")
	}
	for _, e := range entries {
		score := fmt.Sprintf("%d", e.Score)
		kind := "Tes stres"
		if e.Kind == KindQuiz {
			score = fmt.Sprintf("%d/%d (%d%%)", e.Correct, e.Total, e.Score)
			kind = "Kuis " + e.QuizSet
		}
		row := []string{e.TestedAt.Format(util.TimeFormat), kind, score, e.Level}
		for i, c := range row {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render history pdf: %w", err)
	}
	s.log.Debug("history exported", zap.Uint("user_id", user.ID), zap.Int("entries", len(entries)))
	return nil
}
