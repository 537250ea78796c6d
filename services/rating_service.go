package services

import (
	"log"
	"math"

	"github.com/google/uuid"
	"github.com/healthsync/api/models"
	"gorm.io/gorm"
)

// RecomputeDoctorRating recalculates a doctor's rating and review count from
// the current review rows. With no reviews both reset to zero. The doctor
// fields are never written anywhere else.
func RecomputeDoctorRating(db *gorm.DB, doctorID uuid.UUID) error {
	var stats struct {
		Avg   float64
		Total int64
	}
	err := db.Model(&models.Review{}).
		Where("doctor_id = ?", doctorID).
		Select("coalesce(avg(rating), 0) as avg, count(*) as total").
		Scan(&stats).Error
	if err != nil {
		return err
	}

	rating := 0.0
	if stats.Total > 0 {
		rating = RoundRating(stats.Avg)
	}

	return db.Model(&models.Doctor{}).
		Where("id = ?", doctorID).
		Updates(map[string]interface{}{
			"rating":       rating,
			"review_count": stats.Total,
		}).Error
}

// RefreshDoctorRating is the best-effort form used after review writes: the
// review operation must not fail because the aggregate could not be updated.
func RefreshDoctorRating(db *gorm.DB, doctorID uuid.UUID) {
	if err := RecomputeDoctorRating(db, doctorID); err != nil {
		log.Printf("🔥 Failed to recompute rating for doctor %s: %v", doctorID, err)
	}
}

func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
