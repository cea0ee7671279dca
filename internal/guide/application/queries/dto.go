// Package queries contains the read side of the guide. Handlers return flat
// DTOs so the presentation layer never reaches into domain types.
package queries

import (
	"time"

	"github.com/felixgeelhaar/resto/internal/guide/domain/city"
	"github.com/felixgeelhaar/resto/internal/guide/domain/criterion"
	"github.com/felixgeelhaar/resto/internal/guide/domain/gastrotype"
	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
)

// CityDTO is the read model of a city.
type CityDTO struct {
	ID      int64  `json:"id"`
	ZipCode string `json:"zip_code"`
	Name    string `json:"name"`
}

// RestaurantTypeDTO is the read model of a restaurant type.
type RestaurantTypeDTO struct {
	ID          int64  `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// CriterionDTO is the read model of an evaluation criterion.
type CriterionDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// GradeDTO is the read model of a grade.
type GradeDTO struct {
	ID        int64        `json:"id"`
	Value     int          `json:"value"`
	Criterion CriterionDTO `json:"criterion"`
}

// BasicEvaluationDTO is the read model of a like or dislike.
type BasicEvaluationDTO struct {
	ID        int64     `json:"id"`
	VisitDate time.Time `json:"visit_date"`
	Liked     bool      `json:"liked"`
	IPAddress string    `json:"ip_address"`
}

// CompleteEvaluationDTO is the read model of a commentary.
type CompleteEvaluationDTO struct {
	ID        int64      `json:"id"`
	VisitDate time.Time  `json:"visit_date"`
	Comment   string     `json:"comment"`
	Username  string     `json:"username"`
	Grades    []GradeDTO `json:"grades"`
}

// RestaurantDTO is the fully resolved read model of a restaurant. The
// evaluation counts are derived from the two collections, never stored.
type RestaurantDTO struct {
	ID                  int64                   `json:"id"`
	Version             int64                   `json:"version"`
	Name                string                  `json:"name"`
	Description         string                  `json:"description,omitempty"`
	Website             string                  `json:"website,omitempty"`
	Street              string                  `json:"street"`
	City                CityDTO                 `json:"city"`
	Type                RestaurantTypeDTO       `json:"type"`
	BasicEvaluations    []BasicEvaluationDTO    `json:"basic_evaluations"`
	CompleteEvaluations []CompleteEvaluationDTO `json:"complete_evaluations"`
	EvaluationCount     int                     `json:"evaluation_count"`
	LikeCount           int                     `json:"like_count"`
	DislikeCount        int                     `json:"dislike_count"`
}

func toCityDTO(c *city.City) CityDTO {
	return CityDTO{ID: c.ID(), ZipCode: c.ZipCode(), Name: c.Name()}
}

func toTypeDTO(t *gastrotype.RestaurantType) RestaurantTypeDTO {
	return RestaurantTypeDTO{ID: t.ID(), Label: t.Label(), Description: t.Description()}
}

func toCriterionDTO(c *criterion.Criterion) CriterionDTO {
	return CriterionDTO{ID: c.ID(), Name: c.Name(), Description: c.Description()}
}

func toRestaurantDTO(r *restaurant.Restaurant) RestaurantDTO {
	dto := RestaurantDTO{
		ID:                  r.ID(),
		Version:             r.Version(),
		Name:                r.Name(),
		Description:         r.Description(),
		Website:             r.Website(),
		Street:              r.Street(),
		City:                toCityDTO(r.City()),
		Type:                toTypeDTO(r.Type()),
		BasicEvaluations:    make([]BasicEvaluationDTO, 0, len(r.BasicEvaluations())),
		CompleteEvaluations: make([]CompleteEvaluationDTO, 0, len(r.CompleteEvaluations())),
		EvaluationCount:     r.Evaluations().Len(),
	}

	for _, b := range r.BasicEvaluations() {
		dto.BasicEvaluations = append(dto.BasicEvaluations, BasicEvaluationDTO{
			ID:        b.ID(),
			VisitDate: b.VisitDate(),
			Liked:     b.Liked(),
			IPAddress: b.IPAddress(),
		})
		if b.Liked() {
			dto.LikeCount++
		} else {
			dto.DislikeCount++
		}
	}

	for _, c := range r.CompleteEvaluations() {
		grades := make([]GradeDTO, 0, len(c.Grades()))
		for _, g := range c.Grades() {
			grades = append(grades, GradeDTO{
				ID:        g.ID(),
				Value:     g.Value(),
				Criterion: toCriterionDTO(g.Criterion()),
			})
		}
		dto.CompleteEvaluations = append(dto.CompleteEvaluations, CompleteEvaluationDTO{
			ID:        c.ID(),
			VisitDate: c.VisitDate(),
			Comment:   c.Comment(),
			Username:  c.Username(),
			Grades:    grades,
		})
	}

	return dto
}

func toRestaurantDTOs(restaurants []*restaurant.Restaurant) []RestaurantDTO {
	dtos := make([]RestaurantDTO, 0, len(restaurants))
	for _, r := range restaurants {
		dtos = append(dtos, toRestaurantDTO(r))
	}
	return dtos
}
