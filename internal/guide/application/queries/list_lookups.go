package queries

import (
	"context"

	"github.com/felixgeelhaar/resto/internal/guide/domain/city"
	"github.com/felixgeelhaar/resto/internal/guide/domain/criterion"
	"github.com/felixgeelhaar/resto/internal/guide/domain/gastrotype"
)

// ListCitiesHandler lists all cities ordered by name.
type ListCitiesHandler struct {
	cityRepo city.Repository
}

// NewListCitiesHandler creates a new ListCitiesHandler.
func NewListCitiesHandler(cityRepo city.Repository) *ListCitiesHandler {
	return &ListCitiesHandler{cityRepo: cityRepo}
}

// Execute returns all cities.
func (h *ListCitiesHandler) Execute(ctx context.Context) ([]CityDTO, error) {
	cities, err := h.cityRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]CityDTO, 0, len(cities))
	for _, c := range cities {
		dtos = append(dtos, toCityDTO(c))
	}
	return dtos, nil
}

// ListTypesHandler lists all restaurant types ordered by label.
type ListTypesHandler struct {
	typeRepo gastrotype.Repository
}

// NewListTypesHandler creates a new ListTypesHandler.
func NewListTypesHandler(typeRepo gastrotype.Repository) *ListTypesHandler {
	return &ListTypesHandler{typeRepo: typeRepo}
}

// Execute returns all restaurant types.
func (h *ListTypesHandler) Execute(ctx context.Context) ([]RestaurantTypeDTO, error) {
	types, err := h.typeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]RestaurantTypeDTO, 0, len(types))
	for _, t := range types {
		dtos = append(dtos, toTypeDTO(t))
	}
	return dtos, nil
}

// ListCriteriaHandler lists all evaluation criteria ordered by name.
type ListCriteriaHandler struct {
	criterionRepo criterion.Repository
}

// NewListCriteriaHandler creates a new ListCriteriaHandler.
func NewListCriteriaHandler(criterionRepo criterion.Repository) *ListCriteriaHandler {
	return &ListCriteriaHandler{criterionRepo: criterionRepo}
}

// Execute returns all criteria.
func (h *ListCriteriaHandler) Execute(ctx context.Context) ([]CriterionDTO, error) {
	criteria, err := h.criterionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]CriterionDTO, 0, len(criteria))
	for _, c := range criteria {
		dtos = append(dtos, toCriterionDTO(c))
	}
	return dtos, nil
}
