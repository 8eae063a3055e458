package searchcondition

import (
	"context"
	"time"

	"github.com/hagio-gakuto/user-directory/domain/searchcondition"
)

// ApplicationService orchestrates the saved-search-condition use cases.
type ApplicationService struct {
	conditionRepo searchcondition.Repository
}

// NewApplicationService creates the search-condition application service.
func NewApplicationService(conditionRepo searchcondition.Repository) *ApplicationService {
	return &ApplicationService{conditionRepo: conditionRepo}
}

// CreateSearchConditionRequest Create request DTO. URLParams is opaque;
// the console serializes whatever filter state it wants restored.
type CreateSearchConditionRequest struct {
	FormType  string `json:"form_type" binding:"required"`
	Name      string `json:"name" binding:"required"`
	URLParams string `json:"url_params"`
}

// RenameSearchConditionRequest Update request DTO; renaming is the only
// update the console offers.
type RenameSearchConditionRequest struct {
	Name string `json:"name" binding:"required"`
}

// SearchConditionResponse Search condition response DTO
type SearchConditionResponse struct {
	ID        string     `json:"id"`
	FormType  string     `json:"form_type"`
	Name      string     `json:"name"`
	URLParams string     `json:"url_params"`
	CreatedAt time.Time  `json:"created_at"`
	CreatedBy string     `json:"created_by"`
	UpdatedAt time.Time  `json:"updated_at"`
	UpdatedBy string     `json:"updated_by"`
	DeletedAt *time.Time `json:"deleted_at"`
	DeletedBy *string    `json:"deleted_by"`
}

// ListSearchConditions returns active conditions, optionally narrowed
// to one admin form. Never paginated.
func (s *ApplicationService) ListSearchConditions(ctx context.Context, formType string) ([]*SearchConditionResponse, error) {
	conditions, err := s.conditionRepo.FindAll(ctx, &searchcondition.Filter{FormType: formType})
	if err != nil {
		return nil, err
	}

	responses := make([]*SearchConditionResponse, 0, len(conditions))
	for _, c := range conditions {
		responses = append(responses, convertToResponse(c))
	}
	return responses, nil
}

// CreateSearchCondition persists a new condition attributed to actorID.
func (s *ApplicationService) CreateSearchCondition(ctx context.Context, req CreateSearchConditionRequest, actorID string) (*SearchConditionResponse, error) {
	c, err := searchcondition.New(req.FormType, req.Name, req.URLParams, actorID)
	if err != nil {
		return nil, err
	}

	created, err := s.conditionRepo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	return convertToResponse(created), nil
}

// RenameSearchCondition renames an active condition.
func (s *ApplicationService) RenameSearchCondition(ctx context.Context, conditionID string, req RenameSearchConditionRequest, actorID string) (*SearchConditionResponse, error) {
	c, err := s.requireActive(ctx, conditionID)
	if err != nil {
		return nil, err
	}

	if err := c.ChangeName(req.Name, actorID); err != nil {
		return nil, err
	}

	updated, err := s.conditionRepo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	return convertToResponse(updated), nil
}

// DeleteSearchCondition soft-deletes an active condition.
func (s *ApplicationService) DeleteSearchCondition(ctx context.Context, conditionID, actorID string) error {
	if _, err := s.requireActive(ctx, conditionID); err != nil {
		return err
	}
	return s.conditionRepo.Delete(ctx, conditionID, actorID, time.Now())
}

func (s *ApplicationService) requireActive(ctx context.Context, conditionID string) (*searchcondition.SearchCondition, error) {
	c, err := s.conditionRepo.FindByID(ctx, conditionID)
	if err != nil {
		return nil, err
	}
	if c == nil || c.IsDeleted() {
		return nil, searchcondition.NewNotFoundError(conditionID)
	}
	return c, nil
}

func convertToResponse(c *searchcondition.SearchCondition) *SearchConditionResponse {
	p := c.Primitives()
	return &SearchConditionResponse{
		ID:        p.ID,
		FormType:  p.FormType,
		Name:      p.Name,
		URLParams: p.URLParams,
		CreatedAt: p.CreatedAt,
		CreatedBy: p.CreatedBy,
		UpdatedAt: p.UpdatedAt,
		UpdatedBy: p.UpdatedBy,
		DeletedAt: p.DeletedAt,
		DeletedBy: p.DeletedBy,
	}
}
