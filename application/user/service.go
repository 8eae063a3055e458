package user

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hagio-gakuto/user-directory/domain/user"
)

// ApplicationService orchestrates the user use cases. It owns no state
// beyond its repository and the configured page size; every request
// builds fresh entities and filters.
type ApplicationService struct {
	userRepo        user.Repository
	defaultPageSize int
	maxPageSize     int
}

// NewApplicationService creates the user application service. The page
// size bounds come from configuration; zero or negative values fall
// back to the domain defaults.
func NewApplicationService(userRepo user.Repository, defaultPageSize, maxPageSize int) *ApplicationService {
	if defaultPageSize <= 0 {
		defaultPageSize = user.DefaultPageSize
	}
	if maxPageSize <= 0 {
		maxPageSize = user.MaxPageSize
	}
	return &ApplicationService{
		userRepo:        userRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// CreateUserRequest Create user request DTO
type CreateUserRequest struct {
	Email     string  `json:"email" binding:"required"`
	Role      string  `json:"role" binding:"required"`
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Gender    *string `json:"gender"`
}

// UpdateUserRequest Update user request DTO. Full replace: every field
// is applied, a nil gender clears it.
type UpdateUserRequest struct {
	Email     string  `json:"email" binding:"required"`
	Role      string  `json:"role" binding:"required"`
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Gender    *string `json:"gender"`
}

// SearchUsersRequest Filtered listing request DTO. GenderSet
// distinguishes "only genderless users" (true with nil Gender) from an
// absent constraint.
type SearchUsersRequest struct {
	ID        string
	Search    string
	Role      string
	Gender    *string
	GenderSet bool
	Page      *int
	PageSize  *int
}

// ExportUsersRequest Export request DTO; pagination is deliberately
// absent so every matching row is returned.
type ExportUsersRequest struct {
	ID        string
	Search    string
	Role      string
	Gender    *string
	GenderSet bool
}

// UserResponse User response DTO
type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	FullName  string     `json:"full_name"`
	Gender    *string    `json:"gender"`
	CreatedAt time.Time  `json:"created_at"`
	CreatedBy string     `json:"created_by"`
	UpdatedAt time.Time  `json:"updated_at"`
	UpdatedBy string     `json:"updated_by"`
	DeletedAt *time.Time `json:"deleted_at"`
	DeletedBy *string    `json:"deleted_by"`
}

// UserListResponse Paginated listing response DTO
type UserListResponse struct {
	Users    []*UserResponse `json:"users"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

func parseGender(raw *string) (*user.Gender, error) {
	if raw == nil {
		return nil, nil
	}
	g, err := user.ParseGender(*raw)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateUser builds and persists a new user attributed to actorID.
func (s *ApplicationService) CreateUser(ctx context.Context, req CreateUserRequest, actorID string) (*UserResponse, error) {
	role, err := user.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	gender, err := parseGender(req.Gender)
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(req.Email, role, req.FirstName, req.LastName, gender, actorID)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	return convertToResponse(created), nil
}

// GetUser fetches one user; absent or soft-deleted is NotFound.
func (s *ApplicationService) GetUser(ctx context.Context, userID string) (*UserResponse, error) {
	u, err := s.requireActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	return convertToResponse(u), nil
}

// ListUsers returns the paginated default listing.
func (s *ApplicationService) ListUsers(ctx context.Context, page, pageSize *int) (*UserListResponse, error) {
	filter := &user.Filter{}
	s.normalizePagination(filter, page, pageSize)
	return s.list(ctx, filter)
}

// SearchUsers returns the filtered, paginated listing.
func (s *ApplicationService) SearchUsers(ctx context.Context, req SearchUsersRequest) (*UserListResponse, error) {
	filter, _, err := s.buildFilter(req.ID, req.Search, req.Role, req.Gender, req.GenderSet)
	if err != nil {
		return nil, err
	}
	s.normalizePagination(filter, req.Page, req.PageSize)
	return s.list(ctx, filter)
}

// ExportUsers returns every matching row. With no criteria at all the
// repository receives a nil filter, which must behave identically to an
// empty one.
func (s *ApplicationService) ExportUsers(ctx context.Context, req ExportUsersRequest) ([]*UserResponse, error) {
	filter, hasCriteria, err := s.buildFilter(req.ID, req.Search, req.Role, req.Gender, req.GenderSet)
	if err != nil {
		return nil, err
	}
	if !hasCriteria {
		filter = nil
	}

	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return convertAll(users), nil
}

// UpdateUser replaces every mutable field of an active user.
func (s *ApplicationService) UpdateUser(ctx context.Context, userID string, req UpdateUserRequest, actorID string) (*UserResponse, error) {
	role, err := user.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	gender, err := parseGender(req.Gender)
	if err != nil {
		return nil, err
	}

	u, err := s.requireActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := u.ChangeEmail(req.Email, actorID); err != nil {
		return nil, err
	}
	if err := u.ChangeName(req.FirstName, req.LastName, actorID); err != nil {
		return nil, err
	}
	u.ChangeRole(role, actorID)
	u.ChangeGender(gender, actorID)

	updated, err := s.userRepo.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	return convertToResponse(updated), nil
}

// DeleteUser soft-deletes an active user. The row persists.
func (s *ApplicationService) DeleteUser(ctx context.Context, userID, actorID string) error {
	u, err := s.requireActive(ctx, userID)
	if err != nil {
		return err
	}

	u.Delete(actorID, time.Now())
	_, err = s.userRepo.Update(ctx, u)
	return err
}

// requireActive treats both absence and soft deletion as NotFound.
func (s *ApplicationService) requireActive(ctx context.Context, userID string) (*user.User, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.IsDeleted() {
		return nil, user.NewUserNotFoundError(userID)
	}
	return u, nil
}

func (s *ApplicationService) buildFilter(idList, search, role string, gender *string, genderSet bool) (*user.Filter, bool, error) {
	filter := &user.Filter{
		ID:     idList,
		Search: search,
	}
	hasCriteria := idList != "" || search != ""

	if role != "" {
		parsed, err := user.ParseRole(role)
		if err != nil {
			return nil, false, err
		}
		filter.Role = &parsed
		hasCriteria = true
	}
	if genderSet {
		parsed, err := parseGender(gender)
		if err != nil {
			return nil, false, err
		}
		filter.Gender = parsed
		filter.GenderSet = true
		hasCriteria = true
	}
	return filter, hasCriteria, nil
}

func (s *ApplicationService) normalizePagination(filter *user.Filter, page, pageSize *int) {
	p := user.DefaultPage
	if page != nil && *page > 0 {
		p = *page
	}
	size := s.defaultPageSize
	if pageSize != nil && *pageSize > 0 {
		size = *pageSize
	}
	if size > s.maxPageSize {
		size = s.maxPageSize
	}
	filter.Page = &p
	filter.PageSize = &size
}

// list runs the paginated find and the total count concurrently; both
// reads share one filter so the offset never disagrees with the total.
func (s *ApplicationService) list(ctx context.Context, filter *user.Filter) (*UserListResponse, error) {
	var (
		users []*user.User
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.userRepo.FindAll(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.userRepo.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &UserListResponse{
		Users:    convertAll(users),
		Total:    total,
		Page:     *filter.Page,
		PageSize: *filter.PageSize,
	}, nil
}

func convertAll(users []*user.User) []*UserResponse {
	responses := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, convertToResponse(u))
	}
	return responses
}

// convertToResponse flattens an entity into its response DTO.
func convertToResponse(u *user.User) *UserResponse {
	p := u.Primitives()
	var gender *string
	if p.Gender != nil {
		g := string(*p.Gender)
		gender = &g
	}
	return &UserResponse{
		ID:        p.ID,
		Email:     p.Email,
		Role:      string(p.Role),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		FullName:  p.FullName,
		Gender:    gender,
		CreatedAt: p.CreatedAt,
		CreatedBy: p.CreatedBy,
		UpdatedAt: p.UpdatedAt,
		UpdatedBy: p.UpdatedBy,
		DeletedAt: p.DeletedAt,
		DeletedBy: p.DeletedBy,
	}
}
