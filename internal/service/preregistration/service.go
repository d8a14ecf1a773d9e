package preregistration

import (
	"context"
	"time"

	"github.com/peopledesk/hr-admin-backend/internal/domain/preregistration"
	"github.com/peopledesk/hr-admin-backend/internal/domain/user"
)

type preRegistrationService struct {
	preRegRepo preregistration.Repository
	userRepo   user.UserRepository
}

// Add implements preregistration.Service. The entry is refused when the
// employee code or email is already on the list or already belongs to a
// registered account.
func (s *preRegistrationService) Add(ctx context.Context, req preregistration.AddRequest) (preregistration.PreRegisteredEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return preregistration.PreRegisteredEmployeeResponse{}, err
	}

	exists, err := s.preRegRepo.ExistsByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		return preregistration.PreRegisteredEmployeeResponse{}, err
	}
	if exists {
		return preregistration.PreRegisteredEmployeeResponse{}, preregistration.ErrEmployeeCodePreRegistered
	}

	exists, err = s.preRegRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return preregistration.PreRegisteredEmployeeResponse{}, err
	}
	if exists {
		return preregistration.PreRegisteredEmployeeResponse{}, preregistration.ErrEmailPreRegistered
	}

	exists, err = s.userRepo.ExistsByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		return preregistration.PreRegisteredEmployeeResponse{}, err
	}
	if exists {
		return preregistration.PreRegisteredEmployeeResponse{}, preregistration.ErrEmployeeCodeRegistered
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return preregistration.PreRegisteredEmployeeResponse{}, err
	}
	if exists {
		return preregistration.PreRegisteredEmployeeResponse{}, preregistration.ErrEmailRegistered
	}

	entry, err := s.preRegRepo.Create(ctx, preregistration.PreRegisteredEmployee{
		EmployeeCode: req.EmployeeCode,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Department:   req.Department,
		Designation:  req.Designation,
		AddedBy:      req.ActorID,
	})
	if err != nil {
		return preregistration.PreRegisteredEmployeeResponse{}, err
	}

	return toResponse(entry), nil
}

// List implements preregistration.Service.
func (s *preRegistrationService) List(ctx context.Context) ([]preregistration.PreRegisteredEmployeeResponse, error) {
	entries, err := s.preRegRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]preregistration.PreRegisteredEmployeeResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toResponse(entry))
	}
	return responses, nil
}

// Delete implements preregistration.Service. Consumed entries stay as an
// audit trail of who was invited.
func (s *preRegistrationService) Delete(ctx context.Context, id string) error {
	entry, err := s.preRegRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.IsRegistered {
		return preregistration.ErrAlreadyRegistered
	}
	return s.preRegRepo.Delete(ctx, id)
}

func toResponse(entry preregistration.PreRegisteredEmployee) preregistration.PreRegisteredEmployeeResponse {
	return preregistration.PreRegisteredEmployeeResponse{
		ID:           entry.ID,
		EmployeeCode: entry.EmployeeCode,
		Email:        entry.Email,
		FirstName:    entry.FirstName,
		LastName:     entry.LastName,
		Department:   entry.Department,
		Designation:  entry.Designation,
		AddedBy:      entry.AddedBy,
		IsRegistered: entry.IsRegistered,
		CreatedAt:    entry.CreatedAt.Format(time.RFC3339),
	}
}

func NewPreRegistrationService(
	preRegRepo preregistration.Repository,
	userRepo user.UserRepository,
) preregistration.Service {
	return &preRegistrationService{
		preRegRepo: preRegRepo,
		userRepo:   userRepo,
	}
}
