package preregistration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/hr-admin-backend/internal/domain/preregistration"
	"github.com/peopledesk/hr-admin-backend/internal/domain/user"
)

type fakePreRegRepo struct {
	entries []preregistration.PreRegisteredEmployee
}

func (f *fakePreRegRepo) Create(ctx context.Context, entry preregistration.PreRegisteredEmployee) (preregistration.PreRegisteredEmployee, error) {
	entry.ID = uuid.NewString()
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakePreRegRepo) GetByID(ctx context.Context, id string) (preregistration.PreRegisteredEmployee, error) {
	for _, entry := range f.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return preregistration.PreRegisteredEmployee{}, preregistration.ErrNotFound
}

func (f *fakePreRegRepo) List(ctx context.Context) ([]preregistration.PreRegisteredEmployee, error) {
	return f.entries, nil
}

func (f *fakePreRegRepo) ExistsByEmployeeCode(ctx context.Context, code string) (bool, error) {
	for _, entry := range f.entries {
		if entry.EmployeeCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePreRegRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, entry := range f.entries {
		if entry.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePreRegRepo) Delete(ctx context.Context, id string) error {
	for i, entry := range f.entries {
		if entry.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return preregistration.ErrNotFound
}

type fakeUserRepo struct {
	emails map[string]bool
	codes  map[string]bool
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmployeeCode(ctx context.Context, code string) (bool, error) {
	return f.codes[code], nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.emails[email], nil
}

func (f *fakeUserRepo) UpdateActive(ctx context.Context, id string, active bool) error { return nil }

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id string, role user.Role) error { return nil }

func validAdd() preregistration.AddRequest {
	return preregistration.AddRequest{
		ActorID:      "admin-1",
		EmployeeCode: "EMP-001",
		Email:        "jane@example.com",
		FirstName:    "Jane",
		LastName:     "Doe",
	}
}

func TestAdd_Success(t *testing.T) {
	repo := &fakePreRegRepo{}
	svc := NewPreRegistrationService(repo, &fakeUserRepo{emails: map[string]bool{}, codes: map[string]bool{}})

	result, err := svc.Add(context.Background(), validAdd())
	require.NoError(t, err)
	assert.Equal(t, "EMP-001", result.EmployeeCode)
	assert.Equal(t, "admin-1", result.AddedBy)
	assert.False(t, result.IsRegistered)
	assert.Len(t, repo.entries, 1)
}

func TestAdd_DuplicateOnPreRegistrationList(t *testing.T) {
	repo := &fakePreRegRepo{}
	svc := NewPreRegistrationService(repo, &fakeUserRepo{emails: map[string]bool{}, codes: map[string]bool{}})

	_, err := svc.Add(context.Background(), validAdd())
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), validAdd())
	assert.ErrorIs(t, err, preregistration.ErrEmployeeCodePreRegistered)

	req := validAdd()
	req.EmployeeCode = "EMP-002"
	_, err = svc.Add(context.Background(), req)
	assert.ErrorIs(t, err, preregistration.ErrEmailPreRegistered)
}

func TestAdd_CollidesWithRegisteredAccount(t *testing.T) {
	svc := NewPreRegistrationService(&fakePreRegRepo{}, &fakeUserRepo{
		emails: map[string]bool{},
		codes:  map[string]bool{"EMP-001": true},
	})

	_, err := svc.Add(context.Background(), validAdd())
	assert.ErrorIs(t, err, preregistration.ErrEmployeeCodeRegistered)

	svc = NewPreRegistrationService(&fakePreRegRepo{}, &fakeUserRepo{
		emails: map[string]bool{"jane@example.com": true},
		codes:  map[string]bool{},
	})
	_, err = svc.Add(context.Background(), validAdd())
	assert.ErrorIs(t, err, preregistration.ErrEmailRegistered)
}

func TestDelete_RefusedOnceRegistered(t *testing.T) {
	repo := &fakePreRegRepo{}
	svc := NewPreRegistrationService(repo, &fakeUserRepo{emails: map[string]bool{}, codes: map[string]bool{}})

	result, err := svc.Add(context.Background(), validAdd())
	require.NoError(t, err)

	for i := range repo.entries {
		repo.entries[i].IsRegistered = true
	}

	err = svc.Delete(context.Background(), result.ID)
	assert.ErrorIs(t, err, preregistration.ErrAlreadyRegistered)
	assert.Len(t, repo.entries, 1)
}

func TestDelete_Unconsumed(t *testing.T) {
	repo := &fakePreRegRepo{}
	svc := NewPreRegistrationService(repo, &fakeUserRepo{emails: map[string]bool{}, codes: map[string]bool{}})

	result, err := svc.Add(context.Background(), validAdd())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), result.ID))
	assert.Empty(t, repo.entries)
}
