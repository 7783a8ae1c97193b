package hr

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nexushr/nexushr/internal/kvstore"
	"github.com/nexushr/nexushr/internal/models"
)

// EmployeeInput carries the caller-supplied fields for a new employee.
type EmployeeInput struct {
	Name     string
	JobTitle string
	Email    string
}

// EmployeeUpdate is a partial update; nil fields are left unchanged.
type EmployeeUpdate struct {
	Name     *string
	JobTitle *string
	Email    *string
}

// EmployeeService is the CRUD repository for employees. Name and email
// uniqueness are not enforced here; input validation belongs to the
// presentation layer.
type EmployeeService struct {
	store kvstore.Store
	audit *AuditLog
}

// NewEmployeeService creates an employee repository.
func NewEmployeeService(store kvstore.Store, audit *AuditLog) *EmployeeService {
	return &EmployeeService{store: store, audit: audit}
}

// List returns all employees of an organization in insertion order.
func (s *EmployeeService) List(ctx context.Context, orgID string) ([]models.Employee, error) {
	employees, err := kvstore.Load[models.Employee](ctx, s.store, collectionEmployees)
	if err != nil {
		return nil, err
	}

	var result []models.Employee
	for _, e := range employees {
		if e.OrgID == orgID {
			result = append(result, e)
		}
	}

	return result, nil
}

// Create adds an employee to the actor's organization.
func (s *EmployeeService) Create(ctx context.Context, actor models.User, input EmployeeInput) (*models.Employee, error) {
	employees, err := kvstore.Load[models.Employee](ctx, s.store, collectionEmployees)
	if err != nil {
		return nil, err
	}

	employee := models.Employee{
		ID:        newID(),
		OrgID:     actor.OrgID,
		Name:      input.Name,
		JobTitle:  input.JobTitle,
		Email:     input.Email,
		CreatedAt: time.Now(),
	}
	employees = append(employees, employee)

	if err := kvstore.Save(ctx, s.store, collectionEmployees, employees); err != nil {
		return nil, err
	}

	if err := s.audit.Append(ctx, actor.OrgID, actor.ID, models.ActionCreateEmployee,
		fmt.Sprintf("Added employee: %s", input.Name)); err != nil {
		return nil, err
	}

	log.Debug().
		Str("org_id", actor.OrgID).
		Str("employee_id", employee.ID).
		Msg("employee created")

	return &employee, nil
}

// Update merges the non-nil fields of upd onto an existing employee.
// Returns ErrEmployeeNotFound for an unknown id. The id is looked up
// globally; callers are trusted to scope to their own organization.
func (s *EmployeeService) Update(ctx context.Context, actor models.User, id string, upd EmployeeUpdate) (*models.Employee, error) {
	employees, err := kvstore.Load[models.Employee](ctx, s.store, collectionEmployees)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range employees {
		if employees[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrEmployeeNotFound
	}

	if upd.Name != nil {
		employees[idx].Name = *upd.Name
	}
	if upd.JobTitle != nil {
		employees[idx].JobTitle = *upd.JobTitle
	}
	if upd.Email != nil {
		employees[idx].Email = *upd.Email
	}

	if err := kvstore.Save(ctx, s.store, collectionEmployees, employees); err != nil {
		return nil, err
	}

	if err := s.audit.Append(ctx, actor.OrgID, actor.ID, models.ActionUpdateEmployee,
		fmt.Sprintf("Updated employee: %s", employees[idx].Name)); err != nil {
		return nil, err
	}

	updated := employees[idx]
	return &updated, nil
}

// Delete removes an employee and cascades removal of every membership
// referencing it, in the same logical operation. Deleting an unknown id
// is a no-op, not an error; the audit entry then names the employee as
// "unknown".
func (s *EmployeeService) Delete(ctx context.Context, actor models.User, id string) error {
	employees, err := kvstore.Load[models.Employee](ctx, s.store, collectionEmployees)
	if err != nil {
		return err
	}

	name := "unknown"
	remaining := employees[:0:0]
	for _, e := range employees {
		if e.ID == id {
			name = e.Name
			continue
		}
		remaining = append(remaining, e)
	}

	if err := kvstore.Save(ctx, s.store, collectionEmployees, remaining); err != nil {
		return err
	}

	if err := removeMemberships(ctx, s.store, func(m models.Membership) bool {
		return m.EmployeeID == id
	}); err != nil {
		return err
	}

	if err := s.audit.Append(ctx, actor.OrgID, actor.ID, models.ActionDeleteEmployee,
		fmt.Sprintf("Deleted employee: %s", name)); err != nil {
		return err
	}

	log.Debug().
		Str("org_id", actor.OrgID).
		Str("employee_id", id).
		Msg("employee deleted")

	return nil
}

// removeMemberships drops every membership matching the predicate.
// Shared by the employee and team cascade deletes.
func removeMemberships(ctx context.Context, store kvstore.Store, match func(models.Membership) bool) error {
	memberships, err := kvstore.Load[models.Membership](ctx, store, collectionTeamMembers)
	if err != nil {
		return err
	}

	remaining := memberships[:0:0]
	for _, m := range memberships {
		if match(m) {
			continue
		}
		remaining = append(remaining, m)
	}

	return kvstore.Save(ctx, store, collectionTeamMembers, remaining)
}
