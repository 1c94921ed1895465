// Package directory exposes the organizations and employees that take the
// assessment. Callers receive a Directory rather than reaching for globals.
package directory

import (
	"errors"
	"slices"
	"sort"
	"strings"
	"time"
)

// ErrNotFound is returned when an organization or employee does not exist.
var ErrNotFound = errors.New("not found")

// OrgStatus is the lifecycle status of a tenant.
type OrgStatus string

const (
	OrgActive    OrgStatus = "active"
	OrgSuspended OrgStatus = "suspended"
	OrgTrial     OrgStatus = "trial"
)

// Tier is a subscription tier.
type Tier string

const (
	TierBasic        Tier = "basic"
	TierProfessional Tier = "professional"
	TierEnterprise   Tier = "enterprise"
)

// Role is an employee's role within their organization.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleHRAdmin  Role = "hr_admin"
)

// Organization is a tenant.
type Organization struct {
	ID            string
	Name          string
	Slug          string
	Status        OrgStatus
	Tier          Tier
	EmployeeLimit int
	CreatedAt     time.Time
}

// Employee is a person who can take the assessment.
type Employee struct {
	ID             string
	OrganizationID string
	Email          string
	FirstName      string
	LastName       string
	Role           Role
	Active         bool
	Department     string
	JobTitle       string
	HireDate       time.Time
}

// Name returns the employee's full name.
func (e Employee) Name() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Directory provides read access to organizations and employees.
type Directory interface {
	Organizations() []Organization
	Organization(id string) (Organization, error)
	Employees(orgID string) []Employee
	Employee(id string) (Employee, error)
}

// Memory is an in-memory Directory.
type Memory struct {
	orgs      []Organization
	employees []Employee
}

var _ Directory = (*Memory)(nil)

// NewMemory creates a Memory directory from the given records.
func NewMemory(orgs []Organization, employees []Employee) *Memory {
	m := &Memory{
		orgs:      slices.Clone(orgs),
		employees: slices.Clone(employees),
	}
	sort.Slice(m.orgs, func(i, j int) bool { return m.orgs[i].ID < m.orgs[j].ID })
	sort.Slice(m.employees, func(i, j int) bool { return m.employees[i].ID < m.employees[j].ID })
	return m
}

// Seed returns a directory populated with the demo tenants.
func Seed() *Memory {
	return NewMemory(seedOrganizations, seedEmployees)
}

func (m *Memory) Organizations() []Organization {
	return slices.Clone(m.orgs)
}

func (m *Memory) Organization(id string) (Organization, error) {
	for _, o := range m.orgs {
		if o.ID == id || o.Slug == id {
			return o, nil
		}
	}
	return Organization{}, ErrNotFound
}

// Employees returns the employees of orgID. An empty orgID returns everyone.
func (m *Memory) Employees(orgID string) []Employee {
	var out []Employee
	for _, e := range m.employees {
		if orgID == "" || e.OrganizationID == orgID {
			out = append(out, e)
		}
	}
	return out
}

func (m *Memory) Employee(id string) (Employee, error) {
	for _, e := range m.employees {
		if e.ID == id || strings.EqualFold(e.Email, id) {
			return e, nil
		}
	}
	return Employee{}, ErrNotFound
}

// Departments returns the distinct departments of the given employees,
// sorted.
func Departments(employees []Employee) []string {
	var out []string
	for _, e := range employees {
		if !slices.Contains(out, e.Department) {
			out = append(out, e.Department)
		}
	}
	sort.Strings(out)
	return out
}
