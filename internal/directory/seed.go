package directory

import "time"

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse(time.DateOnly, s)
		if err != nil {
			panic(err)
		}
	}
	return t
}

var seedOrganizations = []Organization{
	{ID: "org-1", Name: "TechCorp Solutions", Slug: "techcorp", Status: OrgActive, Tier: TierProfessional, EmployeeLimit: 100, CreatedAt: date("2025-11-15T10:00:00Z")},
	{ID: "org-2", Name: "Innovate Labs", Slug: "innovate", Status: OrgActive, Tier: TierBasic, EmployeeLimit: 50, CreatedAt: date("2025-12-01T14:30:00Z")},
	{ID: "org-3", Name: "Global Finance Inc", Slug: "globalfinance", Status: OrgTrial, Tier: TierEnterprise, EmployeeLimit: 250, CreatedAt: date("2026-01-10T09:15:00Z")},
}

var seedEmployees = []Employee{
	{ID: "emp-1", OrganizationID: "org-1", Email: "jane.doe@techcorp.com", FirstName: "Jane", LastName: "Doe", Role: RoleEmployee, Active: true, Department: "Engineering", JobTitle: "Senior Software Engineer", HireDate: date("2024-06-15")},
	{ID: "emp-2", OrganizationID: "org-1", Email: "bob.wilson@techcorp.com", FirstName: "Bob", LastName: "Wilson", Role: RoleEmployee, Active: true, Department: "Marketing", JobTitle: "Marketing Manager", HireDate: date("2023-03-20")},
	{ID: "emp-3", OrganizationID: "org-1", Email: "sarah.lee@techcorp.com", FirstName: "Sarah", LastName: "Lee", Role: RoleEmployee, Active: true, Department: "Sales", JobTitle: "Sales Representative", HireDate: date("2025-01-10")},
	{ID: "emp-4", OrganizationID: "org-1", Email: "new.employee@techcorp.com", FirstName: "Alex", LastName: "Johnson", Role: RoleEmployee, Active: true, Department: "Operations", JobTitle: "Operations Coordinator", HireDate: date("2026-02-01")},
	{ID: "hr-1", OrganizationID: "org-1", Email: "hr@techcorp.com", FirstName: "John", LastName: "Smith", Role: RoleHRAdmin, Active: true, Department: "People", JobTitle: "HR Manager", HireDate: date("2022-09-01")},
	{ID: "hr-2", OrganizationID: "org-2", Email: "hr@innovate.com", FirstName: "Lisa", LastName: "Johnson", Role: RoleHRAdmin, Active: true, Department: "People", JobTitle: "HR Lead", HireDate: date("2023-01-16")},
}
