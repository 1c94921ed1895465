package directory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_Organizations(t *testing.T) {
	d := Seed()
	orgs := d.Organizations()
	require.Len(t, orgs, 3)
	assert.Equal(t, "org-1", orgs[0].ID)

	o, err := d.Organization("innovate")
	require.NoError(t, err)
	assert.Equal(t, "org-2", o.ID)

	_, err = d.Organization("org-9")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSeed_Employees(t *testing.T) {
	d := Seed()
	assert.Len(t, d.Employees("org-1"), 5)
	assert.Len(t, d.Employees("org-2"), 1)
	assert.Len(t, d.Employees("org-3"), 0)
	assert.Len(t, d.Employees(""), 6)

	e, err := d.Employee("JANE.DOE@techcorp.com")
	require.NoError(t, err)
	assert.Equal(t, "emp-1", e.ID)
	assert.Equal(t, "Jane Doe", e.Name())

	_, err = d.Employee("emp-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_IsolatedFromCaller(t *testing.T) {
	orgs := []Organization{{ID: "b"}, {ID: "a"}}
	d := NewMemory(orgs, nil)
	orgs[0].ID = "changed"

	got := d.Organizations()
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestDepartments(t *testing.T) {
	got := Departments(Seed().Employees("org-1"))
	assert.Equal(t, []string{"Engineering", "Marketing", "Operations", "People", "Sales"}, got)
}
