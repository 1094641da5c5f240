package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleEmployee() Employee {
	return Employee{
		Username:   "Grace Accino",
		EmployeeID: "EMP-0042",
		DeviceID:   "dev-7781",
		Telephone:  "+254700111222",
		JobTitle:   "Accountant",
		Department: "Finance",
		Branch:     "Nairobi HQ",
	}
}

func TestMatchesSearch(t *testing.T) {
	e := sampleEmployee()

	assert.True(t, e.MatchesSearch(""), "empty term matches everything")
	assert.True(t, e.MatchesSearch("grace"))
	assert.True(t, e.MatchesSearch("GRACE"), "case-insensitive")
	assert.True(t, e.MatchesSearch("emp-00"))
	assert.True(t, e.MatchesSearch("finance"))
	assert.True(t, e.MatchesSearch("nairobi"))
	assert.False(t, e.MatchesSearch("marketing"))
}

// One term can hit several fields at once; the record matches if any does.
func TestMatchesSearchAcrossFields(t *testing.T) {
	e := sampleEmployee()
	assert.True(t, e.MatchesSearch("acc"), "matches both username and job title")
}

func TestCreateRequestValidate(t *testing.T) {
	req := CreateEmployeeRequest{
		Username:   "Grace Accino",
		EmployeeID: "EMP-0042",
		DeviceID:   "dev-7781",
		Telephone:  "+254700111222",
		JobTitle:   "Accountant",
		Department: "Finance",
		Branch:     "Nairobi HQ",
	}
	assert.NoError(t, req.Validate())

	req.Telephone = ""
	assert.Error(t, req.Validate())
}

func TestUpdateRequestValidate(t *testing.T) {
	assert.NoError(t, (&UpdateEmployeeRequest{}).Validate(), "all fields optional")

	blank := ""
	req := UpdateEmployeeRequest{Username: &blank}
	assert.Error(t, req.Validate(), "provided fields must not be blank")
}
