// file: internals/features/assessments/questionnaires/service/catalog_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	qmodel "investku_backend/internals/features/assessments/questionnaires/model"
	emodel "investku_backend/internals/features/enterprises/model"
)

func intPtr(v int) *int { return &v }

func TestMatchesEnterprise_NoCriteriaMatchesAll(t *testing.T) {
	q := &qmodel.QuestionnaireModel{}
	e := &emodel.EnterpriseModel{EnterpriseSector: "retail", EnterpriseSize: "micro"}
	assert.True(t, MatchesEnterprise(q, e))
}

func TestMatchesEnterprise_Sector(t *testing.T) {
	q := &qmodel.QuestionnaireModel{QuestionnaireTargetSectors: []string{"retail", "manufacturing"}}

	assert.True(t, MatchesEnterprise(q, &emodel.EnterpriseModel{EnterpriseSector: "retail"}))
	assert.False(t, MatchesEnterprise(q, &emodel.EnterpriseModel{EnterpriseSector: "services"}))
}

func TestMatchesEnterprise_SizeAndDistrict(t *testing.T) {
	q := &qmodel.QuestionnaireModel{
		QuestionnaireTargetSizes:     []string{"micro", "small"},
		QuestionnaireTargetDistricts: []string{"Sleman"},
	}

	assert.True(t, MatchesEnterprise(q, &emodel.EnterpriseModel{
		EnterpriseSize: "micro", EnterpriseDistrict: "Sleman",
	}))
	assert.False(t, MatchesEnterprise(q, &emodel.EnterpriseModel{
		EnterpriseSize: "large", EnterpriseDistrict: "Sleman",
	}))
	assert.False(t, MatchesEnterprise(q, &emodel.EnterpriseModel{
		EnterpriseSize: "micro", EnterpriseDistrict: "Bantul",
	}))
}

func TestMatchesEnterprise_EmployeeRange(t *testing.T) {
	q := &qmodel.QuestionnaireModel{
		QuestionnaireMinEmployees: intPtr(5),
		QuestionnaireMaxEmployees: intPtr(50),
	}

	assert.True(t, MatchesEnterprise(q, &emodel.EnterpriseModel{EnterpriseEmployeeCount: 5}))
	assert.True(t, MatchesEnterprise(q, &emodel.EnterpriseModel{EnterpriseEmployeeCount: 50}))
	assert.False(t, MatchesEnterprise(q, &emodel.EnterpriseModel{EnterpriseEmployeeCount: 4}))
	assert.False(t, MatchesEnterprise(q, &emodel.EnterpriseModel{EnterpriseEmployeeCount: 51}))
}

func TestMatchesEnterprise_MinOnly(t *testing.T) {
	q := &qmodel.QuestionnaireModel{QuestionnaireMinEmployees: intPtr(10)}

	assert.True(t, MatchesEnterprise(q, &emodel.EnterpriseModel{EnterpriseEmployeeCount: 100}))
	assert.False(t, MatchesEnterprise(q, &emodel.EnterpriseModel{EnterpriseEmployeeCount: 9}))
}
