package rules

import (
	"testing"

	"nfeparser/cmd/internal/domain/entity"
	"nfeparser/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	validate := validator.New()
	validators.Register(validate)

	require.NoError(t, Validate(validate))
}

func TestAllowListIsNarrowerThanOwnEntities(t *testing.T) {
	assert.True(t, IsOwnEntity("68108232000100"))
	assert.False(t, IsAllowedIssuer("68108232000100"))

	for _, id := range []string{"22659620000170", "27051773000234"} {
		assert.True(t, IsOwnEntity(id))
		assert.True(t, IsAllowedIssuer(id))
	}
}

func TestMaterialRulesOrder(t *testing.T) {
	var order []entity.Material
	for _, r := range MaterialRules() {
		order = append(order, r.Material)
	}

	assert.Equal(t, []entity.Material{
		entity.MaterialPlastic,
		entity.MaterialGlass,
		entity.MaterialPaper,
		entity.MaterialMetal,
		entity.MaterialRubber,
		entity.MaterialWood,
	}, order)
}

func TestAccessorsReturnCopies(t *testing.T) {
	table := MaterialRules()
	table[0].Keywords[0] = "changed"
	table[0].Material = entity.MaterialWood

	units := MassUnitKeywords()
	units[0] = "changed"

	assert.Equal(t, "plast", MaterialRules()[0].Keywords[0])
	assert.Equal(t, entity.MaterialPlastic, MaterialRules()[0].Material)
	assert.Equal(t, []string{"kg", "ton"}, MassUnitKeywords())
}

func TestEligibleTables(t *testing.T) {
	assert.True(t, IsEligibleMaterial(entity.MaterialPaper))
	assert.False(t, IsEligibleMaterial(entity.MaterialRubber))
	assert.False(t, IsEligibleMaterial(""))

	assert.True(t, IsEligibleYear("2022"))
	assert.False(t, IsEligibleYear("2019"))
	assert.False(t, IsEligibleYear(""))
}
