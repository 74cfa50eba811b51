// Package rules holds the fixed lookup tables used by the classifier.
//
// The tables are unexported and only reachable through read-only accessors,
// so the values audited here are the values the classifier runs with.
package rules

import (
	"fmt"
	"slices"

	"nfeparser/cmd/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// CNPJ 22659620000170 SUCATAS BERTASSO LTDA. ME.
// CNPJ 27051773000234 AMBIENTAL ABELARDI LTDA
// CNPJ 68108232000100 COMERCIO DE SUCATAS ABELARDI LTDA (own entity, never eligible)
var ownEntities = []string{
	"22659620000170",
	"27051773000234",
	"68108232000100",
}

var allowedIssuers = []string{
	"22659620000170",
	"27051773000234",
}

type MaterialRule struct {
	Material entity.Material
	Keywords []string
}

// Order matters: the first material with a matching keyword wins.
var materialRules = []MaterialRule{
	{Material: entity.MaterialPlastic, Keywords: []string{"plast", "pet"}},
	{Material: entity.MaterialGlass, Keywords: []string{"vidro"}},
	{Material: entity.MaterialPaper, Keywords: []string{"papel"}},
	{Material: entity.MaterialMetal, Keywords: []string{"metal", "alum", "inox", "ferro", "aco"}},
	{Material: entity.MaterialRubber, Keywords: []string{"borracha", "pneu"}},
	{Material: entity.MaterialWood, Keywords: []string{"madeira", "pallet"}},
}

var eligibleMaterials = []entity.Material{
	entity.MaterialPlastic,
	entity.MaterialGlass,
	entity.MaterialPaper,
	entity.MaterialMetal,
}

var massUnitKeywords = []string{"kg", "ton"}

var eligibleYears = []string{"2020", "2021", "2022"}

func IsOwnEntity(cnpj string) bool {
	return slices.Contains(ownEntities, cnpj)
}

func IsAllowedIssuer(cnpj string) bool {
	return slices.Contains(allowedIssuers, cnpj)
}

func IsEligibleMaterial(m entity.Material) bool {
	return slices.Contains(eligibleMaterials, m)
}

func IsEligibleYear(year string) bool {
	return slices.Contains(eligibleYears, year)
}

// MassUnitKeywords returns the lowercase keywords that mark a unit of mass.
func MassUnitKeywords() []string {
	return slices.Clone(massUnitKeywords)
}

// MaterialRules returns a copy of the ordered material keyword table.
func MaterialRules() []MaterialRule {
	out := make([]MaterialRule, len(materialRules))
	for i, r := range materialRules {
		out[i] = MaterialRule{Material: r.Material, Keywords: slices.Clone(r.Keywords)}
	}
	return out
}

type tables struct {
	OwnEntities    []string `validate:"required,dive,cnpj"`
	AllowedIssuers []string `validate:"required,dive,cnpj"`
	MassUnits      []string `validate:"required,dive,lowercase"`
}

// Validate checks the tax id tables against the RFB check digits. The
// validator must have the "cnpj" tag registered.
func Validate(validate *validator.Validate) error {
	t := tables{
		OwnEntities:    ownEntities,
		AllowedIssuers: allowedIssuers,
		MassUnits:      massUnitKeywords,
	}
	if err := validate.Struct(&t); err != nil {
		return err
	}

	// Allowed issuers must also be own entities, otherwise "sim" is unreachable.
	for _, id := range allowedIssuers {
		if !IsOwnEntity(id) {
			return fmt.Errorf("allowed issuer %s is not an own entity", id)
		}
	}
	return nil
}
