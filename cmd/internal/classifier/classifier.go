// Package classifier derives flow direction, material and eligibility
// verdicts from extracted fiscal records.
package classifier

import (
	"strings"

	"nfeparser/cmd/internal/domain/entity"
	"nfeparser/cmd/internal/domain/rules"
	"nfeparser/cmd/internal/extractor"

	"github.com/shopspring/decimal"
)

// Classify runs the three rule sets in order. Flow and material feed
// into eligibility, so a QuantityError still comes back with both set.
func Classify(rec entity.ExtractedRecord) (entity.ClassifiedRecord, error) {
	out := entity.ClassifiedRecord{ExtractedRecord: rec}
	out.Flow = ClassifyFlow(rec)
	out.Material = ClassifyMaterial(rec)

	elig, err := ClassifyEligibility(&out)
	if err != nil {
		return out, err
	}
	out.Eligibility = elig
	return out, nil
}

// ClassifyFlow treats every document issued by an own entity as outgoing.
func ClassifyFlow(rec entity.ExtractedRecord) *entity.FlowDirection {
	if rec.IssuerCNPJ == "" {
		return nil
	}

	flow := entity.FlowInbound
	if rules.IsOwnEntity(rec.IssuerCNPJ) {
		flow = entity.FlowOutbound
	}
	return &flow
}

// ClassifyMaterial searches the product description first and only falls
// back to the recipient name when the description matches nothing.
func ClassifyMaterial(rec entity.ExtractedRecord) *entity.Material {
	table := rules.MaterialRules()
	for _, text := range []string{rec.ProductDescription, rec.RecipientName} {
		for _, rule := range table {
			if containsAny(text, rule.Keywords) {
				m := rule.Material
				return &m
			}
		}
	}
	return nil
}

// ClassifyEligibility expects r.Flow and r.Material to be filled in.
//
// "sim" needs every positive condition, "nao" needs any negative one.
// A document blocked only by its issue year gets no verdict at all.
func ClassifyEligibility(r *entity.ClassifiedRecord) (*entity.Eligibility, error) {
	if !r.Kind.Known() {
		return nil, nil
	}

	material := entity.Material(r.MaterialString())
	flow := entity.FlowDirection(r.FlowString())
	massUnit := containsAny(r.UnitOfMeasure, rules.MassUnitKeywords())
	qty := lazyQuantity{raw: r.Quantity}

	// Conditions are evaluated left to right and stop early, so the quantity
	// is only parsed when the outcome depends on it.
	if rules.IsEligibleMaterial(material) && flow == entity.FlowOutbound && massUnit && r.Quantity != "" {
		positive, err := qty.positive()
		if err != nil {
			return nil, err
		}
		if positive && rules.IsAllowedIssuer(r.IssuerCNPJ) && rules.IsEligibleYear(issueYear(r.IssuedAt)) {
			return verdict(entity.Eligible), nil
		}
	}

	if (material != "" && !rules.IsEligibleMaterial(material)) ||
		flow == entity.FlowInbound ||
		!massUnit ||
		r.Quantity == "" {
		return verdict(entity.NotEligible), nil
	}

	positive, err := qty.positive()
	if err != nil {
		return nil, err
	}
	if !positive || !rules.IsAllowedIssuer(r.IssuerCNPJ) {
		return verdict(entity.NotEligible), nil
	}
	return nil, nil
}

// ParseQuantity reads a comma-separated quantity back into a number.
func ParseQuantity(q string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(extractor.DenormalizeQuantity(q))
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &QuantityError{Value: q, Err: err}
	}
	return d, nil
}

type lazyQuantity struct {
	raw    string
	parsed bool
	value  decimal.Decimal
	err    error
}

func (q *lazyQuantity) positive() (bool, error) {
	if !q.parsed {
		q.value, q.err = ParseQuantity(q.raw)
		q.parsed = true
	}
	if q.err != nil {
		return false, q.err
	}
	return q.value.IsPositive(), nil
}

func issueYear(issuedAt string) string {
	if len(issuedAt) > 4 {
		return issuedAt[:4]
	}
	return issuedAt
}

func containsAny(s string, keywords []string) bool {
	s = strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func verdict(e entity.Eligibility) *entity.Eligibility {
	return &e
}
