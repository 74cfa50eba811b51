package entity

type DocumentKind string

const (
	KindNFe DocumentKind = "NFe"
	KindCFe DocumentKind = "CFe"

	// KindUnknown is written as-is to the report's "tipo" column.
	KindUnknown DocumentKind = "desconhecido"
)

// Known reports whether the kind is one of the recognized fiscal schemas.
func (k DocumentKind) Known() bool {
	return k == KindNFe || k == KindCFe
}

// ExtractedRecord is the flat view of a single fiscal document.
//
// Missing elements are stored as "", never as a separate absent marker,
// and an Unknown record carries "" in every field except Source.
type ExtractedRecord struct {
	Kind               DocumentKind `json:"kind"`
	IssuerCNPJ         string       `json:"issuer_cnpj"`
	IssuerName         string       `json:"issuer_name"`
	RecipientCNPJ      string       `json:"recipient_cnpj"`
	RecipientName      string       `json:"recipient_name"`
	ProductDescription string       `json:"product_description"`
	UnitOfMeasure      string       `json:"unit_of_measure"`
	Quantity           string       `json:"quantity"` // comma as decimal separator
	IssuedAt           string       `json:"issued_at"`
	Source             string       `json:"source"`
}

// UnknownRecord builds the sentinel record for documents that match no schema.
func UnknownRecord(source string) ExtractedRecord {
	return ExtractedRecord{Kind: KindUnknown, Source: source}
}
