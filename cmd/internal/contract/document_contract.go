package contract

const MaxDocumentSizeBytes = 5 * 1024 * 1024

var ValidDocumentFileTypes = []string{"xml"}

type DocumentResponse struct {
	Kind         string  `json:"kind"`
	IssuedAt     string  `json:"issued_at"`
	Issuer       *Party  `json:"issuer"`
	Recipient    *Party  `json:"recipient"`
	Product      Product `json:"product"`
	Flow         *string `json:"flow"`
	Material     *string `json:"material"`
	Eligibility  *string `json:"eligibility"`
	IssuerCNPJOK bool    `json:"issuer_cnpj_valid"`
	Source       string  `json:"source"`
}

type Party struct {
	CNPJ string `json:"cnpj"`
	Name string `json:"name"`
}

type Product struct {
	Description   string `json:"description"`
	UnitOfMeasure string `json:"unit_of_measure"`
	Quantity      string `json:"quantity"`
}
