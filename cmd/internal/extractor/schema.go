package extractor

import (
	"fmt"
	"strings"

	"nfeparser/cmd/internal/domain/entity"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

const nfeNamespace = "http://www.portalfiscal.inf.br/nfe"

type field int

const (
	fieldIssuerCNPJ field = iota
	fieldIssuerName
	fieldRecipientCNPJ
	fieldRecipientName
	fieldProductDescription
	fieldUnitOfMeasure
	fieldQuantity
	fieldIssuedAt
	fieldCount
)

// schema is one recognized fiscal document layout. Each schema owns its
// detection expression and the location of every extracted field.
type schema struct {
	kind   entity.DocumentKind
	detect *xpath.Expr
	paths  [fieldCount]*xpath.Expr
}

// schemas are tried in order; the first match decides the document kind.
var schemas = []*schema{
	{
		kind: entity.KindNFe,
		// Only descendants of the root count, a bare <NFe> root is not enough.
		detect: xpath.MustCompile(descendantPath(nfeNamespace, "NFe")),
		paths: [fieldCount]*xpath.Expr{
			fieldIssuerCNPJ:         xpath.MustCompile(descendantPath(nfeNamespace, "emit", "CNPJ")),
			fieldIssuerName:         xpath.MustCompile(descendantPath(nfeNamespace, "emit", "xNome")),
			fieldRecipientCNPJ:      xpath.MustCompile(descendantPath(nfeNamespace, "dest", "CNPJ")),
			fieldRecipientName:      xpath.MustCompile(descendantPath(nfeNamespace, "dest", "xNome")),
			fieldProductDescription: xpath.MustCompile(descendantPath(nfeNamespace, "prod", "xProd")),
			fieldUnitOfMeasure:      xpath.MustCompile(descendantPath(nfeNamespace, "prod", "uCom")),
			fieldQuantity:           xpath.MustCompile(descendantPath(nfeNamespace, "prod", "qCom")),
			fieldIssuedAt:           xpath.MustCompile(descendantPath(nfeNamespace, "ide", "dhEmi")),
		},
	},
	{
		kind:   entity.KindCFe,
		detect: xpath.MustCompile("/" + step("", "CFe")),
		paths: [fieldCount]*xpath.Expr{
			fieldIssuerCNPJ:         xpath.MustCompile(rootPath("", "infCFe", "emit", "CNPJ")),
			fieldIssuerName:         xpath.MustCompile(rootPath("", "infCFe", "emit", "xNome")),
			fieldRecipientCNPJ:      xpath.MustCompile(rootPath("", "infCFe", "dest", "CNPJ")),
			fieldRecipientName:      xpath.MustCompile(rootPath("", "infCFe", "dest", "xNome")),
			fieldProductDescription: xpath.MustCompile(rootPath("", "infCFe", "det", "prod", "xProd")),
			fieldUnitOfMeasure:      xpath.MustCompile(rootPath("", "infCFe", "det", "prod", "uCom")),
			fieldQuantity:           xpath.MustCompile(rootPath("", "infCFe", "det", "prod", "qCom")),
			fieldIssuedAt:           xpath.MustCompile(rootPath("", "infCFe", "ide", "dEmi")),
		},
	},
}

func detectSchema(doc *xmlquery.Node) *schema {
	for _, s := range schemas {
		if xmlquery.QuerySelector(doc, s.detect) != nil {
			return s
		}
	}
	return nil
}

// text returns the text of the first element at f's path, or "" when the
// element is missing.
func (s *schema) text(doc *xmlquery.Node, f field) string {
	n := xmlquery.QuerySelector(doc, s.paths[f])
	if n == nil {
		return ""
	}
	return n.InnerText()
}

// step matches one element by local name and exact namespace URI, so an
// element in the wrong namespace never matches.
func step(namespace, name string) string {
	return fmt.Sprintf("*[local-name()='%s' and namespace-uri()='%s']", name, namespace)
}

func steps(namespace string, names []string) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = step(namespace, name)
	}
	return strings.Join(parts, "/")
}

// descendantPath matches names as a chain anywhere below the root element.
func descendantPath(namespace string, names ...string) string {
	return "/*//" + steps(namespace, names)
}

// rootPath matches names as a chain starting at the root element's children.
func rootPath(namespace string, names ...string) string {
	return "/*/" + steps(namespace, names)
}
