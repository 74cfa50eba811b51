// Package export writes classified records as the semicolon separated report.
package export

import (
	"bufio"
	"io"
	"strings"

	"nfeparser/cmd/internal/domain/entity"
)

const (
	delimiter  = ';'
	lineEnding = "\r\n"
)

// Header is the fixed column order of the report.
var Header = []string{
	"elegivel",
	"tipo",
	"ide_dhEmi",
	"emit_CNPJ",
	"emit_xNome",
	"dest_CNPJ",
	"dest_xNome",
	"prod_xProd",
	"prod_qCom",
	"prod_uCom",
	"entrada/saida",
	"material",
	"arquivo",
}

// ReportWriter quotes every field, unlike encoding/csv which only quotes
// when a field needs it.
type ReportWriter struct {
	w    *bufio.Writer
	rows int
}

func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{w: bufio.NewWriter(w)}
}

func (r *ReportWriter) WriteHeader() error {
	return r.writeRow(Header)
}

func (r *ReportWriter) Write(rec *entity.ClassifiedRecord) error {
	if err := r.writeRow(Row(rec)); err != nil {
		return err
	}
	r.rows++
	return nil
}

// Rows is the number of records written, header excluded.
func (r *ReportWriter) Rows() int {
	return r.rows
}

func (r *ReportWriter) Flush() error {
	return r.w.Flush()
}

// Row renders rec in Header order. No verdict becomes an empty cell.
func Row(rec *entity.ClassifiedRecord) []string {
	return []string{
		rec.EligibilityString(),
		string(rec.Kind),
		rec.IssuedAt,
		rec.IssuerCNPJ,
		rec.IssuerName,
		rec.RecipientCNPJ,
		rec.RecipientName,
		rec.ProductDescription,
		rec.Quantity,
		rec.UnitOfMeasure,
		rec.FlowString(),
		rec.MaterialString(),
		rec.Source,
	}
}

func (r *ReportWriter) writeRow(fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := r.w.WriteByte(delimiter); err != nil {
				return err
			}
		}
		if _, err := r.w.WriteString(quote(f)); err != nil {
			return err
		}
	}
	_, err := r.w.WriteString(lineEnding)
	return err
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
