// Package extractor turns NFe and CFe XML documents into flat records.
package extractor

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
)

var (
	ErrNoRootElement   = errors.New("document has no root element")
	ErrTrailingContent = errors.New("content outside the document element")
)

// ParseError reports an input that is not well-formed XML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed xml in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a whole XML document from r. path only labels errors.
func Parse(r io.Reader, path string) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if xmlquery.FindOne(doc, "/*") == nil {
		return nil, &ParseError{Path: path, Err: ErrNoRootElement}
	}
	if !singleDocumentElement(doc) {
		return nil, &ParseError{Path: path, Err: ErrTrailingContent}
	}
	return doc, nil
}

// singleDocumentElement reports whether doc has exactly one top-level
// element and no top-level text besides whitespace. encoding/xml accepts
// both, XML does not. Content ahead of an undeclared root is hung off the
// document node as a sibling rather than a child, so both chains are walked.
func singleDocumentElement(doc *xmlquery.Node) bool {
	elements := 0
	for _, first := range []*xmlquery.Node{doc.FirstChild, doc.NextSibling} {
		for n := first; n != nil; n = n.NextSibling {
			switch n.Type {
			case xmlquery.ElementNode:
				elements++
			case xmlquery.TextNode, xmlquery.CharDataNode:
				if strings.TrimSpace(n.Data) != "" {
					return false
				}
			}
		}
	}
	return elements == 1
}
