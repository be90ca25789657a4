package adobeconnect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/alnah/go-adobeconnect/internal/log"
)

// Element and attribute names of the status block:
//
//	<results>
//	  <status code="invalid">
//	    <invalid field="name" type="string" subcode="missing"/>
//	  </status>
//	</results>
const (
	tagStatus      = "status"
	tagInvalid     = "invalid"
	attrCode       = "code"
	attrSubcode    = "subcode"
	attrField      = "field"
	pathAnyStatus  = "//" + tagStatus
	pathAnyInvalid = "//" + tagInvalid
)

// ParseDocument reads a response body into an XML tree.
// The returned error wraps ErrMalformedResponse when the body is not XML.
func ParseDocument(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if err := checkTopLevel(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return doc, nil
}

// checkTopLevel enforces what the tokenizer does not: a single root element
// and no text outside it.
func checkTopLevel(doc *etree.Document) error {
	switch n := len(doc.ChildElements()); n {
	case 0:
		return errors.New("no root element")
	case 1:
	default:
		return fmt.Errorf("%d root elements", n)
	}
	for _, tok := range doc.Child {
		if cd, ok := tok.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return errors.New("text outside the root element")
		}
	}
	return nil
}

// singleElement returns the element matching path when exactly one
// unprefixed element matches. Prefixed names such as x:status are distinct
// element names, not the same element in another namespace.
func singleElement(doc *etree.Document, path string) *etree.Element {
	if doc == nil {
		return nil
	}
	var match *etree.Element
	for _, el := range doc.FindElements(path) {
		if el.Space != "" {
			continue
		}
		if match != nil {
			return nil
		}
		match = el
	}
	return match
}

// IsStatusOK reports whether the document carries a successful status.
// A document without exactly one status element counts as successful; a
// status element counts as successful only when its code is "ok" in any
// letter case.
func IsStatusOK(doc *etree.Document) bool {
	status := singleElement(doc, pathAnyStatus)
	if status == nil {
		return true
	}
	return strings.EqualFold(status.SelectAttrValue(attrCode, ""), statusOK)
}

// ExtractError decodes the status element into an Error. The boolean is
// false when the document has no single status element to decode.
//
// It does not check IsStatusOK: an "ok" status decodes to CodeUnknown.
func ExtractError(doc *etree.Document) (Error, bool) {
	status := singleElement(doc, pathAnyStatus)
	if status == nil {
		return Error{}, false
	}

	code := status.SelectAttrValue(attrCode, "")
	subcode := status.SelectAttrValue(attrSubcode, "")

	var args []string
	if code == statusInvalid {
		if invalid := singleElement(doc, pathAnyInvalid); invalid != nil {
			subcode = invalid.SelectAttrValue(attrSubcode, "")
			if field := invalid.SelectAttr(attrField); field != nil {
				args = []string{field.Value}
			}
		}
	}

	return Error{
		Code:          mapVendorCode(code, subcode),
		Arguments:     args,
		vendorCode:    code,
		vendorSubcode: subcode,
	}, true
}

// decodeStatus checks doc and, on failure, appends the decoded error.
func decodeStatus(doc *etree.Document, errs *Errors) bool {
	if IsStatusOK(doc) {
		return true
	}
	if e, ok := ExtractError(doc); ok && errs != nil {
		errs.Append(e)
	}
	return false
}

// StatusParser applies IsStatusOK and ExtractError to raw response bodies.
// Parse failures never reach the caller: they are logged and reported as a
// failed status with nothing appended.
type StatusParser struct {
	logger log.Logger
}

// NewStatusParser creates a StatusParser. A nil logger discards output.
func NewStatusParser(logger log.Logger) *StatusParser {
	return &StatusParser{logger: log.OrNop(logger)}
}

// StatusOK parses body and reports whether its status is ok.
// body is always closed.
func (p *StatusParser) StatusOK(ctx context.Context, body io.ReadCloser) bool {
	return p.Check(ctx, body, nil)
}

// Check parses body and reports whether its status is ok. On a vendor
// failure the decoded error is appended to errs (which may be nil).
// body is always closed.
func (p *StatusParser) Check(ctx context.Context, body io.ReadCloser, errs *Errors) bool {
	doc, err := p.read(body)
	if err != nil {
		p.logger.Log(ctx, log.LevelError, "cannot parse adobe connect response", log.Err(err))
		return false
	}
	p.Dump(ctx, doc)
	return decodeStatus(doc, errs)
}

func (p *StatusParser) read(body io.ReadCloser) (*etree.Document, error) {
	defer func() { _ = body.Close() }()
	return ParseDocument(body)
}

// Dump writes the document to the log at debug level.
func (p *StatusParser) Dump(ctx context.Context, doc *etree.Document) {
	if doc == nil || !p.logger.Enabled(log.LevelDebug) {
		return
	}

	out := doc.Copy()
	out.Indent(2)
	s, err := out.WriteToString()
	if err != nil {
		p.logger.Log(ctx, log.LevelError, "cannot serialize adobe connect response", log.Err(err))
		return
	}
	p.logger.Log(ctx, log.LevelDebug, "adobe connect response", log.String("xml", s))
}
