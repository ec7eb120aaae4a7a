package learning2mdx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// WCMNamespace is the XML namespace of Stellent WCM data exports.
const WCMNamespace = "http://www.stellent.com/wcm-data/ns/8.0.0"

// Element names inside a wcm:row.
const (
	headElement = "Head"
	bodyElement = "Body"
)

type wcmRow struct {
	Elements []wcmElement `xml:"http://www.stellent.com/wcm-data/ns/8.0.0 element"`
}

type wcmElement struct {
	Name string `xml:"name,attr"`
	Text string `xml:",chardata"`
}

// ReadRows extracts every wcm:row of a WCM export, at any depth, in
// document order. The Head element becomes the title and the Body element
// the markup.
func ReadRows(r io.Reader) ([]Row, error) {
	dec := xml.NewDecoder(r)
	var rows []Row

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrXMLDecode, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Space != WCMNamespace || start.Name.Local != "row" {
			continue
		}

		var raw wcmRow
		if err := dec.DecodeElement(&raw, &start); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrXMLDecode, len(rows)+1, err)
		}

		row, err := raw.toRow(len(rows))
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows, nil
}

func (w wcmRow) toRow(index int) (Row, error) {
	row := Row{Index: index}
	var haveHead, haveBody bool

	for _, el := range w.Elements {
		switch el.Name {
		case headElement:
			if !haveHead {
				row.Title = strings.TrimSpace(el.Text)
				haveHead = true
			}
		case bodyElement:
			if !haveBody {
				row.Body = el.Text
				haveBody = true
			}
		}
	}

	if !haveHead || !haveBody {
		return Row{}, fmt.Errorf("%w: row %d has no %s element", ErrMalformedRow, index+1, missing(haveHead, haveBody))
	}
	return row, nil
}

func missing(haveHead, haveBody bool) string {
	switch {
	case !haveHead && !haveBody:
		return headElement + " or " + bodyElement
	case !haveHead:
		return headElement
	default:
		return bodyElement
	}
}
