package variants

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"

	"golang.org/x/net/html/charset"
)

// xmlDescriptor matches any root element. Every direct child is a level whose
// text holds the option list.
type xmlDescriptor struct {
	XMLName xml.Name
	File    string     `xml:"File,attr"`
	Levels  []xmlLevel `xml:",any"`
}

type xmlLevel struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// ParseXML parses an XML descriptor such as:
//
//	<Variants File="Shared.fx">
//	  <Level>TEXTURE;_</Level>
//	  <Level>SKINNING=2;_</Level>
//	</Variants>
func ParseXML(filename string, data []byte) (*Descriptor, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var root xmlDescriptor
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("no root element")
		}
		return nil, malformed(filename, err)
	}
	if err := checkTrailing(dec); err != nil {
		return nil, malformed(filename, err)
	}

	desc := &Descriptor{
		SourceFile: root.File,
		Levels:     make([]Level, 0, len(root.Levels)),
	}
	for _, l := range root.Levels {
		desc.Levels = append(desc.Levels, parseLevel(l.Text))
	}
	return desc, nil
}

// checkTrailing rejects a second root element or stray text after the root.
func checkTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return errors.New("multiple root elements")
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("text after root element")
			}
		}
	}
}
