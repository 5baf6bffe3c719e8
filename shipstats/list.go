package shipstats

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is one stat modifier. Value is a fraction for relative stats
// (-0.15 is -15%), an amount for absolute and integer stats, and non-zero
// for a set boolean.
type Entry struct {
	Type Type
	// Target marks modifiers meant for the ship's target rather than the
	// ship itself. It is carried through untouched.
	Target bool
	Value  float64
}

// List is an ordered run of modifiers; application follows list order.
type List []Entry

// UnknownStatError reports a stat name missing from the type table.
type UnknownStatError struct {
	Name string
}

func (e *UnknownStatError) Error() string {
	return fmt.Sprintf("unknown ship stat %q", e.Name)
}

// LoadListXML reads the children of the next element in r as stat entries:
//
//	<stats>
//	  <speed_mod>10</speed_mod>
//	  <armour>25</armour>
//	  <ew_hide target="1">-20</ew_hide>
//	  <instant_jump/>
//	</stats>
//
// Relative values are written in percent. Boolean stats are set by
// presence. An unknown element name fails the whole list.
func LoadListXML(r io.Reader) (List, error) {
	dec := xml.NewDecoder(r)
	start, err := nextStart(dec)
	if err != nil {
		return nil, fmt.Errorf("loading stat list: %w", err)
	}
	return decodeList(dec, start)
}

// DecodeList reads the stat entries under start, which dec has just
// returned. It lets callers embed stat lists in larger documents.
func DecodeList(dec *xml.Decoder, start xml.StartElement) (List, error) {
	return decodeList(dec, start)
}

func decodeList(dec *xml.Decoder, start xml.StartElement) (List, error) {
	var list List
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("loading stat list %s: %w", start.Name.Local, err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			e, err := decodeEntry(dec, el)
			if err != nil {
				return nil, err
			}
			list = append(list, e)
		case xml.EndElement:
			return list, nil
		}
	}
}

func decodeEntry(dec *xml.Decoder, el xml.StartElement) (Entry, error) {
	t := TypeFromName(el.Name.Local)
	if !t.Valid() {
		return Entry{}, &UnknownStatError{Name: el.Name.Local}
	}
	var text string
	if err := dec.DecodeElement(&text, &el); err != nil {
		return Entry{}, fmt.Errorf("stat %s: %w", el.Name.Local, err)
	}

	e := Entry{Type: t}
	for _, a := range el.Attr {
		if a.Name.Local == "target" {
			e.Target = a.Value == "1" || strings.EqualFold(a.Value, "true")
		}
	}

	text = strings.TrimSpace(text)
	if t.Kind() == Boolean {
		e.Value = 1
		if text != "" {
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return Entry{}, fmt.Errorf("stat %s: %w", el.Name.Local, err)
			}
			e.Value = v
		}
		return e, nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("stat %s: %w", el.Name.Local, err)
	}
	switch t.Kind() {
	case Relative:
		e.Value = v / 100
	case Integer:
		e.Value = float64(roundInt(v))
	default:
		e.Value = v
	}
	return e, nil
}

func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return xml.StartElement{}, io.ErrUnexpectedEOF
			}
			return xml.StartElement{}, err
		}
		if el, ok := tok.(xml.StartElement); ok {
			return el, nil
		}
	}
}
