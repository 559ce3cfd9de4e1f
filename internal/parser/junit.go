package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// Document is a parsed JUnit XML result document
type Document struct {
	Path    string
	Entries []Entry
}

// Entry is either a single test case or a suite of entries; exactly one field is set
type Entry struct {
	Case  *TestCase
	Suite *TestSuite
}

// TestSuite is a named group of test cases and nested suites, kept in document order
type TestSuite struct {
	Name    string
	Entries []Entry
}

// TestCase is a <testcase> element
type TestCase struct {
	Name      string   `xml:"name,attr"`
	Classname string   `xml:"classname,attr"`
	Time      string   `xml:"time,attr"`
	Skipped   []Marker `xml:"skipped"`
	Failures  []Marker `xml:"failure"`
	Errors    []Marker `xml:"error"`
	SystemOut string   `xml:"system-out"`
	SystemErr string   `xml:"system-err"`
}

// Marker is a <skipped>, <failure> or <error> element of a test case
type Marker struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}

// JUnitParser parses JUnit XML result documents
type JUnitParser struct{}

// NewJUnitParser creates a new JUnitParser
func NewJUnitParser() *JUnitParser {
	return &JUnitParser{}
}

// ParseFile reads and parses the JUnit document at path
func (p *JUnitParser) ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := p.Parse(f)
	if err != nil {
		return nil, err
	}
	return &Document{Path: path, Entries: entries}, nil
}

// Parse decodes a JUnit document. The root element may be <testsuites>,
// <testsuite> or a single <testcase>.
func (p *JUnitParser) Parse(r io.Reader) ([]Entry, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no root element")
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "testsuites":
			return decodeEntries(d)
		case "testsuite":
			suite := &TestSuite{}
			if err := d.DecodeElement(suite, &start); err != nil {
				return nil, err
			}
			return []Entry{{Suite: suite}}, nil
		case "testcase":
			tc := &TestCase{}
			if err := d.DecodeElement(tc, &start); err != nil {
				return nil, err
			}
			return []Entry{{Case: tc}}, nil
		default:
			return nil, fmt.Errorf("unexpected root element <%s>", start.Name.Local)
		}
	}
}

// UnmarshalXML decodes a <testsuite> keeping test cases and nested suites interleaved
func (s *TestSuite) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "name" {
			s.Name = attr.Value
		}
	}

	entries, err := decodeEntries(d)
	if err != nil {
		return err
	}
	s.Entries = entries
	return nil
}

// decodeEntries reads child elements up to the end of the current element
func decodeEntries(d *xml.Decoder) ([]Entry, error) {
	var entries []Entry
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "testcase":
				tc := &TestCase{}
				if err := d.DecodeElement(tc, &t); err != nil {
					return nil, err
				}
				entries = append(entries, Entry{Case: tc})
			case "testsuite":
				suite := &TestSuite{}
				if err := d.DecodeElement(suite, &t); err != nil {
					return nil, err
				}
				entries = append(entries, Entry{Suite: suite})
			default:
				// properties, system-out and anything else at suite level
				if err := d.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			return entries, nil
		}
	}
}

// Walk calls fn for every test case in document order, descending into nested
// suites. suite is the name of the innermost suite enclosing the case.
func (doc *Document) Walk(fn func(suite string, tc *TestCase) error) error {
	return walkEntries(doc.Entries, "", fn)
}

func walkEntries(entries []Entry, suite string, fn func(string, *TestCase) error) error {
	for _, e := range entries {
		switch {
		case e.Case != nil:
			if err := fn(suite, e.Case); err != nil {
				return err
			}
		case e.Suite != nil:
			if err := walkEntries(e.Suite.Entries, e.Suite.Name, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Seconds returns the duration of the test case. A missing time attribute is 0.
func (tc *TestCase) Seconds() (float64, error) {
	value := strings.TrimSpace(tc.Time)
	if value == "" {
		return 0, nil
	}
	secs, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q for test case %s: %w", tc.Time, tc.Name, err)
	}
	return secs, nil
}

// Message returns the message of the first result marker, falling back to its text
func (tc *TestCase) Message() string {
	for _, markers := range [][]Marker{tc.Skipped, tc.Failures, tc.Errors} {
		if len(markers) == 0 {
			continue
		}
		if markers[0].Message != "" {
			return markers[0].Message
		}
		return strings.TrimSpace(markers[0].Text)
	}
	return ""
}
