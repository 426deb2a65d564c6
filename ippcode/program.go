package ippcode

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Instruction is one accepted instruction: its opcode, classified
// operands, and 1-based acceptance order. Never mutated after
// creation.
type Instruction struct {
	Order  int
	Opcode string
	Args   []Token
}

// Program is the ordered sequence of accepted instructions.
type Program struct {
	Instructions []Instruction
}

// MarshalXML emits <instruction order=... opcode=...> with one
// <argN type=...> child per operand, 1-indexed.
func (inst Instruction) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name.Local = "instruction"
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "order"}, Value: fmt.Sprintf("%d", inst.Order)},
		{Name: xml.Name{Local: "opcode"}, Value: inst.Opcode},
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for i, arg := range inst.Args {
		elem := xml.StartElement{
			Name: xml.Name{Local: fmt.Sprintf("arg%d", i+1)},
			Attr: []xml.Attr{{Name: xml.Name{Local: "type"}, Value: arg.XMLType()}},
		}
		if err := e.EncodeElement(arg.Value, elem); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// xmlProgram is the serialization shape of a Program.
type xmlProgram struct {
	XMLName      xml.Name      `xml:"program"`
	Language     string        `xml:"language,attr"`
	Instructions []Instruction `xml:"instruction"`
}

// WriteXML serializes the program, in arrival order, as the structured
// XML representation of the source.
func (prog *Program) WriteXML(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	doc := xmlProgram{
		Language:     "IPPcode24",
		Instructions: prog.Instructions,
	}
	if err := enc.Encode(doc); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}
