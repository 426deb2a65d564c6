package ippcode

// Role is the operand role an opcode signature requires.
type Role int

const (
	ROLE_VAR   = Role(0) // var
	ROLE_SYMB  = Role(1) // symb
	ROLE_TYPE  = Role(2) // type
	ROLE_LABEL = Role(3) // label
)

func (r Role) String() string {
	switch r {
	case ROLE_VAR:
		return "var"
	case ROLE_SYMB:
		return "symb"
	case ROLE_TYPE:
		return "type"
	case ROLE_LABEL:
		return "label"
	}
	return "invalid"
}

// Accepts reports whether a token kind satisfies the role. A symb
// accepts either a constant or a variable.
func (r Role) Accepts(k TokenKind) bool {
	switch r {
	case ROLE_VAR:
		return k == TOKEN_VAR
	case ROLE_SYMB:
		return k == TOKEN_CONST || k == TOKEN_VAR
	case ROLE_TYPE:
		return k == TOKEN_TYPE
	case ROLE_LABEL:
		return k == TOKEN_LABEL
	}
	return false
}

// signatures maps each opcode of the fixed IPPcode24 dictionary to its
// required operand roles, in order. Lookup is case-sensitive.
var signatures = map[string][]Role{
	// 0 operands
	"RETURN":      {},
	"CREATEFRAME": {},
	"PUSHFRAME":   {},
	"POPFRAME":    {},
	"BREAK":       {},
	// 1 operand
	"DEFVAR": {ROLE_VAR},
	"POPS":   {ROLE_VAR},
	"CALL":   {ROLE_LABEL},
	"LABEL":  {ROLE_LABEL},
	"JUMP":   {ROLE_LABEL},
	"PUSHS":  {ROLE_SYMB},
	"EXIT":   {ROLE_SYMB},
	"DPRINT": {ROLE_SYMB},
	"WRITE":  {ROLE_SYMB},
	// 2 operands
	"MOVE":     {ROLE_VAR, ROLE_SYMB},
	"NOT":      {ROLE_VAR, ROLE_SYMB},
	"INT2CHAR": {ROLE_VAR, ROLE_SYMB},
	"READ":     {ROLE_VAR, ROLE_TYPE},
	"TYPE":     {ROLE_VAR, ROLE_SYMB},
	"STRLEN":   {ROLE_VAR, ROLE_SYMB},
	// 3 operands
	"ADD":       {ROLE_VAR, ROLE_SYMB, ROLE_SYMB},
	"SUB":       {ROLE_VAR, ROLE_SYMB, ROLE_SYMB},
	"MUL":       {ROLE_VAR, ROLE_SYMB, ROLE_SYMB},
	"IDIV":      {ROLE_VAR, ROLE_SYMB, ROLE_SYMB},
	"LT":        {ROLE_VAR, ROLE_SYMB, ROLE_SYMB},
	"GT":        {ROLE_VAR, ROLE_SYMB, ROLE_SYMB},
	"EQ":        {ROLE_VAR, ROLE_SYMB, ROLE_SYMB},
	"AND":       {ROLE_VAR, ROLE_SYMB, ROLE_SYMB},
	"OR":        {ROLE_VAR, ROLE_SYMB, ROLE_SYMB},
	"STRI2INT":  {ROLE_VAR, ROLE_SYMB, ROLE_SYMB},
	"CONCAT":    {ROLE_VAR, ROLE_SYMB, ROLE_SYMB},
	"GETCHAR":   {ROLE_VAR, ROLE_SYMB, ROLE_SYMB},
	"SETCHAR":   {ROLE_VAR, ROLE_SYMB, ROLE_SYMB},
	"JUMPIFEQ":  {ROLE_LABEL, ROLE_SYMB, ROLE_SYMB},
	"JUMPIFNEQ": {ROLE_LABEL, ROLE_SYMB, ROLE_SYMB},
}

// jumpOpcodes record a reference to their target label.
var jumpOpcodes = map[string]bool{
	"CALL":      true,
	"JUMP":      true,
	"JUMPIFEQ":  true,
	"JUMPIFNEQ": true,
}

// Signature returns the operand roles for an opcode.
func Signature(opcode string) ([]Role, bool) {
	sig, ok := signatures[opcode]
	return sig, ok
}
