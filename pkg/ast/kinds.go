package ast

// Kind tags every node with its concrete variant: a single integer that
// both identifies the shape of the node and indexes into a metadata table
// (op text, precedence, l-value behavior).
type Kind int

const (
	KindConstant Kind = iota
	KindParameter

	// Unary kinds.
	KindNot
	KindConvert
	KindNegate
	KindPreIncrement
	KindPostIncrement
	KindPreDecrement
	KindPostDecrement

	// Binary kinds.
	KindAdd
	KindSubtract
	KindMultiply
	KindDivide
	KindLessThan
	KindLessThanOrEqual
	KindGreaterThan
	KindGreaterThanOrEqual
	KindEqual
	KindNotEqual
	KindAndAlso
	KindOrElse
	KindAssign
	KindAddAssign
	KindSubtractAssign

	// Ternary.
	KindConditional

	// TypeBinary.
	KindTypeIs

	// Member.
	KindMemberAccess

	// New-expression.
	KindNewExpr

	// Statements.
	KindDeclare
	KindGoto
	KindReturn
	KindStatementExpr
	KindConditionalStatement
	KindBlock
	KindEmpty
)

// kindInfo is the metadata every Kind carries: the operator's textual
// form, its print precedence, and whether applying it writes to its first
// operand.
type kindInfo struct {
	op             string
	lprec          int
	rprec          int
	modifiesLvalue bool
}

var kindTable = map[Kind]kindInfo{
	KindConstant:  {op: "", lprec: 0, rprec: 0},
	KindParameter: {op: "", lprec: 0, rprec: 0},

	KindNot:            {op: "!", lprec: 14, rprec: 14},
	KindConvert:        {op: "", lprec: 14, rprec: 14},
	KindNegate:         {op: "-", lprec: 14, rprec: 14},
	KindPreIncrement:   {op: "++", lprec: 14, rprec: 14, modifiesLvalue: true},
	KindPostIncrement:  {op: "++", lprec: 15, rprec: 15, modifiesLvalue: true},
	KindPreDecrement:   {op: "--", lprec: 14, rprec: 14, modifiesLvalue: true},
	KindPostDecrement:  {op: "--", lprec: 15, rprec: 15, modifiesLvalue: true},

	KindAdd:                {op: "+", lprec: 11, rprec: 11},
	KindSubtract:           {op: "-", lprec: 11, rprec: 11},
	KindMultiply:           {op: "*", lprec: 12, rprec: 12},
	KindDivide:             {op: "/", lprec: 12, rprec: 12},
	KindLessThan:           {op: "<", lprec: 9, rprec: 9},
	KindLessThanOrEqual:    {op: "<=", lprec: 9, rprec: 9},
	KindGreaterThan:        {op: ">", lprec: 9, rprec: 9},
	KindGreaterThanOrEqual: {op: ">=", lprec: 9, rprec: 9},
	KindEqual:              {op: "==", lprec: 8, rprec: 8},
	KindNotEqual:           {op: "!=", lprec: 8, rprec: 8},
	KindAndAlso:            {op: "&&", lprec: 4, rprec: 4},
	KindOrElse:             {op: "||", lprec: 3, rprec: 3},
	KindAssign:             {op: "=", lprec: 2, rprec: 1, modifiesLvalue: true},
	KindAddAssign:          {op: "+=", lprec: 2, rprec: 1, modifiesLvalue: true},
	KindSubtractAssign:     {op: "-=", lprec: 2, rprec: 1, modifiesLvalue: true},

	KindConditional: {op: "?:", lprec: 2, rprec: 2},
	KindTypeIs:      {op: "instanceof", lprec: 9, rprec: 9},

	KindMemberAccess: {op: ".", lprec: 16, rprec: 16},

	KindNewExpr: {op: "new", lprec: 16, rprec: 16},

	KindDeclare:              {},
	KindGoto:                 {},
	KindReturn:               {},
	KindStatementExpr:        {},
	KindConditionalStatement: {},
	KindBlock:                {},
	KindEmpty:                {},
}

func info(k Kind) kindInfo { return kindTable[k] }

// ModifiesLvalue reports whether a node of kind k writes through its first
// operand (the target of an assignment or a mutating increment/decrement).
func ModifiesLvalue(k Kind) bool { return info(k).modifiesLvalue }

// OperatorText returns the textual operator associated with k, used both by
// the printer and by nodes that need to render themselves for debugging.
func OperatorText(k Kind) string { return info(k).op }

// Precedence returns the (left, right) binding precedence for k.
func Precedence(k Kind) (int, int) {
	i := info(k)
	return i.lprec, i.rprec
}
