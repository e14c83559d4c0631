package pstoken

import "fmt"

// names maps each kind to the stable identifier used in serialized tree
// documents. Unlike lexemes, names are unique per kind.
var names = map[Kind]string{
	LParen:           "LParen",
	RParen:           "RParen",
	LCurly:           "LCurly",
	RCurly:           "RCurly",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	AtParen:          "AtParen",
	AtCurly:          "AtCurly",
	DollarParen:      "DollarParen",
	Semi:             "Semi",
	Comma:            "Comma",
	Dot:              "Dot",
	DotDot:           "DotDot",
	ColonColon:       "ColonColon",
	Colon:            "Colon",
	Pipe:             "Pipe",
	AndAnd:           "AndAnd",
	OrOr:             "OrOr",
	Ampersand:        "Ampersand",
	Exclaim:          "Exclaim",
	QuestionMark:     "QuestionMark",
	QuestionQuestion: "QuestionQuestion",

	Equals:                 "Equals",
	PlusEquals:             "PlusEquals",
	MinusEquals:            "MinusEquals",
	MultiplyEquals:         "MultiplyEquals",
	DivideEquals:           "DivideEquals",
	RemainderEquals:        "RemainderEquals",
	QuestionQuestionEquals: "QuestionQuestionEquals",

	Plus:     "Plus",
	Minus:    "Minus",
	Multiply: "Multiply",
	Divide:   "Divide",
	Rem:      "Rem",
	Format:   "Format",
	Range:    "Range",

	PlusPlus:          "PlusPlus",
	MinusMinus:        "MinusMinus",
	PostfixPlusPlus:   "PostfixPlusPlus",
	PostfixMinusMinus: "PostfixMinusMinus",

	And:  "And",
	Or:   "Or",
	Xor:  "Xor",
	Not:  "Not",
	Band: "Band",
	Bor:  "Bor",
	Bxor: "Bxor",
	Bnot: "Bnot",
	Shl:  "Shl",
	Shr:  "Shr",

	Ieq:          "Ieq",
	Ine:          "Ine",
	Ige:          "Ige",
	Igt:          "Igt",
	Ile:          "Ile",
	Ilt:          "Ilt",
	Ilike:        "Ilike",
	Inotlike:     "Inotlike",
	Imatch:       "Imatch",
	Inotmatch:    "Inotmatch",
	Ireplace:     "Ireplace",
	Icontains:    "Icontains",
	Inotcontains: "Inotcontains",
	Iin:          "Iin",
	Inotin:       "Inotin",
	Isplit:       "Isplit",

	Ceq:          "Ceq",
	Cne:          "Cne",
	Cge:          "Cge",
	Cgt:          "Cgt",
	Cle:          "Cle",
	Clt:          "Clt",
	Clike:        "Clike",
	Cnotlike:     "Cnotlike",
	Cmatch:       "Cmatch",
	Cnotmatch:    "Cnotmatch",
	Creplace:     "Creplace",
	Ccontains:    "Ccontains",
	Cnotcontains: "Cnotcontains",
	Cin:          "Cin",
	Cnotin:       "Cnotin",
	Csplit:       "Csplit",

	Join:  "Join",
	Is:    "Is",
	IsNot: "IsNot",
	As:    "As",

	Redirection:       "Redirection",
	RedirectionAppend: "RedirectionAppend",

	DotSource:    "DotSource",
	CallOperator: "CallOperator",

	Begin:         "Begin",
	Break:         "Break",
	Catch:         "Catch",
	Class:         "Class",
	Continue:      "Continue",
	Data:          "Data",
	Do:            "Do",
	DynamicParam:  "DynamicParam",
	Else:          "Else",
	ElseIf:        "ElseIf",
	End:           "End",
	Enum:          "Enum",
	Exit:          "Exit",
	Filter:        "Filter",
	Finally:       "Finally",
	For:           "For",
	Foreach:       "Foreach",
	From:          "From",
	Function:      "Function",
	Hidden:        "Hidden",
	If:            "If",
	In:            "In",
	Interface:     "Interface",
	Param:         "Param",
	Process:       "Process",
	Return:        "Return",
	Static:        "Static",
	Switch:        "Switch",
	Throw:         "Throw",
	Trap:          "Trap",
	Try:           "Try",
	Until:         "Until",
	Using:         "Using",
	While:         "While",
	Workflow:      "Workflow",
	Configuration: "Configuration",
	Base:          "Base",
	Default:       "Default",
	Define:        "Define",
	Namespace:     "Namespace",
	Module:        "Module",
	Assembly:      "Assembly",
	Type:          "Type",
	Command:       "Command",

	True:  "True",
	False: "False",
	Null:  "Null",
}

// kindsByName is the inverse of names, built once at startup.
var kindsByName = func() map[string]Kind {
	inverse := make(map[string]Kind, len(names))

	for kind, name := range names {
		inverse[name] = kind
	}

	return inverse
}()

// Name returns the kind's document identifier.
func (kind Kind) Name() string {
	if name, ok := names[kind]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(kind))
}

// FromName resolves a document identifier back to its kind.
func FromName(name string) (Kind, error) {
	kind, ok := kindsByName[name]
	if !ok {
		return Unknown, fmt.Errorf("%w: name %q", ErrUnsupportedToken, name)
	}

	return kind, nil
}
