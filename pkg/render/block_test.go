package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/powerfang/pkg/psast"
	"github.com/Sumatoshi-tech/powerfang/pkg/pstoken"
)

func body(statements ...psast.Statement) *psast.StatementBlock {
	return &psast.StatementBlock{Statements: statements}
}

func TestWhileBlockNesting(t *testing.T) {
	t.Parallel()

	stmt := &psast.WhileStatement{
		Condition: pipe(variable("x")),
		Body:      body(assign("a", intConst(1)), assign("b", intConst(2))),
	}

	requireRender(t, stmt, "while ($x)\n{\n    $a = 1\n    $b = 2\n}\n")
}

func TestNestedBlocksIndentStrictly(t *testing.T) {
	t.Parallel()

	inner := &psast.WhileStatement{
		Condition: pipe(variable("y")),
		Body:      body(assign("b", intConst(2))),
	}
	outer := &psast.WhileStatement{
		Condition: pipe(variable("x")),
		Body:      body(inner),
	}

	requireRender(t, outer,
		"while ($x)\n{\n    while ($y)\n    {\n        $b = 2\n    }\n}\n")
}

func TestIfElseifElse(t *testing.T) {
	t.Parallel()

	stmt := &psast.IfStatement{
		Clauses: []*psast.IfClause{
			{Condition: pipe(variable("a")), Body: body(assign("x", intConst(1)))},
			{Condition: pipe(variable("b")), Body: body(assign("x", intConst(2)))},
		},
		Else: body(assign("x", intConst(3))),
	}

	requireRender(t, stmt,
		"if ($a)\n{\n    $x = 1\n}\nelseif ($b)\n{\n    $x = 2\n}\nelse\n{\n    $x = 3\n}\n")
}

func TestLoops(t *testing.T) {
	t.Parallel()

	t.Run("do while", func(t *testing.T) {
		t.Parallel()

		stmt := &psast.DoWhileStatement{
			Body:      body(assign("a", intConst(1))),
			Condition: pipe(variable("x")),
		}
		requireRender(t, stmt, "do\n{\n    $a = 1\n} while ($x)\n")
	})

	t.Run("do until", func(t *testing.T) {
		t.Parallel()

		stmt := &psast.DoUntilStatement{
			Body:      body(assign("a", intConst(1))),
			Condition: pipe(variable("x")),
		}
		requireRender(t, stmt, "do\n{\n    $a = 1\n} until ($x)\n")
	})

	t.Run("for with all clauses", func(t *testing.T) {
		t.Parallel()

		stmt := &psast.ForStatement{
			Initializer: assign("i", intConst(0)),
			Condition:   pipe(&psast.BinaryExpression{Left: variable("i"), Operator: pstoken.Ilt, Right: intConst(10)}),
			Iterator:    exprStmt(&psast.UnaryExpression{Operator: pstoken.PostfixPlusPlus, Child: variable("i")}),
			Body:        body(assign("a", intConst(1))),
		}
		requireRender(t, stmt, "for ($i = 0; $i -lt 10; $i++)\n{\n    $a = 1\n}\n")
	})

	t.Run("for with empty clauses", func(t *testing.T) {
		t.Parallel()

		stmt := &psast.ForStatement{Body: body(assign("a", intConst(1)))}
		requireRender(t, stmt, "for (;;)\n{\n    $a = 1\n}\n")
	})

	t.Run("for with only a condition", func(t *testing.T) {
		t.Parallel()

		stmt := &psast.ForStatement{
			Condition: pipe(variable("x")),
			Body:      body(assign("a", intConst(1))),
		}
		requireRender(t, stmt, "for (; $x;)\n{\n    $a = 1\n}\n")
	})

	t.Run("foreach", func(t *testing.T) {
		t.Parallel()

		stmt := &psast.ForEachStatement{
			Variable: variable("item"),
			Source:   pipe(variable("list")),
			Body:     body(assign("a", intConst(1))),
		}
		requireRender(t, stmt, "foreach ($item in $list)\n{\n    $a = 1\n}\n")
	})
}

func TestTrapsRenderFirstInsideBlocks(t *testing.T) {
	t.Parallel()

	stmt := &psast.WhileStatement{
		Condition: pipe(variable("x")),
		Body: &psast.StatementBlock{
			Statements: []psast.Statement{assign("a", intConst(1))},
			Traps: []*psast.TrapStatement{{
				Type: &psast.TypeConstraint{TypeName: &psast.SimpleTypeName{FullName: "System.Exception"}},
				Body: body(&psast.ControlFlowStatement{Keyword: pstoken.Continue}),
			}},
		},
	}

	requireRender(t, stmt,
		"while ($x)\n{\n    trap [System.Exception]\n    {\n        continue\n    }\n    $a = 1\n}\n")
}

// Traps nest through renderSequence without passing renderStatement, so the
// depth guard has to hold on that path too.
func TestNestedTrapDepthGuard(t *testing.T) {
	t.Parallel()

	block := &psast.StatementBlock{}
	for i := 0; i < MaxDepth+10; i++ {
		block = &psast.StatementBlock{Traps: []*psast.TrapStatement{{Body: block}}}
	}

	_, err := Statement(&psast.TrapStatement{Body: block})
	require.ErrorIs(t, err, ErrDepthExceeded)
}

func TestFunctionDefinition(t *testing.T) {
	t.Parallel()

	t.Run("plain function", func(t *testing.T) {
		t.Parallel()

		stmt := &psast.FunctionDefinition{
			Name: "Get-Total",
			Body: &psast.ScriptBlock{End: &psast.NamedBlock{
				Keyword:    pstoken.End,
				Statements: []psast.Statement{&psast.ControlFlowStatement{Keyword: pstoken.Return, Child: variable("total")}},
			}},
		}
		requireRender(t, stmt, "function Get-Total\n{\n    return $total\n}\n")
	})

	t.Run("filter", func(t *testing.T) {
		t.Parallel()

		stmt := &psast.FunctionDefinition{
			IsFilter: true,
			Name:     "Select-Big",
			Body: &psast.ScriptBlock{End: &psast.NamedBlock{
				Keyword:    pstoken.End,
				Statements: []psast.Statement{pipe(variable("_"))},
			}},
		}
		requireRender(t, stmt, "filter Select-Big\n{\n    $_\n}\n")
	})

	t.Run("function with inline param block", func(t *testing.T) {
		t.Parallel()

		stmt := &psast.FunctionDefinition{
			Name: "Add",
			Body: &psast.ScriptBlock{
				ParamBlock: &psast.ParamBlock{Parameters: []*psast.Parameter{
					{Name: variable("a")},
					{Name: variable("b"), DefaultValue: intConst(0)},
				}},
				End: &psast.NamedBlock{
					Keyword:    pstoken.End,
					Statements: []psast.Statement{pipe(&psast.BinaryExpression{Left: variable("a"), Operator: pstoken.Plus, Right: variable("b")})},
				},
			},
		}
		requireRender(t, stmt, "function Add\n{\n    param($a, $b = 0)\n    $a + $b\n}\n")
	})
}

func TestAttributedParamBlockBreaksLines(t *testing.T) {
	t.Parallel()

	stmt := &psast.FunctionDefinition{
		Name: "Invoke-Thing",
		Body: &psast.ScriptBlock{
			ParamBlock: &psast.ParamBlock{
				Attributes: []*psast.AttributeNode{
					{TypeName: &psast.SimpleTypeName{FullName: "CmdletBinding"}},
				},
				Parameters: []*psast.Parameter{
					{
						Attributes: []psast.AttributeBase{
							&psast.AttributeNode{
								TypeName: &psast.SimpleTypeName{FullName: "Parameter"},
								NamedArguments: []*psast.NamedAttributeArgument{
									{Name: "Mandatory", ExpressionOmitted: true},
								},
							},
							&psast.TypeConstraint{TypeName: &psast.SimpleTypeName{FullName: "string"}},
						},
						Name: variable("Name"),
					},
					{
						Attributes: []psast.AttributeBase{
							&psast.TypeConstraint{TypeName: &psast.SimpleTypeName{FullName: "int"}},
						},
						Name:         variable("Count"),
						DefaultValue: intConst(1),
					},
				},
			},
			End: &psast.NamedBlock{
				Keyword:    pstoken.End,
				Statements: []psast.Statement{pipe(variable("Name"))},
			},
		},
	}

	want := "function Invoke-Thing\n" +
		"{\n" +
		"    [CmdletBinding()]\n" +
		"    param(\n" +
		"        [Parameter(Mandatory)]\n" +
		"        [string]\n" +
		"        $Name,\n" +
		"\n" +
		"        [int]\n" +
		"        $Count = 1\n" +
		"    )\n" +
		"    $Name\n" +
		"}\n"

	requireRender(t, stmt, want)
}

func TestScriptBlockPhases(t *testing.T) {
	t.Parallel()

	t.Run("explicit begin and process force all phases", func(t *testing.T) {
		t.Parallel()

		expr := &psast.ScriptBlockExpression{Body: &psast.ScriptBlock{
			Begin: &psast.NamedBlock{
				Keyword:    pstoken.Begin,
				Statements: []psast.Statement{assign("n", intConst(0))},
			},
			Process: &psast.NamedBlock{
				Keyword:    pstoken.Process,
				Statements: []psast.Statement{exprStmt(&psast.UnaryExpression{Operator: pstoken.PostfixPlusPlus, Child: variable("n")})},
			},
		}}

		got, err := Expression(expr)
		require.NoError(t, err)

		want := "{\n" +
			"    begin\n" +
			"    {\n" +
			"        $n = 0\n" +
			"    }\n" +
			"    process\n" +
			"    {\n" +
			"        $n++\n" +
			"    }\n" +
			"    end\n" +
			"    {\n" +
			"    }\n" +
			"}"
		assert.Equal(t, want, got)
	})

	t.Run("end-only block drops the keyword", func(t *testing.T) {
		t.Parallel()

		expr := &psast.ScriptBlockExpression{Body: &psast.ScriptBlock{
			End: &psast.NamedBlock{
				Keyword:    pstoken.End,
				Statements: []psast.Statement{assign("a", intConst(1))},
			},
		}}

		got, err := Expression(expr)
		require.NoError(t, err)
		assert.Equal(t, "{\n    $a = 1\n}", got)
	})

	t.Run("empty script block", func(t *testing.T) {
		t.Parallel()

		got, err := Expression(&psast.ScriptBlockExpression{Body: &psast.ScriptBlock{}})
		require.NoError(t, err)
		assert.Equal(t, "{ }", got)
	})

	t.Run("dynamicparam renders on its own line", func(t *testing.T) {
		t.Parallel()

		expr := &psast.ScriptBlockExpression{Body: &psast.ScriptBlock{
			DynamicParam: &psast.NamedBlock{
				Keyword:    pstoken.DynamicParam,
				Statements: []psast.Statement{pipe(variable("params"))},
			},
			End: &psast.NamedBlock{
				Keyword:    pstoken.End,
				Statements: []psast.Statement{assign("a", intConst(1))},
			},
		}}

		got, err := Expression(expr)
		require.NoError(t, err)

		want := "{\n" +
			"    dynamicparam\n" +
			"    {\n" +
			"        $params\n" +
			"    }\n" +
			"    $a = 1\n" +
			"}"
		assert.Equal(t, want, got)
	})
}

func TestTypeDefinitions(t *testing.T) {
	t.Parallel()

	t.Run("empty class renders explicit empty block", func(t *testing.T) {
		t.Parallel()

		stmt := &psast.TypeDefinition{Keyword: pstoken.Class, Name: "Empty"}
		requireRender(t, stmt, "class Empty\n{\n}\n")
	})

	t.Run("class with bases, property and method", func(t *testing.T) {
		t.Parallel()

		stmt := &psast.TypeDefinition{
			Keyword:   pstoken.Class,
			Name:      "Point",
			BaseTypes: []psast.TypeName{&psast.SimpleTypeName{FullName: "Shape"}, &psast.SimpleTypeName{FullName: "IMovable"}},
			Members: []psast.Member{
				&psast.PropertyMember{
					Name:         "X",
					Type:         &psast.TypeConstraint{TypeName: &psast.SimpleTypeName{FullName: "int"}},
					DefaultValue: intConst(0),
				},
				&psast.MethodMember{
					Name:       "Move",
					ReturnType: &psast.TypeConstraint{TypeName: &psast.SimpleTypeName{FullName: "void"}},
					Parameters: []*psast.Parameter{{
						Attributes: []psast.AttributeBase{
							&psast.TypeConstraint{TypeName: &psast.SimpleTypeName{FullName: "int"}},
						},
						Name: variable("dx"),
					}},
					Body: body(&psast.AssignmentStatement{
						Left:     &psast.MemberExpression{Target: variable("this"), Member: bareWord("X")},
						Operator: pstoken.PlusEquals,
						Right:    exprStmt(variable("dx")),
					}),
				},
			},
		}

		want := "class Point : Shape, IMovable\n" +
			"{\n" +
			"    [int] $X = 0\n" +
			"\n" +
			"    [void] Move([int]$dx)\n" +
			"    {\n" +
			"        $this.X += $dx\n" +
			"    }\n" +
			"}\n"

		requireRender(t, stmt, want)
	})

	t.Run("static hidden property", func(t *testing.T) {
		t.Parallel()

		stmt := &psast.TypeDefinition{
			Keyword: pstoken.Class,
			Name:    "Registry",
			Members: []psast.Member{
				&psast.PropertyMember{Name: "Instances", Static: true, Hidden: true},
			},
		}
		requireRender(t, stmt, "class Registry\n{\n    static hidden $Instances\n}\n")
	})

	t.Run("enum members join with commas", func(t *testing.T) {
		t.Parallel()

		stmt := &psast.TypeDefinition{
			Keyword: pstoken.Enum,
			Name:    "Color",
			Members: []psast.Member{
				&psast.EnumMember{Name: "Red"},
				&psast.EnumMember{Name: "Green", Value: intConst(2)},
				&psast.EnumMember{Name: "Blue"},
			},
		}
		requireRender(t, stmt, "enum Color\n{\n    Red,\n    Green = 2,\n    Blue\n}\n")
	})

	t.Run("interface members render consecutively", func(t *testing.T) {
		t.Parallel()

		stmt := &psast.TypeDefinition{
			Keyword: pstoken.Interface,
			Name:    "IShape",
			Members: []psast.Member{
				&psast.MethodMember{Name: "Area", ReturnType: &psast.TypeConstraint{TypeName: &psast.SimpleTypeName{FullName: "double"}}},
				&psast.MethodMember{Name: "Scale", Parameters: []*psast.Parameter{{Name: variable("factor")}}},
			},
		}

		want := "interface IShape\n" +
			"{\n" +
			"    [double] Area()\n" +
			"    {\n" +
			"    }\n" +
			"    Scale($factor)\n" +
			"    {\n" +
			"    }\n" +
			"}\n"

		requireRender(t, stmt, want)
	})

	t.Run("function keyword is not a type definition", func(t *testing.T) {
		t.Parallel()

		_, err := Statement(&psast.TypeDefinition{Keyword: pstoken.Function, Name: "x"})
		require.ErrorIs(t, err, ErrUnsupportedConstruct)
	})
}

func TestTypeNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr psast.Expression
		want string
	}{
		{
			"simple dotted name",
			&psast.TypeExpression{TypeName: &psast.SimpleTypeName{FullName: "System.IO.FileInfo"}},
			"[System.IO.FileInfo]",
		},
		{
			"rank one array",
			&psast.TypeExpression{TypeName: &psast.ArrayTypeName{Element: &psast.SimpleTypeName{FullName: "int"}, Rank: 1}},
			"[int[]]",
		},
		{
			"rank three array",
			&psast.TypeExpression{TypeName: &psast.ArrayTypeName{Element: &psast.SimpleTypeName{FullName: "byte"}, Rank: 3}},
			"[byte[,,]]",
		},
		{
			"generic type",
			&psast.TypeExpression{TypeName: &psast.GenericTypeName{
				Name: &psast.SimpleTypeName{FullName: "System.Collections.Generic.Dictionary"},
				Arguments: []psast.TypeName{
					&psast.SimpleTypeName{FullName: "string"},
					&psast.ArrayTypeName{Element: &psast.SimpleTypeName{FullName: "int"}, Rank: 1},
				},
			}},
			"[System.Collections.Generic.Dictionary[string, int[]]]",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Expression(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
