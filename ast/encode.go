package ast

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// ErrUnsupportedFormat is returned by Encode for an unknown output format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format selects the serialisation used by Encode.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Encode writes node and its subtree to w as an ordered mapping.
// Every mapping starts with the node kind and its position (line:column).
func Encode(w io.Writer, node Node, format Format) error {
	var opts []yaml.EncodeOption

	switch format {
	case FormatYAML, "":
		opts = append(opts, yaml.IndentSequence(true))
	case FormatJSON:
		opts = append(opts, yaml.JSON())
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := yaml.NewEncoder(w, opts...).Encode(Tree(node)); err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}

	return nil
}

// Tree converts node into nested yaml.MapSlice values suitable for any encoder.
func Tree(node Node) yaml.MapSlice {
	switch n := node.(type) {
	case *CompilationUnit:
		return entry("CompilationUnit", n, yaml.MapItem{Key: "classes", Value: list(n.Classes)})

	case *ClassDecl:
		return entry("ClassDecl", n,
			yaml.MapItem{Key: "name", Value: n.Name},
			yaml.MapItem{Key: "fields", Value: list(n.Fields)},
			yaml.MapItem{Key: "methods", Value: list(n.Methods)},
		)

	case *FieldDecl:
		return entry("FieldDecl", n,
			yaml.MapItem{Key: "visibility", Value: n.Visibility.String()},
			yaml.MapItem{Key: "static", Value: n.IsStatic},
			yaml.MapItem{Key: "type", Value: Tree(n.Type)},
			yaml.MapItem{Key: "name", Value: n.Name},
		)

	case *MethodDecl:
		return entry("MethodDecl", n,
			yaml.MapItem{Key: "header", Value: Tree(n.Header)},
			yaml.MapItem{Key: "parameters", Value: list(n.Parameters)},
			yaml.MapItem{Key: "body", Value: list(n.Body)},
		)

	case *ParameterDecl:
		return entry("ParameterDecl", n,
			yaml.MapItem{Key: "type", Value: Tree(n.Type)},
			yaml.MapItem{Key: "name", Value: n.Name},
		)

	case *VarDecl:
		return entry("VarDecl", n,
			yaml.MapItem{Key: "type", Value: Tree(n.Type)},
			yaml.MapItem{Key: "name", Value: n.Name},
		)

	case *BaseType:
		return entry("BaseType", n, yaml.MapItem{Key: "name", Value: n.Kind.String()})

	case *ClassType:
		return entry("ClassType", n, yaml.MapItem{Key: "name", Value: n.Name})

	case *ArrayType:
		return entry("ArrayType", n, yaml.MapItem{Key: "element", Value: Tree(n.Element)})

	case *BlockStmt:
		return entry("BlockStmt", n, yaml.MapItem{Key: "statements", Value: list(n.Statements)})

	case *ReturnStmt:
		return entry("ReturnStmt", n, yaml.MapItem{Key: "value", Value: optional(n.Value)})

	case *IfStmt:
		return entry("IfStmt", n,
			yaml.MapItem{Key: "cond", Value: Tree(n.Cond)},
			yaml.MapItem{Key: "then", Value: Tree(n.Then)},
			yaml.MapItem{Key: "else", Value: optional(n.Else)},
		)

	case *WhileStmt:
		return entry("WhileStmt", n,
			yaml.MapItem{Key: "cond", Value: Tree(n.Cond)},
			yaml.MapItem{Key: "body", Value: Tree(n.Body)},
		)

	case *VarDeclStmt:
		return entry("VarDeclStmt", n,
			yaml.MapItem{Key: "decl", Value: Tree(n.Decl)},
			yaml.MapItem{Key: "init", Value: Tree(n.Init)},
		)

	case *AssignStmt:
		return entry("AssignStmt", n,
			yaml.MapItem{Key: "ref", Value: Tree(n.Ref)},
			yaml.MapItem{Key: "value", Value: Tree(n.Value)},
		)

	case *IxAssignStmt:
		return entry("IxAssignStmt", n,
			yaml.MapItem{Key: "ref", Value: Tree(n.Ref)},
			yaml.MapItem{Key: "index", Value: Tree(n.Index)},
			yaml.MapItem{Key: "value", Value: Tree(n.Value)},
		)

	case *CallStmt:
		return entry("CallStmt", n,
			yaml.MapItem{Key: "method", Value: Tree(n.Method)},
			yaml.MapItem{Key: "args", Value: list(n.Args)},
		)

	case *LiteralExpr:
		return entry("LiteralExpr", n, yaml.MapItem{Key: "literal", Value: Tree(n.Literal)})

	case *IntLiteral:
		return entry("IntLiteral", n, yaml.MapItem{Key: "spelling", Value: n.Digits})

	case *BooleanLiteral:
		return entry("BooleanLiteral", n, yaml.MapItem{Key: "spelling", Value: n.Spelling()})

	case *RefExpr:
		return entry("RefExpr", n, yaml.MapItem{Key: "ref", Value: Tree(n.Ref)})

	case *UnaryExpr:
		return entry("UnaryExpr", n,
			yaml.MapItem{Key: "op", Value: n.Op.Spelling},
			yaml.MapItem{Key: "operand", Value: Tree(n.Operand)},
		)

	case *BinaryExpr:
		return entry("BinaryExpr", n,
			yaml.MapItem{Key: "op", Value: n.Op.Spelling},
			yaml.MapItem{Key: "left", Value: Tree(n.Left)},
			yaml.MapItem{Key: "right", Value: Tree(n.Right)},
		)

	case *IxExpr:
		return entry("IxExpr", n,
			yaml.MapItem{Key: "ref", Value: Tree(n.Ref)},
			yaml.MapItem{Key: "index", Value: Tree(n.Index)},
		)

	case *CallExpr:
		return entry("CallExpr", n,
			yaml.MapItem{Key: "method", Value: Tree(n.Method)},
			yaml.MapItem{Key: "args", Value: list(n.Args)},
		)

	case *NewObjectExpr:
		return entry("NewObjectExpr", n, yaml.MapItem{Key: "class", Value: Tree(n.Class)})

	case *NewArrayExpr:
		return entry("NewArrayExpr", n,
			yaml.MapItem{Key: "element", Value: Tree(n.Element)},
			yaml.MapItem{Key: "size", Value: Tree(n.Size)},
		)

	case *ThisRef:
		return entry("ThisRef", n)

	case *IdRef:
		return entry("IdRef", n, yaml.MapItem{Key: "name", Value: n.Name})

	case *QualRef:
		return entry("QualRef", n,
			yaml.MapItem{Key: "base", Value: Tree(n.Base)},
			yaml.MapItem{Key: "name", Value: n.Name},
		)

	case *Operator:
		return entry("Operator", n, yaml.MapItem{Key: "spelling", Value: n.Spelling})

	default:
		return nil
	}
}

func entry(kind string, node Node, items ...yaml.MapItem) yaml.MapSlice {
	m := make(yaml.MapSlice, 0, len(items)+2)
	m = append(m,
		yaml.MapItem{Key: "kind", Value: kind},
		yaml.MapItem{Key: "pos", Value: node.Pos().String()},
	)

	return append(m, items...)
}

func list[T Node](nodes []T) []yaml.MapSlice {
	out := make([]yaml.MapSlice, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, Tree(node))
	}

	return out
}

// optional encodes an absent child as null
func optional(node Node) any {
	if node == nil {
		return nil
	}

	return Tree(node)
}
