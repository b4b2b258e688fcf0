package formsio

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/ruleform/internal/form"
)

// Encode renders an ordered form sequence as a YAML document.
func Encode(forms form.Forms) ([]byte, error) {
	doc := make([]any, 0, len(forms))
	for i, f := range forms {
		dto, err := encodeForm(f)
		if err != nil {
			return nil, fmt.Errorf("encode form %d: %w", i+1, err)
		}

		doc = append(doc, dto)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("render forms document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("finish forms document: %w", err)
	}

	return buf.Bytes(), nil
}

func encodeForm(f form.Form) (any, error) {
	switch x := f.(type) {
	case *form.Module:
		return moduleDTO{Form: kindModule, Name: x.Name, Params: x.Params, Pos: posOf(x.Pos)}, nil
	case *form.FileMarker:
		return fileDTO{Form: kindFile, File: x.File, Line: x.Line, Pos: posOf(x.Pos)}, nil
	case *form.Attribute:
		return attributeDTO{Form: kindAttribute, Name: x.Name, Value: exprNode{e: x.Value}, Pos: posOf(x.Pos)}, nil
	case *form.Export:
		return exportDTO{Form: kindExport, Funcs: nameAritiesOf(x.Funcs), Pos: posOf(x.Pos)}, nil
	case *form.Function:
		return funcDTO{Form: kindFunction, Name: x.Name, Clauses: encodeClauses(x.Clauses), Pos: posOf(x.Pos)}, nil
	case *form.Rule:
		return funcDTO{Form: kindRule, Name: x.Name, Clauses: encodeClauses(x.Clauses), Pos: posOf(x.Pos)}, nil
	case *form.ErrorMarker:
		return errorDTO{Form: kindError, Origin: x.Origin, Kind: x.Kind.String(), Pos: posOf(x.Pos)}, nil
	case *form.Opaque:
		return opaqueDTO{Form: kindOpaque, Text: x.Text, Pos: posOf(x.Pos)}, nil
	default:
		return nil, fmt.Errorf("unknown form variant %T", f)
	}
}

func encodeClauses(clauses []form.Clause) []clauseDTO {
	out := make([]clauseDTO, len(clauses))
	for i, c := range clauses {
		out[i] = clauseDTO{
			Patterns: exprNodes(c.Patterns),
			Guard:    exprNodes(c.Guard),
			Body:     exprNodes(c.Body),
			Pos:      posOf(c.Pos),
		}
	}

	return out
}

func encodeExpr(e form.Expr) (any, error) {
	switch x := e.(type) {
	case nil:
		return nil, nil
	case *form.Term:
		if x.Pos == (form.Pos{}) {
			// Shorthand: a bare scalar decodes back into the same term.
			return x.Text, nil
		}
		return termDTO{Expr: kindTerm, Text: x.Text, Pos: posOf(x.Pos)}, nil
	case *form.Generator:
		return generatorDTO{Expr: kindGenerator, Pattern: exprNode{e: x.Pattern}, Source: exprNode{e: x.Source}, Pos: posOf(x.Pos)}, nil
	case *form.BinaryGenerator:
		return generatorDTO{Expr: kindBinGen, Pattern: exprNode{e: x.Pattern}, Source: exprNode{e: x.Source}, Pos: posOf(x.Pos)}, nil
	case *form.Match:
		return matchDTO{Expr: kindMatch, Pattern: exprNode{e: x.Pattern}, Value: exprNode{e: x.Value}, Pos: posOf(x.Pos)}, nil
	case *form.Call:
		return callDTO{
			Expr: kindCall,
			Ref:  refDTO{Module: x.Ref.Module, Name: x.Ref.Name},
			Args: exprNodes(x.Args),
			Pos:  posOf(x.Pos),
		}, nil
	case *form.Quoted:
		return quoteDTO{Expr: kindQuote, Value: exprNode{e: x.Expr}, Pos: posOf(x.Pos)}, nil
	case *form.NameArityList:
		return ruleListDTO{Expr: kindRuleList, Pairs: nameAritiesOf(x.Pairs), Pos: posOf(x.Pos)}, nil
	default:
		return nil, fmt.Errorf("unknown expression variant %T", e)
	}
}
