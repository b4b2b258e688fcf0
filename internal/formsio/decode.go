package formsio

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/ruleform/internal/form"
)

// Form and expression discriminator values of the wire format.
const (
	kindModule    = "module"
	kindFile      = "file"
	kindAttribute = "attribute"
	kindExport    = "export"
	kindFunction  = "function"
	kindRule      = "rule"
	kindError     = "error"
	kindOpaque    = "opaque"

	kindTerm      = "term"
	kindGenerator = "generator"
	kindBinGen    = "binary_generator"
	kindMatch     = "match"
	kindCall      = "call"
	kindQuote     = "quote"
	kindRuleList  = "rules"
)

// posDTO mirrors form.Pos on the wire.
type posDTO struct {
	File string `yaml:"file,omitempty"`
	Line int    `yaml:"line,omitempty"`
	Col  int    `yaml:"col,omitempty"`
}

func (p posDTO) IsZero() bool { return p == posDTO{} }

func (p posDTO) pos() form.Pos { return form.Pos(p) }
func posOf(p form.Pos) posDTO  { return posDTO(p) }

// exprNode carries one expression through YAML in either direction.
type exprNode struct {
	e form.Expr
}

func (n *exprNode) UnmarshalYAML(node *yaml.Node) error {
	e, err := decodeExpr(node)
	if err != nil {
		return err
	}

	n.e = e
	return nil
}

func (n exprNode) MarshalYAML() (any, error) {
	return encodeExpr(n.e)
}

func (n exprNode) IsZero() bool { return n.e == nil }

func exprNodes(exprs []form.Expr) []exprNode {
	if exprs == nil {
		return nil
	}

	out := make([]exprNode, len(exprs))
	for i, e := range exprs {
		out[i] = exprNode{e: e}
	}

	return out
}

func nodeExprs(nodes []exprNode) []form.Expr {
	if nodes == nil {
		return nil
	}

	out := make([]form.Expr, len(nodes))
	for i, n := range nodes {
		out[i] = n.e
	}

	return out
}

type refDTO struct {
	Module string `yaml:"module,omitempty"`
	Name   string `yaml:"name"`
}

type nameArityDTO struct {
	Name  string `yaml:"name"`
	Arity int    `yaml:"arity"`
}

func nameAritiesOf(pairs []form.NameArity) []nameArityDTO {
	if pairs == nil {
		return nil
	}

	out := make([]nameArityDTO, len(pairs))
	for i, p := range pairs {
		out[i] = nameArityDTO(p)
	}

	return out
}

func dtoNameArities(dtos []nameArityDTO) []form.NameArity {
	if dtos == nil {
		return nil
	}

	out := make([]form.NameArity, len(dtos))
	for i, d := range dtos {
		out[i] = form.NameArity(d)
	}

	return out
}

type moduleDTO struct {
	Form   string   `yaml:"form"`
	Name   string   `yaml:"name"`
	Params []string `yaml:"params,omitempty"`
	Pos    posDTO   `yaml:"pos,omitempty"`
}

type fileDTO struct {
	Form string `yaml:"form"`
	File string `yaml:"file"`
	Line int    `yaml:"line"`
	Pos  posDTO `yaml:"pos,omitempty"`
}

type attributeDTO struct {
	Form  string   `yaml:"form"`
	Name  string   `yaml:"name"`
	Value exprNode `yaml:"value,omitempty"`
	Pos   posDTO   `yaml:"pos,omitempty"`
}

type exportDTO struct {
	Form  string         `yaml:"form"`
	Funcs []nameArityDTO `yaml:"funcs"`
	Pos   posDTO         `yaml:"pos,omitempty"`
}

type clauseDTO struct {
	Patterns []exprNode `yaml:"patterns,omitempty"`
	Guard    []exprNode `yaml:"guard,omitempty"`
	Body     []exprNode `yaml:"body,omitempty"`
	Pos      posDTO     `yaml:"pos,omitempty"`
}

type funcDTO struct {
	Form    string      `yaml:"form"`
	Name    string      `yaml:"name"`
	Clauses []clauseDTO `yaml:"clauses"`
	Pos     posDTO      `yaml:"pos,omitempty"`
}

type errorDTO struct {
	Form   string `yaml:"form"`
	Origin string `yaml:"origin"`
	Kind   string `yaml:"kind"`
	Pos    posDTO `yaml:"pos,omitempty"`
}

type opaqueDTO struct {
	Form string `yaml:"form"`
	Text string `yaml:"text"`
	Pos  posDTO `yaml:"pos,omitempty"`
}

type termDTO struct {
	Expr string `yaml:"expr"`
	Text string `yaml:"text"`
	Pos  posDTO `yaml:"pos,omitempty"`
}

type generatorDTO struct {
	Expr    string   `yaml:"expr"`
	Pattern exprNode `yaml:"pattern"`
	Source  exprNode `yaml:"source"`
	Pos     posDTO   `yaml:"pos,omitempty"`
}

type matchDTO struct {
	Expr    string   `yaml:"expr"`
	Pattern exprNode `yaml:"pattern"`
	Value   exprNode `yaml:"value"`
	Pos     posDTO   `yaml:"pos,omitempty"`
}

type callDTO struct {
	Expr string     `yaml:"expr"`
	Ref  refDTO     `yaml:"ref"`
	Args []exprNode `yaml:"args,omitempty"`
	Pos  posDTO     `yaml:"pos,omitempty"`
}

type quoteDTO struct {
	Expr  string   `yaml:"expr"`
	Value exprNode `yaml:"value"`
	Pos   posDTO   `yaml:"pos,omitempty"`
}

type ruleListDTO struct {
	Expr  string         `yaml:"expr"`
	Pairs []nameArityDTO `yaml:"pairs"`
	Pos   posDTO         `yaml:"pos,omitempty"`
}

// Decode parses a YAML document holding an ordered form sequence.
func Decode(data []byte) (form.Forms, error) {
	var doc []yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse forms document: %w", err)
	}

	forms := make(form.Forms, 0, len(doc))
	for i := range doc {
		f, err := decodeForm(&doc[i])
		if err != nil {
			return nil, fmt.Errorf("decode form %d: %w", i+1, err)
		}

		forms = append(forms, f)
	}

	return forms, nil
}

func decodeForm(node *yaml.Node) (form.Form, error) {
	var kind struct {
		Form string `yaml:"form"`
	}
	if err := node.Decode(&kind); err != nil {
		return nil, fmt.Errorf("read form kind: %w", err)
	}

	switch kind.Form {
	case kindModule:
		var dto moduleDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode module form: %w", err)
		}
		return &form.Module{Pos: dto.Pos.pos(), Name: dto.Name, Params: dto.Params}, nil

	case kindFile:
		var dto fileDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode file marker form: %w", err)
		}
		return &form.FileMarker{Pos: dto.Pos.pos(), File: dto.File, Line: dto.Line}, nil

	case kindAttribute:
		var dto attributeDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode attribute form: %w", err)
		}
		return &form.Attribute{Pos: dto.Pos.pos(), Name: dto.Name, Value: dto.Value.e}, nil

	case kindExport:
		var dto exportDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode export form: %w", err)
		}
		return &form.Export{Pos: dto.Pos.pos(), Funcs: dtoNameArities(dto.Funcs)}, nil

	case kindFunction, kindRule:
		var dto funcDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode %s form: %w", kind.Form, err)
		}
		clauses := make([]form.Clause, len(dto.Clauses))
		for i, c := range dto.Clauses {
			clauses[i] = form.Clause{
				Pos:      c.Pos.pos(),
				Patterns: nodeExprs(c.Patterns),
				Guard:    nodeExprs(c.Guard),
				Body:     nodeExprs(c.Body),
			}
		}
		if kind.Form == kindRule {
			return &form.Rule{Pos: dto.Pos.pos(), Name: dto.Name, Clauses: clauses}, nil
		}
		return &form.Function{Pos: dto.Pos.pos(), Name: dto.Name, Clauses: clauses}, nil

	case kindError:
		var dto errorDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode error marker form: %w", err)
		}
		var k form.ErrorKind
		if err := k.UnmarshalText([]byte(dto.Kind)); err != nil {
			return nil, fmt.Errorf("decode error marker form: %w", err)
		}
		return &form.ErrorMarker{Pos: dto.Pos.pos(), Origin: dto.Origin, Kind: k}, nil

	case kindOpaque:
		var dto opaqueDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode opaque form: %w", err)
		}
		return &form.Opaque{Pos: dto.Pos.pos(), Text: dto.Text}, nil

	default:
		return nil, fmt.Errorf("unknown form kind %q", kind.Form)
	}
}

func decodeExpr(node *yaml.Node) (form.Expr, error) {
	if node.Kind == yaml.ScalarNode {
		var text string
		if err := node.Decode(&text); err != nil {
			return nil, fmt.Errorf("decode term shorthand: %w", err)
		}
		return &form.Term{Text: text}, nil
	}

	var kind struct {
		Expr string `yaml:"expr"`
	}
	if err := node.Decode(&kind); err != nil {
		return nil, fmt.Errorf("read expression kind: %w", err)
	}

	switch kind.Expr {
	case kindTerm:
		var dto termDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode term: %w", err)
		}
		return &form.Term{Pos: dto.Pos.pos(), Text: dto.Text}, nil

	case kindGenerator, kindBinGen:
		var dto generatorDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode %s: %w", kind.Expr, err)
		}
		if kind.Expr == kindBinGen {
			return &form.BinaryGenerator{Pos: dto.Pos.pos(), Pattern: dto.Pattern.e, Source: dto.Source.e}, nil
		}
		return &form.Generator{Pos: dto.Pos.pos(), Pattern: dto.Pattern.e, Source: dto.Source.e}, nil

	case kindMatch:
		var dto matchDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode match: %w", err)
		}
		return &form.Match{Pos: dto.Pos.pos(), Pattern: dto.Pattern.e, Value: dto.Value.e}, nil

	case kindCall:
		var dto callDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode call: %w", err)
		}
		return &form.Call{
			Pos:  dto.Pos.pos(),
			Ref:  form.Ref{Module: dto.Ref.Module, Name: dto.Ref.Name},
			Args: nodeExprs(dto.Args),
		}, nil

	case kindQuote:
		var dto quoteDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode quote: %w", err)
		}
		return &form.Quoted{Pos: dto.Pos.pos(), Expr: dto.Value.e}, nil

	case kindRuleList:
		var dto ruleListDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode rules literal: %w", err)
		}
		return &form.NameArityList{Pos: dto.Pos.pos(), Pairs: dtoNameArities(dto.Pairs)}, nil

	default:
		return nil, fmt.Errorf("unknown expression kind %q", kind.Expr)
	}
}
