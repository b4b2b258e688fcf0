package form

// Module represents a module declaration attribute. A declaration carrying
// parameters is illegal and gets reported, yet the form itself is preserved
// untouched in the output.
//
//	-module(routes).           // Name: "routes"
//	-module(routes, [A, B]).   // Name: "routes", Params: ["A", "B"]
type Module struct {
	Pos    Pos
	Name   string
	Params []string
}

// Parameterized reports whether the declaration carries parameters.
func (m *Module) Parameterized() bool {
	return m.Params != nil
}

// FileMarker restates the current source location for the forms that
// follow it. Later markers override earlier ones.
//
//	-file("routes.rl", 14). // File: "routes.rl", Line: 14
type FileMarker struct {
	Pos  Pos
	File string
	Line int
}

// Attribute is any other attribute form. The transform has no interest in
// its meaning and carries it through verbatim.
//
//	-author("nid"). // Name: "author", Value: <Term>("nid")
type Attribute struct {
	Pos   Pos
	Name  string
	Value Expr
}

// Export enumerates the functions visible outside the module.
//
//	-export([rule_info/0, route/2]). // Funcs: [{rule_info, 0}, {route, 2}]
type Export struct {
	Pos   Pos
	Funcs []NameArity
}

func (m *Module) isForm()          {}
func (m *Module) isAttr()          {}
func (m *Module) FormPos() Pos     { return m.Pos }
func (m *FileMarker) isForm()      {}
func (m *FileMarker) isAttr()      {}
func (m *FileMarker) FormPos() Pos { return m.Pos }
func (a *Attribute) isForm()       {}
func (a *Attribute) isAttr()       {}
func (a *Attribute) FormPos() Pos  { return a.Pos }
func (e *Export) isForm()          {}
func (e *Export) isAttr()          {}
func (e *Export) FormPos() Pos     { return e.Pos }
