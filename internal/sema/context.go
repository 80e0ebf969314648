package sema

import "istudio/internal/ast"

// SymbolTable is a stack of frames, each mapping a name to the NodeId of its
// declaring node. An implicit global frame is always present.
type SymbolTable struct {
	scopes []map[string]ast.NodeId
}

// NewSymbolTable returns a table with a single global scope.
func NewSymbolTable() *SymbolTable {
	t := &SymbolTable{}
	t.PushScope()
	return t
}

func (t *SymbolTable) PushScope() {
	t.scopes = append(t.scopes, make(map[string]ast.NodeId))
}

func (t *SymbolTable) PopScope() {
	if len(t.scopes) > 1 {
		t.scopes = t.scopes[:len(t.scopes)-1]
	}
}

// Insert writes to the top frame only, returning false on a same-frame
// collision.
func (t *SymbolTable) Insert(name string, id ast.NodeId) bool {
	if len(t.scopes) == 0 {
		t.PushScope()
	}
	top := t.scopes[len(t.scopes)-1]
	if _, exists := top[name]; exists {
		return false
	}
	top[name] = id
	return true
}

// Lookup searches top-down and returns NoNode if name is not declared.
func (t *SymbolTable) Lookup(name string) ast.NodeId {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if id, ok := t.scopes[i][name]; ok {
			return id
		}
	}
	return NoNode
}

// FunctionParameter is one entry in a FunctionSignature's parameter list.
type FunctionParameter struct {
	Name string
	Node ast.NodeId
	Type Type
}

// FunctionSignature is the registry's record for one declared function.
// Its identity is stable once declared; Parameters and ReturnType are
// refined in place as inference proceeds.
type FunctionSignature struct {
	Name       string
	Node       ast.NodeId
	Parameters []FunctionParameter
	ReturnType Type
}

// FunctionRegistry is a bimap of name -> *FunctionSignature and
// NodeId -> *FunctionSignature. Keying under name is exclusive: a duplicate
// declaration diagnoses and reuses the first entry. order records insertion
// order so callers (e.g. IR lowering) can iterate deterministically instead
// of ranging over the maps directly.
type FunctionRegistry struct {
	byName map[string]*FunctionSignature
	byNode map[ast.NodeId]*FunctionSignature
	order  []*FunctionSignature
}

func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		byName: make(map[string]*FunctionSignature),
		byNode: make(map[ast.NodeId]*FunctionSignature),
	}
}

// Declare registers signature under its name. If the name is already taken,
// the existing entry is returned with inserted=false.
func (r *FunctionRegistry) Declare(signature FunctionSignature) (entry *FunctionSignature, inserted bool) {
	if existing, ok := r.byName[signature.Name]; ok {
		return existing, false
	}
	entry = &signature
	r.byName[signature.Name] = entry
	r.byNode[signature.Node] = entry
	r.order = append(r.order, entry)
	return entry, true
}

func (r *FunctionRegistry) LookupByName(name string) *FunctionSignature {
	return r.byName[name]
}

func (r *FunctionRegistry) LookupByNode(id ast.NodeId) *FunctionSignature {
	return r.byNode[id]
}

// Declarations returns every registered signature in declaration order.
func (r *FunctionRegistry) Declarations() []*FunctionSignature {
	return r.order
}

// TypeTable maps every analyzed NodeId to its inferred Type.
type TypeTable struct {
	types map[ast.NodeId]Type
}

func NewTypeTable() *TypeTable {
	return &TypeTable{types: make(map[ast.NodeId]Type)}
}

func (t *TypeTable) Set(id ast.NodeId, ty Type) { t.types[id] = ty }

func (t *TypeTable) Get(id ast.NodeId) Type {
	if ty, ok := t.types[id]; ok {
		return ty
	}
	return Type{}
}

func (t *TypeTable) Contains(id ast.NodeId) bool {
	_, ok := t.types[id]
	return ok
}

// SemanticContext bundles the symbol table and function registry built
// while analyzing one module.
type SemanticContext struct {
	Symbols   *SymbolTable
	Functions *FunctionRegistry
}

func NewSemanticContext() *SemanticContext {
	return &SemanticContext{
		Symbols:   NewSymbolTable(),
		Functions: NewFunctionRegistry(),
	}
}
