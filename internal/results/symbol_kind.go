package results

import "go.lsp.dev/protocol"

// SymbolKind is the display name of an LSP symbol kind
type SymbolKind string

const (
	SymbolKindFile          SymbolKind = "file"
	SymbolKindModule        SymbolKind = "module"
	SymbolKindNamespace     SymbolKind = "namespace"
	SymbolKindPackage       SymbolKind = "package"
	SymbolKindClass         SymbolKind = "class"
	SymbolKindMethod        SymbolKind = "method"
	SymbolKindProperty      SymbolKind = "property"
	SymbolKindField         SymbolKind = "field"
	SymbolKindConstructor   SymbolKind = "constructor"
	SymbolKindEnum          SymbolKind = "enum"
	SymbolKindInterface     SymbolKind = "interface"
	SymbolKindFunction      SymbolKind = "function"
	SymbolKindVariable      SymbolKind = "variable"
	SymbolKindConstant      SymbolKind = "constant"
	SymbolKindString        SymbolKind = "string"
	SymbolKindNumber        SymbolKind = "number"
	SymbolKindBoolean       SymbolKind = "boolean"
	SymbolKindArray         SymbolKind = "array"
	SymbolKindObject        SymbolKind = "object"
	SymbolKindKey           SymbolKind = "key"
	SymbolKindNull          SymbolKind = "null"
	SymbolKindEnumMember    SymbolKind = "enum_member"
	SymbolKindStruct        SymbolKind = "struct"
	SymbolKindEvent         SymbolKind = "event"
	SymbolKindOperator      SymbolKind = "operator"
	SymbolKindTypeParameter SymbolKind = "type_parameter"
	SymbolKindUnknown       SymbolKind = "unknown"
)

var symbolKindMap = map[protocol.SymbolKind]SymbolKind{
	protocol.SymbolKindFile:          SymbolKindFile,
	protocol.SymbolKindModule:        SymbolKindModule,
	protocol.SymbolKindNamespace:     SymbolKindNamespace,
	protocol.SymbolKindPackage:       SymbolKindPackage,
	protocol.SymbolKindClass:         SymbolKindClass,
	protocol.SymbolKindMethod:        SymbolKindMethod,
	protocol.SymbolKindProperty:      SymbolKindProperty,
	protocol.SymbolKindField:         SymbolKindField,
	protocol.SymbolKindConstructor:   SymbolKindConstructor,
	protocol.SymbolKindEnum:          SymbolKindEnum,
	protocol.SymbolKindInterface:     SymbolKindInterface,
	protocol.SymbolKindFunction:      SymbolKindFunction,
	protocol.SymbolKindVariable:      SymbolKindVariable,
	protocol.SymbolKindConstant:      SymbolKindConstant,
	protocol.SymbolKindString:        SymbolKindString,
	protocol.SymbolKindNumber:        SymbolKindNumber,
	protocol.SymbolKindBoolean:       SymbolKindBoolean,
	protocol.SymbolKindArray:         SymbolKindArray,
	protocol.SymbolKindObject:        SymbolKindObject,
	protocol.SymbolKindKey:           SymbolKindKey,
	protocol.SymbolKindNull:          SymbolKindNull,
	protocol.SymbolKindEnumMember:    SymbolKindEnumMember,
	protocol.SymbolKindStruct:        SymbolKindStruct,
	protocol.SymbolKindEvent:         SymbolKindEvent,
	protocol.SymbolKindOperator:      SymbolKindOperator,
	protocol.SymbolKindTypeParameter: SymbolKindTypeParameter,
}

// NewSymbolKind returns the SymbolKind for a given LSP symbol kind number
func NewSymbolKind(kind int) SymbolKind {
	symbolKind, ok := symbolKindMap[protocol.SymbolKind(kind)]
	if !ok {
		return SymbolKindUnknown
	}
	return symbolKind
}
