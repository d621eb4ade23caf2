// Package classdef describes classes declaratively and renders them through
// classbuilder. Definitions are read from TOML or YAML files:
//
//	name = "Main"
//	modifier = "public"
//	qualifier = "sealed"
//	imports = ["System"]
//
//	[[methods]]
//	name = "HelloWorld"
//	returns = "void"
//	body = 'Console.WriteLine("Hello World")'
//
//	[[properties]]
//	name = "Count"
//	returns = "Integer"
//	getter = true
//	setter = true
package classdef

import (
	"github.com/teranos/classbuilder/classbuilder"
	"github.com/teranos/classbuilder/errors"
	"github.com/teranos/classbuilder/typemap"
)

// Definition describes one class
type Definition struct {
	Name        string        `toml:"name" yaml:"name"`
	Modifier    string        `toml:"modifier" yaml:"modifier"`   // public (default), private, internal, protected
	Qualifier   string        `toml:"qualifier" yaml:"qualifier"` // static, sealed, abstract or empty
	Description string        `toml:"description" yaml:"description"`
	Namespace   string        `toml:"namespace" yaml:"namespace"` // tracked, never rendered
	Extends     []string      `toml:"extends" yaml:"extends"`
	Imports     []string      `toml:"imports" yaml:"imports"`
	Methods     []MethodDef   `toml:"methods" yaml:"methods"`
	Properties  []PropertyDef `toml:"properties" yaml:"properties"`
}

// MethodDef describes one method
type MethodDef struct {
	Name        string   `toml:"name" yaml:"name"`
	Modifier    string   `toml:"modifier" yaml:"modifier"`
	Qualifier   string   `toml:"qualifier" yaml:"qualifier"`
	Returns     string   `toml:"returns" yaml:"returns"`         // logical type name; empty or "void" renders void
	ReturnsTag  string   `toml:"returns_tag" yaml:"returns_tag"` // type tag name (Boolean, Int32, ...)
	Async       bool     `toml:"async" yaml:"async"`
	Args        []string `toml:"args" yaml:"args"`
	Body        string   `toml:"body" yaml:"body"`
	Description string   `toml:"description" yaml:"description"`
}

// PropertyDef describes one property
type PropertyDef struct {
	Name        string `toml:"name" yaml:"name"`
	Modifier    string `toml:"modifier" yaml:"modifier"`
	Qualifier   string `toml:"qualifier" yaml:"qualifier"` // static or abstract
	Returns     string `toml:"returns" yaml:"returns"`
	ReturnsTag  string `toml:"returns_tag" yaml:"returns_tag"`
	Getter      bool   `toml:"getter" yaml:"getter"`
	Setter      bool   `toml:"setter" yaml:"setter"`
	ReadOnly    bool   `toml:"readonly" yaml:"readonly"`
	Description string `toml:"description" yaml:"description"`
}

// Validate checks names, modifiers, qualifiers and return types. Accessor
// combinations are left to the property builder, which rejects them when the
// definition is applied.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return errors.NewInvalidDefinitionError("class name is required")
	}
	if _, err := parseModifier(d.Modifier); err != nil {
		return errors.Wrapf(invalid(err), "class %s", d.Name)
	}
	if _, err := classbuilder.ParseQualifier(d.Qualifier); err != nil {
		return errors.Wrapf(invalid(err), "class %s", d.Name)
	}

	for i, m := range d.Methods {
		if err := m.validate(); err != nil {
			return errors.Wrapf(err, "method %d", i+1)
		}
	}
	for i, p := range d.Properties {
		if err := p.validate(); err != nil {
			return errors.Wrapf(err, "property %d", i+1)
		}
	}
	return nil
}

func (m *MethodDef) validate() error {
	if m.Name == "" {
		return errors.NewInvalidDefinitionError("name is required")
	}
	if _, err := parseModifier(m.Modifier); err != nil {
		return errors.Wrap(invalid(err), m.Name)
	}
	if _, err := classbuilder.ParseQualifier(m.Qualifier); err != nil {
		return errors.Wrap(invalid(err), m.Name)
	}
	return validateReturns(m.Name, m.Returns, m.ReturnsTag)
}

func (p *PropertyDef) validate() error {
	if p.Name == "" {
		return errors.NewInvalidDefinitionError("name is required")
	}
	if _, err := parseModifier(p.Modifier); err != nil {
		return errors.Wrap(invalid(err), p.Name)
	}
	q, err := classbuilder.ParseQualifier(p.Qualifier)
	if err != nil {
		return errors.Wrap(invalid(err), p.Name)
	}
	if q == classbuilder.Sealed {
		return errors.NewInvalidDefinitionError("%s: properties cannot be sealed", p.Name)
	}
	return validateReturns(p.Name, p.Returns, p.ReturnsTag)
}

func validateReturns(name, returns, tag string) error {
	if returns != "" && tag != "" {
		return errors.NewInvalidDefinitionError("%s: returns and returns_tag are mutually exclusive", name)
	}
	if tag != "" {
		if _, err := typemap.ParseTag(tag); err != nil {
			return errors.Wrap(invalid(err), name)
		}
	}
	return nil
}

// parseModifier treats an empty modifier as public
func parseModifier(s string) (classbuilder.Modifier, error) {
	if s == "" {
		return classbuilder.Public, nil
	}
	return classbuilder.ParseModifier(s)
}

// invalid marks err as an invalid-definition error while keeping its message
func invalid(err error) error {
	return errors.Wrap(errors.ErrInvalidDefinition, err.Error())
}
