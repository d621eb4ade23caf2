package classdef

import (
	"go.uber.org/zap"

	"github.com/teranos/classbuilder/classbuilder"
	"github.com/teranos/classbuilder/errors"
	"github.com/teranos/classbuilder/typemap"
)

// Render builds def with a fresh class builder and returns the rendered text.
// Pass nil config to use builder defaults.
func Render(def *Definition, log *zap.SugaredLogger, config *classbuilder.Config) (string, error) {
	cb := classbuilder.NewWithConfig(log, config)
	class, err := Apply(def, cb)
	if err != nil {
		return "", err
	}
	return class.Render(), nil
}

// Apply drives cb through def. Class-level options are applied before the
// class line is rendered; members are built in definition order. Unless cb
// was created with ResetOnCreate, options a member leaves unset (qualifier,
// description, accessors) carry over from the previous member of its kind.
func Apply(def *Definition, cb *classbuilder.ClassBuilder) (*classbuilder.Element, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	// Validate has already checked every name below
	modifier, _ := parseModifier(def.Modifier)
	qualifier, _ := classbuilder.ParseQualifier(def.Qualifier)

	if def.Namespace != "" {
		cb.WithNamespace(def.Namespace)
	}
	for _, ext := range def.Extends {
		cb.ExtendWith(ext)
	}
	switch qualifier {
	case classbuilder.Static:
		cb.AsStatic()
	case classbuilder.Sealed:
		cb.AsSealed()
	case classbuilder.Abstract:
		cb.AsAbstract()
	}
	for _, pkg := range def.Imports {
		cb.ImportPackage(pkg)
	}

	class := cb.CreateClass(def.Name, modifier, def.Description).Build()

	for _, m := range def.Methods {
		applyMethod(class.Methods(), m)
	}
	for i, p := range def.Properties {
		if err := applyProperty(class.Properties(), p); err != nil {
			return nil, errors.Wrapf(err, "class %s: property %d (%s)", def.Name, i+1, p.Name)
		}
	}
	return class, nil
}

func applyMethod(mb *classbuilder.MethodBuilder, m MethodDef) {
	modifier, _ := parseModifier(m.Modifier)
	qualifier, _ := classbuilder.ParseQualifier(m.Qualifier)

	mb.CreateMethod(m.Name, modifier)
	switch qualifier {
	case classbuilder.Static:
		mb.AsStatic()
	case classbuilder.Sealed:
		mb.AsSealed()
	case classbuilder.Abstract:
		mb.AsAbstract()
	}

	switch {
	case m.ReturnsTag != "":
		tag, _ := typemap.ParseTag(m.ReturnsTag)
		mb.AsReturnWithType(tag)
	case m.Returns == "" || m.Returns == "void":
		mb.AsVoid()
	default:
		mb.AsReturnWith(m.Returns)
	}
	if m.Async {
		mb.WithAsync()
	}

	mb.WithArguments(m.Args...)
	mb.AddCodeBlack(m.Body)
	if m.Description != "" {
		mb.AddMethodDescription(m.Description)
	}
	mb.Build()
}

// applyProperty sets accessors in the order Getter, ReadOnly, Setter so that
// readonly+getter and setter-without-getter definitions are rejected by the
// property builder
func applyProperty(pb *classbuilder.PropertyBuilder, p PropertyDef) error {
	modifier, _ := parseModifier(p.Modifier)
	qualifier, _ := classbuilder.ParseQualifier(p.Qualifier)

	pb.CreateProperty(p.Name, modifier)
	switch qualifier {
	case classbuilder.Static:
		pb.AsStatic()
	case classbuilder.Abstract:
		pb.AsAbstract()
	}

	switch {
	case p.ReturnsTag != "":
		tag, _ := typemap.ParseTag(p.ReturnsTag)
		pb.AsReturnWithType(tag)
	case p.Returns != "":
		pb.AsReturnWith(p.Returns)
	}

	if p.Getter {
		pb.Getter()
	}
	if p.ReadOnly {
		if _, err := pb.ReadOnly(); err != nil {
			return err
		}
	}
	if p.Setter {
		if _, err := pb.Setter(); err != nil {
			return err
		}
	}

	if p.Description != "" {
		pb.AddPropertyDescription(p.Description)
	}
	pb.Build()
	return nil
}
