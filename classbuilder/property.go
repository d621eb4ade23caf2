package classbuilder

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/classbuilder/errors"
	"github.com/teranos/classbuilder/logger"
	"github.com/teranos/classbuilder/typemap"
)

const (
	getterToken   = "get;"
	setterToken   = "set;"
	readonlyToken = "readonly"
)

// propertyDescriptor is the accumulated state of the property being defined
type propertyDescriptor struct {
	comments   string
	modifier   string
	name       string
	qualifier  Qualifier
	getter     string
	setter     string
	readonly   string
	returnType string
}

// PropertyBuilder configures and renders properties into the class body.
// One PropertyBuilder serves every property of its class.
type PropertyBuilder struct {
	out    *strings.Builder
	owner  *Element
	desc   propertyDescriptor
	logger *zap.SugaredLogger
	config Config
}

func newPropertyBuilder(out *strings.Builder, owner *Element, log *zap.SugaredLogger, config Config) *PropertyBuilder {
	return &PropertyBuilder{
		out:    out,
		owner:  owner,
		logger: log,
		config: config,
	}
}

// CreateProperty starts a property definition. Only name and modifier are
// set; other fields keep their previous values unless Config.ResetOnCreate is on.
func (pb *PropertyBuilder) CreateProperty(name string, modifier Modifier) *PropertyBuilder {
	if pb.config.ResetOnCreate {
		pb.desc = propertyDescriptor{}
	}
	pb.desc.name = name
	pb.desc.modifier = modifier.keyword()
	return pb
}

// AsReturnWithType sets the property type to the type name of the tag
func (pb *PropertyBuilder) AsReturnWithType(tag typemap.Tag) *PropertyBuilder {
	pb.desc.returnType = tag.Name()
	return pb
}

// AsReturnWith sets the property type from a logical type name, normalized
// through typemap.Normalize
func (pb *PropertyBuilder) AsReturnWith(typeName string) *PropertyBuilder {
	pb.desc.returnType = typemap.Normalize(typeName)
	return pb
}

// AddPropertyDescription sets the banner comment rendered above the property
func (pb *PropertyBuilder) AddPropertyDescription(description string) *PropertyBuilder {
	pb.desc.comments = banner(description)
	return pb
}

// AsStatic sets the property qualifier to static
func (pb *PropertyBuilder) AsStatic() *PropertyBuilder {
	pb.desc.qualifier = Static
	return pb
}

// AsAbstract sets the property qualifier to abstract.
// Properties have no sealed qualifier.
func (pb *PropertyBuilder) AsAbstract() *PropertyBuilder {
	pb.desc.qualifier = Abstract
	return pb
}

// Getter adds a get accessor
func (pb *PropertyBuilder) Getter() *PropertyBuilder {
	pb.desc.getter = getterToken
	return pb
}

// ReadOnly marks the property readonly. It fails with
// errors.ErrInvalidPropertyState when a getter is already set.
func (pb *PropertyBuilder) ReadOnly() (*PropertyBuilder, error) {
	if pb.desc.getter != "" {
		err := errors.NewInvalidPropertyStateError("property %q: cannot be readonly because a getter is already defined", pb.desc.name)
		return pb, errors.WithHint(err, "call ReadOnly() instead of Getter(), not after it")
	}
	pb.desc.readonly = readonlyToken
	return pb, nil
}

// Setter adds a set accessor. It fails with errors.ErrInvalidPropertyState
// when no getter is set yet.
func (pb *PropertyBuilder) Setter() (*PropertyBuilder, error) {
	if pb.desc.getter == "" {
		err := errors.NewInvalidPropertyStateError("property %q: cannot define a setter without a getter", pb.desc.name)
		return pb, errors.WithHint(err, "call Getter() before Setter()")
	}
	pb.desc.setter = setterToken
	return pb, nil
}

// Build appends the current property to the class body. The descriptor is
// kept, so calling Build twice renders the property twice.
func (pb *PropertyBuilder) Build() *PropertyBuilder {
	d := pb.desc
	pb.out.WriteString(d.comments + "\n")
	fmt.Fprintf(pb.out, "%s %s %s %s %s { %s %s }\n",
		d.modifier, d.readonly, d.qualifier, d.returnType, d.name, d.getter, d.setter)

	pb.logger.Debugw("Rendered property",
		logger.FieldProperty, d.name,
		logger.FieldModifier, d.modifier,
		logger.FieldQualifier, string(d.qualifier))
	return pb
}

// Class returns the class the property belongs to
func (pb *PropertyBuilder) Class() *Element {
	return pb.owner
}
