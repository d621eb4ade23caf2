package classbuilder

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/classbuilder/logger"
)

// ClassBuilder renders one class declaration and everything built into it
type ClassBuilder struct {
	out     *strings.Builder
	imports *strings.Builder

	name      string
	namespace string
	qualifier Qualifier
	extenders []string
	created   bool

	methods    *MethodBuilder
	properties *PropertyBuilder
	element    *Element

	logger *zap.SugaredLogger
	config Config
}

// Element is a built class. It can spawn member builders and render the result.
type Element struct {
	cb *ClassBuilder
}

// New creates a class builder with the default configuration.
// A nil logger disables logging.
func New(log *zap.SugaredLogger) *ClassBuilder {
	return NewWithConfig(log, nil)
}

// NewWithConfig creates a class builder with custom behavior.
// Pass nil config to use defaults.
func NewWithConfig(log *zap.SugaredLogger, config *Config) *ClassBuilder {
	if config == nil {
		config = DefaultConfig()
	}

	cb := &ClassBuilder{
		out:       &strings.Builder{},
		imports:   &strings.Builder{},
		namespace: "namespace ",
		logger:    logger.OrNop(log),
		config:    *config,
	}
	cb.element = &Element{cb: cb}
	cb.methods = newMethodBuilder(cb.out, cb.element, cb.logger, cb.config)
	cb.properties = newPropertyBuilder(cb.out, cb.element, cb.logger, cb.config)
	return cb
}

// CreateClass renders the class declaration line and opens the class body.
// A non-empty description is rendered as a banner comment first. Extenders
// and the qualifier must be set before this call to appear in the line.
func (cb *ClassBuilder) CreateClass(name string, modifier Modifier, description string) *ClassBuilder {
	if description != "" {
		cb.out.WriteString(banner(description))
	}

	extender := ""
	if len(cb.extenders) > 0 {
		extender = " : " + strings.Join(cb.extenders, ",")
	}

	fmt.Fprintf(cb.out, "%s %s class %s %s {\n", modifier.keyword(), cb.qualifier, name, extender)

	cb.name = name
	cb.created = true
	cb.logger.Debugw("Rendered class declaration",
		logger.FieldClass, name,
		logger.FieldModifier, modifier.String(),
		logger.FieldQualifier, string(cb.qualifier),
		logger.FieldCount, len(cb.extenders))
	return cb
}

// WithNamespace appends ns to the tracked namespace declaration. The
// namespace is metadata for the caller; it is never rendered.
func (cb *ClassBuilder) WithNamespace(ns string) *ClassBuilder {
	cb.namespace += " " + ns
	return cb
}

// ExtendWith adds a base class or interface to the extends clause
func (cb *ClassBuilder) ExtendWith(name string) *ClassBuilder {
	if cb.created {
		cb.logger.Warnw("Extender added after class declaration was rendered; it will not appear in the output",
			logger.FieldClass, cb.name,
			logger.FieldExtender, name)
	}
	cb.extenders = append(cb.extenders, name)
	return cb
}

// AsStatic sets the class qualifier to static
func (cb *ClassBuilder) AsStatic() *ClassBuilder {
	return cb.setQualifier(Static)
}

// AsSealed sets the class qualifier to sealed
func (cb *ClassBuilder) AsSealed() *ClassBuilder {
	return cb.setQualifier(Sealed)
}

// AsAbstract sets the class qualifier to abstract
func (cb *ClassBuilder) AsAbstract() *ClassBuilder {
	return cb.setQualifier(Abstract)
}

func (cb *ClassBuilder) setQualifier(q Qualifier) *ClassBuilder {
	if cb.created {
		cb.logger.Warnw("Class qualifier changed after class declaration was rendered; it will not appear in the output",
			logger.FieldClass, cb.name,
			logger.FieldQualifier, string(q))
	}
	cb.qualifier = q
	return cb
}

// ImportPackage adds a using directive. Imports render ahead of the class
// regardless of when they are added.
func (cb *ClassBuilder) ImportPackage(name string) *ClassBuilder {
	fmt.Fprintf(cb.imports, "using %s;\n", name)
	cb.logger.Debugw("Added import",
		logger.FieldClass, cb.name,
		logger.FieldImport, name)
	return cb
}

// Methods returns the shared method builder
func (cb *ClassBuilder) Methods() *MethodBuilder {
	return cb.methods
}

// Properties returns the shared property builder
func (cb *ClassBuilder) Properties() *PropertyBuilder {
	return cb.properties
}

// Build finishes class-level configuration
func (cb *ClassBuilder) Build() *Element {
	return cb.element
}

// Render closes the class body and returns imports followed by the class.
// Every call appends another closing brace, so call it once per class.
func (cb *ClassBuilder) Render() string {
	cb.out.WriteString("}\n")
	text := cb.imports.String() + cb.out.String()
	cb.logger.Debugw("Rendered class",
		logger.FieldClass, cb.name,
		logger.FieldSize, len(text))
	return text
}

// Name returns the class name given to CreateClass
func (cb *ClassBuilder) Name() string {
	return cb.name
}

// Namespace returns the accumulated namespace declaration
func (cb *ClassBuilder) Namespace() string {
	return cb.namespace
}

// Qualifier returns the current class qualifier
func (cb *ClassBuilder) Qualifier() Qualifier {
	return cb.qualifier
}

// Extenders returns a copy of the registered extenders in call order
func (cb *ClassBuilder) Extenders() []string {
	return append([]string(nil), cb.extenders...)
}

// Methods returns the shared method builder
func (e *Element) Methods() *MethodBuilder {
	return e.cb.methods
}

// Properties returns the shared property builder
func (e *Element) Properties() *PropertyBuilder {
	return e.cb.properties
}

// Render closes the class body and returns the full text. See ClassBuilder.Render.
func (e *Element) Render() string {
	return e.cb.Render()
}

// Builder returns the class builder behind the element
func (e *Element) Builder() *ClassBuilder {
	return e.cb
}
