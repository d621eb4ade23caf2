package classbuilder

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/classbuilder/logger"
	"github.com/teranos/classbuilder/typemap"
)

// methodDescriptor is the accumulated state of the method being defined
type methodDescriptor struct {
	comments   string
	modifier   string
	qualifier  Qualifier
	name       string
	args       string
	code       string
	returnType string
}

// MethodBuilder configures and renders methods into the class body.
// One MethodBuilder serves every method of its class.
type MethodBuilder struct {
	out    *strings.Builder
	owner  *Element
	desc   methodDescriptor
	logger *zap.SugaredLogger
	config Config
}

func newMethodBuilder(out *strings.Builder, owner *Element, log *zap.SugaredLogger, config Config) *MethodBuilder {
	return &MethodBuilder{
		out:    out,
		owner:  owner,
		logger: log,
		config: config,
	}
}

// CreateMethod starts a method definition. Only name and modifier are set;
// other fields keep their previous values unless Config.ResetOnCreate is on.
func (mb *MethodBuilder) CreateMethod(name string, modifier Modifier) *MethodBuilder {
	if mb.config.ResetOnCreate {
		mb.desc = methodDescriptor{}
	}
	mb.desc.name = name
	mb.desc.modifier = modifier.keyword()
	return mb
}

// WithArguments sets the parameter list, replacing any previous one
func (mb *MethodBuilder) WithArguments(args ...string) *MethodBuilder {
	mb.desc.args = strings.Join(args, ",")
	return mb
}

// AsVoid sets the return type to void
func (mb *MethodBuilder) AsVoid() *MethodBuilder {
	mb.desc.returnType = "void"
	return mb
}

// WithAsync rewrites the current return type as asynchronous according to
// Config.AsyncStyle. Call it after the return type is set.
func (mb *MethodBuilder) WithAsync() *MethodBuilder {
	mb.desc.returnType = asyncReturnType(mb.desc.returnType, mb.config.AsyncStyle)
	return mb
}

func asyncReturnType(returnType string, style AsyncStyle) string {
	if style == AsyncLegacy {
		return "Task<" + returnType + ">"
	}

	switch {
	case returnType == "void":
		return "async void"
	case returnType == "":
		return "async Task"
	case strings.HasPrefix(returnType, "async "):
		return returnType
	default:
		return "async Task<" + returnType + ">"
	}
}

// AsReturnWithType sets the return type to the type name of the tag
func (mb *MethodBuilder) AsReturnWithType(tag typemap.Tag) *MethodBuilder {
	mb.desc.returnType = tag.Name()
	return mb
}

// AsReturnWith sets the return type from a logical type name, normalized
// through typemap.Normalize
func (mb *MethodBuilder) AsReturnWith(typeName string) *MethodBuilder {
	mb.desc.returnType = typemap.Normalize(typeName)
	return mb
}

// AddMethodDescription sets the banner comment rendered above the method
func (mb *MethodBuilder) AddMethodDescription(description string) *MethodBuilder {
	mb.desc.comments = banner(description)
	return mb
}

// AddCodeBlack sets the method body. The text is rendered verbatim.
func (mb *MethodBuilder) AddCodeBlack(code string) *MethodBuilder {
	mb.desc.code = code
	return mb
}

// AddCodeBlock is AddCodeBlack under its intended name
func (mb *MethodBuilder) AddCodeBlock(code string) *MethodBuilder {
	return mb.AddCodeBlack(code)
}

// AsStatic sets the method qualifier to static
func (mb *MethodBuilder) AsStatic() *MethodBuilder {
	mb.desc.qualifier = Static
	return mb
}

// AsSealed sets the method qualifier to sealed
func (mb *MethodBuilder) AsSealed() *MethodBuilder {
	mb.desc.qualifier = Sealed
	return mb
}

// AsAbstract sets the method qualifier to abstract
func (mb *MethodBuilder) AsAbstract() *MethodBuilder {
	mb.desc.qualifier = Abstract
	return mb
}

// Build appends the current method to the class body. The descriptor is
// kept, so calling Build twice renders the method twice.
func (mb *MethodBuilder) Build() *MethodBuilder {
	d := mb.desc
	mb.out.WriteString(d.comments + "\n")
	fmt.Fprintf(mb.out, "%s %s %s %s (%s) {\n %s \n} \n\n",
		d.modifier, d.qualifier, d.returnType, d.name, d.args, d.code)

	mb.logger.Debugw("Rendered method",
		logger.FieldMethod, d.name,
		logger.FieldModifier, d.modifier,
		logger.FieldQualifier, string(d.qualifier))
	return mb
}

// Class returns the class the method belongs to
func (mb *MethodBuilder) Class() *Element {
	return mb.owner
}
