package classdef

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/teranos/classbuilder/classbuilder"
	"github.com/teranos/classbuilder/errors"
)

func TestRender_MainDefinition(t *testing.T) {
	def, err := Parse([]byte(mainTOML), FormatTOML)
	require.NoError(t, err)

	out, err := Render(def, zap.NewNop().Sugar(), nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "using core;\n"))
	assert.Contains(t, out, "public sealed class Main  : Base,IDisposable {\n")
	assert.Contains(t, out, "public  void Go () {\n noop \n}")
	assert.Contains(t, out, "private static int Sum (int a,int b) {\n return a + b; \n}")
	assert.Contains(t, out, "public   int Count { get; set; }\n")
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.NotContains(t, out, "namespace")
}

func TestApply_ClassOptionsPrecedeDeclaration(t *testing.T) {
	cb := classbuilder.New(nil)
	def := &Definition{Name: "Main", Qualifier: "abstract", Namespace: "App", Extends: []string{"Base"}}

	class, err := Apply(def, cb)
	require.NoError(t, err)

	assert.Same(t, cb, class.Builder())
	assert.Equal(t, "namespace  App", cb.Namespace())
	assert.Equal(t, "public abstract class Main  : Base {\n}\n", class.Render())
}

func TestApply_MethodReturnTypes(t *testing.T) {
	def := &Definition{
		Name: "Main",
		Methods: []MethodDef{
			{Name: "A"},
			{Name: "B", Returns: "Boolean"},
			{Name: "C", ReturnsTag: "Int64"},
			{Name: "D", Returns: "String", Async: true},
			{Name: "E", Async: true},
		},
	}

	out, err := Render(def, nil, &classbuilder.Config{ResetOnCreate: true})
	require.NoError(t, err)

	assert.Contains(t, out, "public  void A ()")
	assert.Contains(t, out, "public  bool B ()")
	assert.Contains(t, out, "public  Int64 C ()")
	assert.Contains(t, out, "public  async Task<string> D ()")
	assert.Contains(t, out, "public  async void E ()")
}

func TestApply_LegacyAsync(t *testing.T) {
	def := &Definition{Name: "Main", Methods: []MethodDef{{Name: "Run", Async: true}}}

	out, err := Render(def, nil, &classbuilder.Config{AsyncStyle: classbuilder.AsyncLegacy})
	require.NoError(t, err)
	assert.Contains(t, out, "public  Task<void> Run ()")
}

func TestApply_PropertyStateErrors(t *testing.T) {
	tests := []struct {
		name string
		prop PropertyDef
		want string
	}{
		{
			name: "readonly with getter",
			prop: PropertyDef{Name: "Count", Getter: true, ReadOnly: true},
			want: `property "Count": cannot be readonly`,
		},
		{
			name: "setter without getter",
			prop: PropertyDef{Name: "Count", Setter: true},
			want: `property "Count": cannot define a setter without a getter`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := &Definition{Name: "Main", Properties: []PropertyDef{tt.prop}}

			_, err := Render(def, nil, nil)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidPropertyStateError(err))
			assert.Contains(t, err.Error(), "class Main: property 1 (Count)")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestApply_ReadOnlyProperty(t *testing.T) {
	def := &Definition{Name: "Main", Properties: []PropertyDef{
		{Name: "Id", ReturnsTag: "Guid", ReadOnly: true, Qualifier: "static"},
	}}

	out, err := Render(def, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "public readonly static Guid Id {   }")
}

func TestApply_MemberOptionsCarryOverWithoutReset(t *testing.T) {
	def := &Definition{Name: "Main", Properties: []PropertyDef{
		{Name: "First", Returns: "String", Getter: true, Description: "documented"},
		{Name: "Second", Setter: true},
	}}

	// Without reset the first getter satisfies the second setter
	out, err := Render(def, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "documented"))
	assert.Contains(t, out, "public   string Second { get; set; }")

	// With reset the second property stands alone
	_, err = Render(def, nil, &classbuilder.Config{ResetOnCreate: true})
	assert.True(t, errors.IsInvalidPropertyStateError(err))
}

func TestApply_InvalidDefinition(t *testing.T) {
	_, err := Apply(&Definition{}, classbuilder.New(nil))
	assert.True(t, errors.IsInvalidDefinitionError(err))
}

func TestSample(t *testing.T) {
	def := Sample()
	require.NoError(t, def.Validate())

	out, err := Render(def, nil, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "using System;\nusing System.Threading.Tasks;\n"))
	assert.Contains(t, out, "/* <summary> My Test Class </summary> */")
	assert.Contains(t, out, "public sealed class Main  {")
	assert.Contains(t, out, "public  void HelloWorld () {\n Console.WriteLine(\"Hello World\") \n}")
	assert.Contains(t, out, "public   Boolean myGetProperty { get; set; }")
	assert.Contains(t, out, "private   dynamic myGetProperty2 { get; set; }")
	assert.Equal(t, 1, strings.Count(out, "This is my test property 2"))
}
