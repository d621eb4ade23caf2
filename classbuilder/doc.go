// Package classbuilder assembles C#-style class source text through fluent builders.
//
// A ClassBuilder owns one output buffer and one import buffer. It composes a
// MethodBuilder and a PropertyBuilder that append into the same output buffer,
// so members appear in the order they are built:
//
//	cb := classbuilder.New(log)
//	class := cb.AsSealed().
//	    ImportPackage("System").
//	    CreateClass("Main", classbuilder.Public, "Entry point").
//	    Build()
//
//	class.Methods().
//	    CreateMethod("Go", classbuilder.Public).
//	    AsVoid().
//	    AddCodeBlack("noop()").
//	    Build()
//
//	out := class.Render()
//
// The builders only concatenate configured fragments into a fixed template;
// nothing checks that the result is valid C#.
//
// State rules worth knowing:
//   - The class line is rendered once, by CreateClass. Qualifiers and extenders
//     set afterwards do not change it.
//   - Method and property builders are reused across members. Unless
//     Config.ResetOnCreate is set, fields not overwritten by the caller carry
//     over from the previous member.
//   - Build on a member appends on every call; Render appends the closing brace
//     on every call.
//
// A ClassBuilder is not safe for concurrent use.
package classbuilder
