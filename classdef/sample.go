package classdef

// Sample returns the demonstration class rendered by `classgen sample`
func Sample() *Definition {
	return &Definition{
		Name:        "Main",
		Modifier:    "public",
		Qualifier:   "sealed",
		Description: "My Test Class",
		Namespace:   "Rizvis.Tester.App",
		Imports:     []string{"System", "System.Threading.Tasks"},
		Methods: []MethodDef{
			{
				Name:        "HelloWorld",
				Modifier:    "public",
				Returns:     "void",
				Body:        `Console.WriteLine("Hello World")`,
				Description: "My Hello World Method",
			},
		},
		Properties: []PropertyDef{
			{
				Name:        "myGetProperty",
				Modifier:    "public",
				ReturnsTag:  "Boolean",
				Getter:      true,
				Setter:      true,
				Description: "This is my test property 1",
			},
			{
				Name:        "myGetProperty2",
				Modifier:    "private",
				Returns:     "dynamic",
				Getter:      true,
				Setter:      true,
				Description: "This is my test property 2",
			},
		},
	}
}
