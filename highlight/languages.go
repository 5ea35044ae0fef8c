package highlight

import "strings"

const (
	// Double- and single-quoted literals stop at an unescaped line break.
	dqString = `"(?:\\.|[^"\\\n])*"`
	sqString = `'(?:\\.|[^'\\\n])*'`
)

func words(ws ...string) string {
	return `\b(?:` + strings.Join(ws, "|") + `)\b`
}

var jsKeywords = []string{
	"as", "async", "await", "break", "case", "catch", "class", "const",
	"continue", "debugger", "default", "delete", "do", "else", "export",
	"extends", "finally", "for", "from", "function", "get", "if", "import",
	"in", "instanceof", "let", "new", "of", "return", "set", "static", "super",
	"switch", "this", "throw", "try", "typeof", "var", "void", "while", "with",
	"yield",
}

var tsKeywords = []string{
	"abstract", "declare", "enum", "implements", "infer", "interface", "is",
	"keyof", "module", "namespace", "override", "private", "protected",
	"public", "readonly", "satisfies", "type", "unique",
}

const jsNumber = `(?<![\w$.])(?:0[xX][\da-fA-F_]+n?|0[bB][01_]+n?|0[oO][0-7_]+n?|\d[\d_]*(?:\.\d+)?(?:[eE][+-]?\d+)?n?|\.\d+(?:[eE][+-]?\d+)?)(?![\w$])`

func jsCommentsAndStrings() Rule {
	template := "`(?:\\\\[\\s\\S]|[^\\\\`])*`"
	return Rule{
		Pattern: `(?<comment>//[^\n]*|/\*[\s\S]*?\*/)|(?<string>` + dqString + `|` + sqString + `|` + template + `)`,
		Class:   ClassComment,
	}
}

func javascriptProfile() Profile {
	return Profile{
		Name:    "javascript",
		Aliases: []string{"js", "jsx", "mjs", "cjs"},
		Rules: []Rule{
			jsCommentsAndStrings(),
			{Pattern: words(jsKeywords...), Class: ClassKeyword},
			{Pattern: words("true", "false", "null", "undefined", "NaN", "Infinity"), Class: ClassConstant},
			{Pattern: jsNumber, Class: ClassNumber},
		},
	}
}

func typescriptProfile() Profile {
	kws := append(append([]string{}, jsKeywords...), tsKeywords...)
	return Profile{
		Name:    "typescript",
		Aliases: []string{"ts", "tsx", "mts", "cts"},
		Rules: []Rule{
			jsCommentsAndStrings(),
			{Pattern: words(kws...), Class: ClassKeyword},
			{Pattern: words("true", "false", "null", "undefined", "NaN", "Infinity"), Class: ClassConstant},
			{Pattern: words("any", "bigint", "boolean", "never", "number", "object", "string", "symbol", "unknown"), Class: ClassType},
			// Capitalised names in annotation position: `x: Foo`, `): Promise`.
			{Pattern: `(?<=[:|&]\s*)[A-Z][\w$]*`, Class: ClassType},
			// Names introduced by declarations and heritage clauses.
			{Pattern: `(?<=\b(?:class|interface|type|enum|extends|implements)\s+)[A-Za-z_$][\w$]*`, Class: ClassType},
			// Generic arguments: Array<Item>.
			{Pattern: `(?<=<\s*)[A-Z][\w$]*(?=\s*[,>\[])`, Class: ClassType},
			{Pattern: jsNumber, Class: ClassNumber},
		},
	}
}

func pythonProfile() Profile {
	str := `(?:\b[rRbBuUfF]{1,2})?(?:"""[\s\S]*?"""|'''[\s\S]*?'''|` + dqString + `|` + sqString + `)`
	return Profile{
		Name:    "python",
		Aliases: []string{"py", "python3", "pyw"},
		Rules: []Rule{
			{Pattern: `(?<string>` + str + `)|(?<comment>#[^\n]*)`, Class: ClassString},
			{Pattern: words(
				"and", "as", "assert", "async", "await", "break", "case", "class",
				"continue", "def", "del", "elif", "else", "except", "finally", "for",
				"from", "global", "if", "import", "in", "is", "lambda", "match",
				"nonlocal", "not", "or", "pass", "raise", "return", "try", "while",
				"with", "yield",
			), Class: ClassKeyword},
			{Pattern: words("True", "False", "None", "self", "cls"), Class: ClassConstant},
			{Pattern: `(?<=\bclass\s+)[A-Za-z_]\w*`, Class: ClassType},
			{Pattern: `(?<![\w.])(?:0[xX][\da-fA-F_]+|0[bB][01_]+|0[oO][0-7_]+|\d[\d_]*(?:\.\d*)?(?:[eE][+-]?\d+)?[jJ]?|\.\d+(?:[eE][+-]?\d+)?[jJ]?)(?!\w)`, Class: ClassNumber},
		},
	}
}

func htmlProfile() Profile {
	return Profile{
		Name:    "html",
		Aliases: []string{"htm", "xhtml", "xml", "svg"},
		Rules: []Rule{
			{Pattern: `<!--[\s\S]*?-->`, Class: ClassComment},
			{Pattern: `<![A-Za-z][^>]*>`, Class: ClassKeyword},
			// Quoted attribute values, only inside a tag.
			{Pattern: `(?<=<[A-Za-z][^<>]*=\s*)(?:"[^"]*"|'[^']*')`, Class: ClassString},
			{Pattern: `</?[A-Za-z][\w:.-]*|(?<=</?[A-Za-z][^<>]*)/?>`, Class: ClassTag},
			{Pattern: `(?<=<[A-Za-z][^<>]*\s)[^\s"'<>/=]+`, Class: ClassAttribute},
			{Pattern: `&(?:[A-Za-z][A-Za-z0-9]*|#\d+|#[xX][\da-fA-F]+);`, Class: ClassConstant},
		},
	}
}

func cssProfile() Profile {
	return Profile{
		Name:    "css",
		Aliases: []string{"scss", "less"},
		Rules: []Rule{
			{Pattern: `(?<comment>/\*[\s\S]*?\*/)|(?<string>` + dqString + `|` + sqString + `)`, Class: ClassComment},
			{Pattern: `@[\w-]+|!important\b`, Class: ClassKeyword},
			{Pattern: `[^\s{};@][^{};]*?(?=\s*\{)`, Class: ClassSelector},
			{Pattern: `(?<=[{;]\s*)-{0,2}[A-Za-z][\w-]*(?=\s*:)`, Class: ClassProperty},
			{Pattern: `#[\da-fA-F]{3,8}\b`, Class: ClassConstant},
			{Pattern: `(?<![\w-])-?(?:\d+\.?\d*|\.\d+)(?:%|[A-Za-z]+)?`, Class: ClassNumber},
		},
	}
}

func builtinProfiles() []Profile {
	return []Profile{
		javascriptProfile(),
		typescriptProfile(),
		pythonProfile(),
		htmlProfile(),
		cssProfile(),
	}
}
