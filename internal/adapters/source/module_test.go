package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeModule(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "line comment with apostrophe", in: "a: 1, // won't be included\nb: 2", want: "a: 1, \nb: 2"},
		{name: "block comment", in: "a: /* note */ 'x'", want: `a:   "x"`},
		{name: "comment markers inside strings", in: `a: "http://x/*y*/"`, want: `a: "http://x/*y*/"`},
		{name: "single quotes with double quotes inside", in: `m: 'Valor com "aspas"'`, want: `m: "Valor com \"aspas\""`},
		{name: "escaped single quote", in: `m: 'it\'s'`, want: `m: "it's"`},
		{name: "escape sequences are kept", in: `m: "a\nbé"`, want: `m: "a\nbé"`},
		{name: "template literal newline", in: "m: `one\ntwo`", want: `m: "one\ntwo"`},
		{name: "colon gets a space", in: `{a:'x',b:{c:"y"}}`, want: `{a: "x",b: {c: "y"}}`},
		{name: "escaped dollar in template", in: "m: `\\${amount} BRL`", want: `m: "${amount} BRL"`},
		{name: "code point escape", in: `m: '\u{1F600}'`, want: `m: "\U0001F600"`},
		{name: "short code point escape", in: `m: "\u{e9}"`, want: `m: "\U000000E9"`},
		{name: "four digit unicode escape", in: `m: '\u00e9'`, want: `m: "\u00e9"`},
		{name: "identity escapes", in: `m: 'a\d\-\/'`, want: `m: "ad-/"`},
		{name: "yaml-only escapes stay literal", in: `m: '\e\N\_'`, want: `m: "eN_"`},
		{name: "line continuation", in: "m: 'one \\\ntwo'", want: `m: "one two"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeModule(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeModule_BadCodePoint(t *testing.T) {
	for _, in := range []string{`m: '\u{110000}'`, `m: '\u{zz}'`} {
		_, err := normalizeModule(in)
		assert.ErrorContains(t, err, "code point", in)
	}
	_, err := normalizeModule(`m: '\u{1F600'`)
	assert.ErrorIs(t, err, errUnterminated)
}

func TestNormalizeModule_Unterminated(t *testing.T) {
	for _, in := range []string{`a: 'open`, "a: 'line\nbreak'", `a: /* never closed`} {
		_, err := normalizeModule(in)
		assert.ErrorIs(t, err, errUnterminated, in)
	}
}

func TestExportedExpression(t *testing.T) {
	body, isDefault := exportedExpression("  export default { a: 1 };  ")
	assert.Equal(t, "{ a: 1 }", body)
	assert.True(t, isDefault)

	body, isDefault = exportedExpression("module.exports = { a: 1 }")
	assert.Equal(t, "{ a: 1 }", body)
	assert.False(t, isDefault)

	body, isDefault = exportedExpression("{ a: 1 }")
	assert.Equal(t, "{ a: 1 }", body)
	assert.False(t, isDefault)
}

func TestDeclaredValue(t *testing.T) {
	src := `const other = 1;
const pt: {a: string} = {a: "x", b: {c: "}"}} as const;
export default pt;`

	got, ok := declaredValue(src, "pt")
	require.True(t, ok)
	assert.Equal(t, `{a: "x", b: {c: "}"}}`, got)

	got, ok = declaredValue(src, "other")
	require.True(t, ok)
	assert.Equal(t, "1", got)

	_, ok = declaredValue(src, "missing")
	assert.False(t, ok)
}

func TestExportedIdent(t *testing.T) {
	assert.Equal(t, "pt", exportedIdent("pt"))
	assert.Equal(t, "$t", exportedIdent("$t ;"))
	assert.Empty(t, exportedIdent("{ a: 1 }"))
	assert.Empty(t, exportedIdent("pt.default"))
	assert.Empty(t, exportedIdent(`"hello"`))
}
