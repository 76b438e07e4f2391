package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/specenum/ir"
)

func parseOne(t *testing.T, lines ...string) *ir.Enum {
	t.Helper()
	p := New()
	require.NoError(t, p.Parse(lines))
	require.Equal(t, 1, p.Definitions().Len())
	return p.Definitions().Enums()[0]
}

func parseErr(t *testing.T, lines ...string) *ir.Error {
	t.Helper()
	err := New().Parse(lines)
	require.Error(t, err)
	var cerr *ir.Error
	require.ErrorAs(t, err, &cerr)
	return cerr
}

func TestParseEnum(t *testing.T) {
	e := parseOne(t,
		"enum EVENT",
		"  prefix EVT_",
		"  invalid -1",
		"values",
		"  START \"Start\"",
		"  STOP",
		"end",
	)

	assert.Equal(t, "EVENT", e.Name)
	assert.Equal(t, "EVT_", e.Prefix)
	assert.Equal(t, "-1", e.Invalid)
	require.Len(t, e.Values, 2)
	assert.Equal(t, "START", e.Values[0].Identifier)
	assert.Equal(t, "\"Start\"", e.Values[0].Name)
	assert.Equal(t, "STOP", e.Values[1].Identifier)
	assert.False(t, e.Values[1].Named())
}

func TestParseHeaderTrailingSemicolon(t *testing.T) {
	e := parseOne(t, "enum FOO ;", "values", "A", "end")
	assert.Equal(t, "FOO", e.Name)
}

func TestParseEmptyInput(t *testing.T) {
	p := New()
	require.NoError(t, p.Parse(nil))
	assert.Equal(t, 0, p.Definitions().Len())
}

func TestParseValueOrderPreserved(t *testing.T) {
	e := parseOne(t, "enum E", "values", "A a", "B", "end")
	require.Len(t, e.Values, 2)
	assert.Equal(t, "A", e.Values[0].Identifier)
	assert.Equal(t, "a", e.Values[0].Name)
	assert.Equal(t, "B", e.Values[1].Identifier)
	assert.Empty(t, e.Values[1].Name)
}

func TestParseGenericExpansion(t *testing.T) {
	e := parseOne(t,
		"enum E",
		"  generic 3 SLOT",
		"values",
		"  FIRST",
		"end",
	)

	require.Len(t, e.Values, 4)
	ids := []string{"FIRST", "SLOT1", "SLOT2", "SLOT3"}
	for i, id := range ids {
		assert.Equal(t, id, e.Values[i].Identifier)
	}
}

func TestParseDefaultedZero(t *testing.T) {
	e := parseOne(t,
		"enum E",
		"  bitwise",
		"  prefix MY_",
		"  zero",
		"values",
		"  A",
		"end",
	)

	require.NotNil(t, e.Zero)
	assert.Equal(t, "ZERO", e.Zero.Identifier)
}

func TestParseExplicitZero(t *testing.T) {
	e := parseOne(t,
		"enum E",
		"  bitwise",
		"  zero NONE \"None\"",
		"values",
		"  A",
		"end",
	)

	require.NotNil(t, e.Zero)
	assert.Equal(t, "NONE", e.Zero.Identifier)
	assert.Equal(t, "\"None\"", e.Zero.Name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		wantCode ir.ErrorCode
	}{
		{
			name:     "bare zero without prefix",
			lines:    []string{"enum E", "bitwise", "zero", "values", "A", "end"},
			wantCode: ir.CodeOptionConflict,
		},
		{
			name:     "bare count without prefix",
			lines:    []string{"enum E", "count", "values", "A", "end"},
			wantCode: ir.CodeOptionConflict,
		},
		{
			name:     "bitwise with count",
			lines:    []string{"enum E", "bitwise", "count LAST", "values", "A", "end"},
			wantCode: ir.CodeOptionConflict,
		},
		{
			name:     "bitwise with bitvector",
			lines:    []string{"enum E", "bitwise", "bitvector bv", "values", "A", "end"},
			wantCode: ir.CodeOptionConflict,
		},
		{
			name:     "zero without bitwise",
			lines:    []string{"enum E", "zero NONE", "values", "A", "end"},
			wantCode: ir.CodeOptionConflict,
		},
		{
			name:     "unknown option",
			lines:    []string{"enum E", "frobnicate", "values", "A", "end"},
			wantCode: ir.CodeUnknownOption,
		},
		{
			name:     "duplicate option",
			lines:    []string{"enum E", "prefix A_", "prefix B_", "values", "A", "end"},
			wantCode: ir.CodeDuplicateOption,
		},
		{
			name:     "duplicate bare option",
			lines:    []string{"enum E", "bitwise", "bitwise", "values", "A", "end"},
			wantCode: ir.CodeDuplicateOption,
		},
		{
			name:     "prefix requires argument",
			lines:    []string{"enum E", "prefix", "values", "A", "end"},
			wantCode: ir.CodeMissingArgument,
		},
		{
			name:     "invalid requires argument",
			lines:    []string{"enum E", "invalid", "values", "A", "end"},
			wantCode: ir.CodeMissingArgument,
		},
		{
			name:     "bitvector requires argument",
			lines:    []string{"enum E", "bitvector", "values", "A", "end"},
			wantCode: ir.CodeMissingArgument,
		},
		{
			name:     "generic requires argument",
			lines:    []string{"enum E", "generic", "values", "A", "end"},
			wantCode: ir.CodeMissingArgument,
		},
		{
			name:     "bitwise refuses argument",
			lines:    []string{"enum E", "bitwise yes", "values", "A", "end"},
			wantCode: ir.CodeSyntax,
		},
		{
			name:     "generic amount zero",
			lines:    []string{"enum E", "generic 0 SLOT", "values", "A", "end"},
			wantCode: ir.CodeOptionConflict,
		},
		{
			name:     "malformed generic argument",
			lines:    []string{"enum E", "generic SLOT 3", "values", "A", "end"},
			wantCode: ir.CodeSyntax,
		},
		{
			name:     "missing values marker",
			lines:    []string{"enum E", "prefix P_", "A", "end"},
			wantCode: ir.CodeSyntax,
		},
		{
			name:     "unterminated enum block",
			lines:    []string{"enum E", "values", "A"},
			wantCode: ir.CodeUnterminated,
		},
		{
			name:     "unexpected top-level line",
			lines:    []string{"values"},
			wantCode: ir.CodeSyntax,
		},
		{
			name:     "malformed value line",
			lines:    []string{"enum E", "values", "NOT-AN-IDENT", "end"},
			wantCode: ir.CodeSyntax,
		},
		{
			name:     "duplicate enum in one file",
			lines:    []string{"enum E", "values", "A", "end", "enum E", "values", "B", "end"},
			wantCode: ir.CodeDuplicateEnum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cerr := parseErr(t, tt.lines...)
			assert.Equal(t, tt.wantCode, cerr.Code, "message: %s", cerr.Message)
		})
	}
}

func TestParseDuplicateAcrossFiles(t *testing.T) {
	p := New()
	require.NoError(t, p.Parse([]string{"enum E", "values", "A", "end"}))

	err := p.Parse([]string{"enum E", "values", "B", "end"})
	require.Error(t, err)
	var cerr *ir.Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, ir.CodeDuplicateEnum, cerr.Code)
}

func TestParseSecondFileAddsEnums(t *testing.T) {
	p := New()
	require.NoError(t, p.Parse([]string{"enum A", "values", "X", "end"}))
	require.NoError(t, p.Parse([]string{"enum B", "values", "Y", "end"}))

	enums := p.Definitions().Enums()
	require.Len(t, enums, 2)
	assert.Equal(t, "A", enums[0].Name)
	assert.Equal(t, "B", enums[1].Name)
}

func TestParseStripsComments(t *testing.T) {
	e := parseOne(t,
		"# events",
		"enum E /* inline",
		"  comment */",
		"  prefix P_ // trailing",
		"values",
		"  A",
		"end",
	)

	assert.Equal(t, "E", e.Name)
	assert.Equal(t, "P_", e.Prefix)
}

func TestParseEmptyValues(t *testing.T) {
	e := parseOne(t, "enum E", "values", "end")
	assert.Empty(t, e.Values)
}
