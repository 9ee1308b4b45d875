package errcollect

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError_StoresVerbatim(t *testing.T) {
	t.Parallel()

	e := NewError("{field} needs {min}", "field", "name", "min", 3)
	assert.Equal(t, "{field} needs {min}", e.Template())
	assert.Equal(t, Args{{Key: "field", Val: "name"}, {Key: "min", Val: 3}}, e.Args())
	assert.Nil(t, e.Unwrap())

	// no placeholder validation at construction
	odd := NewError("{nothing}", "unused", 1)
	assert.Equal(t, "{nothing}", odd.String())
}

func TestNewErrorArgs_DetachesInput(t *testing.T) {
	t.Parallel()

	args := ArgsOf("a", 1)
	e := NewErrorArgs("{a}", args)
	args[0].Val = 2
	assert.Equal(t, "1", e.String())
}

func TestError_ArgsReturnsCopy(t *testing.T) {
	t.Parallel()

	e := NewError("{a}", "a", 1)
	got := e.Args()
	got[0].Val = 99
	v, ok := e.Arg("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestError_WithIsCopyOnWrite(t *testing.T) {
	t.Parallel()

	base := NewError("{a} {b}", "a", "x")
	derived := base.With("b", "y")

	assert.Equal(t, "x {b}", base.String())
	assert.Equal(t, "x y", derived.String())
	_, ok := base.Arg("b")
	assert.False(t, ok)
}

func TestError_RenderAndString(t *testing.T) {
	t.Parallel()

	e := NewError("error: {arg}", "arg", "X")
	s, err := e.Render()
	require.NoError(t, err)
	assert.Equal(t, "error: X", s)
	assert.Equal(t, "error: X", e.String())
	assert.Equal(t, "error: X", e.Error())
}

func TestError_FormatterFailurePropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("formatter down")
	e := NewError("x").WithFormatter(FormatterFunc(func(string, Args) (string, error) {
		return "", boom
	}))

	_, err := e.Render()
	assert.ErrorIs(t, err, boom)

	_, err = e.MarshalJSON()
	assert.ErrorIs(t, err, boom)

	_, err = e.MarshalText()
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, "%!(errcollect: formatter down)", e.String())
}

func TestError_WithFormatterNilRestoresDefault(t *testing.T) {
	t.Parallel()

	strict := NewError("{missing}").WithFormatter(Placeholders{Strict: true})
	_, err := strict.Render()
	require.Error(t, err)

	lenient := strict.WithFormatter(nil)
	s, err := lenient.Render()
	require.NoError(t, err)
	assert.Equal(t, "{missing}", s)
}

func TestError_MarshalJSONIsRenderedText(t *testing.T) {
	t.Parallel()

	a := NewError("error: {arg}", "arg", "X")
	b := NewError("error: X")

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)

	assert.Equal(t, `"error: X"`, string(ja))
	assert.Equal(t, ja, jb, "errors with equal text are JSON-indistinguishable")
}

func TestError_MarshalText(t *testing.T) {
	t.Parallel()

	b, err := NewError("{n} items", "n", 2).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2 items", string(b))
}

func TestError_IsAGoError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	c := New().Put("upload", Cause{Err: cause}, nil)
	e := c.Get("upload")[0]

	var target *Error
	require.ErrorAs(t, error(e), &target)
	assert.Same(t, e, target)
	assert.ErrorIs(t, e, cause)
}
