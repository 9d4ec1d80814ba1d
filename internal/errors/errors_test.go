package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := dnderr.NotFound("survivor not found").WithMeta("id", "char-1")
	wrapped := dnderr.Wrap(base, "failed to load")

	assert.Equal(t, dnderr.CodeNotFound, wrapped.Code)
	assert.True(t, dnderr.IsNotFound(wrapped))
	assert.Equal(t, "failed to load: survivor not found", wrapped.Error())
	assert.Equal(t, "char-1", dnderr.GetMeta(wrapped)["id"])
	assert.True(t, errors.Is(wrapped, base))
}

func TestWrap_MetaIsCopied(t *testing.T) {
	base := dnderr.NotFound("missing").WithMeta("id", "char-1")
	wrapped := dnderr.Wrap(base, "outer").WithMeta("operation", "Export")

	assert.NotContains(t, base.Meta, "operation")
	assert.Equal(t, "Export", wrapped.Meta["operation"])
}

func TestWrap_ForeignError(t *testing.T) {
	wrapped := dnderr.Wrapf(fmt.Errorf("boom"), "step %d", 2)

	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(wrapped))
	assert.Equal(t, "step 2: boom", wrapped.Error())
	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(errors.New("plain")))
	assert.Nil(t, dnderr.GetMeta(errors.New("plain")))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, dnderr.Wrap(nil, "x"))
	assert.Nil(t, dnderr.Wrapf(nil, "x %d", 1))
	assert.Nil(t, dnderr.WrapWithCode(nil, dnderr.CodeInternal, "x"))
}

func TestWrapWithCode_OverridesCode(t *testing.T) {
	wrapped := dnderr.WrapWithCode(dnderr.NotFound("missing"), dnderr.CodeInternal, "corrupt")

	assert.Equal(t, dnderr.CodeInternal, wrapped.Code)
	assert.False(t, dnderr.IsNotFound(wrapped))
}

func TestConstructors(t *testing.T) {
	assert.True(t, dnderr.IsInvalidArgument(dnderr.InvalidArgumentf("bad %s", "x")))
	assert.True(t, dnderr.IsAlreadyExists(dnderr.AlreadyExistsf("dup %s", "x")))
	assert.True(t, dnderr.IsValidation(dnderr.Validationf("bad")))
	assert.Equal(t, dnderr.CodeInternal, dnderr.GetCode(dnderr.Internalf("x")))
	assert.Equal(t, "missing a", dnderr.NotFoundf("missing %s", "a").Error())
}

func TestFieldErrors(t *testing.T) {
	var errs dnderr.FieldErrors
	require.NoError(t, errs.Err())

	errs.Add("first_name", "is required")
	errs.Add("skills.cardio", "level %d is outside 0-%d", 11, 10)
	require.Equal(t, 2, errs.Len())

	err := errs.Err()
	require.Error(t, err)
	assert.True(t, dnderr.IsValidation(err))
	assert.Equal(t,
		"survivor is invalid: first_name: is required; skills.cardio: level 11 is outside 0-10",
		err.Error())
	assert.Equal(t, "is required", dnderr.GetMeta(err)["first_name"])
}
