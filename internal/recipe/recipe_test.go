package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

const orderSource = "watch:\n    true\n\nbuild:\n    true\n\nalpha:\n    true\n"

func TestList_order(t *testing.T) {
	set, err := Parse([]byte(orderSource))
	require.NoError(t, err)

	names := func(entries []Entry) []string {
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = e.Name
		}
		return out
	}

	assert.Equal(t, []string{"watch", "build", "alpha"}, names(set.List(DeclarationOrder)))
	assert.Equal(t, []string{"alpha", "build", "watch"}, names(set.List(Alphabetical)))

	// Alphabetical listing must not disturb declaration order.
	assert.Equal(t, []string{"watch", "build", "alpha"}, set.Names())
}

func TestList_restartable(t *testing.T) {
	set, err := Parse([]byte(orderSource))
	require.NoError(t, err)

	first := set.List(DeclarationOrder)
	first[0].Name = "mutated"

	assert.Equal(t, "watch", set.List(DeclarationOrder)[0].Name)
}

func TestLookup(t *testing.T) {
	set, err := Parse([]byte(orderSource))
	require.NoError(t, err)

	r, err := set.Lookup("build")
	require.NoError(t, err)
	assert.Equal(t, "build", r.Name)

	_, err = set.Lookup("deploy")
	require.Error(t, err)

	var unknown *UnknownRecipeError
	require.True(t, xerrors.As(err, &unknown))
	assert.Equal(t, "deploy", unknown.Name)
}
