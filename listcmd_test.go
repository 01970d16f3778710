package main

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jibtool/jib/internal/recipe"
)

const sampleSource = `# lists available recipes
help:
    jib list

# run clippy over every feature combination
clippy:
    cargo hack clippy --feature-powerset

# launch the anthropic oauth flow
anthropic:
    cargo run --example oauth-cli anthropic

# launch the openai oauth flow
openai:
    cargo run --example oauth-cli openai
`

func mustParse(t *testing.T, src string) *recipe.Set {
	t.Helper()
	set, err := recipe.Parse([]byte(src))
	require.NoError(t, err)
	return set
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestWriteList(t *testing.T) {
	set := mustParse(t, sampleSource)

	var buf bytes.Buffer
	writeList(&buf, set, recipe.DeclarationOrder)
	newGoldie(t).Assert(t, "list_declaration", buf.Bytes())

	buf.Reset()
	writeList(&buf, set, recipe.Alphabetical)
	newGoldie(t).Assert(t, "list_alphabetical", buf.Bytes())
}

func TestWriteDump(t *testing.T) {
	set := mustParse(t, sampleSource)

	var buf bytes.Buffer
	writeDump(&buf, set)
	newGoldie(t).Assert(t, "dump", buf.Bytes())
}

func TestWriteDump_roundTrip(t *testing.T) {
	set := mustParse(t, sampleSource)

	var buf bytes.Buffer
	writeDump(&buf, set)

	again, err := recipe.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, set.Names(), again.Names())
	assert.Equal(t, set.List(recipe.DeclarationOrder), again.List(recipe.DeclarationOrder))

	for _, name := range set.Names() {
		want, err := set.Lookup(name)
		require.NoError(t, err)
		got, err := again.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, want.Commands, got.Commands)
	}
}
