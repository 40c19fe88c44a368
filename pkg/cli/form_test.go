package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valid/pkg/cli"
	"github.com/dmitrymomot/valid/pkg/constraint"
	"github.com/dmitrymomot/valid/pkg/rules"
)

var mandatory = []rules.Spec{{Type: rules.TypeMandatory, Value: true}}

func TestParseForm(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		form, err := cli.ParseForm([]byte(validForm))
		require.NoError(t, err)
		require.Len(t, form.Fields, 3)
		assert.Equal(t, "name", form.Fields[0].Tag)
		assert.Equal(t, cli.KindNumber, form.Fields[1].Kind)
		require.Len(t, form.Fields[0].Rules, 3)
		assert.Equal(t, rules.TypeMinLength, form.Fields[0].Rules[1].Type)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		form, err := cli.ParseForm([]byte(`{"fields":[{"tag":"name","value":"Bob","rules":[{"type":"mandatory","priority":0}]}]}`))
		require.NoError(t, err)
		require.Len(t, form.Fields, 1)
		assert.Equal(t, "Bob", form.Fields[0].Value)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		_, err := cli.ParseForm([]byte("fields: [unterminated"))
		assert.ErrorIs(t, err, cli.ErrInvalidForm)
	})

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()

		_, err := cli.ParseForm([]byte("fields: []"))
		assert.ErrorIs(t, err, cli.ErrInvalidForm)
	})
}

func TestLoadForm(t *testing.T) {
	t.Parallel()

	form, err := cli.LoadForm(writeFile(t, "form.yaml", validForm))
	require.NoError(t, err)
	assert.Len(t, form.Fields, 3)

	_, err = cli.LoadForm(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFormBuild(t *testing.T) {
	t.Parallel()

	t.Run("keeps form order", func(t *testing.T) {
		t.Parallel()

		form, err := cli.ParseForm([]byte(validForm))
		require.NoError(t, err)

		entries, err := form.Build(catalog)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, "name", entries[0].Value.Tag())
		assert.Equal(t, "Alice", entries[0].Value.Payload())
		assert.Equal(t, 3, entries[0].Set.Len())

		assert.Equal(t, "age", entries[1].Value.Tag())
		assert.Equal(t, float64(30), entries[1].Value.Payload())

		assert.Equal(t, "email", entries[2].Value.Tag())
	})

	t.Run("missing value is empty text", func(t *testing.T) {
		t.Parallel()

		form := &cli.Form{Fields: []cli.FormField{{
			Tag:   "name",
			Rules: []rules.Spec{{Type: rules.TypeMandatory, Value: true}},
		}}}
		entries, err := form.Build(catalog)
		require.NoError(t, err)
		assert.Equal(t, "", entries[0].Value.Payload())
	})

	tests := []struct {
		name  string
		field cli.FormField
	}{
		{"missing tag", cli.FormField{Value: "x"}},
		{"text with number", cli.FormField{Tag: "a", Value: 12}},
		{"number with text", cli.FormField{Tag: "a", Kind: cli.KindNumber, Value: "12"}},
		{"unknown kind", cli.FormField{Tag: "a", Kind: "date", Value: "2024-01-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			form := &cli.Form{Fields: []cli.FormField{tt.field}}
			_, err := form.Build(catalog)
			assert.ErrorIs(t, err, cli.ErrInvalidForm)
		})
	}

	t.Run("duplicate tag", func(t *testing.T) {
		t.Parallel()

		form := &cli.Form{Fields: []cli.FormField{
			{Tag: "a", Value: "x", Rules: mandatory},
			{Tag: "a", Value: "y", Rules: mandatory},
		}}
		_, err := form.Build(catalog)
		assert.ErrorIs(t, err, cli.ErrInvalidForm)
	})

	t.Run("no rules", func(t *testing.T) {
		t.Parallel()

		form := &cli.Form{Fields: []cli.FormField{{Tag: "a", Value: "x"}}}
		_, err := form.Build(catalog)
		assert.ErrorIs(t, err, constraint.ErrEmptySet)
	})

	t.Run("unknown rule", func(t *testing.T) {
		t.Parallel()

		form := &cli.Form{Fields: []cli.FormField{{
			Tag:   "a",
			Value: "x",
			Rules: []rules.Spec{{Type: "palindrome"}},
		}}}
		_, err := form.Build(catalog)
		assert.ErrorIs(t, err, rules.ErrUnknownRule)
	})
}
