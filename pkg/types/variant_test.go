package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBoolOrZeroValueIsFalse(t *testing.T) {
	var o Toggle

	assert.True(t, o.IsBool())
	assert.False(t, o.Bool())
	assert.Equal(t, false, o.Any())
}

func TestBoolOrAny(t *testing.T) {
	assert.Equal(t, true, Bool[string](true).Any())
	assert.Equal(t, "articles", Value("articles").Any())
	assert.Equal(t, Rewrite{Slug: "news"}, Value(Rewrite{Slug: "news"}).Any())
}

func TestBoolOrUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantBool bool
		isBool   bool
		wantStr  string
	}{
		{name: "boolean true", input: "v: true", isBool: true, wantBool: true},
		{name: "boolean false", input: "v: false", isBool: true},
		{name: "plain string", input: "v: articles", wantStr: "articles"},
		{name: "quoted true stays a string", input: `v: "true"`, wantStr: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc struct {
				V Toggle `yaml:"v"`
			}
			require.NoError(t, yaml.Unmarshal([]byte(tt.input), &doc))

			assert.Equal(t, tt.isBool, doc.V.IsBool())
			if tt.isBool {
				assert.Equal(t, tt.wantBool, doc.V.Bool())
				return
			}
			s, ok := doc.V.Value()
			assert.True(t, ok)
			assert.Equal(t, tt.wantStr, s)
		})
	}
}

func TestRewriteSettingUnmarshalYAML(t *testing.T) {
	var doc struct {
		Rewrite RewriteSetting `yaml:"rewrite"`
	}
	input := "rewrite:\n  slug: news\n  with_front: false\n"
	require.NoError(t, yaml.Unmarshal([]byte(input), &doc))

	rw, ok := doc.Rewrite.Value()
	require.True(t, ok)
	assert.Equal(t, map[string]any{"slug": "news", "with_front": false}, rw.Args())
}

func TestBoolOrMarshalJSON(t *testing.T) {
	data, err := json.Marshal(Value("articles"))
	require.NoError(t, err)
	assert.JSONEq(t, `"articles"`, string(data))

	data, err = json.Marshal(Bool[Rewrite](false))
	require.NoError(t, err)
	assert.JSONEq(t, `false`, string(data))
}

func TestBlockArgs(t *testing.T) {
	b := Block{
		Name:       "core/group",
		Attributes: map[string]any{"layout": "flex"},
		InnerBlocks: []Block{
			{Name: "core/paragraph"},
		},
	}

	want := []any{
		"core/group",
		map[string]any{"layout": "flex"},
		[]any{
			[]any{"core/paragraph", map[string]any{}, []any{}},
		},
	}
	assert.Equal(t, want, b.Args())
}

func TestDefaultTermArgs(t *testing.T) {
	assert.Equal(t, map[string]any{"name": "General"}, DefaultTerm{Name: "General"}.Args())
	assert.Equal(t,
		map[string]any{"name": "General", "slug": "general", "description": "Fallback"},
		DefaultTerm{Name: "General", Slug: "general", Description: "Fallback"}.Args(),
	)
}

func TestPayloadMarshalJSONSkipsCallbacks(t *testing.T) {
	p := Payload{
		"public":               true,
		"register_meta_box_cb": AttachFunc(func(Item) error { return nil }),
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"public": true}`, string(data))
}
