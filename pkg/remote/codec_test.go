package remote

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSONEncodeSingleKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input RemoteResult[int, string]
		want  string
	}{
		{"success", Success[int, string](5), `{"success":5}`},
		{"failure", Failure[int, string]("e"), `{"failure":"e"}`},
		{"loading", Loading[int, string](), `{"loading":true}`},
		{"initial", Initial[int, string](), `{"initial":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.input)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	for _, r := range []RemoteResult[int, string]{
		Success[int, string](5),
		Failure[int, string]("e"),
		Loading[int, string](),
		Initial[int, string](),
	} {
		data, err := json.Marshal(r)
		require.NoError(t, err)

		var got RemoteResult[int, string]
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, r, got)
	}
}

type profile struct {
	Name string `json:"name" yaml:"name"`
	Age  int    `json:"age" yaml:"age"`
}

func TestJSONRoundTripStructPayload(t *testing.T) {
	t.Parallel()

	r := Success[profile, string](profile{Name: "ada", Age: 36})
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":{"name":"ada","age":36}}`, string(data))

	var got RemoteResult[profile, string]
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, r, got)
}

func TestJSONDecodePriorityOrder(t *testing.T) {
	t.Parallel()

	// success wins over every other key, failure over loading/initial.
	var r RemoteResult[int, string]
	require.NoError(t, json.Unmarshal([]byte(`{"loading":true,"failure":"e","success":5}`), &r))
	assert.Equal(t, Success[int, string](5), r)

	require.NoError(t, json.Unmarshal([]byte(`{"initial":true,"failure":"e"}`), &r))
	assert.Equal(t, Failure[int, string]("e"), r)

	require.NoError(t, json.Unmarshal([]byte(`{"initial":true,"loading":true}`), &r))
	assert.Equal(t, Loading[int, string](), r)
}

func TestJSONDecodeIgnoresLoadingPayload(t *testing.T) {
	t.Parallel()

	var r RemoteResult[int, string]
	require.NoError(t, json.Unmarshal([]byte(`{"loading":false}`), &r))
	assert.Equal(t, Loading[int, string](), r)

	require.NoError(t, json.Unmarshal([]byte(`{"initial":null}`), &r))
	assert.Equal(t, Initial[int, string](), r)
}

func TestJSONDecodeNoVariantKeyFails(t *testing.T) {
	t.Parallel()

	var r RemoteResult[int, string]
	err := json.Unmarshal([]byte(`{"pending":true}`), &r)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoVariant)

	err = json.Unmarshal([]byte(`{}`), &r)
	assert.ErrorIs(t, err, ErrNoVariant)
}

func TestJSONDecodeBadPayloadFails(t *testing.T) {
	t.Parallel()

	var r RemoteResult[int, string]
	assert.Error(t, json.Unmarshal([]byte(`{"success":"not-an-int"}`), &r))
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &r))
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	for _, r := range []RemoteResult[profile, string]{
		Success[profile, string](profile{Name: "ada", Age: 36}),
		Failure[profile, string]("e"),
		Loading[profile, string](),
		Initial[profile, string](),
	} {
		data, err := yaml.Marshal(r)
		require.NoError(t, err)

		var got RemoteResult[profile, string]
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, r, got)
	}
}

func TestYAMLDecodePriorityAndFailure(t *testing.T) {
	t.Parallel()

	var r RemoteResult[int, string]
	require.NoError(t, yaml.Unmarshal([]byte("failure: e\nsuccess: 5\n"), &r))
	assert.Equal(t, Success[int, string](5), r)

	err := yaml.Unmarshal([]byte("pending: true\n"), &r)
	assert.ErrorIs(t, err, ErrNoVariant)
}
