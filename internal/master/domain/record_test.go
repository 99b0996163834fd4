package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestRecordRoundTripKeepsSecretAndExtras(t *testing.T) {
	in := `{"secret":"s3cr3t","status":"live","visible":false,"notes":{"by":"hand"}}`

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(in), &rec))
	require.Equal(t, "s3cr3t", rec.Secret)

	v, ok := rec.Value(FieldVisible)
	require.True(t, ok)
	require.JSONEq(t, `false`, string(v))

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	require.JSONEq(t, in, string(out))
}

func TestRecordUnmarshalRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not an object", `[1,2]`},
		{"null", `null`},
		{"numeric secret", `{"secret":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec Record
			require.Error(t, json.Unmarshal([]byte(tt.in), &rec))
		})
	}
}

func TestMergeOnlyTouchesPresentFields(t *testing.T) {
	rec := NewRecord("s", map[Field]json.RawMessage{
		FieldStatus: raw(`"idle"`),
		FieldName:   raw(`"Lake"`),
	})

	written := rec.Merge(Patch{FieldStatus: raw(`"live"`)})
	require.Equal(t, []Field{FieldStatus}, written)

	status, _ := rec.Value(FieldStatus)
	name, _ := rec.Value(FieldName)
	require.JSONEq(t, `"live"`, string(status))
	require.JSONEq(t, `"Lake"`, string(name))
}

func TestMergeCopiesFalsyValues(t *testing.T) {
	rec := NewRecord("s", map[Field]json.RawMessage{
		FieldVisible:   raw(`true`),
		FieldBaseScale: raw(`2.5`),
		FieldName:      raw(`"Lake"`),
	})

	rec.Merge(Patch{
		FieldVisible:   raw(`false`),
		FieldBaseScale: raw(`0`),
		FieldName:      raw(`""`),
	})

	for f, want := range map[Field]string{FieldVisible: `false`, FieldBaseScale: `0`, FieldName: `""`} {
		got, ok := rec.Value(f)
		require.True(t, ok)
		require.JSONEq(t, want, string(got), "field %s", f)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	rec := NewRecord("s", map[Field]json.RawMessage{FieldStatus: raw(`"idle"`)})
	clone := rec.Clone()
	clone.Merge(Patch{FieldStatus: raw(`"live"`)})

	v, _ := rec.Value(FieldStatus)
	require.JSONEq(t, `"idle"`, string(v))
}

func TestProjection(t *testing.T) {
	t.Run("known channel lists every field with nulls", func(t *testing.T) {
		rec := NewRecord("hidden", map[Field]json.RawMessage{
			FieldStatus:  raw(`"live"`),
			FieldVisible: raw(`true`),
		})

		out, err := json.Marshal(rec.Project())
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(out, &got))
		require.Len(t, got, len(Fields))
		require.Equal(t, "live", got["status"])
		require.Equal(t, true, got["visible"])
		require.Contains(t, got, "eventURL")
		require.Nil(t, got["eventURL"])
		require.NotContains(t, got, SecretKey)
		require.NotContains(t, string(out), "hidden")
	})

	t.Run("keys follow table order", func(t *testing.T) {
		out, err := json.Marshal(NewRecord("", nil).Project())
		require.NoError(t, err)

		dec := json.NewDecoder(bytesReader(out))
		_, err = dec.Token() // {
		require.NoError(t, err)
		for _, f := range Fields {
			tok, err := dec.Token()
			require.NoError(t, err)
			require.Equal(t, string(f), tok)
			_, err = dec.Token() // null
			require.NoError(t, err)
		}
	})

	t.Run("zero projection is an empty object", func(t *testing.T) {
		var p Projection
		out, err := json.Marshal(p)
		require.NoError(t, err)
		require.Equal(t, `{}`, string(out))
		require.False(t, p.Found())
	})
}
