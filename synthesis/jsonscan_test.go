package synthesis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "bare object",
			input: `{"title":"Ciao"}`,
			want:  `{"title":"Ciao"}`,
		},
		{
			name:  "prose before and after",
			input: "Ecco il JSON richiesto:\n{\"title\":\"Ciao\"}\nSpero sia utile!",
			want:  `{"title":"Ciao"}`,
		},
		{
			name:  "code fence with language tag",
			input: "```json\n{\"title\":\"Ciao\"}\n```",
			want:  `{"title":"Ciao"}`,
		},
		{
			name:  "braces inside string values do not break balance",
			input: `{"content":"usa {placeholder} e }chiudi{"}`,
			want:  `{"content":"usa {placeholder} e }chiudi{"}`,
		},
		{
			name:  "escaped quote inside string",
			input: `{"title":"lei disse \"ciao\" e {via}"}`,
			want:  `{"title":"lei disse \"ciao\" e {via}"}`,
		},
		{
			name:  "nested objects",
			input: `testo {"content":{"intro":"a","body":"b"}} coda`,
			want:  `{"content":{"intro":"a","body":"b"}}`,
		},
		{
			name:  "trailing comma repaired",
			input: `{"title":"Ciao","category":"LLM",}`,
			want:  `{"title":"Ciao","category":"LLM"}`,
		},
		{
			name:  "backtick value requoted",
			input: "{\"content\": `riga \"uno\"`}",
			want:  `{"content": "riga \"uno\""}`,
		},
		{
			name:    "no opening brace",
			input:   "nessun oggetto qui",
			wantErr: errNoOpeningBrace,
		},
		{
			name:    "unbalanced",
			input:   `{"title":"Ciao"`,
			wantErr: errUnbalanced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONBlock(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSONBlockRecoversParseableJSON(t *testing.T) {
	// The full gauntlet: fences, prose, trailing comma, backtick value.
	input := "Certo! Ecco l'articolo:\n```json\n" +
		"{\n  \"title\": \"Nuovo modello\",\n  \"content\": `testo con \"virgolette\"`,\n  \"category\": \"LLM\",\n}\n" +
		"```\nFammi sapere se serve altro."

	block, err := ExtractJSONBlock(input)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(block), &m))
	assert.Equal(t, "Nuovo modello", m["title"])
	assert.Equal(t, `testo con "virgolette"`, m["content"])
	assert.Equal(t, "LLM", m["category"])
}
