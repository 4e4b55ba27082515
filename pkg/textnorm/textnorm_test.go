package textnorm

import "testing"

func TestNormalizeComposesCombiningMarks(t *testing.T) {
	// "e" followed by combining acute must become a single codepoint.
	in := "Introdução é"
	got := Normalize(in)
	want := "Introdução é"
	if got != want {
		t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"texto simples",
		"Conclusão e referências",
		"ﬁle ligatures ½",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestRepairLatexArtifacts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare cedilla after c",
			in:   "introdu¸cão",
			want: "introdução",
		},
		{
			name: "combining cedilla before c",
			in:   "fuņcão",
			want: "função",
		},
		{
			name: "acute marker before vowel",
			in:   "metodolog´ıa n´umero",
			want: "metodolog´ıa número",
		},
		{
			name: "acute marker after vowel",
			in:   "conclusa´o",
			want: "conclusáo",
		},
		{
			name: "tilde marker before vowel",
			in:   "consideraç˜oes",
			want: "considerações",
		},
		{
			name: "circumflex marker before vowel",
			in:   "referˆencias",
			want: "referências",
		},
		{
			name: "smart quotes become ascii",
			in:   "“citação” e ‘nota’",
			want: `"citação" e 'nota'`,
		},
		{
			name: "hyphenation break joins word",
			in:   "documen-\nto completo",
			want: "documento completo",
		},
		{
			name: "hyphen without break survives",
			in:   "pré-processamento",
			want: "pré-processamento",
		},
		{
			name: "clean text untouched",
			in:   "Resultados e Discussão",
			want: "Resultados e Discussão",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RepairLatexArtifacts(tt.in); got != tt.want {
				t.Errorf("RepairLatexArtifacts(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRepairDeterministicOnCleanInput(t *testing.T) {
	// For inputs free of artifact patterns, applying the repair twice must
	// equal applying it once.
	inputs := []string{
		"Resumo do documento em português",
		"palavras, vírgulas; e pontos.",
		"já normalizado: ção, ães, ões",
	}
	for _, in := range inputs {
		once := RepairLatexArtifacts(in)
		twice := RepairLatexArtifacts(once)
		if once != twice {
			t.Errorf("repair not stable for %q: %q != %q", in, once, twice)
		}
	}
}
