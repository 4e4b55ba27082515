package sections

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      string
		wantOK    bool
	}{
		{
			name:      "numbered heading strips numbering",
			candidate: "1. Introdução",
			want:      "Introdução",
			wantOK:    true,
		},
		{
			name:      "plain keyword",
			candidate: "Resumo",
			want:      "Resumo",
			wantOK:    true,
		},
		{
			name:      "two word keyword",
			candidate: "Considerações Finais",
			want:      "Considerações Finais",
			wantOK:    true,
		},
		{
			name:      "plural variant",
			candidate: "Resultados",
			want:      "Resultados",
			wantOK:    true,
		},
		{
			name:      "case insensitive",
			candidate: "conclusões",
			want:      "conclusões",
			wantOK:    true,
		},
		{
			name:      "hyphenated numbering",
			candidate: "3 - Metodologia",
			want:      "Metodologia",
			wantOK:    true,
		},
		{
			name:      "exceeds three word budget",
			candidate: "Referências Bibliográficas e Outras Fontes Adicionais",
			wantOK:    false,
		},
		{
			name:      "no keyword",
			candidate: "Tabela de custos",
			wantOK:    false,
		},
		{
			name:      "empty string",
			candidate: "",
			wantOK:    false,
		},
		{
			name:      "whitespace only",
			candidate: "   ",
			wantOK:    false,
		},
		{
			name:      "keyword inside three word phrase",
			candidate: "Breve Introdução Geral",
			want:      "Breve Introdução Geral",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.candidate)
			if ok != tt.wantOK {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.candidate, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.candidate, got, tt.want)
			}
		})
	}
}
